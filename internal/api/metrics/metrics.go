// Package metrics defines and registers all custom Prometheus metrics for the
// voting API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package init
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voting"

// ── Vote metrics ──────────────────────────────────────────────────────────────

// VotesCastTotal counts votes that were recorded successfully.
var VotesCastTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_cast_total",
		Help:      "Total number of votes recorded.",
	},
)

// VoteRejectionsTotal counts castVote calls that did not record a vote.
// Label:
//   - reason: "candidate_not_found", "user_not_found", "admin_forbidden",
//     "already_voted", "in_progress", "error"
var VoteRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vote_rejections_total",
		Help:      "Total number of vote attempts rejected, by reason.",
	},
	[]string{"reason"},
)

// VoteDuration measures castVote latency end-to-end.
// Label:
//   - outcome: "recorded" or "rejected"
var VoteDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "vote_duration_seconds",
		Help:      "Duration of vote casting from request to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ── Candidate metrics ─────────────────────────────────────────────────────────

// CandidateMutationsTotal counts successful registry mutations.
// Label:
//   - operation: "create", "update", "delete"
var CandidateMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "candidate_mutations_total",
		Help:      "Total number of candidate registry mutations, by operation.",
	},
	[]string{"operation"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks events waiting in each dispatcher worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsDroppedTotal counts audit events dropped because a shard was full.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped on a full queue.",
	},
)
