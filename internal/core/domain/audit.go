package domain

import "time"

// AuditAction names a state change worth keeping a trail of.
type AuditAction string

const (
	AuditCandidateCreated AuditAction = "candidate_created"
	AuditCandidateUpdated AuditAction = "candidate_updated"
	AuditCandidateDeleted AuditAction = "candidate_deleted"
	AuditVoteCast         AuditAction = "vote_cast"
)

// AuditEvent records who changed which candidate and when.
type AuditEvent struct {
	Action      AuditAction `json:"action"`
	ActorID     string      `json:"actor_id"`
	CandidateID string      `json:"candidate_id"`
	At          time.Time   `json:"at"`
}
