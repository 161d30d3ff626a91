package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/civicvote/voting-system/internal/api/metrics"
	"github.com/civicvote/voting-system/internal/core/domain"
	"github.com/civicvote/voting-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the candidate id, so events for one candidate are persisted in
// the order they were published.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their channel and exit
// once Stop is called.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Stop closes every worker channel and waits for pending events to be written
// or for ctx to expire, whichever comes first.
func (d *Dispatcher) Stop(ctx context.Context) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		d.log.Warn().Msg("audit dispatcher stopped before draining")
	}
}

// Publish enqueues the event without blocking; a full shard drops it.
// Events published after Stop are discarded.
func (d *Dispatcher) Publish(event domain.AuditEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	idx := d.shardIndex(event.CandidateID)
	// Counted before the send so the worker's Dec never runs first.
	depth := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx))
	depth.Inc()
	select {
	case d.workers[idx] <- event:
	default:
		depth.Dec()
		metrics.AuditEventsDroppedTotal.Inc()
		d.log.Warn().
			Str("action", string(event.Action)).
			Str("candidate_id", event.CandidateID).
			Int("worker_id", idx).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a candidate id deterministically to a worker index.
func (d *Dispatcher) shardIndex(candidateID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(candidateID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(id int, ch <-chan domain.AuditEvent) {
	defer d.wg.Done()
	depth := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id))

	for event := range ch {
		depth.Dec()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := d.repo.InsertAudit(ctx, &event)
		cancel()

		if err != nil {
			d.log.Error().Err(err).
				Str("action", string(event.Action)).
				Str("candidate_id", event.CandidateID).
				Int("worker_id", id).
				Msg("audit event write failed")
		}
	}
}
