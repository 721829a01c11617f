package inventory

import (
	"context"
	"log"
	"sync"
)

// saveQueue is a single-slot write-behind queue: at most one save is in
// flight, and a snapshot scheduled while one is in flight replaces any
// snapshot still waiting its turn. Latest wins, so the durable copy always
// converges on the newest in-memory state.
type saveQueue struct {
	gw Gateway

	mu         sync.Mutex
	idle       *sync.Cond
	pending    []byte
	hasPending bool
	running    bool
}

func newSaveQueue(gw Gateway) *saveQueue {
	q := &saveQueue{gw: gw}
	q.idle = sync.NewCond(&q.mu)
	return q
}

// schedule queues payload as the next snapshot to save, superseding any
// snapshot that has not started writing yet.
func (q *saveQueue) schedule(payload []byte) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = payload
	q.hasPending = true
	if !q.running {
		q.running = true
		go q.drain()
	}
}

func (q *saveQueue) drain() {
	q.mu.Lock()
	for q.hasPending {
		payload := q.pending
		q.pending = nil
		q.hasPending = false
		q.mu.Unlock()
		if err := q.gw.Save(context.Background(), StorageKey, payload); err != nil {
			// In-memory state stays the source of truth; the next
			// mutation schedules a fresh snapshot.
			log.Printf("inventory: save failed, keeping in-memory state: %v", err)
		}
		q.mu.Lock()
	}
	q.running = false
	q.idle.Broadcast()
	q.mu.Unlock()
}

// wait blocks until no save is running or queued.
func (q *saveQueue) wait() {
	q.mu.Lock()
	for q.running || q.hasPending {
		q.idle.Wait()
	}
	q.mu.Unlock()
}
