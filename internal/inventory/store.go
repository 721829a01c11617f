// Package inventory owns the canonical in-memory drug collection and writes
// it back wholesale through the persistence gateway after every mutation.
package inventory

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"medstock/m/domain"
)

// StorageKey is the fixed well-known key the whole inventory blob lives
// under in the gateway.
const StorageKey = "inventory"

// Gateway is the persistence boundary the store reads and writes through.
// Load returns (nil, nil) when nothing was ever saved.
type Gateway interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}

// Store holds the drug collection in insertion order, newest first. All
// mutations are immediately visible in memory; the durable copy catches up
// through a write-behind queue.
type Store struct {
	gw    Gateway
	queue *saveQueue

	mu       sync.Mutex
	records  []domain.DrugRecord
	loaded   bool
	firstRun bool
}

// New constructs a Store persisting through gw. Call Load before serving.
func New(gw Gateway) *Store {
	return &Store{gw: gw, queue: newSaveQueue(gw)}
}

// Load performs the one-shot startup read. A missing, unreadable, or
// undecodable blob leaves the store empty; availability wins over fidelity.
// The store becomes writable either way, and only after this has run do
// mutations persist, so an empty pre-load state can never clobber saved data.
func (s *Store) Load(ctx context.Context) {
	var records []domain.DrugRecord
	firstRun := false
	payload, err := s.gw.Load(ctx, StorageKey)
	switch {
	case err != nil:
		log.Printf("inventory: load failed, starting empty: %v", err)
	case payload == nil:
		// nothing was ever saved
		firstRun = true
	default:
		if err := json.Unmarshal(payload, &records); err != nil {
			log.Printf("inventory: discarding unreadable inventory blob: %v", err)
			records = nil
		}
	}
	s.mu.Lock()
	s.records = records
	s.loaded = true
	s.firstRun = firstRun
	s.mu.Unlock()
}

// FirstRun reports whether the startup load found no previously saved
// inventory blob. A persisted empty collection is not a first run: a clinic
// that deleted every drug must not have its inventory re-seeded.
func (s *Store) FirstRun() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstRun
}

// Loaded reports whether the startup load has completed.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Records returns a snapshot copy of the collection in its canonical order.
func (s *Store) Records() []domain.DrugRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.DrugRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Add creates a record from validated input and prepends it to the
// collection. nd must come from ParseNewDrug.
func (s *Store) Add(nd NewDrug) domain.DrugRecord {
	rec := domain.DrugRecord{
		ID:         uuid.NewString(),
		Name:       nd.Name,
		Quantity:   nd.Quantity,
		ExpiryDate: nd.ExpiryDate,
		AddedAt:    time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]domain.DrugRecord{rec}, s.records...)
	s.persistLocked()
	return rec
}

// Dispense decrements the record's quantity, flooring at zero. An unknown id
// is a no-op: dispenses can race with a stale UI snapshot.
func (s *Store) Dispense(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			if s.records[i].Quantity > 0 {
				s.records[i].Quantity--
			}
			s.persistLocked()
			return
		}
	}
}

// Delete removes the record with the given id. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// CriticalCount returns how many records are past their expiry date. It is
// recomputed from the full collection on every call.
func (s *Store) CriticalCount() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, rec := range s.records {
		if domain.Classify(rec, now) == domain.StatusCritical {
			count++
		}
	}
	return count
}

// Close drains the write-behind queue so the last mutation reaches durable
// storage before the process exits.
func (s *Store) Close() {
	s.queue.wait()
}

// persistLocked snapshots the whole collection and hands it to the
// write-behind queue. Callers hold s.mu, so every scheduled blob is a
// consistent full-collection snapshot.
func (s *Store) persistLocked() {
	if !s.loaded {
		return
	}
	payload, err := json.Marshal(s.records)
	if err != nil {
		log.Printf("inventory: encode snapshot: %v", err)
		return
	}
	s.queue.schedule(payload)
}
