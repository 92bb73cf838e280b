package history

import (
	"sync"
	"time"

	"RestoReservasi/internal/storage"
	"RestoReservasi/pkg/logging"

	"github.com/pkg/errors"
)

// Repository is the order history cache. The key function decides which history
// (per user or anonymous) is in use.
type Repository struct {
	store storage.Store
	key   func() string
	now   func() time.Time

	mu sync.Mutex
}

func NewRepository(store storage.Store, key func() string) *Repository {
	if key == nil {
		key = func() string { return storage.KeyHistory }
	}
	return &Repository{store: store, key: key, now: time.Now}
}

func (r *Repository) load() ([]*Record, error) {
	var records []*Record
	if _, err := storage.GetJSON(r.store, r.key(), &records); err != nil {
		return nil, errors.Wrap(err, "failed to read history")
	}
	return records, nil
}

func (r *Repository) save(records []*Record) error {
	if err := storage.SetJSON(r.store, r.key(), records); err != nil {
		return errors.Wrap(err, "failed to write history")
	}
	return nil
}

func (r *Repository) List() ([]*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *Repository) Get(id int) (*Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, false, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, true, nil
		}
	}
	return nil, false, nil
}

// Upsert replaces the record with the same id in place or appends a new one.
func (r *Repository) Upsert(rec *Record) error {
	logger := logging.GetLogger()
	logger.Debugf("history upsert %d (%s)", rec.ID, rec.Status)

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	rec.UpdatedAt = r.now().Format(time.RFC3339)
	for i, old := range records {
		if old.ID == rec.ID {
			records[i] = rec
			return r.save(records)
		}
	}
	return r.save(append(records, rec))
}

// UpdateStatus sets the status and refreshes updated_at. It reports whether the record exists.
func (r *Repository) UpdateStatus(id int, status string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return false, err
	}
	for _, rec := range records {
		if rec.ID == id {
			rec.Status = status
			rec.UpdatedAt = r.now().Format(time.RFC3339)
			return true, r.save(records)
		}
	}
	return false, nil
}

// Clear drops the whole history. Only an explicit user action calls this.
func (r *Repository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Remove(r.key())
}
