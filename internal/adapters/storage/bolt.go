// Package storage provides the persistent journal repository backed by
// bbolt. One bucket holds all entries, keyed journal_<YYYY-MM-DD> to
// match the client's local storage contract, so an exported database is
// directly comparable with a browser export.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
	"github.com/fiveminutevibe/vibe-service/internal/ports"
)

// journalBucket holds all journal entries.
var journalBucket = []byte("journal")

// openTimeout bounds the file lock wait when another process holds the DB.
const openTimeout = 1 * time.Second

// BoltJournalConfig contains configuration for the journal repository.
type BoltJournalConfig struct {
	// Path is the database file location. Created if missing.
	Path string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// BoltJournal implements ports.JournalRepository on a bbolt database.
// bbolt serializes writes internally, so no extra locking is needed.
type BoltJournal struct {
	db     *bolt.DB
	logger *slog.Logger
}

var (
	_ ports.JournalRepository = (*BoltJournal)(nil)
	_ ports.HealthChecker     = (*BoltJournal)(nil)
)

// NewBoltJournal opens (or creates) the journal database.
func NewBoltJournal(cfg BoltJournalConfig) (*BoltJournal, error) {
	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(journalBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &BoltJournal{db: db, logger: logger}, nil
}

// Name implements ports.HealthChecker.
func (r *BoltJournal) Name() string {
	return "journal-store"
}

// Check implements ports.HealthChecker by verifying the journal bucket
// is readable.
func (r *BoltJournal) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(journalBucket) == nil {
			return errors.New("journal bucket missing")
		}

		return nil
	})
}

// Close closes the underlying database.
func (r *BoltJournal) Close() error {
	if r == nil || r.db == nil {
		return nil
	}

	return r.db.Close()
}

// journalRecord is the stored JSON shape of an entry.
type journalRecord struct {
	Gratitude    []string `json:"gratitude"`
	Goals        []string `json:"goals"`
	Affirmations []string `json:"affirmations"`
}

// Get retrieves the entry for a date seed.
// Implements ports.JournalRepository.
func (r *BoltJournal) Get(ctx context.Context, dateSeed string) (*domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var raw []byte

	if err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(journalBucket).Get([]byte(domain.JournalKey(dateSeed)))
		if v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if raw == nil {
		return nil, domain.NewNotFoundError("journal entry", dateSeed)
	}

	var rec journalRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}

	return &domain.JournalEntry{
		Gratitude:    rec.Gratitude,
		Goals:        rec.Goals,
		Affirmations: rec.Affirmations,
	}, nil
}

// Put stores the entry for a date seed, replacing any existing one.
// Implements ports.JournalRepository.
func (r *BoltJournal) Put(ctx context.Context, dateSeed string, entry *domain.JournalEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(journalRecord{
		Gratitude:    entry.Gratitude,
		Goals:        entry.Goals,
		Affirmations: entry.Affirmations,
	})
	if err != nil {
		return err
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(journalBucket).Put([]byte(domain.JournalKey(dateSeed)), raw)
	})
}

// ListDates returns stored date seeds newest first with the total count.
// Keys share the journal_ prefix and ISO dates sort lexically, so a
// reverse cursor walk yields descending calendar order.
// Implements ports.JournalRepository.
func (r *BoltJournal) ListDates(ctx context.Context, offset, limit int) ([]string, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	dates := make([]string, 0, limit)
	total := 0

	if err := r.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(journalBucket).Cursor()

		for k, _ := c.Last(); k != nil; k, _ = c.Prev() {
			if total >= offset && len(dates) < limit {
				dates = append(dates, strings.TrimPrefix(string(k), "journal_"))
			}
			total++
		}

		return nil
	}); err != nil {
		return nil, 0, err
	}

	return dates, total, nil
}
