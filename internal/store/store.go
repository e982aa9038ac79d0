// Package store owns the canonical shift collection and its persistence.
// The collection lives in memory; every mutation writes a full JSON
// snapshot to a key-value backend under one fixed key.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ffusco/turni/internal/config"
	"github.com/ffusco/turni/internal/models"
	"github.com/ffusco/turni/internal/util"
)

// Store holds the shift collection for the process lifetime. It is the
// sole writer; it is driven from the single TUI update goroutine and
// therefore needs no locking.
type Store struct {
	kv     KV
	shifts []models.Shift
}

// Open loads the last snapshot from kv. A missing or unparsable snapshot
// yields an empty collection, never an error; only backend failures
// propagate as errors from later mutations.
func Open(ctx context.Context, kv KV) *Store {
	s := &Store{kv: kv}

	raw, ok, err := kv.Get(ctx, config.SnapshotKey)
	if err != nil {
		util.LogError("load snapshot", err)
		return s
	}
	if !ok {
		return s
	}
	var shifts []models.Shift
	if err := json.Unmarshal([]byte(raw), &shifts); err != nil {
		util.LogError("decode snapshot", err)
		return s
	}
	s.shifts = shifts
	return s
}

// Add assigns a fresh ID to the seed, appends it and persists. When the
// seed declares a custom duration the start/end pair is cleared so a
// stored shift is always in exactly one input mode.
func (s *Store) Add(ctx context.Context, seed models.Shift) (models.Shift, error) {
	seed.ID = util.NewID()
	if seed.CustomDuration > 0 {
		seed.StartTime = ""
		seed.EndTime = ""
		seed.BreakMinutes = 0
	}
	s.shifts = append(s.shifts, seed)
	if err := s.persist(ctx); err != nil {
		return models.Shift{}, wrapErr("add", seed.ID, err)
	}
	return seed, nil
}

// Remove deletes the shift with the given ID. Removing an unknown ID is a
// no-op, not an error.
func (s *Store) Remove(ctx context.Context, id string) error {
	kept := s.shifts[:0]
	removed := false
	for _, sh := range s.shifts {
		if sh.ID == id {
			removed = true
			continue
		}
		kept = append(kept, sh)
	}
	s.shifts = kept
	if !removed {
		return nil
	}
	return wrapErr("remove", id, s.persist(ctx))
}

// ByDate returns the shifts recorded on the given date, in stored order.
func (s *Store) ByDate(date time.Time) []models.Shift {
	key := date.Format(config.DateFormat)
	var out []models.Shift
	for _, sh := range s.shifts {
		if sh.Date == key {
			out = append(out, sh)
		}
	}
	return out
}

// ByMonth returns the shifts falling in the given month. Order is
// unspecified; the aggregator sorts.
func (s *Store) ByMonth(year int, month time.Month) []models.Shift {
	var out []models.Shift
	for _, sh := range s.shifts {
		if sh.InMonth(year, month) {
			out = append(out, sh)
		}
	}
	return out
}

// All returns the full collection in stored order.
func (s *Store) All() []models.Shift {
	out := make([]models.Shift, len(s.shifts))
	copy(out, s.shifts)
	return out
}

func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.shifts)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, config.SnapshotKey, string(raw))
}
