// Package store owns the in-memory transaction collection for one session.
// The store is constructed at session start, handed to whichever component
// needs it, and persists the whole ledger through its backend after every
// mutation. There is no concurrent writer; a single session owns the store.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"spendbook/internal/backend"
	"spendbook/internal/clock"
	"spendbook/internal/core"
)

// Store is the ordered in-memory transaction collection. Insertion order is
// what gets persisted; display order is derived by List.
type Store struct {
	clk          clock.Clock
	persister    backend.Persister
	transactions []core.Transaction
}

// Stats is the record-view headline: totals over the whole store.
type Stats struct {
	Total      decimal.Decimal
	Count      int
	Average    decimal.Decimal
	Categories int // distinct categories present
}

func New(clk clock.Clock, persister backend.Persister) *Store {
	return &Store{clk: clk, persister: persister}
}

// Reload replaces the in-memory ledger with the persisted one. On failure the
// store is left empty and the error is returned for a user-visible notice.
func (s *Store) Reload(ctx context.Context) error {
	transactions, err := s.persister.Load(ctx)
	if err != nil {
		s.transactions = nil
		return fmt.Errorf("load ledger: %w", err)
	}
	s.transactions = transactions
	return nil
}

// Add appends a transaction and persists the whole store. Two transactions
// created within the same clock second would share an id; the later one gets
// a short random suffix so ids stay unique within the session. A save failure
// is returned for a notice but the in-memory append stands.
func (s *Store) Add(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	t.ID = s.uniqueID(t.ID)
	s.transactions = append(s.transactions, t)
	if err := s.Save(ctx); err != nil {
		return t, err
	}
	return t, nil
}

func (s *Store) uniqueID(id string) string {
	for s.hasID(id) {
		id = id + "-" + strings.Split(uuid.NewString(), "-")[0]
	}
	return id
}

func (s *Store) hasID(id string) bool {
	for _, existing := range s.transactions {
		if existing.ID == id {
			return true
		}
	}
	return false
}

// List returns the display order: descending by (date, timestamp). The
// underlying insertion order is untouched.
func (s *Store) List() []core.Transaction {
	out := s.All()
	core.SortForDisplay(out)
	return out
}

// All returns a copy of the transactions in insertion order.
func (s *Store) All() []core.Transaction {
	out := make([]core.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Len returns the number of transactions.
func (s *Store) Len() int {
	return len(s.transactions)
}

// Save persists the full ledger through the backend.
func (s *Store) Save(ctx context.Context) error {
	if err := s.persister.Save(ctx, s.transactions, s.clk.Now()); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// ClearAll empties the store and persists the empty ledger.
func (s *Store) ClearAll(ctx context.Context) error {
	s.transactions = nil
	return s.Save(ctx)
}

// FilterRange returns transactions dated within [start, end] inclusive.
func (s *Store) FilterRange(start, end time.Time) []core.Transaction {
	return core.FilterByRange(s.transactions, start, end)
}

// ByCategory returns transactions with the exact category, insertion order.
func (s *Store) ByCategory(category core.Category) []core.Transaction {
	var out []core.Transaction
	for _, t := range s.transactions {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Stats summarizes the whole store for the record view. ok is false when the
// store is empty.
func (s *Store) Stats() (Stats, bool) {
	count := len(s.transactions)
	if count == 0 {
		return Stats{}, false
	}
	total := core.SumAmounts(s.transactions)
	seen := make(map[core.Category]struct{})
	for _, t := range s.transactions {
		seen[t.Category] = struct{}{}
	}
	return Stats{
		Total:      total,
		Count:      count,
		Average:    total.Div(decimal.NewFromInt(int64(count))).Round(2),
		Categories: len(seen),
	}, true
}

// DateRange returns the earliest and latest stored dates.
func (s *Store) DateRange() (earliest, latest string, ok bool) {
	return core.DateBounds(s.transactions)
}
