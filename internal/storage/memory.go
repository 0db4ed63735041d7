package storage

import (
	"context"
	"time"

	"spendbook/internal/core"
)

// Memory is a session-only persister: saves replace the held slice and are
// lost when the process exits. Used by the memory backend and in tests.
type Memory struct {
	transactions []core.Transaction
	lastUpdated  time.Time
	saves        int
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]core.Transaction, error) {
	out := make([]core.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out, nil
}

func (m *Memory) Save(_ context.Context, transactions []core.Transaction, lastUpdated time.Time) error {
	m.transactions = make([]core.Transaction, len(transactions))
	copy(m.transactions, transactions)
	m.lastUpdated = lastUpdated
	m.saves++
	return nil
}

// Saves returns how many saves have happened, for tests.
func (m *Memory) Saves() int {
	return m.saves
}

// LastUpdated returns the instant recorded by the most recent save.
func (m *Memory) LastUpdated() time.Time {
	return m.lastUpdated
}
