package backend

import (
	"context"
	"time"

	"spendbook/internal/core"
)

// Persister is the persistence port for the transaction store. Save always
// receives the full ledger; load/save round-trips must be lossless over the
// six transaction fields.
type Persister interface {
	Load(ctx context.Context) ([]core.Transaction, error)
	Save(ctx context.Context, transactions []core.Transaction, lastUpdated time.Time) error
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result contains the persister instance and optional cleanup function.
type Result struct {
	Persister Persister
	Cleanup   CleanupFunc
}

// Factory creates persisters based on configuration.
type Factory interface {
	CreatePersister(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for persister creation.
type Config struct {
	Type Type

	// jsonfile specific
	DataFilePath string

	// sqlite specific
	SQLiteDBPath string
}

// Type represents the kind of persistence backend.
type Type string

const (
	JSONFileBackend Type = "jsonfile"
	SQLiteBackend   Type = "sqlite"
	MemoryBackend   Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case JSONFileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
