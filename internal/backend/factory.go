package backend

import (
	"context"
	"fmt"

	"spendbook/internal/clock"
	"spendbook/internal/log"
	"spendbook/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	clk    clock.Clock
	logger *log.Logger
}

// NewFactory creates a persister factory. The clock is handed to persisters
// so rehydration defaults derive from the one fixed-timezone source.
func NewFactory(clk clock.Clock, logger *log.Logger) Factory {
	return &DefaultFactory{clk: clk, logger: logger}
}

// CreatePersister implements Factory.CreatePersister.
func (f *DefaultFactory) CreatePersister(_ context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case JSONFileBackend:
		jf := storage.NewJSONFile(config.DataFilePath, f.clk)
		f.logger.Info("Initialized jsonfile backend", log.FieldPath, config.DataFilePath)
		return &Result{Persister: jf}, nil

	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath, f.clk)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite repository: %w", err)
		}
		f.logger.Info("Initialized sqlite backend", log.FieldPath, config.SQLiteDBPath)
		return &Result{Persister: repo, Cleanup: repo.Close}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &Result{Persister: storage.NewMemory()}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
