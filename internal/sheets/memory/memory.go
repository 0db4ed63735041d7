// Package memory is an in-process LedgerExporter used in tests and when no
// spreadsheet is configured.
package memory

import (
	"context"

	"spendbook/internal/core"
	ports "spendbook/internal/sheets"
)

type Exporter struct {
	exported []core.Transaction
	exports  int
}

// Ensure interface conformance
var _ ports.LedgerExporter = (*Exporter)(nil)

func New() *Exporter {
	return &Exporter{}
}

// Export replaces the held snapshot, like a real sheet would be replaced.
func (e *Exporter) Export(_ context.Context, transactions []core.Transaction) error {
	e.exported = make([]core.Transaction, len(transactions))
	copy(e.exported, transactions)
	e.exports++
	return nil
}

// Exported returns the last exported snapshot.
func (e *Exporter) Exported() []core.Transaction {
	out := make([]core.Transaction, len(e.exported))
	copy(out, e.exported)
	return out
}

// Exports returns how many exports have happened.
func (e *Exporter) Exports() int {
	return e.exports
}
