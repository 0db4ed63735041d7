package sheets

import (
	"context"

	"spendbook/internal/core"
)

// LedgerExporter is the outbound port for pushing the ledger to an external
// spreadsheet. Export always sends the full transaction list; the destination
// is replaced, mirroring the full-overwrite persistence model.
type LedgerExporter interface {
	Export(ctx context.Context, transactions []core.Transaction) error
}
