// Package storage implements the persistence backends for the transaction
// ledger: the canonical JSON flat file, an embedded sqlite database, and a
// session-only memory store.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"spendbook/internal/core"
)

// transactionRecord is the on-disk shape of a transaction. Amount is a bare
// JSON number, matching the files written by earlier versions of the ledger.
type transactionRecord struct {
	ID          string      `json:"id"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
	Timestamp   string      `json:"timestamp"`
}

func encodeRecord(t core.Transaction) transactionRecord {
	return transactionRecord{
		ID:          t.ID,
		Amount:      json.Number(t.Amount.String()),
		Description: t.Description,
		Category:    string(t.Category),
		Date:        t.Date,
		Timestamp:   t.Timestamp,
	}
}

// decodeRecord rehydrates a persisted record. Missing category and date are
// coerced to their construction defaults; id and timestamp are preserved
// verbatim.
func decodeRecord(now time.Time, rec transactionRecord) (core.Transaction, error) {
	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return core.Transaction{}, fmt.Errorf("record %s: bad amount %q: %w", rec.ID, rec.Amount, err)
	}
	return core.Rehydrate(now, rec.ID, amount, rec.Description, rec.Category, rec.Date, rec.Timestamp), nil
}

func decodeRecords(now time.Time, recs []transactionRecord) ([]core.Transaction, error) {
	transactions := make([]core.Transaction, 0, len(recs))
	for _, rec := range recs {
		t, err := decodeRecord(now, rec)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}
