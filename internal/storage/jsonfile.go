package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spendbook/internal/clock"
	"spendbook/internal/core"
)

// JSONFile persists the whole ledger as a single JSON document:
//
//	{"transactions": [...], "last_updated": "<RFC 3339 instant>"}
//
// A legacy bare array of transaction records is also accepted on load. Every
// save overwrites the full file; there is no incremental log.
type JSONFile struct {
	path string
	clk  clock.Clock
}

type ledgerDocument struct {
	Transactions []transactionRecord `json:"transactions"`
	LastUpdated  string              `json:"last_updated"`
}

func NewJSONFile(path string, clk clock.Clock) *JSONFile {
	return &JSONFile{path: path, clk: clk}
}

// Load reads the ledger file. A missing file is an empty ledger, not an
// error; any malformed content is reported so the caller can surface a
// load-failure notice while continuing with an empty store.
func (f *JSONFile) Load(_ context.Context) ([]core.Transaction, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	now := f.clk.Now()
	trimmed := bytes.TrimSpace(raw)

	// Legacy layout: a bare array of records.
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var recs []transactionRecord
		if err := json.Unmarshal(trimmed, &recs); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.path, err)
		}
		return decodeRecords(now, recs)
	}

	var doc struct {
		Transactions *[]transactionRecord `json:"transactions"`
		LastUpdated  string               `json:"last_updated"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	if doc.Transactions == nil {
		return nil, fmt.Errorf("parse %s: missing transactions field", f.path)
	}
	return decodeRecords(now, *doc.Transactions)
}

// Save overwrites the ledger file with the full transaction list.
func (f *JSONFile) Save(_ context.Context, transactions []core.Transaction, lastUpdated time.Time) error {
	doc := ledgerDocument{
		Transactions: make([]transactionRecord, 0, len(transactions)),
		LastUpdated:  lastUpdated.Format(time.RFC3339),
	}
	for _, t := range transactions {
		doc.Transactions = append(doc.Transactions, encodeRecord(t))
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	if err := os.WriteFile(f.path, raw, 0644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

// Path returns the backing file path.
func (f *JSONFile) Path() string {
	return f.path
}
