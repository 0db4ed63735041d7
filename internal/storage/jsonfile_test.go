package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"spendbook/internal/clock"
	"spendbook/internal/core"
)

var testNow = time.Date(2024, 7, 15, 14, 30, 22, 0, time.UTC)

func testClock() clock.Fixed {
	return clock.Fixed{Instant: testNow}
}

func sampleTransactions() []core.Transaction {
	return []core.Transaction{
		core.NewTransaction(testNow, decimal.NewFromFloat(12.5), "coffee", core.CategoryFoodDrinks, "2024-07-15"),
		core.NewTransaction(testNow, decimal.NewFromInt(60), "opal top up", core.CategoryTransportation, "2024-07-14"),
	}
}

func TestJSONFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget_data.json")
	f := NewJSONFile(path, testClock())
	ctx := context.Background()

	want := sampleTransactions()
	if err := f.Save(ctx, want, testNow); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := f.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID ||
			!got[i].Amount.Equal(want[i].Amount) ||
			got[i].Description != want[i].Description ||
			got[i].Category != want[i].Category ||
			got[i].Date != want[i].Date ||
			got[i].Timestamp != want[i].Timestamp {
			t.Fatalf("transaction %d not identical after round-trip: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestJSONFileWritesContractShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget_data.json")
	f := NewJSONFile(path, testClock())

	if err := f.Save(context.Background(), sampleTransactions(), testNow); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	content := string(raw)

	if !strings.Contains(content, `"transactions"`) || !strings.Contains(content, `"last_updated"`) {
		t.Fatalf("expected wrapped object layout, got:\n%s", content)
	}
	// amounts stay bare JSON numbers for compatibility with legacy files
	if !strings.Contains(content, `"amount": 12.5`) {
		t.Fatalf("expected unquoted amount, got:\n%s", content)
	}
	if !strings.Contains(content, testNow.Format(time.RFC3339)) {
		t.Fatalf("expected RFC 3339 last_updated, got:\n%s", content)
	}
}

func TestJSONFileMissingFileIsEmpty(t *testing.T) {
	f := NewJSONFile(filepath.Join(t.TempDir(), "absent.json"), testClock())
	got, err := f.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty ledger, got %d transactions", len(got))
	}
}

func TestJSONFileAcceptsLegacyArray(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "legacy.json")
	wrapped := filepath.Join(dir, "wrapped.json")

	records := `[{"id": "T20240715143022", "amount": 12.5, "description": "coffee",
		"category": "Food&Drinks", "date": "2024-07-15", "timestamp": "2024-07-15 14:30:22"}]`
	if err := os.WriteFile(legacy, []byte(records), 0644); err != nil {
		t.Fatalf("write legacy: %v", err)
	}
	if err := os.WriteFile(wrapped, []byte(`{"transactions": `+records+`, "last_updated": "2024-07-15T14:30:22+10:00"}`), 0644); err != nil {
		t.Fatalf("write wrapped: %v", err)
	}

	ctx := context.Background()
	fromLegacy, err := NewJSONFile(legacy, testClock()).Load(ctx)
	if err != nil {
		t.Fatalf("load legacy: %v", err)
	}
	fromWrapped, err := NewJSONFile(wrapped, testClock()).Load(ctx)
	if err != nil {
		t.Fatalf("load wrapped: %v", err)
	}

	if len(fromLegacy) != 1 || len(fromWrapped) != 1 {
		t.Fatalf("expected one transaction from each layout, got %d and %d", len(fromLegacy), len(fromWrapped))
	}
	a, b := fromLegacy[0], fromWrapped[0]
	if a.ID != b.ID || !a.Amount.Equal(b.Amount) || a.Description != b.Description ||
		a.Category != b.Category || a.Date != b.Date || a.Timestamp != b.Timestamp {
		t.Fatalf("layouts must produce identical stores: %+v vs %+v", a, b)
	}
}

func TestJSONFileCoercesMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	content := `[{"id": "T20200101000000", "amount": 9, "description": "bus",
		"timestamp": "2020-01-01 00:00:00"}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewJSONFile(path, testClock()).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one transaction, got %d", len(got))
	}
	if got[0].Category != core.CategoryOther {
		t.Fatalf("expected Other for missing category, got %s", got[0].Category)
	}
	if got[0].Date != "2024-07-15" {
		t.Fatalf("expected today for missing date, got %s", got[0].Date)
	}
	if got[0].ID != "T20200101000000" || got[0].Timestamp != "2020-01-01 00:00:00" {
		t.Fatalf("id and timestamp must be preserved, got %+v", got[0])
	}
}

func TestJSONFileMalformedContent(t *testing.T) {
	cases := []string{
		`{not json`,
		`{"unexpected": true}`,
		`42`,
		`[{"id": "T1", "amount": "not a number", "description": "x"}]`,
	}
	for i, content := range cases {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("case %d write: %v", i, err)
		}
		got, err := NewJSONFile(path, testClock()).Load(context.Background())
		if err == nil {
			t.Fatalf("case %d: expected load-failure notice", i)
		}
		if len(got) != 0 {
			t.Fatalf("case %d: expected empty result, got %d transactions", i, len(got))
		}
	}
}
