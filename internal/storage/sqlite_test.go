package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteRoundTrip(t *testing.T) {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "spendbook.db"), testClock())
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	defer repo.Close()
	ctx := context.Background()

	want := sampleTransactions()
	if err := repo.Save(ctx, want, testNow); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
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

func TestSQLiteSaveReplacesWholeLedger(t *testing.T) {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "spendbook.db"), testClock())
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	defer repo.Close()
	ctx := context.Background()

	if err := repo.Save(ctx, sampleTransactions(), testNow); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, nil, testNow); err != nil {
		t.Fatalf("clearing save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty ledger after clearing save, got %d transactions", len(got))
	}
}
