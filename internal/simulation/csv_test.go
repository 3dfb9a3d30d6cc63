package simulation

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteLedgerCSV(t *testing.T) {
	result := mustRun(t, defaultParams())

	path := filepath.Join(t.TempDir(), "ledger.csv")
	if err := WriteLedgerCSV(path, result.Ledger); err != nil {
		t.Fatalf("WriteLedgerCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}
	if len(rows) != len(result.Ledger)+1 {
		t.Fatalf("expected header + %d rows, got %d", len(result.Ledger), len(rows))
	}
	if rows[0][0] != "date" || rows[0][2] != "stock_level" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "2025-01-05" {
		t.Errorf("first row date %q, want 2025-01-05", rows[1][0])
	}
}
