package serviceImp

import (
	"bytes"
	"testing"

	"farmstead/entities"
	"farmstead/pkg/store"
)

func TestSummaryNetsIncomeAgainstExpense(t *testing.T) {
	repo := store.NewMemory[entities.Transaction]("transaction")
	repo.Seed([]entities.Transaction{
		{ID: 1, Type: entities.TxIncome, Amount: 100},
		{ID: 2, Type: entities.TxExpense, Amount: 40},
	})
	svc := New(repo)

	sum, err := svc.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Income != 100 || sum.Expense != 40 || sum.Net != 60 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestExportProducesAWorkbook(t *testing.T) {
	repo := store.NewMemory[entities.Transaction]("transaction")
	repo.Seed([]entities.Transaction{{ID: 1, Type: entities.TxIncome, Amount: 12.5, Category: "crop-sales"}})
	svc := New(repo)

	b, err := svc.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	// xlsx files are zip archives
	if len(b) < 4 || !bytes.HasPrefix(b, []byte("PK")) {
		t.Fatalf("export does not look like a spreadsheet (%d bytes)", len(b))
	}
}
