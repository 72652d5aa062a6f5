package serviceImp

import (
	"github.com/xuri/excelize/v2"

	"farmstead/entities"
	"farmstead/pkg/store"
	"farmstead/pkg/transaction/service"
)

type txSvc struct{ repo store.Repository[entities.Transaction] }

func New(repo store.Repository[entities.Transaction]) service.TransactionService {
	return &txSvc{repo}
}

func (s *txSvc) GetAll() ([]entities.Transaction, error) { return s.repo.List() }
func (s *txSvc) GetByID(id int) (entities.Transaction, error) { return s.repo.Get(id) }

func (s *txSvc) Create(t entities.Transaction) (entities.Transaction, error) {
	return s.repo.Insert(t)
}

func (s *txSvc) Update(id int, t entities.Transaction) (entities.Transaction, error) {
	return s.repo.Update(id, func(cur entities.Transaction) entities.Transaction {
		cur.Type = t.Type
		cur.Amount = t.Amount
		cur.Category = t.Category
		cur.Description = t.Description
		cur.Date = t.Date
		cur.FarmID = t.FarmID
		cur.CropID = t.CropID
		return cur
	})
}

func (s *txSvc) Delete(id int) (bool, error) { return s.repo.Delete(id) }

func (s *txSvc) Summary() (service.Summary, error) {
	all, err := s.repo.List()
	if err != nil {
		return service.Summary{}, err
	}
	var sum service.Summary
	for _, t := range all {
		switch t.Type {
		case entities.TxIncome:
			sum.Income += t.Amount
		case entities.TxExpense:
			sum.Expense += t.Amount
		}
	}
	sum.Net = sum.Income - sum.Expense
	return sum, nil
}

func (s *txSvc) Export() ([]byte, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Ledger"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Id", "Type", "Amount", "Category", "Description", "Date", "FarmId", "CropId"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for r, t := range all {
		vals := []any{t.ID, t.Type, t.Amount, t.Category, t.Description, t.Date.Format("2006-01-02"), fk(t.FarmID), fk(t.CropID)}
		for c, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fk(p *int) any {
	if p == nil {
		return ""
	}
	return *p
}
