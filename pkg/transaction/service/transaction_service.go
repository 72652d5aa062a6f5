package service

import "farmstead/entities"

// Summary is the Finance page's headline numbers.
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

type TransactionService interface {
	GetAll() ([]entities.Transaction, error)
	GetByID(id int) (entities.Transaction, error)
	Create(t entities.Transaction) (entities.Transaction, error)
	Update(id int, t entities.Transaction) (entities.Transaction, error)
	Delete(id int) (bool, error)
	Summary() (Summary, error)
	// Export renders the full ledger as a spreadsheet.
	Export() ([]byte, error)
}
