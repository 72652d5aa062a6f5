package entities

import "time"

const (
	TxIncome  = "income"
	TxExpense = "expense"
)

type Transaction struct {
	ID          int       `gorm:"primaryKey" json:"Id"`
	Type        string    `json:"type"` // income|expense
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	FarmID      *int      `gorm:"index" json:"farmId"`
	CropID      *int      `gorm:"index" json:"cropId"`
}

func (t Transaction) RecordID() int             { return t.ID }
func (t Transaction) WithID(id int) Transaction { t.ID = id; return t }
