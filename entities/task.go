package entities

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a farm chore. CompletedAt is set iff Completed is true; the pair is
// only ever flipped together by the toggle operation.
type Task struct {
	ID          int        `gorm:"primaryKey" json:"Id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	FarmID      int        `gorm:"index" json:"farmId"`
	CropID      *int       `gorm:"index" json:"cropId"`
	DueDate     time.Time  `json:"dueDate"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (t Task) RecordID() int      { return t.ID }
func (t Task) WithID(id int) Task { t.ID = id; return t }
