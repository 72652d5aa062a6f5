package entities

type Farm struct {
	ID          int     `gorm:"primaryKey" json:"Id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Size        float64 `json:"size"`
	SizeUnit    string  `json:"sizeUnit"` // acres|hectares|sq ft|sq m
	ActiveCrops int     `json:"activeCrops"`
}

func (f Farm) RecordID() int      { return f.ID }
func (f Farm) WithID(id int) Farm { f.ID = id; return f }
