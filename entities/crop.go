package entities

import "time"

// Crop lifecycle statuses. The harvest action advances a crop through these in
// order; the general update path does not validate the field.
const (
	CropSeedling  = "seedling"
	CropGrowing   = "growing"
	CropReady     = "ready"
	CropHarvested = "harvested"
)

type Crop struct {
	ID                  int       `gorm:"primaryKey" json:"Id"`
	Name                string    `json:"name"`
	Variety             string    `json:"variety"`
	FarmID              int       `gorm:"index" json:"farmId"`
	PlantingDate        time.Time `json:"plantingDate"`
	ExpectedHarvestDate time.Time `json:"expectedHarvestDate"`
	Status              string    `json:"status"`
	Area                float64   `json:"area"`
	Notes               string    `json:"notes,omitempty"`
}

func (c Crop) RecordID() int      { return c.ID }
func (c Crop) WithID(id int) Crop { c.ID = id; return c }
