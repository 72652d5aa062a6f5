package database

import (
	"embed"
	"encoding/json"
	"fmt"

	"farmstead/entities"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// SeedData is the mock-mode session state: one flat list per entity, loaded
// once at process start and mutated only in memory.
type SeedData struct {
	Farms        []entities.Farm
	Crops        []entities.Crop
	Tasks        []entities.Task
	Transactions []entities.Transaction
}

func LoadSeed() (SeedData, error) {
	var s SeedData
	if err := loadFixture("fixtures/farms.json", &s.Farms); err != nil {
		return s, err
	}
	if err := loadFixture("fixtures/crops.json", &s.Crops); err != nil {
		return s, err
	}
	if err := loadFixture("fixtures/tasks.json", &s.Tasks); err != nil {
		return s, err
	}
	if err := loadFixture("fixtures/transactions.json", &s.Transactions); err != nil {
		return s, err
	}
	return s, nil
}

func loadFixture(name string, out any) error {
	b, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
