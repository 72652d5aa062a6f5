package serviceImp

import (
	"testing"

	"farmstead/entities"
	"farmstead/pkg/store"
)

func TestCreateDefaultsToSeedling(t *testing.T) {
	repo := store.NewMemory[entities.Crop]("crop")
	svc := New(repo)

	created, err := svc.Create(entities.Crop{Name: "Corn", Status: entities.CropReady})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != entities.CropSeedling {
		t.Fatalf("status = %q, want seedling", created.Status)
	}
}

func TestUpdateStatusTouchesOnlyTheTarget(t *testing.T) {
	repo := store.NewMemory[entities.Crop]("crop")
	repo.Seed([]entities.Crop{
		{ID: 1, Name: "Corn", Status: entities.CropGrowing},
		{ID: 2, Name: "Wheat", Status: entities.CropReady},
	})
	svc := New(repo)

	out, err := svc.UpdateStatus(2, entities.CropHarvested)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if out.Status != entities.CropHarvested || out.Name != "Wheat" {
		t.Fatalf("unexpected record %+v", out)
	}
	other, _ := svc.GetByID(1)
	if other.Status != entities.CropGrowing {
		t.Fatalf("neighbor mutated: %+v", other)
	}
}

func TestUpdatePreservesStatus(t *testing.T) {
	repo := store.NewMemory[entities.Crop]("crop")
	repo.Seed([]entities.Crop{{ID: 1, Name: "Corn", Status: entities.CropReady}})
	svc := New(repo)

	out, err := svc.Update(1, entities.Crop{Name: "Corn", Variety: "Golden Bantam", Status: entities.CropSeedling})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.Status != entities.CropReady || out.Variety != "Golden Bantam" {
		t.Fatalf("unexpected record %+v", out)
	}
}
