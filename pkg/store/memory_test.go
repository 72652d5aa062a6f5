package store

import (
	"testing"

	"farmstead/entities"
)

func TestMemory_InsertAssignsMonotonicIDs(t *testing.T) {
	m := NewMemory[entities.Farm]("farm")

	first, err := m.Insert(entities.Farm{Name: "North Field"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("first id on empty store = %d, want 1", first.ID)
	}

	m.Seed([]entities.Farm{{ID: 3, Name: "Hilltop"}, {ID: 7, Name: "Riverside"}})
	next, err := m.Insert(entities.Farm{Name: "Meadow"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if next.ID != 8 {
		t.Fatalf("id after max 7 = %d, want 8", next.ID)
	}
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory[entities.Crop]("crop")
	created, err := m.Insert(entities.Crop{Name: "Corn", Variety: "Sweet", FarmID: 2, Status: entities.CropSeedling, Area: 12.5})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := m.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, created)
	}
}

func TestMemory_ListIsDefensiveCopy(t *testing.T) {
	m := NewMemory[entities.Farm]("farm")
	m.Seed([]entities.Farm{{ID: 1, Name: "Original"}})

	list, _ := m.List()
	list[0].Name = "Mutated"

	again, _ := m.List()
	if again[0].Name != "Original" {
		t.Fatalf("caller mutation leaked into store: %q", again[0].Name)
	}
}

func TestMemory_UpdateAppliesAndPreservesID(t *testing.T) {
	m := NewMemory[entities.Farm]("farm")
	m.Seed([]entities.Farm{{ID: 4, Name: "Old", Size: 20}})

	out, err := m.Update(4, func(f entities.Farm) entities.Farm {
		f.Name = "New"
		f.ID = 99 // must not stick
		return f
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.ID != 4 || out.Name != "New" || out.Size != 20 {
		t.Fatalf("unexpected record %+v", out)
	}
	if _, err := m.Update(42, func(f entities.Farm) entities.Farm { return f }); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemory_DeleteRemovesExactlyOne(t *testing.T) {
	m := NewMemory[entities.Task]("task")
	m.Seed([]entities.Task{{ID: 1}, {ID: 2}, {ID: 3}})

	ok, err := m.Delete(2)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	list, _ := m.List()
	if len(list) != 2 {
		t.Fatalf("size after delete = %d, want 2", len(list))
	}
	if _, err := m.Get(2); !IsNotFound(err) {
		t.Fatalf("deleted id still readable: %v", err)
	}
	if ok, err := m.Delete(2); ok || !IsNotFound(err) {
		t.Fatalf("second delete: ok=%v err=%v", ok, err)
	}
}
