package database

import "testing"

func TestLoadSeedFixtures(t *testing.T) {
	s, err := LoadSeed()
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	if len(s.Farms) == 0 || len(s.Crops) == 0 || len(s.Tasks) == 0 || len(s.Transactions) == 0 {
		t.Fatalf("empty fixture list: %+v", s)
	}
	for _, f := range s.Farms {
		if f.ID == 0 {
			t.Fatalf("farm fixture without id: %+v", f)
		}
	}
	for _, c := range s.Crops {
		if c.FarmID == 0 {
			t.Fatalf("crop fixture without farm reference: %+v", c)
		}
		if c.PlantingDate.IsZero() || c.ExpectedHarvestDate.IsZero() {
			t.Fatalf("crop fixture with unparsed dates: %+v", c)
		}
	}
	for _, tk := range s.Tasks {
		if tk.Completed != (tk.CompletedAt != nil) {
			t.Fatalf("task fixture breaks the completion invariant: %+v", tk)
		}
	}
}
