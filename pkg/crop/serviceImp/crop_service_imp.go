package serviceImp

import (
	"farmstead/entities"
	"farmstead/pkg/crop/service"
	"farmstead/pkg/store"
)

type cropSvc struct{ repo store.Repository[entities.Crop] }

func New(repo store.Repository[entities.Crop]) service.CropService { return &cropSvc{repo} }

func (s *cropSvc) GetAll() ([]entities.Crop, error) { return s.repo.List() }
func (s *cropSvc) GetByID(id int) (entities.Crop, error) { return s.repo.Get(id) }

func (s *cropSvc) Create(c entities.Crop) (entities.Crop, error) {
	c.Status = entities.CropSeedling
	return s.repo.Insert(c)
}

// Update replaces the editable fields and keeps the current status; status
// moves only through UpdateStatus.
func (s *cropSvc) Update(id int, c entities.Crop) (entities.Crop, error) {
	return s.repo.Update(id, func(cur entities.Crop) entities.Crop {
		cur.Name = c.Name
		cur.Variety = c.Variety
		cur.FarmID = c.FarmID
		cur.PlantingDate = c.PlantingDate
		cur.ExpectedHarvestDate = c.ExpectedHarvestDate
		cur.Area = c.Area
		cur.Notes = c.Notes
		return cur
	})
}

func (s *cropSvc) Delete(id int) (bool, error) { return s.repo.Delete(id) }

func (s *cropSvc) UpdateStatus(id int, status string) (entities.Crop, error) {
	return s.repo.Update(id, func(cur entities.Crop) entities.Crop {
		cur.Status = status
		return cur
	})
}
