package serviceImp

import (
	"farmstead/entities"
	"farmstead/pkg/farm/service"
	"farmstead/pkg/store"
)

type farmSvc struct{ repo store.Repository[entities.Farm] }

func New(repo store.Repository[entities.Farm]) service.FarmService { return &farmSvc{repo} }

func (s *farmSvc) GetAll() ([]entities.Farm, error) { return s.repo.List() }
func (s *farmSvc) GetByID(id int) (entities.Farm, error) { return s.repo.Get(id) }

func (s *farmSvc) Create(f entities.Farm) (entities.Farm, error) {
	f.ActiveCrops = 0
	return s.repo.Insert(f)
}

// Update leaves ActiveCrops alone; only the crop lifecycle moves that count.
func (s *farmSvc) Update(id int, f entities.Farm) (entities.Farm, error) {
	return s.repo.Update(id, func(cur entities.Farm) entities.Farm {
		cur.Name = f.Name
		cur.Location = f.Location
		cur.Size = f.Size
		cur.SizeUnit = f.SizeUnit
		return cur
	})
}

func (s *farmSvc) Delete(id int) (bool, error) { return s.repo.Delete(id) }
