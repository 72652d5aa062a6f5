package service

import "farmstead/entities"

type CropService interface {
	GetAll() ([]entities.Crop, error)
	GetByID(id int) (entities.Crop, error)
	Create(c entities.Crop) (entities.Crop, error)
	Update(id int, c entities.Crop) (entities.Crop, error)
	Delete(id int) (bool, error)
	// UpdateStatus patches the lifecycle field only.
	UpdateStatus(id int, status string) (entities.Crop, error)
}
