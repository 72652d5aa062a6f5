package service

import "farmstead/entities"

type FarmService interface {
	GetAll() ([]entities.Farm, error)
	GetByID(id int) (entities.Farm, error)
	Create(f entities.Farm) (entities.Farm, error)
	Update(id int, f entities.Farm) (entities.Farm, error)
	Delete(id int) (bool, error)
}
