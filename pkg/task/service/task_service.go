package service

import "farmstead/entities"

type TaskService interface {
	GetAll() ([]entities.Task, error)
	GetByID(id int) (entities.Task, error)
	Create(t entities.Task) (entities.Task, error)
	Update(id int, t entities.Task) (entities.Task, error)
	Delete(id int) (bool, error)
	// ToggleComplete flips Completed and sets/clears CompletedAt in one call.
	ToggleComplete(id int) (entities.Task, error)
	// Overdue returns incomplete tasks past due, ascending by due date.
	Overdue() ([]entities.Task, error)
}
