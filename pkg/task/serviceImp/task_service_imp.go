package serviceImp

import (
	"sort"
	"time"

	"farmstead/entities"
	"farmstead/pkg/store"
	"farmstead/pkg/task/service"
)

type taskSvc struct {
	repo store.Repository[entities.Task]
	now  func() time.Time
}

func New(repo store.Repository[entities.Task]) service.TaskService {
	return &taskSvc{repo: repo, now: time.Now}
}

// NewWithClock lets tests pin the notion of "now".
func NewWithClock(repo store.Repository[entities.Task], now func() time.Time) service.TaskService {
	return &taskSvc{repo: repo, now: now}
}

func (s *taskSvc) GetAll() ([]entities.Task, error) { return s.repo.List() }
func (s *taskSvc) GetByID(id int) (entities.Task, error) { return s.repo.Get(id) }

func (s *taskSvc) Create(t entities.Task) (entities.Task, error) {
	t.Completed = false
	t.CompletedAt = nil
	return s.repo.Insert(t)
}

// Update never touches the completion pair; that goes through ToggleComplete.
func (s *taskSvc) Update(id int, t entities.Task) (entities.Task, error) {
	return s.repo.Update(id, func(cur entities.Task) entities.Task {
		cur.Title = t.Title
		cur.Description = t.Description
		cur.FarmID = t.FarmID
		cur.CropID = t.CropID
		cur.DueDate = t.DueDate
		cur.Priority = t.Priority
		cur.Category = t.Category
		return cur
	})
}

func (s *taskSvc) Delete(id int) (bool, error) { return s.repo.Delete(id) }

func (s *taskSvc) ToggleComplete(id int) (entities.Task, error) {
	return s.repo.Update(id, func(cur entities.Task) entities.Task {
		if cur.Completed {
			cur.Completed = false
			cur.CompletedAt = nil
		} else {
			done := s.now()
			cur.Completed = true
			cur.CompletedAt = &done
		}
		return cur
	})
}

func (s *taskSvc) Overdue() ([]entities.Task, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]entities.Task, 0, len(all))
	for _, t := range all {
		if !t.Completed && t.DueDate.Before(now) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}
