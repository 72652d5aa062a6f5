package serviceImp

import (
	"testing"
	"time"

	"farmstead/entities"
	"farmstead/pkg/store"
)

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
}

func newSvc(seed []entities.Task) *taskSvc {
	repo := store.NewMemory[entities.Task]("task")
	repo.Seed(seed)
	return &taskSvc{repo: repo, now: fixedNow}
}

func TestToggleCompleteIsItsOwnInverse(t *testing.T) {
	svc := newSvc([]entities.Task{{ID: 1, Title: "Irrigate", DueDate: fixedNow().Add(24 * time.Hour)}})

	done, err := svc.ToggleComplete(1)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !done.Completed || done.CompletedAt == nil || !done.CompletedAt.Equal(fixedNow()) {
		t.Fatalf("after first toggle: %+v", done)
	}

	undone, err := svc.ToggleComplete(1)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if undone.Completed || undone.CompletedAt != nil {
		t.Fatalf("after second toggle: %+v", undone)
	}
}

func TestCreateForcesIncompleteDefaults(t *testing.T) {
	svc := newSvc(nil)
	at := fixedNow()
	created, err := svc.Create(entities.Task{Title: "Scout", Completed: true, CompletedAt: &at})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Completed || created.CompletedAt != nil {
		t.Fatalf("create must not honor completion from the draft: %+v", created)
	}
}

func TestOverdueOmitsCompletedAndSortsAscending(t *testing.T) {
	yesterday := fixedNow().Add(-24 * time.Hour)
	lastWeek := fixedNow().Add(-7 * 24 * time.Hour)
	tomorrow := fixedNow().Add(24 * time.Hour)
	svc := newSvc([]entities.Task{
		{ID: 1, Title: "Late", DueDate: yesterday},
		{ID: 2, Title: "Very late", DueDate: lastWeek},
		{ID: 3, Title: "Upcoming", DueDate: tomorrow},
	})

	got, err := svc.Overdue()
	if err != nil {
		t.Fatalf("overdue: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("unexpected overdue set: %+v", got)
	}

	if _, err := svc.ToggleComplete(1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	got, _ = svc.Overdue()
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("completed task still reported overdue: %+v", got)
	}
}

func TestUpdateLeavesCompletionAlone(t *testing.T) {
	at := fixedNow().Add(-time.Hour)
	svc := newSvc([]entities.Task{{ID: 1, Title: "Old", Completed: true, CompletedAt: &at}})

	out, err := svc.Update(1, entities.Task{Title: "New", Priority: entities.PriorityHigh, DueDate: fixedNow()})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.Title != "New" || !out.Completed || out.CompletedAt == nil {
		t.Fatalf("update clobbered completion: %+v", out)
	}
}
