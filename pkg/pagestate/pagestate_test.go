package pagestate

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"farmstead/entities"
)

func TestMergeHelpers(t *testing.T) {
	snapshot := []entities.Farm{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	created := MergeCreated(snapshot, entities.Farm{ID: 3, Name: "C"})
	if len(created) != 3 || created[2].ID != 3 {
		t.Fatalf("merge created: %+v", created)
	}

	updated := MergeUpdated(snapshot, entities.Farm{ID: 2, Name: "B2"})
	if updated[1].Name != "B2" || snapshot[1].Name != "B" {
		t.Fatalf("merge updated must not touch the snapshot: %+v / %+v", updated, snapshot)
	}

	missing := MergeUpdated(snapshot, entities.Farm{ID: 9, Name: "X"})
	if len(missing) != 2 || missing[0].Name != "A" || missing[1].Name != "B" {
		t.Fatalf("update miss changed the list: %+v", missing)
	}

	deleted := MergeDeleted(snapshot, 1)
	if len(deleted) != 1 || deleted[0].ID != 2 {
		t.Fatalf("merge deleted: %+v", deleted)
	}
}

func TestPageLoadLifecycle(t *testing.T) {
	p := New[entities.Farm]()
	p.BeginLoad()
	if !p.Loading || p.Err != "" {
		t.Fatalf("begin load: %+v", p)
	}

	p.FinishLoad([]entities.Farm{{ID: 1}}, nil)
	if p.Loading || len(p.Items) != 1 {
		t.Fatalf("finish load: %+v", p)
	}

	p.BeginLoad()
	p.FinishLoad(nil, errors.New("service down"))
	if p.Loading || p.Err != "service down" || len(p.Items) != 1 {
		t.Fatalf("failed load must keep prior items: %+v", p)
	}
}

func TestJoinFailsWhenAnyFetchFails(t *testing.T) {
	var calls int32
	ok := func() error { atomic.AddInt32(&calls, 1); return nil }
	bad := func() error { atomic.AddInt32(&calls, 1); return errors.New("boom") }

	if err := Join(ok, ok, ok); err != nil {
		t.Fatalf("all-ok join: %v", err)
	}
	if err := Join(ok, bad, ok); err == nil || err.Error() != "boom" {
		t.Fatalf("join error: %v", err)
	}
	if atomic.LoadInt32(&calls) != 6 {
		t.Fatalf("join must wait for every fetch, saw %d calls", calls)
	}
}

func TestDebouncerCollapsesBursts(t *testing.T) {
	var fired int32
	d := NewDebouncer(20 * time.Millisecond)
	for i := 0; i < 5; i++ {
		d.Do(func() { atomic.AddInt32(&fired, 1) })
	}
	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("fired %d times, want 1", got)
	}

	d.Do(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()
	time.Sleep(50 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("stop did not cancel: %d", got)
	}
}
