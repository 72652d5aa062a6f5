package store

import (
	"sync"
	"time"
)

// Memory is the seedable in-memory backend. Records are held as values in
// insertion order; every boundary hands out a copy, so callers never observe
// store mutation through aliasing. An optional latency is slept on each call
// to keep the mock mode honest about its asynchronous contract.
type Memory[T Record[T]] struct {
	mu      sync.Mutex
	kind    string
	latency time.Duration
	recs    []T
}

func NewMemory[T Record[T]](kind string) *Memory[T] { return &Memory[T]{kind: kind} }

func (m *Memory[T]) WithLatency(d time.Duration) *Memory[T] { m.latency = d; return m }

// Seed replaces the store contents. Called once at startup with the fixture
// records; ids in the fixtures are kept as-is.
func (m *Memory[T]) Seed(recs []T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append([]T(nil), recs...)
}

func (m *Memory[T]) wait() {
	if m.latency > 0 {
		time.Sleep(m.latency)
	}
}

func (m *Memory[T]) List() ([]T, error) {
	m.wait()
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]T(nil), m.recs...), nil
}

func (m *Memory[T]) Get(id int) (T, error) {
	m.wait()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.recs {
		if r.RecordID() == id {
			return r, nil
		}
	}
	var zero T
	return zero, &NotFoundError{Kind: m.kind, ID: id}
}

// Insert assigns max existing id + 1 (1 on an empty store) and appends.
func (m *Memory[T]) Insert(rec T) (T, error) {
	m.wait()
	m.mu.Lock()
	defer m.mu.Unlock()
	next := 1
	for _, r := range m.recs {
		if r.RecordID() >= next {
			next = r.RecordID() + 1
		}
	}
	rec = rec.WithID(next)
	m.recs = append(m.recs, rec)
	return rec, nil
}

func (m *Memory[T]) Update(id int, apply func(T) T) (T, error) {
	m.wait()
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.recs {
		if r.RecordID() == id {
			next := apply(r).WithID(id)
			m.recs[i] = next
			return next, nil
		}
	}
	var zero T
	return zero, &NotFoundError{Kind: m.kind, ID: id}
}

func (m *Memory[T]) Delete(id int) (bool, error) {
	m.wait()
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.recs {
		if r.RecordID() == id {
			m.recs = append(m.recs[:i], m.recs[i+1:]...)
			return true, nil
		}
	}
	return false, &NotFoundError{Kind: m.kind, ID: id}
}
