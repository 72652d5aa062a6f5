// Package pagestate models the per-page view state every dashboard screen
// keeps: the loaded list, loading/error flags, and the active search and
// filter. Mutations merge the single returned record into the local list
// instead of re-fetching; the merge helpers are pure so that stays testable.
package pagestate

import "farmstead/pkg/store"

type Page[T store.Record[T]] struct {
	Items        []T
	Loading      bool
	Err          string
	SearchTerm   string
	ActiveFilter string
}

func New[T store.Record[T]]() *Page[T] { return &Page[T]{ActiveFilter: "all"} }

func (p *Page[T]) BeginLoad() {
	p.Loading = true
	p.Err = ""
}

// FinishLoad applies a fetch result. On failure the previous items stay put;
// recovery is a user-triggered reload.
func (p *Page[T]) FinishLoad(items []T, err error) {
	p.Loading = false
	if err != nil {
		p.Err = err.Error()
		return
	}
	p.Items = items
}

func (p *Page[T]) MergeCreated(rec T)  { p.Items = MergeCreated(p.Items, rec) }
func (p *Page[T]) MergeUpdated(rec T)  { p.Items = MergeUpdated(p.Items, rec) }
func (p *Page[T]) MergeDeleted(id int) { p.Items = MergeDeleted(p.Items, id) }

// MergeCreated appends the newly created record to a copy of the snapshot.
func MergeCreated[T store.Record[T]](items []T, rec T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, rec)
}

// MergeUpdated replaces the record with the same id; a miss leaves the
// snapshot unchanged.
func MergeUpdated[T store.Record[T]](items []T, rec T) []T {
	out := append([]T(nil), items...)
	for i, it := range out {
		if it.RecordID() == rec.RecordID() {
			out[i] = rec
			break
		}
	}
	return out
}

// MergeDeleted filters the id out of a copy of the snapshot.
func MergeDeleted[T store.Record[T]](items []T, id int) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordID() != id {
			out = append(out, it)
		}
	}
	return out
}
