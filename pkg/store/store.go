package store

import (
	"errors"
	"fmt"
)

// Record is anything carrying a store-assigned integer id. WithID returns a
// copy with the id set so stores never mutate caller-held values.
type Record[T any] interface {
	RecordID() int
	WithID(id int) T
}

// Repository is the one CRUD contract every entity service runs on, whatever
// the backend. Update takes the full next state as a function of the current
// one so partial patches and whole-record replacement go through the same
// path atomically.
type Repository[T Record[T]] interface {
	List() ([]T, error)
	Get(id int) (T, error)
	Insert(rec T) (T, error)
	Update(id int, apply func(T) T) (T, error)
	Delete(id int) (bool, error)
}

type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %d not found", e.Kind, e.ID) }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
