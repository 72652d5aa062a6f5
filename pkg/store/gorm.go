package store

import (
	"errors"

	"gorm.io/gorm"
)

// Gorm is the durable backend over sqlite. Same contract as Memory; the
// sqlite rowid keeps id assignment monotonic.
type Gorm[T Record[T]] struct {
	db   *gorm.DB
	kind string
}

func NewGorm[T Record[T]](db *gorm.DB, kind string) *Gorm[T] { return &Gorm[T]{db: db, kind: kind} }

func (g *Gorm[T]) List() ([]T, error) {
	var out []T
	if err := g.db.Order("id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Gorm[T]) Get(id int) (T, error) {
	var out T
	err := g.db.First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return out, &NotFoundError{Kind: g.kind, ID: id}
	}
	return out, err
}

func (g *Gorm[T]) Insert(rec T) (T, error) {
	err := g.db.Create(&rec).Error
	return rec, err
}

func (g *Gorm[T]) Update(id int, apply func(T) T) (T, error) {
	var out T
	err := g.db.Transaction(func(tx *gorm.DB) error {
		var cur T
		if err := tx.First(&cur, id).Error; err != nil {
			return err
		}
		out = apply(cur).WithID(id)
		return tx.Save(&out).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return out, &NotFoundError{Kind: g.kind, ID: id}
	}
	return out, err
}

func (g *Gorm[T]) Delete(id int) (bool, error) {
	res := g.db.Delete(new(T), id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, &NotFoundError{Kind: g.kind, ID: id}
	}
	return true, nil
}
