package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the CRUD every resource table shares. Rows are addressed by their
// integer primary key "id" and listed in primary key order.
type Store[T any] struct {
	db   *gorm.DB
	name string // used in error messages
}

func NewStore[T any](db *gorm.DB, name string) *Store[T] {
	return &Store[T]{db: db, name: name}
}

// Create inserts m; gorm fills in its ID.
func (s *Store[T]) Create(ctx context.Context, m *T) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create %s: %w", s.name, classify(err))
	}
	return nil
}

// GetByID returns nil without an error when no row has this id.
func (s *Store[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var m T
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", s.name, id, err)
	}
	return &m, nil
}

func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", s.name, err)
	}
	return total, nil
}

// List returns at most limit rows starting at offset.
func (s *Store[T]) List(ctx context.Context, offset, limit int) ([]T, error) {
	var list []T
	err := s.db.WithContext(ctx).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	return list, nil
}

// ListBy returns every row whose column equals id. The result may be empty.
func (s *Store[T]) ListBy(ctx context.Context, column string, id uint) ([]T, error) {
	list := []T{}
	err := s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: id}).
		Order("id asc").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list %s by %s: %w", s.name, column, err)
	}
	return list, nil
}

func (s *Store[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check %s %d: %w", s.name, id, err)
	}
	return n > 0, nil
}

// Update writes cols (column name -> value) to the row and reports whether it
// exists. An empty column set writes nothing.
func (s *Store[T]) Update(ctx context.Context, id uint, cols map[string]any) (bool, error) {
	if len(cols) == 0 {
		return s.Exists(ctx, id)
	}
	result := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return false, fmt.Errorf("update %s %d: %w", s.name, id, classify(result.Error))
	}
	return result.RowsAffected > 0, nil
}

// Delete removes the row and reports whether there was one.
func (s *Store[T]) Delete(ctx context.Context, id uint) (bool, error) {
	result := s.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return false, fmt.Errorf("delete %s %d: %w", s.name, id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
