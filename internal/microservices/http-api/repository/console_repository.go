package repository

import (
	"context"
	"fmt"

	"gamerental/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ConsoleRepository interface {
	Create(ctx context.Context, console *models.Console) error
	GetByID(ctx context.Context, id uint) (*models.Console, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]models.Console, error)
	Update(ctx context.Context, id uint, cols map[string]any) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	SetRating(ctx context.Context, id uint, rating *float64) error
}

type consoleRepository struct {
	*Store[models.Console]
	db *gorm.DB
}

func NewConsoleRepository(db *gorm.DB) ConsoleRepository {
	return &consoleRepository{Store: NewStore[models.Console](db, "console"), db: db}
}

// SetRating stores the aggregate review rating; nil clears it.
func (r *consoleRepository) SetRating(ctx context.Context, id uint, rating *float64) error {
	err := r.db.WithContext(ctx).
		Model(&models.Console{}).
		Where("id = ?", id).
		Update("rating", rating).Error
	if err != nil {
		return fmt.Errorf("set console rating: %w", err)
	}
	return nil
}
