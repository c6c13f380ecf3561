package repository

import (
	"context"

	"gamerental/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *models.Rental) error
	GetByID(ctx context.Context, id uint) (*models.Rental, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]models.Rental, error)
	Update(ctx context.Context, id uint, cols map[string]any) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ListByRenter(ctx context.Context, renterID uint) ([]models.Rental, error)
}

type rentalRepository struct {
	*Store[models.Rental]
}

func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{Store: NewStore[models.Rental](db, "rental")}
}

func (r *rentalRepository) ListByRenter(ctx context.Context, renterID uint) ([]models.Rental, error) {
	return r.ListBy(ctx, "renter_id", renterID)
}
