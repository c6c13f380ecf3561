package service

import (
	"context"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/models"
	"gamerental/internal/microservices/http-api/repository"
)

// RentalService does not check that the referenced console, game or renter exist.
type RentalService interface {
	Create(ctx context.Context, rental *models.Rental) error
	Get(ctx context.Context, id uint) (*models.Rental, error)
	List(ctx context.Context, page int) ([]models.Rental, dto.Page, error)
	Update(ctx context.Context, id uint, cols map[string]any) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type rentalService struct {
	rentals  repository.RentalRepository
	pageSize int
}

func NewRentalService(rentals repository.RentalRepository, pageSize int) RentalService {
	return &rentalService{rentals: rentals, pageSize: pageSize}
}

func (s *rentalService) Create(ctx context.Context, rental *models.Rental) error {
	return s.rentals.Create(ctx, rental)
}

func (s *rentalService) Get(ctx context.Context, id uint) (*models.Rental, error) {
	return s.rentals.GetByID(ctx, id)
}

func (s *rentalService) List(ctx context.Context, page int) ([]models.Rental, dto.Page, error) {
	return listPage[models.Rental](ctx, s.rentals, page, s.pageSize)
}

func (s *rentalService) Update(ctx context.Context, id uint, cols map[string]any) (bool, error) {
	return s.rentals.Update(ctx, id, cols)
}

func (s *rentalService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.rentals.Delete(ctx, id)
}
