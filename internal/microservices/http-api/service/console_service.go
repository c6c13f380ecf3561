package service

import (
	"context"
	"log/slog"
	"math"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/models"
	"gamerental/internal/microservices/http-api/repository"
)

type ConsoleService interface {
	Create(ctx context.Context, console *models.Console) error
	Get(ctx context.Context, id uint) (*dto.ConsoleDetailResponse, error)
	List(ctx context.Context, page int) ([]models.Console, dto.Page, error)
	Update(ctx context.Context, id uint, cols map[string]any) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	// RefreshRating recomputes the console's average review rating.
	RefreshRating(ctx context.Context, consoleID uint)
}

type consoleService struct {
	consoles repository.ConsoleRepository
	games    repository.GameRepository
	reviews  repository.ReviewRepository[models.ConsoleReview]
	pageSize int
}

func NewConsoleService(
	consoles repository.ConsoleRepository,
	games repository.GameRepository,
	reviews repository.ReviewRepository[models.ConsoleReview],
	pageSize int,
) ConsoleService {
	return &consoleService{consoles: consoles, games: games, reviews: reviews, pageSize: pageSize}
}

func (s *consoleService) Create(ctx context.Context, console *models.Console) error {
	return s.consoles.Create(ctx, console)
}

// Get returns the console with its reviews and the games that run on it,
// or nil when absent.
func (s *consoleService) Get(ctx context.Context, id uint) (*dto.ConsoleDetailResponse, error) {
	console, err := s.consoles.GetByID(ctx, id)
	if err != nil || console == nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByTarget(ctx, id)
	if err != nil {
		return nil, err
	}
	games, err := s.games.GamesForConsole(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ConsoleDetailResponse{Console: *console, Games: games, ConsoleReviews: reviews}, nil
}

func (s *consoleService) List(ctx context.Context, page int) ([]models.Console, dto.Page, error) {
	return listPage[models.Console](ctx, s.consoles, page, s.pageSize)
}

func (s *consoleService) Update(ctx context.Context, id uint, cols map[string]any) (bool, error) {
	return s.consoles.Update(ctx, id, cols)
}

func (s *consoleService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.consoles.Delete(ctx, id)
}

// RefreshRating is best effort: failures are logged, the review write that
// triggered it has already succeeded.
func (s *consoleService) RefreshRating(ctx context.Context, consoleID uint) {
	avg, err := s.reviews.AverageRating(ctx, consoleID)
	if err != nil {
		slog.Warn("console rating not refreshed", "console_id", consoleID, "error", err)
		return
	}
	if avg != nil {
		rounded := math.Round(*avg*100) / 100
		avg = &rounded
	}
	if err := s.consoles.SetRating(ctx, consoleID, avg); err != nil {
		slog.Warn("console rating not refreshed", "console_id", consoleID, "error", err)
	}
}
