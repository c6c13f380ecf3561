package service

import (
	"context"
	"log/slog"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/models"
	"gamerental/internal/microservices/http-api/repository"
)

type GameService interface {
	// Create stores the game and links it to its platforms. Links that fail do
	// not fail the create; their count is returned.
	Create(ctx context.Context, game *models.Game, platforms []uint) (failedLinks int, err error)
	Get(ctx context.Context, id uint) (*dto.GameResponse, error)
	List(ctx context.Context, page int) ([]models.Game, dto.Page, error)
	// Update writes cols and, when platforms is non-nil, replaces the links.
	Update(ctx context.Context, id uint, cols map[string]any, platforms *[]uint) (found bool, failedLinks int, err error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type gameService struct {
	games    repository.GameRepository
	reviews  repository.ReviewRepository[models.GameReview]
	pageSize int
}

func NewGameService(
	games repository.GameRepository,
	reviews repository.ReviewRepository[models.GameReview],
	pageSize int,
) GameService {
	return &gameService{games: games, reviews: reviews, pageSize: pageSize}
}

func (s *gameService) Create(ctx context.Context, game *models.Game, platforms []uint) (int, error) {
	if err := s.games.Create(ctx, game); err != nil {
		return 0, err
	}
	failed := s.games.LinkPlatforms(ctx, game.ID, platforms)
	if len(failed) > 0 {
		slog.Warn("game created with missing platform links", "game_id", game.ID, "failed", failed)
	}
	return len(failed), nil
}

// Get returns the game with its platforms and reviews, or nil when absent.
func (s *gameService) Get(ctx context.Context, id uint) (*dto.GameResponse, error) {
	game, err := s.games.GetByID(ctx, id)
	if err != nil || game == nil {
		return nil, err
	}
	platforms, err := s.games.PlatformIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByTarget(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromModelToGameResponse(*game, platforms)
	resp.GameReviews = reviews
	return &resp, nil
}

func (s *gameService) List(ctx context.Context, page int) ([]models.Game, dto.Page, error) {
	return listPage[models.Game](ctx, s.games, page, s.pageSize)
}

func (s *gameService) Update(ctx context.Context, id uint, cols map[string]any, platforms *[]uint) (bool, int, error) {
	found, err := s.games.Update(ctx, id, cols)
	if err != nil || !found {
		return found, 0, err
	}
	if platforms == nil {
		return true, 0, nil
	}
	failed, err := s.games.ReplacePlatforms(ctx, id, *platforms)
	if err != nil {
		return true, 0, err
	}
	return true, len(failed), nil
}

func (s *gameService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.games.Delete(ctx, id)
}
