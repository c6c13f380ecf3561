package repository

import (
	"context"
	"fmt"
	"log/slog"

	"gamerental/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id uint) (*models.Game, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]models.Game, error)
	Update(ctx context.Context, id uint, cols map[string]any) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)

	PlatformIDs(ctx context.Context, gameID uint) ([]uint, error)
	LinkPlatforms(ctx context.Context, gameID uint, consoleIDs []uint) (failed []uint)
	ReplacePlatforms(ctx context.Context, gameID uint, consoleIDs []uint) (failed []uint, err error)
	GamesForConsole(ctx context.Context, consoleID uint) ([]uint, error)
}

type gameRepository struct {
	*Store[models.Game]
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{Store: NewStore[models.Game](db, "game"), db: db}
}

// PlatformIDs returns the console ids linked to the game, ascending.
func (r *gameRepository) PlatformIDs(ctx context.Context, gameID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).
		Model(&models.Platform{}).
		Where("game_id = ?", gameID).
		Order("console_id asc").
		Pluck("console_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("get platforms of game %d: %w", gameID, err)
	}
	return ids, nil
}

// GamesForConsole returns the ids of the games linked to the console, ascending.
func (r *gameRepository) GamesForConsole(ctx context.Context, consoleID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).
		Model(&models.Platform{}).
		Where("console_id = ?", consoleID).
		Order("game_id asc").
		Pluck("game_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("get games of console %d: %w", consoleID, err)
	}
	return ids, nil
}

// LinkPlatforms inserts one link per console, each in its own statement.
// Existing links are left alone. A failing link does not stop the others;
// the consoles that could not be linked are returned.
func (r *gameRepository) LinkPlatforms(ctx context.Context, gameID uint, consoleIDs []uint) []uint {
	var failed []uint
	seen := make(map[uint]bool, len(consoleIDs))
	for _, consoleID := range consoleIDs {
		if seen[consoleID] {
			continue
		}
		seen[consoleID] = true

		link := models.Platform{GameID: gameID, ConsoleID: consoleID}
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Omit(clause.Associations).
			Create(&link).Error
		if err != nil {
			slog.Warn("platform link failed",
				"game_id", gameID,
				"console_id", consoleID,
				"sqlstate", sqlState(err),
				"error", err,
			)
			failed = append(failed, consoleID)
		}
	}
	return failed
}

// ReplacePlatforms drops every link of the game and relinks consoleIDs.
func (r *gameRepository) ReplacePlatforms(ctx context.Context, gameID uint, consoleIDs []uint) ([]uint, error) {
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).Delete(&models.Platform{}).Error; err != nil {
		return nil, fmt.Errorf("unlink platforms of game %d: %w", gameID, err)
	}
	return r.LinkPlatforms(ctx, gameID, consoleIDs), nil
}
