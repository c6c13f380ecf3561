package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gamerental/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// ReviewRepository stores reviews of one target kind (games or consoles).
type ReviewRepository[T any] interface {
	Create(ctx context.Context, review *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]T, error)
	Update(ctx context.Context, id uint, cols map[string]any) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)

	CountByAuthorAndTarget(ctx context.Context, userID, targetID uint) (int64, error)
	ListByTarget(ctx context.Context, targetID uint) ([]T, error)
	ListByAuthor(ctx context.Context, userID uint) ([]T, error)
	AverageRating(ctx context.Context, targetID uint) (*float64, error)
}

type reviewRepository[T any] struct {
	*Store[T]
	db           *gorm.DB
	targetColumn string
}

func NewGameReviewRepository(db *gorm.DB) ReviewRepository[models.GameReview] {
	return &reviewRepository[models.GameReview]{
		Store:        NewStore[models.GameReview](db, "game review"),
		db:           db,
		targetColumn: "game_id",
	}
}

func NewConsoleReviewRepository(db *gorm.DB) ReviewRepository[models.ConsoleReview] {
	return &reviewRepository[models.ConsoleReview]{
		Store:        NewStore[models.ConsoleReview](db, "console review"),
		db:           db,
		targetColumn: "console_id",
	}
}

// CountByAuthorAndTarget counts the reviews userID wrote about targetID.
func (r *reviewRepository[T]) CountByAuthorAndTarget(ctx context.Context, userID, targetID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("user_id = ?", userID).
		Where(r.targetColumn+" = ?", targetID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return count, nil
}

func (r *reviewRepository[T]) ListByTarget(ctx context.Context, targetID uint) ([]T, error) {
	return r.ListBy(ctx, r.targetColumn, targetID)
}

func (r *reviewRepository[T]) ListByAuthor(ctx context.Context, userID uint) ([]T, error) {
	return r.ListBy(ctx, "user_id", userID)
}

// AverageRating is nil when the target has no reviews.
func (r *reviewRepository[T]) AverageRating(ctx context.Context, targetID uint) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Select("AVG(rating)").
		Where(r.targetColumn+" = ?", targetID).
		Row().
		Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("average rating: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
