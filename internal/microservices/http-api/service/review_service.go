package service

import (
	"context"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/models"
	"gamerental/internal/microservices/http-api/repository"
)

// Review is a rating one user gives one target (a game or a console).
type Review interface {
	models.GameReview | models.ConsoleReview
	GetID() uint
	TargetID() uint
	AuthorID() uint
}

type ReviewService[T Review] interface {
	Create(ctx context.Context, review *T) error
	Get(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, page int) ([]T, dto.Page, error)
	// Update writes cols to the review with this id. review carries the target
	// and author the caller claims; they must match the stored ones.
	Update(ctx context.Context, id uint, review T, cols map[string]any) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type reviewService[T Review] struct {
	reviews  repository.ReviewRepository[T]
	pageSize int
	// onChange runs after a successful write with the review's target.
	onChange func(ctx context.Context, targetID uint)
}

func NewGameReviewService(reviews repository.ReviewRepository[models.GameReview], pageSize int) ReviewService[models.GameReview] {
	return &reviewService[models.GameReview]{reviews: reviews, pageSize: pageSize}
}

// NewConsoleReviewService keeps each console's rating in step with its reviews.
func NewConsoleReviewService(
	reviews repository.ReviewRepository[models.ConsoleReview],
	consoles ConsoleService,
	pageSize int,
) ReviewService[models.ConsoleReview] {
	return &reviewService[models.ConsoleReview]{
		reviews:  reviews,
		pageSize: pageSize,
		onChange: consoles.RefreshRating,
	}
}

// Create refuses a second review by the same author of the same target.
// The count and the insert are separate statements, so two concurrent
// requests can still both get through.
func (s *reviewService[T]) Create(ctx context.Context, review *T) error {
	n, err := s.reviews.CountByAuthorAndTarget(ctx, (*review).AuthorID(), (*review).TargetID())
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicateReview
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return err
	}
	s.changed(ctx, (*review).TargetID())
	return nil
}

func (s *reviewService[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.reviews.GetByID(ctx, id)
}

func (s *reviewService[T]) List(ctx context.Context, page int) ([]T, dto.Page, error) {
	return listPage[T](ctx, s.reviews, page, s.pageSize)
}

func (s *reviewService[T]) Update(ctx context.Context, id uint, review T, cols map[string]any) (bool, error) {
	existing, err := s.reviews.GetByID(ctx, id)
	if err != nil || existing == nil {
		return false, err
	}
	if (*existing).TargetID() != review.TargetID() || (*existing).AuthorID() != review.AuthorID() {
		return false, ErrReviewIdentityChanged
	}

	ok, err := s.reviews.Update(ctx, id, cols)
	if err != nil || !ok {
		return ok, err
	}
	s.changed(ctx, review.TargetID())
	return true, nil
}

func (s *reviewService[T]) Delete(ctx context.Context, id uint) (bool, error) {
	existing, err := s.reviews.GetByID(ctx, id)
	if err != nil || existing == nil {
		return false, err
	}
	ok, err := s.reviews.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.changed(ctx, (*existing).TargetID())
	return true, nil
}

func (s *reviewService[T]) changed(ctx context.Context, targetID uint) {
	if s.onChange != nil {
		s.onChange(ctx, targetID)
	}
}
