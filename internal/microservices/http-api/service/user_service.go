package service

import (
	"context"
	"errors"
	"fmt"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/models"
	"gamerental/internal/microservices/http-api/repository"
	"gamerental/internal/middleware/auth"

	"golang.org/x/sync/errgroup"
)

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	GetDetail(ctx context.Context, id uint) (*dto.UserDetailResponse, error)
	// List pages over the users viewerID may see, which is only their own row.
	List(ctx context.Context, viewerID uint, page int) ([]models.User, dto.Page, error)
	Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type userService struct {
	users          repository.UserRepository
	rentals        repository.RentalRepository
	gameReviews    repository.ReviewRepository[models.GameReview]
	consoleReviews repository.ReviewRepository[models.ConsoleReview]
	pageSize       int
}

func NewUserService(
	users repository.UserRepository,
	rentals repository.RentalRepository,
	gameReviews repository.ReviewRepository[models.GameReview],
	consoleReviews repository.ReviewRepository[models.ConsoleReview],
	pageSize int,
) UserService {
	return &userService{
		users:          users,
		rentals:        rentals,
		gameReviews:    gameReviews,
		consoleReviews: consoleReviews,
		pageSize:       pageSize,
	}
}

// Create registers a new user with a hashed password.
func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	if err := s.checkIdentityFree(ctx, 0, &req.Username, &req.Email); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with another signup
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// GetDetail returns the user with their rentals and reviews, or nil when
// there is no such user.
func (s *userService) GetDetail(ctx context.Context, id uint) (*dto.UserDetailResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}

	var (
		rentals        []models.Rental
		gameReviews    []models.GameReview
		consoleReviews []models.ConsoleReview
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rentals, err = s.rentals.ListByRenter(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		gameReviews, err = s.gameReviews.ListByAuthor(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		consoleReviews, err = s.consoleReviews.ListByAuthor(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.UserDetailResponse{
		UserResponse:   dto.FromModelToUserResponse(*user),
		Rentals:        dto.FromModelsToRentalResponses(rentals),
		GameReviews:    nonNil(gameReviews),
		ConsoleReviews: nonNil(consoleReviews),
	}, nil
}

func (s *userService) List(ctx context.Context, viewerID uint, page int) ([]models.User, dto.Page, error) {
	return listPage[models.User](ctx, ownRow{users: s.users, id: viewerID}, page, s.pageSize)
}

// ownRow is the one-row table holding the user with this id.
type ownRow struct {
	users repository.UserRepository
	id    uint
}

func (o ownRow) Count(ctx context.Context) (int64, error) {
	user, err := o.users.GetByID(ctx, o.id)
	if err != nil || user == nil {
		return 0, err
	}
	return 1, nil
}

func (o ownRow) List(ctx context.Context, offset, limit int) ([]models.User, error) {
	if offset > 0 || limit < 1 {
		return []models.User{}, nil
	}
	user, err := o.users.GetByID(ctx, o.id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []models.User{}, nil
	}
	return []models.User{*user}, nil
}

// Update writes the provided profile fields. A new password is hashed first.
func (s *userService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (bool, error) {
	if err := s.checkIdentityFree(ctx, id, req.Username, req.Email); err != nil {
		return false, err
	}

	cols := req.Columns()
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return false, fmt.Errorf("hash password: %w", err)
		}
		cols["password_hash"] = hashed
	}

	ok, err := s.users.Update(ctx, id, cols)
	if errors.Is(err, repository.ErrDuplicate) {
		return false, ErrUserExists
	}
	return ok, err
}

func (s *userService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.users.Delete(ctx, id)
}

// checkIdentityFree fails when another user than self already holds the
// username or email. nil values are not checked.
func (s *userService) checkIdentityFree(ctx context.Context, self uint, username, email *string) error {
	if username != nil {
		u, err := s.users.FindByUsername(ctx, *username)
		if err != nil {
			return err
		}
		if u != nil && u.ID != self {
			return ErrNameInUse
		}
	}
	if email != nil {
		u, err := s.users.FindByEmail(ctx, *email)
		if err != nil {
			return err
		}
		if u != nil && u.ID != self {
			return ErrEmailInUse
		}
	}
	return nil
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
