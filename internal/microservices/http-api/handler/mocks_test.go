package handler_test

import (
	"context"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/models"
	"gamerental/internal/microservices/http-api/service"

	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICES ---

type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) Create(ctx context.Context, game *models.Game, platforms []uint) (int, error) {
	args := m.Called(ctx, game, platforms)
	return args.Int(0), args.Error(1)
}

func (m *MockGameService) Get(ctx context.Context, id uint) (*dto.GameResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GameResponse), args.Error(1)
}

func (m *MockGameService) List(ctx context.Context, page int) ([]models.Game, dto.Page, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Game), args.Get(1).(dto.Page), args.Error(2)
}

func (m *MockGameService) Update(ctx context.Context, id uint, cols map[string]any, platforms *[]uint) (bool, int, error) {
	args := m.Called(ctx, id, cols, platforms)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockGameService) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockGameReviewService struct {
	mock.Mock
}

func (m *MockGameReviewService) Create(ctx context.Context, review *models.GameReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockGameReviewService) Get(ctx context.Context, id uint) (*models.GameReview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameReview), args.Error(1)
}

func (m *MockGameReviewService) List(ctx context.Context, page int) ([]models.GameReview, dto.Page, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.GameReview), args.Get(1).(dto.Page), args.Error(2)
}

func (m *MockGameReviewService) Update(ctx context.Context, id uint, review models.GameReview, cols map[string]any) (bool, error) {
	args := m.Called(ctx, id, review, cols)
	return args.Bool(0), args.Error(1)
}

func (m *MockGameReviewService) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetDetail(ctx context.Context, id uint) (*dto.UserDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserDetailResponse), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, viewerID uint, page int) ([]models.User, dto.Page, error) {
	args := m.Called(ctx, viewerID, page)
	return args.Get(0).([]models.User), args.Get(1).(dto.Page), args.Error(2)
}

func (m *MockUserService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (bool, error) {
	args := m.Called(ctx, id, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, userID uint, password string) (string, error) {
	args := m.Called(ctx, userID, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) IssueToken(userID uint) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*service.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *service.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}
