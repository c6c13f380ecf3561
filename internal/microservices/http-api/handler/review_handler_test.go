package handler_test

import (
	"net/http"
	"testing"

	"gamerental/internal/microservices/http-api/handler"
	"gamerental/internal/microservices/http-api/models"
	"gamerental/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupReviewRouter(svc *MockGameReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(handler.NotFound)
	handler.NewGameReviewHandler(svc).RegisterRoutes(r.Group("/game_reviews"))
	return r
}

func TestReviewHandler_Create(t *testing.T) {
	svc := new(MockGameReviewService)
	r := setupReviewRouter(svc)
	body := map[string]any{"rating": 4, "gameID": 2, "userID": 3}

	svc.On("Create", mock.Anything, &models.GameReview{Rating: 4, GameID: 2, UserID: 3}).
		Run(func(args mock.Arguments) { args.Get(1).(*models.GameReview).ID = 8 }).
		Return(nil).Once()
	svc.On("Create", mock.Anything, mock.Anything).Return(service.ErrDuplicateReview).Once()

	w := doJSON(r, http.MethodPost, "/game_reviews", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, float64(8), resp["id"])
	links := resp["links"].(map[string]any)
	assert.Equal(t, "/game_reviews/8", links["gameReview"])
	assert.Equal(t, "/games/2", links["game"])
	assert.Equal(t, "/users/3", links["user"])

	w = doJSON(r, http.MethodPost, "/game_reviews", body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
	svc.AssertExpectations(t)
}

func TestReviewHandler_CreateRequiresTarget(t *testing.T) {
	svc := new(MockGameReviewService)
	r := setupReviewRouter(svc)

	w := doJSON(r, http.MethodPost, "/game_reviews", map[string]any{"rating": 4, "userID": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/game_reviews", map[string]any{"rating": 4, "gameID": nil, "userID": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/game_reviews", map[string]any{"rating": 4, "gameID": 0, "userID": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewHandler_Update(t *testing.T) {
	svc := new(MockGameReviewService)
	r := setupReviewRouter(svc)
	claimed := models.GameReview{Rating: 2, GameID: 2, UserID: 3}

	svc.On("Update", mock.Anything, uint(8), claimed, map[string]any{"rating": 2}).Return(true, nil).Once()
	svc.On("Update", mock.Anything, uint(9), claimed, map[string]any{"rating": 2}).Return(false, service.ErrReviewIdentityChanged).Once()
	svc.On("Update", mock.Anything, uint(10), claimed, map[string]any{"rating": 2}).Return(false, nil).Once()

	body := map[string]any{"rating": 2, "gameID": 2, "userID": 3}

	w := doJSON(r, http.MethodPut, "/game_reviews/8", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/game_reviews/8", decodeBody(t, w)["links"].(map[string]any)["gameReview"])

	w = doJSON(r, http.MethodPut, "/game_reviews/9", body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPut, "/game_reviews/10", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}
