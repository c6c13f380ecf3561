package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/handler"
	"gamerental/internal/microservices/http-api/middleware"
	"gamerental/internal/microservices/http-api/models"
	"gamerental/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupUserRouter(users *MockUserService, authService *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(handler.NotFound)
	h := handler.NewUserHandler(users, authService, middleware.NewIPRateLimiter(100, 100))
	h.RegisterRoutes(r.Group("/users"))
	return r
}

func withToken(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Create(t *testing.T) {
	users := new(MockUserService)
	r := setupUserRouter(users, new(MockAuthService))

	req := dto.CreateUserRequest{Username: "sam", FirstName: "Sam", LastName: "Doe", Email: "sam@example.com", Password: "pw"}
	users.On("Create", mock.Anything, req).Return(&models.User{ID: 4}, nil).Once()
	users.On("Create", mock.Anything, req).Return(nil, service.ErrNameInUse).Once()

	body := map[string]any{"username": "sam", "firstname": "Sam", "lastname": "Doe", "email": "sam@example.com", "password": "pw"}

	w := doJSON(r, http.MethodPost, "/users", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/users/4", decodeBody(t, w)["links"].(map[string]any)["user"])

	w = doJSON(r, http.MethodPost, "/users", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	delete(body, "password")
	w = doJSON(r, http.MethodPost, "/users", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	users.AssertExpectations(t)
}

func TestUserHandler_Login(t *testing.T) {
	authService := new(MockAuthService)
	r := setupUserRouter(new(MockUserService), authService)

	authService.On("Login", mock.Anything, uint(4), "right").Return("tok", nil)
	authService.On("Login", mock.Anything, uint(4), "wrong").Return("", service.ErrInvalidCredentials)
	authService.On("Login", mock.Anything, uint(5), "x").Return("", errors.New("db down"))

	w := doJSON(r, http.MethodPost, "/users/login", map[string]any{"userID": 4, "password": "right"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", decodeBody(t, w)["token"])

	w = doJSON(r, http.MethodPost, "/users/login", map[string]any{"userID": 4, "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")

	w = doJSON(r, http.MethodPost, "/users/login", map[string]any{"userID": 5, "password": "x"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doJSON(r, http.MethodPost, "/users/login", map[string]any{"password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_ProtectedRoutes(t *testing.T) {
	users := new(MockUserService)
	authService := new(MockAuthService)
	r := setupUserRouter(users, authService)

	claims := &service.Claims{UserID: 4, TokenID: "jti"}
	authService.On("ValidateToken", mock.Anything, "tok").Return(claims, nil)
	authService.On("Logout", mock.Anything, claims).Return(nil).Once()
	users.On("GetDetail", mock.Anything, uint(4)).Return(&dto.UserDetailResponse{
		UserResponse: dto.UserResponse{ID: 4, Username: "sam"},
	}, nil).Once()
	users.On("Delete", mock.Anything, uint(4)).Return(false, nil).Once()

	// no token
	w := doJSON(r, http.MethodGet, "/users/4", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// someone else's account, whether or not it exists
	w = withToken(r, http.MethodGet, "/users/5", "tok")
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = withToken(r, http.MethodDelete, "/users/500", "tok")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = withToken(r, http.MethodGet, "/users/4", "tok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sam", decodeBody(t, w)["username"])
	assert.NotContains(t, w.Body.String(), "password")

	w = withToken(r, http.MethodDelete, "/users/4", "tok")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = withToken(r, http.MethodPost, "/users/logout", "tok")
	assert.Equal(t, http.StatusNoContent, w.Code)

	users.AssertExpectations(t)
	authService.AssertExpectations(t)
}

func TestUserHandler_ListShowsOnlyCaller(t *testing.T) {
	users := new(MockUserService)
	authService := new(MockAuthService)
	r := setupUserRouter(users, authService)

	authService.On("ValidateToken", mock.Anything, "tok").Return(&service.Claims{UserID: 4, TokenID: "jti"}, nil)
	users.On("List", mock.Anything, uint(4), 1).
		Return([]models.User{{ID: 4, Username: "sam"}}, dto.Paginate(1, 1, 10), nil).Once()

	w := doJSON(r, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = withToken(r, http.MethodGet, "/users", "tok")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["totalCount"])
	assert.Len(t, body["items"], 1)
	users.AssertExpectations(t)
}
