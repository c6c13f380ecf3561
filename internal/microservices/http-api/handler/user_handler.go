package handler

import (
	"errors"
	"net/http"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/middleware"
	"gamerental/internal/microservices/http-api/models"
	"gamerental/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const usersPath = "/users"

type UserHandler struct {
	users        service.UserService
	authService  service.AuthService
	loginLimiter *middleware.IPRateLimiter
}

func NewUserHandler(users service.UserService, authService service.AuthService, loginLimiter *middleware.IPRateLimiter) *UserHandler {
	return &UserHandler{users: users, authService: authService, loginLimiter: loginLimiter}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.Use(forResource("user"))

	rg.POST("", h.Create)
	rg.POST("/login", middleware.RateLimit(h.loginLimiter), h.Login)

	// Authenticated routes
	authenticated := middleware.RequireAuthentication(h.authService)
	rg.GET("", authenticated, h.List)
	rg.POST("/logout", authenticated, h.Logout)

	owner := middleware.RequireOwner("id")
	rg.GET("/:id", authenticated, owner, h.Get)
	rg.PUT("/:id", authenticated, owner, h.Update)
	rg.DELETE("/:id", authenticated, owner, h.Delete)
}

func (h *UserHandler) Create(c *gin.Context) {
	in, ok := bindPayload[dto.CreateUserRequest](c)
	if !ok {
		return
	}

	user, err := h.users.Create(c.Request.Context(), in)
	if isIdentityConflict(err) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		serverError(c, err, "Unable to insert user")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:    user.ID,
		Links: dto.Links{"user": link(usersPath, user.ID)},
	})
}

// List only ever holds the caller's own account.
func (h *UserHandler) List(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	users, page, err := h.users.List(c.Request.Context(), userID, pageParam(c))
	if err != nil {
		serverError(c, err, "Unable to fetch users")
		return
	}
	respondPage(c, toUserResponses(users), page, usersPath)
}

func (h *UserHandler) Login(c *gin.Context) {
	in, ok := bindPayload[dto.LoginRequest](c)
	if !ok {
		return
	}

	token, err := h.authService.Login(c.Request.Context(), in.UserID, in.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		serverError(c, err, "Error logging in. Try again later.")
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Logout revokes the token the request was made with.
func (h *UserHandler) Logout(c *gin.Context) {
	claims, ok := middleware.AuthenticatedClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		serverError(c, err, "Unable to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// Get returns the user with their rentals and reviews.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.users.GetDetail(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Unable to fetch user")
		return
	}
	if detail == nil {
		NotFound(c)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindPayload[dto.UpdateUserRequest](c)
	if !ok {
		return
	}

	found, err := h.users.Update(c.Request.Context(), id, in)
	if isIdentityConflict(err) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		serverError(c, err, "Unable to update user")
		return
	}
	if !found {
		NotFound(c)
		return
	}
	c.JSON(http.StatusOK, dto.LinksResponse{Links: dto.Links{"user": link(usersPath, id)}})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Unable to delete user")
		return
	}
	if !deleted {
		NotFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func isIdentityConflict(err error) bool {
	return errors.Is(err, service.ErrNameInUse) ||
		errors.Is(err, service.ErrEmailInUse) ||
		errors.Is(err, service.ErrUserExists)
}

func toUserResponses(users []models.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromModelToUserResponse(u))
	}
	return out
}
