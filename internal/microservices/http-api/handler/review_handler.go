package handler

import (
	"errors"
	"net/http"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/models"
	"gamerental/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// reviewRequest is the body of POST and PUT on a review resource.
type reviewRequest[T service.Review] interface {
	ToModel() T
	Columns() map[string]any
}

// ReviewHandler serves one review resource. Game and console reviews only
// differ in their paths and the target they point at.
type ReviewHandler[T service.Review, R reviewRequest[T]] struct {
	svc        service.ReviewService[T]
	name       string
	basePath   string
	targetName string
	targetPath string
}

func NewGameReviewHandler(svc service.ReviewService[models.GameReview]) *ReviewHandler[models.GameReview, dto.GameReviewRequest] {
	return &ReviewHandler[models.GameReview, dto.GameReviewRequest]{
		svc:        svc,
		name:       "gameReview",
		basePath:   "/game_reviews",
		targetName: "game",
		targetPath: gamesPath,
	}
}

func NewConsoleReviewHandler(svc service.ReviewService[models.ConsoleReview]) *ReviewHandler[models.ConsoleReview, dto.ConsoleReviewRequest] {
	return &ReviewHandler[models.ConsoleReview, dto.ConsoleReviewRequest]{
		svc:        svc,
		name:       "consoleReview",
		basePath:   "/console_reviews",
		targetName: "console",
		targetPath: consolesPath,
	}
}

func (h *ReviewHandler[T, R]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.Use(forResource(h.name))
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *ReviewHandler[T, R]) links(review T) dto.Links {
	return dto.Links{
		h.name:       link(h.basePath, review.GetID()),
		h.targetName: link(h.targetPath, review.TargetID()),
		"user":       link(usersPath, review.AuthorID()),
	}
}

func (h *ReviewHandler[T, R]) Create(c *gin.Context) {
	in, ok := bindPayload[R](c)
	if !ok {
		return
	}

	review := in.ToModel()
	err := h.svc.Create(c.Request.Context(), &review)
	if errors.Is(err, service.ErrDuplicateReview) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		serverError(c, err, "Unable to insert review")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: review.GetID(), Links: h.links(review)})
}

func (h *ReviewHandler[T, R]) List(c *gin.Context) {
	reviews, page, err := h.svc.List(c.Request.Context(), pageParam(c))
	if err != nil {
		serverError(c, err, "Unable to fetch reviews")
		return
	}
	respondPage(c, reviews, page, h.basePath)
}

func (h *ReviewHandler[T, R]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	review, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Unable to fetch review")
		return
	}
	if review == nil {
		NotFound(c)
		return
	}
	c.JSON(http.StatusOK, review)
}

// Update changes the rating and text. The target and author in the body
// must be the stored ones.
func (h *ReviewHandler[T, R]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindPayload[R](c)
	if !ok {
		return
	}

	found, err := h.svc.Update(c.Request.Context(), id, in.ToModel(), in.Columns())
	if errors.Is(err, service.ErrReviewIdentityChanged) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		serverError(c, err, "Unable to update review")
		return
	}
	if !found {
		NotFound(c)
		return
	}
	c.JSON(http.StatusOK, dto.LinksResponse{Links: dto.Links{h.name: link(h.basePath, id)}})
}

func (h *ReviewHandler[T, R]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Unable to delete review")
		return
	}
	if !deleted {
		NotFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}
