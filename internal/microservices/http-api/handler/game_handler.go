package handler

import (
	"net/http"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const (
	gamesPath = "/games"

	linkFailureMessage = "Failed to insert some game/console connections"
)

type GameHandler struct {
	svc service.GameService
}

func NewGameHandler(svc service.GameService) *GameHandler {
	return &GameHandler{svc: svc}
}

func (h *GameHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.Use(forResource("game"))
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *GameHandler) Create(c *gin.Context) {
	in, ok := bindPayload[dto.CreateGameRequest](c)
	if !ok {
		return
	}

	game := in.ToModel()
	failed, err := h.svc.Create(c.Request.Context(), &game, in.Platforms)
	if err != nil {
		serverError(c, err, "Unable to insert game")
		return
	}

	resp := dto.CreatedResponse{
		ID:    game.ID,
		Links: dto.Links{"game": link(gamesPath, game.ID)},
	}
	if failed > 0 {
		resp.Message = linkFailureMessage
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GameHandler) List(c *gin.Context) {
	games, page, err := h.svc.List(c.Request.Context(), pageParam(c))
	if err != nil {
		serverError(c, err, "Unable to fetch games")
		return
	}
	respondPage(c, games, page, gamesPath)
}

func (h *GameHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	game, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Unable to fetch game")
		return
	}
	if game == nil {
		NotFound(c)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindPayload[dto.UpdateGameRequest](c)
	if !ok {
		return
	}

	found, failed, err := h.svc.Update(c.Request.Context(), id, in.Columns(), in.Platforms)
	if err != nil {
		serverError(c, err, "Unable to update game")
		return
	}
	if !found {
		NotFound(c)
		return
	}

	resp := gin.H{"links": dto.Links{"game": link(gamesPath, id)}}
	if failed > 0 {
		resp["message"] = linkFailureMessage
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GameHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Unable to delete game")
		return
	}
	if !deleted {
		NotFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}
