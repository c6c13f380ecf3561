package handler

import (
	"net/http"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const consolesPath = "/consoles"

type ConsoleHandler struct {
	svc service.ConsoleService
}

func NewConsoleHandler(svc service.ConsoleService) *ConsoleHandler {
	return &ConsoleHandler{svc: svc}
}

func (h *ConsoleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.Use(forResource("console"))
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *ConsoleHandler) Create(c *gin.Context) {
	in, ok := bindPayload[dto.CreateConsoleRequest](c)
	if !ok {
		return
	}

	console := in.ToModel()
	if err := h.svc.Create(c.Request.Context(), &console); err != nil {
		serverError(c, err, "Unable to insert console")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:    console.ID,
		Links: dto.Links{"console": link(consolesPath, console.ID)},
	})
}

func (h *ConsoleHandler) List(c *gin.Context) {
	consoles, page, err := h.svc.List(c.Request.Context(), pageParam(c))
	if err != nil {
		serverError(c, err, "Unable to fetch consoles")
		return
	}
	respondPage(c, consoles, page, consolesPath)
}

// Get returns the console together with its reviews.
func (h *ConsoleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Unable to fetch console")
		return
	}
	if detail == nil {
		NotFound(c)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ConsoleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindPayload[dto.UpdateConsoleRequest](c)
	if !ok {
		return
	}

	found, err := h.svc.Update(c.Request.Context(), id, in.Columns())
	if err != nil {
		serverError(c, err, "Unable to update console")
		return
	}
	if !found {
		NotFound(c)
		return
	}
	c.JSON(http.StatusOK, dto.LinksResponse{Links: dto.Links{"console": link(consolesPath, id)}})
}

func (h *ConsoleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Unable to delete console")
		return
	}
	if !deleted {
		NotFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}
