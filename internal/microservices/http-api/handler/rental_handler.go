package handler

import (
	"net/http"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const rentalsPath = "/rentals"

type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

func (h *RentalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.Use(forResource("rental"))
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func rentalLinks(id, consoleID, gameID, renterID uint) dto.Links {
	return dto.Links{
		"rental":  link(rentalsPath, id),
		"console": link(consolesPath, consoleID),
		"game":    link(gamesPath, gameID),
		"renter":  link(usersPath, renterID),
	}
}

func (h *RentalHandler) Create(c *gin.Context) {
	in, ok := bindPayload[dto.CreateRentalRequest](c)
	if !ok {
		return
	}
	rental, err := in.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Create(c.Request.Context(), &rental); err != nil {
		serverError(c, err, "Unable to insert rental")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:    rental.ID,
		Links: rentalLinks(rental.ID, rental.ConsoleID, rental.GameID, rental.RenterID),
	})
}

func (h *RentalHandler) List(c *gin.Context) {
	rentals, page, err := h.svc.List(c.Request.Context(), pageParam(c))
	if err != nil {
		serverError(c, err, "Unable to fetch rentals")
		return
	}
	respondPage(c, dto.FromModelsToRentalResponses(rentals), page, rentalsPath)
}

func (h *RentalHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rental, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Unable to fetch rental")
		return
	}
	if rental == nil {
		NotFound(c)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToRentalResponse(*rental))
}

func (h *RentalHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindPayload[dto.UpdateRentalRequest](c)
	if !ok {
		return
	}
	cols, err := in.Columns()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	found, err := h.svc.Update(c.Request.Context(), id, cols)
	if err != nil {
		serverError(c, err, "Unable to update rental")
		return
	}
	if !found {
		NotFound(c)
		return
	}
	c.JSON(http.StatusOK, dto.LinksResponse{Links: dto.Links{"rental": link(rentalsPath, id)}})
}

func (h *RentalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Unable to delete rental")
		return
	}
	if !deleted {
		NotFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}
