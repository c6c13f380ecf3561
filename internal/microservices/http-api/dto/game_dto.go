package dto

import "gamerental/internal/microservices/http-api/models"

// CreateGameRequest used for POST /games
type CreateGameRequest struct {
	Name      string  `json:"name" schema:"required"`
	Genre     string  `json:"genre" schema:"required"`
	ESRB      string  `json:"esrb" schema:"required"`
	Price     float64 `json:"price" schema:"required"`
	Platforms []uint  `json:"platforms,omitempty" schema:"optional"`
}

// UpdateGameRequest used for PUT /games/:id (partial updates allowed).
// A non-nil Platforms replaces the console links.
type UpdateGameRequest struct {
	Name      *string  `json:"name,omitempty" schema:"optional"`
	Genre     *string  `json:"genre,omitempty" schema:"optional"`
	ESRB      *string  `json:"esrb,omitempty" schema:"optional"`
	Price     *float64 `json:"price,omitempty" schema:"optional"`
	Platforms *[]uint  `json:"platforms,omitempty" schema:"optional"`
}

// GameResponse DTO for responses
type GameResponse struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	Genre       string              `json:"genre"`
	ESRB        string              `json:"esrb"`
	Price       float64             `json:"price"`
	Platforms   []uint              `json:"platforms"`
	GameReviews []models.GameReview `json:"gameReviews,omitempty"`
}

func (d CreateGameRequest) ToModel() models.Game {
	return models.Game{
		Name:  d.Name,
		Genre: d.Genre,
		ESRB:  d.ESRB,
		Price: d.Price,
	}
}

func (d UpdateGameRequest) Columns() map[string]any {
	cols := map[string]any{}
	if d.Name != nil {
		cols["name"] = *d.Name
	}
	if d.Genre != nil {
		cols["genre"] = *d.Genre
	}
	if d.ESRB != nil {
		cols["esrb"] = *d.ESRB
	}
	if d.Price != nil {
		cols["price"] = *d.Price
	}
	return cols
}

func FromModelToGameResponse(g models.Game, platforms []uint) GameResponse {
	if platforms == nil {
		platforms = []uint{}
	}
	return GameResponse{
		ID:        g.ID,
		Name:      g.Name,
		Genre:     g.Genre,
		ESRB:      g.ESRB,
		Price:     g.Price,
		Platforms: platforms,
	}
}
