package dto

import "gamerental/internal/microservices/http-api/models"

type CreateConsoleRequest struct {
	Name           string  `json:"name" schema:"required"`
	Price          float64 `json:"price" schema:"required"`
	TVRequirements string  `json:"tvrequirements" schema:"required"`
}

type UpdateConsoleRequest struct {
	Name           *string  `json:"name,omitempty" schema:"optional"`
	Price          *float64 `json:"price,omitempty" schema:"optional"`
	TVRequirements *string  `json:"tvrequirements,omitempty" schema:"optional"`
}

// ConsoleDetailResponse is a console with the reviews written about it.
// Games holds the ids of the games linked to it.
type ConsoleDetailResponse struct {
	Console        models.Console         `json:"console"`
	Games          []uint                 `json:"games"`
	ConsoleReviews []models.ConsoleReview `json:"consoleReviews"`
}

func (d CreateConsoleRequest) ToModel() models.Console {
	return models.Console{
		Name:           d.Name,
		Price:          d.Price,
		TVRequirements: d.TVRequirements,
	}
}

func (d UpdateConsoleRequest) Columns() map[string]any {
	cols := map[string]any{}
	if d.Name != nil {
		cols["name"] = *d.Name
	}
	if d.Price != nil {
		cols["price"] = *d.Price
	}
	if d.TVRequirements != nil {
		cols["tv_requirements"] = *d.TVRequirements
	}
	return cols
}
