package dto

import "gamerental/internal/microservices/http-api/models"

// GameReviewRequest is used for both POST and PUT /game_reviews.
// On update gameID and userID must match the stored review.
type GameReviewRequest struct {
	Rating int              `json:"rating" schema:"required"`
	Review Optional[string] `json:"review" schema:"optional"`
	GameID uint             `json:"gameID" schema:"required,positive"`
	UserID uint             `json:"userID" schema:"required,positive"`
}

// ConsoleReviewRequest is used for both POST and PUT /console_reviews.
// On update consoleID and userID must match the stored review.
type ConsoleReviewRequest struct {
	Rating    int              `json:"rating" schema:"required"`
	Review    Optional[string] `json:"review" schema:"optional"`
	ConsoleID uint             `json:"consoleID" schema:"required,positive"`
	UserID    uint             `json:"userID" schema:"required,positive"`
}

func (d GameReviewRequest) ToModel() models.GameReview {
	return models.GameReview{
		Rating: d.Rating,
		Review: d.Review.Value,
		GameID: d.GameID,
		UserID: d.UserID,
	}
}

func (d ConsoleReviewRequest) ToModel() models.ConsoleReview {
	return models.ConsoleReview{
		Rating:    d.Rating,
		Review:    d.Review.Value,
		ConsoleID: d.ConsoleID,
		UserID:    d.UserID,
	}
}

// Columns holds the review fields an update may change. An omitted review
// text keeps the stored one, an explicit null clears it.
func (d GameReviewRequest) Columns() map[string]any {
	return reviewColumns(d.Rating, d.Review)
}

func (d ConsoleReviewRequest) Columns() map[string]any {
	return reviewColumns(d.Rating, d.Review)
}

func reviewColumns(rating int, review Optional[string]) map[string]any {
	cols := map[string]any{"rating": rating}
	switch {
	case !review.Set:
	case review.Value == nil:
		cols["review"] = nil
	default:
		cols["review"] = *review.Value
	}
	return cols
}
