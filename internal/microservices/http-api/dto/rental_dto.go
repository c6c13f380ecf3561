package dto

import (
	"fmt"
	"time"

	"gamerental/internal/microservices/http-api/models"
)

const DateLayout = "2006-01-02"

type CreateRentalRequest struct {
	StartDate string `json:"startdate" schema:"required"`
	EndDate   string `json:"enddate" schema:"required"`
	Returned  bool   `json:"returned" schema:"required"`
	ConsoleID uint   `json:"consoleID" schema:"required,positive"`
	GameID    uint   `json:"gameID" schema:"required,positive"`
	RenterID  uint   `json:"renterID" schema:"required,positive"`
}

type UpdateRentalRequest struct {
	StartDate *string `json:"startdate,omitempty" schema:"optional"`
	EndDate   *string `json:"enddate,omitempty" schema:"optional"`
	Returned  *bool   `json:"returned,omitempty" schema:"optional"`
	ConsoleID *uint   `json:"consoleID,omitempty" schema:"optional,positive"`
	GameID    *uint   `json:"gameID,omitempty" schema:"optional,positive"`
	RenterID  *uint   `json:"renterID,omitempty" schema:"optional,positive"`
}

type RentalResponse struct {
	ID        uint   `json:"id"`
	StartDate string `json:"startdate"`
	EndDate   string `json:"enddate"`
	Returned  bool   `json:"returned"`
	ConsoleID uint   `json:"consoleID"`
	GameID    uint   `json:"gameID"`
	RenterID  uint   `json:"renterID"`
}

// ParseDate accepts a calendar date (2006-01-02) or a full RFC3339 timestamp.
func ParseDate(field, value string) (time.Time, error) {
	if d, err := time.Parse(DateLayout, value); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.UTC().Truncate(24 * time.Hour), nil
	}
	return time.Time{}, fmt.Errorf("%s must be a date formatted as YYYY-MM-DD", field)
}

func (d CreateRentalRequest) ToModel() (models.Rental, error) {
	start, err := ParseDate("startdate", d.StartDate)
	if err != nil {
		return models.Rental{}, err
	}
	end, err := ParseDate("enddate", d.EndDate)
	if err != nil {
		return models.Rental{}, err
	}
	return models.Rental{
		StartDate: start,
		EndDate:   end,
		Returned:  d.Returned,
		ConsoleID: d.ConsoleID,
		GameID:    d.GameID,
		RenterID:  d.RenterID,
	}, nil
}

func (d UpdateRentalRequest) Columns() (map[string]any, error) {
	cols := map[string]any{}
	if d.StartDate != nil {
		start, err := ParseDate("startdate", *d.StartDate)
		if err != nil {
			return nil, err
		}
		cols["start_date"] = start
	}
	if d.EndDate != nil {
		end, err := ParseDate("enddate", *d.EndDate)
		if err != nil {
			return nil, err
		}
		cols["end_date"] = end
	}
	if d.Returned != nil {
		cols["returned"] = *d.Returned
	}
	if d.ConsoleID != nil {
		cols["console_id"] = *d.ConsoleID
	}
	if d.GameID != nil {
		cols["game_id"] = *d.GameID
	}
	if d.RenterID != nil {
		cols["renter_id"] = *d.RenterID
	}
	return cols, nil
}

func FromModelToRentalResponse(r models.Rental) RentalResponse {
	return RentalResponse{
		ID:        r.ID,
		StartDate: r.StartDate.Format(DateLayout),
		EndDate:   r.EndDate.Format(DateLayout),
		Returned:  r.Returned,
		ConsoleID: r.ConsoleID,
		GameID:    r.GameID,
		RenterID:  r.RenterID,
	}
}

func FromModelsToRentalResponses(list []models.Rental) []RentalResponse {
	out := make([]RentalResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromModelToRentalResponse(r))
	}
	return out
}
