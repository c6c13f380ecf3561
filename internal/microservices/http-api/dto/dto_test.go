package dto

import (
	"encoding/json"
	"testing"
	"time"

	"gamerental/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
func uintPtr(u uint) *uint        { return &u }

func TestParseDate(t *testing.T) {
	d, err := ParseDate("startdate", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("startdate", "2024-03-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d.Format(DateLayout))

	_, err = ParseDate("enddate", "next tuesday")
	assert.EqualError(t, err, "enddate must be a date formatted as YYYY-MM-DD")
}

func TestCreateRentalRequest_ToModel(t *testing.T) {
	req := CreateRentalRequest{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-08",
		ConsoleID: 2,
		GameID:    3,
		RenterID:  4,
	}
	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, uint(4), m.RenterID)

	resp := FromModelToRentalResponse(m)
	assert.Equal(t, "2024-03-01", resp.StartDate)
	assert.Equal(t, "2024-03-08", resp.EndDate)

	req.EndDate = "soon"
	_, err = req.ToModel()
	assert.Error(t, err)
}

func TestUpdateRequests_OnlyProvidedColumns(t *testing.T) {
	game := UpdateGameRequest{Price: floatPtr(19.99)}
	assert.Equal(t, map[string]any{"price": 19.99}, game.Columns())

	console := UpdateConsoleRequest{Name: strPtr("Wii"), TVRequirements: strPtr("480p")}
	assert.Equal(t, map[string]any{"name": "Wii", "tv_requirements": "480p"}, console.Columns())

	user := UpdateUserRequest{FirstName: strPtr("Ada"), Password: strPtr("secret")}
	assert.Equal(t, map[string]any{"first_name": "Ada"}, user.Columns())

	rental := UpdateRentalRequest{Returned: boolPtr(true), GameID: uintPtr(9)}
	cols, err := rental.Columns()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"returned": true, "game_id": uint(9)}, cols)

	_, err = UpdateRentalRequest{StartDate: strPtr("bad")}.Columns()
	assert.Error(t, err)
}

func TestReviewColumns_KeepStoredText(t *testing.T) {
	assert.Equal(t, map[string]any{"rating": 4}, GameReviewRequest{Rating: 4}.Columns())
	assert.Equal(t,
		map[string]any{"rating": 2, "review": "meh"},
		ConsoleReviewRequest{Rating: 2, Review: Some("meh")}.Columns())
	assert.Equal(t,
		map[string]any{"rating": 2, "review": nil},
		ConsoleReviewRequest{Rating: 2, Review: Null[string]()}.Columns())
}

func TestOptional_TellsNullFromAbsent(t *testing.T) {
	var absent, null, text GameReviewRequest
	require.NoError(t, json.Unmarshal([]byte(`{"rating":1}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"rating":1,"review":null}`), &null))
	require.NoError(t, json.Unmarshal([]byte(`{"rating":1,"review":"ok"}`), &text))

	assert.False(t, absent.Review.Set)
	assert.True(t, null.Review.Set)
	assert.Nil(t, null.Review.Value)
	require.NotNil(t, text.Review.Value)
	assert.Equal(t, "ok", *text.Review.Value)
	assert.Equal(t, "ok", *text.ToModel().Review)

	assert.Error(t, json.Unmarshal([]byte(`{"review":5}`), &text))
}

func TestFromModelToGameResponse_EmptyPlatforms(t *testing.T) {
	resp := FromModelToGameResponse(models.Game{ID: 1, Name: "X"}, nil)
	assert.NotNil(t, resp.Platforms)
	assert.Empty(t, resp.Platforms)
}
