package models

import "time"

// GameReview is one user's rating of a game. A user reviews a game at most once.
type GameReview struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Rating    int       `json:"rating" gorm:"not null"`
	Review    *string   `json:"review,omitempty" gorm:"type:text"`
	GameID    uint      `json:"gameID" gorm:"not null;index"`
	UserID    uint      `json:"userID" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (GameReview) TableName() string {
	return "gamereviews"
}

// ConsoleReview is one user's rating of a console. A user reviews a console at most once.
type ConsoleReview struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Rating    int       `json:"rating" gorm:"not null"`
	Review    *string   `json:"review,omitempty" gorm:"type:text"`
	ConsoleID uint      `json:"consoleID" gorm:"not null;index"`
	UserID    uint      `json:"userID" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ConsoleReview) TableName() string {
	return "consolereviews"
}

// All lists every model owned by the API, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Console{},
		&Game{},
		&Platform{},
		&Rental{},
		&GameReview{},
		&ConsoleReview{},
	}
}

func (r GameReview) GetID() uint    { return r.ID }
func (r GameReview) TargetID() uint { return r.GameID }
func (r GameReview) AuthorID() uint { return r.UserID }

func (r ConsoleReview) GetID() uint    { return r.ID }
func (r ConsoleReview) TargetID() uint { return r.ConsoleID }
func (r ConsoleReview) AuthorID() uint { return r.UserID }
