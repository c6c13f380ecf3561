package models

import "time"

type Game struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Genre     string    `json:"genre" gorm:"size:64;not null"`
	ESRB      string    `json:"esrb" gorm:"column:esrb;size:8;not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Game) TableName() string {
	return "games"
}
