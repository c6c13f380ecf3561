package models

import "time"

type Console struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	Price          float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	TVRequirements string    `json:"tvrequirements" gorm:"column:tv_requirements;size:255;not null"`
	Rating         *float64  `json:"rating" gorm:"type:decimal(4,2)"` // average of console reviews, nil until reviewed
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Console) TableName() string {
	return "consoles"
}
