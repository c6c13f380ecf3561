package models

import "time"

type Rental struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	StartDate time.Time `json:"startdate" gorm:"type:date;not null"`
	EndDate   time.Time `json:"enddate" gorm:"type:date;not null"`
	Returned  bool      `json:"returned" gorm:"not null;default:false"`
	ConsoleID uint      `json:"consoleID" gorm:"not null;index"`
	GameID    uint      `json:"gameID" gorm:"not null;index"`
	RenterID  uint      `json:"renterID" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Rental) TableName() string {
	return "rentals"
}
