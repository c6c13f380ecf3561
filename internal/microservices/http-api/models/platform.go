package models

// Platform links a game to a console it runs on.
type Platform struct {
	GameID    uint `json:"gameID" gorm:"primaryKey;autoIncrement:false"`
	ConsoleID uint `json:"consoleID" gorm:"primaryKey;autoIncrement:false;index"`

	// Associations, used for the foreign key constraints only
	Game    Game    `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
	Console Console `json:"-" gorm:"foreignKey:ConsoleID;constraint:OnDelete:CASCADE;"`
}

func (Platform) TableName() string {
	return "platforms"
}
