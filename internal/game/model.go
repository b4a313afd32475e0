package game

import "time"

type Game struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PlayerID  uint      `gorm:"not null;index" json:"player_id"`
	DiceOne   int       `gorm:"not null" json:"dice_one"`
	DiceTwo   int       `gorm:"not null" json:"dice_two"`
	Win       bool      `gorm:"not null" json:"win"`
	CreatedAt time.Time `json:"created_at"`
}
