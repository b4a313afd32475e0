package player

import "time"

// AnonymousName is the placeholder assigned when a player gives no name.
// Several players may share it; any other name must be unique.
const AnonymousName = "anonymous"

const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

type Player struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"not null;default:player" json:"role"`
	SuccessRate float64   `gorm:"not null;default:0" json:"success_rate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateNameRequest struct {
	Name string `json:"name"`
}
