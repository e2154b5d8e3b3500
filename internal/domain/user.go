package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	DominantSide string    `json:"dominant_side,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
