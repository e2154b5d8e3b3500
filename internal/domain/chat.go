package domain

import "time"

// Chat agrupa una secuencia ordenada de mensajes de un solo usuario.
type Chat struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
