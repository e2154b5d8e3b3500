package domain

import "time"

// Assessment registra el resultado del test de dominancia. Es inmutable:
// una vez guardado, es la fuente de verdad del dominant_side del usuario.
type Assessment struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	LeftScore    int       `json:"left_score"`
	RightScore   int       `json:"right_score"`
	DominantSide string    `json:"dominant_side"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
}

// DeriveDominance calcula el lado dominante a partir de los contadores crudos.
func DeriveDominance(left, right int) DominanceType {
	switch {
	case left > right:
		return DominanceLeft
	case right > left:
		return DominanceRight
	default:
		return DominanceBalanced
	}
}
