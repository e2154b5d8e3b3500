package domain

import "time"

// AssistantAuthorID es el autor reservado para los turnos del tutor.
const AssistantAuthorID = "ai-assistant"

type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Role expone el rol del mensaje tal como lo consume el cliente.
func (m Message) Role() string {
	if m.AuthorID == AssistantAuthorID {
		return "assistant"
	}
	return "user"
}
