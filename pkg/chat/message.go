package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifica o autor de uma mensagem
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid verifica se o papel é conhecido
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message representa uma mensagem no histórico do chat
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage cria uma mensagem com ID e timestamp preenchidos
func NewMessage(sessionID string, role Role, content string) Message {
	return Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}
