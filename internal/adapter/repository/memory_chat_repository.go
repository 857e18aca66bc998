package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hugohenrick/wallet-agent-chat/pkg/chat"
)

// MemoryChatRepository mantém o histórico apenas em memória, como a sessão do navegador
type MemoryChatRepository struct {
	mu       sync.RWMutex
	sessions map[string][]chat.Message
}

// NewMemoryChatRepository cria uma nova instância de MemoryChatRepository
func NewMemoryChatRepository() *MemoryChatRepository {
	return &MemoryChatRepository{
		sessions: make(map[string][]chat.Message),
	}
}

var _ chat.Repository = (*MemoryChatRepository)(nil)

// Append adiciona mensagens ao final do histórico
func (r *MemoryChatRepository) Append(ctx context.Context, sessionID string, messages ...chat.Message) error {
	if sessionID == "" {
		return ErrSessionNotSpecified
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, msg := range messages {
		if msg.ID == "" {
			msg.ID = uuid.New().String()
		}
		msg.SessionID = sessionID
		r.sessions[sessionID] = append(r.sessions[sessionID], msg)
	}

	return nil
}

// History retorna uma cópia do histórico
func (r *MemoryChatRepository) History(ctx context.Context, sessionID string) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.sessions[sessionID]
	messages := make([]chat.Message, len(stored))
	copy(messages, stored)

	return messages, nil
}

// Count conta as mensagens da sessão
func (r *MemoryChatRepository) Count(ctx context.Context, sessionID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions[sessionID]), nil
}

// Delete descarta o histórico da sessão
func (r *MemoryChatRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()

	return nil
}
