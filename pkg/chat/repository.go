package chat

import (
	"context"
)

// Repository define a interface para o histórico de uma conversa.
// O histórico só cresce: mensagens nunca são reordenadas nem alteradas.
type Repository interface {
	// Append adiciona mensagens ao final do histórico da sessão, na ordem dada
	Append(ctx context.Context, sessionID string, messages ...Message) error

	// History retorna o histórico da sessão, da mais antiga para a mais recente
	History(ctx context.Context, sessionID string) ([]Message, error)

	// Count conta quantas mensagens a sessão tem
	Count(ctx context.Context, sessionID string) (int, error)

	// Delete descarta todo o histórico da sessão
	Delete(ctx context.Context, sessionID string) error
}
