package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/wallet-agent-chat/pkg/chat"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "chat:session:"

// RedisChatRepository guarda o histórico em uma lista Redis por sessão.
// Cada escrita renova o TTL, então conversas abandonadas expiram sozinhas.
type RedisChatRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisChatRepository cria uma nova instância de RedisChatRepository
func NewRedisChatRepository(client redis.UniversalClient, ttl time.Duration) *RedisChatRepository {
	return &RedisChatRepository{
		client: client,
		ttl:    ttl,
	}
}

var _ chat.Repository = (*RedisChatRepository)(nil)

func sessionKey(sessionID string) string {
	return redisKeyPrefix + sessionID
}

// Append adiciona as mensagens com RPUSH dentro de um MULTI/EXEC
func (r *RedisChatRepository) Append(ctx context.Context, sessionID string, messages ...chat.Message) error {
	if sessionID == "" {
		return ErrSessionNotSpecified
	}
	if len(messages) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(messages))
	for _, msg := range messages {
		if msg.ID == "" {
			msg.ID = uuid.New().String()
		}
		msg.SessionID = sessionID

		payload, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("erro ao serializar mensagem: %w", err)
		}
		values = append(values, payload)
	}

	key := sessionKey(sessionID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("erro ao salvar mensagem: %w", err)
	}

	return nil
}

// History retorna a lista inteira em ordem de inserção
func (r *RedisChatRepository) History(ctx context.Context, sessionID string) ([]chat.Message, error) {
	raw, err := r.client.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}

	messages := make([]chat.Message, 0, len(raw))
	for _, item := range raw {
		var msg chat.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// Count conta as mensagens da sessão
func (r *RedisChatRepository) Count(ctx context.Context, sessionID string) (int, error) {
	n, err := r.client.LLen(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}
	return int(n), nil
}

// Delete remove a lista da sessão
func (r *RedisChatRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("erro ao deletar histórico: %w", err)
	}
	return nil
}
