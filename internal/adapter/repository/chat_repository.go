package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hugohenrick/wallet-agent-chat/pkg/chat"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresChatRepository persiste o histórico na tabela chat_history
type PostgresChatRepository struct {
	db *pgxpool.Pool
}

// NewPostgresChatRepository cria uma nova instância de PostgresChatRepository
func NewPostgresChatRepository(db *pgxpool.Pool) chat.Repository {
	return &PostgresChatRepository{
		db: db,
	}
}

// Append insere as mensagens em uma única transação, preservando a ordem
func (r *PostgresChatRepository) Append(ctx context.Context, sessionID string, messages ...chat.Message) error {
	if sessionID == "" {
		return ErrSessionNotSpecified
	}
	if len(messages) == 0 {
		return nil
	}

	query := `
		INSERT INTO chat_history (id, session_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	batch := &pgx.Batch{}
	for _, msg := range messages {
		// Se o ID da mensagem estiver vazio, gerar um novo
		if msg.ID == "" {
			msg.ID = uuid.New().String()
		}
		batch.Queue(query,
			msg.ID,
			sessionID,
			string(msg.Role),
			msg.Content,
			msg.Timestamp,
		)
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return fmt.Errorf("erro ao salvar mensagem: %w", err)
	}

	return nil
}

// History retorna as mensagens na ordem de inserção
func (r *PostgresChatRepository) History(ctx context.Context, sessionID string) ([]chat.Message, error) {
	query := `
		SELECT id, session_id, role, content, created_at
		FROM chat_history
		WHERE session_id = $1
		ORDER BY seq ASC
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	defer rows.Close()

	messages := make([]chat.Message, 0)
	for rows.Next() {
		var msg chat.Message
		var role string
		err := rows.Scan(
			&msg.ID,
			&msg.SessionID,
			&role,
			&msg.Content,
			&msg.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		msg.Role = chat.Role(role)
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return messages, nil
}

// Count conta as mensagens da sessão
func (r *PostgresChatRepository) Count(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chat_history WHERE session_id = $1`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}

	return count, nil
}

// Delete remove todo o histórico da sessão. Sessão sem mensagens não é erro.
func (r *PostgresChatRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM chat_history WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("erro ao deletar histórico: %w", err)
	}

	return nil
}
