package dto

import "time"

// CreateSessionRequest representa a conexão de uma carteira
type CreateSessionRequest struct {
	Address string `json:"address" binding:"required"`
}

// RefreshSessionRequest representa a renovação do token de uma sessão
type RefreshSessionRequest struct {
	Token string `json:"token" binding:"required"`
}

// SessionResponse representa uma sessão criada
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Address   string    `json:"address"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
