package session

import (
	"context"
)

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	addressKey   contextKey = "wallet_address"
)

// Chaves usadas no contexto do Gin
const (
	GinSessionIDKey = "session_id"
	GinAddressKey   = "wallet_address"
)

// Session identifica uma conversa ligada a uma carteira
type Session struct {
	ID      string `json:"session_id"`
	Address string `json:"address"`
}

// WithSession define a sessão no contexto
func WithSession(ctx context.Context, s Session) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, s.ID)
	return context.WithValue(ctx, addressKey, s.Address)
}

// FromContext obtém a sessão do contexto
func FromContext(ctx context.Context) (Session, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	if !ok || id == "" {
		return Session{}, false
	}
	address, _ := ctx.Value(addressKey).(string)
	return Session{ID: id, Address: address}, true
}

// FromGin obtém a sessão de um contexto do Gin
func FromGin(c interface {
	GetString(string) string
}) (Session, bool) {
	id := c.GetString(GinSessionIDKey)
	if id == "" {
		return Session{}, false
	}
	return Session{ID: id, Address: c.GetString(GinAddressKey)}, true
}
