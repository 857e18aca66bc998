package dto

import (
	"github.com/hugohenrick/wallet-agent-chat/pkg/chat"
)

// MessageRequest representa uma mensagem enviada ao agente
type MessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// MessageResponse representa a resposta do agente com o histórico atualizado
type MessageResponse struct {
	Response string         `json:"response"`
	Failed   bool           `json:"failed"`
	History  []chat.Message `json:"history"`
}

// HistoryResponse representa o histórico da conversa
type HistoryResponse struct {
	SessionID string         `json:"session_id"`
	Messages  []chat.Message `json:"messages"`
}

// PromptsResponse lista as perguntas sugeridas
type PromptsResponse struct {
	Prompts []string `json:"prompts"`
}

// SocketReply é o quadro enviado pelo websocket após cada envio
type SocketReply struct {
	Exchange *chat.Exchange `json:"exchange,omitempty"`
	Error    *ErrorResponse `json:"error,omitempty"`
}

// NewMessageResponse cria uma nova resposta com histórico
func NewMessageResponse(exchange *chat.Exchange, history []chat.Message) MessageResponse {
	return MessageResponse{
		Response: exchange.Assistant.Content,
		Failed:   exchange.Failed,
		History:  history,
	}
}
