package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/hugohenrick/wallet-agent-chat/internal/adapter/api/dto"
	"github.com/hugohenrick/wallet-agent-chat/pkg/chat"
	"github.com/hugohenrick/wallet-agent-chat/pkg/logger"
	"github.com/hugohenrick/wallet-agent-chat/pkg/session"
)

const (
	writeWait   = 10 * time.Second
	readTimeout = 5 * time.Minute
	maxFrame    = 64 << 10
)

// SocketController atende a conversa em tempo real via websocket.
// Cada quadro de texto recebido é um envio; a resposta traz o par de mensagens.
type SocketController struct {
	service  *chat.Service
	logger   logger.Logger
	upgrader websocket.Upgrader
}

// NewSocketController cria uma nova instância de SocketController.
// allowedOrigins vazio ou com "*" aceita qualquer origem.
func NewSocketController(service *chat.Service, log logger.Logger, allowedOrigins []string) *SocketController {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = struct{}{}
	}

	return &SocketController{
		service: service,
		logger:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(origins) == 0 {
					return true
				}
				if _, all := origins["*"]; all {
					return true
				}
				_, ok := origins[origin]
				return ok
			},
		},
	}
}

// Handle faz o upgrade da conexão e processa os quadros até o cliente desconectar
// @Summary Conversa em tempo real
// @Description Websocket: cada quadro {"message": "..."} é um envio; o token pode ir no parâmetro token
// @Tags chat
// @Security BearerAuth
// @Param token query string false "Token de sessão"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} dto.ErrorResponse
// @Router /chat/ws [get]
func (c *SocketController) Handle(ctx *gin.Context) {
	sess, ok := currentSession(ctx)
	if !ok {
		return
	}

	ws, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade já escreveu a resposta
		c.logger.Warn("Falha no upgrade do websocket", "error", err, "session_id", sess.ID)
		return
	}
	defer ws.Close()

	c.logger.Info("Websocket conectado", "session_id", sess.ID)

	ws.SetReadLimit(maxFrame)
	_ = ws.SetReadDeadline(time.Now().Add(readTimeout))

	for {
		msgType, data, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				c.logger.Debug("Leitura do websocket encerrada", "error", err, "session_id", sess.ID)
			}
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(readTimeout))

		if msgType != websocket.TextMessage {
			continue
		}

		reply := c.process(ctx, sess, data)
		if err := c.write(ws, reply); err != nil {
			c.logger.Debug("Escrita no websocket falhou", "error", err, "session_id", sess.ID)
			return
		}
	}
}

// process executa um envio a partir de um quadro recebido
func (c *SocketController) process(ctx *gin.Context, sess session.Session, data []byte) dto.SocketReply {
	var request dto.MessageRequest
	if err := json.Unmarshal(data, &request); err != nil {
		// Quadros que não são JSON são tratados como texto puro
		request.Message = string(data)
	}

	exchange, err := c.service.Submit(ctx.Request.Context(), sess.ID, sess.Address, request.Message)
	if err != nil {
		status, message := statusFromChatError(err)
		if status == http.StatusInternalServerError {
			c.logger.Error("Erro ao processar mensagem", "error", err, "session_id", sess.ID)
		}
		errResp := dto.NewErrorResponse(status, message, err.Error())
		return dto.SocketReply{Error: &errResp}
	}

	return dto.SocketReply{Exchange: exchange}
}

func (c *SocketController) write(ws *websocket.Conn, reply dto.SocketReply) error {
	payload, err := json.Marshal(reply)
	if err != nil {
		return errors.Join(errors.New("erro ao codificar resposta"), err)
	}
	if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return ws.WriteMessage(websocket.TextMessage, payload)
}
