package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/wallet-agent-chat/internal/adapter/api/dto"
	"github.com/hugohenrick/wallet-agent-chat/pkg/chat"
	"github.com/hugohenrick/wallet-agent-chat/pkg/logger"
	"github.com/hugohenrick/wallet-agent-chat/pkg/session"
)

// ChatController gerencia as requisições da conversa com o agente
type ChatController struct {
	service *chat.Service
	logger  logger.Logger
}

// NewChatController cria uma nova instância de ChatController
func NewChatController(service *chat.Service, log logger.Logger) *ChatController {
	return &ChatController{
		service: service,
		logger:  log,
	}
}

// ListPrompts lista as perguntas sugeridas
// @Summary Lista as perguntas sugeridas
// @Tags chat
// @Produce json
// @Success 200 {object} dto.PromptsResponse
// @Router /chat/prompts [get]
func (c *ChatController) ListPrompts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.PromptsResponse{Prompts: chat.PresetQuestions})
}

// SendMessage envia uma mensagem ao agente
// @Summary Envia uma mensagem ao agente
// @Description Registra a mensagem do usuário e a resposta do agente. Falhas do agente retornam 200 com a mensagem de desculpas.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body dto.MessageRequest true "Mensagem"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	sess, ok := currentSession(ctx)
	if !ok {
		return
	}

	var request dto.MessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	exchange, err := c.service.Submit(ctx.Request.Context(), sess.ID, sess.Address, request.Message)
	c.respondExchange(ctx, sess, exchange, err)
}

// SendPreset envia uma das perguntas sugeridas
// @Summary Envia uma pergunta sugerida
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param index path int true "Índice da pergunta"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /chat/prompts/{index} [post]
func (c *ChatController) SendPreset(ctx *gin.Context) {
	sess, ok := currentSession(ctx)
	if !ok {
		return
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Índice inválido", err.Error()))
		return
	}

	exchange, err := c.service.SubmitPreset(ctx.Request.Context(), sess.ID, sess.Address, index)
	c.respondExchange(ctx, sess, exchange, err)
}

// RunOnchain registra a execução simulada de uma função on-chain
// @Summary Executa a ação on-chain simulada
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /chat/onchain [post]
func (c *ChatController) RunOnchain(ctx *gin.Context) {
	sess, ok := currentSession(ctx)
	if !ok {
		return
	}

	exchange, err := c.service.RunOnchainPlaceholder(ctx.Request.Context(), sess.ID)
	c.respondExchange(ctx, sess, exchange, err)
}

// GetHistory retorna o histórico da conversa
// @Summary Histórico da conversa
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.HistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/messages [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	sess, ok := currentSession(ctx)
	if !ok {
		return
	}

	history, err := c.service.History(ctx.Request.Context(), sess.ID)
	if err != nil {
		c.logger.Error("Erro ao buscar histórico", "error", err, "session_id", sess.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar histórico", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.HistoryResponse{SessionID: sess.ID, Messages: history})
}

// DeleteHistory reinicia a conversa
// @Summary Reinicia a conversa
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/messages [delete]
func (c *ChatController) DeleteHistory(ctx *gin.Context) {
	sess, ok := currentSession(ctx)
	if !ok {
		return
	}

	if err := c.service.Reset(ctx.Request.Context(), sess.ID); err != nil {
		if errors.Is(err, chat.ErrRequestInFlight) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Requisição em andamento", err.Error()))
			return
		}
		c.logger.Error("Erro ao deletar histórico", "error", err, "session_id", sess.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao deletar histórico", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Histórico removido com sucesso", nil))
}

func (c *ChatController) respondExchange(ctx *gin.Context, sess session.Session, exchange *chat.Exchange, err error) {
	if err != nil {
		status, message := statusFromChatError(err)
		if status == http.StatusInternalServerError {
			c.logger.Error("Erro ao processar mensagem", "error", err, "session_id", sess.ID)
		}
		ctx.JSON(status, dto.NewErrorResponse(status, message, err.Error()))
		return
	}

	history, err := c.service.History(ctx.Request.Context(), sess.ID)
	if err != nil {
		c.logger.Error("Erro ao buscar histórico", "error", err, "session_id", sess.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar histórico", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(exchange, history))
}

// statusFromChatError mapeia os erros do serviço de chat para status HTTP
func statusFromChatError(err error) (int, string) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return http.StatusBadRequest, "Mensagem vazia"
	case errors.Is(err, chat.ErrUnknownPreset):
		return http.StatusNotFound, "Pergunta não encontrada"
	case errors.Is(err, chat.ErrRequestInFlight):
		return http.StatusConflict, "Requisição em andamento"
	default:
		return http.StatusInternalServerError, "Erro ao processar mensagem"
	}
}

// currentSession obtém a sessão autenticada ou responde 401
func currentSession(ctx *gin.Context) (session.Session, bool) {
	sess, ok := session.FromGin(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", "sessão não encontrada"))
		return session.Session{}, false
	}
	return sess, true
}
