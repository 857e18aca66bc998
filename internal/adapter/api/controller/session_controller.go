package controller

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hugohenrick/wallet-agent-chat/internal/adapter/api/dto"
	"github.com/hugohenrick/wallet-agent-chat/pkg/auth"
	"github.com/hugohenrick/wallet-agent-chat/pkg/logger"
	"github.com/hugohenrick/wallet-agent-chat/pkg/session"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// SessionController cria sessões de conversa para carteiras conectadas
type SessionController struct {
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewSessionController cria uma nova instância de SessionController
func NewSessionController(jwtService *auth.JWTService, log logger.Logger) *SessionController {
	return &SessionController{
		jwtService: jwtService,
		logger:     log,
	}
}

// CreateSession conecta uma carteira e inicia uma nova conversa
// @Summary Conecta uma carteira
// @Description Cria uma sessão de conversa ligada ao endereço informado e retorna o token de acesso
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body dto.CreateSessionRequest true "Endereço da carteira"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var request dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if !addressPattern.MatchString(request.Address) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Endereço inválido", "use o formato 0x seguido de 40 dígitos hexadecimais"))
		return
	}

	sess := session.Session{ID: uuid.New().String(), Address: request.Address}

	token, expiresAt, err := c.jwtService.GenerateToken(sess)
	if err != nil {
		c.logger.Error("Erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	c.logger.Info("Carteira conectada", "session_id", sess.ID, "address", sess.Address)

	ctx.JSON(http.StatusCreated, dto.SessionResponse{
		SessionID: sess.ID,
		Address:   sess.Address,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// RefreshSession renova o token de uma sessão existente
// @Summary Renova o token da sessão
// @Description Emite um novo token para a mesma sessão e carteira
// @Tags sessions
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshSessionRequest true "Token atual"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /sessions/refresh [post]
func (c *SessionController) RefreshSession(ctx *gin.Context) {
	var request dto.RefreshSessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	sess, token, expiresAt, err := c.jwtService.RefreshToken(request.Token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) || errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrInvalidClaims) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Token inválido", err.Error()))
			return
		}
		c.logger.Error("Erro ao renovar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao renovar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionResponse{
		SessionID: sess.ID,
		Address:   sess.Address,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
