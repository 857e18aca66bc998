package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/wallet-agent-chat/internal/adapter/api/dto"
)

// HealthController informa o estado do serviço
type HealthController struct {
	version          string
	llmConfigured    bool
	walletConfigured bool
}

// NewHealthController cria uma nova instância de HealthController
func NewHealthController(version string, llmConfigured, walletConfigured bool) *HealthController {
	return &HealthController{
		version:          version,
		llmConfigured:    llmConfigured,
		walletConfigured: walletConfigured,
	}
}

// Health retorna o estado do serviço
// @Summary Estado do serviço
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:           "ok",
		Version:          c.version,
		LLMConfigured:    c.llmConfigured,
		WalletConfigured: c.walletConfigured,
	})
}
