package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/wallet-agent-chat/internal/adapter/api/controller"
)

// ConfigureSessionRoutes configura as rotas de sessão e de saúde
func ConfigureSessionRoutes(router *gin.RouterGroup, sessionController *controller.SessionController, healthController *controller.HealthController) {
	router.GET("/health", healthController.Health)
	router.POST("/sessions", sessionController.CreateSession)
	router.POST("/sessions/refresh", sessionController.RefreshSession)
}
