package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/wallet-agent-chat/internal/adapter/api/controller"
	"github.com/hugohenrick/wallet-agent-chat/pkg/auth"
)

// ConfigureChatRoutes configura as rotas da conversa
func ConfigureChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController, socketController *controller.SocketController, jwtService *auth.JWTService) {
	chatGroup := router.Group("/chat")
	{
		chatGroup.GET("/prompts", chatController.ListPrompts)

		protected := chatGroup.Group("")
		protected.Use(auth.JWTAuthMiddleware(jwtService))
		{
			protected.POST("/messages", chatController.SendMessage)
			protected.GET("/messages", chatController.GetHistory)
			protected.DELETE("/messages", chatController.DeleteHistory)
			protected.POST("/prompts/:index", chatController.SendPreset)
			protected.POST("/onchain", chatController.RunOnchain)
			protected.GET("/ws", socketController.Handle)
		}
	}
}
