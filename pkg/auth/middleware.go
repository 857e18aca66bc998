package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/wallet-agent-chat/internal/adapter/api/dto"
	"github.com/hugohenrick/wallet-agent-chat/pkg/session"
)

// TokenQueryParam é usado por clientes que não conseguem enviar cabeçalhos (websocket no navegador)
const TokenQueryParam = "token"

// JWTAuthMiddleware cria um middleware que exige um token de sessão válido
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				err.Error(),
			))
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		// Armazenar a sessão no contexto
		sess := claims.Session()
		c.Set(session.GinSessionIDKey, sess.ID)
		c.Set(session.GinAddressKey, sess.Address)
		c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), sess))

		c.Next()
	}
}

// extractToken lê o token do cabeçalho Authorization ou do parâmetro de query
func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if token := c.Query(TokenQueryParam); token != "" {
			return token, nil
		}
		return "", errors.New("o cabeçalho Authorization não foi fornecido")
	}

	// Verificar o formato "Bearer <token>"
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
		return "", errors.New("use o formato 'Bearer <token>'")
	}

	return tokenParts[1], nil
}
