package router

import (
	"crypto/subtle"

	"brazyl/apperrors"
	"brazyl/controllers"

	"github.com/gin-gonic/gin"
)

// APIKeyRequired protege as rotas internas (N8N, cron externo, ingestor).
// A chave vem no header X-API-Key e é comparada em tempo constante.
func APIKeyRequired(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			controllers.RespondError(c, apperrors.Unauthorized("api_key não configurada no servidor"))
			c.Abort()
			return
		}

		provided := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			controllers.RespondError(c, apperrors.Unauthorized("API Key inválida"))
			c.Abort()
			return
		}

		c.Next()
	}
}
