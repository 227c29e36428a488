package router

import (
	"log"

	"brazyl/config"
	"brazyl/controllers"
	"brazyl/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares.
// Rotas públicas (consumidas pelo bot em nome do usuário) + rotas internas
// protegidas por API Key (N8N e gatilhos operacionais).
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", Logger(), controllers.Health)

	api := r.Group("/api")

	// Usuários
	api.POST("/users", Logger(), controllers.CreateUser)
	api.GET("/users/:id", Logger(), controllers.GetUserByID)
	api.PUT("/users/:id", Logger(), controllers.UpdateUser)
	api.GET("/users/by-whatsapp/:number", Logger(), controllers.GetUserByWhatsApp)

	// Políticos (somente leitura: a população é processo externo)
	api.GET("/politicians", Logger(), controllers.ListPoliticians)
	api.GET("/politicians/:id", Logger(), controllers.GetPolitician)
	api.GET("/politicians/:id/history", Logger(), controllers.GetPoliticianHistory)

	// Planos (referência)
	api.GET("/plans", Logger(), controllers.GetPlans)
	api.GET("/plans/:type", Logger(), controllers.GetPlanByType)

	// Follows
	api.POST("/follows", Logger(), controllers.CreateFollow)
	api.DELETE("/follows/:id", Logger(), controllers.DeleteFollow)
	api.GET("/follows/users/:userId", Logger(), controllers.ListFollows)
	api.GET("/follows/stats/:userId", Logger(), controllers.FollowStats)

	// Notificações (leitura)
	api.GET("/notifications/users/:userId", Logger(), controllers.ListNotifications)
	api.GET("/notifications/users/:userId/stats", Logger(), controllers.NotificationStats)

	// Rotas internas (API Key)
	internal := api.Group("")
	internal.Use(APIKeyRequired(cfg.Security.ApiKey))
	internal.POST("/notifications", Logger(), controllers.CreateNotification)
	internal.POST("/notifications/:id/delivery-receipt", Logger(), controllers.NotificationDeliveryReceipt)
	internal.POST("/notifications/process", Logger(), controllers.ProcessNotifications)

	log.Printf("Routes initialized")
}
