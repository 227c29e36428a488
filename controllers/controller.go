package controllers

import (
	"brazyl/apperrors"
	"brazyl/cache"
	"brazyl/config"
	"brazyl/services"

	"github.com/gin-gonic/gin"
)

// Dependências compartilhadas dos handlers, injetadas no startup
// (mesmo espírito do db.SetConfigurations).
var (
	conf          config.Configuration
	followSvc     *services.FollowService
	notifications *services.NotificationService
	planRegistry  *services.PlanRegistry
	readCache     *cache.Client
)

func Setup(
	cfg config.Configuration,
	follows *services.FollowService,
	notificationSvc *services.NotificationService,
	plans *services.PlanRegistry,
	c *cache.Client,
) {
	conf = cfg
	followSvc = follows
	notifications = notificationSvc
	planRegistry = plans
	readCache = c
}

// RespondError devolve o envelope de erro com kind estável + mensagem.
func RespondError(c *gin.Context, err error) {
	var e *apperrors.Error
	if ae, ok := err.(*apperrors.Error); ok {
		e = ae
	} else {
		e = apperrors.Internal("%s", err.Error())
	}
	c.JSON(apperrors.HTTPStatus(e), gin.H{"success": false, "error": e})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(201, payload)
}

// RespondList devolve o envelope uniforme das listagens.
func RespondList(c *gin.Context, data any, limit, offset int, total int64) {
	c.JSON(200, gin.H{
		"success": true,
		"data":    data,
		"meta": gin.H{
			"limit":  limit,
			"offset": offset,
			"total":  total,
		},
	})
}
