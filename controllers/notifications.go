package controllers

import (
	"time"

	"brazyl/apperrors"
	"brazyl/services"

	"github.com/gin-gonic/gin"
)

// POST /api/notifications (interno - exige X-API-Key)
// Criado pelo fluxo N8N quando um evento político casa com follows.
func CreateNotification(c *gin.Context) {
	var in services.CreateNotificationInput
	if err := c.Bind(&in); err != nil {
		RespondError(c, apperrors.Validation("%s", err.Error()))
		return
	}

	notification, err := notifications.Create(c.Request.Context(), in)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondCreated(c, gin.H{"notification": notification})
}

// GET /api/notifications/users/:userId
func ListNotifications(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}

	limit, offset, ok := PaginationParams(c)
	if !ok {
		return
	}

	items, total, err := notifications.ListByUser(userID, limit, offset)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondList(c, items, limit, offset, total)
}

// GET /api/notifications/users/:userId/stats
func NotificationStats(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}

	stats, err := notifications.Stats(userID)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, stats)
}

type DeliveryReceiptInput struct {
	DeliveredAt *time.Time `json:"delivered_at" form:"delivered_at"`
}

// POST /api/notifications/:id/delivery-receipt (interno - exige X-API-Key)
// Recibo assíncrono do provedor de mensagens: SENT -> DELIVERED.
func NotificationDeliveryReceipt(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var in DeliveryReceiptInput
	if err := c.Bind(&in); err != nil {
		RespondError(c, apperrors.Validation("%s", err.Error()))
		return
	}
	deliveredAt := time.Now()
	if in.DeliveredAt != nil {
		deliveredAt = *in.DeliveredAt
	}

	notification, err := notifications.ConfirmDelivery(id, deliveredAt)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, gin.H{"notification": notification})
}

// POST /api/notifications/process (interno - exige X-API-Key)
// Gatilho manual do sweep, além do agendamento via cron.
func ProcessNotifications(c *gin.Context) {
	processed, err := notifications.ProcessPending(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, gin.H{"processed": processed})
}
