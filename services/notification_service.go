package services

import (
	"context"
	"log"
	"time"

	"brazyl/apperrors"
	"brazyl/models"
	"brazyl/tools"

	"github.com/jinzhu/gorm"
)

// NotificationService gerencia a fila de notificações e sua máquina de
// estados (PENDING -> SENDING -> SENT -> DELIVERED, com FAILED terminal).
type NotificationService struct {
	db           *gorm.DB
	messenger    tools.Messenger
	claimTimeout time.Duration
	batchSize    int
}

func NewNotificationService(db *gorm.DB, messenger tools.Messenger, claimTimeout time.Duration, batchSize int) *NotificationService {
	if claimTimeout <= 0 {
		claimTimeout = 5 * time.Minute
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &NotificationService{
		db:           db,
		messenger:    messenger,
		claimTimeout: claimTimeout,
		batchSize:    batchSize,
	}
}

type CreateNotificationInput struct {
	UserID       int64      `json:"user_id" form:"user_id"`
	PoliticianID *int64     `json:"politician_id" form:"politician_id"`
	EventID      *int64     `json:"event_id" form:"event_id"`
	Title        string     `json:"title" form:"title"`
	Message      string     `json:"message" form:"message"`
	ScheduledFor *time.Time `json:"scheduled_for" form:"scheduled_for"`
}

// Create enfileira uma notificação em PENDING. Para notificações ligadas a um
// evento, o par (user_id, event_id) é único: a segunda tentativa devolve
// Conflict sem criar linha, preservando a intenção de no máximo um envio
// por evento por usuário. Sem scheduled_for o envio é tentado na hora.
func (s *NotificationService) Create(ctx context.Context, in CreateNotificationInput) (*models.Notification, error) {
	if in.UserID <= 0 {
		return nil, apperrors.Validation("user_id é obrigatório")
	}
	if in.Title == "" {
		return nil, apperrors.Validation("title é obrigatório")
	}
	if in.Message == "" {
		return nil, apperrors.Validation("message é obrigatório")
	}

	var user models.User
	if err := s.db.First(&user, in.UserID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperrors.NotFound("usuário não encontrado")
		}
		return nil, err
	}

	immediate := in.ScheduledFor == nil
	scheduledFor := time.Now()
	if in.ScheduledFor != nil {
		scheduledFor = *in.ScheduledFor
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DependencyUnavailable("erro ao abrir transação: %v", tx.Error)
	}

	if in.EventID != nil {
		var existing models.Notification
		err := tx.Where("user_id = ? AND event_id = ?", in.UserID, *in.EventID).First(&existing).Error
		if err == nil {
			tx.Rollback()
			return nil, apperrors.Conflict("notificação já criada para este evento")
		}
		if !gorm.IsRecordNotFoundError(err) {
			tx.Rollback()
			return nil, err
		}
	}

	notification := models.Notification{
		UserID:       in.UserID,
		PoliticianID: in.PoliticianID,
		EventID:      in.EventID,
		Title:        in.Title,
		Message:      in.Message,
		Status:       models.NOTIFICATION_STATUS_PENDING,
		ScheduledFor: &scheduledFor,
	}
	if err := tx.Create(&notification).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if immediate {
		if s.claim(notification.ID, models.NOTIFICATION_STATUS_PENDING, nil) {
			s.dispatch(ctx, notification.ID)
		}
	}

	// devolve o estado atual (pode já ter virado SENT/FAILED no envio imediato)
	var out models.Notification
	if err := s.db.First(&out, notification.ID).Error; err != nil {
		return &notification, nil
	}
	return &out, nil
}

// ProcessPending é o sweep: pega as PENDING vencidas (mais antiga primeiro) e
// as SENDING órfãs (claim mais velho que claim_timeout), faz o claim atômico
// de cada uma e tenta a entrega. Falha do provedor, rejeição ou timeout levam
// a FAILED de uma vez: não há retry dentro do mesmo passe nem re-fila
// automática. Retorna quantas notificações foram despachadas com sucesso.
func (s *NotificationService) ProcessPending(ctx context.Context) (int, error) {
	now := time.Now()
	sent := 0

	var due []models.Notification
	if err := s.db.
		Where("status = ?", models.NOTIFICATION_STATUS_PENDING).
		Where("scheduled_for is not null and scheduled_for <= ?", now).
		Order("scheduled_for asc, id asc").
		Limit(s.batchSize).
		Find(&due).Error; err != nil {
		return 0, err
	}

	for _, n := range due {
		if !s.claim(n.ID, models.NOTIFICATION_STATUS_PENDING, nil) {
			// outro sweep chegou primeiro
			continue
		}
		if s.dispatch(ctx, n.ID) {
			sent++
		}
	}

	// linhas SENDING abandonadas por um sweep interrompido
	staleBefore := now.Add(-s.claimTimeout)
	var stale []models.Notification
	if err := s.db.
		Where("status = ?", models.NOTIFICATION_STATUS_SENDING).
		Where("claimed_at is not null and claimed_at <= ?", staleBefore).
		Order("claimed_at asc, id asc").
		Limit(s.batchSize).
		Find(&stale).Error; err != nil {
		return sent, err
	}

	for _, n := range stale {
		if !s.claim(n.ID, models.NOTIFICATION_STATUS_SENDING, n.ClaimedAt) {
			continue
		}
		if s.dispatch(ctx, n.ID) {
			sent++
		}
	}

	return sent, nil
}

// claim marca a notificação como SENDING via update condicional. Só um
// chamador consegue a transição; os demais veem RowsAffected == 0.
// Para re-claim de linhas órfãs, o claimed_at antigo entra na condição.
func (s *NotificationService) claim(id int64, fromStatus string, previousClaim *time.Time) bool {
	now := time.Now()
	q := s.db.Model(&models.Notification{}).Where("id = ? AND status = ?", id, fromStatus)
	if fromStatus == models.NOTIFICATION_STATUS_SENDING {
		if previousClaim == nil {
			return false
		}
		q = q.Where("claimed_at = ?", *previousClaim)
	}
	res := q.Updates(map[string]any{
		"status":     models.NOTIFICATION_STATUS_SENDING,
		"claimed_at": &now,
	})
	if res.Error != nil {
		log.Printf("notifications: erro no claim da notificação %d: %v", id, res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// dispatch entrega uma notificação já em SENDING. Retorna true quando o
// provedor aceitou (status vira SENT).
func (s *NotificationService) dispatch(ctx context.Context, id int64) bool {
	var n models.Notification
	if err := s.db.First(&n, id).Error; err != nil {
		log.Printf("notifications: notificação %d sumiu antes do envio: %v", id, err)
		return false
	}
	if n.Status != models.NOTIFICATION_STATUS_SENDING {
		return false
	}

	var user models.User
	if err := s.db.First(&user, n.UserID).Error; err != nil {
		s.markFailed(n.ID, "usuário da notificação não encontrado")
		return false
	}
	if user.WhatsappNumber == "" {
		s.markFailed(n.ID, "usuário sem número de WhatsApp")
		return false
	}

	result, err := s.messenger.Send(ctx, user.WhatsappNumber, n.Title, n.Message)
	if err != nil {
		// indisponibilidade (timeout incluso) conta como falha de entrega
		s.markFailed(n.ID, err.Error())
		return false
	}
	if !result.Accepted {
		s.markFailed(n.ID, result.Reason)
		return false
	}

	now := time.Now()
	res := s.db.Model(&models.Notification{}).
		Where("id = ? AND status = ?", n.ID, models.NOTIFICATION_STATUS_SENDING).
		Updates(map[string]any{
			"status":  models.NOTIFICATION_STATUS_SENT,
			"sent_at": &now,
		})
	if res.Error != nil || res.RowsAffected == 0 {
		log.Printf("notifications: falha ao marcar %d como SENT: %v", n.ID, res.Error)
		return false
	}
	return true
}

func (s *NotificationService) markFailed(id int64, reason string) {
	res := s.db.Model(&models.Notification{}).
		Where("id = ? AND status = ?", id, models.NOTIFICATION_STATUS_SENDING).
		Updates(map[string]any{
			"status":        models.NOTIFICATION_STATUS_FAILED,
			"error_message": reason,
		})
	if res.Error != nil {
		log.Printf("notifications: falha ao marcar %d como FAILED: %v", id, res.Error)
	}
	log.Printf("notifications: notificação %d falhou: %s", id, reason)
}

// ConfirmDelivery aplica o recibo assíncrono do provedor: SENT -> DELIVERED.
// Recibo para notificação em estado terminal (ou ainda não enviada) é
// rejeitado como Conflict; estado terminal nunca é sobrescrito.
func (s *NotificationService) ConfirmDelivery(id int64, deliveredAt time.Time) (*models.Notification, error) {
	var n models.Notification
	if err := s.db.First(&n, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperrors.NotFound("notificação não encontrada")
		}
		return nil, err
	}

	res := s.db.Model(&models.Notification{}).
		Where("id = ? AND status = ?", id, models.NOTIFICATION_STATUS_SENT).
		Updates(map[string]any{
			"status":       models.NOTIFICATION_STATUS_DELIVERED,
			"delivered_at": &deliveredAt,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.Conflict("recibo inválido: notificação em %s", n.Status)
	}

	var out models.Notification
	if err := s.db.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// NotificationItem é uma notificação com o nome do político embutido.
type NotificationItem struct {
	models.Notification
	PoliticianName string `json:"politician_name,omitempty"`
}

// ListByUser lista notificações do usuário, mais recentes primeiro.
func (s *NotificationService) ListByUser(userID int64, limit, offset int) ([]NotificationItem, int64, error) {
	var total int64
	if err := s.db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	items := make([]NotificationItem, 0, len(notifications))
	ids := make([]int64, 0, len(notifications))
	for _, n := range notifications {
		if n.PoliticianID != nil {
			ids = append(ids, *n.PoliticianID)
		}
	}
	names := make(map[int64]string)
	if len(ids) > 0 {
		var politicians []models.Politician
		if err := s.db.Where("id in (?)", ids).Find(&politicians).Error; err != nil {
			return nil, 0, err
		}
		for _, p := range politicians {
			names[p.ID] = p.DisplayName()
		}
	}
	for _, n := range notifications {
		item := NotificationItem{Notification: n}
		if n.PoliticianID != nil {
			item.PoliticianName = names[*n.PoliticianID]
		}
		items = append(items, item)
	}
	return items, total, nil
}

// NotificationStats é o agregado por status de um usuário.
type NotificationStats struct {
	Total              int64      `json:"total"`
	Pending            int64      `json:"pending"`
	Sent               int64      `json:"sent"`
	Delivered          int64      `json:"delivered"`
	Failed             int64      `json:"failed"`
	LastNotificationAt *time.Time `json:"last_notification_at"`
}

// Stats conta notificações por status. SENDING é contado como pendente:
// para o usuário, in-flight ainda não foi enviado.
func (s *NotificationService) Stats(userID int64) (*NotificationStats, error) {
	var rows []groupRow
	err := s.db.Table("notifications").
		Select("status as key, count(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &NotificationStats{}
	for _, r := range rows {
		stats.Total += r.Count
		switch r.Key {
		case models.NOTIFICATION_STATUS_PENDING, models.NOTIFICATION_STATUS_SENDING:
			stats.Pending += r.Count
		case models.NOTIFICATION_STATUS_SENT:
			stats.Sent += r.Count
		case models.NOTIFICATION_STATUS_DELIVERED:
			stats.Delivered += r.Count
		case models.NOTIFICATION_STATUS_FAILED:
			stats.Failed += r.Count
		}
	}

	var last models.Notification
	err = s.db.Where("user_id = ?", userID).Order("created_at desc, id desc").First(&last).Error
	if err == nil {
		stats.LastNotificationAt = last.CreatedAt
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	return stats, nil
}
