package models

import "time"

/************************************************
/**** MARK: NOTIFICATION STATUS ****/
/************************************************/
const NOTIFICATION_STATUS_PENDING = "PENDING"
const NOTIFICATION_STATUS_SENDING = "SENDING" // marcador in-flight do sweep (claim)
const NOTIFICATION_STATUS_SENT = "SENT"
const NOTIFICATION_STATUS_DELIVERED = "DELIVERED"
const NOTIFICATION_STATUS_FAILED = "FAILED"

// Notification é uma mensagem a entregar via WhatsApp para um usuário,
// normalmente gerada a partir de um evento político de alguém que ele segue.
//
// Máquina de estados:
//
//	PENDING -> SENDING -> SENT -> DELIVERED
//	PENDING -> SENDING -> FAILED
//
// DELIVERED e FAILED são terminais. SENDING é o claim do sweep: se o processo
// morrer no meio, a linha volta a ser elegível depois de claim_timeout.
type Notification struct {
	ID           int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID       int64  `gorm:"not null;index" json:"user_id"`
	PoliticianID *int64 `gorm:"index" json:"politician_id"`
	EventID      *int64 `gorm:"index" json:"event_id"`
	Title        string `gorm:"not null" json:"title"`
	Message      string `gorm:"type:text;not null" json:"message"`
	Status       string `gorm:"not null;default:'PENDING';index" json:"status"`

	ScheduledFor *time.Time `gorm:"index" json:"scheduled_for"`
	ClaimedAt    *time.Time `gorm:"index" json:"claimed_at"`
	SentAt       *time.Time `json:"sent_at"`
	DeliveredAt  *time.Time `json:"delivered_at"`
	ErrorMessage string     `gorm:"type:text" json:"error_message"` // populado apenas em FAILED

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// IsTerminal informa se o status não admite mais transições.
func IsTerminalNotificationStatus(status string) bool {
	return status == NOTIFICATION_STATUS_DELIVERED || status == NOTIFICATION_STATUS_FAILED
}

// CanTransitionNotification valida uma transição da máquina de estados.
func CanTransitionNotification(from, to string) bool {
	switch from {
	case NOTIFICATION_STATUS_PENDING:
		return to == NOTIFICATION_STATUS_SENDING
	case NOTIFICATION_STATUS_SENDING:
		return to == NOTIFICATION_STATUS_SENT || to == NOTIFICATION_STATUS_FAILED
	case NOTIFICATION_STATUS_SENT:
		return to == NOTIFICATION_STATUS_DELIVERED || to == NOTIFICATION_STATUS_FAILED
	}
	return false
}
