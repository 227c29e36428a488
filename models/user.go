package models

import (
	"time"
)

// User representa um usuário do Brazyl, criado na primeira interação
// pelo WhatsApp. Não existe remoção: desativação é via is_active.
type User struct {
	ID             int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	WhatsappNumber string `gorm:"column:whatsapp_number;not null;unique" json:"whatsapp_number" form:"whatsapp_number"`
	Name           string `gorm:"not null" json:"name" form:"name"`
	Email          string `gorm:"default:''" json:"email" form:"email"`
	CPF            string `gorm:"default:''" json:"cpf" form:"cpf"`

	// PlanID é nullable: se o plano referenciado sumir, o usuário fica sem
	// quota (nenhum follow novo é permitido).
	PlanID *int64 `gorm:"index" json:"plan_id" form:"plan_id"`

	IsActive bool `gorm:"not null;default:true" json:"is_active" form:"is_active"`

	// Preferências de notificação.
	NotificationEnabled bool `gorm:"not null;default:true" json:"notification_enabled" form:"notification_enabled"`
	NotificationHour    int  `gorm:"not null;default:8" json:"notification_hour" form:"notification_hour"`

	LastInteractionAt *time.Time `json:"last_interaction_at"`
	CreatedAt         *time.Time `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

func (user User) MissingFields() string {
	if user.WhatsappNumber == "" {
		return "whatsapp_number"
	} else if user.Name == "" {
		return "name"
	}
	return ""
}
