package models

import (
	"encoding/json"
	"time"
)

/************************************************
/**** MARK: PLAN TYPES ****/
/************************************************/
const PLAN_TYPE_FREE = "FREE"
const PLAN_TYPE_BASIC = "BASIC"
const PLAN_TYPE_PREMIUM = "PREMIUM"

/************************************************
/**** MARK: NOTIFICATION FREQUENCIES ****/
/************************************************/
const PLAN_FREQUENCY_WEEKLY = "weekly"
const PLAN_FREQUENCY_DAILY = "daily"
const PLAN_FREQUENCY_REALTIME = "realtime"

// Plan representa um plano comercial que controla quantos políticos
// o usuário pode seguir e a cadência das notificações.
// É dado de referência: carregado no seed e raramente alterado.
type Plan struct {
	ID   int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name string `gorm:"not null" json:"name" form:"name"`
	Type string `gorm:"not null;unique" json:"type" form:"type"` // FREE|BASIC|PREMIUM

	// MaxPoliticians define quantos políticos o usuário pode seguir neste plano.
	// 0 (ou negativo) significa "sem limite" (PREMIUM).
	MaxPoliticians int64 `gorm:"not null;default:0" json:"max_politicians" form:"max_politicians"`

	NotificationFrequency string     `gorm:"not null;default:'weekly'" json:"notification_frequency" form:"notification_frequency"` // weekly|daily|realtime
	PriceCents            int64      `gorm:"not null;default:0" json:"price_cents" form:"price_cents"`
	Currency              string     `gorm:"not null;default:'BRL'" json:"currency" form:"currency"`
	IsActive              bool       `gorm:"not null;default:true" json:"is_active" form:"is_active"`
	CreatedAt             *time.Time `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at"`
}

// Quota é o limite de follows do plano como valor explícito, para que
// "ilimitado" nunca entre em aritmética de restante.
type Quota struct {
	Unlimited bool
	Limit     int64
}

// Quota devolve o limite do plano já interpretado.
func (p Plan) Quota() Quota {
	if p.MaxPoliticians <= 0 {
		return Quota{Unlimited: true}
	}
	return Quota{Limit: p.MaxPoliticians}
}

// Allows informa se o plano permite criar mais um follow dado o total atual.
func (q Quota) Allows(current int64) bool {
	if q.Unlimited {
		return true
	}
	return current < q.Limit
}

// Remaining calcula quantos follows ainda cabem (piso em 0).
// Para quota ilimitada o valor não tem significado; cheque Unlimited antes.
func (q Quota) Remaining(current int64) int64 {
	if q.Unlimited {
		return 0
	}
	r := q.Limit - current
	if r < 0 {
		return 0
	}
	return r
}

// MarshalJSON serializa a quota como número ou como a string "unlimited".
func (q Quota) MarshalJSON() ([]byte, error) {
	if q.Unlimited {
		return json.Marshal("unlimited")
	}
	return json.Marshal(q.Limit)
}
