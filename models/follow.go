package models

import "time"

// Follow representa o vínculo "usuário segue político".
// Regra: o par (user_id, politician_id) é único.
type Follow struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID       int64      `gorm:"not null;unique_index:idx_follows_user_politician" json:"user_id"`
	PoliticianID int64      `gorm:"not null;unique_index:idx_follows_user_politician;index" json:"politician_id"`
	CreatedAt    *time.Time `json:"created_at"`
}
