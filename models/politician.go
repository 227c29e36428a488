package models

import "time"

/************************************************
/**** MARK: POLITICAL POSITIONS ****/
/************************************************/
const POSITION_DEPUTADO_FEDERAL = "DEPUTADO_FEDERAL"
const POSITION_SENADOR = "SENADOR"
const POSITION_DEPUTADO_ESTADUAL = "DEPUTADO_ESTADUAL"
const POSITION_VEREADOR = "VEREADOR"

// Politician representa um político acompanhável. As linhas são criadas e
// atualizadas por um processo externo de população (APIs da Câmara/Senado);
// a API só lê.
type Politician struct {
	ID                int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ExternalID        string     `gorm:"column:external_id;not null;unique" json:"external_id"` // ID na fonte pública (Câmara/Senado)
	Name              string     `gorm:"not null" json:"name"`
	ParliamentaryName string     `gorm:"column:parliamentary_name" json:"parliamentary_name"`
	Position          string     `gorm:"not null;index" json:"position"` // DEPUTADO_FEDERAL|SENADOR|DEPUTADO_ESTADUAL|VEREADOR
	Party             string     `gorm:"not null;index" json:"party"`
	State             string     `gorm:"not null;index" json:"state"` // UF, ex: SP
	Email             string     `gorm:"default:''" json:"email"`
	PhotoURL          string     `gorm:"column:photo_url" json:"photo_url"`
	Biography         string     `gorm:"type:text" json:"biography"`
	IsActive          bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt         *time.Time `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

// DisplayName devolve o nome parlamentar quando existir, senão o nome civil.
func (p Politician) DisplayName() string {
	if p.ParliamentaryName != "" {
		return p.ParliamentaryName
	}
	return p.Name
}

func IsValidPosition(position string) bool {
	switch position {
	case POSITION_DEPUTADO_FEDERAL, POSITION_SENADOR, POSITION_DEPUTADO_ESTADUAL, POSITION_VEREADOR:
		return true
	}
	return false
}
