package models

import "time"

/************************************************
/**** MARK: EVENT TYPES ****/
/************************************************/
const EVENT_TYPE_VOTACAO = "VOTACAO"
const EVENT_TYPE_DESPESA = "DESPESA"
const EVENT_TYPE_PROJETO_LEI = "PROJETO_LEI"
const EVENT_TYPE_PROPOSTA = "PROPOSTA"
const EVENT_TYPE_DISCURSO = "DISCURSO"

/************************************************
/**** MARK: VOTE RESULTS ****/
/************************************************/
const VOTE_RESULT_SIM = "SIM"
const VOTE_RESULT_NAO = "NAO"
const VOTE_RESULT_ABSTENCAO = "ABSTENCAO"
const VOTE_RESULT_OBSTRUCAO = "OBSTRUCAO"

// PoliticalEvent é uma ação registrada de um político (voto, despesa,
// projeto, discurso). Append-only: o ingestor externo só insere.
// A exclusão do político pai remove os eventos em cascata.
type PoliticalEvent struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	PoliticianID int64      `gorm:"not null;index" json:"politician_id"`
	EventType    string     `gorm:"not null;index" json:"event_type"` // VOTACAO|DESPESA|PROJETO_LEI|PROPOSTA|DISCURSO
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	EventDate    time.Time  `gorm:"not null;index" json:"event_date"`
	AmountCents  *int64     `gorm:"column:amount_cents" json:"amount_cents"` // apenas DESPESA
	VoteResult   string     `gorm:"default:''" json:"vote_result"`           // apenas VOTACAO: SIM|NAO|ABSTENCAO|OBSTRUCAO
	SourceURL    string     `gorm:"column:source_url" json:"source_url"`
	CreatedAt    *time.Time `json:"created_at"`
}

func IsValidEventType(eventType string) bool {
	switch eventType {
	case EVENT_TYPE_VOTACAO, EVENT_TYPE_DESPESA, EVENT_TYPE_PROJETO_LEI, EVENT_TYPE_PROPOSTA, EVENT_TYPE_DISCURSO:
		return true
	}
	return false
}
