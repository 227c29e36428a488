package controllers

import (
	"fmt"
	"strings"
	"time"

	"brazyl/apperrors"
	dbpkg "brazyl/db"
	"brazyl/models"

	"github.com/gin-gonic/gin"
)

type politicianPage struct {
	Data  []models.Politician `json:"data"`
	Total int64               `json:"total"`
}

// GET /api/politicians
// Filtros: state, party, position, name (busca parcial), is_active (padrão true).
// O resultado é dado de referência e muda devagar, então a página inteira vai
// pro cache Redis com TTL.
func ListPoliticians(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, apperrors.Internal("db não configurado no contexto"))
		return
	}

	limit, offset, ok := PaginationParams(c)
	if !ok {
		return
	}

	state := strings.ToUpper(strings.TrimSpace(c.Query("state")))
	party := strings.ToUpper(strings.TrimSpace(c.Query("party")))
	position := strings.ToUpper(strings.TrimSpace(c.Query("position")))
	name := strings.TrimSpace(c.Query("name"))
	isActive := c.DefaultQuery("is_active", "true") == "true"

	if position != "" && !models.IsValidPosition(position) {
		RespondError(c, apperrors.Validation("position inválido"))
		return
	}

	cacheKey := fmt.Sprintf("politicians:%s:%s:%s:%s:%t:%d:%d",
		state, party, position, strings.ToLower(name), isActive, limit, offset)

	var page politicianPage
	if readCache.GetJSON(c.Request.Context(), cacheKey, &page) {
		RespondList(c, page.Data, limit, offset, page.Total)
		return
	}

	q := db.Model(&models.Politician{}).Where("is_active = ?", isActive)
	if state != "" {
		q = q.Where("state = ?", state)
	}
	if party != "" {
		q = q.Where("party = ?", party)
	}
	if position != "" {
		q = q.Where("position = ?", position)
	}
	if name != "" {
		pattern := "%" + strings.ToLower(name) + "%"
		q = q.Where("lower(name) like ? or lower(parliamentary_name) like ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		RespondError(c, err)
		return
	}

	var politicians []models.Politician
	if err := q.Order("name asc, id asc").Limit(limit).Offset(offset).Find(&politicians).Error; err != nil {
		RespondError(c, err)
		return
	}
	if politicians == nil {
		politicians = []models.Politician{}
	}

	page = politicianPage{Data: politicians, Total: total}
	readCache.SetJSON(c.Request.Context(), cacheKey, page)

	RespondList(c, page.Data, limit, offset, page.Total)
}

// GET /api/politicians/:id
// Inclui contagem de seguidores e de eventos recentes (30 dias), sempre
// computadas na hora.
func GetPolitician(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, apperrors.Internal("db não configurado no contexto"))
		return
	}

	var politician models.Politician
	if err := db.First(&politician, id).Error; err != nil {
		RespondError(c, apperrors.NotFound("político não encontrado"))
		return
	}

	var followersCount int64
	if err := db.Model(&models.Follow{}).Where("politician_id = ?", id).Count(&followersCount).Error; err != nil {
		RespondError(c, err)
		return
	}

	var recentEvents int64
	cutoff := time.Now().AddDate(0, 0, -30)
	if err := db.Model(&models.PoliticalEvent{}).
		Where("politician_id = ? AND event_date >= ?", id, cutoff).
		Count(&recentEvents).Error; err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"politician":          politician,
		"followers_count":     followersCount,
		"recent_events_count": recentEvents,
	})
}

// GET /api/politicians/:id/history
// Histórico de ações (votações, despesas, projetos...), mais recente primeiro.
func GetPoliticianHistory(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, apperrors.Internal("db não configurado no contexto"))
		return
	}

	limit, offset, ok := PaginationParams(c)
	if !ok {
		return
	}

	if err := db.First(&models.Politician{}, id).Error; err != nil {
		RespondError(c, apperrors.NotFound("político não encontrado"))
		return
	}

	q := db.Model(&models.PoliticalEvent{}).Where("politician_id = ?", id)
	if eventType := strings.ToUpper(strings.TrimSpace(c.Query("event_type"))); eventType != "" {
		if !models.IsValidEventType(eventType) {
			RespondError(c, apperrors.Validation("event_type inválido"))
			return
		}
		q = q.Where("event_type = ?", eventType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		RespondError(c, err)
		return
	}

	var events []models.PoliticalEvent
	if err := q.Order("event_date desc, id desc").Limit(limit).Offset(offset).Find(&events).Error; err != nil {
		RespondError(c, err)
		return
	}
	if events == nil {
		events = []models.PoliticalEvent{}
	}

	RespondList(c, events, limit, offset, total)
}
