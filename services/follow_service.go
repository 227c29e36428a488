package services

import (
	"strings"

	"brazyl/apperrors"
	"brazyl/models"

	"github.com/jinzhu/gorm"
)

// FollowService concentra a regra de negócio de seguir políticos:
// pré-condições, unicidade do par (usuário, político) e quota do plano.
type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// FollowItem é um follow com o político embutido, para listagens.
type FollowItem struct {
	models.Follow
	Politician models.Politician `json:"politician"`
}

// FollowStats agrega a visão de quota e a distribuição dos follows.
// Sempre computado do conjunto vivo de follows, nunca de contador à parte.
type FollowStats struct {
	TotalFollowing int64            `json:"total_following"`
	MaxAllowed     models.Quota     `json:"max_allowed"`
	Remaining      models.Quota     `json:"remaining"`
	ByPosition     map[string]int64 `json:"by_position"`
	ByState        map[string]int64 `json:"by_state"`
}

// Create segue um político. A checagem de quota e o insert formam uma unidade:
// tudo roda numa transação e, no postgres, a linha do usuário é travada com
// FOR UPDATE para serializar criações concorrentes do mesmo usuário
// (o sqlite já serializa escritas sozinho).
func (s *FollowService) Create(userID, politicianID int64) (*models.Follow, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DependencyUnavailable("erro ao abrir transação: %v", tx.Error)
	}

	userQuery := tx
	if strings.Contains(strings.ToLower(tx.Dialect().GetName()), "postgres") {
		userQuery = tx.Set("gorm:query_option", "FOR UPDATE")
	}

	var user models.User
	if err := userQuery.First(&user, userID).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperrors.NotFound("usuário não encontrado")
		}
		return nil, err
	}
	if !user.IsActive {
		tx.Rollback()
		return nil, apperrors.Validation("usuário inativo")
	}

	var politician models.Politician
	if err := tx.First(&politician, politicianID).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperrors.NotFound("político não encontrado")
		}
		return nil, err
	}
	if !politician.IsActive {
		tx.Rollback()
		return nil, apperrors.Validation("político inativo")
	}

	var existing models.Follow
	err := tx.Where("user_id = ? AND politician_id = ?", userID, politicianID).First(&existing).Error
	if err == nil {
		tx.Rollback()
		return nil, apperrors.Conflict("você já segue este político")
	}
	if !gorm.IsRecordNotFoundError(err) {
		tx.Rollback()
		return nil, err
	}

	quota, err := planQuotaForUser(tx, user)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	var current int64
	if err := tx.Model(&models.Follow{}).Where("user_id = ?", userID).Count(&current).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if !quota.Allows(current) {
		tx.Rollback()
		if quota.Limit > 0 {
			return nil, apperrors.QuotaExceeded("limite de %d políticos atingido. Faça upgrade do seu plano para seguir mais", quota.Limit)
		}
		return nil, apperrors.QuotaExceeded("seu plano não permite seguir políticos")
	}

	follow := models.Follow{UserID: userID, PoliticianID: politicianID}
	if err := tx.Create(&follow).Error; err != nil {
		tx.Rollback()
		// corrida perdida contra o índice único vira Conflict
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("você já segue este político")
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	return &follow, nil
}

// Delete remove um follow. Notificações já enfileiradas não são alteradas.
func (s *FollowService) Delete(followID int64) error {
	var follow models.Follow
	if err := s.db.First(&follow, followID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return apperrors.NotFound("follow não encontrado")
		}
		return err
	}
	return s.db.Delete(&models.Follow{}, "id = ?", followID).Error
}

// ListByUser lista os follows de um usuário com o político embutido.
func (s *FollowService) ListByUser(userID int64, limit, offset int) ([]FollowItem, int64, error) {
	var total int64
	if err := s.db.Model(&models.Follow{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var follows []models.Follow
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(limit).
		Offset(offset).
		Find(&follows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]FollowItem, 0, len(follows))
	if len(follows) == 0 {
		return items, total, nil
	}

	ids := make([]int64, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.PoliticianID)
	}
	var politicians []models.Politician
	if err := s.db.Where("id in (?)", ids).Find(&politicians).Error; err != nil {
		return nil, 0, err
	}
	byID := make(map[int64]models.Politician, len(politicians))
	for _, p := range politicians {
		byID[p.ID] = p
	}
	for _, f := range follows {
		items = append(items, FollowItem{Follow: f, Politician: byID[f.PoliticianID]})
	}
	return items, total, nil
}

// Stats computa total, quota e distribuição por cargo/UF do conjunto atual.
func (s *FollowService) Stats(userID int64) (*FollowStats, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperrors.NotFound("usuário não encontrado")
		}
		return nil, err
	}

	quota, err := planQuotaForUser(s.db, user)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(&models.Follow{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, err
	}

	byPosition, err := s.groupFollows(userID, "politicians.position")
	if err != nil {
		return nil, err
	}
	byState, err := s.groupFollows(userID, "politicians.state")
	if err != nil {
		return nil, err
	}

	remaining := models.Quota{Unlimited: true}
	if !quota.Unlimited {
		remaining = models.Quota{Limit: quota.Remaining(total)}
	}

	return &FollowStats{
		TotalFollowing: total,
		MaxAllowed:     quota,
		Remaining:      remaining,
		ByPosition:     byPosition,
		ByState:        byState,
	}, nil
}

type groupRow struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

func (s *FollowService) groupFollows(userID int64, column string) (map[string]int64, error) {
	var rows []groupRow
	err := s.db.Table("follows").
		Select(column+" as key, count(*) as count").
		Joins("join politicians on politicians.id = follows.politician_id").
		Where("follows.user_id = ?", userID).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Count
	}
	return out, nil
}

// planQuotaForUser resolve a quota do usuário. Sem plano (ou plano apagado),
// a quota é zero: nenhum follow novo.
func planQuotaForUser(db *gorm.DB, user models.User) (models.Quota, error) {
	if user.PlanID == nil {
		return models.Quota{}, nil
	}
	var plan models.Plan
	if err := db.First(&plan, *user.PlanID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Quota{}, nil
		}
		return models.Quota{}, err
	}
	return plan.Quota(), nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
