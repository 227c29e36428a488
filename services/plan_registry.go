package services

import (
	"log"
	"sync"
	"time"

	"brazyl/apperrors"
	"brazyl/models"

	"github.com/jinzhu/gorm"
)

// PlanRegistry mantém os planos em memória como snapshot imutável, carregado
// no startup e recarregado num intervalo configurado. Leituras nunca tocam o
// banco; a recarga troca o mapa inteiro de uma vez.
type PlanRegistry struct {
	db       *gorm.DB
	interval time.Duration

	mu     sync.RWMutex
	byType map[string]models.Plan

	stop chan struct{}
	once sync.Once
}

func NewPlanRegistry(db *gorm.DB, refreshInterval time.Duration) *PlanRegistry {
	if refreshInterval <= 0 {
		refreshInterval = 15 * time.Minute
	}
	return &PlanRegistry{
		db:       db,
		interval: refreshInterval,
		byType:   make(map[string]models.Plan),
		stop:     make(chan struct{}),
	}
}

// Load recarrega o snapshot a partir do banco.
func (r *PlanRegistry) Load() error {
	var plans []models.Plan
	if err := r.db.Where("is_active = ?", true).Order("id asc").Find(&plans).Error; err != nil {
		return err
	}
	next := make(map[string]models.Plan, len(plans))
	for _, p := range plans {
		next[p.Type] = p
	}
	r.mu.Lock()
	r.byType = next
	r.mu.Unlock()
	return nil
}

// StartRefresh inicia a recarga periódica em background.
func (r *PlanRegistry) StartRefresh() {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := r.Load(); err != nil {
					log.Printf("plans: erro ao recarregar registry: %v", err)
				}
			case <-r.stop:
				return
			}
		}
	}()
}

func (r *PlanRegistry) Stop() {
	r.once.Do(func() { close(r.stop) })
}

// GetByType devolve o plano pelo tipo (FREE, BASIC, PREMIUM).
func (r *PlanRegistry) GetByType(planType string) (models.Plan, error) {
	r.mu.RLock()
	plan, ok := r.byType[planType]
	r.mu.RUnlock()
	if !ok {
		return models.Plan{}, apperrors.NotFound("plano %s não encontrado", planType)
	}
	return plan, nil
}

// All devolve o snapshot atual na ordem dos ids.
func (r *PlanRegistry) All() []models.Plan {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Plan, 0, len(r.byType))
	for _, t := range []string{models.PLAN_TYPE_FREE, models.PLAN_TYPE_BASIC, models.PLAN_TYPE_PREMIUM} {
		if p, ok := r.byType[t]; ok {
			out = append(out, p)
		}
	}
	return out
}
