package db

import (
	"log"

	"brazyl/models"

	"github.com/jinzhu/gorm"
)

// SeedPlans garante os três planos de referência. Idempotente: só insere
// o que não existe; valores de planos já criados não são sobrescritos.
func SeedPlans(db *gorm.DB) error {
	plans := []models.Plan{
		{
			Name:                  "Gratuito",
			Type:                  models.PLAN_TYPE_FREE,
			MaxPoliticians:        3,
			NotificationFrequency: models.PLAN_FREQUENCY_WEEKLY,
			PriceCents:            0,
			IsActive:              true,
		},
		{
			Name:                  "Básico",
			Type:                  models.PLAN_TYPE_BASIC,
			MaxPoliticians:        10,
			NotificationFrequency: models.PLAN_FREQUENCY_DAILY,
			PriceCents:            990,
			IsActive:              true,
		},
		{
			Name:                  "Premium",
			Type:                  models.PLAN_TYPE_PREMIUM,
			MaxPoliticians:        0, // sem limite
			NotificationFrequency: models.PLAN_FREQUENCY_REALTIME,
			PriceCents:            2990,
			IsActive:              true,
		},
	}

	for _, plan := range plans {
		var existing models.Plan
		err := db.Where("type = ?", plan.Type).First(&existing).Error
		if err == nil {
			continue
		}
		if !gorm.IsRecordNotFoundError(err) {
			return err
		}
		p := plan
		if err := db.Create(&p).Error; err != nil {
			return err
		}
		log.Printf("seed: plano %s criado (max_politicians=%d)", p.Type, p.MaxPoliticians)
	}
	return nil
}
