package services

import (
	"testing"
	"time"

	"brazyl/apperrors"
	"brazyl/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRegistryLoadAndLookup(t *testing.T) {
	db := newTestDB(t)
	registry := NewPlanRegistry(db, time.Minute)
	require.NoError(t, registry.Load())

	free, err := registry.GetByType(models.PLAN_TYPE_FREE)
	require.NoError(t, err)
	assert.Equal(t, int64(3), free.MaxPoliticians)
	assert.False(t, free.Quota().Unlimited)

	basic, err := registry.GetByType(models.PLAN_TYPE_BASIC)
	require.NoError(t, err)
	assert.Equal(t, int64(10), basic.MaxPoliticians)

	premium, err := registry.GetByType(models.PLAN_TYPE_PREMIUM)
	require.NoError(t, err)
	assert.True(t, premium.Quota().Unlimited)

	_, err = registry.GetByType("ENTERPRISE")
	assert.Equal(t, apperrors.KIND_NOT_FOUND, apperrors.Kind(err))
}

func TestPlanRegistryAllKeepsOrder(t *testing.T) {
	db := newTestDB(t)
	registry := NewPlanRegistry(db, time.Minute)
	require.NoError(t, registry.Load())

	plans := registry.All()
	require.Len(t, plans, 3)
	assert.Equal(t, models.PLAN_TYPE_FREE, plans[0].Type)
	assert.Equal(t, models.PLAN_TYPE_BASIC, plans[1].Type)
	assert.Equal(t, models.PLAN_TYPE_PREMIUM, plans[2].Type)
}

func TestPlanRegistrySkipsInactivePlans(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Model(&models.Plan{}).
		Where("type = ?", models.PLAN_TYPE_BASIC).
		Update("is_active", false).Error)

	registry := NewPlanRegistry(db, time.Minute)
	require.NoError(t, registry.Load())

	_, err := registry.GetByType(models.PLAN_TYPE_BASIC)
	assert.Equal(t, apperrors.KIND_NOT_FOUND, apperrors.Kind(err))
	assert.Len(t, registry.All(), 2)
}
