package services

import (
	"fmt"
	"testing"

	"brazyl/apperrors"
	"brazyl/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowCreateRespectsFreeQuota(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)

	user := createTestUser(t, db, "+5511999990001", models.PLAN_TYPE_FREE)
	politicians := make([]models.Politician, 0, 4)
	for i := 0; i < 4; i++ {
		politicians = append(politicians, createTestPolitician(t, db, fmt.Sprintf("dep-%d", i), models.POSITION_DEPUTADO_FEDERAL, "SP"))
	}

	// FREE permite 3 follows
	for i := 0; i < 3; i++ {
		_, err := svc.Create(user.ID, politicians[i].ID)
		require.NoError(t, err)
	}

	// o quarto estoura a quota e não cria linha
	_, err := svc.Create(user.ID, politicians[3].ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KIND_QUOTA_EXCEEDED, apperrors.Kind(err))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	// depois de desfazer um, volta a caber
	var follow models.Follow
	require.NoError(t, db.Where("user_id = ? AND politician_id = ?", user.ID, politicians[0].ID).First(&follow).Error)
	require.NoError(t, svc.Delete(follow.ID))

	_, err = svc.Create(user.ID, politicians[3].ID)
	assert.NoError(t, err)
}

func TestFollowCreatePremiumIsUnlimited(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)

	user := createTestUser(t, db, "+5511999990002", models.PLAN_TYPE_PREMIUM)
	for i := 0; i < 15; i++ {
		p := createTestPolitician(t, db, fmt.Sprintf("sen-%d", i), models.POSITION_SENADOR, "RJ")
		_, err := svc.Create(user.ID, p.ID)
		require.NoError(t, err)
	}
}

func TestFollowCreateDuplicateIsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)

	user := createTestUser(t, db, "+5511999990003", models.PLAN_TYPE_BASIC)
	politician := createTestPolitician(t, db, "dep-dup", models.POSITION_DEPUTADO_FEDERAL, "MG")

	_, err := svc.Create(user.ID, politician.ID)
	require.NoError(t, err)

	_, err = svc.Create(user.ID, politician.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KIND_CONFLICT, apperrors.Kind(err))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFollowCreatePreconditions(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)

	user := createTestUser(t, db, "+5511999990004", models.PLAN_TYPE_FREE)
	politician := createTestPolitician(t, db, "dep-pre", models.POSITION_VEREADOR, "BA")

	_, err := svc.Create(9999, politician.ID)
	assert.Equal(t, apperrors.KIND_NOT_FOUND, apperrors.Kind(err))

	_, err = svc.Create(user.ID, 9999)
	assert.Equal(t, apperrors.KIND_NOT_FOUND, apperrors.Kind(err))

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)
	_, err = svc.Create(user.ID, politician.ID)
	assert.Equal(t, apperrors.KIND_VALIDATION, apperrors.Kind(err))

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", true).Error)
	require.NoError(t, db.Model(&models.Politician{}).Where("id = ?", politician.ID).Update("is_active", false).Error)
	_, err = svc.Create(user.ID, politician.ID)
	assert.Equal(t, apperrors.KIND_VALIDATION, apperrors.Kind(err))
}

func TestFollowCreateWithoutPlanIsDenied(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)

	user := createTestUser(t, db, "+5511999990005", "")
	politician := createTestPolitician(t, db, "dep-noplan", models.POSITION_DEPUTADO_ESTADUAL, "RS")

	_, err := svc.Create(user.ID, politician.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KIND_QUOTA_EXCEEDED, apperrors.Kind(err))
}

func TestFollowDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)

	err := svc.Delete(12345)
	assert.Equal(t, apperrors.KIND_NOT_FOUND, apperrors.Kind(err))
}

func TestFollowListByUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)

	user := createTestUser(t, db, "+5511999990006", models.PLAN_TYPE_BASIC)
	for i := 0; i < 5; i++ {
		p := createTestPolitician(t, db, fmt.Sprintf("dep-list-%d", i), models.POSITION_DEPUTADO_FEDERAL, "SP")
		_, err := svc.Create(user.ID, p.ID)
		require.NoError(t, err)
	}

	items, total, err := svc.ListByUser(user.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 2)
	assert.NotZero(t, items[0].Politician.ID)

	items, total, err = svc.ListByUser(user.ID, 20, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, items, 1)
}

func TestFollowStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)

	user := createTestUser(t, db, "+5511999990007", models.PLAN_TYPE_BASIC)

	deputados := []models.Politician{
		createTestPolitician(t, db, "st-1", models.POSITION_DEPUTADO_FEDERAL, "SP"),
		createTestPolitician(t, db, "st-2", models.POSITION_DEPUTADO_FEDERAL, "SP"),
	}
	senador := createTestPolitician(t, db, "st-3", models.POSITION_SENADOR, "RJ")

	for _, p := range deputados {
		_, err := svc.Create(user.ID, p.ID)
		require.NoError(t, err)
	}
	_, err := svc.Create(user.ID, senador.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalFollowing)
	assert.Equal(t, models.Quota{Limit: 10}, stats.MaxAllowed)
	assert.Equal(t, models.Quota{Limit: 7}, stats.Remaining)
	assert.Equal(t, int64(2), stats.ByPosition[models.POSITION_DEPUTADO_FEDERAL])
	assert.Equal(t, int64(1), stats.ByPosition[models.POSITION_SENADOR])
	assert.Equal(t, int64(2), stats.ByState["SP"])
	assert.Equal(t, int64(1), stats.ByState["RJ"])
}

func TestFollowStatsUnlimitedPlan(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)

	user := createTestUser(t, db, "+5511999990008", models.PLAN_TYPE_PREMIUM)
	p := createTestPolitician(t, db, "st-prem", models.POSITION_SENADOR, "DF")
	_, err := svc.Create(user.ID, p.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)

	assert.True(t, stats.MaxAllowed.Unlimited)
	assert.True(t, stats.Remaining.Unlimited)
	assert.Equal(t, int64(1), stats.TotalFollowing)
}

func TestFollowStatsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)

	_, err := svc.Stats(9999)
	assert.Equal(t, apperrors.KIND_NOT_FOUND, apperrors.Kind(err))
}
