package services

import (
	"context"
	"sync"
	"testing"
	"time"

	dbpkg "brazyl/db"
	"brazyl/models"
	"brazyl/tools"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestDB abre um sqlite em memória com o schema migrado e planos seedados.
// MaxOpenConns(1) é necessário: cada conexão do pool teria um :memory: próprio.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)

	dbpkg.AutoMigrate(db)
	require.NoError(t, dbpkg.SeedPlans(db))

	t.Cleanup(func() { db.Close() })
	return db
}

func planByType(t *testing.T, db *gorm.DB, planType string) models.Plan {
	t.Helper()
	var plan models.Plan
	require.NoError(t, db.Where("type = ?", planType).First(&plan).Error)
	return plan
}

func createTestUser(t *testing.T, db *gorm.DB, whatsapp, planType string) models.User {
	t.Helper()
	user := models.User{
		WhatsappNumber:      whatsapp,
		Name:                "Usuário Teste",
		IsActive:            true,
		NotificationEnabled: true,
		NotificationHour:    8,
	}
	if planType != "" {
		plan := planByType(t, db, planType)
		user.PlanID = &plan.ID
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestPolitician(t *testing.T, db *gorm.DB, externalID, position, state string) models.Politician {
	t.Helper()
	politician := models.Politician{
		ExternalID:        externalID,
		Name:              "Político " + externalID,
		ParliamentaryName: "Parlamentar " + externalID,
		Position:          position,
		Party:             "PT",
		State:             state,
		IsActive:          true,
	}
	require.NoError(t, db.Create(&politician).Error)
	return politician
}

type sentMessage struct {
	Phone   string
	Title   string
	Message string
}

// fakeMessenger registra os envios e pode simular rejeição ou indisponibilidade.
type fakeMessenger struct {
	mu      sync.Mutex
	calls   []sentMessage
	reject  string // quando não-vazio, provedor rejeita com esse motivo
	err     error  // quando não-nil, Send devolve esse erro
	delay   time.Duration
}

func (f *fakeMessenger) Send(ctx context.Context, phone, title, message string) (tools.SendResult, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	f.calls = append(f.calls, sentMessage{Phone: phone, Title: title, Message: message})
	f.mu.Unlock()

	if f.err != nil {
		return tools.SendResult{}, f.err
	}
	if f.reject != "" {
		return tools.SendResult{Accepted: false, Reason: f.reject}, nil
	}
	return tools.SendResult{Accepted: true, Reference: "ref-test"}, nil
}

func (f *fakeMessenger) sendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
