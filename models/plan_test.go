package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanQuotaInterpretation(t *testing.T) {
	assert.Equal(t, Quota{Limit: 3}, Plan{MaxPoliticians: 3}.Quota())
	assert.Equal(t, Quota{Unlimited: true}, Plan{MaxPoliticians: 0}.Quota())
	assert.Equal(t, Quota{Unlimited: true}, Plan{MaxPoliticians: -1}.Quota())
}

func TestQuotaAllows(t *testing.T) {
	q := Quota{Limit: 3}
	assert.True(t, q.Allows(0))
	assert.True(t, q.Allows(2))
	assert.False(t, q.Allows(3))
	assert.False(t, q.Allows(10))

	unlimited := Quota{Unlimited: true}
	assert.True(t, unlimited.Allows(0))
	assert.True(t, unlimited.Allows(1000000))
}

func TestQuotaRemaining(t *testing.T) {
	q := Quota{Limit: 3}
	assert.Equal(t, int64(3), q.Remaining(0))
	assert.Equal(t, int64(1), q.Remaining(2))
	// quem já passou do limite (ex: downgrade de plano) vê 0, nunca negativo
	assert.Equal(t, int64(0), q.Remaining(5))
}

func TestQuotaMarshalJSON(t *testing.T) {
	b, err := json.Marshal(Quota{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "10", string(b))

	b, err = json.Marshal(Quota{Unlimited: true})
	require.NoError(t, err)
	assert.Equal(t, `"unlimited"`, string(b))
}
