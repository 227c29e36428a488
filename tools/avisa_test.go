package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brazyl/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvisaSendOK(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		assert.Equal(t, "/send", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewAvisaClient(server.URL, "token-teste", 5*time.Second)
	result, err := client.Send(context.Background(), "+5511987654321", "Nova votação", "detalhes")
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.NotEmpty(t, result.Reference)
	assert.Equal(t, "Bearer token-teste", gotAuth)
	assert.Equal(t, "+5511987654321", gotPayload["phone"])
	assert.Contains(t, gotPayload["message"], "Brazyl")
	assert.Contains(t, gotPayload["message"], "*Nova votação*")
	assert.Contains(t, gotPayload["message"], "detalhes")
}

func TestAvisaSendRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"invalid phone"}`))
	}))
	defer server.Close()

	client := NewAvisaClient(server.URL, "token-teste", 5*time.Second)
	result, err := client.Send(context.Background(), "+5511987654321", "t", "m")
	require.NoError(t, err)

	assert.False(t, result.Accepted)
	assert.Contains(t, result.Reason, "422")
}

func TestAvisaSendServerErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewAvisaClient(server.URL, "token-teste", 5*time.Second)
	_, err := client.Send(context.Background(), "+5511987654321", "t", "m")
	require.Error(t, err)
	assert.Equal(t, apperrors.KIND_DEPENDENCY_UNAVAILABLE, apperrors.Kind(err))
}

func TestAvisaSendUnconfigured(t *testing.T) {
	client := &AvisaClient{}
	_, err := client.Send(context.Background(), "+5511987654321", "t", "m")
	require.Error(t, err)
	assert.Equal(t, apperrors.KIND_DEPENDENCY_UNAVAILABLE, apperrors.Kind(err))
}

func TestFormatWhatsAppMessage(t *testing.T) {
	msg := FormatWhatsAppMessage("Nova despesa", "R$ 1.200,00 em passagens")
	assert.Contains(t, msg, "*🇧🇷 Brazyl - Acompanhe Políticos*")
	assert.Contains(t, msg, "*Nova despesa*")
	assert.Contains(t, msg, "R$ 1.200,00 em passagens")
	assert.Contains(t, msg, "_Enviado em ")
}
