package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"brazyl/apperrors"

	"github.com/google/uuid"
)

// Messenger é o colaborador de entrega de mensagens. O resultado distingue
// rejeição reportada pelo provedor (Accepted=false) de indisponibilidade
// (erro), mas para o sweep ambos levam a notificação para FAILED.
type Messenger interface {
	Send(ctx context.Context, phone, title, message string) (SendResult, error)
}

type SendResult struct {
	Accepted  bool
	Reason    string // motivo da rejeição, quando Accepted=false
	Reference string // id de referência gerado no cliente
}

// AvisaClient envia mensagens WhatsApp pela API do Avisa.
type AvisaClient struct {
	BaseURL string
	Token   string
	Timeout time.Duration

	// HTTPClient permite trocar o transporte em teste; nil usa um cliente
	// com o timeout configurado.
	HTTPClient *http.Client
}

func NewAvisaClient(baseURL, token string, timeout time.Duration) *AvisaClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AvisaClient{BaseURL: baseURL, Token: token, Timeout: timeout}
}

// Send envia uma mensagem de texto. O título vai embutido no corpo formatado
// (a API do Avisa recebe um texto único).
func (a *AvisaClient) Send(ctx context.Context, phone, title, message string) (SendResult, error) {
	if a.BaseURL == "" || a.Token == "" {
		return SendResult{}, apperrors.DependencyUnavailable("avisa não configurado")
	}

	reference := uuid.NewString()
	payload := map[string]any{
		"phone":     phone,
		"message":   FormatWhatsAppMessage(title, message),
		"reference": reference,
	}
	b, _ := json.Marshal(payload)

	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/send", bytes.NewReader(b))
	if err != nil {
		return SendResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+a.Token)
	req.Header.Set("Content-Type", "application/json")

	client := a.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: a.Timeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		// timeout e erro de rede contam como dependência indisponível
		return SendResult{}, apperrors.DependencyUnavailable("avisa inacessível: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		body, _ := io.ReadAll(resp.Body)
		return SendResult{}, apperrors.DependencyUnavailable("avisa error: status=%d body=%s", resp.StatusCode, string(body))
	}
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return SendResult{
			Accepted:  false,
			Reason:    fmt.Sprintf("avisa rejeitou o envio: status=%d body=%s", resp.StatusCode, string(body)),
			Reference: reference,
		}, nil
	}

	return SendResult{Accepted: true, Reference: reference}, nil
}

// FormatWhatsAppMessage monta o corpo padrão das notificações do Brazyl.
func FormatWhatsAppMessage(title, message string) string {
	var b bytes.Buffer
	b.WriteString("*🇧🇷 Brazyl - Acompanhe Políticos*\n\n")
	b.WriteString("*" + title + "*\n\n")
	b.WriteString(message + "\n\n")
	b.WriteString("_Enviado em " + FormatDatetimeBR(time.Now()) + "_")
	return b.String()
}
