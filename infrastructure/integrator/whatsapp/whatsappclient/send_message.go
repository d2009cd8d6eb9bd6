package whatsappclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	whatsappdomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/whatsapp/domain"
	"github.com/vfg2006/backoffice-api/pkg/utils"
)

// SendTextMessage envia uma mensagem de texto para um número via Cloud
// API. O número deve estar no formato internacional, sem o sinal de +.
func (c *WhatsAppClient) SendTextMessage(to, body string) (*whatsappdomain.SendMessageResponse, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.Cfg.WhatsApp.URL, c.Cfg.WhatsApp.PhoneNumberID)

	message := whatsappdomain.NewTextMessage(to, body)

	payload, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar mensagem: %w", err)
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("Payload da mensagem: %s", utils.PrettyJson(payload))
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.WhatsApp.AccessToken)

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.SendTextMessage(to, body)
		}
		return nil, err
	}

	var response whatsappdomain.SendMessageResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
