package whatsappclient

import (
	"net/http"

	whatsappdomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/whatsapp/domain"
	"github.com/vfg2006/backoffice-api/internal/config"
)

type Client interface {
	SendTextMessage(to, body string) (*whatsappdomain.SendMessageResponse, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type WhatsAppClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &WhatsAppClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// RefreshToken obtém um novo token de longa duração
func (c *WhatsAppClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *WhatsAppClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *WhatsAppClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
