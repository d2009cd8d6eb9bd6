package whatsappclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	whatsappdomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/whatsapp/domain"
	"github.com/vfg2006/backoffice-api/internal/config"
)

// TokenManager gerencia os tokens de acesso da Cloud API do WhatsApp
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex
	stopRefresh       chan struct{}
	RenderClient      *config.RenderClient
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config, renderClient *config.RenderClient) *TokenManager {
	return &TokenManager{
		cfg:               cfg,
		TokenRefreshMutex: sync.Mutex{},
		stopRefresh:       make(chan struct{}),
		RenderClient:      renderClient,
	}
}

func (tm *TokenManager) InitToken() {
	if tm.cfg.WhatsApp.LongLivedToken == "" {
		logrus.Info("Token de longa duração não encontrado. Iniciando processo de obtenção...")
		if err := tm.InitiateToken(); err != nil {
			logrus.Errorf("Falha ao inicializar token de longa duração: %v", err)
			logrus.Warn("O envio de mensagens pode ficar limitado até que o token seja configurado corretamente")
			return
		}

		logrus.Info("Token de longa duração inicializado com sucesso")
	} else if tm.cfg.WhatsApp.TokenExpiresAt.IsZero() {
		// Já existe um token de longa duração, mas não sabemos quando expira
		logrus.Info("Validando token de longa duração existente...")
		if err := tm.ValidateExistingToken(); err != nil {
			logrus.Errorf("Falha ao validar token existente: %v", err)
			logrus.Warn("Tentando renovar o token...")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Falha ao renovar token: %v", err)
				logrus.Warn("O envio de mensagens pode ficar limitado até que o token seja renovado")
			}
		} else {
			logrus.Info("Token de longa duração validado com sucesso")
		}
	} else {
		if err := tm.EnsureValidToken(); err != nil {
			logrus.Errorf("Erro ao verificar validade do token: %v", err)
		}
	}
}

// StartAutoRefresh inicia uma goroutine que atualiza o token periodicamente
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.InitiateToken(); err != nil {
		logrus.Errorf("Erro ao iniciar o token: %v", err)
	}

	// Renovação diária, um pouco antes de completar 24h
	refreshInterval := 23 * time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token do WhatsApp")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)

				ticker.Reset(1 * time.Hour)
			} else {
				logrus.Info("Renovação periódica do token concluída com sucesso")

				tm.persistToken()

				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// InitiateToken obtém um token de longa duração a partir do token de curta duração
func (tm *TokenManager) InitiateToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	// Verificar novamente se o token já foi inicializado por outra goroutine
	if tm.cfg.WhatsApp.LongLivedToken != "" {
		return nil
	}

	tokenResponse, err := GetLongLivedToken(
		tm.cfg.WhatsApp.AccessToken,
		tm.cfg.WhatsApp.AppID,
		tm.cfg.WhatsApp.AppSecret,
		tm.cfg.WhatsApp.BaseURL,
		tm.cfg.WhatsApp.Version,
	)
	if err != nil {
		return fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}

	tm.cfg.WhatsApp.LongLivedToken = tokenResponse.AccessToken
	tm.cfg.WhatsApp.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)
	tm.cfg.WhatsApp.AccessToken = tm.cfg.WhatsApp.LongLivedToken

	tm.persistToken()

	logrus.Infof("Token de longa duração inicializado com sucesso. Expira em: %s",
		tm.cfg.WhatsApp.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// persistToken grava o token renovado como secret file na hospedagem,
// para que o próximo deploy suba já com o token válido.
func (tm *TokenManager) persistToken() {
	if tm.RenderClient == nil || tm.cfg.Render.ServiceID == "" {
		return
	}

	err := tm.RenderClient.AddOrUpdateSecret(tm.cfg.Render.ServiceID, "whatsapp_access_token", tm.cfg.WhatsApp.AccessToken)
	if err != nil {
		logrus.Warnf("Erro ao persistir token renovado na hospedagem: %v", err)
	}
}

// ValidateExistingToken valida um token existente e atualiza as informações de expiração
func (tm *TokenManager) ValidateExistingToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	isValid, err := CheckTokenValidity(tm.cfg.WhatsApp.LongLivedToken, tm.cfg.WhatsApp.URL)
	if err != nil {
		return fmt.Errorf("erro ao verificar validade do token de longa duração: %w", err)
	}

	if !isValid {
		return tm.refreshTokenInternal()
	}

	tm.cfg.WhatsApp.AccessToken = tm.cfg.WhatsApp.LongLivedToken

	return nil
}

// RefreshToken obtém um novo token de longa duração
func (tm *TokenManager) RefreshToken() error {
	return tm.refreshTokenInternal()
}

func (tm *TokenManager) refreshTokenInternal() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	if !tm.cfg.WhatsApp.TokenExpiresAt.IsZero() && time.Until(tm.cfg.WhatsApp.TokenExpiresAt) < 1*time.Hour {
		logrus.Warn("Token está muito próximo da expiração ou já expirou - pode ser necessária reautorização manual")
	}

	logrus.Info("Iniciando renovação do token...")
	tokenResponse, err := GetLongLivedToken(
		tm.cfg.WhatsApp.AccessToken,
		tm.cfg.WhatsApp.AppID,
		tm.cfg.WhatsApp.AppSecret,
		tm.cfg.WhatsApp.BaseURL,
		tm.cfg.WhatsApp.Version,
	)
	if err != nil {
		errMsg := err.Error()

		if strings.Contains(errMsg, "Error validating access token") ||
			strings.Contains(errMsg, "Session has expired") ||
			strings.Contains(errMsg, "The session has been invalidated") {

			logrus.Error("O token de acesso expirou e não pode ser renovado automaticamente. É necessário reautorizar")

			return fmt.Errorf("o token de acesso expirou e não pode ser renovado automaticamente. "+
				"É necessário reautorizar o aplicativo através do processo de autenticação OAuth: %w", err)
		}

		logrus.Errorf("Erro ao renovar token: %v", err)
		return fmt.Errorf("erro ao obter novo token de longa duração: %w", err)
	}

	oldToken := tm.cfg.WhatsApp.LongLivedToken
	tm.cfg.WhatsApp.LongLivedToken = tokenResponse.AccessToken
	tm.cfg.WhatsApp.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)
	tm.cfg.WhatsApp.AccessToken = tm.cfg.WhatsApp.LongLivedToken

	if oldToken != tm.cfg.WhatsApp.LongLivedToken {
		logrus.Infof("Token de longa duração atualizado com sucesso. Expira em: %s",
			tm.cfg.WhatsApp.TokenExpiresAt.Format(time.RFC3339))
	} else {
		logrus.Info("Token renovado, mas não mudou. Isso pode indicar um problema na Graph API")
	}

	return nil
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (tm *TokenManager) EnsureValidToken() error {
	if tm.cfg.WhatsApp.AccessToken == "" {
		logrus.Info("Token não inicializado. Inicializando...")
		return tm.InitiateToken()
	}

	// Renovação conservadora: menos de 24 horas para expirar já renova
	if time.Until(tm.cfg.WhatsApp.TokenExpiresAt) < 24*time.Hour {
		logrus.Info("Token expira em menos de 24 horas. Renovando proativamente...")
		return tm.RefreshToken()
	}

	return nil
}

// ParseErrorResponse tenta parsear um erro da Graph API
func ParseErrorResponse(body []byte) (*whatsappdomain.ErrorResponse, error) {
	var errorResp whatsappdomain.ErrorResponse
	err := json.Unmarshal(body, &errorResp)
	if err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return tm.handleErrorResponse(body)
}

func (tm *TokenManager) handleErrorResponse(body []byte) ([]byte, error) {
	errorResp, parseErr := ParseErrorResponse(body)

	if parseErr == nil && errorResp.IsTokenExpired() {
		return tm.handleExpiredToken(errorResp)
	}

	bodyStr := string(body)
	if containsTokenExpirationMessage(bodyStr) {
		return tm.handleExpiredTokenByMessage(bodyStr)
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", http.StatusBadRequest, string(body))
}

func (tm *TokenManager) handleExpiredToken(errorResp *whatsappdomain.ErrorResponse) ([]byte, error) {
	logrus.Warnf("Token expirado detectado pela Graph API. Código: %d, Subcódigo: %d",
		errorResp.Error.Code, errorResp.Error.ErrorSubcode)

	if refreshErr := tm.RefreshToken(); refreshErr != nil {
		if strings.Contains(refreshErr.Error(), "necessário reautorizar") {
			return nil, fmt.Errorf("token expirou permanentemente e requer reautorização manual: %w", refreshErr)
		}
		return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
	}

	return nil, fmt.Errorf("token expirado e renovado, por favor tente novamente")
}

func (tm *TokenManager) handleExpiredTokenByMessage(bodyStr string) ([]byte, error) {
	logrus.Warnf("Token expirado detectado pela mensagem de erro: %s", bodyStr)

	if refreshErr := tm.RefreshToken(); refreshErr != nil {
		if strings.Contains(refreshErr.Error(), "necessário reautorizar") {
			return nil, fmt.Errorf("token expirou permanentemente e requer reautorização manual: %w", refreshErr)
		}
		return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
	}

	return nil, fmt.Errorf("token expirado e renovado, por favor tente novamente")
}

// containsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
