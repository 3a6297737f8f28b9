package gadsclient

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/internal/config"
)

// TokenManager gerencia o access token OAuth2 da API do Google Ads. Os
// tokens duram cerca de uma hora e são renovados com o refresh token fixo.
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:               cfg,
		TokenRefreshMutex: sync.Mutex{},
	}
}

// EnsureValidToken verifica se o token atual é válido e renova se necessário
func (tm *TokenManager) EnsureValidToken() error {
	if tm.cfg.GoogleAds.AccessToken == "" {
		logrus.Info("Access token do Google Ads não inicializado. Obtendo...")
		return tm.RefreshToken()
	}

	// Renovar proativamente quando faltar pouco para expirar
	if time.Until(tm.cfg.GoogleAds.TokenExpiresAt) < 5*time.Minute {
		logrus.Info("Access token do Google Ads próximo de expirar. Renovando...")
		return tm.RefreshToken()
	}

	return nil
}

// RefreshToken obtém um novo access token usando o refresh token
func (tm *TokenManager) RefreshToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	// Verificar novamente se o token já foi renovado por outra goroutine
	if tm.cfg.GoogleAds.AccessToken != "" && time.Until(tm.cfg.GoogleAds.TokenExpiresAt) >= 5*time.Minute {
		return nil
	}

	tokenResponse, err := ExchangeRefreshToken(
		tm.cfg.GoogleAds.TokenURL,
		tm.cfg.GoogleAds.ClientID,
		tm.cfg.GoogleAds.ClientSecret,
		tm.cfg.GoogleAds.RefreshToken,
	)
	if err != nil {
		return fmt.Errorf("erro ao renovar access token: %w", err)
	}

	tm.cfg.GoogleAds.AccessToken = tokenResponse.AccessToken
	tm.cfg.GoogleAds.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)

	logrus.Infof("Access token do Google Ads renovado com sucesso. Expira em: %s",
		tm.cfg.GoogleAds.TokenExpiresAt.Format(time.RFC3339))

	return nil
}
