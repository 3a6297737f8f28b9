package gadsclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	MutateCampaignBudgets(operations []gadsdomain.CampaignBudgetOperation) (*gadsdomain.MutateResponse, error)
	MutateCampaigns(operations []gadsdomain.CampaignOperation) (*gadsdomain.MutateResponse, error)
	MutateAdGroups(operations []gadsdomain.AdGroupOperation) (*gadsdomain.MutateResponse, error)
	MutateAdGroupAds(operations []gadsdomain.AdGroupAdOperation) (*gadsdomain.MutateResponse, error)
	MutateAdGroupCriteria(operations []gadsdomain.AdGroupCriterionOperation) (*gadsdomain.MutateResponse, error)
	MutateAssets(operations []gadsdomain.AssetOperation) (*gadsdomain.MutateResponse, error)
	MutateAssetGroups(operations []gadsdomain.AssetGroupOperation) (*gadsdomain.MutateResponse, error)
	MutateAssetGroupAssets(operations []gadsdomain.AssetGroupAssetOperation) (*gadsdomain.MutateResponse, error)
	CampaignPath(campaignID string) string
	RefreshToken() error
	EnsureValidToken() error
}

type GoogleAdsClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager

	httpClient *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &GoogleAdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			// Upload de imagens pode demorar mais que chamadas comuns
			Timeout: 60 * time.Second,
		},
	}
	return client
}

// RefreshToken obtém um novo access token
func (c *GoogleAdsClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e renova se necessário
func (c *GoogleAdsClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// CampaignPath monta o resource name de uma campanha do cliente configurado
func (c *GoogleAdsClient) CampaignPath(campaignID string) string {
	return fmt.Sprintf("customers/%s/campaigns/%s", c.Cfg.GoogleAds.CustomerID, campaignID)
}

// mutate envia operações para um endpoint :mutate da API REST
func (c *GoogleAdsClient) mutate(service string, payload interface{}) (*gadsdomain.MutateResponse, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Error("Erro ao codificar operações de mutate")
		return nil, err
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithField("service", service).Debugf("Payload de mutate: %s", utils.PrettyJson(body))
	}

	url := fmt.Sprintf("%s/customers/%s/%s:mutate", c.Cfg.GoogleAds.URL, c.Cfg.GoogleAds.CustomerID, service)

	respBody, statusCode, err := c.post(url, body)
	if err != nil {
		return nil, err
	}

	// Token pode ter sido revogado no meio do caminho; renovar e repetir uma vez
	if statusCode == http.StatusUnauthorized {
		logrus.Warn("Access token rejeitado pela API do Google Ads. Renovando e tentando novamente")

		if refreshErr := c.RefreshToken(); refreshErr != nil {
			return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}

		respBody, statusCode, err = c.post(url, body)
		if err != nil {
			return nil, err
		}
	}

	if statusCode != http.StatusOK {
		return nil, newAPIError(statusCode, respBody)
	}

	var response gadsdomain.MutateResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}

func (c *GoogleAdsClient) post(url string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.GoogleAds.AccessToken)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	if c.Cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	return respBody, resp.StatusCode, nil
}

func newAPIError(statusCode int, body []byte) error {
	apiErr := &gadsdomain.APIError{StatusCode: statusCode, Body: body}

	if err := json.Unmarshal(body, &apiErr.Response); err != nil {
		logrus.WithError(err).Warn("Não foi possível decodificar o corpo do erro da API")
	}

	return apiErr
}
