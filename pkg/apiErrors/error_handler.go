package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de campanha (1000-1999)
	ErrCampaignNotFound      = "CMP_001" // Campanha não encontrada
	ErrCampaignPublished     = "CMP_002" // Campanha já publicada
	ErrCampaignNotPublished  = "CMP_003" // Campanha não publicada no Google Ads
	ErrCampaignNotDeletable  = "CMP_004" // Campanha publicada não pode ser removida
	ErrCampaignFieldLocked   = "CMP_005" // Campo bloqueado após a publicação
	ErrCampaignNotReady      = "CMP_006" // Campanha não está pronta para publicação
	ErrCampaignPublishFailed = "CMP_007" // Falha ao publicar a campanha

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros da integração Google Ads (3000-3999)
	ErrAdsNotConfigured = "ADS_001" // Integração Google Ads não configurada
	ErrAdsMutateFailed  = "ADS_002" // Falha em mutação no Google Ads
	ErrAdsRateLimited   = "ADS_003" // Limite de requisições excedido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrCampaignNotFound:      http.StatusNotFound,
	ErrCampaignPublished:     http.StatusBadRequest,
	ErrCampaignNotPublished:  http.StatusBadRequest,
	ErrCampaignNotDeletable:  http.StatusBadRequest,
	ErrCampaignFieldLocked:   http.StatusBadRequest,
	ErrCampaignNotReady:      http.StatusBadRequest,
	ErrCampaignPublishFailed: http.StatusInternalServerError,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrAdsNotConfigured:      http.StatusBadRequest,
	ErrAdsMutateFailed:       http.StatusInternalServerError,
	ErrAdsRateLimited:        http.StatusTooManyRequests,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado. O código determina apenas o
// status HTTP e não aparece no corpo da resposta.
type APIError struct {
	Error   string `json:"error"`             // Mensagem principal do erro
	Message string `json:"message,omitempty"` // Orientação adicional (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	write(w, code, APIError{
		Error:   message,
		Details: details,
	})
}

// WriteErrorWithHint escreve o erro com uma mensagem de orientação adicional
func WriteErrorWithHint(w http.ResponseWriter, code string, message string, hint string) {
	write(w, code, APIError{
		Error:   message,
		Message: hint,
	})
}

func write(w http.ResponseWriter, code string, apiErr APIError) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
