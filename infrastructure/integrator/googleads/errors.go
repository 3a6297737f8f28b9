package googleads

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	gadsdomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads/domain"
)

// Severity classifica erros da API para fins de log e alerta
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityError    Severity = "ERROR"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
)

const unknownErrorCode = "UNKNOWN_ERROR"

// errorMessages traduz códigos de erro da API do Google Ads para mensagens
// acionáveis pelo usuário. Somente o placeholder {detail} é substituído.
var errorMessages = map[string]string{
	// Asset errors
	"REQUIRED_FIELD_MISSING":        "A required field is missing: {field}",
	"NOT_ENOUGH_HEADLINE_ASSET":     "At least {min_count} headlines are required",
	"NOT_ENOUGH_DESCRIPTION_ASSET":  "At least {min_count} descriptions are required",
	"SHORT_DESCRIPTION_REQUIRED":    "Performance Max requires at least one description of 60 characters or fewer",
	"ASSET_TEXT_TOO_LONG":           "Asset text exceeds the maximum length of {max_length} characters",
	"HEADLINE_TEXT_TOO_LONG":        "Asset text exceeds the maximum length of 30 characters",
	"DESCRIPTION_TEXT_TOO_LONG":     "Asset text exceeds the maximum length of 90 characters",
	"DUPLICATE_ASSET":               "This asset already exists in the account",

	// Keyword errors
	"CRITERION_ALREADY_EXISTS": "This keyword already exists in the ad group",
	"INVALID_KEYWORD_TEXT":     "Invalid keyword text: {keyword}",
	"KEYWORD_TEXT_TOO_LONG":    "Keyword text exceeds the maximum length of 80 characters",
	"TOO_MANY_KEYWORDS":        "Too many keywords in ad group",

	// Image errors
	"ASPECT_RATIO_NOT_ALLOWED": "Image aspect ratio must be {required_ratio}",
	"IMAGE_TOO_SMALL":          "Image dimensions too small. Minimum required: {min_width}x{min_height}",
	"IMAGE_TOO_LARGE":          "Image file size exceeds the maximum allowed",
	"INVALID_IMAGE_FORMAT":     "Invalid image format. Supported formats: JPEG, PNG, GIF",
	"IMAGE_ERROR":              "Failed to process image: {detail}",

	// Campaign errors
	"CAMPAIGN_TYPE_NOT_COMPATIBLE": "Campaign type is not compatible with the selected settings",
	"CANNOT_CREATE_VIDEO_CAMPAIGN": "VIDEO campaigns cannot be created via the Google Ads API. Please use Google Ads UI.",
	"INVALID_CAMPAIGN_TYPE":        "Invalid campaign type: {type}",
	"BUDGET_AMOUNT_TOO_LOW":        "Daily budget must be at least {min_amount}",
	"INVALID_DATE_RANGE":           "Invalid date range. End date must be after start date",
	"START_DATE_IN_PAST":           "Start date cannot be in the past",

	// Bidding errors
	"INVALID_BIDDING_STRATEGY":       "Invalid bidding strategy for this campaign type",
	"BIDDING_STRATEGY_NOT_SUPPORTED": "Bidding strategy \"{strategy}\" is not supported for {campaign_type} campaigns",
	"TARGET_CPA_REQUIRED":            "Target CPA value is required for target_cpa bidding strategy",
	"TARGET_ROAS_REQUIRED":           "Target ROAS value is required for target_roas bidding strategy",
	"TARGET_CPA_TOO_LOW":             "Target CPA is too low. Minimum recommended: {min_cpa}",

	// Ad group errors
	"AD_GROUP_TYPE_NOT_COMPATIBLE": "Ad group type is not compatible with campaign type",
	"INVALID_AD_GROUP_NAME":        "Invalid ad group name",
	"AD_TYPE_NOT_COMPATIBLE":       "Ad type is not compatible with the ad group",

	// URL errors
	"FINAL_URL_REQUIRED": "Final URL is required for this campaign type",
	"INVALID_URL":        "Invalid URL format: {url}",
	"URL_NOT_ACCESSIBLE": "The URL is not accessible or does not exist",

	// Shopping errors
	"MERCHANT_CENTER_NOT_LINKED":  "Merchant Center account is not linked",
	"MERCHANT_CENTER_ID_REQUIRED": "Merchant Center ID is required for Shopping campaigns",
	"INVALID_MERCHANT_CENTER_ID":  "Invalid Merchant Center ID: {id}",

	// Performance Max errors
	"PMAX_MISSING_REQUIRED_ASSETS":    "Performance Max campaigns require headlines, descriptions, and images",
	"PMAX_NOT_ENOUGH_HEADLINES":       "Performance Max requires at least 3 headlines",
	"PMAX_NOT_ENOUGH_DESCRIPTIONS":    "Performance Max requires at least 2 descriptions",
	"PMAX_SHORT_DESCRIPTION_REQUIRED": "Performance Max requires at least one description of 60 characters or fewer",
	"PMAX_FINAL_URL_REQUIRED":         "Performance Max campaigns require a final URL",
	"PMAX_BUSINESS_NAME_REQUIRED":     "Performance Max campaigns require a business name",

	// Account errors
	"AUTHENTICATION_ERROR": "Authentication failed. Please check your credentials",
	"AUTHORIZATION_ERROR":  "You do not have permission to perform this action",
	"CUSTOMER_NOT_FOUND":   "Google Ads customer account not found",
	"INVALID_CUSTOMER_ID":  "Invalid Google Ads customer ID",
	"RATE_LIMIT_EXCEEDED":  "API rate limit exceeded. Please try again later",

	// Transient errors
	"INTERNAL_ERROR":     "An internal error occurred. Please try again",
	"TRANSIENT_ERROR":    "A temporary error occurred. Please try again",
	"RESOURCE_EXHAUSTED": "API quota exhausted. Please try again later",
	"DEADLINE_EXCEEDED":  "Request timed out. Please try again",

	// Generic errors
	"UNKNOWN_ERROR":    "An unexpected error occurred: {detail}",
	"VALIDATION_ERROR": "Validation failed: {detail}",
	"MUTATE_ERROR":     "Failed to create/update resource: {detail}",
}

// retryableErrors lista os códigos que valem a pena repetir mais tarde
var retryableErrors = map[string]bool{
	"INTERNAL_ERROR":      true,
	"TRANSIENT_ERROR":     true,
	"RESOURCE_EXHAUSTED":  true,
	"DEADLINE_EXCEEDED":   true,
	"RATE_LIMIT_EXCEEDED": true,
}

var errorSeverity = map[string]Severity{
	"AUTHENTICATION_ERROR": SeverityCritical,
	"AUTHORIZATION_ERROR":  SeverityCritical,
	"CUSTOMER_NOT_FOUND":   SeverityCritical,

	"VALIDATION_ERROR":      SeverityError,
	"MUTATE_ERROR":          SeverityError,
	"INVALID_CAMPAIGN_TYPE": SeverityError,

	"DUPLICATE_ASSET":          SeverityWarning,
	"CRITERION_ALREADY_EXISTS": SeverityWarning,

	"RATE_LIMIT_EXCEEDED": SeverityInfo,
}

// MapError traduz um código de erro da API para uma mensagem amigável.
// Códigos sem correspondência exata são comparados por substring antes de
// cair na mensagem genérica.
func MapError(code, detail string) string {
	template, ok := errorMessages[code]
	if !ok && code != "" {
		template, ok = partialMatch(code)
	}

	if !ok {
		template = errorMessages[unknownErrorCode]
		if detail == "" {
			detail = code
		}
	}

	return strings.ReplaceAll(template, "{detail}", detail)
}

// partialMatch percorre o catálogo em ordem estável procurando códigos que
// contenham ou estejam contidos no código recebido
func partialMatch(code string) (string, bool) {
	keys := make([]string, 0, len(errorMessages))
	for key := range errorMessages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(code, key) || strings.Contains(key, code) {
			return errorMessages[key], true
		}
	}

	return "", false
}

// IsRetryable diz se o código de erro indica uma falha passageira
func IsRetryable(code string) bool {
	return retryableErrors[code]
}

// RetryableCodes lista em ordem estável os códigos transitórios que habilitam
// o reprocessamento automático de publicações com falha
func RetryableCodes() []string {
	codes := make([]string, 0, len(retryableErrors))
	for code, retryable := range retryableErrors {
		if retryable {
			codes = append(codes, code)
		}
	}

	sort.Strings(codes)

	return codes
}

// ErrorSeverity retorna a severidade do código, ERROR por padrão
func ErrorSeverity(code string) Severity {
	if severity, ok := errorSeverity[code]; ok {
		return severity
	}
	return SeverityError
}

// MutateError agrega as falhas retornadas por uma operação de mutate já
// traduzidas para mensagens amigáveis
type MutateError struct {
	Operation string
	Codes     []string
	Messages  []string
	RequestID string
	Status    int
	Retryable bool
}

func (e *MutateError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Code retorna o primeiro código de erro reportado pela API
func (e *MutateError) Code() string {
	if len(e.Codes) == 0 {
		return unknownErrorCode
	}
	return e.Codes[0]
}

// statusFallbackCodes mapeia status HTTP para códigos quando a resposta não
// traz um GoogleAdsFailure estruturado
var statusFallbackCodes = map[int]string{
	http.StatusUnauthorized:        "AUTHENTICATION_ERROR",
	http.StatusForbidden:           "AUTHORIZATION_ERROR",
	http.StatusNotFound:            "CUSTOMER_NOT_FOUND",
	http.StatusTooManyRequests:     "RATE_LIMIT_EXCEEDED",
	http.StatusInternalServerError: "INTERNAL_ERROR",
	http.StatusServiceUnavailable:  "TRANSIENT_ERROR",
	http.StatusGatewayTimeout:      "DEADLINE_EXCEEDED",
}

// newMutateError converte um erro do client em MutateError. Erros de
// transporte, que não são *gadsdomain.APIError, passam adiante sem tradução.
func newMutateError(operation string, err error) error {
	apiErr, ok := err.(*gadsdomain.APIError)
	if !ok {
		return err
	}

	mutateErr := &MutateError{
		Operation: operation,
		Status:    apiErr.StatusCode,
		RequestID: apiErr.RequestID(),
	}

	for _, adsErr := range apiErr.AdsErrors() {
		code := adsErr.Code()

		mutateErr.Codes = append(mutateErr.Codes, code)
		mutateErr.Messages = append(mutateErr.Messages, MapError(code, adsErr.Message))

		if IsRetryable(code) {
			mutateErr.Retryable = true
		}
	}

	if len(mutateErr.Messages) == 0 {
		code, ok := statusFallbackCodes[apiErr.StatusCode]
		if !ok {
			code = unknownErrorCode
		}

		detail := apiErr.Response.Error.Message
		if detail == "" {
			detail = fmt.Sprintf("HTTP %d", apiErr.StatusCode)
		}

		mutateErr.Codes = append(mutateErr.Codes, code)
		mutateErr.Messages = append(mutateErr.Messages, MapError(code, detail))
		mutateErr.Retryable = IsRetryable(code)
	}

	return mutateErr
}
