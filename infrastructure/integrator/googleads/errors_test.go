package googleads

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gadsdomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		detail   string
		expected string
	}{
		{
			name:     "Código conhecido sem placeholder ignora o detalhe",
			code:     "RATE_LIMIT_EXCEEDED",
			detail:   "quota exceeded for requests per minute",
			expected: "API rate limit exceeded. Please try again later",
		},
		{
			name:     "Código conhecido com placeholder recebe o detalhe",
			code:     "IMAGE_ERROR",
			detail:   "corrupt file",
			expected: "Failed to process image: corrupt file",
		},
		{
			name:     "Código mais específico que o catálogo casa por substring",
			code:     "PMAX_NOT_ENOUGH_HEADLINES_V2",
			detail:   "",
			expected: "Performance Max requires at least 3 headlines",
		},
		{
			name:     "Código mais genérico que o catálogo casa por substring",
			code:     "RATE_LIMIT",
			detail:   "",
			expected: "API rate limit exceeded. Please try again later",
		},
		{
			name:     "Código desconhecido usa a mensagem genérica com o detalhe",
			code:     "SOMETHING_NEW",
			detail:   "the request failed",
			expected: "An unexpected error occurred: the request failed",
		},
		{
			name:     "Código desconhecido sem detalhe expõe o próprio código",
			code:     "E123X",
			detail:   "",
			expected: "An unexpected error occurred: E123X",
		},
		{
			name:     "Código vazio não tenta casar por substring",
			code:     "",
			detail:   "connection reset",
			expected: "An unexpected error occurred: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapError(tt.code, tt.detail))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	for _, code := range []string{"INTERNAL_ERROR", "TRANSIENT_ERROR", "RESOURCE_EXHAUSTED", "DEADLINE_EXCEEDED", "RATE_LIMIT_EXCEEDED"} {
		assert.True(t, IsRetryable(code), code)
	}

	for _, code := range []string{"AUTHENTICATION_ERROR", "INVALID_CAMPAIGN_TYPE", "UNKNOWN_ERROR", ""} {
		assert.False(t, IsRetryable(code), code)
	}
}

func TestRetryableCodes(t *testing.T) {
	// A ordem estável importa: a lista entra na cláusula IN do retry
	assert.Equal(t, []string{
		"DEADLINE_EXCEEDED",
		"INTERNAL_ERROR",
		"RATE_LIMIT_EXCEEDED",
		"RESOURCE_EXHAUSTED",
		"TRANSIENT_ERROR",
	}, RetryableCodes())
}

func TestErrorSeverity(t *testing.T) {
	assert.Equal(t, SeverityCritical, ErrorSeverity("AUTHENTICATION_ERROR"))
	assert.Equal(t, SeverityWarning, ErrorSeverity("DUPLICATE_ASSET"))
	assert.Equal(t, SeverityInfo, ErrorSeverity("RATE_LIMIT_EXCEEDED"))
	assert.Equal(t, SeverityError, ErrorSeverity("ASPECT_RATIO_NOT_ALLOWED"))
	assert.Equal(t, SeverityError, ErrorSeverity(""))
}

func TestMutateError(t *testing.T) {
	t.Run("Mensagens são encadeadas com ponto e vírgula", func(t *testing.T) {
		err := &MutateError{
			Operation: "campaigns",
			Codes:     []string{"BUDGET_AMOUNT_TOO_LOW", "START_DATE_IN_PAST"},
			Messages:  []string{"Daily budget must be at least {min_amount}", "Start date cannot be in the past"},
		}

		assert.Equal(t, "Daily budget must be at least {min_amount}; Start date cannot be in the past", err.Error())
		assert.Equal(t, "BUDGET_AMOUNT_TOO_LOW", err.Code())
	})

	t.Run("Sem códigos o Code cai no genérico", func(t *testing.T) {
		err := &MutateError{Operation: "campaigns"}

		assert.Equal(t, "UNKNOWN_ERROR", err.Code())
	})
}

func TestNewMutateError(t *testing.T) {
	t.Run("Erro de transporte passa adiante sem tradução", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")

		err := newMutateError("campaigns", cause)

		assert.Equal(t, cause, err)
	})

	t.Run("GoogleAdsFailure estruturado é traduzido erro a erro", func(t *testing.T) {
		apiErr := &gadsdomain.APIError{
			StatusCode: 400,
			Response: gadsdomain.ErrorResponse{
				Error: gadsdomain.ErrorBody{
					Code:    400,
					Message: "Request contains an invalid argument.",
					Status:  "INVALID_ARGUMENT",
					Details: []gadsdomain.ErrorDetail{
						{
							Type:      "type.googleapis.com/google.ads.googleads.v17.errors.GoogleAdsFailure",
							RequestID: "AbC123dEf456",
							Errors: []gadsdomain.GoogleAdsError{
								{
									ErrorCode: map[string]string{"assetError": "aspect_ratio_not_allowed"},
									Message:   "The aspect ratio is not allowed.",
								},
								{
									ErrorCode: map[string]string{"quotaError": "rate_limit_exceeded"},
									Message:   "Too many requests.",
								},
							},
						},
					},
				},
			},
		}

		err := newMutateError("asset_groups", apiErr)

		var mutateErr *MutateError
		if assert.ErrorAs(t, err, &mutateErr) {
			assert.Equal(t, "asset_groups", mutateErr.Operation)
			assert.Equal(t, 400, mutateErr.Status)
			assert.Equal(t, "AbC123dEf456", mutateErr.RequestID)
			assert.Equal(t, []string{"ASPECT_RATIO_NOT_ALLOWED", "RATE_LIMIT_EXCEEDED"}, mutateErr.Codes)
			assert.Equal(t, []string{
				"Image aspect ratio must be {required_ratio}",
				"API rate limit exceeded. Please try again later",
			}, mutateErr.Messages)
			assert.True(t, mutateErr.Retryable)
			assert.Equal(t, "ASPECT_RATIO_NOT_ALLOWED", mutateErr.Code())
		}
	})

	t.Run("Resposta sem GoogleAdsFailure cai no código do status HTTP", func(t *testing.T) {
		apiErr := &gadsdomain.APIError{
			StatusCode: 429,
			Response: gadsdomain.ErrorResponse{
				Error: gadsdomain.ErrorBody{
					Code:    429,
					Message: "Resource has been exhausted",
					Status:  "RESOURCE_EXHAUSTED",
				},
			},
		}

		err := newMutateError("campaigns", apiErr)

		var mutateErr *MutateError
		if assert.ErrorAs(t, err, &mutateErr) {
			assert.Equal(t, []string{"RATE_LIMIT_EXCEEDED"}, mutateErr.Codes)
			assert.Equal(t, []string{"API rate limit exceeded. Please try again later"}, mutateErr.Messages)
			assert.True(t, mutateErr.Retryable)
			assert.Empty(t, mutateErr.RequestID)
		}
	})

	t.Run("Status fora do mapa vira UNKNOWN_ERROR com o status no detalhe", func(t *testing.T) {
		apiErr := &gadsdomain.APIError{StatusCode: 418}

		err := newMutateError("campaigns", apiErr)

		var mutateErr *MutateError
		if assert.ErrorAs(t, err, &mutateErr) {
			assert.Equal(t, []string{"UNKNOWN_ERROR"}, mutateErr.Codes)
			assert.Equal(t, []string{"An unexpected error occurred: HTTP 418"}, mutateErr.Messages)
			assert.False(t, mutateErr.Retryable)
		}
	})
}
