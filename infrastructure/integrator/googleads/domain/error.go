package gadsdomain

import (
	"fmt"
	"strings"
)

// ErrorResponse representa a estrutura de erro da API REST do Google Ads
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []ErrorDetail `json:"details"`
}

// ErrorDetail carrega um GoogleAdsFailure quando o @type corresponde
type ErrorDetail struct {
	Type      string           `json:"@type"`
	Errors    []GoogleAdsError `json:"errors"`
	RequestID string           `json:"requestId"`
}

// GoogleAdsError é um erro individual do mutate. O errorCode é um oneof
// serializado como objeto de chave única: a chave é a categoria
// (assetError, criterionError) e o valor o código específico.
type GoogleAdsError struct {
	ErrorCode map[string]string `json:"errorCode"`
	Message   string            `json:"message"`
	Location  *ErrorLocation    `json:"location,omitempty"`
}

type ErrorLocation struct {
	FieldPathElements []FieldPathElement `json:"fieldPathElements"`
}

type FieldPathElement struct {
	FieldName string `json:"fieldName"`
	Index     *int   `json:"index,omitempty"`
}

// Code devolve o código específico do erro (ex.: ASPECT_RATIO_NOT_ALLOWED)
func (e GoogleAdsError) Code() string {
	for _, code := range e.ErrorCode {
		return strings.ToUpper(code)
	}

	return ""
}

// FieldPath devolve o caminho do campo que causou o erro, quando informado
func (e GoogleAdsError) FieldPath() string {
	if e.Location == nil {
		return ""
	}

	names := make([]string, 0, len(e.Location.FieldPathElements))
	for _, element := range e.Location.FieldPathElements {
		names = append(names, element.FieldName)
	}

	return strings.Join(names, ".")
}

// Failure devolve o detalhe com os erros do Google Ads, se presente
func (r *ErrorResponse) Failure() *ErrorDetail {
	for i := range r.Error.Details {
		if strings.Contains(r.Error.Details[i].Type, "GoogleAdsFailure") {
			return &r.Error.Details[i]
		}
	}

	return nil
}

// APIError é o erro devolvido pelo cliente quando a API responde com falha
type APIError struct {
	StatusCode int
	Response   ErrorResponse
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erro na resposta da API do Google Ads. Status: %d, Corpo: %s", e.StatusCode, string(e.Body))
}

// AdsErrors devolve os erros individuais do GoogleAdsFailure, se houver
func (e *APIError) AdsErrors() []GoogleAdsError {
	failure := e.Response.Failure()
	if failure == nil {
		return nil
	}

	return failure.Errors
}

// RequestID devolve o identificador da requisição reportado pela API
func (e *APIError) RequestID() string {
	failure := e.Response.Failure()
	if failure == nil {
		return ""
	}

	return failure.RequestID
}
