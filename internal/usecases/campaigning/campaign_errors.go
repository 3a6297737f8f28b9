package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas. As mensagens dos erros de
// estado são expostas diretamente pela API, por isso ficam em inglês e com a
// grafia exata do contrato.
var (
	// Erros de estado da campanha
	ErrCampaignNotFound    = errors.New("Campaign not found")
	ErrAlreadyPublished    = errors.New("Campaign is already published")
	ErrNotPublished        = errors.New("Campaign is not published to Google Ads")
	ErrPublishedNotDeleted = errors.New("Cannot delete a campaign that has been published to Google Ads")
	ErrNotReadyForPublish  = errors.New("Campaign is not ready for publishing")

	// Erros de entrada
	ErrMissingRequiredField = errors.New("Missing required field")
	ErrInvalidDateFormat    = errors.New("Invalid date format. Use YYYY-MM-DD")

	// Erros das operações no Google Ads
	ErrPublishFailed = errors.New("Failed to publish campaign")
	ErrPauseFailed   = errors.New("Failed to pause campaign")
	ErrEnableFailed  = errors.New("Failed to enable campaign")

	// Erros de banco de dados
	ErrSaveCampaign   = errors.New("error saving campaign to database")
	ErrFetchCampaigns = errors.New("error fetching campaigns from database")
	ErrDeleteCampaign = errors.New("error deleting campaign from database")

	// Erros de geração de identificador
	ErrGenerateID = errors.New("error generating campaign ID")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error    // Erro base
	Code       string   // Código de erro para API
	CampaignID string   // ID da campanha envolvida (quando aplicável)
	Details    string   // Detalhes anexados à mensagem
	Violations []string // Violações de validação de publicação (quando aplicável)
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError cria um novo CampaignError
func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewCampaignErrorWithID cria um novo CampaignError com ID da campanha
func NewCampaignErrorWithID(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
