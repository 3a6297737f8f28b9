package validating

import (
	"fmt"

	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

const ValidationErrorCode = "VALIDATION_ERROR"

// Report é a resposta da validação prévia, combinando as duas passadas de
// checagem com as exigências do tipo para contexto do cliente
type Report struct {
	Valid        bool                `json:"valid"`
	Errors       []string            `json:"errors"`
	CampaignType domain.CampaignType `json:"campaign_type"`
	Code         *string             `json:"code"`
	Warnings     []string            `json:"warnings,omitempty"`
	Requirements ReportRequirements  `json:"requirements"`
}

type ReportRequirements struct {
	Headlines                 TextListRule `json:"headlines"`
	Descriptions              TextListRule `json:"descriptions"`
	ShortDescriptionRequired  bool         `json:"short_description_required"`
	ShortDescriptionMaxLength *int         `json:"short_description_max_length"`
}

func (s *service) Report(campaign *domain.Campaign) *Report {
	errors := s.typeRequirementErrors(campaign)

	_, translationErrors := s.ValidateForGoogleAds(campaign)
	errors = dedupe(append(errors, translationErrors...))

	requirements, _ := s.catalog.ForType(campaign.CampaignType)
	apiSupported := s.catalog.APICreationSupported(campaign.CampaignType)

	report := &Report{
		Valid:        len(errors) == 0 && apiSupported,
		Errors:       errors,
		CampaignType: campaign.CampaignType,
		Requirements: ReportRequirements{
			Headlines:                requirements.Headlines,
			Descriptions:             requirements.Descriptions,
			ShortDescriptionRequired: requirements.ShortDescriptionRequired,
		},
	}

	if len(errors) > 0 {
		code := ValidationErrorCode
		report.Code = &code
	}

	if requirements.ShortDescriptionMaxLength > 0 {
		maxLength := requirements.ShortDescriptionMaxLength
		report.Requirements.ShortDescriptionMaxLength = &maxLength
	}

	if !apiSupported {
		report.Warnings = []string{fmt.Sprintf(
			"%s campaigns cannot be created via the Google Ads API. This campaign can be saved as a draft, but publishing requires Google Ads UI.",
			campaign.CampaignType,
		)}
	}

	return report
}

// dedupe remove mensagens repetidas preservando a primeira ocorrência
func dedupe(errors []string) []string {
	seen := make(map[string]struct{}, len(errors))
	unique := make([]string, 0, len(errors))

	for _, err := range errors {
		if _, ok := seen[err]; ok {
			continue
		}

		seen[err] = struct{}{}
		unique = append(unique, err)
	}

	return unique
}
