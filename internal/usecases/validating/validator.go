package validating

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

// Validator concentra todas as checagens de prontidão de campanha contra as
// exigências do Google Ads
type Validator interface {
	// ValidateForPublish valida os campos básicos e as exigências do tipo de
	// campanha. Lista vazia significa campanha pronta para publicação.
	ValidateForPublish(campaign *domain.Campaign) []string
	// ValidateForGoogleAds refaz, imediatamente antes da tradução, as
	// checagens estruturais que a API rejeitaria
	ValidateForGoogleAds(campaign *domain.Campaign) (bool, []string)
	// Report monta o resultado completo do endpoint de validação
	Report(campaign *domain.Campaign) *Report
	// ValidateCampaignImages baixa e confere as imagens do criativo
	ValidateCampaignImages(images domain.CampaignImages) []string
}

type service struct {
	catalog Catalog
	fetch   func(url string) ([]byte, string, error)
}

func NewService(catalog Catalog) Validator {
	return &service{
		catalog: catalog,
		fetch:   utils.MakeRequestWithContentType,
	}
}

func (s *service) ValidateForPublish(campaign *domain.Campaign) []string {
	errors := s.basicErrors(campaign)
	errors = append(errors, s.typeRequirementErrors(campaign)...)

	return errors
}

func (s *service) ValidateForGoogleAds(campaign *domain.Campaign) (bool, []string) {
	errors := make([]string, 0)

	requirements, ok := s.catalog.ForType(campaign.CampaignType)
	if !ok {
		return true, errors
	}

	errors = append(errors, apiRestrictionErrors(campaign.CampaignType, requirements)...)
	errors = append(errors, headlineErrors(campaign.CampaignType, requirements.Headlines, campaign.Headlines)...)
	errors = append(errors, descriptionErrors(campaign.CampaignType, requirements.Descriptions, campaign.Descriptions)...)

	switch campaign.CampaignType {
	case domain.CampaignTypeSearch:
		errors = append(errors, keywordDuplicateErrors(campaign.Keywords)...)
	case domain.CampaignTypePerformanceMax:
		errors = append(errors, shortDescriptionErrors(campaign.CampaignType, requirements, campaign.Descriptions)...)
	}

	return len(errors) == 0, errors
}

func (s *service) basicErrors(campaign *domain.Campaign) []string {
	errors := make([]string, 0)

	if campaign.Name == "" {
		errors = append(errors, "Campaign name is required")
	}

	if campaign.Objective == "" {
		errors = append(errors, "Campaign objective is required")
	}

	if campaign.DailyBudget <= 0 {
		errors = append(errors, "Valid daily budget is required")
	}

	if campaign.StartDate.IsZero() {
		errors = append(errors, "Start date is required")
	} else if campaign.StartDate.Before(domain.Today()) {
		errors = append(errors, "Start date cannot be in the past")
	}

	if campaign.EndDate != nil && !campaign.StartDate.IsZero() && campaign.EndDate.Before(campaign.StartDate) {
		errors = append(errors, "End date must be after start date")
	}

	if campaign.Status == domain.CampaignStatusPublished {
		errors = append(errors, "Campaign is already published")
	}

	return errors
}

// typeRequirementErrors percorre o catálogo na ordem fixa de composição do
// criativo. A ordem das mensagens faz parte do contrato da API.
func (s *service) typeRequirementErrors(campaign *domain.Campaign) []string {
	campaignType := campaign.CampaignType

	requirements, ok := s.catalog.ForType(campaignType)
	if !ok {
		return nil
	}

	errors := make([]string, 0)

	errors = append(errors, apiRestrictionErrors(campaignType, requirements)...)
	errors = append(errors, headlineErrors(campaignType, requirements.Headlines, campaign.Headlines)...)

	if requirements.LongHeadline.applies() {
		if requirements.LongHeadline.Required && !hasText(campaign.LongHeadline) {
			errors = append(errors, fmt.Sprintf("%s campaigns require a long headline", campaignType))
		} else if hasText(campaign.LongHeadline) && textLength(*campaign.LongHeadline) > requirements.LongHeadline.MaxLength {
			errors = append(errors, fmt.Sprintf("Long headline exceeds %d characters", requirements.LongHeadline.MaxLength))
		}
	}

	errors = append(errors, descriptionErrors(campaignType, requirements.Descriptions, campaign.Descriptions)...)
	errors = append(errors, shortDescriptionErrors(campaignType, requirements, campaign.Descriptions)...)

	if requirements.BusinessName.applies() {
		if requirements.BusinessName.Required && !hasText(campaign.BusinessName) {
			errors = append(errors, fmt.Sprintf("%s campaigns require a business name", campaignType))
		} else if hasText(campaign.BusinessName) && textLength(*campaign.BusinessName) > requirements.BusinessName.MaxLength {
			errors = append(errors, fmt.Sprintf("Business name exceeds %d characters", requirements.BusinessName.MaxLength))
		}
	}

	if requirements.ImagesRequired && !campaign.Images.HasAny() {
		errors = append(errors, fmt.Sprintf("%s campaigns require at least one image", campaignType))
	}

	if requirements.FinalURLRequired && !hasText(campaign.FinalURL) {
		errors = append(errors, fmt.Sprintf("%s campaigns require a final URL", campaignType))
	}

	if requirements.KeywordsRequired && len(campaign.Keywords) == 0 {
		errors = append(errors, fmt.Sprintf("%s campaigns require keywords", campaignType))
	}

	if requirements.KeywordsUnique {
		errors = append(errors, keywordDuplicateErrors(campaign.Keywords)...)
	}

	if requirements.VideoURLRequired && !hasText(campaign.VideoURL) {
		errors = append(errors, fmt.Sprintf("%s campaigns require a video URL", campaignType))
	}

	if requirements.MerchantCenterIDRequired && !hasText(campaign.MerchantCenterID) {
		errors = append(errors, fmt.Sprintf("%s campaigns require a Merchant Center ID", campaignType))
	}

	errors = append(errors, biddingErrors(campaign)...)

	return errors
}

func apiRestrictionErrors(campaignType domain.CampaignType, requirements TypeRequirements) []string {
	if requirements.APICreationSupported {
		return nil
	}

	return []string{fmt.Sprintf(
		"%s campaigns cannot be created via the Google Ads API. Please use Google Ads UI or Google Ads Scripts.",
		campaignType,
	)}
}

func headlineErrors(campaignType domain.CampaignType, rule TextListRule, headlines []string) []string {
	errors := make([]string, 0)

	if len(headlines) < rule.Min {
		if campaignType == domain.CampaignTypeSearch {
			errors = append(errors, fmt.Sprintf(
				"%s campaigns require at least %d headlines (Responsive Search Ads minimum requirement)",
				campaignType, rule.Min,
			))
		} else {
			errors = append(errors, fmt.Sprintf(
				"%s campaigns require at least %d headline(s)", campaignType, rule.Min,
			))
		}
	}

	if rule.Max > 0 && len(headlines) > rule.Max {
		errors = append(errors, fmt.Sprintf(
			"%s campaigns allow at most %d headlines", campaignType, rule.Max,
		))
	}

	for i, headline := range headlines {
		if rule.MaxLength > 0 && textLength(headline) > rule.MaxLength {
			errors = append(errors, fmt.Sprintf(
				"Headline %d exceeds %d characters", i+1, rule.MaxLength,
			))
		}
	}

	return errors
}

func descriptionErrors(campaignType domain.CampaignType, rule TextListRule, descriptions []string) []string {
	errors := make([]string, 0)

	if len(descriptions) < rule.Min {
		if campaignType == domain.CampaignTypeSearch {
			errors = append(errors, fmt.Sprintf(
				"%s campaigns require at least %d descriptions (Responsive Search Ads minimum requirement)",
				campaignType, rule.Min,
			))
		} else {
			errors = append(errors, fmt.Sprintf(
				"%s campaigns require at least %d description(s)", campaignType, rule.Min,
			))
		}
	}

	if rule.Max > 0 && len(descriptions) > rule.Max {
		errors = append(errors, fmt.Sprintf(
			"%s campaigns allow at most %d descriptions", campaignType, rule.Max,
		))
	}

	for i, description := range descriptions {
		if rule.MaxLength > 0 && textLength(description) > rule.MaxLength {
			errors = append(errors, fmt.Sprintf(
				"Description %d exceeds %d characters", i+1, rule.MaxLength,
			))
		}
	}

	return errors
}

func shortDescriptionErrors(campaignType domain.CampaignType, requirements TypeRequirements, descriptions []string) []string {
	if !requirements.ShortDescriptionRequired || len(descriptions) == 0 {
		return nil
	}

	for _, description := range descriptions {
		if textLength(description) <= requirements.ShortDescriptionMaxLength {
			return nil
		}
	}

	return []string{fmt.Sprintf(
		"%s requires at least one description of %d characters or fewer (short description requirement)",
		campaignType, requirements.ShortDescriptionMaxLength,
	)}
}

// keywordDuplicateErrors compara palavras-chave normalizadas (sem espaços nas
// pontas, minúsculas). A primeira ocorrência não é marcada.
func keywordDuplicateErrors(keywords []string) []string {
	errors := make([]string, 0)
	seen := make(map[string]struct{}, len(keywords))

	for _, keyword := range keywords {
		normalized := strings.ToLower(strings.TrimSpace(keyword))

		if _, duplicated := seen[normalized]; duplicated {
			errors = append(errors, fmt.Sprintf("Duplicate keyword detected: '%s'", keyword))
		}

		seen[normalized] = struct{}{}
	}

	return errors
}

func biddingErrors(campaign *domain.Campaign) []string {
	if campaign.BiddingStrategy == nil || *campaign.BiddingStrategy == "" {
		return nil
	}

	errors := make([]string, 0)
	strategy := *campaign.BiddingStrategy

	if !strategy.ValidForType(campaign.CampaignType) {
		errors = append(errors, fmt.Sprintf(
			"Bidding strategy %s is not valid for %s campaigns", strategy, campaign.CampaignType,
		))
	}

	if strategy == domain.BiddingTargetCPA && (campaign.TargetCPA == nil || *campaign.TargetCPA == 0) {
		errors = append(errors, "Target CPA value is required for target_cpa bidding strategy")
	}

	if strategy == domain.BiddingTargetROAS && (campaign.TargetROAS == nil || *campaign.TargetROAS == 0) {
		errors = append(errors, "Target ROAS value is required for target_roas bidding strategy")
	}

	return errors
}

func hasText(s *string) bool {
	return s != nil && *s != ""
}

// textLength conta caracteres como o Google Ads conta, não bytes
func textLength(s string) int {
	return utf8.RuneCountInString(s)
}
