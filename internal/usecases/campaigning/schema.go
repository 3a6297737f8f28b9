package campaigning

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// Limites de tamanho dos campos do payload. Os limites por tipo de campanha
// (título de 30 para SEARCH, por exemplo) são responsabilidade da validação de
// publicação; aqui vale o teto do campo no banco.
const (
	maxNameLength          = 255
	maxHeadlineLength      = 40
	maxLongHeadlineLength  = 90
	maxDescriptionLength   = 90
	maxBusinessNameLength  = 25
	maxKeywordLength       = 80
	maxMerchantIDLength    = 100
	maxAdGroupNameLength   = 255
	maxAdHeadlineLength    = 255
	maxAdDescriptionLength = 1000
)

// ValidationDetails agrupa as mensagens de validação por campo do payload,
// no formato devolvido pela API em {"error": "Validation error", "details": ...}
type ValidationDetails map[string][]string

func (d ValidationDetails) add(field, message string) {
	d[field] = append(d[field], message)
}

func (d ValidationDetails) Empty() bool {
	return len(d) == 0
}

// ValidateCreateRequest confere o payload de criação de campanha. Todas as
// violações são acumuladas; o mapa vazio indica payload aceito.
func ValidateCreateRequest(request *domain.CreateCampaignRequest) ValidationDetails {
	details := make(ValidationDetails)

	if request.Name == nil {
		details.add("name", "Campaign name is required")
	} else if textLength(*request.Name) < 1 || textLength(*request.Name) > maxNameLength {
		details.add("name", fmt.Sprintf("Name must be between 1 and %d characters", maxNameLength))
	}

	if request.Objective == nil {
		details.add("objective", "Objective is required")
	} else if !domain.CampaignObjective(*request.Objective).Valid() {
		details.add("objective", "Objective must be one of: SALES, LEADS, WEBSITE_TRAFFIC")
	}

	// O tipo ausente assume DEMAND_GEN, inclusive para a checagem de
	// compatibilidade da estratégia de lance
	campaignType := domain.CampaignTypeDemandGen
	if request.CampaignType != nil {
		campaignType = domain.CampaignType(*request.CampaignType)
		if !campaignType.Valid() {
			details.add("campaign_type", "Invalid campaign type")
		}
	}

	if request.DailyBudget == nil {
		details.add("daily_budget", "Daily budget is required")
	} else if *request.DailyBudget < 1 {
		details.add("daily_budget", "Daily budget must be greater than 0")
	}

	startDate, startOK := validateDate(details, "start_date", request.StartDate)
	if request.StartDate == nil {
		details.add("start_date", "Start date is required")
	} else if startOK && startDate.Before(domain.Today()) {
		details.add("start_date", "Start date cannot be in the past")
	}

	endDate, endOK := validateDate(details, "end_date", request.EndDate)
	if request.EndDate != nil && endOK {
		if endDate.Before(domain.Today()) {
			details.add("end_date", "End date cannot be in the past")
		}
		if startOK && request.StartDate != nil && endDate.Before(startDate) {
			details.add("end_date", "End date must be after start date")
		}
	}

	validateBiddingFields(details, request.BiddingStrategy, request.TargetCPA, request.TargetROAS)

	if hasValue(request.BiddingStrategy) && campaignType.Valid() {
		strategy := domain.BiddingStrategy(*request.BiddingStrategy)
		if strategy.Valid() && !strategy.ValidForType(campaignType) {
			details.add("bidding_strategy", fmt.Sprintf(
				"Bidding strategy %s is not valid for %s campaigns. Valid options: %s",
				strategy, campaignType, joinStrategies(domain.AllowedBiddingStrategies(campaignType)),
			))
		}

		if strategy == domain.BiddingTargetCPA && request.TargetCPA == nil {
			details.add("target_cpa", "Target CPA value is required when using target_cpa bidding strategy")
		}

		if strategy == domain.BiddingTargetROAS && request.TargetROAS == nil {
			details.add("target_roas", "Target ROAS value is required when using target_roas bidding strategy")
		}
	}

	validateCreativeFields(details, creativeFields{
		Headlines:        request.Headlines,
		LongHeadline:     request.LongHeadline,
		Descriptions:     request.Descriptions,
		BusinessName:     request.BusinessName,
		Images:           request.Images,
		Keywords:         request.Keywords,
		VideoURL:         request.VideoURL,
		MerchantCenterID: request.MerchantCenterID,
		AdGroupName:      request.AdGroupName,
		AdHeadline:       request.AdHeadline,
		AdDescription:    request.AdDescription,
		AssetURL:         request.AssetURL,
		FinalURL:         request.FinalURL,
	})

	return details
}

// ValidateUpdateRequest confere o payload de atualização. Apenas os campos
// presentes no payload são validados; null limpa campos anuláveis e é
// rejeitado nos demais.
func ValidateUpdateRequest(request *domain.UpdateCampaignRequest) ValidationDetails {
	details := make(ValidationDetails)

	if request.Has("name") {
		if request.Name == nil {
			details.add("name", "Field may not be null")
		} else if textLength(*request.Name) < 1 || textLength(*request.Name) > maxNameLength {
			details.add("name", fmt.Sprintf("Name must be between 1 and %d characters", maxNameLength))
		}
	}

	if request.Has("objective") {
		if request.Objective == nil {
			details.add("objective", "Field may not be null")
		} else if !domain.CampaignObjective(*request.Objective).Valid() {
			details.add("objective", "Objective must be one of: SALES, LEADS, WEBSITE_TRAFFIC")
		}
	}

	if request.Has("campaign_type") {
		if request.CampaignType == nil {
			details.add("campaign_type", "Field may not be null")
		} else if !domain.CampaignType(*request.CampaignType).Valid() {
			details.add("campaign_type", "Invalid campaign type")
		}
	}

	if request.Has("daily_budget") {
		if request.DailyBudget == nil {
			details.add("daily_budget", "Field may not be null")
		} else if *request.DailyBudget < 1 {
			details.add("daily_budget", "Daily budget must be greater than 0")
		}
	}

	var startDate domain.Date
	startOK := false

	if request.Has("start_date") {
		if request.StartDate == nil {
			details.add("start_date", "Field may not be null")
		} else {
			startDate, startOK = validateDate(details, "start_date", request.StartDate)
			if startOK && startDate.Before(domain.Today()) {
				details.add("start_date", "Start date cannot be in the past")
			}
		}
	}

	if request.Has("end_date") && request.EndDate != nil {
		endDate, endOK := validateDate(details, "end_date", request.EndDate)
		if endOK {
			if endDate.Before(domain.Today()) {
				details.add("end_date", "End date cannot be in the past")
			}
			if startOK && endDate.Before(startDate) {
				details.add("end_date", "End date must be after start date")
			}
		}
	}

	// Na atualização a compatibilidade da estratégia com o tipo não é checada
	// aqui; a validação de publicação cobre a combinação final persistida
	validateBiddingFields(details, request.BiddingStrategy, request.TargetCPA, request.TargetROAS)

	validateCreativeFields(details, creativeFields{
		Headlines:        request.Headlines,
		LongHeadline:     request.LongHeadline,
		Descriptions:     request.Descriptions,
		BusinessName:     request.BusinessName,
		Images:           request.Images,
		Keywords:         request.Keywords,
		VideoURL:         request.VideoURL,
		MerchantCenterID: request.MerchantCenterID,
		AdGroupName:      request.AdGroupName,
		AdHeadline:       request.AdHeadline,
		AdDescription:    request.AdDescription,
		AssetURL:         request.AssetURL,
		FinalURL:         request.FinalURL,
	})

	return details
}

// creativeFields reúne os campos de criativo comuns aos dois payloads
type creativeFields struct {
	Headlines        []string
	LongHeadline     *string
	Descriptions     []string
	BusinessName     *string
	Images           *domain.CampaignImages
	Keywords         []string
	VideoURL         *string
	MerchantCenterID *string
	AdGroupName      *string
	AdHeadline       *string
	AdDescription    *string
	AssetURL         *string
	FinalURL         *string
}

func validateCreativeFields(details ValidationDetails, fields creativeFields) {
	for i, headline := range fields.Headlines {
		if textLength(headline) > maxHeadlineLength {
			details.add("headlines", fmt.Sprintf("Headline %d must be at most %d characters", i+1, maxHeadlineLength))
		}
	}

	if hasValue(fields.LongHeadline) && textLength(*fields.LongHeadline) > maxLongHeadlineLength {
		details.add("long_headline", fmt.Sprintf("Long headline must be at most %d characters", maxLongHeadlineLength))
	}

	for i, description := range fields.Descriptions {
		if textLength(description) > maxDescriptionLength {
			details.add("descriptions", fmt.Sprintf("Description %d must be at most %d characters", i+1, maxDescriptionLength))
		}
	}

	if hasValue(fields.BusinessName) && textLength(*fields.BusinessName) > maxBusinessNameLength {
		details.add("business_name", fmt.Sprintf("Business name must be at most %d characters", maxBusinessNameLength))
	}

	if fields.Images != nil {
		validateURLField(details, "images.landscape_url", fields.Images.LandscapeURL)
		validateURLField(details, "images.square_url", fields.Images.SquareURL)
		validateURLField(details, "images.logo_url", fields.Images.LogoURL)
	}

	for i, keyword := range fields.Keywords {
		if textLength(keyword) > maxKeywordLength {
			details.add("keywords", fmt.Sprintf("Keyword %d must be at most %d characters", i+1, maxKeywordLength))
		}
	}

	validateURLField(details, "video_url", fields.VideoURL)

	if hasValue(fields.MerchantCenterID) && textLength(*fields.MerchantCenterID) > maxMerchantIDLength {
		details.add("merchant_center_id", fmt.Sprintf("Merchant Center ID must be at most %d characters", maxMerchantIDLength))
	}

	if hasValue(fields.AdGroupName) && textLength(*fields.AdGroupName) > maxAdGroupNameLength {
		details.add("ad_group_name", fmt.Sprintf("Ad group name must be at most %d characters", maxAdGroupNameLength))
	}

	if hasValue(fields.AdHeadline) && textLength(*fields.AdHeadline) > maxAdHeadlineLength {
		details.add("ad_headline", fmt.Sprintf("Ad headline must be at most %d characters", maxAdHeadlineLength))
	}

	if hasValue(fields.AdDescription) && textLength(*fields.AdDescription) > maxAdDescriptionLength {
		details.add("ad_description", fmt.Sprintf("Ad description must be at most %d characters", maxAdDescriptionLength))
	}

	validateURLField(details, "asset_url", fields.AssetURL)
	validateURLField(details, "final_url", fields.FinalURL)
}

func validateBiddingFields(details ValidationDetails, strategy *string, targetCPA *int64, targetROAS *float64) {
	if hasValue(strategy) && !domain.BiddingStrategy(*strategy).Valid() {
		details.add("bidding_strategy", "Invalid bidding strategy")
	}

	if targetCPA != nil && *targetCPA < 1 {
		details.add("target_cpa", "Target CPA must be greater than 0")
	}

	if targetROAS != nil && *targetROAS < 0.01 {
		details.add("target_roas", "Target ROAS must be greater than 0")
	}
}

// validateDate confere o formato YYYY-MM-DD; valores nulos não geram erro aqui
func validateDate(details ValidationDetails, field string, value *string) (domain.Date, bool) {
	if value == nil {
		return domain.Date{}, false
	}

	parsed, err := domain.ParseDate(*value)
	if err != nil {
		details.add(field, "Invalid date format. Use YYYY-MM-DD")
		return domain.Date{}, false
	}

	return parsed, true
}

func validateURLField(details ValidationDetails, field string, value *string) {
	if hasValue(value) && !validURL(*value) {
		details.add(field, "Invalid URL format")
	}
}

// validURL aceita apenas URLs http(s) absolutas
func validURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func joinStrategies(strategies []domain.BiddingStrategy) string {
	names := make([]string, 0, len(strategies))
	for _, strategy := range strategies {
		names = append(names, string(strategy))
	}

	return strings.Join(names, ", ")
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}

// textLength conta caracteres, não bytes
func textLength(s string) int {
	return utf8.RuneCountInString(s)
}
