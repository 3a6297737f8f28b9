package campaigning

import (
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
)

// applyUpdate aplica os campos presentes no payload sobre a campanha e devolve
// os nomes dos que mudaram de valor, na ordem de domain.UpdatableFields
func applyUpdate(campaign *domain.Campaign, request *domain.UpdateCampaignRequest) ([]string, error) {
	changed := make([]string, 0)

	for _, field := range request.PresentFields() {
		fieldChanged, err := applyField(campaign, request, field)
		if err != nil {
			return nil, err
		}

		if fieldChanged {
			changed = append(changed, field)
		}
	}

	return changed, nil
}

func applyField(campaign *domain.Campaign, request *domain.UpdateCampaignRequest, field string) (bool, error) {
	switch field {
	case "name":
		// name não é anulável; null já foi rejeitado pela validação do payload
		if request.Name == nil || campaign.Name == *request.Name {
			return false, nil
		}
		campaign.Name = *request.Name
		return true, nil

	case "objective":
		if request.Objective == nil || campaign.Objective == domain.CampaignObjective(*request.Objective) {
			return false, nil
		}
		campaign.Objective = domain.CampaignObjective(*request.Objective)
		return true, nil

	case "campaign_type":
		if request.CampaignType == nil || campaign.CampaignType == domain.CampaignType(*request.CampaignType) {
			return false, nil
		}
		campaign.CampaignType = domain.CampaignType(*request.CampaignType)
		return true, nil

	case "daily_budget":
		if request.DailyBudget == nil || campaign.DailyBudget == *request.DailyBudget {
			return false, nil
		}
		campaign.DailyBudget = *request.DailyBudget
		return true, nil

	case "start_date":
		if request.StartDate == nil {
			return false, nil
		}
		parsed, err := domain.ParseDate(*request.StartDate)
		if err != nil {
			return false, NewCampaignError(ErrInvalidDateFormat, apiErrors.ErrInvalidFormat, "")
		}
		if campaign.StartDate.Equal(parsed.Time) {
			return false, nil
		}
		campaign.StartDate = parsed
		return true, nil

	case "end_date":
		newEnd, err := parseOptionalDate(request.EndDate)
		if err != nil {
			return false, err
		}
		if datePtrEqual(campaign.EndDate, newEnd) {
			return false, nil
		}
		campaign.EndDate = newEnd
		return true, nil

	case "ad_group_name":
		return assignStringPtr(&campaign.AdGroupName, request.AdGroupName), nil

	case "ad_headline":
		return assignStringPtr(&campaign.AdHeadline, request.AdHeadline), nil

	case "ad_description":
		return assignStringPtr(&campaign.AdDescription, request.AdDescription), nil

	case "asset_url":
		return assignStringPtr(&campaign.AssetURL, request.AssetURL), nil

	case "final_url":
		return assignStringPtr(&campaign.FinalURL, request.FinalURL), nil

	case "bidding_strategy":
		newStrategy := toBiddingStrategy(request.BiddingStrategy)
		if strategyPtrEqual(campaign.BiddingStrategy, newStrategy) {
			return false, nil
		}
		campaign.BiddingStrategy = newStrategy
		return true, nil

	case "target_cpa":
		if int64PtrEqual(campaign.TargetCPA, request.TargetCPA) {
			return false, nil
		}
		campaign.TargetCPA = request.TargetCPA
		return true, nil

	case "target_roas":
		if float64PtrEqual(campaign.TargetROAS, request.TargetROAS) {
			return false, nil
		}
		campaign.TargetROAS = request.TargetROAS
		return true, nil

	case "headlines":
		if stringsEqual(campaign.Headlines, request.Headlines) {
			return false, nil
		}
		campaign.Headlines = request.Headlines
		return true, nil

	case "long_headline":
		return assignStringPtr(&campaign.LongHeadline, request.LongHeadline), nil

	case "descriptions":
		if stringsEqual(campaign.Descriptions, request.Descriptions) {
			return false, nil
		}
		campaign.Descriptions = request.Descriptions
		return true, nil

	case "business_name":
		return assignStringPtr(&campaign.BusinessName, request.BusinessName), nil

	case "images":
		newImages := domain.CampaignImages{}
		if request.Images != nil {
			newImages = *request.Images
		}
		if imagesEqual(campaign.Images, newImages) {
			return false, nil
		}
		campaign.Images = newImages
		return true, nil

	case "keywords":
		if stringsEqual(campaign.Keywords, request.Keywords) {
			return false, nil
		}
		campaign.Keywords = request.Keywords
		return true, nil

	case "video_url":
		return assignStringPtr(&campaign.VideoURL, request.VideoURL), nil

	case "merchant_center_id":
		return assignStringPtr(&campaign.MerchantCenterID, request.MerchantCenterID), nil
	}

	return false, nil
}

func parseOptionalDate(value *string) (*domain.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := domain.ParseDate(*value)
	if err != nil {
		return nil, NewCampaignError(ErrInvalidDateFormat, apiErrors.ErrInvalidFormat, "")
	}

	return &parsed, nil
}

func assignStringPtr(target **string, value *string) bool {
	if stringPtrEqual(*target, value) {
		return false
	}

	*target = value

	return true
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func strategyPtrEqual(a, b *domain.BiddingStrategy) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func float64PtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func datePtrEqual(a, b *domain.Date) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(b.Time)
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func imagesEqual(a, b domain.CampaignImages) bool {
	return stringPtrEqual(a.LandscapeURL, b.LandscapeURL) &&
		stringPtrEqual(a.SquareURL, b.SquareURL) &&
		stringPtrEqual(a.LogoURL, b.LogoURL)
}
