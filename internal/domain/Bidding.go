package domain

type BiddingStrategy string

const (
	BiddingMaximizeConversions     BiddingStrategy = "maximize_conversions"
	BiddingMaximizeConversionValue BiddingStrategy = "maximize_conversion_value"
	BiddingMaximizeClicks          BiddingStrategy = "maximize_clicks"
	BiddingTargetCPA               BiddingStrategy = "target_cpa"
	BiddingTargetROAS              BiddingStrategy = "target_roas"
	BiddingTargetCPC               BiddingStrategy = "target_cpc"
	BiddingManualCPC               BiddingStrategy = "manual_cpc"
	BiddingManualCPM               BiddingStrategy = "manual_cpm"
	BiddingTargetCPM               BiddingStrategy = "target_cpm"
)

var AllBiddingStrategies = []BiddingStrategy{
	BiddingMaximizeConversions,
	BiddingMaximizeConversionValue,
	BiddingMaximizeClicks,
	BiddingTargetCPA,
	BiddingTargetROAS,
	BiddingTargetCPC,
	BiddingManualCPC,
	BiddingManualCPM,
	BiddingTargetCPM,
}

func (b BiddingStrategy) Valid() bool {
	for _, strategy := range AllBiddingStrategies {
		if b == strategy {
			return true
		}
	}

	return false
}

// biddingStrategiesByType restringe as estratégias aceitas pelo Google Ads
// para cada tipo de campanha
var biddingStrategiesByType = map[CampaignType][]BiddingStrategy{
	CampaignTypeDemandGen: {
		BiddingMaximizeConversions,
		BiddingTargetCPA,
		BiddingMaximizeClicks,
		BiddingTargetCPC,
	},
	CampaignTypePerformanceMax: {
		BiddingMaximizeConversions,
		BiddingMaximizeConversionValue,
	},
	CampaignTypeSearch: {
		BiddingManualCPC,
		BiddingMaximizeClicks,
		BiddingTargetCPA,
		BiddingMaximizeConversions,
	},
	CampaignTypeDisplay: {
		BiddingManualCPC,
		BiddingManualCPM,
		BiddingMaximizeConversions,
		BiddingTargetCPA,
	},
	CampaignTypeVideo: {
		BiddingMaximizeConversions,
		BiddingTargetCPA,
		BiddingTargetCPM,
	},
	CampaignTypeShopping: {
		BiddingMaximizeClicks,
		BiddingTargetROAS,
		BiddingManualCPC,
	},
}

// AllowedBiddingStrategies devolve as estratégias válidas para o tipo de campanha
func AllowedBiddingStrategies(campaignType CampaignType) []BiddingStrategy {
	return biddingStrategiesByType[campaignType]
}

func (b BiddingStrategy) ValidForType(campaignType CampaignType) bool {
	for _, strategy := range AllowedBiddingStrategies(campaignType) {
		if b == strategy {
			return true
		}
	}

	return false
}

// DefaultBiddingStrategy é a estratégia aplicada na publicação quando a
// campanha não define nenhuma
func DefaultBiddingStrategy(campaignType CampaignType) BiddingStrategy {
	switch campaignType {
	case CampaignTypeDemandGen, CampaignTypePerformanceMax:
		return BiddingMaximizeConversions
	case CampaignTypeSearch, CampaignTypeDisplay:
		return BiddingManualCPC
	case CampaignTypeVideo:
		return BiddingTargetCPM
	case CampaignTypeShopping:
		return BiddingMaximizeClicks
	}

	return BiddingManualCPC
}
