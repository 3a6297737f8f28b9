package gadsdomain

// Enums da API REST do Google Ads v22 usados na criação de campanhas
const (
	CampaignStatusEnabled = "ENABLED"
	CampaignStatusPaused  = "PAUSED"

	BudgetDeliveryStandard = "STANDARD"

	EuPoliticalAdvertisingDoesNotContain = "DOES_NOT_CONTAIN_EU_POLITICAL_ADVERTISING"

	TargetFrequencyTimeUnitWeekly = "WEEKLY"
)

// CampaignBudget é o orçamento diário da campanha. Valores monetários
// trafegam em micros e a API serializa int64 como string
type CampaignBudget struct {
	ResourceName     string `json:"resourceName,omitempty"`
	Name             string `json:"name,omitempty"`
	AmountMicros     int64  `json:"amountMicros,string"`
	DeliveryMethod   string `json:"deliveryMethod,omitempty"`
	ExplicitlyShared bool   `json:"explicitlyShared"`
}

// Campaign é o payload de campanha do endpoint campaigns:mutate. As
// estratégias de lance formam um oneof: no máximo uma pode estar presente.
type Campaign struct {
	ResourceName                   string           `json:"resourceName,omitempty"`
	Name                           string           `json:"name,omitempty"`
	Status                         string           `json:"status,omitempty"`
	CampaignBudget                 string           `json:"campaignBudget,omitempty"`
	AdvertisingChannelType         string           `json:"advertisingChannelType,omitempty"`
	StartDate                      string           `json:"startDate,omitempty"`
	EndDate                        string           `json:"endDate,omitempty"`
	ContainsEuPoliticalAdvertising string           `json:"containsEuPoliticalAdvertising,omitempty"`
	NetworkSettings                *NetworkSettings `json:"networkSettings,omitempty"`
	ShoppingSetting                *ShoppingSetting `json:"shoppingSetting,omitempty"`

	MaximizeConversions     *MaximizeConversions     `json:"maximizeConversions,omitempty"`
	MaximizeConversionValue *MaximizeConversionValue `json:"maximizeConversionValue,omitempty"`
	TargetSpend             *TargetSpend             `json:"targetSpend,omitempty"`
	TargetCpa               *TargetCpa               `json:"targetCpa,omitempty"`
	TargetRoas              *TargetRoas              `json:"targetRoas,omitempty"`
	ManualCpc               *ManualCpc               `json:"manualCpc,omitempty"`
	ManualCpm               *ManualCpm               `json:"manualCpm,omitempty"`
	TargetCpm               *TargetCpm               `json:"targetCpm,omitempty"`
}

type NetworkSettings struct {
	TargetGoogleSearch         bool `json:"targetGoogleSearch"`
	TargetSearchNetwork        bool `json:"targetSearchNetwork"`
	TargetContentNetwork       bool `json:"targetContentNetwork"`
	TargetPartnerSearchNetwork bool `json:"targetPartnerSearchNetwork"`
}

// ShoppingSetting liga a campanha ao Merchant Center. O campo sales_country
// foi descontinuado na v22; feed_label o substitui.
type ShoppingSetting struct {
	MerchantID       int64  `json:"merchantId,string"`
	FeedLabel        string `json:"feedLabel,omitempty"`
	CampaignPriority int    `json:"campaignPriority"`
}

// Estruturas de estratégia de lance. Uma struct vazia marca o oneof sem
// definir alvo (a API interpreta campos zerados como ausentes).
type MaximizeConversions struct {
	TargetCpaMicros int64 `json:"targetCpaMicros,string,omitempty"`
}

type MaximizeConversionValue struct {
	TargetRoas float64 `json:"targetRoas,omitempty"`
}

type TargetSpend struct {
	TargetSpendMicros int64 `json:"targetSpendMicros,string,omitempty"`
}

type TargetCpa struct {
	TargetCpaMicros int64 `json:"targetCpaMicros,string"`
}

type TargetRoas struct {
	TargetRoas float64 `json:"targetRoas"`
}

type ManualCpc struct {
	EnhancedCpcEnabled bool `json:"enhancedCpcEnabled"`
}

type ManualCpm struct{}

type TargetCpm struct {
	TargetFrequencyGoal *TargetFrequencyGoal `json:"targetFrequencyGoal,omitempty"`
}

type TargetFrequencyGoal struct {
	TargetCount int64  `json:"targetCount,string"`
	TimeUnit    string `json:"timeUnit"`
}
