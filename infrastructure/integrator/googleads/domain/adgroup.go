package gadsdomain

const (
	AdGroupStatusEnabled             = "ENABLED"
	AdGroupTypeDisplayStandard       = "DISPLAY_STANDARD"
	AdGroupTypeSearchStandard        = "SEARCH_STANDARD"
	AdGroupTypeVideoTrueViewInStream = "VIDEO_TRUE_VIEW_IN_STREAM"
	AdGroupTypeShoppingProductAds    = "SHOPPING_PRODUCT_ADS"

	AdGroupAdStatusEnabled = "ENABLED"

	CriterionStatusEnabled = "ENABLED"
	KeywordMatchTypeBroad  = "BROAD"
)

type AdGroup struct {
	ResourceName string `json:"resourceName,omitempty"`
	Name         string `json:"name,omitempty"`
	Campaign     string `json:"campaign,omitempty"`
	Status       string `json:"status,omitempty"`
	Type         string `json:"type,omitempty"`
	CpcBidMicros int64  `json:"cpcBidMicros,string,omitempty"`
	CpmBidMicros int64  `json:"cpmBidMicros,string,omitempty"`
}

type AdGroupAd struct {
	ResourceName string `json:"resourceName,omitempty"`
	AdGroup      string `json:"adGroup,omitempty"`
	Status       string `json:"status,omitempty"`
	Ad           *Ad    `json:"ad,omitempty"`
}

// Ad carrega o criativo; o tipo concreto do anúncio é um oneof
type Ad struct {
	FinalURLs           []string             `json:"finalUrls,omitempty"`
	ResponsiveDisplayAd *ResponsiveDisplayAd `json:"responsiveDisplayAd,omitempty"`
	ResponsiveSearchAd  *ResponsiveSearchAd  `json:"responsiveSearchAd,omitempty"`
	VideoAd             *VideoAd             `json:"videoAd,omitempty"`
}

type ResponsiveDisplayAd struct {
	Headlines             []AdTextAsset  `json:"headlines,omitempty"`
	LongHeadline          *AdTextAsset   `json:"longHeadline,omitempty"`
	Descriptions          []AdTextAsset  `json:"descriptions,omitempty"`
	BusinessName          string         `json:"businessName,omitempty"`
	MarketingImages       []AdImageAsset `json:"marketingImages,omitempty"`
	SquareMarketingImages []AdImageAsset `json:"squareMarketingImages,omitempty"`
	LogoImages            []AdImageAsset `json:"logoImages,omitempty"`
}

type ResponsiveSearchAd struct {
	Headlines    []AdTextAsset `json:"headlines,omitempty"`
	Descriptions []AdTextAsset `json:"descriptions,omitempty"`
	Path1        string        `json:"path1,omitempty"`
	Path2        string        `json:"path2,omitempty"`
}

type VideoAd struct {
	Video    *AdVideoAsset                `json:"video,omitempty"`
	InStream *VideoTrueViewInStreamAdInfo `json:"inStream,omitempty"`
}

type VideoTrueViewInStreamAdInfo struct {
	ActionHeadline string `json:"actionHeadline,omitempty"`
}

type AdTextAsset struct {
	Text string `json:"text"`
}

type AdImageAsset struct {
	Asset string `json:"asset"`
}

type AdVideoAsset struct {
	Asset string `json:"asset"`
}

// AdGroupCriterion adiciona uma palavra-chave ao grupo de anúncios
type AdGroupCriterion struct {
	ResourceName string       `json:"resourceName,omitempty"`
	AdGroup      string       `json:"adGroup,omitempty"`
	Status       string       `json:"status,omitempty"`
	Keyword      *KeywordInfo `json:"keyword,omitempty"`
}

type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}
