package googleads

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

const (
	defaultBusinessName = "Campaign Manager"
	defaultFinalURL     = "https://example.com"

	// Carimbo anexado aos nomes de recursos para evitar colisão de nomes na conta
	resourceTimestampLayout = "20060102150405"
	googleDateLayout        = "20060102"
)

var (
	ErrNotConfigured = errors.New("Google Ads API is not configured")

	ErrVideoNotSupported = errors.New("VIDEO campaigns cannot be created via the Google Ads API. Please use Google Ads UI or Google Ads Scripts to create VIDEO campaigns.")
)

// Integrator publica e controla campanhas na conta configurada do Google Ads
type Integrator interface {
	IsConfigured() bool
	PublishCampaign(campaign *domain.Campaign) (*domain.GoogleAdsIDs, error)
	PauseCampaign(googleCampaignID string) error
	EnableCampaign(googleCampaignID string) error
}

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client gadsclient.Client

	now      func() time.Time
	download func(url string) ([]byte, string, error)
}

func New(cfg *config.Config, client gadsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:      cfg,
		Client:   client,
		now:      time.Now,
		download: utils.MakeRequestWithContentType,
	}
}

// IsConfigured indica se todas as credenciais do Google Ads estão presentes
func (g *GoogleAdsIntegrator) IsConfigured() bool {
	return g.cfg.GoogleAds.Configured()
}

// PublishCampaign cria a campanha completa no Google Ads: orçamento, campanha,
// grupo de anúncios ou asset group e criativos. A campanha remota nasce
// pausada; o anunciante ativa quando quiser.
func (g *GoogleAdsIntegrator) PublishCampaign(campaign *domain.Campaign) (*domain.GoogleAdsIDs, error) {
	if !g.IsConfigured() {
		return nil, ErrNotConfigured
	}

	if campaign.CampaignType == domain.CampaignTypeVideo {
		return nil, ErrVideoNotSupported
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaign.ID,
		"campaign_type": campaign.CampaignType,
	}).Info("publish: creating campaign on Google Ads")

	timestamp := g.now().Format(resourceTimestampLayout)

	budgetResource, err := g.createCampaignBudget(campaign, timestamp)
	if err != nil {
		return nil, err
	}

	campaignResource, err := g.createCampaign(campaign, budgetResource, timestamp)
	if err != nil {
		return nil, err
	}

	ids := &domain.GoogleAdsIDs{CampaignID: lastPathSegment(campaignResource)}

	if campaign.CampaignType == domain.CampaignTypePerformanceMax {
		assetGroupID, err := g.createPerformanceMaxAssets(campaign, campaignResource, timestamp)
		if err != nil {
			return nil, err
		}

		// Performance Max não tem grupo de anúncios; o asset group ocupa o lugar
		ids.AdGroupID = assetGroupID

		return ids, nil
	}

	adGroupResource, err := g.createAdGroup(campaign, campaignResource, timestamp)
	if err != nil {
		return nil, err
	}

	ids.AdGroupID = lastPathSegment(adGroupResource)

	adResource, err := g.createAdForType(campaign, adGroupResource, timestamp)
	if err != nil {
		return nil, err
	}

	if adResource != "" {
		adID := lastPathSegment(adResource)
		ids.AdID = &adID
	}

	if campaign.CampaignType == domain.CampaignTypeSearch && len(campaign.Keywords) > 0 {
		if err := g.createKeywords(campaign.Keywords, adGroupResource); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":        campaign.ID,
		"google_campaign_id": ids.CampaignID,
	}).Info("publish: campaign published on Google Ads")

	return ids, nil
}

// PauseCampaign pausa a veiculação da campanha no Google Ads
func (g *GoogleAdsIntegrator) PauseCampaign(googleCampaignID string) error {
	return g.updateCampaignStatus(googleCampaignID, gadsdomain.CampaignStatusPaused)
}

// EnableCampaign retoma a veiculação da campanha no Google Ads
func (g *GoogleAdsIntegrator) EnableCampaign(googleCampaignID string) error {
	return g.updateCampaignStatus(googleCampaignID, gadsdomain.CampaignStatusEnabled)
}

func (g *GoogleAdsIntegrator) updateCampaignStatus(googleCampaignID, status string) error {
	if !g.IsConfigured() {
		return ErrNotConfigured
	}

	operation := gadsdomain.CampaignOperation{
		Update: &gadsdomain.Campaign{
			ResourceName: g.Client.CampaignPath(googleCampaignID),
			Status:       status,
		},
		UpdateMask: "status",
	}

	if _, err := g.Client.MutateCampaigns([]gadsdomain.CampaignOperation{operation}); err != nil {
		return newMutateError("campaign status", err)
	}

	logrus.WithFields(logrus.Fields{
		"google_campaign_id": googleCampaignID,
		"status":             status,
	}).Info("publish: campaign status updated on Google Ads")

	return nil
}

func (g *GoogleAdsIntegrator) createCampaignBudget(campaign *domain.Campaign, timestamp string) (string, error) {
	operation := gadsdomain.CampaignBudgetOperation{
		Create: &gadsdomain.CampaignBudget{
			Name:             fmt.Sprintf("Budget for %s - %s", campaign.Name, timestamp),
			AmountMicros:     campaign.DailyBudget,
			DeliveryMethod:   gadsdomain.BudgetDeliveryStandard,
			ExplicitlyShared: false,
		},
	}

	response, err := g.Client.MutateCampaignBudgets([]gadsdomain.CampaignBudgetOperation{operation})
	if err != nil {
		return "", newMutateError("campaign budget", err)
	}

	resource := response.First()
	logrus.WithField("resource_name", resource).Info("publish: campaign budget created")

	return resource, nil
}

func (g *GoogleAdsIntegrator) createCampaign(campaign *domain.Campaign, budgetResource, timestamp string) (string, error) {
	create := &gadsdomain.Campaign{
		Name:                           fmt.Sprintf("%s - %s", campaign.Name, timestamp),
		Status:                         gadsdomain.CampaignStatusPaused,
		CampaignBudget:                 budgetResource,
		AdvertisingChannelType:         channelTypeFor(campaign.CampaignType),
		ContainsEuPoliticalAdvertising: gadsdomain.EuPoliticalAdvertisingDoesNotContain,
		NetworkSettings:                networkSettingsFor(campaign.CampaignType),
	}

	if !campaign.StartDate.IsZero() {
		create.StartDate = campaign.StartDate.Format(googleDateLayout)
	}

	if campaign.EndDate != nil && !campaign.EndDate.IsZero() {
		create.EndDate = campaign.EndDate.Format(googleDateLayout)
	}

	applyBiddingStrategy(create, campaign)

	if campaign.CampaignType == domain.CampaignTypeShopping && hasText(campaign.MerchantCenterID) {
		merchantID, err := strconv.ParseInt(*campaign.MerchantCenterID, 10, 64)
		if err != nil {
			return "", fmt.Errorf("Invalid Merchant Center ID: %s", *campaign.MerchantCenterID)
		}

		create.ShoppingSetting = &gadsdomain.ShoppingSetting{
			MerchantID:       merchantID,
			FeedLabel:        "US",
			CampaignPriority: 0,
		}
	}

	response, err := g.Client.MutateCampaigns([]gadsdomain.CampaignOperation{{Create: create}})
	if err != nil {
		return "", newMutateError("campaign", err)
	}

	resource := response.First()
	logrus.WithFields(logrus.Fields{
		"resource_name": resource,
		"channel_type":  create.AdvertisingChannelType,
	}).Info("publish: campaign created")

	return resource, nil
}

func (g *GoogleAdsIntegrator) createAdGroup(campaign *domain.Campaign, campaignResource, timestamp string) (string, error) {
	name := fmt.Sprintf("%s Ad Group", campaign.Name)
	if hasText(campaign.AdGroupName) {
		name = *campaign.AdGroupName
	}

	create := &gadsdomain.AdGroup{
		Name:     fmt.Sprintf("%s - %s", name, timestamp),
		Campaign: campaignResource,
		Status:   gadsdomain.AdGroupStatusEnabled,
		Type:     adGroupTypeFor(campaign.CampaignType),
	}

	switch campaign.CampaignType {
	case domain.CampaignTypeSearch, domain.CampaignTypeDisplay:
		create.CpcBidMicros = 1000000
	case domain.CampaignTypeVideo:
		create.CpmBidMicros = 10000000
	}

	response, err := g.Client.MutateAdGroups([]gadsdomain.AdGroupOperation{{Create: create}})
	if err != nil {
		return "", newMutateError("ad group", err)
	}

	resource := response.First()
	logrus.WithFields(logrus.Fields{
		"resource_name": resource,
		"type":          create.Type,
	}).Info("publish: ad group created")

	return resource, nil
}

// createAdForType cria o anúncio adequado ao tipo da campanha. Campanhas de
// Shopping não têm anúncio próprio: os produtos vêm do feed do Merchant Center.
func (g *GoogleAdsIntegrator) createAdForType(campaign *domain.Campaign, adGroupResource, timestamp string) (string, error) {
	switch campaign.CampaignType {
	case domain.CampaignTypeSearch:
		return g.createResponsiveSearchAd(campaign, adGroupResource)
	case domain.CampaignTypeVideo:
		return g.createVideoAd(campaign, adGroupResource, timestamp)
	case domain.CampaignTypeShopping:
		return "", nil
	}

	return g.createResponsiveDisplayAd(campaign, adGroupResource, timestamp)
}

func (g *GoogleAdsIntegrator) createResponsiveDisplayAd(campaign *domain.Campaign, adGroupResource, timestamp string) (string, error) {
	images := g.uploadCampaignImages(campaign, "Display", timestamp)

	if images["landscape"] == "" && images["square"] == "" {
		return "", errors.New("Responsive Display Ads require at least one marketing image (landscape_url or square_url). Please provide image URLs.")
	}

	displayAd := &gadsdomain.ResponsiveDisplayAd{
		LongHeadline: &gadsdomain.AdTextAsset{Text: truncate(campaignLongHeadline(campaign), 90)},
		BusinessName: truncate(campaignBusinessName(campaign), 25),
	}

	for _, headline := range capList(campaignHeadlines(campaign), 5) {
		displayAd.Headlines = append(displayAd.Headlines, gadsdomain.AdTextAsset{Text: truncate(headline, 30)})
	}

	for _, description := range capList(campaignDescriptions(campaign), 5) {
		displayAd.Descriptions = append(displayAd.Descriptions, gadsdomain.AdTextAsset{Text: truncate(description, 90)})
	}

	if images["landscape"] != "" {
		displayAd.MarketingImages = append(displayAd.MarketingImages, gadsdomain.AdImageAsset{Asset: images["landscape"]})
	}

	if images["square"] != "" {
		displayAd.SquareMarketingImages = append(displayAd.SquareMarketingImages, gadsdomain.AdImageAsset{Asset: images["square"]})
	}

	if images["logo"] != "" {
		displayAd.LogoImages = append(displayAd.LogoImages, gadsdomain.AdImageAsset{Asset: images["logo"]})
	}

	create := &gadsdomain.AdGroupAd{
		AdGroup: adGroupResource,
		Status:  gadsdomain.AdGroupAdStatusEnabled,
		Ad: &gadsdomain.Ad{
			FinalURLs:           []string{campaignFinalURL(campaign)},
			ResponsiveDisplayAd: displayAd,
		},
	}

	response, err := g.Client.MutateAdGroupAds([]gadsdomain.AdGroupAdOperation{{Create: create}})
	if err != nil {
		return "", newMutateError("responsive display ad", err)
	}

	resource := response.First()
	logrus.WithField("resource_name", resource).Info("publish: responsive display ad created")

	return resource, nil
}

func (g *GoogleAdsIntegrator) createResponsiveSearchAd(campaign *domain.Campaign, adGroupResource string) (string, error) {
	headlines := campaignHeadlines(campaign)
	descriptions := campaignDescriptions(campaign)

	if len(headlines) < 3 {
		return "", fmt.Errorf("Responsive Search Ads require at least 3 headlines. Only %d provided.", len(headlines))
	}

	if len(descriptions) < 2 {
		return "", fmt.Errorf("Responsive Search Ads require at least 2 descriptions. Only %d provided.", len(descriptions))
	}

	searchAd := &gadsdomain.ResponsiveSearchAd{}

	for _, headline := range capList(headlines, 15) {
		searchAd.Headlines = append(searchAd.Headlines, gadsdomain.AdTextAsset{Text: truncate(headline, 30)})
	}

	for _, description := range capList(descriptions, 4) {
		searchAd.Descriptions = append(searchAd.Descriptions, gadsdomain.AdTextAsset{Text: truncate(description, 90)})
	}

	create := &gadsdomain.AdGroupAd{
		AdGroup: adGroupResource,
		Status:  gadsdomain.AdGroupAdStatusEnabled,
		Ad: &gadsdomain.Ad{
			FinalURLs:          []string{campaignFinalURL(campaign)},
			ResponsiveSearchAd: searchAd,
		},
	}

	response, err := g.Client.MutateAdGroupAds([]gadsdomain.AdGroupAdOperation{{Create: create}})
	if err != nil {
		return "", newMutateError("responsive search ad", err)
	}

	resource := response.First()
	logrus.WithField("resource_name", resource).Info("publish: responsive search ad created")

	return resource, nil
}

func (g *GoogleAdsIntegrator) createVideoAd(campaign *domain.Campaign, adGroupResource, timestamp string) (string, error) {
	if !hasText(campaign.VideoURL) {
		return "", errors.New("Video URL is required for VIDEO campaigns")
	}

	videoID, err := extractYoutubeVideoID(*campaign.VideoURL)
	if err != nil {
		return "", err
	}

	assetResource, err := g.createVideoAsset(videoID, timestamp)
	if err != nil {
		return "", err
	}

	headline := campaign.Name
	if headlines := campaignHeadlines(campaign); headlines[0] != "" {
		headline = headlines[0]
	}

	create := &gadsdomain.AdGroupAd{
		AdGroup: adGroupResource,
		Status:  gadsdomain.AdGroupAdStatusEnabled,
		Ad: &gadsdomain.Ad{
			VideoAd: &gadsdomain.VideoAd{
				Video:    &gadsdomain.AdVideoAsset{Asset: assetResource},
				InStream: &gadsdomain.VideoTrueViewInStreamAdInfo{ActionHeadline: truncate(headline, 30)},
			},
		},
	}

	if hasText(campaign.FinalURL) {
		create.Ad.FinalURLs = []string{*campaign.FinalURL}
	}

	response, err := g.Client.MutateAdGroupAds([]gadsdomain.AdGroupAdOperation{{Create: create}})
	if err != nil {
		return "", newMutateError("video ad", err)
	}

	resource := response.First()
	logrus.WithField("resource_name", resource).Info("publish: video ad created")

	return resource, nil
}

func (g *GoogleAdsIntegrator) createVideoAsset(videoID, timestamp string) (string, error) {
	operation := gadsdomain.AssetOperation{
		Create: &gadsdomain.Asset{
			Name:              fmt.Sprintf("Video Asset - %s - %s", videoID, timestamp),
			Type:              gadsdomain.AssetTypeYoutubeVideo,
			YoutubeVideoAsset: &gadsdomain.YoutubeVideoAsset{YoutubeVideoID: videoID},
		},
	}

	response, err := g.Client.MutateAssets([]gadsdomain.AssetOperation{operation})
	if err != nil {
		return "", newMutateError("video asset", err)
	}

	return response.First(), nil
}

func (g *GoogleAdsIntegrator) createKeywords(keywords []string, adGroupResource string) error {
	operations := make([]gadsdomain.AdGroupCriterionOperation, 0, len(keywords))

	for _, keyword := range keywords {
		operations = append(operations, gadsdomain.AdGroupCriterionOperation{
			Create: &gadsdomain.AdGroupCriterion{
				AdGroup: adGroupResource,
				Status:  gadsdomain.CriterionStatusEnabled,
				Keyword: &gadsdomain.KeywordInfo{
					Text:      truncate(keyword, 80),
					MatchType: gadsdomain.KeywordMatchTypeBroad,
				},
			},
		})
	}

	if _, err := g.Client.MutateAdGroupCriteria(operations); err != nil {
		return newMutateError("keywords", err)
	}

	logrus.WithField("total_keywords", len(operations)).Info("publish: keywords added to ad group")

	return nil
}

// createPerformanceMaxAssets monta a estrutura de Performance Max: assets de
// texto, imagens, asset group e os vínculos entre eles. Devolve o ID do asset
// group, registrado no lugar do grupo de anúncios.
func (g *GoogleAdsIntegrator) createPerformanceMaxAssets(campaign *domain.Campaign, campaignResource, timestamp string) (string, error) {
	textAssets, err := g.createPerformanceMaxTextAssets(campaign, timestamp)
	if err != nil {
		return "", err
	}

	images := g.uploadCampaignImages(campaign, "PMax", timestamp)

	assetGroupResource, err := g.createAssetGroup(campaign, campaignResource, timestamp)
	if err != nil {
		return "", err
	}

	if err := g.linkAssetGroupAssets(assetGroupResource, textAssets, images); err != nil {
		return "", err
	}

	return lastPathSegment(assetGroupResource), nil
}

// pmaxTextAssets guarda os resource names dos assets de texto por papel
type pmaxTextAssets struct {
	headlines    []string
	longHeadline string
	descriptions []string
	businessName string
}

func (g *GoogleAdsIntegrator) createPerformanceMaxTextAssets(campaign *domain.Campaign, timestamp string) (*pmaxTextAssets, error) {
	headlines := pmaxHeadlines(campaign)
	descriptions := pmaxDescriptions(campaign)

	longHeadline := headlines[0]
	if hasText(campaign.LongHeadline) {
		longHeadline = *campaign.LongHeadline
	}

	var operations []gadsdomain.AssetOperation
	var roles []string

	for i, headline := range headlines {
		operations = append(operations, textAssetOperation(fmt.Sprintf("Headline %d - %s", i+1, timestamp), headline))
		roles = append(roles, "headline")
	}

	operations = append(operations, textAssetOperation(fmt.Sprintf("Long Headline - %s", timestamp), truncate(longHeadline, 90)))
	roles = append(roles, "long_headline")

	for i, description := range descriptions {
		operations = append(operations, textAssetOperation(fmt.Sprintf("Description %d - %s", i+1, timestamp), description))
		roles = append(roles, "description")
	}

	operations = append(operations, textAssetOperation(fmt.Sprintf("Business Name - %s", timestamp), truncate(campaignBusinessName(campaign), 25)))
	roles = append(roles, "business_name")

	response, err := g.Client.MutateAssets(operations)
	if err != nil {
		return nil, newMutateError("text assets", err)
	}

	if len(response.Results) != len(operations) {
		return nil, fmt.Errorf("expected %d text asset results, got %d", len(operations), len(response.Results))
	}

	// A API preserva a ordem das operações na resposta
	assets := &pmaxTextAssets{}
	for i, result := range response.Results {
		switch roles[i] {
		case "headline":
			assets.headlines = append(assets.headlines, result.ResourceName)
		case "long_headline":
			assets.longHeadline = result.ResourceName
		case "description":
			assets.descriptions = append(assets.descriptions, result.ResourceName)
		case "business_name":
			assets.businessName = result.ResourceName
		}
	}

	logrus.WithField("total_assets", len(response.Results)).Info("publish: text assets created")

	return assets, nil
}

func (g *GoogleAdsIntegrator) createAssetGroup(campaign *domain.Campaign, campaignResource, timestamp string) (string, error) {
	operation := gadsdomain.AssetGroupOperation{
		Create: &gadsdomain.AssetGroup{
			Name:      fmt.Sprintf("%s Asset Group - %s", campaign.Name, timestamp),
			Campaign:  campaignResource,
			Status:    gadsdomain.AssetGroupStatusEnabled,
			FinalURLs: []string{campaignFinalURL(campaign)},
		},
	}

	response, err := g.Client.MutateAssetGroups([]gadsdomain.AssetGroupOperation{operation})
	if err != nil {
		return "", newMutateError("asset group", err)
	}

	resource := response.First()
	logrus.WithField("resource_name", resource).Info("publish: asset group created")

	return resource, nil
}

func (g *GoogleAdsIntegrator) linkAssetGroupAssets(assetGroupResource string, textAssets *pmaxTextAssets, images map[string]string) error {
	var operations []gadsdomain.AssetGroupAssetOperation

	link := func(asset, fieldType string) {
		if asset == "" {
			return
		}

		operations = append(operations, gadsdomain.AssetGroupAssetOperation{
			Create: &gadsdomain.AssetGroupAsset{
				AssetGroup: assetGroupResource,
				Asset:      asset,
				FieldType:  fieldType,
			},
		})
	}

	for _, headline := range textAssets.headlines {
		link(headline, gadsdomain.AssetFieldTypeHeadline)
	}

	link(textAssets.longHeadline, gadsdomain.AssetFieldTypeLongHeadline)

	for _, description := range textAssets.descriptions {
		link(description, gadsdomain.AssetFieldTypeDescription)
	}

	link(textAssets.businessName, gadsdomain.AssetFieldTypeBusinessName)
	link(images["landscape"], gadsdomain.AssetFieldTypeMarketingImage)
	link(images["square"], gadsdomain.AssetFieldTypeSquareMarketingImage)
	link(images["logo"], gadsdomain.AssetFieldTypeLogo)

	if _, err := g.Client.MutateAssetGroupAssets(operations); err != nil {
		return newMutateError("asset group assets", err)
	}

	logrus.WithField("total_assets", len(operations)).Info("publish: linked assets to asset group")

	return nil
}

// uploadCampaignImages sobe as imagens do criativo e devolve os resource names
// por posição. Falha de upload individual vira aviso e a posição fica de fora;
// quem decide se a ausência é fatal é o anúncio que consome as imagens.
func (g *GoogleAdsIntegrator) uploadCampaignImages(campaign *domain.Campaign, prefix, timestamp string) map[string]string {
	slots := []struct {
		url  *string
		slot string
		name string
	}{
		{campaign.Images.LandscapeURL, "landscape", fmt.Sprintf("%s Marketing Image", prefix)},
		{campaign.Images.SquareURL, "square", fmt.Sprintf("%s Square Image", prefix)},
		{campaign.Images.LogoURL, "logo", fmt.Sprintf("%s Logo", prefix)},
	}

	uploaded := make(map[string]string)

	for _, entry := range slots {
		if !hasText(entry.url) {
			continue
		}

		resource, err := g.uploadImageAsset(*entry.url, fmt.Sprintf("%s - %s", entry.name, timestamp))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"slot": entry.slot,
				"url":  *entry.url,
			}).WithError(err).Warn("publish: image upload failed, skipping slot")

			continue
		}

		uploaded[entry.slot] = resource
	}

	return uploaded
}

func (g *GoogleAdsIntegrator) uploadImageAsset(imageURL, assetName string) (string, error) {
	data, contentType, err := g.download(imageURL)
	if err != nil {
		return "", fmt.Errorf("Failed to download image: %v", err)
	}

	operation := gadsdomain.AssetOperation{
		Create: &gadsdomain.Asset{
			Name: assetName,
			Type: gadsdomain.AssetTypeImage,
			ImageAsset: &gadsdomain.ImageAsset{
				Data:     data,
				FileSize: int64(len(data)),
				MimeType: imageMimeType(imageURL, contentType),
			},
		},
	}

	response, err := g.Client.MutateAssets([]gadsdomain.AssetOperation{operation})
	if err != nil {
		return "", newMutateError("image asset", err)
	}

	return response.First(), nil
}

func textAssetOperation(name, text string) gadsdomain.AssetOperation {
	return gadsdomain.AssetOperation{
		Create: &gadsdomain.Asset{
			Name:      name,
			TextAsset: &gadsdomain.TextAsset{Text: text},
		},
	}
}

// advertisingChannelTypes mapeia o tipo de campanha para o canal da API
var advertisingChannelTypes = map[domain.CampaignType]string{
	domain.CampaignTypeDemandGen:      "DEMAND_GEN",
	domain.CampaignTypeSearch:         "SEARCH",
	domain.CampaignTypeDisplay:        "DISPLAY",
	domain.CampaignTypeVideo:          "VIDEO",
	domain.CampaignTypeShopping:       "SHOPPING",
	domain.CampaignTypePerformanceMax: "PERFORMANCE_MAX",
}

func channelTypeFor(campaignType domain.CampaignType) string {
	if channel, ok := advertisingChannelTypes[campaignType]; ok {
		return channel
	}

	return "DISPLAY"
}

var adGroupTypes = map[domain.CampaignType]string{
	domain.CampaignTypeDemandGen:      gadsdomain.AdGroupTypeDisplayStandard,
	domain.CampaignTypeDisplay:        gadsdomain.AdGroupTypeDisplayStandard,
	domain.CampaignTypePerformanceMax: gadsdomain.AdGroupTypeDisplayStandard,
	domain.CampaignTypeSearch:         gadsdomain.AdGroupTypeSearchStandard,
	domain.CampaignTypeVideo:          gadsdomain.AdGroupTypeVideoTrueViewInStream,
	domain.CampaignTypeShopping:       gadsdomain.AdGroupTypeShoppingProductAds,
}

func adGroupTypeFor(campaignType domain.CampaignType) string {
	if adGroupType, ok := adGroupTypes[campaignType]; ok {
		return adGroupType
	}

	return gadsdomain.AdGroupTypeDisplayStandard
}

func networkSettingsFor(campaignType domain.CampaignType) *gadsdomain.NetworkSettings {
	switch campaignType {
	case domain.CampaignTypeSearch:
		return &gadsdomain.NetworkSettings{
			TargetGoogleSearch:         true,
			TargetSearchNetwork:        true,
			TargetContentNetwork:       false,
			TargetPartnerSearchNetwork: false,
		}
	case domain.CampaignTypeDisplay:
		return &gadsdomain.NetworkSettings{TargetContentNetwork: true}
	}

	return nil
}

// applyBiddingStrategy preenche o oneof de estratégia de lance da campanha.
// Sem estratégia definida, usa o padrão do tipo de campanha.
func applyBiddingStrategy(create *gadsdomain.Campaign, campaign *domain.Campaign) {
	strategy := domain.DefaultBiddingStrategy(campaign.CampaignType)
	if campaign.BiddingStrategy != nil && *campaign.BiddingStrategy != "" {
		strategy = *campaign.BiddingStrategy
	}

	switch strategy {
	case domain.BiddingMaximizeConversions:
		create.MaximizeConversions = &gadsdomain.MaximizeConversions{}
	case domain.BiddingMaximizeConversionValue:
		create.MaximizeConversionValue = &gadsdomain.MaximizeConversionValue{}
	case domain.BiddingMaximizeClicks:
		create.TargetSpend = &gadsdomain.TargetSpend{}
	case domain.BiddingTargetCPA:
		micros := int64(1000000)
		if campaign.TargetCPA != nil && *campaign.TargetCPA > 0 {
			micros = *campaign.TargetCPA
		}

		create.TargetCpa = &gadsdomain.TargetCpa{TargetCpaMicros: micros}
	case domain.BiddingTargetROAS:
		roas := 1.0
		if campaign.TargetROAS != nil && *campaign.TargetROAS > 0 {
			roas = *campaign.TargetROAS
		}

		create.TargetRoas = &gadsdomain.TargetRoas{TargetRoas: roas}
	case domain.BiddingManualCPM:
		create.ManualCpm = &gadsdomain.ManualCpm{}
	case domain.BiddingTargetCPM:
		create.TargetCpm = &gadsdomain.TargetCpm{
			TargetFrequencyGoal: &gadsdomain.TargetFrequencyGoal{
				TargetCount: 1,
				TimeUnit:    gadsdomain.TargetFrequencyTimeUnitWeekly,
			},
		}
	default:
		// manual_cpc e target_cpc compartilham a mesma configuração de lance
		create.ManualCpc = &gadsdomain.ManualCpc{EnhancedCpcEnabled: false}
	}
}

// campaignHeadlines devolve os títulos do criativo, com fallback para o campo
// legado de anúncio único e por fim para o nome da campanha
func campaignHeadlines(campaign *domain.Campaign) []string {
	if len(campaign.Headlines) > 0 {
		return campaign.Headlines
	}

	if hasText(campaign.AdHeadline) {
		return []string{*campaign.AdHeadline}
	}

	return []string{campaign.Name}
}

func campaignDescriptions(campaign *domain.Campaign) []string {
	if len(campaign.Descriptions) > 0 {
		return campaign.Descriptions
	}

	if hasText(campaign.AdDescription) {
		return []string{*campaign.AdDescription}
	}

	return []string{fmt.Sprintf("Check out %s", campaign.Name)}
}

func campaignLongHeadline(campaign *domain.Campaign) string {
	if hasText(campaign.LongHeadline) {
		return *campaign.LongHeadline
	}

	return campaignHeadlines(campaign)[0]
}

func campaignBusinessName(campaign *domain.Campaign) string {
	if hasText(campaign.BusinessName) {
		return *campaign.BusinessName
	}

	return defaultBusinessName
}

func campaignFinalURL(campaign *domain.Campaign) string {
	if hasText(campaign.FinalURL) {
		return *campaign.FinalURL
	}

	return defaultFinalURL
}

// pmaxHeadlines garante o mínimo de 3 títulos exigido pelo Performance Max,
// completando com textos genéricos quando faltam
func pmaxHeadlines(campaign *domain.Campaign) []string {
	headlines := append([]string{}, campaignHeadlines(campaign)...)

	for len(headlines) < 3 {
		headlines = append(headlines, fmt.Sprintf("Discover More %d", len(headlines)+1))
	}

	headlines = capList(headlines, 5)

	for i := range headlines {
		headlines[i] = truncate(headlines[i], 30)
	}

	return headlines
}

func pmaxDescriptions(campaign *domain.Campaign) []string {
	descriptions := append([]string{}, campaignDescriptions(campaign)...)

	for len(descriptions) < 2 {
		descriptions = append(descriptions, "Visit our website for more information.")
	}

	descriptions = capList(descriptions, 5)

	for i := range descriptions {
		descriptions[i] = truncate(descriptions[i], 90)
	}

	return descriptions
}

// extractYoutubeVideoID aceita os formatos watch?v=, youtu.be/ e /v/
func extractYoutubeVideoID(videoURL string) (string, error) {
	var videoID string

	switch {
	case strings.Contains(videoURL, "v="):
		videoID = strings.SplitN(strings.SplitN(videoURL, "v=", 2)[1], "&", 2)[0]
	case strings.Contains(videoURL, "youtu.be/"):
		videoID = strings.SplitN(strings.SplitN(videoURL, "youtu.be/", 2)[1], "?", 2)[0]
	case strings.Contains(videoURL, "/v/"):
		videoID = strings.SplitN(strings.SplitN(videoURL, "/v/", 2)[1], "?", 2)[0]
	default:
		segments := strings.Split(videoURL, "/")
		videoID = segments[len(segments)-1]
	}

	if videoID == "" {
		return "", fmt.Errorf("Could not extract video ID from URL: %s", videoURL)
	}

	return videoID, nil
}

func imageMimeType(imageURL, contentType string) string {
	lowered := strings.ToLower(imageURL)

	switch {
	case strings.Contains(contentType, "png") || strings.HasSuffix(lowered, ".png"):
		return gadsdomain.MimeTypePng
	case strings.Contains(contentType, "gif") || strings.HasSuffix(lowered, ".gif"):
		return gadsdomain.MimeTypeGif
	}

	return gadsdomain.MimeTypeJpeg
}

func lastPathSegment(resourceName string) string {
	segments := strings.Split(resourceName, "/")
	return segments[len(segments)-1]
}

// truncate corta o texto no limite contando caracteres, não bytes
func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	return string([]rune(text)[:limit])
}

func capList(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}

	return values
}

func hasText(value *string) bool {
	return value != nil && *value != ""
}
