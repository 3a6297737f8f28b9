package domain

import "encoding/json"

type CreateCampaignRequest struct {
	Name             *string         `json:"name"`
	OwnerID          *string         `json:"owner_id"`
	Objective        *string         `json:"objective"`
	CampaignType     *string         `json:"campaign_type"`
	DailyBudget      *int64          `json:"daily_budget"`
	StartDate        *string         `json:"start_date"`
	EndDate          *string         `json:"end_date"`
	BiddingStrategy  *string         `json:"bidding_strategy"`
	TargetCPA        *int64          `json:"target_cpa"`
	TargetROAS       *float64        `json:"target_roas"`
	Headlines        []string        `json:"headlines"`
	LongHeadline     *string         `json:"long_headline"`
	Descriptions     []string        `json:"descriptions"`
	BusinessName     *string         `json:"business_name"`
	Images           *CampaignImages `json:"images"`
	Keywords         []string        `json:"keywords"`
	VideoURL         *string         `json:"video_url"`
	MerchantCenterID *string         `json:"merchant_center_id"`
	AdGroupName      *string         `json:"ad_group_name"`
	AdHeadline       *string         `json:"ad_headline"`
	AdDescription    *string         `json:"ad_description"`
	AssetURL         *string         `json:"asset_url"`
	FinalURL         *string         `json:"final_url"`
}

// UpdatableFields lista, na ordem de aplicação, os campos aceitos no payload
// de atualização. Qualquer outra chave do payload é ignorada.
var UpdatableFields = []string{
	"name",
	"objective",
	"campaign_type",
	"daily_budget",
	"start_date",
	"end_date",
	"ad_group_name",
	"ad_headline",
	"ad_description",
	"asset_url",
	"final_url",
	"bidding_strategy",
	"target_cpa",
	"target_roas",
	"headlines",
	"long_headline",
	"descriptions",
	"business_name",
	"images",
	"keywords",
	"video_url",
	"merchant_center_id",
}

// LockedFieldsWhenPublished não podem mudar depois que a campanha foi
// publicada no Google Ads
var LockedFieldsWhenPublished = []string{"objective", "campaign_type", "start_date"}

type UpdateCampaignRequest struct {
	Name             *string         `json:"name"`
	Objective        *string         `json:"objective"`
	CampaignType     *string         `json:"campaign_type"`
	DailyBudget      *int64          `json:"daily_budget"`
	StartDate        *string         `json:"start_date"`
	EndDate          *string         `json:"end_date"`
	BiddingStrategy  *string         `json:"bidding_strategy"`
	TargetCPA        *int64          `json:"target_cpa"`
	TargetROAS       *float64        `json:"target_roas"`
	Headlines        []string        `json:"headlines"`
	LongHeadline     *string         `json:"long_headline"`
	Descriptions     []string        `json:"descriptions"`
	BusinessName     *string         `json:"business_name"`
	Images           *CampaignImages `json:"images"`
	Keywords         []string        `json:"keywords"`
	VideoURL         *string         `json:"video_url"`
	MerchantCenterID *string         `json:"merchant_center_id"`
	AdGroupName      *string         `json:"ad_group_name"`
	AdHeadline       *string         `json:"ad_headline"`
	AdDescription    *string         `json:"ad_description"`
	AssetURL         *string         `json:"asset_url"`
	FinalURL         *string         `json:"final_url"`

	present map[string]bool
}

// UnmarshalJSON guarda quais chaves vieram no payload para diferenciar campo
// ausente de campo enviado como null (null limpa o valor)
func (r *UpdateCampaignRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateCampaignRequest

	var parsed plain
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*r = UpdateCampaignRequest(parsed)

	r.present = make(map[string]bool, len(keys))
	for key := range keys {
		r.present[key] = true
	}

	return nil
}

func (r *UpdateCampaignRequest) Has(field string) bool {
	return r.present[field]
}

// PresentFields devolve os campos atualizáveis presentes no payload, na ordem
// de UpdatableFields
func (r *UpdateCampaignRequest) PresentFields() []string {
	fields := make([]string, 0, len(r.present))

	for _, field := range UpdatableFields {
		if r.present[field] {
			fields = append(fields, field)
		}
	}

	return fields
}

// GoogleAdsIDs identifica os recursos criados no Google Ads pela publicação.
// Para Performance Max o AdGroupID carrega o ID do asset group e AdID fica
// nulo; para Shopping o anúncio vem do feed e AdID também fica nulo.
type GoogleAdsIDs struct {
	CampaignID string  `json:"campaign_id"`
	AdGroupID  string  `json:"ad_group_id"`
	AdID       *string `json:"ad_id"`
}

// PublishCampaignResponse é a resposta da publicação bem sucedida
type PublishCampaignResponse struct {
	Message   string        `json:"message"`
	Campaign  *Campaign     `json:"campaign"`
	GoogleAds *GoogleAdsIDs `json:"google_ads"`
}

// CampaignStatusResponse é a resposta das transições de pausa e reativação
type CampaignStatusResponse struct {
	Message  string    `json:"message"`
	Campaign *Campaign `json:"campaign"`
}
