package campaigning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
)

func TestApplyUpdate(t *testing.T) {
	t.Run("Campos alterados saem na ordem do contrato, não na do payload", func(t *testing.T) {
		campaign := draftCampaign()
		request := updateRequest(t, `{
			"merchant_center_id": "1234567890",
			"headlines": ["Cold Days, Hot Deals"],
			"name": "Winter Sale",
			"final_url": "https://acme.com/winter",
			"daily_budget": 60000000
		}`)

		changed, err := applyUpdate(campaign, request)

		assert.NoError(t, err)
		assert.Equal(t, []string{"name", "daily_budget", "final_url", "headlines", "merchant_center_id"}, changed)
		assert.Equal(t, "Winter Sale", campaign.Name)
		assert.Equal(t, int64(60_000_000), campaign.DailyBudget)
		assert.Equal(t, "https://acme.com/winter", *campaign.FinalURL)
		assert.Equal(t, []string{"Cold Days, Hot Deals"}, campaign.Headlines)
		assert.Equal(t, "1234567890", *campaign.MerchantCenterID)
	})

	t.Run("Valor idêntico ao atual não conta como mudança", func(t *testing.T) {
		campaign := draftCampaign()
		request := updateRequest(t, `{"name": "Summer Sale", "daily_budget": 75000000}`)

		changed, err := applyUpdate(campaign, request)

		assert.NoError(t, err)
		assert.Equal(t, []string{"daily_budget"}, changed)
	})

	t.Run("Patch sem mudança efetiva devolve lista vazia", func(t *testing.T) {
		campaign := draftCampaign()
		request := updateRequest(t, `{"name": "Summer Sale", "objective": "SALES", "start_date": "2026-09-01"}`)

		changed, err := applyUpdate(campaign, request)

		assert.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("null limpa os campos anuláveis na ordem do contrato", func(t *testing.T) {
		campaign := draftCampaign()
		campaign.FinalURL = stringPtr("https://acme.com/sale")
		campaign.BusinessName = stringPtr("Acme Store")

		request := updateRequest(t, `{"business_name": null, "final_url": null}`)

		changed, err := applyUpdate(campaign, request)

		assert.NoError(t, err)
		assert.Equal(t, []string{"final_url", "business_name"}, changed)
		assert.Nil(t, campaign.FinalURL)
		assert.Nil(t, campaign.BusinessName)
	})

	t.Run("null em campo já vazio não conta como mudança", func(t *testing.T) {
		campaign := draftCampaign()
		request := updateRequest(t, `{"video_url": null}`)

		changed, err := applyUpdate(campaign, request)

		assert.NoError(t, err)
		assert.Empty(t, changed)
		assert.Nil(t, campaign.VideoURL)
	})

	t.Run("Data final aceita valor, string vazia e null", func(t *testing.T) {
		campaign := draftCampaign()

		changed, err := applyUpdate(campaign, updateRequest(t, `{"end_date": "2026-12-31"}`))
		assert.NoError(t, err)
		assert.Equal(t, []string{"end_date"}, changed)
		assert.Equal(t, "2026-12-31", campaign.EndDate.Format(domain.DateLayout))

		// Mesmo valor, sem mudança
		changed, err = applyUpdate(campaign, updateRequest(t, `{"end_date": "2026-12-31"}`))
		assert.NoError(t, err)
		assert.Empty(t, changed)

		// String vazia limpa como null
		changed, err = applyUpdate(campaign, updateRequest(t, `{"end_date": ""}`))
		assert.NoError(t, err)
		assert.Equal(t, []string{"end_date"}, changed)
		assert.Nil(t, campaign.EndDate)
	})

	t.Run("Data de início fora do formato interrompe o patch", func(t *testing.T) {
		campaign := draftCampaign()
		request := updateRequest(t, `{"name": "Winter Sale", "start_date": "31/12/2026"}`)

		changed, err := applyUpdate(campaign, request)

		assert.Nil(t, changed)
		assertCampaignError(t, err, ErrInvalidDateFormat, apiErrors.ErrInvalidFormat)
	})

	t.Run("Data final fora do formato interrompe o patch", func(t *testing.T) {
		campaign := draftCampaign()

		changed, err := applyUpdate(campaign, updateRequest(t, `{"end_date": "next year"}`))

		assert.Nil(t, changed)
		assertCampaignError(t, err, ErrInvalidDateFormat, apiErrors.ErrInvalidFormat)
	})

	t.Run("Imagens substituem o conjunto inteiro", func(t *testing.T) {
		campaign := draftCampaign()
		campaign.Images = domain.CampaignImages{
			LandscapeURL: stringPtr("https://cdn.acme.com/landscape.png"),
			SquareURL:    stringPtr("https://cdn.acme.com/square.png"),
		}

		request := updateRequest(t, `{"images": {"logo_url": "https://cdn.acme.com/logo.png"}}`)

		changed, err := applyUpdate(campaign, request)

		assert.NoError(t, err)
		assert.Equal(t, []string{"images"}, changed)
		assert.Nil(t, campaign.Images.LandscapeURL)
		assert.Nil(t, campaign.Images.SquareURL)
		assert.Equal(t, "https://cdn.acme.com/logo.png", *campaign.Images.LogoURL)
	})

	t.Run("Conjunto de imagens idêntico não conta como mudança", func(t *testing.T) {
		campaign := draftCampaign()
		campaign.Images = domain.CampaignImages{SquareURL: stringPtr("https://cdn.acme.com/square.png")}

		request := updateRequest(t, `{"images": {"square_url": "https://cdn.acme.com/square.png"}}`)

		changed, err := applyUpdate(campaign, request)

		assert.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("Estratégia de lance vazia limpa o campo", func(t *testing.T) {
		campaign := draftCampaign()
		strategy := domain.BiddingTargetCPA
		campaign.BiddingStrategy = &strategy

		changed, err := applyUpdate(campaign, updateRequest(t, `{"bidding_strategy": ""}`))

		assert.NoError(t, err)
		assert.Equal(t, []string{"bidding_strategy"}, changed)
		assert.Nil(t, campaign.BiddingStrategy)
	})

	t.Run("Estratégia de lance nova é aplicada", func(t *testing.T) {
		campaign := draftCampaign()

		changed, err := applyUpdate(campaign, updateRequest(t, `{"bidding_strategy": "maximize_conversions"}`))

		assert.NoError(t, err)
		assert.Equal(t, []string{"bidding_strategy"}, changed)
		assert.Equal(t, domain.BiddingMaximizeConversions, *campaign.BiddingStrategy)
	})

	t.Run("Listas iguais elemento a elemento não contam como mudança", func(t *testing.T) {
		campaign := draftCampaign()
		campaign.Keywords = []string{"running shoes", "trail shoes"}

		changed, err := applyUpdate(campaign, updateRequest(t, `{"keywords": ["running shoes", "trail shoes"]}`))

		assert.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("Alvos numéricos trocam e limpam", func(t *testing.T) {
		campaign := draftCampaign()
		campaign.TargetCPA = int64Ptr(10_000_000)

		changed, err := applyUpdate(campaign, updateRequest(t, `{"target_cpa": 15000000, "target_roas": 3.5}`))

		assert.NoError(t, err)
		assert.Equal(t, []string{"target_cpa", "target_roas"}, changed)
		assert.Equal(t, int64(15_000_000), *campaign.TargetCPA)
		assert.Equal(t, 3.5, *campaign.TargetROAS)

		changed, err = applyUpdate(campaign, updateRequest(t, `{"target_cpa": null}`))

		assert.NoError(t, err)
		assert.Equal(t, []string{"target_cpa"}, changed)
		assert.Nil(t, campaign.TargetCPA)
	})
}

func TestUpdateRequestPresence(t *testing.T) {
	t.Run("Has distingue ausência de null", func(t *testing.T) {
		request := updateRequest(t, `{"final_url": null}`)

		assert.True(t, request.Has("final_url"))
		assert.False(t, request.Has("name"))
	})

	t.Run("PresentFields segue a ordem do contrato", func(t *testing.T) {
		request := updateRequest(t, `{"keywords": [], "name": "Winter Sale", "end_date": "2026-12-31"}`)

		assert.Equal(t, []string{"name", "end_date", "keywords"}, request.PresentFields())
	})

	t.Run("Chaves fora do contrato não aparecem", func(t *testing.T) {
		request := updateRequest(t, `{"name": "Winter Sale", "color": "blue"}`)

		assert.Equal(t, []string{"name"}, request.PresentFields())
		assert.False(t, request.Has("color"))
	})
}
