package gadsclient

import (
	gadsdomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads/domain"
)

type mutateCampaignBudgetsRequest struct {
	Operations []gadsdomain.CampaignBudgetOperation `json:"operations"`
}

type mutateCampaignsRequest struct {
	Operations []gadsdomain.CampaignOperation `json:"operations"`
}

// MutateCampaignBudgets cria ou atualiza orçamentos de campanha
func (c *GoogleAdsClient) MutateCampaignBudgets(operations []gadsdomain.CampaignBudgetOperation) (*gadsdomain.MutateResponse, error) {
	return c.mutate("campaignBudgets", mutateCampaignBudgetsRequest{Operations: operations})
}

// MutateCampaigns cria ou atualiza campanhas
func (c *GoogleAdsClient) MutateCampaigns(operations []gadsdomain.CampaignOperation) (*gadsdomain.MutateResponse, error) {
	return c.mutate("campaigns", mutateCampaignsRequest{Operations: operations})
}
