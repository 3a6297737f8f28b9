package gadsclient

import (
	gadsdomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads/domain"
)

type mutateAdGroupsRequest struct {
	Operations []gadsdomain.AdGroupOperation `json:"operations"`
}

type mutateAdGroupAdsRequest struct {
	Operations []gadsdomain.AdGroupAdOperation `json:"operations"`
}

type mutateAdGroupCriteriaRequest struct {
	Operations []gadsdomain.AdGroupCriterionOperation `json:"operations"`
}

// MutateAdGroups cria ou atualiza grupos de anúncios
func (c *GoogleAdsClient) MutateAdGroups(operations []gadsdomain.AdGroupOperation) (*gadsdomain.MutateResponse, error) {
	return c.mutate("adGroups", mutateAdGroupsRequest{Operations: operations})
}

// MutateAdGroupAds cria anúncios dentro de um grupo de anúncios
func (c *GoogleAdsClient) MutateAdGroupAds(operations []gadsdomain.AdGroupAdOperation) (*gadsdomain.MutateResponse, error) {
	return c.mutate("adGroupAds", mutateAdGroupAdsRequest{Operations: operations})
}

// MutateAdGroupCriteria cria critérios de segmentação, como palavras-chave
func (c *GoogleAdsClient) MutateAdGroupCriteria(operations []gadsdomain.AdGroupCriterionOperation) (*gadsdomain.MutateResponse, error) {
	return c.mutate("adGroupCriteria", mutateAdGroupCriteriaRequest{Operations: operations})
}
