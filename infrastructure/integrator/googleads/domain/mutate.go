package gadsdomain

// Operações de mutate. Cada serviço da API tem seu próprio tipo de operação;
// create e update são mutuamente exclusivos.

type CampaignBudgetOperation struct {
	Create *CampaignBudget `json:"create,omitempty"`
}

type CampaignOperation struct {
	Create     *Campaign `json:"create,omitempty"`
	Update     *Campaign `json:"update,omitempty"`
	UpdateMask string    `json:"updateMask,omitempty"`
}

type AdGroupOperation struct {
	Create *AdGroup `json:"create,omitempty"`
}

type AdGroupAdOperation struct {
	Create *AdGroupAd `json:"create,omitempty"`
}

type AdGroupCriterionOperation struct {
	Create *AdGroupCriterion `json:"create,omitempty"`
}

type AssetOperation struct {
	Create *Asset `json:"create,omitempty"`
}

type AssetGroupOperation struct {
	Create *AssetGroup `json:"create,omitempty"`
}

type AssetGroupAssetOperation struct {
	Create *AssetGroupAsset `json:"create,omitempty"`
}

// MutateResponse é a resposta comum dos endpoints :mutate
type MutateResponse struct {
	Results []MutateResult `json:"results"`
}

type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

// First devolve o resource name do primeiro resultado
func (r *MutateResponse) First() string {
	if r == nil || len(r.Results) == 0 {
		return ""
	}

	return r.Results[0].ResourceName
}
