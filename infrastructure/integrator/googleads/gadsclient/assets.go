package gadsclient

import (
	gadsdomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads/domain"
)

type mutateAssetsRequest struct {
	Operations []gadsdomain.AssetOperation `json:"operations"`
}

type mutateAssetGroupsRequest struct {
	Operations []gadsdomain.AssetGroupOperation `json:"operations"`
}

type mutateAssetGroupAssetsRequest struct {
	Operations []gadsdomain.AssetGroupAssetOperation `json:"operations"`
}

// MutateAssets cria assets de texto, imagem ou vídeo na conta
func (c *GoogleAdsClient) MutateAssets(operations []gadsdomain.AssetOperation) (*gadsdomain.MutateResponse, error) {
	return c.mutate("assets", mutateAssetsRequest{Operations: operations})
}

// MutateAssetGroups cria asset groups de campanhas Performance Max
func (c *GoogleAdsClient) MutateAssetGroups(operations []gadsdomain.AssetGroupOperation) (*gadsdomain.MutateResponse, error) {
	return c.mutate("assetGroups", mutateAssetGroupsRequest{Operations: operations})
}

// MutateAssetGroupAssets vincula assets a um asset group
func (c *GoogleAdsClient) MutateAssetGroupAssets(operations []gadsdomain.AssetGroupAssetOperation) (*gadsdomain.MutateResponse, error) {
	return c.mutate("assetGroupAssets", mutateAssetGroupAssetsRequest{Operations: operations})
}
