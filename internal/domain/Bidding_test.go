package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBiddingStrategy_Valid(t *testing.T) {
	for _, strategy := range AllBiddingStrategies {
		assert.True(t, strategy.Valid(), string(strategy))
	}

	assert.False(t, BiddingStrategy("cpc_enhanced").Valid())
	assert.False(t, BiddingStrategy("").Valid())
}

func TestBiddingStrategy_ValidForType(t *testing.T) {
	cases := []struct {
		name         string
		strategy     BiddingStrategy
		campaignType CampaignType
		valid        bool
	}{
		{
			name:         "manual_cpc vale para SEARCH",
			strategy:     BiddingManualCPC,
			campaignType: CampaignTypeSearch,
			valid:        true,
		},
		{
			name:         "manual_cpc não vale para PERFORMANCE_MAX",
			strategy:     BiddingManualCPC,
			campaignType: CampaignTypePerformanceMax,
			valid:        false,
		},
		{
			name:         "target_roas vale para SHOPPING",
			strategy:     BiddingTargetROAS,
			campaignType: CampaignTypeShopping,
			valid:        true,
		},
		{
			name:         "target_roas não vale para SEARCH",
			strategy:     BiddingTargetROAS,
			campaignType: CampaignTypeSearch,
			valid:        false,
		},
		{
			name:         "target_cpm vale para VIDEO",
			strategy:     BiddingTargetCPM,
			campaignType: CampaignTypeVideo,
			valid:        true,
		},
		{
			name:         "Tipo desconhecido não aceita nenhuma estratégia",
			strategy:     BiddingManualCPC,
			campaignType: CampaignType("APP"),
			valid:        false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.strategy.ValidForType(tc.campaignType))
		})
	}
}

func TestAllowedBiddingStrategies(t *testing.T) {
	assert.Equal(t, []BiddingStrategy{
		BiddingMaximizeConversions,
		BiddingMaximizeConversionValue,
	}, AllowedBiddingStrategies(CampaignTypePerformanceMax))

	assert.Empty(t, AllowedBiddingStrategies(CampaignType("APP")))
}

func TestDefaultBiddingStrategy(t *testing.T) {
	cases := []struct {
		campaignType CampaignType
		expected     BiddingStrategy
	}{
		{CampaignTypeDemandGen, BiddingMaximizeConversions},
		{CampaignTypePerformanceMax, BiddingMaximizeConversions},
		{CampaignTypeSearch, BiddingManualCPC},
		{CampaignTypeDisplay, BiddingManualCPC},
		{CampaignTypeVideo, BiddingTargetCPM},
		{CampaignTypeShopping, BiddingMaximizeClicks},
		{CampaignType("APP"), BiddingManualCPC},
	}

	for _, tc := range cases {
		t.Run(string(tc.campaignType), func(t *testing.T) {
			assert.Equal(t, tc.expected, DefaultBiddingStrategy(tc.campaignType))
		})
	}
}
