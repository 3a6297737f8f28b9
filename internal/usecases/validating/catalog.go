package validating

import (
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// TextListRule delimita listas de textos do criativo (títulos e descrições).
// Max igual a zero significa que o tipo não aceita esses textos em quantidade,
// mas o limite de caracteres por item continua valendo.
type TextListRule struct {
	Min       int `json:"min"`
	Max       int `json:"max"`
	MaxLength int `json:"max_length"`
}

// TextFieldRule delimita um campo de texto único do criativo. Uma regra
// zerada significa que o tipo de campanha não usa o campo.
type TextFieldRule struct {
	Required  bool
	MaxLength int
}

func (r TextFieldRule) applies() bool {
	return r.Required || r.MaxLength > 0
}

// TypeRequirements reúne as exigências de composição de um tipo de campanha
// no Google Ads API v22. A mesma tabela alimenta a validação de publicação,
// a checagem final de tradução e o eco de requisitos do endpoint de validação.
type TypeRequirements struct {
	Headlines                 TextListRule
	LongHeadline              TextFieldRule
	Descriptions              TextListRule
	ShortDescriptionRequired  bool
	ShortDescriptionMaxLength int
	BusinessName              TextFieldRule
	ImagesRequired            bool
	FinalURLRequired          bool
	KeywordsRequired          bool
	KeywordsUnique            bool
	VideoURLRequired          bool
	MerchantCenterIDRequired  bool
	APICreationSupported      bool
}

type Catalog map[domain.CampaignType]TypeRequirements

// DefaultCatalog devolve as exigências por tipo de campanha
func DefaultCatalog() Catalog {
	return Catalog{
		domain.CampaignTypeDemandGen: {
			Headlines:            TextListRule{Min: 1, Max: 5, MaxLength: 40},
			Descriptions:         TextListRule{Min: 1, Max: 5, MaxLength: 90},
			BusinessName:         TextFieldRule{Required: true, MaxLength: 25},
			ImagesRequired:       true,
			FinalURLRequired:     true,
			APICreationSupported: true,
		},
		domain.CampaignTypePerformanceMax: {
			Headlines:                 TextListRule{Min: 3, Max: 15, MaxLength: 30},
			LongHeadline:              TextFieldRule{Required: true, MaxLength: 90},
			Descriptions:              TextListRule{Min: 2, Max: 5, MaxLength: 90},
			ShortDescriptionRequired:  true,
			ShortDescriptionMaxLength: 60,
			BusinessName:              TextFieldRule{Required: true, MaxLength: 25},
			ImagesRequired:            true,
			FinalURLRequired:          true,
			APICreationSupported:      true,
		},
		domain.CampaignTypeSearch: {
			// Responsive Search Ads exigem no mínimo 3 títulos e 2 descrições
			Headlines:            TextListRule{Min: 3, Max: 15, MaxLength: 30},
			Descriptions:         TextListRule{Min: 2, Max: 4, MaxLength: 90},
			KeywordsRequired:     true,
			KeywordsUnique:       true,
			FinalURLRequired:     true,
			APICreationSupported: true,
		},
		domain.CampaignTypeDisplay: {
			Headlines:            TextListRule{Min: 1, Max: 5, MaxLength: 30},
			LongHeadline:         TextFieldRule{Required: true, MaxLength: 90},
			Descriptions:         TextListRule{Min: 1, Max: 5, MaxLength: 90},
			BusinessName:         TextFieldRule{Required: true, MaxLength: 25},
			ImagesRequired:       true,
			FinalURLRequired:     true,
			APICreationSupported: true,
		},
		domain.CampaignTypeVideo: {
			Headlines:        TextListRule{Min: 0, Max: 5, MaxLength: 30},
			Descriptions:     TextListRule{Min: 0, Max: 5, MaxLength: 90},
			VideoURLRequired: true,
			// Campanhas VIDEO não podem ser criadas pela API do Google Ads
			APICreationSupported: false,
		},
		domain.CampaignTypeShopping: {
			// Shopping não compõe anúncios por texto; os limites de caracteres
			// por item seguem valendo na checagem de tradução
			Headlines:                TextListRule{Min: 0, Max: 0, MaxLength: 30},
			Descriptions:             TextListRule{Min: 0, Max: 0, MaxLength: 90},
			MerchantCenterIDRequired: true,
			APICreationSupported:     true,
		},
	}
}

// ForType devolve as exigências do tipo. Tipos desconhecidos não têm
// exigências e são tratados como suportados pela API.
func (c Catalog) ForType(campaignType domain.CampaignType) (TypeRequirements, bool) {
	requirements, ok := c[campaignType]
	return requirements, ok
}

func (c Catalog) APICreationSupported(campaignType domain.CampaignType) bool {
	requirements, ok := c[campaignType]
	if !ok {
		return true
	}

	return requirements.APICreationSupported
}
