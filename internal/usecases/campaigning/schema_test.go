package campaigning

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

func TestValidateCreateRequest(t *testing.T) {
	t.Run("Payload mínimo é aceito", func(t *testing.T) {
		request := createRequest()
		request.StartDate = stringPtr(futureDate(7))

		assert.True(t, ValidateCreateRequest(request).Empty())
	})

	t.Run("Payload completo é aceito", func(t *testing.T) {
		request := &domain.CreateCampaignRequest{
			Name:            stringPtr("Summer Sale"),
			Objective:       stringPtr("SALES"),
			CampaignType:    stringPtr("DEMAND_GEN"),
			DailyBudget:     int64Ptr(50_000_000),
			StartDate:       stringPtr(futureDate(7)),
			EndDate:         stringPtr(futureDate(30)),
			BiddingStrategy: stringPtr("target_cpa"),
			TargetCPA:       int64Ptr(10_000_000),
			Headlines:       []string{"Big Summer Savings", "Shop The Sale"},
			LongHeadline:    stringPtr("Discover deals on everything you need this summer"),
			Descriptions:    []string{"Up to 50% off sitewide"},
			BusinessName:    stringPtr("Acme Store"),
			Images: &domain.CampaignImages{
				LandscapeURL: stringPtr("https://cdn.acme.com/landscape.png"),
				SquareURL:    stringPtr("https://cdn.acme.com/square.png"),
				LogoURL:      stringPtr("https://cdn.acme.com/logo.png"),
			},
			Keywords:         []string{"running shoes"},
			VideoURL:         stringPtr("https://youtube.com/watch?v=abc123"),
			MerchantCenterID: stringPtr("1234567890"),
			AdGroupName:      stringPtr("Summer Sale - Ad Group 1"),
			AdHeadline:       stringPtr("Big Summer Savings"),
			AdDescription:    stringPtr("Up to 50% off sitewide"),
			AssetURL:         stringPtr("https://cdn.acme.com/asset.png"),
			FinalURL:         stringPtr("https://acme.com/sale"),
		}

		assert.True(t, ValidateCreateRequest(request).Empty())
	})

	t.Run("Payload vazio acumula os quatro campos obrigatórios", func(t *testing.T) {
		details := ValidateCreateRequest(&domain.CreateCampaignRequest{})

		assert.Equal(t, ValidationDetails{
			"name":         {"Campaign name is required"},
			"objective":    {"Objective is required"},
			"daily_budget": {"Daily budget is required"},
			"start_date":   {"Start date is required"},
		}, details)
	})

	t.Run("Limites do nome", func(t *testing.T) {
		request := createRequest()
		request.StartDate = stringPtr(futureDate(7))
		request.Name = stringPtr("")

		details := ValidateCreateRequest(request)
		assert.Equal(t, []string{"Name must be between 1 and 255 characters"}, details["name"])

		request.Name = stringPtr(strings.Repeat("á", 256))
		details = ValidateCreateRequest(request)
		assert.Equal(t, []string{"Name must be between 1 and 255 characters"}, details["name"])

		request.Name = stringPtr(strings.Repeat("á", 255))
		assert.True(t, ValidateCreateRequest(request).Empty())
	})

	t.Run("Objetivo desconhecido", func(t *testing.T) {
		request := createRequest()
		request.StartDate = stringPtr(futureDate(7))
		request.Objective = stringPtr("BRAND_AWARENESS")

		details := ValidateCreateRequest(request)

		assert.Equal(t, []string{"Objective must be one of: SALES, LEADS, WEBSITE_TRAFFIC"}, details["objective"])
	})

	t.Run("Tipo de campanha desconhecido", func(t *testing.T) {
		request := createRequest()
		request.StartDate = stringPtr(futureDate(7))
		request.CampaignType = stringPtr("BANNER")

		details := ValidateCreateRequest(request)

		assert.Equal(t, []string{"Invalid campaign type"}, details["campaign_type"])
	})

	t.Run("Orçamento diário precisa ser positivo", func(t *testing.T) {
		for _, budget := range []int64{0, -1_000_000} {
			request := createRequest()
			request.StartDate = stringPtr(futureDate(7))
			request.DailyBudget = int64Ptr(budget)

			details := ValidateCreateRequest(request)

			assert.Equal(t, []string{"Daily budget must be greater than 0"}, details["daily_budget"])
		}
	})

	t.Run("Datas", func(t *testing.T) {
		tests := []struct {
			name      string
			startDate *string
			endDate   *string
			expected  ValidationDetails
		}{
			{
				name:      "Começo fora do formato",
				startDate: stringPtr("01-09-2026"),
				expected:  ValidationDetails{"start_date": {"Invalid date format. Use YYYY-MM-DD"}},
			},
			{
				name:      "Começo no passado",
				startDate: stringPtr(futureDate(-7)),
				expected:  ValidationDetails{"start_date": {"Start date cannot be in the past"}},
			},
			{
				name:      "Começo hoje é aceito",
				startDate: stringPtr(futureDate(0)),
				expected:  ValidationDetails{},
			},
			{
				name:      "Fim fora do formato",
				startDate: stringPtr(futureDate(7)),
				endDate:   stringPtr("30/09/2026"),
				expected:  ValidationDetails{"end_date": {"Invalid date format. Use YYYY-MM-DD"}},
			},
			{
				name:      "Fim no passado acumula as duas violações",
				startDate: stringPtr(futureDate(7)),
				endDate:   stringPtr(futureDate(-7)),
				expected: ValidationDetails{"end_date": {
					"End date cannot be in the past",
					"End date must be after start date",
				}},
			},
			{
				name:      "Fim antes do começo",
				startDate: stringPtr(futureDate(10)),
				endDate:   stringPtr(futureDate(5)),
				expected:  ValidationDetails{"end_date": {"End date must be after start date"}},
			},
			{
				name:      "Fim igual ao começo é aceito",
				startDate: stringPtr(futureDate(7)),
				endDate:   stringPtr(futureDate(7)),
				expected:  ValidationDetails{},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				request := createRequest()
				request.StartDate = tt.startDate
				request.EndDate = tt.endDate

				assert.Equal(t, tt.expected, ValidateCreateRequest(request))
			})
		}
	})

	t.Run("Estratégia de lance", func(t *testing.T) {
		t.Run("Estratégia desconhecida", func(t *testing.T) {
			request := createRequest()
			request.StartDate = stringPtr(futureDate(7))
			request.BiddingStrategy = stringPtr("smart_bidding")

			details := ValidateCreateRequest(request)

			assert.Equal(t, []string{"Invalid bidding strategy"}, details["bidding_strategy"])
		})

		t.Run("Estratégia incompatível com o tipo lista as opções válidas", func(t *testing.T) {
			request := createRequest()
			request.StartDate = stringPtr(futureDate(7))
			request.CampaignType = stringPtr("PERFORMANCE_MAX")
			request.BiddingStrategy = stringPtr("manual_cpc")

			details := ValidateCreateRequest(request)

			assert.Equal(t, []string{
				"Bidding strategy manual_cpc is not valid for PERFORMANCE_MAX campaigns. Valid options: maximize_conversions, maximize_conversion_value",
			}, details["bidding_strategy"])
		})

		t.Run("Estratégia compatível passa", func(t *testing.T) {
			request := createRequest()
			request.StartDate = stringPtr(futureDate(7))
			request.CampaignType = stringPtr("SEARCH")
			request.Keywords = []string{"running shoes"}
			request.BiddingStrategy = stringPtr("manual_cpc")

			assert.True(t, ValidateCreateRequest(request).Empty())
		})

		t.Run("target_cpa exige o valor alvo", func(t *testing.T) {
			request := createRequest()
			request.StartDate = stringPtr(futureDate(7))
			request.BiddingStrategy = stringPtr("target_cpa")

			details := ValidateCreateRequest(request)

			assert.Equal(t, []string{"Target CPA value is required when using target_cpa bidding strategy"}, details["target_cpa"])

			request.TargetCPA = int64Ptr(10_000_000)
			assert.True(t, ValidateCreateRequest(request).Empty())
		})

		t.Run("target_roas exige o valor alvo", func(t *testing.T) {
			request := createRequest()
			request.StartDate = stringPtr(futureDate(7))
			request.CampaignType = stringPtr("SHOPPING")
			request.MerchantCenterID = stringPtr("1234567890")
			request.BiddingStrategy = stringPtr("target_roas")

			details := ValidateCreateRequest(request)

			assert.Equal(t, []string{"Target ROAS value is required when using target_roas bidding strategy"}, details["target_roas"])
		})

		t.Run("Valores alvo precisam ser positivos", func(t *testing.T) {
			request := createRequest()
			request.StartDate = stringPtr(futureDate(7))
			request.TargetCPA = int64Ptr(0)
			request.TargetROAS = float64Ptr(0.001)

			details := ValidateCreateRequest(request)

			assert.Equal(t, []string{"Target CPA must be greater than 0"}, details["target_cpa"])
			assert.Equal(t, []string{"Target ROAS must be greater than 0"}, details["target_roas"])
		})
	})

	t.Run("Limites dos criativos", func(t *testing.T) {
		tests := []struct {
			name     string
			mutate   func(*domain.CreateCampaignRequest)
			field    string
			expected string
		}{
			{
				name: "Título acima do teto reporta a posição",
				mutate: func(r *domain.CreateCampaignRequest) {
					r.Headlines = []string{"ok", "ok", strings.Repeat("a", 41)}
				},
				field:    "headlines",
				expected: "Headline 3 must be at most 40 characters",
			},
			{
				name: "Título longo acima do teto",
				mutate: func(r *domain.CreateCampaignRequest) {
					r.LongHeadline = stringPtr(strings.Repeat("a", 91))
				},
				field:    "long_headline",
				expected: "Long headline must be at most 90 characters",
			},
			{
				name: "Descrição acima do teto reporta a posição",
				mutate: func(r *domain.CreateCampaignRequest) {
					r.Descriptions = []string{"ok", strings.Repeat("a", 91)}
				},
				field:    "descriptions",
				expected: "Description 2 must be at most 90 characters",
			},
			{
				name: "Nome do negócio acima do teto",
				mutate: func(r *domain.CreateCampaignRequest) {
					r.BusinessName = stringPtr(strings.Repeat("a", 26))
				},
				field:    "business_name",
				expected: "Business name must be at most 25 characters",
			},
			{
				name: "Palavra-chave acima do teto",
				mutate: func(r *domain.CreateCampaignRequest) {
					r.Keywords = []string{strings.Repeat("a", 81)}
				},
				field:    "keywords",
				expected: "Keyword 1 must be at most 80 characters",
			},
			{
				name: "Merchant Center ID acima do teto",
				mutate: func(r *domain.CreateCampaignRequest) {
					r.MerchantCenterID = stringPtr(strings.Repeat("1", 101))
				},
				field:    "merchant_center_id",
				expected: "Merchant Center ID must be at most 100 characters",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				request := createRequest()
				request.StartDate = stringPtr(futureDate(7))
				tt.mutate(request)

				details := ValidateCreateRequest(request)

				assert.Equal(t, []string{tt.expected}, details[tt.field])
				assert.Len(t, details, 1)
			})
		}

		t.Run("Teto conta caracteres, não bytes", func(t *testing.T) {
			request := createRequest()
			request.StartDate = stringPtr(futureDate(7))
			request.Headlines = []string{strings.Repeat("é", 40)}

			assert.True(t, ValidateCreateRequest(request).Empty())
		})
	})

	t.Run("URLs precisam ser http(s) absolutas", func(t *testing.T) {
		tests := []struct {
			name  string
			url   string
			field string
			set   func(*domain.CreateCampaignRequest, *string)
		}{
			{
				name:  "Imagem sem esquema",
				url:   "cdn.acme.com/landscape.png",
				field: "images.landscape_url",
				set: func(r *domain.CreateCampaignRequest, u *string) {
					r.Images = &domain.CampaignImages{LandscapeURL: u}
				},
			},
			{
				name:  "Imagem com esquema ftp",
				url:   "ftp://cdn.acme.com/logo.png",
				field: "images.logo_url",
				set: func(r *domain.CreateCampaignRequest, u *string) {
					r.Images = &domain.CampaignImages{LogoURL: u}
				},
			},
			{
				name:  "Vídeo sem host",
				url:   "https://",
				field: "video_url",
				set: func(r *domain.CreateCampaignRequest, u *string) {
					r.VideoURL = u
				},
			},
			{
				name:  "URL final com esquema javascript",
				url:   "javascript:alert(1)",
				field: "final_url",
				set: func(r *domain.CreateCampaignRequest, u *string) {
					r.FinalURL = u
				},
			},
			{
				name:  "URL de asset relativa",
				url:   "/assets/banner.png",
				field: "asset_url",
				set: func(r *domain.CreateCampaignRequest, u *string) {
					r.AssetURL = u
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				request := createRequest()
				request.StartDate = stringPtr(futureDate(7))
				tt.set(request, stringPtr(tt.url))

				details := ValidateCreateRequest(request)

				assert.Equal(t, []string{"Invalid URL format"}, details[tt.field])
			})
		}
	})
}

func TestValidateUpdateRequest(t *testing.T) {
	t.Run("Patch vazio é aceito", func(t *testing.T) {
		assert.True(t, ValidateUpdateRequest(updateRequest(t, `{}`)).Empty())
	})

	t.Run("Chaves desconhecidas são ignoradas", func(t *testing.T) {
		assert.True(t, ValidateUpdateRequest(updateRequest(t, `{"color": "blue", "priority": 3}`)).Empty())
	})

	t.Run("null é rejeitado nos campos não anuláveis", func(t *testing.T) {
		for _, field := range []string{"name", "objective", "campaign_type", "daily_budget", "start_date"} {
			t.Run(field, func(t *testing.T) {
				details := ValidateUpdateRequest(updateRequest(t, `{"`+field+`": null}`))

				assert.Equal(t, []string{"Field may not be null"}, details[field])
			})
		}
	})

	t.Run("null limpa a data final sem erro", func(t *testing.T) {
		assert.True(t, ValidateUpdateRequest(updateRequest(t, `{"end_date": null}`)).Empty())
	})

	t.Run("Campos presentes são validados", func(t *testing.T) {
		tests := []struct {
			name     string
			payload  string
			field    string
			expected string
		}{
			{
				name:     "Objetivo desconhecido",
				payload:  `{"objective": "BRAND_AWARENESS"}`,
				field:    "objective",
				expected: "Objective must be one of: SALES, LEADS, WEBSITE_TRAFFIC",
			},
			{
				name:     "Tipo desconhecido",
				payload:  `{"campaign_type": "BANNER"}`,
				field:    "campaign_type",
				expected: "Invalid campaign type",
			},
			{
				name:     "Orçamento zerado",
				payload:  `{"daily_budget": 0}`,
				field:    "daily_budget",
				expected: "Daily budget must be greater than 0",
			},
			{
				name:     "Começo no passado",
				payload:  `{"start_date": "2020-01-01"}`,
				field:    "start_date",
				expected: "Start date cannot be in the past",
			},
			{
				name:     "Começo fora do formato",
				payload:  `{"start_date": "20260901"}`,
				field:    "start_date",
				expected: "Invalid date format. Use YYYY-MM-DD",
			},
			{
				name:     "Estratégia desconhecida",
				payload:  `{"bidding_strategy": "smart_bidding"}`,
				field:    "bidding_strategy",
				expected: "Invalid bidding strategy",
			},
			{
				name:     "CPA alvo zerado",
				payload:  `{"target_cpa": 0}`,
				field:    "target_cpa",
				expected: "Target CPA must be greater than 0",
			},
			{
				name:     "Título acima do teto",
				payload:  `{"headlines": ["` + strings.Repeat("a", 41) + `"]}`,
				field:    "headlines",
				expected: "Headline 1 must be at most 40 characters",
			},
			{
				name:     "Logo com URL inválida",
				payload:  `{"images": {"logo_url": "not-a-url"}}`,
				field:    "images.logo_url",
				expected: "Invalid URL format",
			},
			{
				name:     "URL final inválida",
				payload:  `{"final_url": "acme.com/sale"}`,
				field:    "final_url",
				expected: "Invalid URL format",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				details := ValidateUpdateRequest(updateRequest(t, tt.payload))

				assert.Equal(t, []string{tt.expected}, details[tt.field])
				assert.Len(t, details, 1)
			})
		}
	})

	t.Run("Fim antes do começo quando ambos estão no patch", func(t *testing.T) {
		payload := `{"start_date": "` + futureDate(10) + `", "end_date": "` + futureDate(5) + `"}`

		details := ValidateUpdateRequest(updateRequest(t, payload))

		assert.Equal(t, []string{"End date must be after start date"}, details["end_date"])
	})

	t.Run("Fim no passado sem começo no patch", func(t *testing.T) {
		details := ValidateUpdateRequest(updateRequest(t, `{"end_date": "2020-01-01"}`))

		assert.Equal(t, []string{"End date cannot be in the past"}, details["end_date"])
		assert.Len(t, details, 1)
	})

	// A combinação estratégia x tipo só é conferida na publicação; o patch
	// aceita os dois campos individualmente válidos
	t.Run("Compatibilidade da estratégia com o tipo não é checada no patch", func(t *testing.T) {
		payload := `{"campaign_type": "PERFORMANCE_MAX", "bidding_strategy": "manual_cpc"}`

		assert.True(t, ValidateUpdateRequest(updateRequest(t, payload)).Empty())
	})

	t.Run("target_cpa sem valor alvo é aceito no patch", func(t *testing.T) {
		assert.True(t, ValidateUpdateRequest(updateRequest(t, `{"bidding_strategy": "target_cpa"}`)).Empty())
	})
}

// futureDate devolve a data de hoje deslocada em dias, no formato da API
func futureDate(days int) string {
	return domain.Today().AddDate(0, 0, days).Format(domain.DateLayout)
}

func float64Ptr(f float64) *float64 {
	return &f
}
