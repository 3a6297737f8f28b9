package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDate(t *testing.T) {
	recife := time.FixedZone("America/Recife", -3*60*60)

	date := NewDate(time.Date(2026, time.September, 1, 23, 45, 10, 0, recife))

	// Vale a data de calendário do fuso original, normalizada para meia-noite UTC
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), date.Time)
}

func TestParseDate(t *testing.T) {
	t.Run("Formato YYYY-MM-DD é aceito", func(t *testing.T) {
		date, err := ParseDate("2026-09-01")

		assert.NoError(t, err)
		assert.Equal(t, "2026-09-01", date.Format(DateLayout))
	})

	t.Run("Outros formatos são rejeitados", func(t *testing.T) {
		_, err := ParseDate("01/09/2026")

		assert.Error(t, err)
	})
}

func TestDate_JSON(t *testing.T) {
	t.Run("Data preenchida serializa como YYYY-MM-DD", func(t *testing.T) {
		payload, err := json.Marshal(NewDate(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)))

		assert.NoError(t, err)
		assert.Equal(t, `"2026-09-01"`, string(payload))
	})

	t.Run("Data zerada serializa como null", func(t *testing.T) {
		payload, err := json.Marshal(Date{})

		assert.NoError(t, err)
		assert.Equal(t, "null", string(payload))
	})

	t.Run("String de data preenche o valor", func(t *testing.T) {
		var date Date

		assert.NoError(t, json.Unmarshal([]byte(`"2026-09-01"`), &date))
		assert.Equal(t, "2026-09-01", date.Format(DateLayout))
	})

	t.Run("Null limpa o valor", func(t *testing.T) {
		date := Today()

		assert.NoError(t, json.Unmarshal([]byte("null"), &date))
		assert.True(t, date.IsZero())
	})

	t.Run("String vazia limpa o valor", func(t *testing.T) {
		date := Today()

		assert.NoError(t, json.Unmarshal([]byte(`""`), &date))
		assert.True(t, date.IsZero())
	})

	t.Run("Formato inválido é rejeitado", func(t *testing.T) {
		var date Date

		assert.Error(t, json.Unmarshal([]byte(`"01/09/2026"`), &date))
	})
}

func TestDate_Scan(t *testing.T) {
	t.Run("Null zera a data", func(t *testing.T) {
		date := Today()

		assert.NoError(t, date.Scan(nil))
		assert.True(t, date.IsZero())
	})

	t.Run("time.Time é aceito direto", func(t *testing.T) {
		var date Date
		scanned := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

		assert.NoError(t, date.Scan(scanned))
		assert.Equal(t, scanned, date.Time)
	})

	t.Run("Bytes e string são interpretados como YYYY-MM-DD", func(t *testing.T) {
		var date Date

		assert.NoError(t, date.Scan([]byte("2026-09-01")))
		assert.Equal(t, "2026-09-01", date.Format(DateLayout))

		assert.NoError(t, date.Scan("2026-10-15"))
		assert.Equal(t, "2026-10-15", date.Format(DateLayout))
	})

	t.Run("Formato inválido é rejeitado", func(t *testing.T) {
		var date Date

		assert.Error(t, date.Scan("31-12-2026"))
	})

	t.Run("Tipo inesperado é rejeitado", func(t *testing.T) {
		var date Date

		assert.EqualError(t, date.Scan(42), "tipo inesperado para Date: int")
	})
}

func TestDate_Value(t *testing.T) {
	t.Run("Data preenchida vira time.Time", func(t *testing.T) {
		date := NewDate(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC))

		value, err := date.Value()

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), value)
	})

	t.Run("Data zerada vira NULL", func(t *testing.T) {
		value, err := Date{}.Value()

		assert.NoError(t, err)
		assert.Nil(t, value)
	})
}

func TestDate_BeforeAfter(t *testing.T) {
	earlier := NewDate(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC))
	later := NewDate(time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC))

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))

	// Comparação estrita: datas iguais não são nem antes nem depois
	assert.False(t, earlier.Before(earlier))
	assert.False(t, earlier.After(earlier))
}

func TestCampaignImages_HasAny(t *testing.T) {
	assert.False(t, CampaignImages{}.HasAny())
	assert.False(t, CampaignImages{LandscapeURL: stringPtr("")}.HasAny())
	assert.True(t, CampaignImages{LogoURL: stringPtr("https://cdn.acme.com/logo.png")}.HasAny())
}

func TestCampaign_IsPublishedToGoogle(t *testing.T) {
	assert.False(t, (&Campaign{}).IsPublishedToGoogle())
	assert.False(t, (&Campaign{GoogleCampaignID: stringPtr("")}).IsPublishedToGoogle())

	// O ID remoto decide, independente do status local
	published := &Campaign{Status: CampaignStatusDraft, GoogleCampaignID: stringPtr("9876543210")}
	assert.True(t, published.IsPublishedToGoogle())
}

func TestCampaign_MarshalJSON(t *testing.T) {
	t.Run("Valores monetários ganham a conversão para USD", func(t *testing.T) {
		targetCPA := int64(2_500_000)

		campaign := Campaign{
			ID:           "aB3dE9",
			OwnerID:      stringPtr("user-1"),
			Name:         "Summer Sale",
			Objective:    ObjectiveSales,
			CampaignType: CampaignTypeDemandGen,
			Status:       CampaignStatusDraft,
			DailyBudget:  50_000_000,
			StartDate:    NewDate(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)),
			TargetCPA:    &targetCPA,
		}

		payload, err := json.Marshal(campaign)
		assert.NoError(t, err)

		var decoded map[string]any
		assert.NoError(t, json.Unmarshal(payload, &decoded))

		assert.Equal(t, "aB3dE9", decoded["id"])
		assert.Equal(t, 50.0, decoded["daily_budget_usd"])
		assert.Equal(t, 2.5, decoded["target_cpa_usd"])
		assert.Equal(t, "2026-09-01", decoded["start_date"])
		assert.Nil(t, decoded["end_date"])

		// O dono da campanha nunca aparece no payload
		assert.NotContains(t, decoded, "owner_id")
	})

	t.Run("Sem target CPA a conversão fica null", func(t *testing.T) {
		payload, err := json.Marshal(Campaign{DailyBudget: 1_000_000})
		assert.NoError(t, err)

		var decoded map[string]any
		assert.NoError(t, json.Unmarshal(payload, &decoded))

		assert.Equal(t, 1.0, decoded["daily_budget_usd"])
		assert.Contains(t, decoded, "target_cpa_usd")
		assert.Nil(t, decoded["target_cpa_usd"])
	})
}

func TestCampaignEnums_Valid(t *testing.T) {
	t.Run("Objetivos", func(t *testing.T) {
		for _, objective := range Objectives {
			assert.True(t, objective.Valid(), string(objective))
		}

		assert.False(t, CampaignObjective("BRAND_AWARENESS").Valid())
		assert.False(t, CampaignObjective("").Valid())
	})

	t.Run("Tipos de campanha", func(t *testing.T) {
		for _, campaignType := range CampaignTypes {
			assert.True(t, campaignType.Valid(), string(campaignType))
		}

		assert.False(t, CampaignType("APP").Valid())
	})

	t.Run("Status", func(t *testing.T) {
		for _, status := range []CampaignStatus{
			CampaignStatusDraft,
			CampaignStatusPublished,
			CampaignStatusPaused,
			CampaignStatusError,
		} {
			assert.True(t, status.Valid(), string(status))
		}

		assert.False(t, CampaignStatus("ARCHIVED").Valid())
	})
}

func stringPtr(value string) *string {
	return &value
}
