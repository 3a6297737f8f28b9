package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type CampaignObjective string

const (
	ObjectiveSales          CampaignObjective = "SALES"
	ObjectiveLeads          CampaignObjective = "LEADS"
	ObjectiveWebsiteTraffic CampaignObjective = "WEBSITE_TRAFFIC"
)

// Objectives lista os objetivos aceitos, na ordem exibida nas mensagens de validação
var Objectives = []CampaignObjective{ObjectiveSales, ObjectiveLeads, ObjectiveWebsiteTraffic}

func (o CampaignObjective) Valid() bool {
	for _, objective := range Objectives {
		if o == objective {
			return true
		}
	}

	return false
}

type CampaignType string

const (
	CampaignTypeDemandGen      CampaignType = "DEMAND_GEN"
	CampaignTypeSearch         CampaignType = "SEARCH"
	CampaignTypeDisplay        CampaignType = "DISPLAY"
	CampaignTypeVideo          CampaignType = "VIDEO"
	CampaignTypeShopping       CampaignType = "SHOPPING"
	CampaignTypePerformanceMax CampaignType = "PERFORMANCE_MAX"
)

var CampaignTypes = []CampaignType{
	CampaignTypeDemandGen,
	CampaignTypeSearch,
	CampaignTypeDisplay,
	CampaignTypeVideo,
	CampaignTypeShopping,
	CampaignTypePerformanceMax,
}

func (t CampaignType) Valid() bool {
	for _, campaignType := range CampaignTypes {
		if t == campaignType {
			return true
		}
	}

	return false
}

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusPublished CampaignStatus = "PUBLISHED"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusError     CampaignStatus = "ERROR"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusPublished, CampaignStatusPaused, CampaignStatusError:
		return true
	}

	return false
}

// DateLayout é o formato de calendário usado em toda a API
const DateLayout = "2006-01-02"

// Date é uma data de calendário (sem horário) serializada como YYYY-MM-DD
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	return NewDate(time.Now())
}

// ParseDate interpreta uma data no formato YYYY-MM-DD
func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, err
	}

	return Date{parsed}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "null" || value == "" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return err
	}

	d.Time = parsed

	return nil
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// Scan lê uma coluna DATE do banco
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		d.Time = v
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("tipo inesperado para Date: %T", value)
	}

	return nil
}

func (d *Date) parse(value string) error {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return fmt.Errorf("erro ao converter data: %w", err)
	}

	d.Time = parsed

	return nil
}

// Value grava a data como DATE, NULL quando zerada
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.Time, nil
}

// CampaignImages agrupa as URLs de imagem do criativo
type CampaignImages struct {
	LandscapeURL *string `json:"landscape_url"`
	SquareURL    *string `json:"square_url"`
	LogoURL      *string `json:"logo_url"`
}

func (i CampaignImages) HasAny() bool {
	return hasValue(i.LandscapeURL) || hasValue(i.SquareURL) || hasValue(i.LogoURL)
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}

type Campaign struct {
	ID           string            `json:"id"`
	OwnerID      *string           `json:"-"`
	Name         string            `json:"name"`
	Objective    CampaignObjective `json:"objective"`
	CampaignType CampaignType      `json:"campaign_type"`
	Status       CampaignStatus    `json:"status"`
	DailyBudget  int64             `json:"daily_budget"`
	StartDate    Date              `json:"start_date"`
	EndDate      *Date             `json:"end_date"`

	BiddingStrategy *BiddingStrategy `json:"bidding_strategy"`
	TargetCPA       *int64           `json:"target_cpa"`
	TargetROAS      *float64         `json:"target_roas"`

	Headlines        []string       `json:"headlines"`
	LongHeadline     *string        `json:"long_headline"`
	Descriptions     []string       `json:"descriptions"`
	BusinessName     *string        `json:"business_name"`
	Images           CampaignImages `json:"images"`
	Keywords         []string       `json:"keywords"`
	VideoURL         *string        `json:"video_url"`
	MerchantCenterID *string        `json:"merchant_center_id"`

	// Campos legados de anúncio único, ainda usados como fallback na publicação
	AdGroupName   *string `json:"ad_group_name"`
	AdHeadline    *string `json:"ad_headline"`
	AdDescription *string `json:"ad_description"`
	AssetURL      *string `json:"asset_url"`
	FinalURL      *string `json:"final_url"`

	GoogleCampaignID *string `json:"google_campaign_id"`
	GoogleAdGroupID  *string `json:"google_ad_group_id"`
	GoogleAdID       *string `json:"google_ad_id"`

	LastError     *string `json:"last_error"`
	LastErrorCode *string `json:"last_error_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPublishedToGoogle indica se a campanha já existe no Google Ads. O ID da
// campanha remota é a marca definitiva, independente do status local.
func (c *Campaign) IsPublishedToGoogle() bool {
	return hasValue(c.GoogleCampaignID)
}

// MarshalJSON acrescenta os valores monetários convertidos de micros para USD
func (c Campaign) MarshalJSON() ([]byte, error) {
	type campaignAlias Campaign

	var targetCPAUSD *float64
	if c.TargetCPA != nil {
		usd := float64(*c.TargetCPA) / 1_000_000
		targetCPAUSD = &usd
	}

	return json.Marshal(struct {
		campaignAlias
		DailyBudgetUSD float64  `json:"daily_budget_usd"`
		TargetCPAUSD   *float64 `json:"target_cpa_usd"`
	}{
		campaignAlias:  campaignAlias(c),
		DailyBudgetUSD: float64(c.DailyBudget) / 1_000_000,
		TargetCPAUSD:   targetCPAUSD,
	})
}
