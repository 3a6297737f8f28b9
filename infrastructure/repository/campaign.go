package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"

	campaignColumns = "c.id, c.owner_id, c.name, c.objective, c.campaign_type, c.status, " +
		"c.daily_budget, c.start_date, c.end_date, c.bidding_strategy, c.target_cpa, c.target_roas, " +
		"c.headlines, c.long_headline, c.descriptions, c.business_name, c.images, c.keywords, " +
		"c.video_url, c.merchant_center_id, c.ad_group_name, c.ad_headline, c.ad_description, " +
		"c.asset_url, c.final_url, c.google_campaign_id, c.google_ad_group_id, c.google_ad_id, " +
		"c.last_error, c.last_error_code, c.created_at, c.updated_at"
)

type CampaignRepository interface {
	Create(campaign *domain.Campaign) error
	GetByID(campaignID string) (*domain.Campaign, error)
	List(filter *domain.CampaignFilter) ([]*domain.Campaign, int, error)
	Update(campaign *domain.Campaign) error
	UpdateStatus(campaignID string, status domain.CampaignStatus, googleIDs *domain.GoogleAdsIDs) error
	MarkPublishError(campaignID, message, code string) error
	Delete(campaignID string) error
	ListRetryable(codes []string, limit int) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(campaign *domain.Campaign) error {
	headlinesJSON, err := serializeList(campaign.Headlines)
	if err != nil {
		return fmt.Errorf("erro ao serializar headlines para JSON: %w", err)
	}

	descriptionsJSON, err := serializeList(campaign.Descriptions)
	if err != nil {
		return fmt.Errorf("erro ao serializar descriptions para JSON: %w", err)
	}

	keywordsJSON, err := serializeList(campaign.Keywords)
	if err != nil {
		return fmt.Errorf("erro ao serializar keywords para JSON: %w", err)
	}

	imagesJSON, err := serializeImages(campaign.Images)
	if err != nil {
		return fmt.Errorf("erro ao serializar images para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns(
			"id", "owner_id", "name", "objective", "campaign_type", "status",
			"daily_budget", "start_date", "end_date", "bidding_strategy", "target_cpa", "target_roas",
			"headlines", "long_headline", "descriptions", "business_name", "images", "keywords",
			"video_url", "merchant_center_id", "ad_group_name", "ad_headline", "ad_description",
			"asset_url", "final_url", "created_at", "updated_at",
		).
		Values(
			campaign.ID, campaign.OwnerID, campaign.Name, campaign.Objective, campaign.CampaignType, campaign.Status,
			campaign.DailyBudget, campaign.StartDate, campaign.EndDate, campaign.BiddingStrategy, campaign.TargetCPA, campaign.TargetROAS,
			headlinesJSON, campaign.LongHeadline, descriptionsJSON, campaign.BusinessName, imagesJSON, keywordsJSON,
			campaign.VideoURL, campaign.MerchantCenterID, campaign.AdGroupName, campaign.AdHeadline, campaign.AdDescription,
			campaign.AssetURL, campaign.FinalURL, campaign.CreatedAt, campaign.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *campaignRepository) GetByID(campaignID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	campaign, err := r.deserializeCampaign(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) List(filter *domain.CampaignFilter) ([]*domain.Campaign, int, error) {
	total, err := r.countCampaigns(filter)
	if err != nil {
		return nil, 0, err
	}

	queryBuilder := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		OrderBy("c.created_at DESC").
		Limit(uint64(filter.PerPage)).
		Offset(uint64(filter.Offset())).
		PlaceholderFormat(squirrel.Dollar)

	if clause := campaignFilterClause(filter); len(clause) > 0 {
		queryBuilder = queryBuilder.Where(clause)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.deserializeCampaign(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, total, nil
}

func (r *campaignRepository) countCampaigns(filter *domain.CampaignFilter) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(campaignsTable).
		PlaceholderFormat(squirrel.Dollar)

	if clause := campaignFilterClause(filter); len(clause) > 0 {
		queryBuilder = queryBuilder.Where(clause)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar campanhas: %w", err)
	}

	return total, nil
}

func (r *campaignRepository) Update(campaign *domain.Campaign) error {
	headlinesJSON, err := serializeList(campaign.Headlines)
	if err != nil {
		return fmt.Errorf("erro ao serializar headlines para JSON: %w", err)
	}

	descriptionsJSON, err := serializeList(campaign.Descriptions)
	if err != nil {
		return fmt.Errorf("erro ao serializar descriptions para JSON: %w", err)
	}

	keywordsJSON, err := serializeList(campaign.Keywords)
	if err != nil {
		return fmt.Errorf("erro ao serializar keywords para JSON: %w", err)
	}

	imagesJSON, err := serializeImages(campaign.Images)
	if err != nil {
		return fmt.Errorf("erro ao serializar images para JSON: %w", err)
	}

	query := squirrel.
		Update("campaigns").
		Set("name", campaign.Name).
		Set("objective", campaign.Objective).
		Set("campaign_type", campaign.CampaignType).
		Set("daily_budget", campaign.DailyBudget).
		Set("start_date", campaign.StartDate).
		Set("end_date", campaign.EndDate).
		Set("bidding_strategy", campaign.BiddingStrategy).
		Set("target_cpa", campaign.TargetCPA).
		Set("target_roas", campaign.TargetROAS).
		Set("headlines", headlinesJSON).
		Set("long_headline", campaign.LongHeadline).
		Set("descriptions", descriptionsJSON).
		Set("business_name", campaign.BusinessName).
		Set("images", imagesJSON).
		Set("keywords", keywordsJSON).
		Set("video_url", campaign.VideoURL).
		Set("merchant_center_id", campaign.MerchantCenterID).
		Set("ad_group_name", campaign.AdGroupName).
		Set("ad_headline", campaign.AdHeadline).
		Set("ad_description", campaign.AdDescription).
		Set("asset_url", campaign.AssetURL).
		Set("final_url", campaign.FinalURL).
		Set("updated_at", campaign.UpdatedAt).
		Where(squirrel.Eq{"id": campaign.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// UpdateStatus muda o status da campanha. Quando a publicação devolve os IDs
// do Google Ads, eles são gravados junto; ao voltar para PUBLISHED o registro
// de erro anterior é limpo.
func (r *campaignRepository) UpdateStatus(campaignID string, status domain.CampaignStatus, googleIDs *domain.GoogleAdsIDs) error {
	queryBuilder := squirrel.
		Update("campaigns").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar)

	if googleIDs != nil {
		queryBuilder = queryBuilder.
			Set("google_campaign_id", googleIDs.CampaignID).
			Set("google_ad_group_id", googleIDs.AdGroupID).
			Set("google_ad_id", googleIDs.AdID)
	}

	if status == domain.CampaignStatusPublished {
		queryBuilder = queryBuilder.
			Set("last_error", nil).
			Set("last_error_code", nil)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// MarkPublishError registra a falha de publicação para o retry posterior
func (r *campaignRepository) MarkPublishError(campaignID, message, code string) error {
	queryBuilder := squirrel.
		Update("campaigns").
		Set("status", domain.CampaignStatusError).
		Set("last_error", message).
		Set("last_error_code", nullableText(code)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *campaignRepository) Delete(campaignID string) error {
	query, args, err := squirrel.
		Delete("campaigns").
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ListRetryable busca campanhas com erro de publicação passageiro, das mais
// antigas para as mais novas. Campanhas que já existem no Google Ads ficam de
// fora: o retry cobre apenas publicações que nunca completaram.
func (r *campaignRepository) ListRetryable(codes []string, limit int) ([]*domain.Campaign, error) {
	queryBuilder := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.status": domain.CampaignStatusError}).
		Where(squirrel.Eq{"c.google_campaign_id": nil}).
		OrderBy("c.updated_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if len(codes) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.last_error_code": codes})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.deserializeCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *campaignRepository) deserializeCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	var headlinesJSON, descriptionsJSON, imagesJSON, keywordsJSON []byte

	if err := row.Scan(
		&campaign.ID,
		&campaign.OwnerID,
		&campaign.Name,
		&campaign.Objective,
		&campaign.CampaignType,
		&campaign.Status,
		&campaign.DailyBudget,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.BiddingStrategy,
		&campaign.TargetCPA,
		&campaign.TargetROAS,
		&headlinesJSON,
		&campaign.LongHeadline,
		&descriptionsJSON,
		&campaign.BusinessName,
		&imagesJSON,
		&keywordsJSON,
		&campaign.VideoURL,
		&campaign.MerchantCenterID,
		&campaign.AdGroupName,
		&campaign.AdHeadline,
		&campaign.AdDescription,
		&campaign.AssetURL,
		&campaign.FinalURL,
		&campaign.GoogleCampaignID,
		&campaign.GoogleAdGroupID,
		&campaign.GoogleAdID,
		&campaign.LastError,
		&campaign.LastErrorCode,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if headlinesJSON != nil {
		if err := json.Unmarshal(headlinesJSON, &campaign.Headlines); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de headlines: %w", err)
		}
	}

	if descriptionsJSON != nil {
		if err := json.Unmarshal(descriptionsJSON, &campaign.Descriptions); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de descriptions: %w", err)
		}
	}

	if keywordsJSON != nil {
		if err := json.Unmarshal(keywordsJSON, &campaign.Keywords); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de keywords: %w", err)
		}
	}

	if imagesJSON != nil {
		if err := json.Unmarshal(imagesJSON, &campaign.Images); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de images: %w", err)
		}
	}

	return campaign, nil
}

func campaignFilterClause(filter *domain.CampaignFilter) squirrel.Eq {
	clause := squirrel.Eq{}

	if filter.Status != nil {
		clause["c.status"] = *filter.Status
	}

	if filter.OwnerID != nil {
		clause["c.owner_id"] = *filter.OwnerID
	}

	return clause
}

// serializeList converte a lista para JSON, preservando NULL quando o campo
// nunca foi enviado
func serializeList(values []string) ([]byte, error) {
	if values == nil {
		return nil, nil
	}

	return json.Marshal(values)
}

func serializeImages(images domain.CampaignImages) ([]byte, error) {
	if !images.HasAny() {
		return nil, nil
	}

	return json.Marshal(images)
}

func nullableText(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
