package campaigning

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/validating"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

// Eventos de auditoria do ciclo de vida de campanhas
const (
	auditCampaignCreated       = "CAMPAIGN_CREATED"
	auditCampaignUpdated       = "CAMPAIGN_UPDATED"
	auditCampaignStatusChanged = "CAMPAIGN_STATUS_CHANGED"
	auditCampaignDeleted       = "CAMPAIGN_DELETED"
)

type CampaignService interface {
	Create(request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	Get(campaignID string) (*domain.Campaign, error)
	List(filter *domain.CampaignFilter) (*domain.CampaignList, error)
	Update(campaignID string, request *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	Delete(campaignID string) error
	Publish(campaignID string) (*domain.Campaign, *domain.GoogleAdsIDs, error)
	Pause(campaignID string) (*domain.Campaign, error)
	Enable(campaignID string) (*domain.Campaign, error)
	Validate(campaignID string, checkImages bool) (*validating.Report, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	integrator         googleads.Integrator
	validator          validating.Validator
}

func NewService(
	campaignRepository repository.CampaignRepository,
	integrator googleads.Integrator,
	validator validating.Validator,
) CampaignService {
	return &Service{
		campaignRepository: campaignRepository,
		integrator:         integrator,
		validator:          validator,
	}
}

// Create registra uma campanha nova com status DRAFT
func (s *Service) Create(request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if field, missing := missingRequiredField(request); missing {
		return nil, NewCampaignError(ErrMissingRequiredField, apiErrors.ErrMissingRequiredData, field)
	}

	startDate, err := domain.ParseDate(*request.StartDate)
	if err != nil {
		return nil, NewCampaignError(ErrInvalidDateFormat, apiErrors.ErrInvalidFormat, "")
	}

	var endDate *domain.Date
	if hasValue(request.EndDate) {
		parsed, err := domain.ParseDate(*request.EndDate)
		if err != nil {
			return nil, NewCampaignError(ErrInvalidDateFormat, apiErrors.ErrInvalidFormat, "")
		}
		endDate = &parsed
	}

	campaignType := domain.CampaignTypeDemandGen
	if hasValue(request.CampaignType) {
		campaignType = domain.CampaignType(*request.CampaignType)
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.Error("Error generating campaign ID: ", err)
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "")
	}

	now := time.Now().UTC()

	campaign := &domain.Campaign{
		ID:               id,
		OwnerID:          request.OwnerID,
		Name:             *request.Name,
		Objective:        domain.CampaignObjective(*request.Objective),
		CampaignType:     campaignType,
		Status:           domain.CampaignStatusDraft,
		DailyBudget:      *request.DailyBudget,
		StartDate:        startDate,
		EndDate:          endDate,
		BiddingStrategy:  toBiddingStrategy(request.BiddingStrategy),
		TargetCPA:        request.TargetCPA,
		TargetROAS:       request.TargetROAS,
		Headlines:        request.Headlines,
		LongHeadline:     request.LongHeadline,
		Descriptions:     request.Descriptions,
		BusinessName:     request.BusinessName,
		Keywords:         request.Keywords,
		VideoURL:         request.VideoURL,
		MerchantCenterID: request.MerchantCenterID,
		AdGroupName:      request.AdGroupName,
		AdHeadline:       request.AdHeadline,
		AdDescription:    request.AdDescription,
		AssetURL:         request.AssetURL,
		FinalURL:         request.FinalURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if request.Images != nil {
		campaign.Images = *request.Images
	}

	if err := s.campaignRepository.Create(campaign); err != nil {
		logrus.Error("Database error creating campaign: ", err)
		return nil, NewCampaignError(ErrSaveCampaign, apiErrors.ErrDatabaseOperation, "")
	}

	logrus.WithFields(logrus.Fields{
		"id":    campaign.ID,
		"name":  campaign.Name,
		"type":  campaign.CampaignType,
		"owner": ownerLabel(campaign.OwnerID),
	}).Info(auditCampaignCreated)

	return campaign, nil
}

func (s *Service) Get(campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepository.GetByID(campaignID)
	if err != nil {
		logrus.Error("Database error fetching campaign: ", err)
		return nil, NewCampaignErrorWithID(ErrFetchCampaigns, apiErrors.ErrDatabaseOperation, campaignID, "")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	return campaign, nil
}

func (s *Service) List(filter *domain.CampaignFilter) (*domain.CampaignList, error) {
	filter.Normalize()

	campaigns, total, err := s.campaignRepository.List(filter)
	if err != nil {
		logrus.Error("Database error listing campaigns: ", err)
		return nil, NewCampaignError(ErrFetchCampaigns, apiErrors.ErrDatabaseOperation, "")
	}

	return &domain.CampaignList{
		Campaigns:  campaigns,
		Pagination: domain.NewPagination(filter.Page, filter.PerPage, total),
	}, nil
}

// Update aplica um patch parcial na campanha. Campanhas publicadas têm os
// campos objective, campaign_type e start_date congelados.
func (s *Service) Update(campaignID string, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := s.Get(campaignID)
	if err != nil {
		return nil, err
	}

	if campaign.Status == domain.CampaignStatusPublished {
		for _, field := range domain.LockedFieldsWhenPublished {
			if request.Has(field) {
				return nil, &CampaignError{
					Err:        fmt.Errorf("Cannot update %s for a published campaign", field),
					Code:       apiErrors.ErrCampaignFieldLocked,
					CampaignID: campaignID,
				}
			}
		}
	}

	changedFields, err := applyUpdate(campaign, request)
	if err != nil {
		return nil, err
	}

	campaign.UpdatedAt = time.Now().UTC()

	if err := s.campaignRepository.Update(campaign); err != nil {
		logrus.Error("Database error updating campaign: ", err)
		return nil, NewCampaignErrorWithID(ErrSaveCampaign, apiErrors.ErrDatabaseOperation, campaignID, "")
	}

	logrus.WithFields(logrus.Fields{
		"id":     campaign.ID,
		"fields": changedFields,
		"owner":  ownerLabel(campaign.OwnerID),
	}).Info(auditCampaignUpdated)

	return campaign, nil
}

// Delete remove uma campanha que ainda não chegou ao Google Ads
func (s *Service) Delete(campaignID string) error {
	campaign, err := s.Get(campaignID)
	if err != nil {
		return err
	}

	if campaign.IsPublishedToGoogle() {
		return NewCampaignErrorWithID(ErrPublishedNotDeleted, apiErrors.ErrCampaignNotDeletable, campaignID, "")
	}

	if err := s.campaignRepository.Delete(campaignID); err != nil {
		logrus.Error("Database error deleting campaign: ", err)
		return NewCampaignErrorWithID(ErrDeleteCampaign, apiErrors.ErrDatabaseOperation, campaignID, "")
	}

	logrus.WithFields(logrus.Fields{
		"id":    campaignID,
		"name":  campaign.Name,
		"owner": ownerLabel(campaign.OwnerID),
	}).Info(auditCampaignDeleted)

	return nil
}

// Publish valida a campanha, cria os recursos no Google Ads e registra os IDs
// remotos. Falhas depois das checagens iniciais marcam a campanha como ERROR
// com a causa sanitizada, sem interromper o fluxo de erro principal.
func (s *Service) Publish(campaignID string) (*domain.Campaign, *domain.GoogleAdsIDs, error) {
	campaign, err := s.Get(campaignID)
	if err != nil {
		return nil, nil, err
	}

	if campaign.Status == domain.CampaignStatusPublished {
		return nil, nil, NewCampaignErrorWithID(ErrAlreadyPublished, apiErrors.ErrCampaignPublished, campaignID, "")
	}

	if violations := s.validator.ValidateForPublish(campaign); len(violations) > 0 {
		return nil, nil, &CampaignError{
			Err:        ErrNotReadyForPublish,
			Code:       apiErrors.ErrCampaignNotReady,
			CampaignID: campaignID,
			Violations: violations,
		}
	}

	if !s.integrator.IsConfigured() {
		return nil, nil, NewCampaignErrorWithID(googleads.ErrNotConfigured, apiErrors.ErrAdsNotConfigured, campaignID, "")
	}

	oldStatus := campaign.Status

	googleIDs, err := s.integrator.PublishCampaign(campaign)
	if err != nil {
		return nil, nil, s.failPublish(campaign, err)
	}

	if err := s.campaignRepository.UpdateStatus(campaignID, domain.CampaignStatusPublished, googleIDs); err != nil {
		return nil, nil, s.failPublish(campaign, err)
	}

	logrus.Infof("Campaign %s published to Google Ads: campaign_id=%s", campaignID, googleIDs.CampaignID)
	logrus.WithFields(logrus.Fields{
		"id":         campaignID,
		"old_status": oldStatus,
		"new_status": domain.CampaignStatusPublished,
		"owner":      ownerLabel(campaign.OwnerID),
	}).Info(auditCampaignStatusChanged)

	campaign.Status = domain.CampaignStatusPublished
	campaign.GoogleCampaignID = &googleIDs.CampaignID
	campaign.GoogleAdGroupID = &googleIDs.AdGroupID
	campaign.GoogleAdID = googleIDs.AdID
	campaign.LastError = nil
	campaign.LastErrorCode = nil

	return s.reload(campaign), googleIDs, nil
}

func (s *Service) Pause(campaignID string) (*domain.Campaign, error) {
	return s.changeCampaignStatus(campaignID, domain.CampaignStatusPaused, ErrPauseFailed)
}

func (s *Service) Enable(campaignID string) (*domain.Campaign, error) {
	return s.changeCampaignStatus(campaignID, domain.CampaignStatusPublished, ErrEnableFailed)
}

// changeCampaignStatus pausa ou reativa no Google Ads uma campanha já
// publicada e espelha o novo status localmente
func (s *Service) changeCampaignStatus(campaignID string, status domain.CampaignStatus, failure error) (*domain.Campaign, error) {
	campaign, err := s.Get(campaignID)
	if err != nil {
		return nil, err
	}

	if !campaign.IsPublishedToGoogle() {
		return nil, NewCampaignErrorWithID(ErrNotPublished, apiErrors.ErrCampaignNotPublished, campaignID, "")
	}

	if status == domain.CampaignStatusPaused {
		err = s.integrator.PauseCampaign(*campaign.GoogleCampaignID)
	} else {
		err = s.integrator.EnableCampaign(*campaign.GoogleCampaignID)
	}
	if err != nil {
		logrus.Errorf("Error changing campaign %s status in Google Ads: %v", campaignID, err)
		return nil, NewCampaignErrorWithID(failure, apiErrors.ErrAdsMutateFailed, campaignID, apiErrors.Sanitize(err.Error()))
	}

	if err := s.campaignRepository.UpdateStatus(campaignID, status, nil); err != nil {
		logrus.Errorf("Database error updating campaign %s status: %v", campaignID, err)
		return nil, NewCampaignErrorWithID(failure, apiErrors.ErrDatabaseOperation, campaignID, apiErrors.Sanitize(err.Error()))
	}

	logrus.WithFields(logrus.Fields{
		"id":         campaignID,
		"old_status": campaign.Status,
		"new_status": status,
		"owner":      ownerLabel(campaign.OwnerID),
	}).Info(auditCampaignStatusChanged)

	campaign.Status = status

	return s.reload(campaign), nil
}

// Validate executa a validação prévia sem publicar. Com checkImages as
// imagens do criativo são baixadas e conferidas; problemas de imagem entram
// como avisos, não como erros bloqueantes.
func (s *Service) Validate(campaignID string, checkImages bool) (*validating.Report, error) {
	campaign, err := s.Get(campaignID)
	if err != nil {
		return nil, err
	}

	report := s.validator.Report(campaign)

	if checkImages && campaign.Images.HasAny() {
		report.Warnings = append(report.Warnings, s.validator.ValidateCampaignImages(campaign.Images)...)
	}

	logrus.Infof("Validation for campaign %s: valid=%t, errors=%d", campaignID, report.Valid, len(report.Errors))

	return report, nil
}

// failPublish marca a campanha como ERROR em melhor esforço e devolve o erro
// de publicação com a causa sanitizada. Uma falha secundária na marcação é
// registrada e engolida para não mascarar o erro original.
func (s *Service) failPublish(campaign *domain.Campaign, cause error) error {
	logrus.Errorf("Error publishing campaign %s: %v", campaign.ID, cause)

	message := apiErrors.Sanitize(cause.Error())

	if err := s.campaignRepository.MarkPublishError(campaign.ID, message, publishErrorCode(cause)); err != nil {
		logrus.Warnf("Could not mark campaign %s as ERROR: %v", campaign.ID, err)
	}

	return NewCampaignErrorWithID(ErrPublishFailed, apiErrors.ErrCampaignPublishFailed, campaign.ID, message)
}

// reload relê a campanha para refletir valores gerados pelo banco. Em caso de
// falha a cópia local já atualizada é devolvida.
func (s *Service) reload(campaign *domain.Campaign) *domain.Campaign {
	updated, err := s.campaignRepository.GetByID(campaign.ID)
	if err != nil || updated == nil {
		logrus.Warnf("Could not reload campaign %s after status change: %v", campaign.ID, err)
		return campaign
	}

	return updated
}

// missingRequiredField devolve o primeiro campo obrigatório ausente, na ordem
// fixa do contrato de criação
func missingRequiredField(request *domain.CreateCampaignRequest) (string, bool) {
	switch {
	case request.Name == nil:
		return "name", true
	case request.Objective == nil:
		return "objective", true
	case request.DailyBudget == nil:
		return "daily_budget", true
	case request.StartDate == nil:
		return "start_date", true
	}

	return "", false
}

// publishErrorCode extrai o código do erro da API do Google Ads para permitir
// o reprocessamento de falhas transitórias. Erros locais não têm código.
func publishErrorCode(err error) string {
	var mutateErr *googleads.MutateError
	if errors.As(err, &mutateErr) {
		return mutateErr.Code()
	}

	return ""
}

func toBiddingStrategy(value *string) *domain.BiddingStrategy {
	if value == nil || *value == "" {
		return nil
	}

	strategy := domain.BiddingStrategy(*value)

	return &strategy
}

func ownerLabel(ownerID *string) string {
	if ownerID == nil {
		return ""
	}

	return *ownerID
}
