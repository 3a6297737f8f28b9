package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CreateCampaign cria uma nova campanha em rascunho
func CreateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		var request domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Request body is required", nil)
			return
		}

		if details := campaigning.ValidateCreateRequest(&request); !details.Empty() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Validation error", details)
			return
		}

		campaign, err := service.Create(&request)
		if err != nil {
			logrus.Error("Error creating campaign: ", err)
			writeCampaignError(w, err)
			return
		}

		logrus.Infof("Campaign created: %s - %s", campaign.ID, campaign.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logrus.Error("Error encoding response: ", err)
		}
	})
}

// CampaignList lista campanhas com filtros e paginação
func CampaignList(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		list, err := service.List(campaignFilterFromQuery(r))
		if err != nil {
			logrus.Error("Error listing campaigns: ", err)
			writeCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(list); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}

// GetCampaign busca uma campanha pelo identificador
func GetCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.Get(campaignID)
		if err != nil {
			writeCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}

// UpdateCampaign aplica alterações parciais em uma campanha existente
func UpdateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCampaign")

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.UpdateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Request body is required", nil)
			return
		}

		if len(request.PresentFields()) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Request body is required", nil)
			return
		}

		if details := campaigning.ValidateUpdateRequest(&request); !details.Empty() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Validation error", details)
			return
		}

		campaign, err := service.Update(campaignID, &request)
		if err != nil {
			logrus.Error("Error updating campaign: ", err)
			writeCampaignError(w, err)
			return
		}

		logrus.Infof("Campaign updated: %s", campaign.ID)

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}

// DeleteCampaign remove uma campanha que ainda não foi publicada
func DeleteCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCampaign")

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(campaignID); err != nil {
			logrus.Error("Error deleting campaign: ", err)
			writeCampaignError(w, err)
			return
		}

		logrus.Infof("Campaign deleted: %s", campaignID)

		w.WriteHeader(http.StatusNoContent)
	})
}

// campaignFilterFromQuery monta o filtro de listagem a partir da query string
func campaignFilterFromQuery(r *http.Request) *domain.CampaignFilter {
	filter := &domain.CampaignFilter{
		Page:    queryInt(r, "page", 1),
		PerPage: queryInt(r, "per_page", domain.DefaultPerPage),
	}

	if status := r.URL.Query().Get("status"); status != "" {
		campaignStatus := domain.CampaignStatus(strings.ToUpper(status))
		filter.Status = &campaignStatus
	}

	if ownerID := r.URL.Query().Get("owner_id"); ownerID != "" {
		filter.OwnerID = &ownerID
	}

	return filter
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

// writeCampaignError converte erros do caso de uso em respostas HTTP. Os
// detalhes de infraestrutura nunca aparecem no corpo da resposta.
func writeCampaignError(w http.ResponseWriter, err error) {
	var campaignErr *campaigning.CampaignError
	if !errors.As(err, &campaignErr) {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
		return
	}

	switch {
	case errors.Is(err, googleads.ErrNotConfigured):
		apiErrors.WriteErrorWithHint(w, campaignErr.Code, campaignErr.Error(),
			"Please configure Google Ads credentials to publish campaigns")

	case errors.Is(err, campaigning.ErrNotReadyForPublish):
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Err.Error(), campaignErr.Violations)

	case errors.Is(err, campaigning.ErrSaveCampaign),
		errors.Is(err, campaigning.ErrFetchCampaigns),
		errors.Is(err, campaigning.ErrDeleteCampaign),
		errors.Is(err, campaigning.ErrGenerateID):
		apiErrors.WriteError(w, campaignErr.Code, "Internal server error", nil)

	default:
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
	}
}
