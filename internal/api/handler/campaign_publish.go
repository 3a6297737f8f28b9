package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
)

// PublishCampaign publica a campanha no Google Ads
func PublishCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PublishCampaign")

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, googleIDs, err := service.Publish(campaignID)
		if err != nil {
			logrus.Error("Error publishing campaign: ", err)
			writeCampaignError(w, err)
			return
		}

		resp := domain.PublishCampaignResponse{
			Message:   "Campaign published successfully",
			Campaign:  campaign,
			GoogleAds: googleIDs,
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}

// PauseCampaign pausa a veiculação de uma campanha publicada
func PauseCampaign(service campaigning.CampaignService) http.Handler {
	return campaignStatusHandler("PauseCampaign", "Campaign paused successfully", service.Pause)
}

// EnableCampaign retoma a veiculação de uma campanha pausada
func EnableCampaign(service campaigning.CampaignService) http.Handler {
	return campaignStatusHandler("EnableCampaign", "Campaign enabled successfully", service.Enable)
}

// ValidateCampaign avalia a prontidão da campanha sem publicá-la
func ValidateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ValidateCampaign")

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		checkImages := strings.EqualFold(r.URL.Query().Get("check_images"), "true")

		report, err := service.Validate(campaignID, checkImages)
		if err != nil {
			writeCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}

func campaignStatusHandler(
	name string,
	message string,
	transition func(campaignID string) (*domain.Campaign, error),
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ", name)

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := transition(campaignID)
		if err != nil {
			logrus.Errorf("Error on %s: %v", name, err)
			writeCampaignError(w, err)
			return
		}

		resp := domain.CampaignStatusResponse{
			Message:  message,
			Campaign: campaign,
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}
