package handler

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/internal/scheduler"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
)

// CronJobPublishRetry identifica a job de republicação de campanhas com erro passageiro
const CronJobPublishRetry = "publish_retry"

// CronJobServices contém os serviços de cron disponíveis para disparo manual
type CronJobServices struct {
	PublishRetryService *scheduler.PublishRetryService
}

type cronSyncRequest struct {
	Jobs []string `json:"jobs"`
}

// RunCronJobs dispara manualmente as jobs informadas no corpo da requisição
func RunCronJobs(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJobs")

		var request cronSyncRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || len(request.Jobs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"Nenhuma job informada. Valores aceitos: publish_retry", nil)
			return
		}

		for _, job := range request.Jobs {
			switch job {
			case CronJobPublishRetry:
				if services.PublishRetryService == nil {
					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de republicação não disponível", nil)
					return
				}
				services.PublishRetryService.TriggerManualSync()

			default:
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					fmt.Sprintf("Job inválida: %s. Valores aceitos: publish_retry", job), nil)
				return
			}
		}

		response := map[string]any{
			"message": "Jobs iniciadas com sucesso",
			"jobs":    request.Jobs,
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error("Error encoding response: ", err)
		}
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if services.PublishRetryService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de republicação não disponível", nil)
			return
		}

		status := map[string]any{
			"publish_retry": services.PublishRetryService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error("Error encoding response: ", err)
		}
	})
}
