package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/campaign-manager-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
)

func Healthcheck(conn postgres.Conn, integrator googleads.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn, integrator),
		},
		{
			Path:    "/api/health/live",
			Method:  http.MethodGet,
			Handler: LivenessHandler(),
		},
		{
			Path:    "/api/health/ready",
			Method:  http.MethodGet,
			Handler: ReadinessHandler(conn),
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/api/campaigns",
			Method:  http.MethodGet,
			Handler: CampaignList(service),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id/publish",
			Method:  http.MethodPost,
			Handler: PublishCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id/pause",
			Method:  http.MethodPost,
			Handler: PauseCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id/enable",
			Method:  http.MethodPost,
			Handler: EnableCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id/validate",
			Method:  http.MethodPost,
			Handler: ValidateCampaign(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/sync",
			Method:  http.MethodPost,
			Handler: RunCronJobs(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
