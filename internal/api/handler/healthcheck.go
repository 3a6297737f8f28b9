package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
)

type databaseCheck struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message"`
}

type googleAdsCheck struct {
	Healthy    bool   `json:"healthy"`
	Configured bool   `json:"configured"`
	Message    string `json:"message"`
}

type healthChecks struct {
	Database  databaseCheck  `json:"database"`
	GoogleAds googleAdsCheck `json:"google_ads"`
}

type healthResponse struct {
	Status string       `json:"status"`
	Checks healthChecks `json:"checks"`
}

type readinessResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthcheckHandler reporta a saúde das dependências do serviço. A falta de
// configuração do Google Ads não derruba a saúde, apenas o banco de dados.
func HealthcheckHandler(conn postgres.Conn, integrator googleads.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{
			Status: "healthy",
			Checks: healthChecks{
				Database:  checkDatabase(conn),
				GoogleAds: checkGoogleAds(integrator),
			},
		}

		status := http.StatusOK
		if !resp.Checks.Database.Healthy {
			resp.Status = "unhealthy"
			status = http.StatusInternalServerError
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logrus.Error("Error encoding response: ", err)
		}
	})
}

// LivenessHandler indica que o processo está de pé, sem tocar dependências
func LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(readinessResponse{Status: "alive"}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}

// ReadinessHandler indica se o serviço está pronto para receber tráfego
func ReadinessHandler(conn postgres.Conn) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var one int
		if err := conn.QueryRow("SELECT 1").Scan(&one); err != nil {
			logrus.Error("Readiness check failed: ", err)

			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(readinessResponse{
				Status: "not ready",
				Error:  "Service temporarily unavailable",
			})
			return
		}

		if err := json.NewEncoder(w).Encode(readinessResponse{Status: "ready"}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}

func checkDatabase(conn postgres.Conn) databaseCheck {
	var one int
	if err := conn.QueryRow("SELECT 1").Scan(&one); err != nil {
		logrus.Error("Database health check failed: ", err)
		return databaseCheck{Healthy: false, Message: "Database connection failed"}
	}

	return databaseCheck{Healthy: true, Message: "Database connection OK"}
}

func checkGoogleAds(integrator googleads.Integrator) googleAdsCheck {
	configured := integrator.IsConfigured()

	message := "Google Ads API not configured"
	if configured {
		message = "Google Ads API configured"
	}

	return googleAdsCheck{Healthy: true, Configured: configured, Message: message}
}
