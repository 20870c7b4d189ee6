package controllers

import (
	"net/http"

	"github.com/alquigo/alquigo-backend/api/responses"
	"github.com/alquigo/alquigo-backend/pkg/config"
	"github.com/alquigo/alquigo-backend/pkg/db"
	"github.com/alquigo/alquigo-backend/pkg/logger"
	"github.com/alquigo/alquigo-backend/pkg/redis"
)

const envHeader = "X-AlquiGo-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the datasources and reports per-dependency status.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		deps := map[string]string{}
		healthy := true

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				deps["postgres"] = "down"
				healthy = false
				if logg != nil {
					logg.Error(r.Context(), "health.postgres", err)
				}
			} else {
				deps["postgres"] = "up"
			}
		}

		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				deps["redis"] = "down"
				healthy = false
				if logg != nil {
					logg.Error(r.Context(), "health.redis", err)
				}
			} else {
				deps["redis"] = "up"
			}
		}

		status := "ready"
		httpStatus := http.StatusOK
		if !healthy {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}

		responses.WriteSuccessStatus(w, httpStatus, map[string]any{
			"status":       status,
			"dependencies": deps,
		})
	}
}
