package handler

import (
	"net/http"

	"github.com/vfg2006/flux-sync-api/internal/api/handler/router"
	"github.com/vfg2006/flux-sync-api/internal/config"
	"github.com/vfg2006/flux-sync-api/internal/scheduler"
	"github.com/vfg2006/flux-sync-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Sync retorna as rotas de execução e acompanhamento do lote de
// sincronização, protegidas pelo segredo compartilhado do agendador
func Sync(service *scheduler.FluxSyncService, cfg *config.Config) []router.Route {
	secret := middleware.SchedulerAuth(cfg.SecretKey)

	return []router.Route{
		{
			Path:        "/v1/sync/run",
			Method:      http.MethodPost,
			Handler:     RunSync(service),
			Middlewares: []func(http.Handler) http.Handler{secret},
		},
		{
			Path:        "/v1/sync/trigger",
			Method:      http.MethodPost,
			Handler:     TriggerSync(service),
			Middlewares: []func(http.Handler) http.Handler{secret},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(service),
			Middlewares: []func(http.Handler) http.Handler{secret},
		},
	}
}
