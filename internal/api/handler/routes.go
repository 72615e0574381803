package handler

import (
	"net/http"

	"github.com/zebee/manager-api/internal/api/handler/router"
	"github.com/zebee/manager-api/internal/usecases/authenticating"
	"github.com/zebee/manager-api/internal/usecases/client"
	"github.com/zebee/manager-api/internal/usecases/performance"
	"github.com/zebee/manager-api/internal/usecases/squad"
	"github.com/zebee/manager-api/pkg/middleware"
)

func superuserOnly() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.SuperuserOnly()}
}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/login/",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/api/auth/user/",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
	}
}

func Squads(service squad.SquadService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/squads/",
			Method:  http.MethodGet,
			Handler: ListSquads(service),
		},
		{
			Path:        "/api/squads/",
			Method:      http.MethodPost,
			Handler:     CreateSquad(service),
			Middlewares: superuserOnly(),
		},
		{
			Path:    "/api/squads/:id/",
			Method:  http.MethodGet,
			Handler: GetSquad(service),
		},
		{
			Path:        "/api/squads/:id/",
			Method:      http.MethodPut,
			Handler:     UpdateSquad(service, false),
			Middlewares: superuserOnly(),
		},
		{
			Path:        "/api/squads/:id/",
			Method:      http.MethodPatch,
			Handler:     UpdateSquad(service, true),
			Middlewares: superuserOnly(),
		},
		{
			Path:        "/api/squads/:id/",
			Method:      http.MethodDelete,
			Handler:     DeleteSquad(service),
			Middlewares: superuserOnly(),
		},
	}
}

// Clients não usa middleware de papel: o escopo é resolvido no caso de uso
func Clients(service client.ClientService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/clients/",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
		{
			Path:    "/api/clients/",
			Method:  http.MethodPost,
			Handler: CreateClient(service),
		},
		{
			Path:    "/api/clients/:id/",
			Method:  http.MethodGet,
			Handler: GetClient(service),
		},
		{
			Path:    "/api/clients/:id/",
			Method:  http.MethodPut,
			Handler: UpdateClient(service, false),
		},
		{
			Path:    "/api/clients/:id/",
			Method:  http.MethodPatch,
			Handler: UpdateClient(service, true),
		},
		{
			Path:    "/api/clients/:id/",
			Method:  http.MethodDelete,
			Handler: DeleteClient(service),
		},
	}
}

func Performance(service performance.PerformanceService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/revenue-history/",
			Method:  http.MethodGet,
			Handler: ListRevenueHistory(service),
		},
		{
			Path:    "/api/revenue-history/:id/",
			Method:  http.MethodGet,
			Handler: GetRevenueHistory(service),
		},
		{
			Path:    "/api/squad-performance/",
			Method:  http.MethodGet,
			Handler: ListSquadPerformance(service),
		},
		{
			Path:    "/api/squad-performance/:id/",
			Method:  http.MethodGet,
			Handler: GetSquadPerformance(service),
		},
		{
			Path:        "/api/admin/revenue-history/",
			Method:      http.MethodPost,
			Handler:     CreateRevenueHistory(service),
			Middlewares: superuserOnly(),
		},
		{
			Path:        "/api/admin/squad-performance/",
			Method:      http.MethodPost,
			Handler:     CreateSquadPerformance(service),
			Middlewares: superuserOnly(),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/api/admin/jobs/:type/run/",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: superuserOnly(),
		},
		{
			Path:        "/api/admin/jobs/",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: superuserOnly(),
		},
	}
}
