package handler

import (
	"net/http"

	"github.com/vfg2006/spendy-api/internal/api/handler/router"
	"github.com/vfg2006/spendy-api/internal/usecases/authenticating"
	"github.com/vfg2006/spendy-api/internal/usecases/dashboarding"
	"github.com/vfg2006/spendy-api/internal/usecases/housing"
	"github.com/vfg2006/spendy-api/internal/usecases/importing"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
	}
}

func House(service housing.HouseManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/house/link",
			Method:  http.MethodPost,
			Handler: LinkHouse(service),
		},
		{
			Path:    "/v1/house/roommates",
			Method:  http.MethodGet,
			Handler: GetRoommates(service),
		},
	}
}

func Imports(service importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/expenses/import",
			Method:  http.MethodPost,
			Handler: ImportExpenses(service),
		},
		{
			Path:    "/v1/expenses/preview",
			Method:  http.MethodPost,
			Handler: PreviewExpenses(service),
		},
	}
}

func Expenses(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/expenses",
			Method:  http.MethodGet,
			Handler: GetExpenses(service),
		},
		{
			Path:    "/v1/expenses/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/expenses/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthly(service),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
