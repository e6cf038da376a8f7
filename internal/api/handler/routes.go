package handler

import (
	"net/http"

	"github.com/vfg2006/hangar-api/internal/api/handler/router"
	"github.com/vfg2006/hangar-api/internal/usecases/authenticating"
	"github.com/vfg2006/hangar-api/internal/usecases/reporting"
	"github.com/vfg2006/hangar-api/pkg/middleware"
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

// Metrics expõe o endpoint do Prometheus
func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/signup",
			Method:  http.MethodPost,
			Handler: Signup(service),
		},
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/auth/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Admin agrupa a gestão de usuários e a exportação da auditoria
func Admin(service authenticating.Authenticator, audit AuditExporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/users/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/users/:id/promote",
			Method:      http.MethodPost,
			Handler:     PromoteUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/users/:id/tiers",
			Method:      http.MethodPut,
			Handler:     SetUserTiers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/audit/export",
			Method:      http.MethodGet,
			Handler:     ExportAudit(audit),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Tiers(service TierService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tiers",
			Method:      http.MethodGet,
			Handler:     ListTiers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tiers",
			Method:      http.MethodPost,
			Handler:     CreateTier(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/tiers/:id",
			Method:      http.MethodGet,
			Handler:     GetTier(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tiers/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateTier(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/tiers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTier(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Clientes(service ClienteService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clientes",
			Method:      http.MethodGet,
			Handler:     ListClientes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clientes",
			Method:      http.MethodPost,
			Handler:     CreateCliente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clientes/:id",
			Method:      http.MethodGet,
			Handler:     GetCliente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clientes/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateCliente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clientes/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCliente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Projetos(service ProjetoService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projetos",
			Method:      http.MethodGet,
			Handler:     ListProjetos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projetos",
			Method:      http.MethodPost,
			Handler:     CreateProjeto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/projetos/:id",
			Method:      http.MethodGet,
			Handler:     GetProjeto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projetos/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateProjeto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/projetos/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProjeto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Impostos(service ImpostoService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/impostos",
			Method:      http.MethodGet,
			Handler:     ListImpostos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/impostos",
			Method:      http.MethodPost,
			Handler:     CreateImposto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/impostos/:id",
			Method:      http.MethodGet,
			Handler:     GetImposto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/impostos/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateImposto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/impostos/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteImposto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/impostos/:id/recalcular",
			Method:      http.MethodPost,
			Handler:     RecalcularImposto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Registros podem ser lançados por qualquer usuário dentro dos seus tiers
func Registros(service RegistroService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/registros",
			Method:      http.MethodGet,
			Handler:     ListRegistros(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/registros",
			Method:      http.MethodPost,
			Handler:     CreateRegistro(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/registros/:id",
			Method:      http.MethodGet,
			Handler:     GetRegistro(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/registros/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateRegistro(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/registros/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteRegistro(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals",
			Method:      http.MethodGet,
			Handler:     GetGoals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Export(service ExcelExporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/export/excel",
			Method:      http.MethodGet,
			Handler:     ExportExcel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
