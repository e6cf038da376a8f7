package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/hangar-api/internal/api/handler"
	"github.com/vfg2006/hangar-api/internal/api/handler/router"
	"github.com/vfg2006/hangar-api/internal/config"
	"github.com/vfg2006/hangar-api/internal/usecases/authenticating"
	"github.com/vfg2006/hangar-api/internal/usecases/reporting"
	"github.com/vfg2006/hangar-api/pkg/log"
	"github.com/vfg2006/hangar-api/pkg/metrics"
	"github.com/vfg2006/hangar-api/pkg/middleware"
)

// Services reúne os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Tiers         handler.TierService
	Clientes      handler.ClienteService
	Projetos      handler.ProjetoService
	Impostos      handler.ImpostoService
	Registros     handler.RegistroService
	Reports       reporting.Reporter
	Excel         handler.ExcelExporter
	Audit         handler.AuditExporter
	CronJobs      handler.CronJobServices
}

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// NewHandler monta o router e a cadeia de middlewares globais
func NewHandler(cfg *config.Config, services Services, m *metrics.Metrics) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(m.Handler())...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Admin(services.Authenticator, services.Audit)...),
		router.WithRoutes(handler.Tiers(services.Tiers)...),
		router.WithRoutes(handler.Clientes(services.Clientes)...),
		router.WithRoutes(handler.Projetos(services.Projetos)...),
		router.WithRoutes(handler.Impostos(services.Impostos)...),
		router.WithRoutes(handler.Registros(services.Registros)...),
		router.WithRoutes(handler.Reports(services.Reports)...),
		router.WithRoutes(handler.Export(services.Excel)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
		router.WithInstrumentation(func(route string) func(http.Handler) http.Handler {
			return middleware.Metrics(m, route)
		}),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.SecureHeaders(log.IsDevelopment()),
		middleware.Cors(cfg.Cors.Origins()),
		middleware.RateLimit(cfg.RateLimit.RequestsPerMinute),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services, m *metrics.Metrics) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services, m),
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
		},
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 15 * time.Second
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("api: servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("api: erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("api: sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("api: contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", s.shutdownTimeout.String()).Info("api: iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("api: erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("api: servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
