package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/vfg2006/hangar-api/infrastructure/cache"
	"github.com/vfg2006/hangar-api/infrastructure/database/postgres"
	"github.com/vfg2006/hangar-api/infrastructure/migration"
	"github.com/vfg2006/hangar-api/infrastructure/repository"
	"github.com/vfg2006/hangar-api/internal/api"
	"github.com/vfg2006/hangar-api/internal/api/handler"
	"github.com/vfg2006/hangar-api/internal/config"
	"github.com/vfg2006/hangar-api/internal/scheduler"
	"github.com/vfg2006/hangar-api/internal/usecases/authenticating"
	"github.com/vfg2006/hangar-api/internal/usecases/cadastro"
	"github.com/vfg2006/hangar-api/internal/usecases/exporting"
	"github.com/vfg2006/hangar-api/internal/usecases/reporting"
	"github.com/vfg2006/hangar-api/pkg/log"
	"github.com/vfg2006/hangar-api/pkg/metrics"
)

func main() {
	// .env é procurado a partir do diretório do binário
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		log.L.Warnf("main: nível de log inválido %q, usando 'info'", cfg.App.LogLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Run(pgConn.DB); err != nil {
			log.L.WithError(err).Fatal("main: erro ao aplicar migrações")
		}
	}

	m := metrics.New()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		// Sem Redis os relatórios continuam funcionando, apenas sem cache
		log.L.WithError(err).Warn("main: cache de relatórios desligado")
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	reportCache := cache.New(redisClient, cfg.Reporting.CacheTTL, m)

	userRepo := repository.NewUserRepository(pgConn)
	auditRepo := repository.NewAuditLogRepository(pgConn)
	tierRepo := repository.NewTierRepository(pgConn)
	clienteRepo := repository.NewClienteRepository(pgConn)
	projetoRepo := repository.NewProjetoRepository(pgConn)
	impostoRepo := repository.NewImpostoRepository(pgConn)
	registroRepo := repository.NewRegistroRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, tierRepo, cfg.Auth)
	cadastroService := cadastro.NewService(cadastro.Repositories{
		Tiers:     tierRepo,
		Clientes:  clienteRepo,
		Projetos:  projetoRepo,
		Impostos:  impostoRepo,
		Registros: registroRepo,
	}, reportCache)
	reportService := reporting.NewService(registroRepo, reportCache)
	exportService := exporting.NewService(registroRepo, impostoRepo, auditRepo)

	impostoSync := scheduler.NewImpostoVigenciaSyncService(impostoRepo, reportCache, m, cfg.ImpostoSync)
	if err := impostoSync.Start(ctx); err != nil {
		log.L.WithError(err).Error("main: erro ao iniciar o agendador de vigência de impostos")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Tiers:         cadastroService,
		Clientes:      cadastroService,
		Projetos:      cadastroService,
		Impostos:      cadastroService,
		Registros:     cadastroService,
		Reports:       reportService,
		Excel:         exportService,
		Audit:         exportService,
		CronJobs: handler.CronJobServices{
			scheduler.JobImpostoVigencia: impostoSync,
		},
	}, m)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("main: erro ao conectar ao PostgreSQL")
	}

	log.L.Info("main: conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
