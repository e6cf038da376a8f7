package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/hangar-api/infrastructure/repository"
	"github.com/vfg2006/hangar-api/internal/config"
	"github.com/vfg2006/hangar-api/pkg/log"
)

// JobImpostoVigencia é o nome do job usado no endpoint de cron e nas métricas
const JobImpostoVigencia = "imposto-vigencia"

// ReportInvalidator invalida os relatórios em cache
type ReportInvalidator interface {
	Bump(ctx context.Context) error
}

// SyncRecorder registra o resultado de cada execução
type SyncRecorder interface {
	SyncRun(job string, err error)
}

// ImpostoVigenciaSyncService desativa periodicamente os impostos cuja vigência terminou
type ImpostoVigenciaSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.ImpostoSync
	impostoRepo         repository.ImpostoRepository
	reports             ReportInvalidator
	recorder            SyncRecorder
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeactivated     int64
	lastError           string
}

func NewImpostoVigenciaSyncService(
	impostoRepo repository.ImpostoRepository,
	reports ReportInvalidator,
	recorder SyncRecorder,
	cfg config.ImpostoSync,
) *ImpostoVigenciaSyncService {
	log.L.WithFields(log.Fields{
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.Enabled,
	}).Info("scheduler: configuração da sincronização de vigência de impostos carregada")

	return &ImpostoVigenciaSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      cfg,
		impostoRepo: impostoRepo,
		reports:     reports,
		recorder:    recorder,
		now:         time.Now,
	}
}

// Start agenda o job e para o agendador quando ctx for cancelado
func (s *ImpostoVigenciaSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("scheduler: sincronização de vigência de impostos desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de vigência de impostos: %w", err)
	}

	s.scheduler.StartAsync()
	log.L.WithField("cron", s.config.CronSchedule).Info("scheduler: agendador de vigência de impostos iniciado")

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: parando agendador de vigência de impostos")
		s.scheduler.Stop()
	}()

	return nil
}

// run executa uma sincronização, ignorando a chamada quando outra já está em andamento
func (s *ImpostoVigenciaSyncService) run(ctx context.Context) (int64, bool) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("scheduler: sincronização de vigência de impostos já em andamento, ignorando")
		return 0, false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	deactivated, err := s.sync(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastDeactivated = deactivated
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	if s.recorder != nil {
		s.recorder.SyncRun(JobImpostoVigencia, err)
	}
	return deactivated, true
}

func (s *ImpostoVigenciaSyncService) sync(ctx context.Context) (int64, error) {
	started := s.now()
	today := time.Date(started.UTC().Year(), started.UTC().Month(), started.UTC().Day(), 0, 0, 0, 0, time.UTC)

	deactivated, err := s.impostoRepo.DeactivateExpired(ctx, today)
	if err != nil {
		log.L.WithError(err).Error("scheduler: erro ao desativar impostos vencidos")
		return 0, err
	}

	if deactivated > 0 && s.reports != nil {
		if err := s.reports.Bump(ctx); err != nil {
			log.L.WithError(err).Warn("scheduler: erro ao invalidar cache de relatórios")
		}
	}

	log.L.WithFields(log.Fields{
		"deactivated": deactivated,
		"duration":    s.now().Sub(started).String(),
	}).Info("scheduler: sincronização de vigência de impostos concluída")

	return deactivated, nil
}

// TriggerManualSync inicia manualmente uma sincronização em segundo plano
func (s *ImpostoVigenciaSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("scheduler: sincronização de vigência de impostos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("scheduler: iniciando sincronização manual de vigência de impostos")
	go s.run(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ImpostoVigenciaSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_deactivated":       s.lastDeactivated,
		"last_error":             s.lastError,
	}
}
