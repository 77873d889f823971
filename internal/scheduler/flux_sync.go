package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/flux-sync-api/internal/config"
	"github.com/vfg2006/flux-sync-api/internal/domain"
	"github.com/vfg2006/flux-sync-api/internal/usecases/syncing"
)

// ErrSyncInProgress indica que já existe um lote de sincronização em andamento
var ErrSyncInProgress = errors.New("sincronização de fluxes já em andamento")

// FluxSyncConfig representa a configuração do agendador de sincronização de fluxes
type FluxSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	FluxTimeoutSeconds  int
	SyncEnabled         bool
}

// FluxSyncService gerencia o agendamento e execução da sincronização de fluxes
type FluxSyncService struct {
	scheduler           *gocron.Scheduler
	config              FluxSyncConfig
	syncService         *syncing.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.RunReport
}

// NewFluxSyncService cria uma nova instância do serviço de sincronização de fluxes
func NewFluxSyncService(syncService *syncing.Service, appConfig *config.Config) *FluxSyncService {
	// Criar a configuração com base na config global
	fluxConfig := FluxSyncConfig{
		CronSchedule:        appConfig.FluxSync.CronSchedule,
		RequestDelaySeconds: appConfig.FluxSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.FluxSync.MaxConcurrentJobs,
		FluxTimeoutSeconds:  appConfig.FluxSync.FluxTimeoutSeconds,
		SyncEnabled:         appConfig.FluxSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         fluxConfig.CronSchedule,
		"request_delay_seconds": fluxConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   fluxConfig.MaxConcurrentJobs,
		"flux_timeout_seconds":  fluxConfig.FluxTimeoutSeconds,
		"sync_enabled":          fluxConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de fluxes carregada")

	return &FluxSyncService{
		scheduler:   scheduler,
		config:      fluxConfig,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *FluxSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de fluxes desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de fluxes")

	// Agendar a sincronização de fluxes
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runBatch(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de fluxes: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de fluxes")
		s.scheduler.Stop()
	}()

	return nil
}

// runBatch executa o lote de sincronização, garantindo que apenas uma
// execução esteja ativa por vez. Uma execução ainda em andamento quando o
// cron dispara novamente faz o disparo ser ignorado, não enfileirado.
func (s *FluxSyncService) runBatch(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de fluxes já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	report, err := s.syncService.RunBatch(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar o lote de sincronização de fluxes")
		return
	}

	s.lastReport = report
	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de fluxes. O lote
// roda com um contexto próprio para não ser cancelado junto com a requisição
// que o disparou.
func (s *FluxSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de fluxes já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de fluxes")
	go s.runBatch(context.Background())
}

// RunSynchronous executa o lote imediatamente e devolve o relatório,
// usado pelo endpoint síncrono de execução
func (s *FluxSyncService) RunSynchronous(ctx context.Context) (*domain.RunReport, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return nil, ErrSyncInProgress
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	report, err := s.syncService.RunBatch(ctx)
	if err != nil {
		return nil, err
	}

	s.lastReport = report
	s.lastSyncCompletedAt = time.Now()

	return report, nil
}

// IsRunning informa se há uma execução em andamento
func (s *FluxSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *FluxSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_flux_timeout_s":    s.config.FluxTimeoutSeconds,
		"sync_running":           s.IsRunning(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_run_id"] = s.lastReport.RunID
		status["last_run_succeeded"] = s.lastReport.Succeeded
		status["last_run_skipped"] = s.lastReport.Skipped
		status["last_run_failed"] = s.lastReport.Failed
	}

	return status
}
