package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/zebee/manager-api/infrastructure/repository"
	"github.com/zebee/manager-api/internal/config"
	"github.com/zebee/manager-api/pkg/log"
)

// ActiveClientsSyncConfig representa a configuração da reconciliação de clientes ativos
type ActiveClientsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ActiveClientsSyncService recalcula periodicamente o contador active_clients
// de cada squad a partir da tabela de clientes
type ActiveClientsSyncService struct {
	scheduler           *gocron.Scheduler
	config              ActiveClientsSyncConfig
	squadRepo           repository.SquadRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastUpdatedSquads   int64
	lastError           string
}

func NewActiveClientsSyncService(squadRepo repository.SquadRepository, appConfig *config.Config) *ActiveClientsSyncService {
	syncConfig := ActiveClientsSyncConfig{
		CronSchedule: appConfig.ActiveClientsSync.CronSchedule,
		SyncEnabled:  appConfig.ActiveClientsSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração da reconciliação de clientes ativos carregada")

	return &ActiveClientsSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		squadRepo: squadRepo,
	}
}

// Start agenda a reconciliação e para o agendador quando o contexto termina
func (s *ActiveClientsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Reconciliação de clientes ativos desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconciliação de clientes ativos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncActiveClients(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de clientes ativos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de reconciliação de clientes ativos")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ActiveClientsSyncService) syncActiveClients(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Reconciliação de clientes ativos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	log.L.Info("Iniciando reconciliação de clientes ativos")

	updated, err := s.squadRepo.RecountActiveClients(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		log.L.WithError(err).Error("Erro ao reconciliar clientes ativos")
		return
	}

	s.lastError = ""
	s.lastUpdatedSquads = updated
	s.lastSyncCompletedAt = time.Now()

	log.L.WithFields(log.Fields{
		"duration":       time.Since(startTime).String(),
		"updated_squads": updated,
	}).Info("Reconciliação de clientes ativos concluída")
}

// TriggerManualSync dispara a reconciliação fora do agendamento
func (s *ActiveClientsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Reconciliação de clientes ativos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Iniciando reconciliação manual de clientes ativos")
	go s.syncActiveClients(context.Background())
}

// GetStatus retorna o status atual da reconciliação
func (s *ActiveClientsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_updated_squads":    s.lastUpdatedSquads,
		"last_error":             s.lastError,
	}
}
