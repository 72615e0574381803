package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/zebee/manager-api/internal/config"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/internal/usecases/performance"
	"github.com/zebee/manager-api/pkg/log"
)

// MonthRoller consolida os números de um mês
type MonthRoller interface {
	RollupMonth(ctx context.Context, month domain.Period) (*performance.RollupResult, error)
}

// MonthlyRollupConfig representa a configuração da consolidação mensal
type MonthlyRollupConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MonthlyRollupService gera o histórico de receita e a performance por squad
// do mês anterior a partir da carteira de clientes
type MonthlyRollupService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyRollupConfig
	roller              MonthRoller
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *performance.RollupResult
	lastError           string
}

func NewMonthlyRollupService(roller MonthRoller, appConfig *config.Config) *MonthlyRollupService {
	rollupConfig := MonthlyRollupConfig{
		CronSchedule: appConfig.MonthlyRollup.CronSchedule,
		SyncEnabled:  appConfig.MonthlyRollup.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": rollupConfig.CronSchedule,
		"sync_enabled":  rollupConfig.SyncEnabled,
	}).Info("Configuração da consolidação mensal carregada")

	return &MonthlyRollupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    rollupConfig,
		roller:    roller,
		now:       time.Now,
	}
}

// Start agenda a consolidação mensal
func (s *MonthlyRollupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Consolidação mensal desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação mensal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.rollupPreviousMonth(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação mensal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de consolidação mensal")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *MonthlyRollupService) rollupPreviousMonth(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Consolidação mensal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	month := domain.PreviousMonth(s.lastSyncStartedAt)
	s.syncMutex.Unlock()

	logger := log.L.WithField("month", month.Key())
	logger.Info("Iniciando consolidação mensal")

	result, err := s.roller.RollupMonth(ctx, month)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		logger.WithError(err).Error("Erro na consolidação mensal")
		return
	}

	s.lastError = ""
	s.lastResult = result
	s.lastSyncCompletedAt = s.now()

	logger.WithFields(log.Fields{
		"revenue_history_saved": result.RevenueHistorySaved,
		"squads_saved":          result.SquadsSaved,
	}).Info("Consolidação mensal concluída")
}

// TriggerManualSync dispara a consolidação do mês anterior fora do agendamento
func (s *MonthlyRollupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Consolidação mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Iniciando consolidação mensal manual")
	go s.rollupPreviousMonth(context.Background())
}

func (s *MonthlyRollupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_error":             s.lastError,
	}
	if s.lastResult != nil {
		status["last_month"] = s.lastResult.Month.Key()
		status["last_revenue_history_saved"] = s.lastResult.RevenueHistorySaved
		status["last_squads_saved"] = s.lastResult.SquadsSaved
	}
	return status
}
