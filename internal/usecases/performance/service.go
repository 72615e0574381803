package performance

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/zebee/manager-api/infrastructure/repository"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/pkg/log"
	"github.com/zebee/manager-api/pkg/validation"
)

type PerformanceService interface {
	ListRevenueHistory(ctx context.Context) ([]*domain.RevenueHistory, error)
	GetRevenueHistory(ctx context.Context, id int64) (*domain.RevenueHistory, error)
	CreateRevenueHistory(ctx context.Context, request domain.RevenueHistoryRequest) (*domain.RevenueHistory, error)
	ListSquadPerformance(ctx context.Context) ([]*domain.SquadPerformance, error)
	GetSquadPerformance(ctx context.Context, id int64) (*domain.SquadPerformance, error)
	CreateSquadPerformance(ctx context.Context, request domain.SquadPerformanceRequest) (*domain.SquadPerformance, error)
	RollupMonth(ctx context.Context, month domain.Period) (*RollupResult, error)
}

// RollupResult resume o que a consolidação mensal gravou
type RollupResult struct {
	Month               domain.Period
	RevenueHistorySaved bool
	SquadsSaved         int
}

type Service struct {
	revenueRepo     repository.RevenueHistoryRepository
	performanceRepo repository.SquadPerformanceRepository
	clientRepo      repository.ClientRepository
	validate        *validator.Validate
}

func NewService(
	revenueRepo repository.RevenueHistoryRepository,
	performanceRepo repository.SquadPerformanceRepository,
	clientRepo repository.ClientRepository,
	validate *validator.Validate,
) PerformanceService {
	return &Service{
		revenueRepo:     revenueRepo,
		performanceRepo: performanceRepo,
		clientRepo:      clientRepo,
		validate:        validate,
	}
}

func (s *Service) ListRevenueHistory(ctx context.Context) ([]*domain.RevenueHistory, error) {
	return s.revenueRepo.List(ctx)
}

func (s *Service) GetRevenueHistory(ctx context.Context, id int64) (*domain.RevenueHistory, error) {
	return s.revenueRepo.Get(ctx, id)
}

func (s *Service) CreateRevenueHistory(ctx context.Context, request domain.RevenueHistoryRequest) (*domain.RevenueHistory, error) {
	if err := validation.Struct(s.validate, request); err != nil {
		return nil, err
	}

	entry := request.ToRevenueHistory()
	if err := s.revenueRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Service) ListSquadPerformance(ctx context.Context) ([]*domain.SquadPerformance, error) {
	return s.performanceRepo.List(ctx)
}

func (s *Service) GetSquadPerformance(ctx context.Context, id int64) (*domain.SquadPerformance, error) {
	return s.performanceRepo.Get(ctx, id)
}

// CreateSquadPerformance rejeita um segundo registro do mesmo squad no mesmo mês
func (s *Service) CreateSquadPerformance(ctx context.Context, request domain.SquadPerformanceRequest) (*domain.SquadPerformance, error) {
	if err := validation.Struct(s.validate, request); err != nil {
		return nil, err
	}

	performance := request.ToSquadPerformance()
	if err := s.performanceRepo.Create(ctx, performance); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return nil, &domain.ConflictError{
				Field:   "non_field_errors",
				Message: "Os campos squad, month devem criar um set único.",
			}
		case errors.Is(err, domain.ErrInvalidReference):
			return nil, domain.FieldValidationError("squad", "Squad inexistente.")
		}
		return nil, err
	}

	return performance, nil
}

// RollupMonth consolida o mês a partir da carteira atual de clientes. O
// histórico de receita só é gravado se o mês ainda não existir; a
// performance por squad é sobrescrita.
func (s *Service) RollupMonth(ctx context.Context, month domain.Period) (*RollupResult, error) {
	logger := log.ForContext(ctx).WithField("month", month.Key())

	clients, err := s.clientRepo.List(ctx, domain.AllClients())
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar clientes")
	}

	summary := domain.SummarizeMonth(month, clients)
	result := &RollupResult{Month: month}

	exists, err := s.revenueRepo.ExistsForMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Info("Histórico de receita do mês já existe, mantendo registro atual")
	} else {
		revenue := summary.Revenue
		if err := s.revenueRepo.Create(ctx, &revenue); err != nil {
			return nil, errors.Wrap(err, "erro ao gravar histórico de receita")
		}
		result.RevenueHistorySaved = true
	}

	for i := range summary.Squads {
		if err := s.performanceRepo.Upsert(ctx, &summary.Squads[i]); err != nil {
			return nil, errors.Wrapf(err, "erro ao gravar performance do squad %d", summary.Squads[i].SquadID)
		}
		result.SquadsSaved++
	}

	logger.Infof("Consolidação mensal concluída: %d squads", result.SquadsSaved)
	return result, nil
}
