package client

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/zebee/manager-api/infrastructure/repository"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/pkg/log"
	"github.com/zebee/manager-api/pkg/validation"
)

type ClientService interface {
	ListClients(ctx context.Context, principal *domain.Principal) ([]*domain.Client, error)
	GetClient(ctx context.Context, principal *domain.Principal, id int64) (*domain.Client, error)
	CreateClient(ctx context.Context, principal *domain.Principal, payload domain.ClientPayload) (*domain.Client, error)
	UpdateClient(ctx context.Context, principal *domain.Principal, id int64, payload domain.ClientPayload, partial bool) (*domain.Client, error)
	DeleteClient(ctx context.Context, principal *domain.Principal, id int64) error
}

type Service struct {
	clientRepo repository.ClientRepository
	validate   *validator.Validate
	now        func() time.Time
}

func NewService(clientRepo repository.ClientRepository, validate *validator.Validate) ClientService {
	return &Service{
		clientRepo: clientRepo,
		validate:   validate,
		now:        time.Now,
	}
}

func (s *Service) ListClients(ctx context.Context, principal *domain.Principal) ([]*domain.Client, error) {
	return s.clientRepo.List(ctx, domain.ResolveClientScope(principal))
}

func (s *Service) GetClient(ctx context.Context, principal *domain.Principal, id int64) (*domain.Client, error) {
	return s.clientRepo.Get(ctx, id, domain.ResolveClientScope(principal))
}

func (s *Service) CreateClient(ctx context.Context, principal *domain.Principal, payload domain.ClientPayload) (*domain.Client, error) {
	if err := validation.Struct(s.validate, payload); err != nil {
		return nil, err
	}

	monthly, err := parseMonthlyData(payload)
	if err != nil {
		return nil, err
	}
	if monthly == nil {
		monthly = domain.MonthlyData{}
	}

	now := s.now()
	client := &domain.Client{
		Status:    domain.ClientStatusActive,
		CreatedAt: now,
	}
	client.Apply(payload, monthly)

	scope := domain.ResolveClientScope(principal)
	if !scope.Allows(client) {
		return nil, domain.ErrForbidden
	}

	// um cliente novo parte do status padrão (ativo)
	client.StatusChangedAt = domain.ApplyStatusTransition(domain.ClientStatusActive, client.Status, client.StatusChangedAt, now)

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, squadReference(err)
	}

	log.ForContext(ctx).Infof("Cliente %d criado (%s)", client.ID, client.StoreName)
	return client, nil
}

// UpdateClient aplica PUT (partial=false) ou PATCH (partial=true). A
// transição de status é decidida sobre o status lido na mesma transação
// que grava o cliente.
func (s *Service) UpdateClient(ctx context.Context, principal *domain.Principal, id int64, payload domain.ClientPayload, partial bool) (*domain.Client, error) {
	var err error
	if partial {
		err = validation.Partial(s.validate, payload, payload.PresentFields()...)
	} else {
		err = validation.Struct(s.validate, payload)
	}
	if err != nil {
		return nil, err
	}

	monthly, err := parseMonthlyData(payload)
	if err != nil {
		return nil, err
	}

	scope := domain.ResolveClientScope(principal)

	updated, err := s.clientRepo.Update(ctx, id, scope, func(client *domain.Client) error {
		previous := client.Status

		client.Apply(payload, monthly)
		if !scope.Allows(client) {
			return domain.ErrForbidden
		}

		client.StatusChangedAt = domain.ApplyStatusTransition(previous, client.Status, client.StatusChangedAt, s.now())
		return nil
	})
	if err != nil {
		return nil, squadReference(err)
	}

	return updated, nil
}

func (s *Service) DeleteClient(ctx context.Context, principal *domain.Principal, id int64) error {
	if err := s.clientRepo.Delete(ctx, id, domain.ResolveClientScope(principal)); err != nil {
		return err
	}

	log.ForContext(ctx).Infof("Cliente %d removido", id)
	return nil
}

// parseMonthlyData retorna nil quando o campo não foi enviado
func parseMonthlyData(payload domain.ClientPayload) (domain.MonthlyData, error) {
	if len(payload.MonthlyData) == 0 {
		return nil, nil
	}

	monthly, err := domain.ParseMonthlyData(payload.MonthlyData)
	if err != nil {
		return nil, domain.FieldValidationError("monthly_data", "Informe um objeto JSON.")
	}
	return monthly, nil
}

func squadReference(err error) error {
	if errors.Is(err, domain.ErrInvalidReference) {
		return domain.FieldValidationError("squad", "Squad inexistente.")
	}
	return err
}
