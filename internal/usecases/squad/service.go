package squad

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/zebee/manager-api/infrastructure/repository"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/pkg/log"
	"github.com/zebee/manager-api/pkg/validation"
)

type SquadService interface {
	ListSquads(ctx context.Context) ([]*domain.Squad, error)
	GetSquad(ctx context.Context, id int64) (*domain.Squad, error)
	CreateSquad(ctx context.Context, principal *domain.Principal, request domain.SquadRequest) (*domain.Squad, error)
	UpdateSquad(ctx context.Context, principal *domain.Principal, id int64, request domain.SquadRequest, partial bool) (*domain.Squad, error)
	DeleteSquad(ctx context.Context, principal *domain.Principal, id int64) error
}

type Service struct {
	squadRepo repository.SquadRepository
	validate  *validator.Validate
}

func NewService(squadRepo repository.SquadRepository, validate *validator.Validate) SquadService {
	return &Service{
		squadRepo: squadRepo,
		validate:  validate,
	}
}

func (s *Service) ListSquads(ctx context.Context) ([]*domain.Squad, error) {
	return s.squadRepo.List(ctx)
}

func (s *Service) GetSquad(ctx context.Context, id int64) (*domain.Squad, error) {
	return s.squadRepo.Get(ctx, id)
}

func requireSuperuser(principal *domain.Principal) error {
	if principal == nil || !principal.IsSuperuser {
		return domain.ErrForbidden
	}
	return nil
}

func (s *Service) CreateSquad(ctx context.Context, principal *domain.Principal, request domain.SquadRequest) (*domain.Squad, error) {
	if err := requireSuperuser(principal); err != nil {
		return nil, err
	}

	if err := validation.Struct(s.validate, request); err != nil {
		return nil, err
	}

	squad := &domain.Squad{}
	squad.Apply(request)

	if err := s.squadRepo.Create(ctx, squad); err != nil {
		return nil, nameConflict(err)
	}

	log.ForContext(ctx).Infof("Squad %d criado: %s", squad.ID, squad.Name)
	return squad, nil
}

func (s *Service) UpdateSquad(ctx context.Context, principal *domain.Principal, id int64, request domain.SquadRequest, partial bool) (*domain.Squad, error) {
	if err := requireSuperuser(principal); err != nil {
		return nil, err
	}

	var err error
	if partial {
		err = validation.Partial(s.validate, request, request.PresentFields()...)
	} else {
		err = validation.Struct(s.validate, request)
	}
	if err != nil {
		return nil, err
	}

	squad, err := s.squadRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	squad.Apply(request)

	if err := s.squadRepo.Update(ctx, squad); err != nil {
		return nil, nameConflict(err)
	}

	return squad, nil
}

func (s *Service) DeleteSquad(ctx context.Context, principal *domain.Principal, id int64) error {
	if err := requireSuperuser(principal); err != nil {
		return err
	}

	if err := s.squadRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.ForContext(ctx).Infof("Squad %d removido", id)
	return nil
}

// nameConflict detalha a violação de unicidade do nome do squad
func nameConflict(err error) error {
	if errors.Is(err, domain.ErrConflict) {
		return &domain.ConflictError{Field: "name", Message: "Já existe um squad com este nome."}
	}
	return err
}
