package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/zebee/manager-api/infrastructure/repository"
	"github.com/zebee/manager-api/internal/config"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/pkg/apiErrors"
	"github.com/zebee/manager-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	LoginUser(ctx context.Context, username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ResolvePrincipal(ctx context.Context, claims *domain.Claims) (*domain.Principal, error)
	CreateUser(ctx context.Context, request *domain.CreateUserRequest) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func normalizeUsername(s string) string {
	return strings.TrimSpace(s)
}

// CreateUser cria um usuário com a senha informada e, opcionalmente, o
// vincula a um squad
func (s *Service) CreateUser(ctx context.Context, request *domain.CreateUserRequest) (*domain.User, error) {
	username := normalizeUsername(request.Username)
	if username == "" || request.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		IsSuperuser:  request.IsSuperuser,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, username)
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	if request.SquadID != nil {
		if err := s.userRepo.SetProfileSquad(ctx, user.ID, request.SquadID); err != nil {
			if errors.Is(err, domain.ErrInvalidReference) {
				return nil, domain.FieldValidationError("squad", "squad inexistente")
			}
			return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, user.ID, "Erro ao vincular squad")
		}
	}

	return user, nil
}

func (s *Service) LoginUser(ctx context.Context, username, password string) (string, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário ou senha incorretos")
		}
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.ForContext(ctx).WithField("user_id", user.ID).Warn("Tentativa de login com senha incorreta")
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Usuário ou senha incorretos")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// ResolvePrincipal carrega o usuário do token e o squad do seu perfil. O
// perfil é criado na primeira resolução, sem squad.
func (s *Service) ResolvePrincipal(ctx context.Context, claims *domain.Claims) (*domain.Principal, error) {
	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, NewUserAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, claims.UserID, "Usuário do token não existe")
		}
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, claims.UserID, "Erro ao consultar usuário")
	}

	profile, err := s.userRepo.GetOrCreateProfile(ctx, user.ID)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, user.ID, "Erro ao carregar perfil")
	}

	return domain.NewPrincipal(user, profile), nil
}
