package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zebee/manager-api/infrastructure/repository/mocks"
	"github.com/zebee/manager-api/internal/config"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, now time.Time) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{
		SecretKey: "segredo-de-teste",
		Auth:      config.Auth{TokenTTL: time.Hour},
	}

	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      func() time.Time { return now },
	}, userRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("credenciais corretas geram token válido", func(t *testing.T) {
		service, userRepo := newTestService(t, now)
		userRepo.EXPECT().
			GetUserByUsername(ctx, "ana").
			Return(&domain.User{ID: 3, Username: "ana", PasswordHash: hashPassword(t, "s3nha")}, nil)

		token, err := service.LoginUser(ctx, " ana ", "s3nha")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(3), claims.UserID)
		assert.Equal(t, "ana", claims.Username)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		service, userRepo := newTestService(t, now)
		userRepo.EXPECT().
			GetUserByUsername(ctx, "ana").
			Return(&domain.User{ID: 3, Username: "ana", PasswordHash: hashPassword(t, "s3nha")}, nil)

		_, err := service.LoginUser(ctx, "ana", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("usuário inexistente responde como credencial inválida", func(t *testing.T) {
		service, userRepo := newTestService(t, now)
		userRepo.EXPECT().GetUserByUsername(ctx, "joao").Return(nil, domain.ErrNotFound)

		_, err := service.LoginUser(ctx, "joao", "qualquer")

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
	})

	t.Run("campos vazios", func(t *testing.T) {
		service, _ := newTestService(t, now)

		_, err := service.LoginUser(ctx, "", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidateToken(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	issuer, _ := newTestService(t, issuedAt)
	token, err := issuer.generateJWT(&domain.User{ID: 9, Username: "bia"})
	require.NoError(t, err)

	t.Run("token expirado", func(t *testing.T) {
		validator, _ := newTestService(t, issuedAt.Add(2*time.Hour))

		_, err := validator.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsTokenError(err))
	})

	t.Run("assinatura com outro segredo", func(t *testing.T) {
		validator, _ := newTestService(t, issuedAt)
		validator.cfg.SecretKey = "outro"

		_, err := validator.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("texto que não é token", func(t *testing.T) {
		validator, _ := newTestService(t, issuedAt)

		_, err := validator.ValidateToken("abc")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestResolvePrincipal(t *testing.T) {
	ctx := context.Background()
	squadID := int64(4)
	squadName := "Alpha"

	t.Run("usuário com squad", func(t *testing.T) {
		service, userRepo := newTestService(t, time.Now())
		userRepo.EXPECT().GetUserByID(ctx, int64(1)).Return(&domain.User{ID: 1, Username: "ana"}, nil)
		userRepo.EXPECT().GetOrCreateProfile(ctx, int64(1)).Return(&domain.Profile{UserID: 1, SquadID: &squadID, SquadName: &squadName}, nil)

		principal, err := service.ResolvePrincipal(ctx, &domain.Claims{UserID: 1})
		require.NoError(t, err)
		assert.Equal(t, &squadID, principal.SquadID)
		assert.Equal(t, "Alpha", *principal.DisplaySquad())
	})

	t.Run("perfil recém-criado sem squad", func(t *testing.T) {
		service, userRepo := newTestService(t, time.Now())
		userRepo.EXPECT().GetUserByID(ctx, int64(2)).Return(&domain.User{ID: 2, Username: "caio"}, nil)
		userRepo.EXPECT().GetOrCreateProfile(ctx, int64(2)).Return(&domain.Profile{UserID: 2}, nil)

		principal, err := service.ResolvePrincipal(ctx, &domain.Claims{UserID: 2})
		require.NoError(t, err)
		assert.Nil(t, principal.DisplaySquad())
	})

	t.Run("usuário removido após emissão do token", func(t *testing.T) {
		service, userRepo := newTestService(t, time.Now())
		userRepo.EXPECT().GetUserByID(ctx, int64(5)).Return(nil, domain.ErrNotFound)

		_, err := service.ResolvePrincipal(ctx, &domain.Claims{UserID: 5})
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("superusuário", func(t *testing.T) {
		service, userRepo := newTestService(t, time.Now())
		userRepo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.True(t, user.IsSuperuser)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3nha")))
				user.ID = 1
				return user, nil
			})

		user, err := service.CreateUser(ctx, &domain.CreateUserRequest{Username: "admin", Password: "s3nha", IsSuperuser: true})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("vincula squad ao perfil", func(t *testing.T) {
		squadID := int64(2)
		service, userRepo := newTestService(t, time.Now())
		userRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(&domain.User{ID: 8, Username: "ana"}, nil)
		userRepo.EXPECT().SetProfileSquad(ctx, int64(8), &squadID).Return(nil)

		_, err := service.CreateUser(ctx, &domain.CreateUserRequest{Username: "ana", Password: "x", SquadID: &squadID})
		require.NoError(t, err)
	})

	t.Run("usuário duplicado", func(t *testing.T) {
		service, userRepo := newTestService(t, time.Now())
		userRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil, errors.Wrap(domain.ErrConflict, "users_username_key"))

		_, err := service.CreateUser(ctx, &domain.CreateUserRequest{Username: "ana", Password: "x"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}
