package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/zebee/manager-api/infrastructure/database/postgres"
	"github.com/zebee/manager-api/internal/domain"
)

const (
	usersTable        = "users"
	userProfilesTable = "user_profiles"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	GetOrCreateProfile(ctx context.Context, userID int64) (*domain.Profile, error)
	SetProfileSquad(ctx context.Context, userID int64, squadID *int64) error
}

type userRepository struct {
	conn postgres.Conn
}

func NewUserRepository(conn postgres.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	usersSQL, usersArgs, err := squirrel.
		Insert(usersTable).
		Columns("username", "password_hash", "is_superuser").
		Values(user.Username, user.PasswordHash, user.IsSuperuser).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, usersSQL, usersArgs...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, translateError(err, "erro ao criar usuário")
	}

	return user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"username": username})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	usersSQL, usersArgs, err := squirrel.
		Select("id", "username", "password_hash", "is_superuser", "created_at").
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = r.conn.QueryRowContext(ctx, usersSQL, usersArgs...).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsSuperuser,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err, "erro ao buscar usuário")
	}

	return &user, nil
}

// GetOrCreateProfile garante que o usuário tenha um perfil e o retorna
// junto com o nome do squad vinculado
func (r *userRepository) GetOrCreateProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	var profile *domain.Profile

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		insertSQL, insertArgs, err := squirrel.
			Insert(userProfilesTable).
			Columns("user_id").
			Values(userID).
			Suffix("ON CONFLICT (user_id) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return translateError(err, "erro ao criar perfil")
		}

		profileSQL, profileArgs, err := squirrel.
			Select("up.user_id", "up.squad_id", "s.name").
			From(userProfilesTable + " up").
			LeftJoin("squads s ON s.id = up.squad_id").
			Where(squirrel.Eq{"up.user_id": userID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		profile = &domain.Profile{}
		err = tx.QueryRowContext(ctx, profileSQL, profileArgs...).Scan(&profile.UserID, &profile.SquadID, &profile.SquadName)
		return translateError(err, "erro ao buscar perfil")
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *userRepository) SetProfileSquad(ctx context.Context, userID int64, squadID *int64) error {
	profileSQL, profileArgs, err := squirrel.
		Insert(userProfilesTable).
		Columns("user_id", "squad_id").
		Values(userID, squadID).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET squad_id = EXCLUDED.squad_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, profileSQL, profileArgs...)
	return translateError(err, "erro ao vincular squad ao perfil")
}
