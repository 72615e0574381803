package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/zebee/manager-api/infrastructure/database/postgres"
	"github.com/zebee/manager-api/internal/domain"
)

const squadsTable = "squads"

type SquadRepository interface {
	List(ctx context.Context) ([]*domain.Squad, error)
	Get(ctx context.Context, id int64) (*domain.Squad, error)
	Create(ctx context.Context, squad *domain.Squad) error
	Update(ctx context.Context, squad *domain.Squad) error
	Delete(ctx context.Context, id int64) error
	RecountActiveClients(ctx context.Context) (int64, error)
}

type squadRepository struct {
	conn postgres.Conn
}

func NewSquadRepository(conn postgres.Conn) SquadRepository {
	return &squadRepository{
		conn: conn,
	}
}

func (r *squadRepository) selectSquads() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "name", "active_clients").
		From(squadsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *squadRepository) List(ctx context.Context) ([]*domain.Squad, error) {
	squadsSQL, squadsArgs, err := r.selectSquads().OrderBy("name ASC", "id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, squadsSQL, squadsArgs...)
	if err != nil {
		return nil, translateError(err, "erro ao listar squads")
	}
	defer rows.Close()

	squads := make([]*domain.Squad, 0)
	for rows.Next() {
		squad := &domain.Squad{}
		if err := rows.Scan(&squad.ID, &squad.Name, &squad.ActiveClients); err != nil {
			return nil, err
		}
		squads = append(squads, squad)
	}

	return squads, rows.Err()
}

func (r *squadRepository) Get(ctx context.Context, id int64) (*domain.Squad, error) {
	squadsSQL, squadsArgs, err := r.selectSquads().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	squad := &domain.Squad{}
	err = r.conn.QueryRowContext(ctx, squadsSQL, squadsArgs...).Scan(&squad.ID, &squad.Name, &squad.ActiveClients)
	if err != nil {
		return nil, translateError(err, "erro ao buscar squad")
	}

	return squad, nil
}

func (r *squadRepository) Create(ctx context.Context, squad *domain.Squad) error {
	squadsSQL, squadsArgs, err := squirrel.
		Insert(squadsTable).
		Columns("name").
		Values(squad.Name).
		Suffix("RETURNING id, active_clients").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, squadsSQL, squadsArgs...).Scan(&squad.ID, &squad.ActiveClients)
	return translateError(err, "erro ao criar squad")
}

func (r *squadRepository) Update(ctx context.Context, squad *domain.Squad) error {
	squadsSQL, squadsArgs, err := squirrel.
		Update(squadsTable).
		Set("name", squad.Name).
		Where(squirrel.Eq{"id": squad.ID}).
		Suffix("RETURNING active_clients").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, squadsSQL, squadsArgs...).Scan(&squad.ActiveClients)
	return translateError(err, "erro ao atualizar squad")
}

func (r *squadRepository) Delete(ctx context.Context, id int64) error {
	squadsSQL, squadsArgs, err := squirrel.
		Delete(squadsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, squadsSQL, squadsArgs...)
	if err != nil {
		return translateError(err, "erro ao remover squad")
	}

	return expectAffected(result)
}

// RecountActiveClients recalcula active_clients de todos os squads a partir
// da tabela de clientes e retorna quantos squads estavam divergentes
func (r *squadRepository) RecountActiveClients(ctx context.Context) (int64, error) {
	var affected int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, recountActiveClientsSQL, domain.ClientStatusActive)
		if err != nil {
			return translateError(err, "erro ao recalcular clientes ativos")
		}

		affected, err = result.RowsAffected()
		return err
	})

	return affected, err
}

const recountActiveClientsSQL = `
UPDATE squads s
SET active_clients = counts.total
FROM (
    SELECT sq.id, COUNT(c.id) AS total
    FROM squads sq
    LEFT JOIN clients c ON c.squad_id = sq.id AND c.status = $1
    GROUP BY sq.id
) counts
WHERE s.id = counts.id AND s.active_clients <> counts.total`

// adjustActiveClients soma delta ao contador do squad, sem deixá-lo negativo
func adjustActiveClients(ctx context.Context, q postgres.Queryer, squadID int64, delta int) error {
	squadsSQL, squadsArgs, err := squirrel.
		Update(squadsTable).
		Set("active_clients", squirrel.Expr("GREATEST(active_clients + ?, 0)", delta)).
		Where(squirrel.Eq{"id": squadID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, squadsSQL, squadsArgs...)
	return translateError(err, "erro ao atualizar contador de clientes ativos")
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
