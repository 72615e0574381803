package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/zebee/manager-api/infrastructure/database/postgres"
	"github.com/zebee/manager-api/internal/domain"
)

const squadPerformanceTable = "squad_performance sp"

type SquadPerformanceRepository interface {
	List(ctx context.Context) ([]*domain.SquadPerformance, error)
	Get(ctx context.Context, id int64) (*domain.SquadPerformance, error)
	Create(ctx context.Context, performance *domain.SquadPerformance) error
	Upsert(ctx context.Context, performance *domain.SquadPerformance) error
}

type squadPerformanceRepository struct {
	conn postgres.Conn
}

func NewSquadPerformanceRepository(conn postgres.Conn) SquadPerformanceRepository {
	return &squadPerformanceRepository{
		conn: conn,
	}
}

func (r *squadPerformanceRepository) selectPerformance() squirrel.SelectBuilder {
	return squirrel.
		Select("sp.id", "sp.squad_id", "s.name", "sp.month", "sp.revenue").
		From(squadPerformanceTable).
		Join("squads s ON s.id = sp.squad_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanSquadPerformance(row rowScanner) (*domain.SquadPerformance, error) {
	performance := &domain.SquadPerformance{}
	if err := row.Scan(
		&performance.ID,
		&performance.SquadID,
		&performance.SquadName,
		&performance.Month,
		&performance.Revenue,
	); err != nil {
		return nil, err
	}
	return performance, nil
}

func (r *squadPerformanceRepository) List(ctx context.Context) ([]*domain.SquadPerformance, error) {
	performanceSQL, performanceArgs, err := r.selectPerformance().OrderBy("sp.month ASC", "s.name ASC", "sp.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, performanceSQL, performanceArgs...)
	if err != nil {
		return nil, translateError(err, "erro ao listar performance de squads")
	}
	defer rows.Close()

	performances := make([]*domain.SquadPerformance, 0)
	for rows.Next() {
		performance, err := scanSquadPerformance(rows)
		if err != nil {
			return nil, err
		}
		performances = append(performances, performance)
	}

	return performances, rows.Err()
}

func (r *squadPerformanceRepository) Get(ctx context.Context, id int64) (*domain.SquadPerformance, error) {
	performanceSQL, performanceArgs, err := r.selectPerformance().Where(squirrel.Eq{"sp.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	performance, err := scanSquadPerformance(r.conn.QueryRowContext(ctx, performanceSQL, performanceArgs...))
	if err != nil {
		return nil, translateError(err, "erro ao buscar performance de squad")
	}

	return performance, nil
}

// Create falha com ErrConflict quando o squad já tem registro no mês
func (r *squadPerformanceRepository) Create(ctx context.Context, performance *domain.SquadPerformance) error {
	return r.insert(ctx, performance, "")
}

// Upsert substitui a receita do squad no mês quando o registro já existe
func (r *squadPerformanceRepository) Upsert(ctx context.Context, performance *domain.SquadPerformance) error {
	return r.insert(ctx, performance, "ON CONFLICT (squad_id, month) DO UPDATE SET revenue = EXCLUDED.revenue")
}

func (r *squadPerformanceRepository) insert(ctx context.Context, performance *domain.SquadPerformance, onConflict string) error {
	performanceSQL, performanceArgs, err := squirrel.
		Insert("squad_performance").
		Columns("squad_id", "month", "revenue").
		Values(performance.SquadID, performance.Month, performance.Revenue).
		Suffix(onConflict + " RETURNING id, (SELECT s.name FROM squads s WHERE s.id = squad_performance.squad_id)").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, performanceSQL, performanceArgs...).Scan(&performance.ID, &performance.SquadName)
	return translateError(err, "erro ao gravar performance de squad")
}
