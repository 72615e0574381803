package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/zebee/manager-api/infrastructure/database/postgres"
	"github.com/zebee/manager-api/internal/domain"
)

const revenueHistoryTable = "revenue_history"

type RevenueHistoryRepository interface {
	List(ctx context.Context) ([]*domain.RevenueHistory, error)
	Get(ctx context.Context, id int64) (*domain.RevenueHistory, error)
	Create(ctx context.Context, entry *domain.RevenueHistory) error
	ExistsForMonth(ctx context.Context, month domain.Period) (bool, error)
}

type revenueHistoryRepository struct {
	conn postgres.Conn
}

func NewRevenueHistoryRepository(conn postgres.Conn) RevenueHistoryRepository {
	return &revenueHistoryRepository{
		conn: conn,
	}
}

func (r *revenueHistoryRepository) selectRevenueHistory() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "month", "revenue", "commission", "new_clients", "churns").
		From(revenueHistoryTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanRevenueHistory(row rowScanner) (*domain.RevenueHistory, error) {
	entry := &domain.RevenueHistory{}
	if err := row.Scan(
		&entry.ID,
		&entry.Month,
		&entry.Revenue,
		&entry.Commission,
		&entry.NewClients,
		&entry.Churns,
	); err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *revenueHistoryRepository) List(ctx context.Context) ([]*domain.RevenueHistory, error) {
	historySQL, historyArgs, err := r.selectRevenueHistory().OrderBy("month ASC", "id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, historySQL, historyArgs...)
	if err != nil {
		return nil, translateError(err, "erro ao listar histórico de receita")
	}
	defer rows.Close()

	entries := make([]*domain.RevenueHistory, 0)
	for rows.Next() {
		entry, err := scanRevenueHistory(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *revenueHistoryRepository) Get(ctx context.Context, id int64) (*domain.RevenueHistory, error) {
	historySQL, historyArgs, err := r.selectRevenueHistory().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	entry, err := scanRevenueHistory(r.conn.QueryRowContext(ctx, historySQL, historyArgs...))
	if err != nil {
		return nil, translateError(err, "erro ao buscar histórico de receita")
	}

	return entry, nil
}

func (r *revenueHistoryRepository) Create(ctx context.Context, entry *domain.RevenueHistory) error {
	historySQL, historyArgs, err := squirrel.
		Insert(revenueHistoryTable).
		Columns("month", "revenue", "commission", "new_clients", "churns").
		Values(entry.Month, entry.Revenue, entry.Commission, entry.NewClients, entry.Churns).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, historySQL, historyArgs...).Scan(&entry.ID)
	return translateError(err, "erro ao criar histórico de receita")
}

func (r *revenueHistoryRepository) ExistsForMonth(ctx context.Context, month domain.Period) (bool, error) {
	historySQL, historyArgs, err := squirrel.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(revenueHistoryTable).
		Where(squirrel.Eq{"month": month}).
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.conn.QueryRowContext(ctx, historySQL, historyArgs...).Scan(&exists); err != nil {
		return false, translateError(err, "erro ao verificar histórico de receita")
	}

	return exists, nil
}
