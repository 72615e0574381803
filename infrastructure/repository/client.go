package repository

import (
	"context"
	"database/sql"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/zebee/manager-api/infrastructure/database/postgres"
	"github.com/zebee/manager-api/internal/domain"
)

const clientsTable = "clients c"

var clientColumns = []string{
	"c.id",
	"c.squad_id",
	"c.seller_name",
	"c.store_name",
	"c.seller_id",
	"c.seller_email",
	"c.contracted_plan",
	"c.plan_value",
	"c.client_commission_percentage",
	"c.monthly_data",
	"c.status",
	"c.created_at",
	"c.status_changed_at",
}

// ClientMutation altera o cliente já bloqueado dentro da transação
type ClientMutation func(client *domain.Client) error

type ClientRepository interface {
	List(ctx context.Context, scope domain.ClientScope) ([]*domain.Client, error)
	Get(ctx context.Context, id int64, scope domain.ClientScope) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, id int64, scope domain.ClientScope, mutate ClientMutation) (*domain.Client, error)
	Delete(ctx context.Context, id int64, scope domain.ClientScope) error
}

type clientRepository struct {
	conn postgres.Conn
}

func NewClientRepository(conn postgres.Conn) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

// scopePredicate traduz o escopo do principal para a cláusula WHERE
func scopePredicate(scope domain.ClientScope) squirrel.Sqlizer {
	if scope.All() {
		return nil
	}
	if squadID, ok := scope.SquadID(); ok {
		return squirrel.Eq{"c.squad_id": squadID}
	}
	return squirrel.Expr("1=0")
}

func selectClients(scope domain.ClientScope) squirrel.SelectBuilder {
	builder := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		PlaceholderFormat(squirrel.Dollar)

	if predicate := scopePredicate(scope); predicate != nil {
		builder = builder.Where(predicate)
	}

	return builder
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	client := &domain.Client{}

	if err := row.Scan(
		&client.ID,
		&client.SquadID,
		&client.SellerName,
		&client.StoreName,
		&client.SellerID,
		&client.SellerEmail,
		&client.ContractedPlan,
		&client.PlanValue,
		&client.CommissionPercentage,
		&client.MonthlyData,
		&client.Status,
		&client.CreatedAt,
		&client.StatusChangedAt,
	); err != nil {
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) List(ctx context.Context, scope domain.ClientScope) ([]*domain.Client, error) {
	clientsSQL, clientsArgs, err := selectClients(scope).OrderBy("c.store_name ASC", "c.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, clientsSQL, clientsArgs...)
	if err != nil {
		return nil, translateError(err, "erro ao listar clientes")
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (r *clientRepository) Get(ctx context.Context, id int64, scope domain.ClientScope) (*domain.Client, error) {
	return getClient(ctx, r.conn, id, scope, false)
}

func getClient(ctx context.Context, q postgres.Queryer, id int64, scope domain.ClientScope, forUpdate bool) (*domain.Client, error) {
	builder := selectClients(scope).Where(squirrel.Eq{"c.id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	clientsSQL, clientsArgs, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	client, err := scanClient(q.QueryRowContext(ctx, clientsSQL, clientsArgs...))
	if err != nil {
		return nil, translateError(err, "erro ao buscar cliente")
	}

	return client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		clientsSQL, clientsArgs, err := squirrel.
			Insert("clients").
			Columns(
				"squad_id",
				"seller_name",
				"store_name",
				"seller_id",
				"seller_email",
				"contracted_plan",
				"plan_value",
				"client_commission_percentage",
				"monthly_data",
				"status",
				"created_at",
				"status_changed_at",
			).
			Values(
				client.SquadID,
				client.SellerName,
				client.StoreName,
				client.SellerID,
				client.SellerEmail,
				client.ContractedPlan,
				client.PlanValue,
				client.CommissionPercentage,
				client.MonthlyData,
				client.Status,
				client.CreatedAt,
				client.StatusChangedAt,
			).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if err := tx.QueryRowContext(ctx, clientsSQL, clientsArgs...).Scan(&client.ID); err != nil {
			return translateError(err, "erro ao criar cliente")
		}

		return applyCounterDeltas(ctx, tx, counterDeltas(nil, client))
	})
}

// Update bloqueia a linha do cliente, aplica a mutação e grava o resultado
// na mesma transação, ajustando os contadores dos squads envolvidos
func (r *clientRepository) Update(ctx context.Context, id int64, scope domain.ClientScope, mutate ClientMutation) (*domain.Client, error) {
	var updated *domain.Client

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		current, err := getClient(ctx, tx, id, scope, true)
		if err != nil {
			return err
		}

		previous := *current
		if err := mutate(current); err != nil {
			return err
		}

		clientsSQL, clientsArgs, err := squirrel.
			Update("clients").
			SetMap(map[string]any{
				"squad_id":                     current.SquadID,
				"seller_name":                  current.SellerName,
				"store_name":                   current.StoreName,
				"seller_id":                    current.SellerID,
				"seller_email":                 current.SellerEmail,
				"contracted_plan":              current.ContractedPlan,
				"plan_value":                   current.PlanValue,
				"client_commission_percentage": current.CommissionPercentage,
				"monthly_data":                 current.MonthlyData,
				"status":                       current.Status,
				"created_at":                   current.CreatedAt,
				"status_changed_at":            current.StatusChangedAt,
			}).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, clientsSQL, clientsArgs...); err != nil {
			return translateError(err, "erro ao atualizar cliente")
		}

		updated = current
		return applyCounterDeltas(ctx, tx, counterDeltas(&previous, current))
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *clientRepository) Delete(ctx context.Context, id int64, scope domain.ClientScope) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		current, err := getClient(ctx, tx, id, scope, true)
		if err != nil {
			return err
		}

		clientsSQL, clientsArgs, err := squirrel.
			Delete("clients").
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, clientsSQL, clientsArgs...); err != nil {
			return translateError(err, "erro ao remover cliente")
		}

		return applyCounterDeltas(ctx, tx, counterDeltas(current, nil))
	})
}

type counterDelta struct {
	squadID int64
	delta   int
}

// counterDeltas calcula o efeito de uma escrita sobre active_clients. Os
// ajustes saem ordenados por squad para manter a ordem dos locks estável.
func counterDeltas(before, after *domain.Client) []counterDelta {
	totals := make(map[int64]int)

	if before != nil && before.IsActive() && before.SquadID != nil {
		totals[*before.SquadID]--
	}
	if after != nil && after.IsActive() && after.SquadID != nil {
		totals[*after.SquadID]++
	}

	deltas := make([]counterDelta, 0, len(totals))
	for squadID, delta := range totals {
		if delta == 0 {
			continue
		}
		deltas = append(deltas, counterDelta{squadID: squadID, delta: delta})
	}
	sort.Slice(deltas, func(i, j int) bool { return deltas[i].squadID < deltas[j].squadID })

	return deltas
}

func applyCounterDeltas(ctx context.Context, q postgres.Queryer, deltas []counterDelta) error {
	for _, d := range deltas {
		if err := adjustActiveClients(ctx, q, d.squadID, d.delta); err != nil {
			return err
		}
	}
	return nil
}
