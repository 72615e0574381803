package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zebee/manager-api/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestSelectClients_Scope(t *testing.T) {
	tests := []struct {
		name      string
		scope     domain.ClientScope
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "superusuário sem filtro",
			scope:     domain.AllClients(),
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "filtra pelo squad do principal",
			scope:     domain.SquadClients(7),
			wantWhere: " WHERE c.squad_id = $1",
			wantArgs:  []any{int64(7)},
		},
		{
			name:      "sem squad não enxerga nada",
			scope:     domain.NoClients(),
			wantWhere: " WHERE 1=0",
			wantArgs:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := selectClients(tt.scope).ToSql()
			require.NoError(t, err)

			assert.Contains(t, query, "FROM clients c"+tt.wantWhere)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestSelectClients_LocksRowForUpdate(t *testing.T) {
	query, args, err := selectClients(domain.SquadClients(3)).
		Where("c.id = ?", int64(10)).
		Suffix("FOR UPDATE").
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE c.squad_id = $1 AND c.id = $2 FOR UPDATE")
	assert.Equal(t, []any{int64(3), int64(10)}, args)
}

func TestCounterDeltas(t *testing.T) {
	active := func(squad *int64) *domain.Client {
		return &domain.Client{SquadID: squad, Status: domain.ClientStatusActive}
	}
	inactive := func(squad *int64) *domain.Client {
		return &domain.Client{SquadID: squad, Status: domain.ClientStatusInactive}
	}

	tests := []struct {
		name   string
		before *domain.Client
		after  *domain.Client
		want   []counterDelta
	}{
		{
			name:  "criação de cliente ativo",
			after: active(int64Ptr(1)),
			want:  []counterDelta{{squadID: 1, delta: 1}},
		},
		{
			name:  "criação de cliente inativo",
			after: inactive(int64Ptr(1)),
			want:  []counterDelta{},
		},
		{
			name:  "criação sem squad",
			after: active(nil),
			want:  []counterDelta{},
		},
		{
			name:   "inativação",
			before: active(int64Ptr(1)),
			after:  inactive(int64Ptr(1)),
			want:   []counterDelta{{squadID: 1, delta: -1}},
		},
		{
			name:   "reativação",
			before: inactive(int64Ptr(1)),
			after:  active(int64Ptr(1)),
			want:   []counterDelta{{squadID: 1, delta: 1}},
		},
		{
			name:   "troca de squad",
			before: active(int64Ptr(5)),
			after:  active(int64Ptr(2)),
			want:   []counterDelta{{squadID: 2, delta: 1}, {squadID: 5, delta: -1}},
		},
		{
			name:   "edição sem efeito",
			before: active(int64Ptr(1)),
			after:  active(int64Ptr(1)),
			want:   []counterDelta{},
		},
		{
			name:   "remoção de cliente ativo",
			before: active(int64Ptr(4)),
			want:   []counterDelta{{squadID: 4, delta: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, counterDeltas(tt.before, tt.after))
		})
	}
}
