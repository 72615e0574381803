package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipal_DisplaySquad(t *testing.T) {
	squadName := "Alpha"

	tests := []struct {
		name      string
		principal *Principal
		want      *string
	}{
		{
			name:      "superusuário recebe o rótulo Super",
			principal: &Principal{IsSuperuser: true},
			want:      &[]string{SuperuserSquadLabel}[0],
		},
		{
			name:      "usuário com squad recebe o nome do squad",
			principal: &Principal{SquadID: int64Ptr(1), SquadName: &squadName},
			want:      &squadName,
		},
		{
			name:      "usuário sem squad não recebe nome",
			principal: &Principal{},
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.principal.DisplaySquad()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestNewPrincipal_WithoutProfile(t *testing.T) {
	principal := NewPrincipal(&User{ID: 7, Username: "ana"}, nil)

	info := principal.Info()
	assert.Equal(t, int64(7), info.ID)
	assert.Equal(t, "ana", info.Username)
	assert.False(t, info.IsSuperuser)
	assert.Nil(t, info.SquadName)
	assert.Nil(t, info.Profile.Squad)
}
