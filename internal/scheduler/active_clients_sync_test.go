package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zebee/manager-api/infrastructure/repository/mocks"
	"github.com/zebee/manager-api/internal/config"
	"go.uber.org/mock/gomock"
)

func TestActiveClientsSyncService_syncActiveClients(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(repo *mocks.MockSquadRepository)
		wantUpdated int64
		wantError   string
	}{
		{
			name: "recalcula contadores",
			setup: func(repo *mocks.MockSquadRepository) {
				repo.EXPECT().RecountActiveClients(gomock.Any()).Return(int64(3), nil)
			},
			wantUpdated: 3,
		},
		{
			name: "registra erro do banco",
			setup: func(repo *mocks.MockSquadRepository) {
				repo.EXPECT().RecountActiveClients(gomock.Any()).Return(int64(0), errors.New("conexão perdida"))
			},
			wantError: "conexão perdida",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockSquadRepository(ctrl)
			tt.setup(repo)

			service := NewActiveClientsSyncService(repo, &config.Config{
				ActiveClientsSync: config.ActiveClientsSync{CronSchedule: "0 2 * * *", Enabled: true},
			})

			service.syncActiveClients(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.wantUpdated, status["last_updated_squads"])
			assert.Equal(t, tt.wantError, status["last_error"])
		})
	}
}

func TestActiveClientsSyncService_SkipsWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSquadRepository(ctrl)

	service := NewActiveClientsSyncService(repo, &config.Config{})
	service.syncRunning = true

	// Sem EXPECT: qualquer chamada ao repositório falha o teste
	service.syncActiveClients(context.Background())
	service.TriggerManualSync()
}

func TestActiveClientsSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewActiveClientsSyncService(mocks.NewMockSquadRepository(ctrl), &config.Config{})

	assert.NoError(t, service.Start(context.Background()))
	assert.False(t, service.scheduler.IsRunning())
}
