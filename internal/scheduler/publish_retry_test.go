package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	campaignmocks "github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning/mocks"
	"go.uber.org/mock/gomock"
)

func TestNewPublishRetryService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appConfig := &config.Config{
		PublishRetry: config.PublishRetry{
			CronSchedule:        "0 */6 * * *",
			BatchSize:           10,
			RequestDelaySeconds: 2,
			Enabled:             true,
		},
	}

	service := NewPublishRetryService(
		mocks.NewMockCampaignRepository(ctrl),
		campaignmocks.NewMockCampaignService(ctrl),
		appConfig,
	)

	assert.NotNil(t, service.scheduler)
	assert.Equal(t, "0 */6 * * *", service.config.CronSchedule)
	assert.Equal(t, 10, service.config.BatchSize)
	assert.Equal(t, 2, service.config.RequestDelaySeconds)
	assert.True(t, service.config.RetryEnabled)
	assert.False(t, service.syncRunning)
}

func TestPublishRetryService_RetryFailedPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockCampaignService := campaignmocks.NewMockCampaignService(ctrl)

	service := &PublishRetryService{
		config: PublishRetryConfig{
			CronSchedule:        "*/10 * * * *",
			BatchSize:           5,
			RequestDelaySeconds: 0,
			RetryEnabled:        true,
		},
		campaignRepo:    mockCampaignRepo,
		campaignService: mockCampaignService,
	}

	retryableCodes := []string{
		"DEADLINE_EXCEEDED",
		"INTERNAL_ERROR",
		"RATE_LIMIT_EXCEEDED",
		"RESOURCE_EXHAUSTED",
		"TRANSIENT_ERROR",
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T)
	}{
		{
			name: "Erro ao listar campanhas encerra a rodada sem publicar",
			setup: func() {
				// Mock: repositório indisponível
				mockCampaignRepo.EXPECT().
					ListRetryable(retryableCodes, 5).
					Return(nil, assert.AnError).
					Times(1)
			},
			validate: func(t *testing.T) {
				assert.False(t, service.lastSyncStartedAt.IsZero())
				assert.True(t, service.lastSyncCompletedAt.IsZero())
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Lote vazio não dispara nenhuma publicação",
			setup: func() {
				// Mock: nenhuma campanha com erro passageiro pendente
				mockCampaignRepo.EXPECT().
					ListRetryable(retryableCodes, 5).
					Return([]*domain.Campaign{}, nil).
					Times(1)
			},
			validate: func(t *testing.T) {
				assert.True(t, service.lastSyncCompletedAt.IsZero())
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Deve republicar todas as campanhas do lote",
			setup: func() {
				campaigns := []*domain.Campaign{
					{ID: "aB3dE9", Name: "Summer Sale", Status: domain.CampaignStatusError},
					{ID: "fG7hI2", Name: "Keyword Blitz", Status: domain.CampaignStatusError},
				}

				// Mock: lote de campanhas elegíveis para republicação
				mockCampaignRepo.EXPECT().
					ListRetryable(retryableCodes, 5).
					Return(campaigns, nil).
					Times(1)

				// Mock: cada campanha do lote é republicada
				mockCampaignService.EXPECT().
					Publish("aB3dE9").
					Return(nil, nil, nil).
					Times(1)
				mockCampaignService.EXPECT().
					Publish("fG7hI2").
					Return(nil, nil, nil).
					Times(1)
			},
			validate: func(t *testing.T) {
				assert.False(t, service.lastSyncStartedAt.IsZero())
				assert.False(t, service.lastSyncCompletedAt.IsZero())
				assert.False(t, service.lastSyncCompletedAt.Before(service.lastSyncStartedAt))
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Falha em uma campanha não interrompe o restante do lote",
			setup: func() {
				campaigns := []*domain.Campaign{
					{ID: "aB3dE9", Name: "Summer Sale", Status: domain.CampaignStatusError},
					{ID: "fG7hI2", Name: "Keyword Blitz", Status: domain.CampaignStatusError},
				}

				mockCampaignRepo.EXPECT().
					ListRetryable(retryableCodes, 5).
					Return(campaigns, nil).
					Times(1)

				// Mock: a primeira republicação falha e a segunda ainda acontece
				mockCampaignService.EXPECT().
					Publish("aB3dE9").
					Return(nil, nil, assert.AnError).
					Times(1)
				mockCampaignService.EXPECT().
					Publish("fG7hI2").
					Return(nil, nil, nil).
					Times(1)
			},
			validate: func(t *testing.T) {
				assert.False(t, service.lastSyncCompletedAt.IsZero())
				assert.False(t, service.syncRunning)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.retryFailedPublishes()

			tt.validate(t)
		})
	}
}

func TestPublishRetryService_ConcurrencyGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &PublishRetryService{
		config: PublishRetryConfig{
			BatchSize:    5,
			RetryEnabled: true,
		},
		campaignRepo:    mocks.NewMockCampaignRepository(ctrl),
		campaignService: campaignmocks.NewMockCampaignService(ctrl),
	}
	service.syncRunning = true

	// Nenhuma expectativa registrada: qualquer chamada ao repositório falha o teste
	service.retryFailedPublishes()

	assert.True(t, service.syncRunning)
	assert.True(t, service.lastSyncStartedAt.IsZero())
}

func TestPublishRetryService_TriggerManualSync(t *testing.T) {
	t.Run("Dispara a republicação em segundo plano", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

		service := &PublishRetryService{
			config: PublishRetryConfig{
				BatchSize:    5,
				RetryEnabled: true,
			},
			campaignRepo:    mockCampaignRepo,
			campaignService: campaignmocks.NewMockCampaignService(ctrl),
		}

		executed := make(chan struct{})
		mockCampaignRepo.EXPECT().
			ListRetryable(gomock.Any(), 5).
			DoAndReturn(func([]string, int) ([]*domain.Campaign, error) {
				close(executed)
				return nil, nil
			}).
			Times(1)

		service.TriggerManualSync()

		select {
		case <-executed:
		case <-time.After(2 * time.Second):
			t.Fatal("republicação manual não foi executada")
		}

		assert.Eventually(t, func() bool {
			service.syncMutex.Lock()
			defer service.syncMutex.Unlock()
			return !service.syncRunning
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("Não dispara quando já existe republicação em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := &PublishRetryService{
			config: PublishRetryConfig{
				BatchSize:    5,
				RetryEnabled: true,
			},
			campaignRepo:    mocks.NewMockCampaignRepository(ctrl),
			campaignService: campaignmocks.NewMockCampaignService(ctrl),
		}
		service.syncRunning = true

		service.TriggerManualSync()

		// Dá tempo para uma goroutine indevida chamar o repositório mockado
		time.Sleep(50 * time.Millisecond)
		assert.True(t, service.syncRunning)
	})
}

func TestPublishRetryService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service := &PublishRetryService{
			config: PublishRetryConfig{RetryEnabled: false},
		}

		// O agendador nem existe: com a republicação desabilitada ele não é tocado
		err := service.Start(context.Background())

		assert.NoError(t, err)
	})

	t.Run("Expressão cron inválida retorna erro", func(t *testing.T) {
		service := &PublishRetryService{
			scheduler: gocron.NewScheduler(time.UTC),
			config: PublishRetryConfig{
				CronSchedule: "a cada dez minutos",
				RetryEnabled: true,
			},
		}

		err := service.Start(context.Background())

		assert.ErrorContains(t, err, "erro ao agendar republicação de campanhas")
	})

	t.Run("Agenda a rotina e para junto com o contexto", func(t *testing.T) {
		service := &PublishRetryService{
			scheduler: gocron.NewScheduler(time.UTC),
			config: PublishRetryConfig{
				CronSchedule: "0 3 * * *",
				RetryEnabled: true,
			},
		}

		ctx, cancel := context.WithCancel(context.Background())

		err := service.Start(ctx)

		assert.NoError(t, err)
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool {
			return !service.scheduler.IsRunning()
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestPublishRetryService_GetStatus(t *testing.T) {
	service := &PublishRetryService{
		config: PublishRetryConfig{
			CronSchedule:        "*/30 * * * *",
			BatchSize:           20,
			RequestDelaySeconds: 1,
			RetryEnabled:        true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["retry_enabled"])
	assert.Equal(t, "*/30 * * * *", status["retry_cron"])
	assert.Equal(t, 20, status["retry_batch_size"])
	assert.Equal(t, 1, status["retry_request_delay_s"])
	assert.Equal(t, googleads.RetryableCodes(), status["retryable_error_codes"])
	assert.Equal(t, time.Time{}, status["last_sync_started_at"])
	assert.Equal(t, time.Time{}, status["last_sync_completed_at"])
}
