package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
)

// PublishRetryConfig representa a configuração do agendador de republicação
type PublishRetryConfig struct {
	CronSchedule        string
	BatchSize           int
	RequestDelaySeconds int
	RetryEnabled        bool
}

// PublishRetryService reprocessa campanhas cuja publicação falhou por um erro
// passageiro do Google Ads (limite de requisições, indisponibilidade)
type PublishRetryService struct {
	scheduler           *gocron.Scheduler
	config              PublishRetryConfig
	campaignRepo        repository.CampaignRepository
	campaignService     campaigning.CampaignService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPublishRetryService cria uma nova instância do serviço de republicação
func NewPublishRetryService(
	campaignRepo repository.CampaignRepository,
	campaignService campaigning.CampaignService,
	appConfig *config.Config,
) *PublishRetryService {
	retryConfig := PublishRetryConfig{
		CronSchedule:        appConfig.PublishRetry.CronSchedule,
		BatchSize:           appConfig.PublishRetry.BatchSize,
		RequestDelaySeconds: appConfig.PublishRetry.RequestDelaySeconds,
		RetryEnabled:        appConfig.PublishRetry.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         retryConfig.CronSchedule,
		"batch_size":            retryConfig.BatchSize,
		"request_delay_seconds": retryConfig.RequestDelaySeconds,
		"retry_enabled":         retryConfig.RetryEnabled,
	}).Info("Configuração do agendador de republicação carregada")

	return &PublishRetryService{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          retryConfig,
		campaignRepo:    campaignRepo,
		campaignService: campaignService,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *PublishRetryService) Start(ctx context.Context) error {
	if !s.config.RetryEnabled {
		logrus.Info("Republicação automática de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de republicação de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.retryFailedPublishes()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar republicação de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de republicação de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// retryFailedPublishes republica o próximo lote de campanhas com erro passageiro
func (s *PublishRetryService) retryFailedPublishes() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Republicação de campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	campaigns, err := s.campaignRepo.ListRetryable(googleads.RetryableCodes(), s.config.BatchSize)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas para republicação")
		return
	}

	if len(campaigns) == 0 {
		logrus.Info("Nenhuma campanha com erro passageiro para republicar")
		return
	}

	logrus.WithField("campaigns", len(campaigns)).Info("Iniciando republicação de campanhas com erro passageiro")

	republished := 0
	for i, campaign := range campaigns {
		if i > 0 {
			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		if _, _, err := s.campaignService.Publish(campaign.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id":   campaign.ID,
				"campaign_name": campaign.Name,
				"error":         err.Error(),
			}).Warn("Republicação de campanha falhou")
			continue
		}

		republished++
		logrus.WithFields(logrus.Fields{
			"campaign_id":   campaign.ID,
			"campaign_name": campaign.Name,
		}).Info("Campanha republicada com sucesso")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":    duration.String(),
		"campaigns":   len(campaigns),
		"republished": republished,
	}).Info("Republicação de campanhas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma rodada de republicação
func (s *PublishRetryService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Republicação de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando republicação manual de campanhas")
	go s.retryFailedPublishes()
}

// GetStatus retorna o status atual do agendador
func (s *PublishRetryService) GetStatus() map[string]any {
	return map[string]any{
		"retry_enabled":          s.config.RetryEnabled,
		"retry_cron":             s.config.CronSchedule,
		"retry_batch_size":       s.config.BatchSize,
		"retry_request_delay_s":  s.config.RequestDelaySeconds,
		"retryable_error_codes":  googleads.RetryableCodes(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
