package provider

import (
	"github.com/aiya-partner/partner-api/internal/cache"
	"github.com/aiya-partner/partner-api/internal/config"
	"github.com/aiya-partner/partner-api/internal/logger"
	"github.com/aiya-partner/partner-api/internal/models"
	"github.com/aiya-partner/partner-api/internal/queue"
	"github.com/aiya-partner/partner-api/internal/repository"
	"github.com/aiya-partner/partner-api/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AffiliateRepo repository.AffiliateRepository
	LedgerRepo    repository.LedgerRepository

	// Services
	AuthService         *service.AuthService
	EmailService        *service.EmailService
	CaptchaService      *service.CaptchaService
	UploadService       *service.UploadService
	AffiliateService    *service.AffiliateService
	RegistrationService *service.RegistrationService
	DashboardService    *service.DashboardService
	ReferralService     *service.ReferralService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.AffiliateRepo = repository.NewAffiliateRepository(models.DB)
	c.LedgerRepo = repository.NewLedgerRepository(models.LedgerDB)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UploadService = service.NewUploadService(c.Config)
	c.AffiliateService = service.NewAffiliateService(c.AffiliateRepo, c.LedgerRepo)
	c.AuthService = service.NewAuthService(c.Config, c.AffiliateService)
	c.RegistrationService = service.NewRegistrationService(
		c.AffiliateRepo,
		c.LedgerRepo,
		c.buildRegistrationMailer(),
		c.Config,
	)
	c.DashboardService = service.NewDashboardService(c.AffiliateRepo, c.LedgerRepo)
	c.ReferralService = service.NewReferralService(c.AffiliateRepo, c.LedgerRepo)
}

// buildRegistrationMailer 选择确认邮件投递方式。
// 队列可用时投递到异步队列，否则同步走 SMTP。
func (c *Container) buildRegistrationMailer() service.RegistrationMailer {
	if c.QueueClient.Enabled() {
		return &queueRegistrationMailer{client: c.QueueClient}
	}
	return c.EmailService
}

// queueRegistrationMailer 把确认邮件投递到异步队列
type queueRegistrationMailer struct {
	client *queue.Client
}

func (m *queueRegistrationMailer) SendRegistrationConfirm(locale, toEmail, name, code string) error {
	return m.client.EnqueueRegistrationEmail(queue.RegistrationEmailPayload{
		Locale: locale,
		Email:  toEmail,
		Name:   name,
		Code:   code,
	})
}
