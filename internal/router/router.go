package router

import (
	"fmt"
	"strings"

	"github.com/aiya-partner/partner-api/internal/cache"
	"github.com/aiya-partner/partner-api/internal/config"
	publichandlers "github.com/aiya-partner/partner-api/internal/http/handlers/public"
	"github.com/aiya-partner/partner-api/internal/logger"
	"github.com/aiya-partner/partner-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "aiya"
	}
	redisClient := cache.Client()
	registerRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:register", redisPrefix),
		WindowSeconds: cfg.Security.RegisterRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.RegisterRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.RegisterRateLimit.BlockSeconds,
		MessageKey:    "error.register_too_many",
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的存折照片）
	r.Static("/uploads", "./uploads")

	api := r.Group("/api")
	{
		// 注册向导接口（无需鉴权）
		api.GET("/check-affiliate", publicHandler.CheckAffiliate)
		api.GET("/suggest-affiliate-code", publicHandler.SuggestAffiliateCode)
		api.POST("/register-affiliate",
			RateLimitMiddleware(redisClient, registerRule, KeyByIPAndJSONField("email")),
			publicHandler.RegisterAffiliate,
		)
		api.POST("/register-affiliate-main", publicHandler.RegisterAffiliateMain)
		api.GET("/captcha/image", publicHandler.GetImageCaptcha)

		// 登录
		auth := api.Group("/auth")
		{
			auth.POST("/line/login", RateLimitMiddleware(redisClient, loginRule, KeyByIP), publicHandler.LoginWithLine)
		}

		// 伙伴门户接口（需鉴权）
		affiliate := api.Group("/affiliate")
		affiliate.Use(AffiliateJWTAuthMiddleware(cfg.JWT.SecretKey, c.AffiliateRepo))
		{
			affiliate.GET("/dashboard/:userId", publicHandler.GetDashboard)
			affiliate.GET("/referrals/:userId", publicHandler.ListReferrals)
			affiliate.GET("/notifications/:userId", publicHandler.ListNotifications)
			affiliate.POST("/notifications/:userId/read", publicHandler.MarkNotificationsRead)
			affiliate.GET("/profile/:userId", publicHandler.GetProfile)
			affiliate.PUT("/profile/:userId", publicHandler.UpdateProfile)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
