package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/aiya-partner/partner-api/internal/app"
	"github.com/aiya-partner/partner-api/internal/config"
	"github.com/aiya-partner/partner-api/internal/logger"
	"github.com/aiya-partner/partner-api/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) {
			stdLog.Fatalf("JWT secret 过弱或仍为默认值，请在生产环境中配置强随机密钥")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) {
		stdLog.Printf("警告: JWT secret 过弱或仍为默认值，建议在生产环境中更换")
	}

	// 初始化本地库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("本地数据库初始化失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("本地数据库迁移失败: %v", err)
	}

	// 初始化账本库（总部佣金系统）
	if err := models.InitLedgerDB(cfg.Ledger.Driver, cfg.Ledger.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Ledger.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Ledger.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Ledger.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Ledger.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("账本数据库初始化失败: %v", err)
	}
	if cfg.Ledger.Driver == "sqlite" {
		// 生产环境账本表结构由总部维护，仅本地开发时建表
		if err := models.AutoMigrateLedger(); err != nil {
			stdLog.Fatalf("账本数据库迁移失败: %v", err)
		}
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + " █████╗ ██╗██╗   ██╗ █████╗     ██████╗  █████╗ ██████╗ ████████╗███╗   ██╗███████╗██████╗ " + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗██║╚██╗ ██╔╝██╔══██╗    ██╔══██╗██╔══██╗██╔══██╗╚══██╔══╝████╗  ██║██╔════╝██╔══██╗" + ansiReset)
	fmt.Println(ansiCyan + "███████║██║ ╚████╔╝ ███████║    ██████╔╝███████║██████╔╝   ██║   ██╔██╗ ██║█████╗  ██████╔╝" + ansiReset)
	fmt.Println(ansiCyan + "██╔══██║██║  ╚██╔╝  ██╔══██║    ██╔═══╝ ██╔══██║██╔══██╗   ██║   ██║╚██╗██║██╔══╝  ██╔══██╗" + ansiReset)
	fmt.Println(ansiCyan + "██║  ██║██║   ██║   ██║  ██║    ██║     ██║  ██║██║  ██║   ██║   ██║ ╚████║███████╗██║  ██║" + ansiReset)
	fmt.Println(ansiCyan + "╚═╝  ╚═╝╚═╝   ╚═╝   ╚═╝  ╚═╝    ╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═══╝╚══════╝╚═╝  ╚═╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "AIYA Partner API" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
