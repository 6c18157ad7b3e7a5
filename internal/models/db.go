package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite" // 纯 Go SQLite 驱动（基于 modernc.org/sqlite）
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 本地库连接（伙伴档案与通知游标）
var DB *gorm.DB

// LedgerDB 总部账本库连接（佣金账户与转介记录）
var LedgerDB *gorm.DB

// DBPoolConfig 数据库连接池配置
type DBPoolConfig struct {
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSeconds int
	ConnMaxIdleTimeSeconds int
}

// InitDB 初始化本地库连接
func InitDB(driver, dsn string, pool DBPoolConfig) error {
	db, err := openDB(driver, dsn, pool)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// InitLedgerDB 初始化账本库连接。两个库各自持有独立连接池，互不共享 schema。
func InitLedgerDB(driver, dsn string, pool DBPoolConfig) error {
	db, err := openDB(driver, dsn, pool)
	if err != nil {
		return err
	}
	LedgerDB = db
	return nil
}

func openDB(driver, dsn string, pool DBPoolConfig) (*gorm.DB, error) {
	normalized := strings.ToLower(strings.TrimSpace(driver))
	var dialector gorm.Dialector
	switch normalized {
	case "", "sqlite":
		// glebarez/sqlite 是基于 modernc.org/sqlite 的纯 Go 驱动
		dialector = sqlite.Open(dsn)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	applyDBPool(sqlDB, pool)
	return db, nil
}

func applyDBPool(sqlDB *sql.DB, pool DBPoolConfig) {
	if sqlDB == nil {
		return
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetimeSeconds > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeSeconds) * time.Second)
	}
	if pool.ConnMaxIdleTimeSeconds > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTimeSeconds) * time.Second)
	}
}

// AutoMigrate 自动迁移本地库表
func AutoMigrate() error {
	return DB.AutoMigrate(
		&Affiliate{},
		&NotificationCursor{},
	)
}

// AutoMigrateLedger 自动迁移账本库表。
// 生产环境账本库由总部维护 schema，仅在 sqlite（开发/测试）下执行。
func AutoMigrateLedger() error {
	return LedgerDB.AutoMigrate(
		&LedgerAffiliate{},
		&Referral{},
	)
}
