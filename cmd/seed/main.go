package main

import (
	"fmt"
	"time"

	"github.com/aiya-partner/partner-api/internal/config"
	"github.com/aiya-partner/partner-api/internal/constants"
	"github.com/aiya-partner/partner-api/internal/logger"
	"github.com/aiya-partner/partner-api/internal/models"

	"github.com/google/uuid"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.InitLedgerDB(cfg.Ledger.Driver, cfg.Ledger.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Ledger.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Ledger.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Ledger.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Ledger.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect ledger database: %v", err)
	}
	if err := models.AutoMigrateLedger(); err != nil {
		stdLog.Fatalf("Failed to migrate ledger database: %v", err)
	}

	now := time.Now()
	consentA := now.Add(-30 * 24 * time.Hour)
	consentB := now.Add(-14 * 24 * time.Hour)
	consentC := now.Add(-3 * 24 * time.Hour)

	// 本地库伙伴档案
	affiliates := []models.Affiliate{
		{
			FullName:          "Somchai Jaidee",
			Email:             "somchai@example.com",
			Phone:             "0812345678",
			Code:              "SOM5678",
			Package:           constants.PackageTypeSingle,
			Status:            constants.AffiliateStatusActive,
			BankName:          "Kasikorn Bank",
			BankAccountNo:     "1234567890",
			BankAccountName:   "Somchai Jaidee",
			PDPAConsentAt:     &consentA,
			MainSystemSuccess: true,
		},
		{
			FullName:          "Naruemon Srisuk",
			Email:             "naruemon@example.com",
			Phone:             "0898765432",
			Code:              "NAR5432",
			Package:           constants.PackageTypeDuo,
			Status:            constants.AffiliateStatusActive,
			PDPAConsentAt:     &consentB,
			MainSystemSuccess: true,
		},
		{
			FullName: "Kittipong Wong",
			Email:    "kittipong@example.com",
			Phone:    "0861112222",
			Code:     "KIT2222",
			Package:  constants.PackageTypeSingle,
			Note:     "อยากขายคอร์สคู่ในอนาคต",
			Status:   constants.AffiliateStatusActive,
			// 账本写入失败的样例，用于演示补偿提交
			PDPAConsentAt:     &consentC,
			MainSystemSuccess: false,
		},
	}

	for _, aff := range affiliates {
		var existing models.Affiliate
		if err := models.DB.Where("email = ?", aff.Email).First(&existing).Error; err != nil {
			if err := models.DB.Create(&aff).Error; err != nil {
				stdLog.Printf("Failed to create affiliate %s: %v", aff.Code, err)
			} else {
				stdLog.Printf("Created affiliate: %s", aff.Code)
			}
		} else {
			stdLog.Printf("Affiliate already exists: %s", existing.Code)
		}
	}

	// 账本库佣金账户（KIT2222 故意缺席，对应本地账本写入失败的样例）
	ledgerAccounts := []models.LedgerAffiliate{
		{
			ID:                    uuid.NewString(),
			Code:                  "SOM5678",
			Name:                  "Somchai Jaidee",
			Email:                 "somchai@example.com",
			Tel:                   "0812345678",
			IsActive:              true,
			SingleCommissionValue: cfg.Affiliate.SingleCommissionValue,
			SingleDiscountValue:   cfg.Affiliate.SingleDiscountValue,
			DuoCommissionValue:    cfg.Affiliate.DuoCommissionValue,
			DuoDiscountValue:      cfg.Affiliate.DuoDiscountValue,
			TotalRegistrations:    3,
			TotalCommission:       900000,
			PendingCommission:     300000,
			ApprovedCommission:    300000,
		},
		{
			ID:                    uuid.NewString(),
			Code:                  "NAR5432",
			Name:                  "Naruemon Srisuk",
			Email:                 "naruemon@example.com",
			Tel:                   "0898765432",
			IsActive:              true,
			SingleCommissionValue: cfg.Affiliate.SingleCommissionValue,
			SingleDiscountValue:   cfg.Affiliate.SingleDiscountValue,
			DuoCommissionValue:    cfg.Affiliate.DuoCommissionValue,
			DuoDiscountValue:      cfg.Affiliate.DuoDiscountValue,
			TotalRegistrations:    1,
			TotalCommission:       700000,
			PendingCommission:     700000,
			ApprovedCommission:    0,
		},
	}

	for _, account := range ledgerAccounts {
		var existing models.LedgerAffiliate
		if err := models.LedgerDB.Where("code = ?", account.Code).First(&existing).Error; err != nil {
			if err := models.LedgerDB.Create(&account).Error; err != nil {
				stdLog.Printf("Failed to create ledger account %s: %v", account.Code, err)
			} else {
				stdLog.Printf("Created ledger account: %s", account.Code)
			}
		} else {
			stdLog.Printf("Ledger account already exists: %s", existing.Code)
		}
	}

	// 账本库转介记录
	referrals := []models.Referral{
		{
			AffiliateCode:    "SOM5678",
			CustomerName:     "Anucha P.",
			CustomerEmail:    "anucha@example.com",
			Package:          constants.PackageTypeSingle,
			CommissionAmount: cfg.Affiliate.SingleCommissionValue,
			CommissionStatus: constants.CommissionStatusPaid,
		},
		{
			AffiliateCode:    "SOM5678",
			CustomerName:     "Busaba K.",
			CustomerEmail:    "busaba@example.com",
			Package:          constants.PackageTypeSingle,
			CommissionAmount: cfg.Affiliate.SingleCommissionValue,
			CommissionStatus: constants.CommissionStatusApproved,
		},
		{
			AffiliateCode:    "SOM5678",
			CustomerName:     "Chatchai T.",
			CustomerEmail:    "chatchai@example.com",
			Package:          constants.PackageTypeSingle,
			CommissionAmount: cfg.Affiliate.SingleCommissionValue,
			CommissionStatus: constants.CommissionStatusPending,
		},
		{
			AffiliateCode:    "NAR5432",
			CustomerName:     "Duangjai S.",
			CustomerEmail:    "duangjai@example.com",
			Package:          constants.PackageTypeDuo,
			CommissionAmount: cfg.Affiliate.DuoCommissionValue,
			CommissionStatus: constants.CommissionStatusPending,
		},
	}

	for _, ref := range referrals {
		var existing models.Referral
		if err := models.LedgerDB.Where("affiliate_code = ? AND customer_email = ?", ref.AffiliateCode, ref.CustomerEmail).First(&existing).Error; err != nil {
			if err := models.LedgerDB.Create(&ref).Error; err != nil {
				stdLog.Printf("Failed to create referral for %s: %v", ref.AffiliateCode, err)
			} else {
				stdLog.Printf("Created referral: %s -> %s", ref.AffiliateCode, ref.CustomerName)
			}
		} else {
			stdLog.Printf("Referral already exists: %s -> %s", existing.AffiliateCode, existing.CustomerName)
		}
	}

	fmt.Println("\n✅ Demo data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Affiliates (1 with pending ledger submit)")
	fmt.Println("- 2 Ledger accounts")
	fmt.Println("- 4 Referrals")
}
