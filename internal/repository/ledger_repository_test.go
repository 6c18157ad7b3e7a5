package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/aiya-partner/partner-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupLedgerRepoTest(t *testing.T) (*GormLedgerRepository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:ledger_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.LedgerAffiliate{}, &models.Referral{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewLedgerRepository(db), db
}

func TestLedgerRepoCodeExists(t *testing.T) {
	repo, db := setupLedgerRepoTest(t)
	if err := db.Create(&models.LedgerAffiliate{ID: "l1", Code: "SOM5678", Name: "Somchai"}).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	taken, err := repo.CodeExists("som5678")
	if err != nil {
		t.Fatalf("code exists failed: %v", err)
	}
	if !taken {
		t.Fatalf("expected code detected case-insensitively")
	}

	taken, err = repo.CodeExists("NAR5432")
	if err != nil {
		t.Fatalf("code exists failed: %v", err)
	}
	if taken {
		t.Fatalf("expected missing code not detected")
	}

	taken, err = repo.CodeExists("  ")
	if err != nil || taken {
		t.Fatalf("expected blank code neither erroring nor taken, got taken=%v err=%v", taken, err)
	}
}

func TestLedgerRepoCreateAffiliateDuplicateCode(t *testing.T) {
	repo, _ := setupLedgerRepoTest(t)
	if err := repo.CreateAffiliate(&models.LedgerAffiliate{ID: "l1", Code: "SOM5678", Name: "Somchai"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := repo.CreateAffiliate(&models.LedgerAffiliate{ID: "l2", Code: "SOM5678", Name: "Other"}); err == nil {
		t.Fatalf("expected duplicate code rejected by constraint")
	}
}

func TestLedgerRepoGetAffiliateByCodeNotFound(t *testing.T) {
	repo, _ := setupLedgerRepoTest(t)

	got, err := repo.GetAffiliateByCode("MISSING1")
	if err != nil {
		t.Fatalf("expected nil error on missing account, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil account, got %+v", got)
	}
}

func TestLedgerRepoListRecentReferralsOrder(t *testing.T) {
	repo, db := setupLedgerRepoTest(t)
	now := time.Now()
	for i, name := range []string{"oldest", "middle", "newest"} {
		if err := db.Create(&models.Referral{
			AffiliateCode:    "SOM5678",
			CustomerName:     name,
			Package:          "single",
			CommissionAmount: 300000,
			CommissionStatus: "pending",
			CreatedAt:        now.Add(time.Duration(i) * time.Hour),
		}).Error; err != nil {
			t.Fatalf("seed referral failed: %v", err)
		}
	}

	got, err := repo.ListRecentReferrals("SOM5678", 2)
	if err != nil {
		t.Fatalf("list recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected limit applied, got %d", len(got))
	}
	if got[0].CustomerName != "newest" {
		t.Fatalf("expected newest first, got %q", got[0].CustomerName)
	}
}
