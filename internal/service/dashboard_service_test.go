package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aiya-partner/partner-api/internal/models"
	"github.com/aiya-partner/partner-api/internal/repository"
)

func TestGetDashboardProjection(t *testing.T) {
	local, ledger := openRegistrationTestDBs(t)
	affiliate := createTestAffiliate(t, local, "somchai@example.com", "SOM5678")
	if err := ledger.Create(&models.LedgerAffiliate{
		ID:                 "ledger-SOM5678",
		Code:               "SOM5678",
		Name:               "Somchai Jaidee",
		IsActive:           true,
		TotalRegistrations: 3,
		TotalCommission:    900000,
		PendingCommission:  300000,
		ApprovedCommission: 300000,
	}).Error; err != nil {
		t.Fatalf("seed ledger account failed: %v", err)
	}

	svc := NewDashboardService(repository.NewAffiliateRepository(local), repository.NewLedgerRepository(ledger))
	dashboard, err := svc.GetDashboard(context.Background(), affiliate.ID)
	if err != nil {
		t.Fatalf("get dashboard failed: %v", err)
	}
	if !dashboard.LedgerLinked {
		t.Fatalf("expected ledger linked")
	}
	if dashboard.TotalRegistrations != 3 {
		t.Fatalf("expected 3 registrations, got %d", dashboard.TotalRegistrations)
	}
	if dashboard.TotalCommission != 900000 || dashboard.PendingCommission != 300000 {
		t.Fatalf("unexpected totals: total=%d pending=%d", dashboard.TotalCommission, dashboard.PendingCommission)
	}
	// 已打款口径为 total - pending
	if dashboard.PaidCommission != 600000 {
		t.Fatalf("expected paid commission 600000, got %d", dashboard.PaidCommission)
	}
	if dashboard.TotalCommissionBaht.String() != "9000" {
		t.Fatalf("expected 9000 baht total, got %s", dashboard.TotalCommissionBaht.String())
	}
}

func TestGetDashboardWithoutLedgerAccount(t *testing.T) {
	local, ledger := openRegistrationTestDBs(t)
	affiliate := createTestAffiliate(t, local, "somchai@example.com", "SOM5678")

	svc := NewDashboardService(repository.NewAffiliateRepository(local), repository.NewLedgerRepository(ledger))
	dashboard, err := svc.GetDashboard(context.Background(), affiliate.ID)
	if err != nil {
		t.Fatalf("get dashboard failed: %v", err)
	}
	if dashboard.LedgerLinked {
		t.Fatalf("expected ledger not linked")
	}
	if dashboard.TotalCommission != 0 || dashboard.PendingCommission != 0 || dashboard.PaidCommission != 0 {
		t.Fatalf("expected zero projection without ledger account, got %+v", dashboard)
	}
}

func TestGetDashboardAffiliateNotFound(t *testing.T) {
	local, ledger := openRegistrationTestDBs(t)

	svc := NewDashboardService(repository.NewAffiliateRepository(local), repository.NewLedgerRepository(ledger))
	_, err := svc.GetDashboard(context.Background(), 999)
	if !errors.Is(err, ErrAffiliateNotFound) {
		t.Fatalf("expected ErrAffiliateNotFound, got %v", err)
	}
}
