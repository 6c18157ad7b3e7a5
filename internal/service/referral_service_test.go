package service

import (
	"errors"
	"testing"
	"time"

	"github.com/aiya-partner/partner-api/internal/constants"
	"github.com/aiya-partner/partner-api/internal/models"
	"github.com/aiya-partner/partner-api/internal/repository"

	"gorm.io/gorm"
)

func seedTestReferral(t *testing.T, db *gorm.DB, code, customer, status string, amount int64, createdAt time.Time) {
	t.Helper()
	if err := db.Create(&models.Referral{
		AffiliateCode:    code,
		CustomerName:     customer,
		Package:          constants.PackageTypeSingle,
		CommissionAmount: amount,
		CommissionStatus: status,
		CreatedAt:        createdAt,
	}).Error; err != nil {
		t.Fatalf("seed referral failed: %v", err)
	}
}

func TestDeriveNotificationsKinds(t *testing.T) {
	now := time.Now()
	referrals := []models.Referral{
		{CustomerName: "A", CommissionStatus: constants.CommissionStatusPending, CreatedAt: now},
		{CustomerName: "B", CommissionStatus: constants.CommissionStatusApproved, CreatedAt: now},
		{CustomerName: "C", CommissionStatus: constants.CommissionStatusPaid, CreatedAt: now},
		{CustomerName: "D", CommissionStatus: constants.CommissionStatusRejected, CreatedAt: now},
	}

	got := deriveNotifications(referrals, time.Time{})
	if len(got) != 3 {
		t.Fatalf("expected rejected referral skipped, got %d notifications", len(got))
	}
	wantKinds := []string{
		constants.NotificationKindNewReferral,
		constants.NotificationKindCommissionApproved,
		constants.NotificationKindCommissionPaid,
	}
	for i, kind := range wantKinds {
		if got[i].Kind != kind {
			t.Fatalf("notification %d: expected kind %q, got %q", i, kind, got[i].Kind)
		}
	}
}

func TestDeriveNotificationsReadWatermark(t *testing.T) {
	watermark := time.Now()
	referrals := []models.Referral{
		{CustomerName: "new", CommissionStatus: constants.CommissionStatusPending, CreatedAt: watermark.Add(time.Minute)},
		{CustomerName: "seen", CommissionStatus: constants.CommissionStatusPending, CreatedAt: watermark.Add(-time.Minute)},
		{CustomerName: "boundary", CommissionStatus: constants.CommissionStatusPending, CreatedAt: watermark},
	}

	got := deriveNotifications(referrals, watermark)
	if got[0].Read {
		t.Fatalf("expected referral after watermark unread")
	}
	if !got[1].Read {
		t.Fatalf("expected referral before watermark read")
	}
	// 等于水位线视为已读
	if !got[2].Read {
		t.Fatalf("expected referral at watermark read")
	}
}

func TestListReferralsPaginationAndFilter(t *testing.T) {
	local, ledger := openRegistrationTestDBs(t)
	affiliate := createTestAffiliate(t, local, "somchai@example.com", "SOM5678")

	now := time.Now()
	seedTestReferral(t, ledger, "SOM5678", "Anucha", constants.CommissionStatusPaid, 300000, now.Add(-3*time.Hour))
	seedTestReferral(t, ledger, "SOM5678", "Busaba", constants.CommissionStatusApproved, 300000, now.Add(-2*time.Hour))
	seedTestReferral(t, ledger, "SOM5678", "Chatchai", constants.CommissionStatusPending, 300000, now.Add(-time.Hour))
	seedTestReferral(t, ledger, "OTHER99", "Duangjai", constants.CommissionStatusPending, 700000, now)

	svc := NewReferralService(repository.NewAffiliateRepository(local), repository.NewLedgerRepository(ledger))

	referrals, total, err := svc.ListReferrals(affiliate.ID, 1, 2, "")
	if err != nil {
		t.Fatalf("list referrals failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 referrals for own code, got %d", total)
	}
	if len(referrals) != 2 {
		t.Fatalf("expected first page of 2, got %d", len(referrals))
	}
	if referrals[0].CustomerName != "Chatchai" {
		t.Fatalf("expected newest referral first, got %q", referrals[0].CustomerName)
	}

	pending, total, err := svc.ListReferrals(affiliate.ID, 1, 10, constants.CommissionStatusPending)
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if total != 1 || len(pending) != 1 || pending[0].CustomerName != "Chatchai" {
		t.Fatalf("expected only pending referral Chatchai, got total=%d items=%d", total, len(pending))
	}
}

func TestListNotificationsAndMarkAllRead(t *testing.T) {
	local, ledger := openRegistrationTestDBs(t)
	affiliate := createTestAffiliate(t, local, "somchai@example.com", "SOM5678")

	seedTestReferral(t, ledger, "SOM5678", "Anucha", constants.CommissionStatusPending, 300000, time.Now().Add(-time.Minute))

	svc := NewReferralService(repository.NewAffiliateRepository(local), repository.NewLedgerRepository(ledger))

	notifications, err := svc.ListNotifications(affiliate.ID)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifications))
	}
	if notifications[0].Read {
		t.Fatalf("expected unread before any watermark")
	}

	if err := svc.MarkAllRead(affiliate.ID); err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}

	notifications, err = svc.ListNotifications(affiliate.ID)
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if !notifications[0].Read {
		t.Fatalf("expected read after watermark advanced")
	}
}

func TestListReferralsAffiliateNotFound(t *testing.T) {
	local, ledger := openRegistrationTestDBs(t)

	svc := NewReferralService(repository.NewAffiliateRepository(local), repository.NewLedgerRepository(ledger))
	_, _, err := svc.ListReferrals(999, 1, 10, "")
	if !errors.Is(err, ErrAffiliateNotFound) {
		t.Fatalf("expected ErrAffiliateNotFound, got %v", err)
	}
}
