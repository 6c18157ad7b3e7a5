package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aiya-partner/partner-api/internal/config"
	"github.com/aiya-partner/partner-api/internal/constants"
	"github.com/aiya-partner/partner-api/internal/models"
	"github.com/aiya-partner/partner-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type recordingMailer struct {
	sent    []string
	failNow bool
}

func (m *recordingMailer) SendRegistrationConfirm(locale, toEmail, name, code string) error {
	if m.failNow {
		return ErrEmailServiceDisabled
	}
	m.sent = append(m.sent, toEmail)
	return nil
}

type failingLedgerRepo struct {
	repository.LedgerRepository
}

func (r *failingLedgerRepo) CreateAffiliate(affiliate *models.LedgerAffiliate) error {
	return errors.New("ledger connection refused")
}

func openRegistrationTestDBs(t *testing.T) (*gorm.DB, *gorm.DB) {
	t.Helper()

	suffix := time.Now().UnixNano()
	local, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:reg_local_%d?mode=memory&cache=shared", suffix)), &gorm.Config{})
	if err != nil {
		t.Fatalf("open local sqlite failed: %v", err)
	}
	if err := local.AutoMigrate(&models.Affiliate{}, &models.NotificationCursor{}); err != nil {
		t.Fatalf("auto migrate local failed: %v", err)
	}

	ledger, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:reg_ledger_%d?mode=memory&cache=shared", suffix)), &gorm.Config{})
	if err != nil {
		t.Fatalf("open ledger sqlite failed: %v", err)
	}
	if err := ledger.AutoMigrate(&models.LedgerAffiliate{}, &models.Referral{}); err != nil {
		t.Fatalf("auto migrate ledger failed: %v", err)
	}
	return local, ledger
}

func registrationTestConfig() *config.Config {
	return &config.Config{
		Affiliate: config.AffiliateConfig{
			SingleCommissionValue: 300000,
			SingleDiscountValue:   100000,
			DuoCommissionValue:    700000,
			DuoDiscountValue:      200000,
		},
	}
}

func setupRegistrationServiceTest(t *testing.T) (*RegistrationService, *recordingMailer, *gorm.DB, *gorm.DB) {
	t.Helper()

	local, ledger := openRegistrationTestDBs(t)
	mailer := &recordingMailer{}
	svc := NewRegistrationService(
		repository.NewAffiliateRepository(local),
		repository.NewLedgerRepository(ledger),
		mailer,
		registrationTestConfig(),
	)
	return svc, mailer, local, ledger
}

func TestRegisterSuccess(t *testing.T) {
	svc, mailer, local, ledger := setupRegistrationServiceTest(t)

	result, err := svc.Register(constants.LocaleThTH, RegisterInput{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "081-234-5678",
		Code:        "jan5678",
		Package:     constants.PackageTypeSingle,
		PDPAConsent: true,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if result.AffiliateID == 0 {
		t.Fatalf("expected affiliate id assigned")
	}
	if result.AffiliateCode != "JAN5678" {
		t.Fatalf("expected normalized code JAN5678, got %q", result.AffiliateCode)
	}
	if !result.MainSystemSuccess {
		t.Fatalf("expected ledger write success")
	}
	if !result.EmailSent {
		t.Fatalf("expected confirm email sent")
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "jane@example.com" {
		t.Fatalf("expected one confirm email to jane@example.com, got %v", mailer.sent)
	}

	var affiliate models.Affiliate
	if err := local.First(&affiliate, result.AffiliateID).Error; err != nil {
		t.Fatalf("load local record failed: %v", err)
	}
	if affiliate.Status != constants.AffiliateStatusActive {
		t.Fatalf("expected active status, got %q", affiliate.Status)
	}
	if affiliate.PDPAConsentAt == nil {
		t.Fatalf("expected pdpa consent timestamp recorded")
	}
	if !affiliate.MainSystemSuccess {
		t.Fatalf("expected main system success flag persisted")
	}

	var account models.LedgerAffiliate
	if err := ledger.Where("code = ?", "JAN5678").First(&account).Error; err != nil {
		t.Fatalf("load ledger record failed: %v", err)
	}
	if !account.IsActive {
		t.Fatalf("expected ledger account active on registration")
	}
	if account.SingleCommissionValue != 300000 || account.SingleDiscountValue != 100000 {
		t.Fatalf("unexpected single package config: commission=%d discount=%d",
			account.SingleCommissionValue, account.SingleDiscountValue)
	}
	if account.DuoCommissionValue != 700000 || account.DuoDiscountValue != 200000 {
		t.Fatalf("unexpected duo package config: commission=%d discount=%d",
			account.DuoCommissionValue, account.DuoDiscountValue)
	}
}

func TestRegisterValidationRejected(t *testing.T) {
	svc, mailer, _, _ := setupRegistrationServiceTest(t)

	_, err := svc.Register(constants.LocaleThTH, RegisterInput{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "0812345678",
		Code:        "jan5678",
		PDPAConsent: false,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Field != "pdpaConsent" {
		t.Fatalf("expected pdpaConsent field, got %q", verr.Field)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("expected no email on rejected input")
	}
}

func TestRegisterCodeTakenInLedger(t *testing.T) {
	svc, _, _, ledger := setupRegistrationServiceTest(t)

	if err := ledger.Create(&models.LedgerAffiliate{
		ID:   "ledger-1",
		Code: "JAN5678",
		Name: "Existing Partner",
	}).Error; err != nil {
		t.Fatalf("seed ledger account failed: %v", err)
	}

	_, err := svc.Register(constants.LocaleThTH, RegisterInput{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "0812345678",
		Code:        "jan5678",
		PDPAConsent: true,
	})
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if cerr.Field != "affiliateCode" {
		t.Fatalf("expected affiliateCode conflict, got %q", cerr.Field)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	svc, _, _, _ := setupRegistrationServiceTest(t)

	first := RegisterInput{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "0812345678",
		Code:        "jan5678",
		PDPAConsent: true,
	}
	if _, err := svc.Register(constants.LocaleThTH, first); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	second := first
	second.Code = "JAN9999"
	_, err := svc.Register(constants.LocaleThTH, second)
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if cerr.Field != "email" {
		t.Fatalf("expected email conflict, got %q", cerr.Field)
	}
}

func TestRegisterLedgerWriteFailureKeepsLocalRecord(t *testing.T) {
	local, ledger := openRegistrationTestDBs(t)

	mailer := &recordingMailer{}
	repo := repository.NewAffiliateRepository(local)
	svc := NewRegistrationService(
		repo,
		&failingLedgerRepo{LedgerRepository: repository.NewLedgerRepository(ledger)},
		mailer,
		registrationTestConfig(),
	)

	result, err := svc.Register(constants.LocaleThTH, RegisterInput{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "0812345678",
		Code:        "jan5678",
		PDPAConsent: true,
	})
	if err != nil {
		t.Fatalf("register should survive ledger failure, got: %v", err)
	}
	if result.MainSystemSuccess {
		t.Fatalf("expected main system failure flagged")
	}
	if !result.EmailSent {
		t.Fatalf("expected confirm email still sent after ledger failure")
	}

	affiliate, err := repo.GetByEmail("jane@example.com")
	if err != nil {
		t.Fatalf("load local record failed: %v", err)
	}
	if affiliate == nil {
		t.Fatalf("expected local record kept despite ledger failure")
	}
	if affiliate.MainSystemSuccess {
		t.Fatalf("expected main system success flag false")
	}
}

func TestResubmitLedgerAfterFailure(t *testing.T) {
	svc, _, local, ledger := setupRegistrationServiceTest(t)

	if err := local.Create(&models.Affiliate{
		FullName:          "Jane Doe",
		Email:             "jane@example.com",
		Phone:             "0812345678",
		Code:              "JAN5678",
		Package:           constants.PackageTypeSingle,
		Status:            constants.AffiliateStatusActive,
		MainSystemSuccess: false,
	}).Error; err != nil {
		t.Fatalf("seed local record failed: %v", err)
	}
	var affiliate models.Affiliate
	if err := local.Where("code = ?", "JAN5678").First(&affiliate).Error; err != nil {
		t.Fatalf("load seeded record failed: %v", err)
	}

	record, err := svc.ResubmitLedger(affiliate.ID)
	if err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	if record.Code != "JAN5678" {
		t.Fatalf("expected ledger code JAN5678, got %q", record.Code)
	}

	var count int64
	if err := ledger.Model(&models.LedgerAffiliate{}).Where("code = ?", "JAN5678").Count(&count).Error; err != nil {
		t.Fatalf("count ledger records failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one ledger record, got %d", count)
	}

	// 标记更新后再次补发应被拒绝
	if _, err := svc.ResubmitLedger(affiliate.ID); !errors.Is(err, ErrLedgerSubmitted) {
		t.Fatalf("expected ErrLedgerSubmitted on repeat resubmit, got %v", err)
	}
}

func TestResubmitLedgerRepairsStaleFlag(t *testing.T) {
	svc, _, local, ledger := setupRegistrationServiceTest(t)

	// 账本行已存在但本地标记仍是 false，对应标记更新曾失败的场景
	if err := local.Create(&models.Affiliate{
		FullName:          "Jane Doe",
		Email:             "jane@example.com",
		Phone:             "0812345678",
		Code:              "JAN5678",
		Package:           constants.PackageTypeSingle,
		Status:            constants.AffiliateStatusActive,
		MainSystemSuccess: false,
	}).Error; err != nil {
		t.Fatalf("seed local record failed: %v", err)
	}
	if err := ledger.Create(&models.LedgerAffiliate{
		ID:   "ledger-jan",
		Code: "JAN5678",
		Name: "Jane Doe",
	}).Error; err != nil {
		t.Fatalf("seed ledger record failed: %v", err)
	}

	var affiliate models.Affiliate
	if err := local.Where("code = ?", "JAN5678").First(&affiliate).Error; err != nil {
		t.Fatalf("load seeded record failed: %v", err)
	}

	if _, err := svc.ResubmitLedger(affiliate.ID); !errors.Is(err, ErrLedgerSubmitted) {
		t.Fatalf("expected ErrLedgerSubmitted when ledger row exists, got %v", err)
	}

	// 冲突即确认账本行存在，本地标记应被修复
	if err := local.Where("code = ?", "JAN5678").First(&affiliate).Error; err != nil {
		t.Fatalf("reload local record failed: %v", err)
	}
	if !affiliate.MainSystemSuccess {
		t.Fatalf("expected main system success flag repaired after conflict")
	}

	var count int64
	if err := ledger.Model(&models.LedgerAffiliate{}).Where("code = ?", "JAN5678").Count(&count).Error; err != nil {
		t.Fatalf("count ledger records failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected no extra ledger record, got %d", count)
	}
}

func TestSubmitLedgerDuplicateCode(t *testing.T) {
	svc, _, _, _ := setupRegistrationServiceTest(t)

	input := LedgerSubmitInput{Name: "Jane Doe", Email: "jane@example.com", Tel: "0812345678", Code: "JAN5678"}
	if _, err := svc.SubmitLedger(input); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := svc.SubmitLedger(input); !errors.Is(err, ErrLedgerSubmitted) {
		t.Fatalf("expected ErrLedgerSubmitted on duplicate code, got %v", err)
	}
}

func TestSubmitLedgerInvalidCode(t *testing.T) {
	svc, _, _, _ := setupRegistrationServiceTest(t)

	_, err := svc.SubmitLedger(LedgerSubmitInput{Name: "Jane Doe", Code: "ja"})
	if !errors.Is(err, ErrCodeInvalid) {
		t.Fatalf("expected ErrCodeInvalid, got %v", err)
	}
}
