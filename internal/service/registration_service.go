package service

import (
	"errors"
	"strings"
	"time"

	"github.com/aiya-partner/partner-api/internal/config"
	"github.com/aiya-partner/partner-api/internal/constants"
	"github.com/aiya-partner/partner-api/internal/logger"
	"github.com/aiya-partner/partner-api/internal/models"
	"github.com/aiya-partner/partner-api/internal/repository"

	"github.com/google/uuid"
)

// RegistrationMailer 注册确认邮件发送接口
type RegistrationMailer interface {
	SendRegistrationConfirm(locale, toEmail, name, code string) error
}

// RegistrationService 注册编排服务。
// 两段式写入：先写本地库（注册事实的权威来源），再写账本库。
// 账本写入失败不回滚、不自动重试，只落标记并由调用方感知。
type RegistrationService struct {
	repo       repository.AffiliateRepository
	ledgerRepo repository.LedgerRepository
	mailer     RegistrationMailer
	cfg        *config.Config
}

// NewRegistrationService 创建注册编排服务
func NewRegistrationService(
	repo repository.AffiliateRepository,
	ledgerRepo repository.LedgerRepository,
	mailer RegistrationMailer,
	cfg *config.Config,
) *RegistrationService {
	return &RegistrationService{
		repo:       repo,
		ledgerRepo: ledgerRepo,
		mailer:     mailer,
		cfg:        cfg,
	}
}

// RegisterResult 注册结果
type RegisterResult struct {
	AffiliateID       uint   `json:"affiliate_id"`
	AffiliateCode     string `json:"affiliate_code"`
	EmailSent         bool   `json:"email_sent"`
	MainSystemSuccess bool   `json:"main_system_success"`
}

// Register 执行注册编排。
// 校验 → 可用性复核 → 本地写入 → 账本写入 → 确认邮件。
// 可用性复核只是提示性的，码与邮箱的竞态最终由本地库唯一约束裁决。
func (s *RegistrationService) Register(locale string, input RegisterInput) (*RegisterResult, error) {
	normalized, verr := validateRegisterInput(input)
	if verr != nil {
		return nil, verr
	}

	// 提交前同步复核（距离输入期的防抖检查可能已过去较久）
	taken, err := s.ledgerRepo.CodeExists(normalized.Code)
	if err != nil {
		// 账本查询失败不阻断注册：约束兜底仍然有效
		logger.Warnw("register_code_recheck_failed", "code", normalized.Code, "error", err)
	} else if taken {
		return nil, NewConflictError("affiliateCode")
	}

	now := time.Now()
	affiliate := &models.Affiliate{
		FullName:      normalized.FullName,
		Email:         normalized.Email,
		Phone:         normalized.Phone,
		Code:          normalized.Code,
		Package:       normalized.Package,
		Note:          normalized.Note,
		LineUserID:    normalized.LineUserID,
		Status:        constants.AffiliateStatusActive,
		PDPAConsentAt: &now,
	}
	if err := s.repo.Create(affiliate); err != nil {
		if isUniqueViolation(err) {
			return nil, s.resolveConflictField(normalized)
		}
		return nil, err
	}

	result := &RegisterResult{
		AffiliateID:   affiliate.ID,
		AffiliateCode: affiliate.Code,
	}

	// 账本写入：失败只记录与打标，绝不回滚本地记录
	ledgerRecord, err := s.SubmitLedger(LedgerSubmitInput{
		Name:  normalized.FullName,
		Email: normalized.Email,
		Tel:   normalized.Phone,
		Code:  normalized.Code,
	})
	if err != nil {
		logger.Errorw("register_ledger_write_failed",
			"affiliate_id", affiliate.ID,
			"code", affiliate.Code,
			"error", err,
		)
	} else {
		result.MainSystemSuccess = true
		logger.Infow("register_ledger_write_ok",
			"affiliate_id", affiliate.ID,
			"ledger_id", ledgerRecord.ID,
		)
	}
	if uerr := s.repo.UpdateMainSystemSuccess(affiliate.ID, result.MainSystemSuccess); uerr != nil {
		logger.Warnw("register_flag_update_failed", "affiliate_id", affiliate.ID, "error", uerr)
	}

	// 确认邮件同样是尽力而为
	if s.mailer != nil {
		if merr := s.mailer.SendRegistrationConfirm(locale, affiliate.Email, affiliate.FullName, affiliate.Code); merr != nil {
			logger.Warnw("register_confirm_email_failed", "affiliate_id", affiliate.ID, "error", merr)
		} else {
			result.EmailSent = true
		}
	}

	return result, nil
}

// resolveConflictField 约束冲突后回查冲突字段，用于字段级错误提示
func (s *RegistrationService) resolveConflictField(input RegisterInput) error {
	exists, err := s.repo.EmailExists(input.Email)
	if err == nil && exists {
		return NewConflictError("email")
	}
	return NewConflictError("affiliateCode")
}

// LedgerSubmitInput 账本写入输入
type LedgerSubmitInput struct {
	Name  string
	Email string
	Tel   string
	Code  string
}

// SubmitLedger 向账本库写入佣金账户，带固定的套餐佣金/折扣配置。
// 注册编排调用之外，也支持在账本写入曾失败后由前端单独补发。
func (s *RegistrationService) SubmitLedger(input LedgerSubmitInput) (*models.LedgerAffiliate, error) {
	code := NormalizeCode(input.Code)
	if !ValidCodeFormat(code) {
		return nil, ErrCodeInvalid
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewValidationError("name", "validation.full_name_required")
	}

	record := &models.LedgerAffiliate{
		ID:                    uuid.NewString(),
		Code:                  code,
		Name:                  name,
		Email:                 NormalizeEmail(input.Email),
		Tel:                   StripNonDigits(input.Tel),
		IsActive:              true,
		SingleCommissionValue: s.cfg.Affiliate.SingleCommissionValue,
		SingleDiscountValue:   s.cfg.Affiliate.SingleDiscountValue,
		DuoCommissionValue:    s.cfg.Affiliate.DuoCommissionValue,
		DuoDiscountValue:      s.cfg.Affiliate.DuoDiscountValue,
	}
	if err := s.ledgerRepo.CreateAffiliate(record); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrLedgerSubmitted
		}
		return nil, err
	}
	return record, nil
}

// ResubmitLedger 对账本写入曾失败的本地记录补发账本写入，并更新标记。
func (s *RegistrationService) ResubmitLedger(affiliateID uint) (*models.LedgerAffiliate, error) {
	affiliate, err := s.repo.GetByID(affiliateID)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}
	if affiliate.MainSystemSuccess {
		return nil, ErrLedgerSubmitted
	}

	record, err := s.SubmitLedger(LedgerSubmitInput{
		Name:  affiliate.FullName,
		Email: affiliate.Email,
		Tel:   affiliate.Phone,
		Code:  affiliate.Code,
	})
	if err != nil {
		// 唯一冲突说明账本行早已写入、只是本地标记没跟上，顺手修复标记
		if errors.Is(err, ErrLedgerSubmitted) {
			if uerr := s.repo.UpdateMainSystemSuccess(affiliate.ID, true); uerr != nil {
				logger.Warnw("register_flag_update_failed", "affiliate_id", affiliate.ID, "error", uerr)
			}
		}
		return nil, err
	}
	if uerr := s.repo.UpdateMainSystemSuccess(affiliate.ID, true); uerr != nil {
		logger.Warnw("register_flag_update_failed", "affiliate_id", affiliate.ID, "error", uerr)
	}
	return record, nil
}
