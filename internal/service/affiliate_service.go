package service

import (
	"strings"

	"github.com/aiya-partner/partner-api/internal/constants"
	"github.com/aiya-partner/partner-api/internal/models"
	"github.com/aiya-partner/partner-api/internal/repository"
)

// Availability 推广码/邮箱可用性结果
type Availability string

const (
	// AvailabilityAvailable 可用
	AvailabilityAvailable Availability = "available"
	// AvailabilityTaken 已被占用
	AvailabilityTaken Availability = "taken"
	// AvailabilityNeutral 候选过短，既非可用也非占用
	AvailabilityNeutral Availability = "neutral"
)

// 可用性检查的短路阈值：长度不足时不发起查询
const availabilityMinLength = 3

// AffiliateService 伙伴档案业务服务
type AffiliateService struct {
	repo       repository.AffiliateRepository
	ledgerRepo repository.LedgerRepository
}

// NewAffiliateService 创建伙伴档案服务
func NewAffiliateService(repo repository.AffiliateRepository, ledgerRepo repository.LedgerRepository) *AffiliateService {
	return &AffiliateService{
		repo:       repo,
		ledgerRepo: ledgerRepo,
	}
}

// CheckCodeAvailability 检查推广码可用性。
// 对账本库做一次幂等只读查询；结果仅作提示，不构成占用保证，
// 最终以提交时本地库与账本库的唯一约束为准。
func (s *AffiliateService) CheckCodeAvailability(code string) (Availability, error) {
	normalized := NormalizeCode(code)
	if len(normalized) < availabilityMinLength {
		return AvailabilityNeutral, nil
	}
	if !ValidCodeFormat(normalized) {
		return AvailabilityNeutral, ErrCodeInvalid
	}
	taken, err := s.ledgerRepo.CodeExists(normalized)
	if err != nil {
		return AvailabilityNeutral, err
	}
	if taken {
		return AvailabilityTaken, nil
	}
	return AvailabilityAvailable, nil
}

// CheckEmailAvailability 检查邮箱可用性（查询本地库）
func (s *AffiliateService) CheckEmailAvailability(email string) (Availability, error) {
	normalized := NormalizeEmail(email)
	if len(normalized) < availabilityMinLength {
		return AvailabilityNeutral, nil
	}
	exists, err := s.repo.EmailExists(normalized)
	if err != nil {
		return AvailabilityNeutral, err
	}
	if exists {
		return AvailabilityTaken, nil
	}
	return AvailabilityAvailable, nil
}

// SuggestCode 根据姓名与电话生成可用推广码建议
func (s *AffiliateService) SuggestCode(name, phone string) (SuggestedCode, error) {
	return suggestCode(name, phone, s.ledgerRepo.CodeExists)
}

// GetProfile 获取伙伴档案
func (s *AffiliateService) GetProfile(id uint) (*models.Affiliate, error) {
	affiliate, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}
	return affiliate, nil
}

// GetProfileByLineUserID 按 LINE 用户标识获取伙伴档案
func (s *AffiliateService) GetProfileByLineUserID(lineUserID string) (*models.Affiliate, error) {
	affiliate, err := s.repo.GetByLineUserID(lineUserID)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}
	return affiliate, nil
}

// UpdateBankProfileInput 银行资料更新输入
type UpdateBankProfileInput struct {
	BankName        string
	BankAccountNo   string
	BankAccountName string
	PassbookURL     string
}

// UpdateBankProfile 更新银行资料。身份字段创建后不可变更，这里只接受银行相关字段。
// 空字段视为不修改，已保存的银行资料不支持通过置空清除。
func (s *AffiliateService) UpdateBankProfile(id uint, input UpdateBankProfileInput) (*models.Affiliate, error) {
	affiliate, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}
	if affiliate.Status == constants.AffiliateStatusDisabled {
		return nil, ErrAffiliateDisabled
	}

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(input.BankName); v != "" {
		updates["bank_name"] = v
	}
	if v := strings.TrimSpace(input.BankAccountNo); v != "" {
		if len(StripNonDigits(v)) < 6 {
			return nil, NewValidationError("bankAccountNo", "validation.bank_invalid")
		}
		updates["bank_account_no"] = v
	}
	if v := strings.TrimSpace(input.BankAccountName); v != "" {
		updates["bank_account_name"] = v
	}
	if v := strings.TrimSpace(input.PassbookURL); v != "" {
		updates["passbook_url"] = v
	}
	if len(updates) == 0 {
		return affiliate, nil
	}

	if err := s.repo.UpdateBankProfile(id, updates); err != nil {
		return nil, err
	}
	return s.GetProfile(id)
}
