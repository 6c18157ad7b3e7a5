package repository

import (
	"errors"
	"strings"

	"github.com/aiya-partner/partner-api/internal/models"

	"gorm.io/gorm"
)

// LedgerRepository 账本库数据访问接口。
// 账本库由总部维护，本系统只写入佣金账户一次，其余均为只读投影。
type LedgerRepository interface {
	CodeExists(code string) (bool, error)
	CreateAffiliate(affiliate *models.LedgerAffiliate) error
	GetAffiliateByCode(code string) (*models.LedgerAffiliate, error)
	ListReferrals(filter ReferralListFilter) ([]models.Referral, int64, error)
	ListRecentReferrals(code string, limit int) ([]models.Referral, error)
}

// GormLedgerRepository GORM 账本仓储
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository 创建账本仓储
func NewLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// CodeExists 推广码在账本库是否已存在（幂等只读，提示性检查）
func (r *GormLedgerRepository) CodeExists(code string) (bool, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return false, nil
	}
	var count int64
	if err := r.db.Model(&models.LedgerAffiliate{}).Where("code = ?", normalized).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateAffiliate 写入账本佣金账户
func (r *GormLedgerRepository) CreateAffiliate(affiliate *models.LedgerAffiliate) error {
	return r.db.Create(affiliate).Error
}

// GetAffiliateByCode 按推广码获取账本佣金账户
func (r *GormLedgerRepository) GetAffiliateByCode(code string) (*models.LedgerAffiliate, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, nil
	}
	var affiliate models.LedgerAffiliate
	if err := r.db.Where("code = ?", normalized).First(&affiliate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// ListReferrals 分页查询转介记录
func (r *GormLedgerRepository) ListReferrals(filter ReferralListFilter) ([]models.Referral, int64, error) {
	normalized := strings.ToUpper(strings.TrimSpace(filter.AffiliateCode))
	if normalized == "" {
		return nil, 0, nil
	}

	query := r.db.Model(&models.Referral{}).Where("affiliate_code = ?", normalized)
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("commission_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var referrals []models.Referral
	query = applyPagination(query.Order("created_at DESC"), filter.Page, filter.PageSize)
	if err := query.Find(&referrals).Error; err != nil {
		return nil, 0, err
	}
	return referrals, total, nil
}

// ListRecentReferrals 查询最近的转介记录（通知流来源）
func (r *GormLedgerRepository) ListRecentReferrals(code string, limit int) ([]models.Referral, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	var referrals []models.Referral
	if err := r.db.Where("affiliate_code = ?", normalized).
		Order("created_at DESC").
		Limit(limit).
		Find(&referrals).Error; err != nil {
		return nil, err
	}
	return referrals, nil
}
