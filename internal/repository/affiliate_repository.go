package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/aiya-partner/partner-api/internal/models"

	"gorm.io/gorm"
)

// AffiliateRepository 本地库伙伴档案数据访问接口
type AffiliateRepository interface {
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) AffiliateRepository

	Create(affiliate *models.Affiliate) error
	GetByID(id uint) (*models.Affiliate, error)
	GetByCode(code string) (*models.Affiliate, error)
	GetByEmail(email string) (*models.Affiliate, error)
	GetByLineUserID(lineUserID string) (*models.Affiliate, error)
	EmailExists(email string) (bool, error)
	UpdateBankProfile(id uint, updates map[string]interface{}) error
	UpdateMainSystemSuccess(id uint, success bool) error

	GetCursor(affiliateID uint) (*models.NotificationCursor, error)
	UpsertCursor(affiliateID uint, lastSeenAt time.Time) error
}

// GormAffiliateRepository GORM 伙伴档案仓储
type GormAffiliateRepository struct {
	db *gorm.DB
}

// NewAffiliateRepository 创建伙伴档案仓储
func NewAffiliateRepository(db *gorm.DB) *GormAffiliateRepository {
	return &GormAffiliateRepository{db: db}
}

// WithTx 绑定事务
func (r *GormAffiliateRepository) WithTx(tx *gorm.DB) AffiliateRepository {
	if tx == nil {
		return r
	}
	return &GormAffiliateRepository{db: tx}
}

// Transaction 执行事务
func (r *GormAffiliateRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Create 创建伙伴档案。email 与 code 的唯一约束在此处兜底，
// 上层的可用性预检只是提示性的，冲突以约束错误为准。
func (r *GormAffiliateRepository) Create(affiliate *models.Affiliate) error {
	return r.db.Create(affiliate).Error
}

// GetByID 按ID获取伙伴档案
func (r *GormAffiliateRepository) GetByID(id uint) (*models.Affiliate, error) {
	if id == 0 {
		return nil, nil
	}
	var affiliate models.Affiliate
	if err := r.db.First(&affiliate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// GetByCode 按推广码获取伙伴档案
func (r *GormAffiliateRepository) GetByCode(code string) (*models.Affiliate, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, nil
	}
	var affiliate models.Affiliate
	if err := r.db.Where("code = ?", normalized).First(&affiliate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// GetByEmail 按邮箱获取伙伴档案
func (r *GormAffiliateRepository) GetByEmail(email string) (*models.Affiliate, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, nil
	}
	var affiliate models.Affiliate
	if err := r.db.Where("email = ?", normalized).First(&affiliate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// GetByLineUserID 按 LINE 用户标识获取伙伴档案
func (r *GormAffiliateRepository) GetByLineUserID(lineUserID string) (*models.Affiliate, error) {
	normalized := strings.TrimSpace(lineUserID)
	if normalized == "" {
		return nil, nil
	}
	var affiliate models.Affiliate
	if err := r.db.Where("line_user_id = ?", normalized).First(&affiliate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// EmailExists 邮箱是否已注册（提示性检查）
func (r *GormAffiliateRepository) EmailExists(email string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return false, nil
	}
	var count int64
	if err := r.db.Model(&models.Affiliate{}).Where("email = ?", normalized).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateBankProfile 更新银行资料字段
func (r *GormAffiliateRepository) UpdateBankProfile(id uint, updates map[string]interface{}) error {
	if id == 0 || len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()
	return r.db.Model(&models.Affiliate{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// UpdateMainSystemSuccess 更新账本写入标记
func (r *GormAffiliateRepository) UpdateMainSystemSuccess(id uint, success bool) error {
	if id == 0 {
		return nil
	}
	return r.db.Model(&models.Affiliate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"main_system_success": success,
			"updated_at":          time.Now(),
		}).Error
}

// GetCursor 获取通知已读水位线
func (r *GormAffiliateRepository) GetCursor(affiliateID uint) (*models.NotificationCursor, error) {
	if affiliateID == 0 {
		return nil, nil
	}
	var cursor models.NotificationCursor
	if err := r.db.Where("affiliate_id = ?", affiliateID).First(&cursor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cursor, nil
}

// UpsertCursor 推进通知已读水位线，首次读取时创建。
// 读改写放在事务里，并发标记已读时不会重复建行。
func (r *GormAffiliateRepository) UpsertCursor(affiliateID uint, lastSeenAt time.Time) error {
	if affiliateID == 0 {
		return nil
	}
	return r.Transaction(func(tx *gorm.DB) error {
		existing, err := r.WithTx(tx).GetCursor(affiliateID)
		if err != nil {
			return err
		}
		if existing == nil {
			return tx.Create(&models.NotificationCursor{
				AffiliateID: affiliateID,
				LastSeenAt:  lastSeenAt,
			}).Error
		}
		// 水位线只前进不后退
		if !lastSeenAt.After(existing.LastSeenAt) {
			return nil
		}
		return tx.Model(&models.NotificationCursor{}).
			Where("affiliate_id = ?", affiliateID).
			Updates(map[string]interface{}{
				"last_seen_at": lastSeenAt,
				"updated_at":   time.Now(),
			}).Error
	})
}
