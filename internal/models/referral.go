package models

import (
	"time"
)

// Referral 账本库转介记录（客户购买归因到推广码）。
// 由总部的销售流程写入，本系统只做读侧投影。
type Referral struct {
	ID               uint   `gorm:"primarykey" json:"id"`                         // 主键
	AffiliateCode    string `gorm:"type:varchar(16);not null;index" json:"affiliate_code"` // 归因推广码
	CustomerName     string `gorm:"type:varchar(128);not null" json:"customer_name"`       // 客户姓名
	CustomerEmail    string `gorm:"type:varchar(128)" json:"customer_email"`               // 客户邮箱
	Package          string `gorm:"type:varchar(16);not null" json:"package"`              // 套餐类型
	CommissionAmount int64  `gorm:"not null" json:"commission_amount"`                     // 佣金金额（最小货币单位）
	CommissionStatus string `gorm:"type:varchar(20);not null;index" json:"commission_status"` // 佣金状态

	CreatedAt time.Time `gorm:"index" json:"created_at"` // 创建时间
	UpdatedAt time.Time `json:"updated_at"`              // 更新时间
}

// TableName 指定表名
func (Referral) TableName() string {
	return "referrals"
}
