package models

import (
	"time"
)

// LedgerAffiliate 账本库佣金账户。
// code 唯一性由账本库独立约束；账本写入失败时两库允许短暂不一致。
// 汇总字段由总部的佣金结算流程维护，本系统只读。
type LedgerAffiliate struct {
	ID      string `gorm:"type:varchar(36);primarykey" json:"id"`             // UUID 主键
	Code    string `gorm:"type:varchar(16);not null;uniqueIndex" json:"code"` // 推广码
	Name    string `gorm:"type:varchar(128);not null" json:"name"`            // 姓名
	Email   string `gorm:"type:varchar(128)" json:"email"`                    // 邮箱
	Tel     string `gorm:"type:varchar(20)" json:"tel"`                       // 电话
	IsActive bool  `gorm:"not null;default:true" json:"is_active"`            // 是否生效（注册即生效）

	// 套餐佣金/折扣配置（最小货币单位）
	SingleCommissionValue int64 `gorm:"not null" json:"single_commission_value"` // 单人套餐佣金
	SingleDiscountValue   int64 `gorm:"not null" json:"single_discount_value"`   // 单人套餐折扣
	DuoCommissionValue    int64 `gorm:"not null" json:"duo_commission_value"`    // 双人套餐佣金
	DuoDiscountValue      int64 `gorm:"not null" json:"duo_discount_value"`      // 双人套餐折扣

	// 汇总字段（外部结算流程累计）
	TotalRegistrations int64 `gorm:"not null;default:0" json:"total_registrations"` // 累计转介人数
	TotalCommission    int64 `gorm:"not null;default:0" json:"total_commission"`    // 累计佣金
	PendingCommission  int64 `gorm:"not null;default:0" json:"pending_commission"`  // 待确认佣金
	ApprovedCommission int64 `gorm:"not null;default:0" json:"approved_commission"` // 已确认佣金

	CreatedAt time.Time `gorm:"index" json:"created_at"` // 创建时间
	UpdatedAt time.Time `json:"updated_at"`              // 更新时间
}

// TableName 指定表名
func (LedgerAffiliate) TableName() string {
	return "ledger_affiliates"
}
