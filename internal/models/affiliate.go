package models

import (
	"time"
)

// Affiliate 本地库伙伴档案。
// email 与 code 各自全局唯一，身份字段创建后不再变更，银行资料可多次更新。
type Affiliate struct {
	ID         uint   `gorm:"primarykey" json:"id"`                               // 主键
	FullName   string `gorm:"type:varchar(128);not null" json:"full_name"`        // 姓名
	Email      string `gorm:"type:varchar(128);not null;uniqueIndex" json:"email"` // 邮箱
	Phone      string `gorm:"type:varchar(20);not null;index" json:"phone"`       // 电话
	Code       string `gorm:"type:varchar(16);not null;uniqueIndex" json:"code"`  // 推广码
	Package    string `gorm:"type:varchar(16);not null" json:"package"`           // 套餐类型（single/duo）
	Note       string `gorm:"type:varchar(255)" json:"note,omitempty"`            // 备注
	LineUserID string `gorm:"type:varchar(64);index" json:"line_user_id,omitempty"` // LINE 用户标识
	Status     string `gorm:"type:varchar(20);not null;index" json:"status"`      // 状态

	// 银行资料（创建后可变更）
	BankName        string `gorm:"type:varchar(64)" json:"bank_name,omitempty"`         // 银行名称
	BankAccountNo   string `gorm:"type:varchar(32)" json:"bank_account_no,omitempty"`   // 银行账号
	BankAccountName string `gorm:"type:varchar(128)" json:"bank_account_name,omitempty"` // 开户名
	PassbookURL     string `gorm:"type:varchar(255)" json:"passbook_url,omitempty"`     // 存折照片地址

	PDPAConsentAt     *time.Time `json:"pdpa_consent_at,omitempty"`      // PDPA 同意时间
	MainSystemSuccess bool       `gorm:"not null" json:"main_system_success"` // 账本库写入是否成功
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`        // 创建时间
	UpdatedAt         time.Time  `json:"updated_at"`                     // 更新时间
}

// TableName 指定表名
func (Affiliate) TableName() string {
	return "affiliates"
}
