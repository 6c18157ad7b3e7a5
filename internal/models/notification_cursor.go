package models

import (
	"time"
)

// NotificationCursor 通知已读水位线（按伙伴维度持久化，跨设备一致）
type NotificationCursor struct {
	ID          uint      `gorm:"primarykey" json:"id"`                    // 主键
	AffiliateID uint      `gorm:"not null;uniqueIndex" json:"affiliate_id"` // 伙伴ID
	LastSeenAt  time.Time `gorm:"not null" json:"last_seen_at"`            // 最近已读时间
	CreatedAt   time.Time `json:"created_at"`                              // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (NotificationCursor) TableName() string {
	return "notification_cursors"
}
