package service

import (
	"errors"
	"strings"
)

// 业务通用错误
var (
	ErrAffiliateNotFound    = errors.New("affiliate not found")
	ErrAffiliateDisabled    = errors.New("affiliate disabled")
	ErrCodeInvalid          = errors.New("affiliate code format invalid")
	ErrLedgerSubmitted      = errors.New("ledger record already submitted")
	ErrLineAuthDisabled     = errors.New("line auth disabled")
	ErrLineVerifyFailed     = errors.New("line token verify failed")
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")
)

// 邮件发送错误
var (
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)

// ValidationError 字段级校验错误（用户可修正）
type ValidationError struct {
	Field string // 出错字段
	Key   string // 文案 key
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Field
}

// NewValidationError 创建字段级校验错误
func NewValidationError(field, key string) *ValidationError {
	return &ValidationError{Field: field, Key: key}
}

// ConflictError 唯一约束冲突错误（以数据库约束为准的竞态裁决点）
type ConflictError struct {
	Field string // 冲突字段（email / code）
}

func (e *ConflictError) Error() string {
	return "unique conflict: " + e.Field
}

// NewConflictError 创建唯一约束冲突错误
func NewConflictError(field string) *ConflictError {
	return &ConflictError{Field: field}
}

// isUniqueViolation 判断是否唯一约束冲突。
// sqlite 与 postgres 的错误文案不同，统一按关键字匹配。
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
