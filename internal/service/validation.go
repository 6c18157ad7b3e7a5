package service

import (
	"regexp"
	"strings"

	"github.com/aiya-partner/partner-api/internal/constants"
)

var (
	codePattern  = regexp.MustCompile(`^[A-Z0-9]{3,10}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitPattern = regexp.MustCompile(`\D`)
)

// NormalizeCode 归一化推广码（去空白并转大写）
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeEmail 归一化邮箱
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// StripNonDigits 去掉电话号码中的格式字符
func StripNonDigits(phone string) string {
	return digitPattern.ReplaceAllString(phone, "")
}

// ValidCodeFormat 推广码格式是否合法
func ValidCodeFormat(code string) bool {
	return codePattern.MatchString(code)
}

// RegisterInput 注册提交输入
type RegisterInput struct {
	FullName    string
	Email       string
	Phone       string
	Code        string
	Package     string
	Note        string
	LineUserID  string
	PDPAConsent bool
}

// validateRegisterInput 字段级校验，任一失败即整单驳回，不做部分提交。
// 返回归一化后的输入副本。
func validateRegisterInput(input RegisterInput) (RegisterInput, *ValidationError) {
	normalized := input
	normalized.FullName = strings.TrimSpace(input.FullName)
	normalized.Email = NormalizeEmail(input.Email)
	normalized.Code = NormalizeCode(input.Code)
	normalized.Package = strings.ToLower(strings.TrimSpace(input.Package))
	normalized.Note = strings.TrimSpace(input.Note)
	normalized.LineUserID = strings.TrimSpace(input.LineUserID)

	if normalized.FullName == "" {
		return normalized, NewValidationError("name", "validation.full_name_required")
	}
	if !emailPattern.MatchString(normalized.Email) {
		return normalized, NewValidationError("email", "validation.email_invalid")
	}
	digits := StripNonDigits(input.Phone)
	if len(digits) < 9 || len(digits) > 10 {
		return normalized, NewValidationError("phone", "validation.phone_invalid")
	}
	normalized.Phone = digits
	if !ValidCodeFormat(normalized.Code) {
		return normalized, NewValidationError("affiliateCode", "validation.code_format")
	}
	if normalized.Package == "" {
		normalized.Package = constants.PackageTypeSingle
	}
	if normalized.Package != constants.PackageTypeSingle && normalized.Package != constants.PackageTypeDuo {
		return normalized, NewValidationError("package", "validation.package_invalid")
	}
	if !normalized.PDPAConsent {
		return normalized, NewValidationError("pdpaConsent", "validation.consent_required")
	}
	return normalized, nil
}
