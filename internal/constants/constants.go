package constants

// 伙伴状态常量
const (
	AffiliateStatusActive   = "active"
	AffiliateStatusDisabled = "disabled"
)

// 推广码规则常量
const (
	AffiliateCodePrefixLen   = 3
	AffiliateCodeSuffixLen   = 4
	AffiliateCodeFallback    = "AIYA"
	AffiliateCodeMaxAttempts = 5
)

// 套餐类型常量
const (
	PackageTypeSingle = "single"
	PackageTypeDuo    = "duo"
)

// 转介佣金状态常量
const (
	CommissionStatusPending  = "pending"
	CommissionStatusApproved = "approved"
	CommissionStatusPaid     = "paid"
	CommissionStatusRejected = "rejected"
)

// 通知类型常量
const (
	NotificationKindNewReferral        = "new_referral"
	NotificationKindCommissionApproved = "commission_approved"
	NotificationKindCommissionPaid     = "commission_paid"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 验证码校验场景常量
const (
	CaptchaSceneRegister = "register"
)

// 上传场景常量
const (
	UploadScenePassbook = "passbook"
)

// 队列常量
const (
	QueueDefault          = "default"
	QueueCritical         = "critical"
	TaskRegistrationEmail = "registration:confirm_email"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "aiya"
)

// 站点语言常量
const (
	LocaleThTH = "th-TH"
	LocaleEnUS = "en-US"
)
