package public

import (
	"errors"

	"github.com/aiya-partner/partner-api/internal/http/response"
	"github.com/aiya-partner/partner-api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var captchaErrorRules = []mappedHandlerError{
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, key: "error.captcha_required"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, key: "error.captcha_invalid"},
	{target: service.ErrCaptchaConfigInvalid, code: response.CodeBadRequest, key: "error.captcha_unavailable"},
}

var lineLoginErrorRules = []mappedHandlerError{
	{target: service.ErrLineAuthDisabled, code: response.CodeBadRequest, key: "error.line_disabled"},
	{target: service.ErrLineVerifyFailed, code: response.CodeUnauthorized, key: "error.line_verify_failed"},
	{target: service.ErrAffiliateNotFound, code: response.CodeNotFound, key: "error.affiliate_not_found"},
	{target: service.ErrAffiliateDisabled, code: response.CodeForbidden, key: "error.affiliate_disabled"},
}

var profileErrorRules = []mappedHandlerError{
	{target: service.ErrAffiliateNotFound, code: response.CodeNotFound, key: "error.affiliate_not_found"},
	{target: service.ErrAffiliateDisabled, code: response.CodeForbidden, key: "error.affiliate_disabled"},
}

var ledgerResubmitErrorRules = []mappedHandlerError{
	{target: service.ErrAffiliateNotFound, code: response.CodeNotFound, key: "error.affiliate_not_found"},
	{target: service.ErrLedgerSubmitted, code: response.CodeBadRequest, key: "error.ledger_submitted"},
	{target: service.ErrCodeInvalid, code: response.CodeBadRequest, key: "error.code_invalid_format"},
}

func respondLineLoginError(c *gin.Context, err error) {
	respondWithMappedError(c, err, lineLoginErrorRules, response.CodeInternal, "error.internal_error")
}

func respondProfileError(c *gin.Context, err error) {
	respondWithMappedError(c, err, profileErrorRules, response.CodeInternal, "error.internal_error")
}
