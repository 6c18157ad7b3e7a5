package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aiya-partner/partner-api/internal/constants"
	handlershared "github.com/aiya-partner/partner-api/internal/http/handlers/shared"
	"github.com/aiya-partner/partner-api/internal/http/response"
	"github.com/aiya-partner/partner-api/internal/i18n"
	"github.com/aiya-partner/partner-api/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterAffiliateRequest 注册提交请求
type RegisterAffiliateRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	AffiliateCode   string `json:"affiliateCode" binding:"required"`
	SelectedProduct string `json:"selectedProduct"`
	Note            string `json:"note"`
	PDPAConsent     bool   `json:"pdpaConsent"`
	LineUserID      string `json:"lineUserId"`
	handlershared.CaptchaPayloadRequest
}

// RegisterAffiliateMainRequest 账本补发请求
type RegisterAffiliateMainRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Tel           string `json:"tel"`
	GeneratedCode string `json:"generatedCode" binding:"required"`
}

// UpdateBankProfileRequest 银行资料更新请求（multipart 表单）
type UpdateBankProfileRequest struct {
	BankName        string `form:"bank_name"`
	BankAccountNo   string `form:"bank_account_no"`
	BankAccountName string `form:"bank_account_name"`
}

// CheckAffiliate 检查推广码或邮箱是否已被占用
func (h *Handler) CheckAffiliate(c *gin.Context) {
	code := strings.TrimSpace(c.Query("affiliateCode"))
	email := strings.TrimSpace(c.Query("email"))

	switch {
	case code != "":
		availability, err := h.AffiliateService.CheckCodeAvailability(code)
		if err != nil {
			if errors.Is(err, service.ErrCodeInvalid) {
				respondError(c, response.CodeBadRequest, "error.code_invalid_format", nil)
				return
			}
			respondError(c, response.CodeInternal, "error.internal_error", err)
			return
		}
		response.Success(c, gin.H{
			"exists": availability == service.AvailabilityTaken,
			"status": availability,
		})
	case email != "":
		availability, err := h.AffiliateService.CheckEmailAvailability(email)
		if err != nil {
			respondError(c, response.CodeInternal, "error.internal_error", err)
			return
		}
		response.Success(c, gin.H{
			"exists": availability == service.AvailabilityTaken,
			"status": availability,
		})
	default:
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
	}
}

// SuggestAffiliateCode 根据姓名和电话生成推广码建议
func (h *Handler) SuggestAffiliateCode(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	phone := strings.TrimSpace(c.Query("phone"))
	suggestion, err := h.AffiliateService.SuggestCode(name, phone)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal_error", err)
		return
	}
	response.Success(c, suggestion)
}

// RegisterAffiliate 注册提交入口。
// 本地库写入成功即视为注册完成，账本写入结果随响应透出。
func (h *Handler) RegisterAffiliate(c *gin.Context) {
	var req RegisterAffiliateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if h.CaptchaService != nil {
		if err := h.CaptchaService.Verify(constants.CaptchaSceneRegister, req.ToServicePayload()); err != nil {
			respondWithMappedError(c, err, captchaErrorRules, response.CodeInternal, "error.internal_error")
			return
		}
	}

	locale := i18n.ResolveLocale(c)
	result, err := h.RegistrationService.Register(locale, service.RegisterInput{
		FullName:    req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Code:        req.AffiliateCode,
		Package:     req.SelectedProduct,
		Note:        req.Note,
		LineUserID:  req.LineUserID,
		PDPAConsent: req.PDPAConsent,
	})
	if err != nil {
		respondRegisterError(c, locale, err)
		return
	}

	response.Created(c, gin.H{
		"success":           true,
		"emailSent":         result.EmailSent,
		"mainSystemSuccess": result.MainSystemSuccess,
		"affiliateId":       result.AffiliateID,
		"affiliateCode":     result.AffiliateCode,
	})
}

func respondRegisterError(c *gin.Context, locale string, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		response.ErrorWithData(c, response.CodeBadRequest, i18n.T(locale, verr.Key), gin.H{"field": verr.Field})
		return
	}
	var cerr *service.ConflictError
	if errors.As(err, &cerr) {
		key := "error.code_taken"
		if cerr.Field == "email" {
			key = "error.affiliate_exists"
		}
		response.Conflict(c, i18n.T(locale, key), cerr.Field)
		return
	}
	respondError(c, response.CodeInternal, "error.internal_error", err)
}

// RegisterAffiliateMain 单独写入账本库。
// 注册时账本写入失败后，前端可凭同一批资料在此补发。
func (h *Handler) RegisterAffiliateMain(c *gin.Context) {
	var req RegisterAffiliateMainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	record, err := h.RegistrationService.SubmitLedger(service.LedgerSubmitInput{
		Name:  req.Name,
		Email: req.Email,
		Tel:   req.Tel,
		Code:  req.GeneratedCode,
	})
	if err != nil {
		respondWithMappedError(c, err, ledgerResubmitErrorRules, response.CodeInternal, "error.ledger_unavailable")
		return
	}

	response.Success(c, gin.H{
		"id":   record.ID,
		"code": record.Code,
	})
}

// GetDashboard 获取佣金看板
func (h *Handler) GetDashboard(c *gin.Context) {
	id, ok := pathAffiliateID(c)
	if !ok {
		return
	}
	dashboard, err := h.DashboardService.GetDashboard(c.Request.Context(), id)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	response.Success(c, dashboard)
}

// ListReferrals 查询推荐记录
func (h *Handler) ListReferrals(c *gin.Context) {
	id, ok := pathAffiliateID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	status := strings.TrimSpace(c.Query("status"))

	rows, total, err := h.ReferralService.ListReferrals(id, page, pageSize, status)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	response.SuccessWithPage(c, rows, response.BuildPagination(page, pageSize, total))
}

// ListNotifications 获取通知列表
func (h *Handler) ListNotifications(c *gin.Context) {
	id, ok := pathAffiliateID(c)
	if !ok {
		return
	}
	notifications, err := h.ReferralService.ListNotifications(id)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	response.Success(c, notifications)
}

// MarkNotificationsRead 推进通知已读水位线
func (h *Handler) MarkNotificationsRead(c *gin.Context) {
	id, ok := pathAffiliateID(c)
	if !ok {
		return
	}
	if err := h.ReferralService.MarkAllRead(id); err != nil {
		respondProfileError(c, err)
		return
	}
	response.Success(c, gin.H{"ok": true})
}

// GetProfile 获取伙伴档案
func (h *Handler) GetProfile(c *gin.Context) {
	id, ok := pathAffiliateID(c)
	if !ok {
		return
	}
	affiliate, err := h.AffiliateService.GetProfile(id)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	response.Success(c, affiliate)
}

// UpdateProfile 更新银行资料（multipart 表单，可携带存折照片）
func (h *Handler) UpdateProfile(c *gin.Context) {
	id, ok := pathAffiliateID(c)
	if !ok {
		return
	}

	var req UpdateBankProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	input := service.UpdateBankProfileInput{
		BankName:        req.BankName,
		BankAccountNo:   req.BankAccountNo,
		BankAccountName: req.BankAccountName,
	}

	if file, err := c.FormFile("passbook"); err == nil && file != nil {
		url, uploadErr := h.UploadService.SaveFile(file, constants.UploadScenePassbook)
		if uploadErr != nil {
			handlershared.RespondErrorWithMsg(c, response.CodeBadRequest, uploadErr.Error(), uploadErr)
			return
		}
		input.PassbookURL = url
	}

	affiliate, err := h.AffiliateService.UpdateBankProfile(id, input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			locale := i18n.ResolveLocale(c)
			response.ErrorWithData(c, response.CodeBadRequest, i18n.T(locale, verr.Key), gin.H{"field": verr.Field})
			return
		}
		respondProfileError(c, err)
		return
	}
	response.Success(c, affiliate)
}
