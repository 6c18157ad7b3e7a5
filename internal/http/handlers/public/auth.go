package public

import (
	"strings"

	"github.com/aiya-partner/partner-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LineLoginRequest LINE 登录请求
type LineLoginRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// LoginWithLine 通过 LINE access token 登录并签发 JWT
func (h *Handler) LoginWithLine(c *gin.Context) {
	var req LineLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	affiliate, token, expiresAt, err := h.AuthService.LoginWithLine(strings.TrimSpace(req.AccessToken))
	if err != nil {
		respondLineLoginError(c, err)
		return
	}

	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt.Unix(),
		"affiliate": gin.H{
			"id":        affiliate.ID,
			"full_name": affiliate.FullName,
			"code":      affiliate.Code,
		},
	})
}
