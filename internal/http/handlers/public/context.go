package public

import (
	"strconv"
	"strings"

	handlershared "github.com/aiya-partner/partner-api/internal/http/handlers/shared"
	"github.com/aiya-partner/partner-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

func getAffiliateID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "affiliate_id", "error.affiliate_id_invalid", "error.affiliate_id_type_invalid")
}

// pathAffiliateID 解析路径中的 userId 并校验与登录身份一致。
func pathAffiliateID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("userId"))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return 0, false
	}
	authID, ok := getAffiliateID(c)
	if !ok {
		return 0, false
	}
	if uint(id) != authID {
		respondError(c, response.CodeForbidden, "error.forbidden", nil)
		return 0, false
	}
	return uint(id), true
}
