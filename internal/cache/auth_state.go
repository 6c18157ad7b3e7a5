package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/aiya-partner/partner-api/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// AffiliateAuthState 推广员鉴权快照
// 供鉴权中间件快速判断账号状态，避免每次请求都查数据库。
// 该结构仅用于服务端 Redis 缓存。
type AffiliateAuthState struct {
	AffiliateID uint   `json:"affiliate_id"`
	Code        string `json:"code"`
	Status      string `json:"status"`
	UpdatedAt   int64  `json:"updated_at"`
}

func affiliateAuthStateKey(affiliateID uint) string {
	return fmt.Sprintf("auth:affiliate:%d", affiliateID)
}

// BuildAffiliateAuthState 从推广员模型构建鉴权快照
func BuildAffiliateAuthState(affiliate *models.Affiliate) *AffiliateAuthState {
	if affiliate == nil {
		return nil
	}
	return &AffiliateAuthState{
		AffiliateID: affiliate.ID,
		Code:        affiliate.Code,
		Status:      affiliate.Status,
		UpdatedAt:   time.Now().Unix(),
	}
}

// GetAffiliateAuthState 获取推广员鉴权快照
func GetAffiliateAuthState(ctx context.Context, affiliateID uint) (*AffiliateAuthState, bool, error) {
	if affiliateID == 0 {
		return nil, false, nil
	}
	var state AffiliateAuthState
	hit, err := GetJSON(ctx, affiliateAuthStateKey(affiliateID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetAffiliateAuthState 写入推广员鉴权快照
func SetAffiliateAuthState(ctx context.Context, state *AffiliateAuthState) error {
	if state == nil || state.AffiliateID == 0 {
		return nil
	}
	return SetJSON(ctx, affiliateAuthStateKey(state.AffiliateID), state, authStateCacheTTL)
}

// DelAffiliateAuthState 删除推广员鉴权快照
func DelAffiliateAuthState(ctx context.Context, affiliateID uint) error {
	if affiliateID == 0 {
		return nil
	}
	return Del(ctx, affiliateAuthStateKey(affiliateID))
}
