package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aiya-partner/partner-api/internal/cache"
	"github.com/aiya-partner/partner-api/internal/models"
	"github.com/aiya-partner/partner-api/internal/repository"
)

const dashboardCacheTTL = 45 * time.Second

// DashboardService 佣金看板投影服务（纯读侧，无副作用）
type DashboardService struct {
	repo       repository.AffiliateRepository
	ledgerRepo repository.LedgerRepository
}

// NewDashboardService 创建佣金看板服务
func NewDashboardService(repo repository.AffiliateRepository, ledgerRepo repository.LedgerRepository) *DashboardService {
	return &DashboardService{
		repo:       repo,
		ledgerRepo: ledgerRepo,
	}
}

// Dashboard 佣金看板数据。金额字段为最小货币单位，*_baht 为泰铢展示值。
type Dashboard struct {
	AffiliateCode      string `json:"affiliate_code"`
	LedgerLinked       bool   `json:"ledger_linked"` // 账本库是否存在对应账户
	TotalRegistrations int64  `json:"total_registrations"`
	TotalCommission    int64  `json:"total_commission"`
	PendingCommission  int64  `json:"pending_commission"`
	ApprovedCommission int64  `json:"approved_commission"`
	// PaidCommission 按 total - pending 推导。账本同时维护 approved 字段，
	// 该推导把「已确认未打款」并入「已打款」，口径与上游一致。
	PaidCommission        int64        `json:"paid_commission"`
	TotalCommissionBaht   models.Money `json:"total_commission_baht"`
	PendingCommissionBaht models.Money `json:"pending_commission_baht"`
	PaidCommissionBaht    models.Money `json:"paid_commission_baht"`
}

// GetDashboard 获取伙伴佣金看板。
// 汇总值由账本库预聚合，这里只做投影。账本无对应账户时
// （注册第二阶段曾失败）返回零值而非报错。
func (s *DashboardService) GetDashboard(ctx context.Context, affiliateID uint) (*Dashboard, error) {
	affiliate, err := s.repo.GetByID(affiliateID)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}

	cacheKey := fmt.Sprintf("dashboard:%s", affiliate.Code)
	var cached Dashboard
	if hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached); cacheErr == nil && hit {
		return &cached, nil
	}

	dashboard := &Dashboard{AffiliateCode: affiliate.Code}

	ledger, err := s.ledgerRepo.GetAffiliateByCode(affiliate.Code)
	if err != nil {
		return nil, err
	}
	if ledger != nil {
		dashboard.LedgerLinked = true
		dashboard.TotalRegistrations = ledger.TotalRegistrations
		dashboard.TotalCommission = ledger.TotalCommission
		dashboard.PendingCommission = ledger.PendingCommission
		dashboard.ApprovedCommission = ledger.ApprovedCommission
		dashboard.PaidCommission = ledger.TotalCommission - ledger.PendingCommission
	}
	dashboard.TotalCommissionBaht = models.NewMoneyFromSatang(dashboard.TotalCommission)
	dashboard.PendingCommissionBaht = models.NewMoneyFromSatang(dashboard.PendingCommission)
	dashboard.PaidCommissionBaht = models.NewMoneyFromSatang(dashboard.PaidCommission)

	_ = cache.SetJSON(ctx, cacheKey, dashboard, dashboardCacheTTL)
	return dashboard, nil
}
