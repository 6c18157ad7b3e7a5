package service

import (
	"time"

	"github.com/aiya-partner/partner-api/internal/constants"
	"github.com/aiya-partner/partner-api/internal/models"
	"github.com/aiya-partner/partner-api/internal/repository"
)

// 通知流取最近的转介条数
const notificationFeedLimit = 20

// ReferralService 转介记录与通知流服务
type ReferralService struct {
	repo       repository.AffiliateRepository
	ledgerRepo repository.LedgerRepository
}

// NewReferralService 创建转介服务
func NewReferralService(repo repository.AffiliateRepository, ledgerRepo repository.LedgerRepository) *ReferralService {
	return &ReferralService{
		repo:       repo,
		ledgerRepo: ledgerRepo,
	}
}

// ListReferrals 分页查询伙伴的转介记录
func (s *ReferralService) ListReferrals(affiliateID uint, page, pageSize int, status string) ([]models.Referral, int64, error) {
	affiliate, err := s.repo.GetByID(affiliateID)
	if err != nil {
		return nil, 0, err
	}
	if affiliate == nil {
		return nil, 0, ErrAffiliateNotFound
	}
	return s.ledgerRepo.ListReferrals(repository.ReferralListFilter{
		Page:          page,
		PageSize:      pageSize,
		AffiliateCode: affiliate.Code,
		Status:        status,
	})
}

// Notification 本地推导的通知条目
type Notification struct {
	Kind             string       `json:"kind"`
	CustomerName     string       `json:"customer_name"`
	Package          string       `json:"package"`
	CommissionAmount int64        `json:"commission_amount"`
	CommissionBaht   models.Money `json:"commission_baht"`
	Read             bool         `json:"read"`
	CreatedAt        time.Time    `json:"created_at"`
}

// ListNotifications 从最近的转介记录推导通知流。
// 通知不落库，按佣金状态分类；已读状态来自持久化的水位线。
func (s *ReferralService) ListNotifications(affiliateID uint) ([]Notification, error) {
	affiliate, err := s.repo.GetByID(affiliateID)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}

	referrals, err := s.ledgerRepo.ListRecentReferrals(affiliate.Code, notificationFeedLimit)
	if err != nil {
		return nil, err
	}

	var lastSeen time.Time
	cursor, err := s.repo.GetCursor(affiliateID)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		lastSeen = cursor.LastSeenAt
	}

	return deriveNotifications(referrals, lastSeen), nil
}

// MarkAllRead 将水位线推进到当前时刻
func (s *ReferralService) MarkAllRead(affiliateID uint) error {
	affiliate, err := s.repo.GetByID(affiliateID)
	if err != nil {
		return err
	}
	if affiliate == nil {
		return ErrAffiliateNotFound
	}
	return s.repo.UpsertCursor(affiliateID, time.Now())
}

// deriveNotifications 按佣金状态分类转介记录并标记已读。
// rejected 状态不产生通知。
func deriveNotifications(referrals []models.Referral, lastSeen time.Time) []Notification {
	notifications := make([]Notification, 0, len(referrals))
	for _, referral := range referrals {
		var kind string
		switch referral.CommissionStatus {
		case constants.CommissionStatusPending:
			kind = constants.NotificationKindNewReferral
		case constants.CommissionStatusApproved:
			kind = constants.NotificationKindCommissionApproved
		case constants.CommissionStatusPaid:
			kind = constants.NotificationKindCommissionPaid
		default:
			continue
		}
		notifications = append(notifications, Notification{
			Kind:             kind,
			CustomerName:     referral.CustomerName,
			Package:          referral.Package,
			CommissionAmount: referral.CommissionAmount,
			CommissionBaht:   models.NewMoneyFromSatang(referral.CommissionAmount),
			Read:             !referral.CreatedAt.After(lastSeen),
			CreatedAt:        referral.CreatedAt,
		})
	}
	return notifications
}
