package repository

// ReferralListFilter 查询转介记录列表的过滤条件
type ReferralListFilter struct {
	Page          int
	PageSize      int
	AffiliateCode string
	Status        string
}
