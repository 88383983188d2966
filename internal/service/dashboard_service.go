package service

import (
	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
)

type DashboardService interface {
	AdminOverview() (*model.AdminOverview, error)
	MerchantOverview(contributionRate float64) (*model.MerchantOverview, error)
	Members() ([]model.Member, error)
	Merchants() ([]model.Merchant, error)
	ToggleMemberStatus(id int) (*model.Member, error)
	ToggleMerchantStatus(id int) (*model.Merchant, error)
	DeleteMember(id int) error
	DeleteMerchant(id int) error
	SetMemberContributionRate(id int, rate float64) (*model.Member, error)
	PointsSummary() (*model.PointsSummary, error)
}

type dashboardService struct {
	dashRepo     repository.DashboardRepository
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
	notifRepo    repository.NotificationRepository
}

func NewDashboardService(dashRepo repository.DashboardRepository, userRepo repository.UserRepository, purchaseRepo repository.PurchaseRepository, notifRepo repository.NotificationRepository) DashboardService {
	return &dashboardService{
		dashRepo:     dashRepo,
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		notifRepo:    notifRepo,
	}
}

func (s *dashboardService) AdminOverview() (*model.AdminOverview, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	active, err := s.userRepo.CountByStatus(model.UserActive)
	if err != nil {
		return nil, err
	}
	members, err := s.dashRepo.Members()
	if err != nil {
		return nil, err
	}
	merchants, err := s.dashRepo.Merchants()
	if err != nil {
		return nil, err
	}
	pending, err := s.purchaseRepo.CountByStatus(model.PurchasePending)
	if err != nil {
		return nil, err
	}

	return &model.AdminOverview{
		TotalUsers:       len(users),
		ActiveUsers:      active,
		TotalMembers:     len(members),
		TotalMerchants:   len(merchants),
		PendingPurchases: pending,
	}, nil
}

func (s *dashboardService) MerchantOverview(contributionRate float64) (*model.MerchantOverview, error) {
	pending, err := s.purchaseRepo.CountByStatus(model.PurchasePending)
	if err != nil {
		return nil, err
	}
	approved, err := s.purchaseRepo.CountByStatus(model.PurchaseApproved)
	if err != nil {
		return nil, err
	}
	rejected, err := s.purchaseRepo.CountByStatus(model.PurchaseRejected)
	if err != nil {
		return nil, err
	}
	unread, err := s.notifRepo.CountUnread()
	if err != nil {
		return nil, err
	}

	return &model.MerchantOverview{
		PendingPurchases:    pending,
		ApprovedPurchases:   approved,
		RejectedPurchases:   rejected,
		UnreadNotifications: unread,
		ContributionRate:    contributionRate,
	}, nil
}

func (s *dashboardService) Members() ([]model.Member, error) {
	return s.dashRepo.Members()
}

func (s *dashboardService) Merchants() ([]model.Merchant, error) {
	return s.dashRepo.Merchants()
}

func (s *dashboardService) ToggleMemberStatus(id int) (*model.Member, error) {
	return s.dashRepo.ToggleMemberStatus(id)
}

func (s *dashboardService) ToggleMerchantStatus(id int) (*model.Merchant, error) {
	return s.dashRepo.ToggleMerchantStatus(id)
}

func (s *dashboardService) DeleteMember(id int) error {
	return s.dashRepo.DeleteMember(id)
}

func (s *dashboardService) DeleteMerchant(id int) error {
	return s.dashRepo.DeleteMerchant(id)
}

func (s *dashboardService) SetMemberContributionRate(id int, rate float64) (*model.Member, error) {
	if !ValidContributionRate(rate) {
		return nil, ErrRateOutOfRange
	}
	return s.dashRepo.SetMemberContributionRate(id, rate)
}

func (s *dashboardService) PointsSummary() (*model.PointsSummary, error) {
	return s.dashRepo.PointsSummary()
}
