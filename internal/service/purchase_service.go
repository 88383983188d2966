package service

import (
	"context"
	"errors"
	"time"

	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
	"go-loyalty-admin/internal/ws"
)

var (
	ErrInvalidDecision  = errors.New("decision must be approved or rejected")
	ErrAlreadyDecided   = errors.New("purchase has already been decided")
	ErrDecisionInFlight = errors.New("a decision for this purchase is already in progress")
)

type PurchaseService interface {
	List() ([]model.Purchase, error)
	// Deciding reports whether a decision for the id is still running; this
	// is the per-id loading marker.
	Deciding(id string) bool
	Decide(ctx context.Context, id string, decision model.PurchaseStatus) (*model.Purchase, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	notifRepo    repository.NotificationRepository
	inflight     *repository.Inflight
	wsHub        *ws.Hub
	delay        time.Duration
}

func NewPurchaseService(purchaseRepo repository.PurchaseRepository, notifRepo repository.NotificationRepository, inflight *repository.Inflight, hub *ws.Hub, delay time.Duration) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		notifRepo:    notifRepo,
		inflight:     inflight,
		wsHub:        hub,
		delay:        delay,
	}
}

func (s *purchaseService) List() ([]model.Purchase, error) {
	return s.purchaseRepo.FindAll()
}

func (s *purchaseService) Deciding(id string) bool {
	return s.inflight.Has(id)
}

// Decide approves or rejects one pending purchase. At most one decision per
// id may run at a time; a duplicate submission is rejected instead of
// queued. The in-flight marker is released on every path.
func (s *purchaseService) Decide(ctx context.Context, id string, decision model.PurchaseStatus) (*model.Purchase, error) {
	if decision != model.PurchaseApproved && decision != model.PurchaseRejected {
		return nil, ErrInvalidDecision
	}

	if !s.inflight.Begin(id) {
		return nil, ErrDecisionInFlight
	}
	defer s.inflight.End(id)

	purchase, err := s.purchaseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if purchase.Status != model.PurchasePending {
		return nil, ErrAlreadyDecided
	}

	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}

	updated, err := s.purchaseRepo.UpdateStatus(id, decision)
	if err != nil {
		return nil, err
	}

	// Resolve the approval requests that pointed at this purchase.
	if err := s.notifRepo.MarkReadByPurchase(id); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastEvent("purchase_decided", updated)

	return updated, nil
}
