package repository

import (
	"sync"

	"go-loyalty-admin/internal/model"
)

type NotificationRepository interface {
	FindAll() ([]model.Notification, error)
	MarkRead(id string) error
	MarkAllRead() error
	MarkReadByPurchase(purchaseID string) error
	Dismiss(id string) error
	CountUnread() (int, error)
}

type notificationRepo struct {
	mu            sync.RWMutex
	notifications []model.Notification
}

func NewNotificationRepo() NotificationRepository {
	return &notificationRepo{notifications: seedNotifications()}
}

func (r *notificationRepo) FindAll() ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out, nil
}

// MarkRead is idempotent; an absent id is a no-op.
func (r *notificationRepo) MarkRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].IsRead = true
		}
	}
	return nil
}

func (r *notificationRepo) MarkAllRead() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		r.notifications[i].IsRead = true
	}
	return nil
}

// MarkReadByPurchase resolves the approval requests linked to a decided
// purchase.
func (r *notificationRepo) MarkReadByPurchase(purchaseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].PurchaseID == purchaseID &&
			r.notifications[i].Type == model.NotifApprovalRequest {
			r.notifications[i].IsRead = true
		}
	}
	return nil
}

// Dismiss removes by id; an absent id is a no-op.
func (r *notificationRepo) Dismiss(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *notificationRepo) CountUnread() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, notif := range r.notifications {
		if !notif.IsRead {
			n++
		}
	}
	return n, nil
}

func seedNotifications() []model.Notification {
	return []model.Notification{
		{
			ID:           "NOT-001",
			Type:         model.NotifApprovalRequest,
			Title:        "Purchase Approval Required",
			Message:      "Sarah Johnson has requested approval for a Premium Subscription purchase.",
			Timestamp:    "2 minutes ago",
			Amount:       floatPtr(299.99),
			CustomerName: "Sarah Johnson",
			PurchaseID:   "PUR-001",
			IsRead:       false,
			Priority:     model.PriorityHigh,
		},
		{
			ID:           "NOT-002",
			Type:         model.NotifHighValue,
			Title:        "High Value Transaction Alert",
			Message:      "Michael Chen has made a purchase exceeding $500 threshold.",
			Timestamp:    "15 minutes ago",
			Amount:       floatPtr(589.50),
			CustomerName: "Michael Chen",
			IsRead:       false,
			Priority:     model.PriorityMedium,
		},
		{
			ID:           "NOT-003",
			Type:         model.NotifApprovalRequest,
			Title:        "Purchase Approval Required",
			Message:      "Emma Rodriguez needs approval for a Consultation Package.",
			Timestamp:    "1 hour ago",
			Amount:       floatPtr(159.00),
			CustomerName: "Emma Rodriguez",
			PurchaseID:   "PUR-003",
			IsRead:       true,
			Priority:     model.PriorityHigh,
		},
		{
			ID:           "NOT-004",
			Type:         model.NotifNewCustomer,
			Title:        "New Customer Registration",
			Message:      "A new customer has joined your platform.",
			Timestamp:    "2 hours ago",
			CustomerName: "Alex Thompson",
			IsRead:       true,
			Priority:     model.PriorityLow,
		},
		{
			ID:           "NOT-005",
			Type:         model.NotifApprovalRequest,
			Title:        "Purchase Approval Required",
			Message:      "James Wilson requires approval for Monthly Plan upgrade.",
			Timestamp:    "3 hours ago",
			Amount:       floatPtr(45.99),
			CustomerName: "James Wilson",
			PurchaseID:   "PUR-004",
			IsRead:       true,
			Priority:     model.PriorityMedium,
		},
	}
}
