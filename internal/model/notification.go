package model

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	NotifApprovalRequest NotificationType = "approval_request"
	NotifHighValue       NotificationType = "high_value"
	NotifNewCustomer     NotificationType = "new_customer"
)

// NotificationPriority orders notifications in the merchant inbox.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

// Notification is an inbox entry. PurchaseID links approval requests to the
// purchase they reference so deciding the purchase can resolve them.
type Notification struct {
	ID           string               `json:"id"`
	Type         NotificationType     `json:"type"`
	Title        string               `json:"title"`
	Message      string               `json:"message"`
	Timestamp    string               `json:"timestamp"`
	Amount       *float64             `json:"amount,omitempty"`
	CustomerName string               `json:"customer_name,omitempty"`
	PurchaseID   string               `json:"purchase_id,omitempty"`
	IsRead       bool                 `json:"is_read"`
	Priority     NotificationPriority `json:"priority"`
}
