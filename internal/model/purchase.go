package model

// PurchaseStatus is the decision state of a purchase.
type PurchaseStatus string

const (
	PurchasePending  PurchaseStatus = "pending"
	PurchaseApproved PurchaseStatus = "approved"
	PurchaseRejected PurchaseStatus = "rejected"
)

// Purchase is a transaction awaiting (or past) merchant approval.
type Purchase struct {
	ID            string         `json:"id"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	Amount        float64        `json:"amount"`
	Product       string         `json:"product"`
	Date          string         `json:"date"`
	Status        PurchaseStatus `json:"status"`
}
