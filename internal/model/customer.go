package model

// CustomerStatus is the lifecycle state of a customer record.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

// Customer is a read-only record served by the merchant lookup.
type Customer struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Address    string         `json:"address"`
	JoinDate   string         `json:"join_date"`
	TotalSpent float64        `json:"total_spent"`
	Orders     int            `json:"orders"`
	Status     CustomerStatus `json:"status"`
}
