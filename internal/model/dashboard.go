package model

// Member is the minimal shadow record on the admin dashboard. It is a
// separate collection from the managed User list by design.
type Member struct {
	ID               int            `json:"id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Points           int            `json:"points"`
	ContributionRate float64        `json:"contribution_rate"`
	Status           CustomerStatus `json:"status"`
}

// Merchant is the minimal shadow record on the admin dashboard.
type Merchant struct {
	ID        int            `json:"id"`
	StoreName string         `json:"store_name"`
	Email     string         `json:"email"`
	Status    CustomerStatus `json:"status"`
}

// AdminOverview aggregates collection counts for the admin landing view.
type AdminOverview struct {
	TotalUsers       int `json:"total_users"`
	ActiveUsers      int `json:"active_users"`
	TotalMembers     int `json:"total_members"`
	TotalMerchants   int `json:"total_merchants"`
	PendingPurchases int `json:"pending_purchases"`
}

// MerchantOverview aggregates counts for the merchant landing view.
type MerchantOverview struct {
	PendingPurchases    int     `json:"pending_purchases"`
	ApprovedPurchases   int     `json:"approved_purchases"`
	RejectedPurchases   int     `json:"rejected_purchases"`
	UnreadNotifications int     `json:"unread_notifications"`
	ContributionRate    float64 `json:"contribution_rate"`
}

// PointsTransaction is one line of a member's points history.
type PointsTransaction struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // earned | redeemed
	Amount      int    `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Merchant    string `json:"merchant,omitempty"`
}

// PointsSummary is the member dashboard payload.
type PointsSummary struct {
	TotalPoints        int                 `json:"total_points"`
	LifetimeEarned     int                 `json:"lifetime_earned"`
	LifetimeRedeemed   int                 `json:"lifetime_redeemed"`
	CurrentTier        string              `json:"current_tier"`
	NextTier           string              `json:"next_tier"`
	PointsToNextTier   int                 `json:"points_to_next_tier"`
	RecentTransactions []PointsTransaction `json:"recent_transactions"`
}
