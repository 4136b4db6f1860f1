package domain

import "time"

type UserKind string

const (
	// UserKindReal is a human account: owns a cash wallet, can log in and withdraw.
	UserKindReal UserKind = "real"
	// UserKindVirtual is a system-minted tree placeholder owned by a real user.
	// It never logs in and never holds cash; commission earned on its level is
	// paid through to the original owner.
	UserKindVirtual UserKind = "virtual"
)

type User struct {
	ID           int      `db:"id"`
	Login        string   `db:"login"`
	PasswordHash string   `db:"password_hash"`
	Kind         UserKind `db:"kind"`

	ReferralCode    string  `db:"referral_code"`
	ReferredBy      *string `db:"referred_by"`
	OriginalOwnerID *int    `db:"original_owner_id"`

	WalletCash              float64 `db:"wallet_cash"`
	PointsWallet            int     `db:"points_wallet"`
	TotalPointsEarned       int     `db:"total_points_earned"`
	VirtualReferralsCreated int     `db:"virtual_referrals_created"`

	// Tree fields are immutable once assigned.
	TreeParentID *int `db:"tree_parent_id"`
	TreeLevel    int  `db:"tree_level"`
	TreePosition int  `db:"tree_position"`

	CreatedAt time.Time `db:"created_at"`
}

func (u *User) IsVirtual() bool {
	return u.Kind == UserKindVirtual
}

// Placement is a slot assignment produced by the tree placement service.
// The caller persists the new user with these fields.
type Placement struct {
	ParentID int
	Level    int
	Position int
}

const (
	CommissionStatusPending   string = "PENDING"
	CommissionStatusCompleted string = "COMPLETED"
	CommissionStatusFailed    string = "FAILED"
)

type CommissionTransaction struct {
	ID          int     `db:"id"`
	OrderID     string  `db:"order_id"`
	PurchaserID int     `db:"purchaser_id"`
	OrderAmount float64 `db:"order_amount"`

	DirectRecipientID *int    `db:"direct_recipient_id"`
	DirectAmount      float64 `db:"direct_amount"`

	TreeCommissions []TreeCommission

	TrustFundAmount       float64   `db:"trust_fund_amount"`
	DevelopmentFundAmount float64   `db:"development_fund_amount"`
	Status                string    `db:"status"`
	CreatedAt             time.Time `db:"created_at"`
}

type TreeCommission struct {
	ID           int     `db:"id"`
	CommissionID int     `db:"commission_id"`
	RecipientID  int     `db:"recipient_id"`
	Level        int     `db:"level"`
	Percentage   float64 `db:"percentage"`
	Amount       float64 `db:"amount"`
}

// CommissionEarning is a single payout line from a user's point of view,
// used by the earnings history endpoint.
type CommissionEarning struct {
	OrderID   string    `db:"order_id"`
	Kind      string    `db:"kind"`
	Level     int       `db:"level"`
	Amount    float64   `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}

type PointsTransactionType string

const (
	PointsEarned             PointsTransactionType = "EARNED"
	PointsRedeemedForVirtual PointsTransactionType = "REDEEMED_FOR_VIRTUAL"
	PointsConvertedToCash    PointsTransactionType = "CONVERTED_TO_CASH"
)

// PointsTransaction is an append-only ledger entry. Points is a signed delta;
// BalanceAfter is the wallet balance implied by the entry.
type PointsTransaction struct {
	ID            int                   `db:"id"`
	UserID        int                   `db:"user_id"`
	Type          PointsTransactionType `db:"type"`
	Points        int                   `db:"points"`
	CashAmount    float64               `db:"cash_amount"`
	BalanceAfter  int                   `db:"balance_after"`
	SourceOrderID *string               `db:"source_order_id"`
	VirtualUserID *int                  `db:"virtual_user_id"`
	CreatedAt     time.Time             `db:"created_at"`
}

type LevelPercent struct {
	Level      int     `json:"level"`
	Percentage float64 `json:"percentage"`
}

type VirtualTreeSettings struct {
	Enabled                bool `db:"virtual_trees_enabled"`
	AutoCreateEnabled      bool `db:"auto_create_enabled"`
	PointsPerVirtualTree   int  `db:"points_per_virtual_tree"`
	MaxVirtualTreesPerUser int  `db:"max_virtual_trees_per_user"`
}

type CashConversionSettings struct {
	Enabled             bool    `db:"conversion_enabled"`
	PointsPerConversion int     `db:"points_per_conversion"`
	CashPerConversion   float64 `db:"cash_per_conversion"`
}

// Settings is an immutable snapshot of the admin-managed program configuration.
// It is read fresh at the start of every operation and never cached.
type Settings struct {
	Version int `db:"version"`

	DirectCommissionPercent   float64        `db:"direct_commission_percent"`
	TreeCommissionLevels      []LevelPercent `db:"tree_commission_levels"`
	TreeCommissionPoolPercent float64        `db:"tree_commission_pool_percent"`
	TrustFundPercent          float64        `db:"trust_fund_percent"`
	DevelopmentFundPercent    float64        `db:"development_fund_percent"`
	TotalAllocationPercent    float64        `db:"total_allocation_percent"`

	PointsPerCurrencyUnit float64 `db:"points_per_currency_unit"`
	BranchingFactor       int     `db:"branching_factor"`

	VirtualTree    VirtualTreeSettings
	CashConversion CashConversionSettings
}

// Capability is a pure projection of what a user's current points wallet could
// yield under the current settings. No mutation is implied.
type Capability struct {
	PointsWallet      int     `json:"points_wallet"`
	VirtualTrees      int     `json:"virtual_trees"`
	ConvertiblePoints int     `json:"convertible_points"`
	ConvertibleCash   float64 `json:"convertible_cash"`
}
