package commissionservice

import (
	"context"
	"errors"
	"math"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/referralmart/internal/domain"
	"github.com/GlebRadaev/referralmart/internal/pg"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	CreditWalletCash(ctx context.Context, id int, amount float64) error
}
type CommissionRepo interface {
	FindByOrderID(ctx context.Context, orderID string) (*domain.CommissionTransaction, error)
	Save(ctx context.Context, tx *domain.CommissionTransaction) error
	ListEarningsByUser(ctx context.Context, userID int, limit, offset int) ([]domain.CommissionEarning, error)
}
type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type Service struct {
	userRepo       UserRepo
	commissionRepo CommissionRepo
	settingsRepo   SettingsRepo
	txManager      pg.TXManager
}

func New(userRepo UserRepo, commissionRepo CommissionRepo, settingsRepo SettingsRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:       userRepo,
		commissionRepo: commissionRepo,
		settingsRepo:   settingsRepo,
		txManager:      txManager,
	}
}

var (
	ErrInvalidAmount     = errors.New("order amount must be positive")
	ErrPurchaserNotFound = errors.New("purchaser not found")
	ErrTooManyConflicts  = errors.New("commission distribution conflicted, retry later")
)

const (
	maxRetries = 3
	// epsilon tolerates float drift when checking the tree pool cap.
	epsilon = 1e-9
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "23505":
			return true
		}
	}
	return false
}

// Distribute computes and applies the full payout for a completed order inside
// one transaction: direct commission, the multi-level tree walk, and the trust
// and development fund shares. Delivering the same orderID twice returns the
// already-persisted transaction unchanged.
func (s *Service) Distribute(ctx context.Context, orderID string, purchaserID int, orderAmount float64) (*domain.CommissionTransaction, error) {
	if orderAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	var result *domain.CommissionTransaction
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			tx, err := s.distribute(ctx, orderID, purchaserID, orderAmount)
			if err != nil {
				return err
			}
			result = tx
			return nil
		})
		if err == nil {
			return result, nil
		}
		if !isRetryable(err) {
			return nil, err
		}
		zap.L().Warn("commission distribution conflict, retrying",
			zap.String("orderID", orderID), zap.Int("attempt", attempt), zap.Error(err))
	}
	return nil, ErrTooManyConflicts
}

func (s *Service) distribute(ctx context.Context, orderID string, purchaserID int, orderAmount float64) (*domain.CommissionTransaction, error) {
	existing, err := s.commissionRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("order already processed", zap.String("orderID", orderID))
		return existing, nil
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	purchaser, err := s.userRepo.FindByID(ctx, purchaserID)
	if err != nil {
		return nil, err
	}
	if purchaser == nil {
		return nil, ErrPurchaserNotFound
	}

	total := round2(orderAmount * settings.TotalAllocationPercent / 100)
	development := round2(orderAmount * settings.DevelopmentFundPercent / 100)

	directRecipientID, directAmount, err := s.payDirect(ctx, purchaser, orderAmount, settings)
	if err != nil {
		return nil, err
	}

	treeRows, treePaid, err := s.payTree(ctx, purchaser, orderAmount, settings)
	if err != nil {
		return nil, err
	}

	// The trust fund absorbs everything without an eligible recipient, and any
	// rounding drift, so the allocation identity holds exactly.
	trust := round2(total - directAmount - treePaid - development)

	tx := &domain.CommissionTransaction{
		OrderID:               orderID,
		PurchaserID:           purchaserID,
		OrderAmount:           orderAmount,
		DirectRecipientID:     directRecipientID,
		DirectAmount:          directAmount,
		TreeCommissions:       treeRows,
		TrustFundAmount:       trust,
		DevelopmentFundAmount: development,
		Status:                domain.CommissionStatusCompleted,
	}
	if err := s.commissionRepo.Save(ctx, tx); err != nil {
		return nil, err
	}

	zap.L().Info("commission distributed",
		zap.String("orderID", orderID),
		zap.Float64("direct", directAmount),
		zap.Float64("tree", treePaid),
		zap.Float64("trust", trust),
		zap.Float64("development", development))
	return tx, nil
}

// payDirect credits the purchaser's direct referrer if one resolves to a real
// user. Otherwise the direct share stays in the trust fund remainder.
func (s *Service) payDirect(ctx context.Context, purchaser *domain.User, orderAmount float64, settings *domain.Settings) (*int, float64, error) {
	if purchaser.ReferredBy == nil {
		return nil, 0, nil
	}

	referrer, err := s.userRepo.FindByReferralCode(ctx, *purchaser.ReferredBy)
	if err != nil {
		return nil, 0, err
	}
	if referrer == nil || referrer.IsVirtual() {
		zap.L().Info("direct referrer not resolvable, routing to trust fund",
			zap.Int("purchaserID", purchaser.ID), zap.String("referralCode", *purchaser.ReferredBy))
		return nil, 0, nil
	}

	amount := round2(orderAmount * settings.DirectCommissionPercent / 100)
	if amount <= 0 {
		return nil, 0, nil
	}
	if err := s.userRepo.CreditWalletCash(ctx, referrer.ID, amount); err != nil {
		return nil, 0, err
	}
	return &referrer.ID, amount, nil
}

// payTree walks the purchaser's ancestor chain level by level, applying the
// halving schedule capped by the pool percent. A level held by a virtual user
// is paid through to its original owner. A missing owner skips just that
// level; a missing ancestor row ends the walk since the chain is broken.
func (s *Service) payTree(ctx context.Context, purchaser *domain.User, orderAmount float64, settings *domain.Settings) ([]domain.TreeCommission, float64, error) {
	poolBudget := round2(orderAmount * settings.TreeCommissionPoolPercent / 100)

	var rows []domain.TreeCommission
	var paid float64
	ancestorID := purchaser.TreeParentID

	for _, lvl := range settings.TreeCommissionLevels {
		if ancestorID == nil {
			break
		}

		ancestor, err := s.userRepo.FindByID(ctx, *ancestorID)
		if err != nil {
			return nil, 0, err
		}
		if ancestor == nil {
			zap.L().Warn("tree ancestor missing, ending walk",
				zap.Int("purchaserID", purchaser.ID), zap.Int("ancestorID", *ancestorID), zap.Int("level", lvl.Level))
			break
		}

		amount := round2(orderAmount * lvl.Percentage / 100)
		if paid+amount > poolBudget+epsilon {
			zap.L().Warn("tree pool cap reached",
				zap.Int("purchaserID", purchaser.ID), zap.Int("level", lvl.Level))
			break
		}

		recipient := ancestor
		if ancestor.IsVirtual() {
			if ancestor.OriginalOwnerID == nil {
				zap.L().Warn("virtual ancestor has no owner, skipping level",
					zap.Int("ancestorID", ancestor.ID), zap.Int("level", lvl.Level))
				ancestorID = ancestor.TreeParentID
				continue
			}
			owner, err := s.userRepo.FindByID(ctx, *ancestor.OriginalOwnerID)
			if err != nil {
				return nil, 0, err
			}
			if owner == nil {
				zap.L().Warn("virtual ancestor owner missing, skipping level",
					zap.Int("ancestorID", ancestor.ID), zap.Int("level", lvl.Level))
				ancestorID = ancestor.TreeParentID
				continue
			}
			recipient = owner
		}

		if amount > 0 {
			if err := s.userRepo.CreditWalletCash(ctx, recipient.ID, amount); err != nil {
				return nil, 0, err
			}
			rows = append(rows, domain.TreeCommission{
				RecipientID: recipient.ID,
				Level:       lvl.Level,
				Percentage:  lvl.Percentage,
				Amount:      amount,
			})
			paid += amount
		}

		ancestorID = ancestor.TreeParentID
	}

	return rows, round2(paid), nil
}

func (s *Service) GetEarnings(ctx context.Context, userID int, limit, offset int) ([]domain.CommissionEarning, error) {
	earnings, err := s.commissionRepo.ListEarningsByUser(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch earnings", zap.Error(err))
		return nil, err
	}
	return earnings, nil
}
