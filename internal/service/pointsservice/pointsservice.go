package pointsservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/referralmart/internal/domain"
	"github.com/GlebRadaev/referralmart/internal/pg"
	"github.com/GlebRadaev/referralmart/pkg/referral"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	CreditPoints(ctx context.Context, id int, points int) error
	DebitPoints(ctx context.Context, id int, points int) error
	CreditWalletCash(ctx context.Context, id int, amount float64) error
	IncrementVirtualReferrals(ctx context.Context, id int) error
}
type PointsRepo interface {
	Append(ctx context.Context, tx *domain.PointsTransaction) (*domain.PointsTransaction, error)
	FindEarnedByOrderID(ctx context.Context, orderID string) (*domain.PointsTransaction, error)
	ListByUserID(ctx context.Context, userID int, limit, offset int) ([]domain.PointsTransaction, error)
}
type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
}
type TreeService interface {
	PlaceNewUser(ctx context.Context, referrerID int) (*domain.Placement, error)
}

type Service struct {
	userRepo     UserRepo
	pointsRepo   PointsRepo
	settingsRepo SettingsRepo
	treeService  TreeService
	txManager    pg.TXManager
}

func New(userRepo UserRepo, pointsRepo PointsRepo, settingsRepo SettingsRepo, treeService TreeService, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:     userRepo,
		pointsRepo:   pointsRepo,
		settingsRepo: settingsRepo,
		treeService:  treeService,
		txManager:    txManager,
	}
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrVirtualUser        = errors.New("virtual users have no points wallet")
	ErrConversionDisabled = errors.New("cash conversion is disabled")
	ErrInvalidAmount      = errors.New("points amount must be positive")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInvalidIncrement   = errors.New("points must be a multiple of the conversion increment")
)

// InvalidIncrementError carries the largest amount the user could convert
// right now as a hint.
type InvalidIncrementError struct {
	PointsPerConversion int
	MaxConvertible      int
}

func (e *InvalidIncrementError) Error() string {
	return fmt.Sprintf("points must be a multiple of %d (largest convertible amount: %d)",
		e.PointsPerConversion, e.MaxConvertible)
}

func (e *InvalidIncrementError) Is(target error) bool {
	return target == ErrInvalidIncrement
}

// AwardForOrder converts a completed order's amount into points per the
// current settings and awards them. Returns the number of points awarded;
// redelivery of an already-awarded order returns the original award untouched.
func (s *Service) AwardForOrder(ctx context.Context, userID int, orderID string, orderAmount float64) (int, error) {
	var awarded int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return err
		}
		points := int(orderAmount * settings.PointsPerCurrencyUnit)
		awarded, err = s.award(ctx, userID, points, orderID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return awarded, nil
}

// AwardPoints credits points to the user, appends the ledger entry, and
// settles the wallet into virtual referrals, all in one transaction. Awarding
// a non-positive amount is a no-op, not an error.
func (s *Service) AwardPoints(ctx context.Context, userID int, points int, sourceOrderID string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := s.award(ctx, userID, points, sourceOrderID)
		return err
	})
}

// award records the earn and settles the wallet. An order that already has an
// EARNED entry is skipped under the user's row lock and the stored award is
// returned, so at-least-once delivery never credits twice.
func (s *Service) award(ctx context.Context, userID int, points int, sourceOrderID string) (int, error) {
	if points <= 0 {
		return 0, nil
	}

	user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	if user.IsVirtual() {
		return 0, ErrVirtualUser
	}

	if sourceOrderID != "" {
		existing, err := s.pointsRepo.FindEarnedByOrderID(ctx, sourceOrderID)
		if err != nil {
			return 0, err
		}
		if existing != nil {
			zap.L().Info("points already awarded for order",
				zap.String("orderNumber", sourceOrderID), zap.Int("points", existing.Points))
			return existing.Points, nil
		}
	}

	if err := s.userRepo.CreditPoints(ctx, userID, points); err != nil {
		return 0, err
	}

	balance := user.PointsWallet + points
	var src *string
	if sourceOrderID != "" {
		src = &sourceOrderID
	}
	_, err = s.pointsRepo.Append(ctx, &domain.PointsTransaction{
		UserID:        userID,
		Type:          domain.PointsEarned,
		Points:        points,
		BalanceAfter:  balance,
		SourceOrderID: src,
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("points awarded", zap.Int("userID", userID), zap.Int("points", points))

	// Settle synchronously so the award call never returns with an
	// unsettled wallet.
	if _, err := s.settleLocked(ctx, userID, balance, user.VirtualReferralsCreated); err != nil {
		return 0, err
	}
	return points, nil
}

// Settle spends the user's banked points on virtual referrals up to the
// per-user cap and returns how many were created. Remaining points stay
// banked; cash conversion only ever happens via ConvertPointsToCash.
func (s *Service) Settle(ctx context.Context, userID int) (int, error) {
	var created int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.IsVirtual() {
			return ErrVirtualUser
		}
		created, err = s.settleLocked(ctx, userID, user.PointsWallet, user.VirtualReferralsCreated)
		return err
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// settleLocked runs the priority loop. The caller must hold the user's row
// lock so two settlements cannot observe the same pre-decrement balance.
// A cap lowered below the user's current count simply makes the loop
// condition false; existing virtual referrals are never removed.
func (s *Service) settleLocked(ctx context.Context, userID int, wallet int, alreadyCreated int) (int, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return 0, err
	}
	vt := settings.VirtualTree

	created := 0
	for vt.Enabled && vt.AutoCreateEnabled && vt.PointsPerVirtualTree > 0 &&
		wallet >= vt.PointsPerVirtualTree && alreadyCreated < vt.MaxVirtualTreesPerUser {

		placement, err := s.treeService.PlaceNewUser(ctx, userID)
		if err != nil {
			return created, err
		}

		code, err := referral.GenerateVirtualCode()
		if err != nil {
			return created, err
		}

		ownerID := userID
		virtualUser, err := s.userRepo.Create(ctx, &domain.User{
			Login:           code,
			Kind:            domain.UserKindVirtual,
			ReferralCode:    code,
			OriginalOwnerID: &ownerID,
			TreeParentID:    &placement.ParentID,
			TreeLevel:       placement.Level,
			TreePosition:    placement.Position,
		})
		if err != nil {
			return created, err
		}

		if err := s.userRepo.DebitPoints(ctx, userID, vt.PointsPerVirtualTree); err != nil {
			return created, err
		}
		if err := s.userRepo.IncrementVirtualReferrals(ctx, userID); err != nil {
			return created, err
		}

		wallet -= vt.PointsPerVirtualTree
		alreadyCreated++
		created++

		_, err = s.pointsRepo.Append(ctx, &domain.PointsTransaction{
			UserID:        userID,
			Type:          domain.PointsRedeemedForVirtual,
			Points:        -vt.PointsPerVirtualTree,
			BalanceAfter:  wallet,
			VirtualUserID: &virtualUser.ID,
		})
		if err != nil {
			return created, err
		}

		zap.L().Info("virtual referral minted",
			zap.Int("ownerID", userID), zap.Int("virtualUserID", virtualUser.ID), zap.Int("remainingPoints", wallet))
	}

	return created, nil
}

// ConvertPointsToCash exchanges banked points for wallet cash at the
// configured rate. The amount must be an exact multiple of the conversion
// increment. Returns the cash credited.
func (s *Service) ConvertPointsToCash(ctx context.Context, userID int, points int) (float64, error) {
	if points <= 0 {
		return 0, ErrInvalidAmount
	}

	var cash float64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return err
		}
		cc := settings.CashConversion
		if !cc.Enabled || cc.PointsPerConversion <= 0 {
			return ErrConversionDisabled
		}

		user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.PointsWallet < points {
			return ErrInsufficientPoints
		}
		if points%cc.PointsPerConversion != 0 {
			return &InvalidIncrementError{
				PointsPerConversion: cc.PointsPerConversion,
				MaxConvertible:      (user.PointsWallet / cc.PointsPerConversion) * cc.PointsPerConversion,
			}
		}

		cash = float64(points/cc.PointsPerConversion) * cc.CashPerConversion
		if err := s.userRepo.DebitPoints(ctx, userID, points); err != nil {
			return err
		}
		if err := s.userRepo.CreditWalletCash(ctx, userID, cash); err != nil {
			return err
		}

		_, err = s.pointsRepo.Append(ctx, &domain.PointsTransaction{
			UserID:       userID,
			Type:         domain.PointsConvertedToCash,
			Points:       -points,
			CashAmount:   cash,
			BalanceAfter: user.PointsWallet - points,
		})
		return err
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("points converted to cash", zap.Int("userID", userID), zap.Int("points", points), zap.Float64("cash", cash))
	return cash, nil
}

// ProjectCapability reports what the user's current wallet could yield under
// the current settings. Pure read, no mutation.
func (s *Service) ProjectCapability(ctx context.Context, userID int) (*domain.Capability, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	capability := &domain.Capability{PointsWallet: user.PointsWallet}

	vt := settings.VirtualTree
	if vt.Enabled && vt.AutoCreateEnabled && vt.PointsPerVirtualTree > 0 {
		byPoints := user.PointsWallet / vt.PointsPerVirtualTree
		byCap := vt.MaxVirtualTreesPerUser - user.VirtualReferralsCreated
		if byCap < 0 {
			byCap = 0
		}
		if byPoints < byCap {
			capability.VirtualTrees = byPoints
		} else {
			capability.VirtualTrees = byCap
		}
	}

	cc := settings.CashConversion
	if cc.Enabled && cc.PointsPerConversion > 0 {
		conversions := user.PointsWallet / cc.PointsPerConversion
		capability.ConvertiblePoints = conversions * cc.PointsPerConversion
		capability.ConvertibleCash = float64(conversions) * cc.CashPerConversion
	}

	return capability, nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int, limit, offset int) ([]domain.PointsTransaction, error) {
	txs, err := s.pointsRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch points transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
