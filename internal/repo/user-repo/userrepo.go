package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/referralmart/internal/domain"
	"github.com/GlebRadaev/referralmart/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const userColumns = `id, login, password_hash, kind, referral_code, referred_by, original_owner_id,
		wallet_cash, points_wallet, total_points_earned, virtual_referrals_created,
		tree_parent_id, tree_level, tree_position, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Kind, &user.ReferralCode,
		&user.ReferredBy, &user.OriginalOwnerID,
		&user.WalletCash, &user.PointsWallet, &user.TotalPointsEarned, &user.VirtualReferralsCreated,
		&user.TreeParentID, &user.TreeLevel, &user.TreePosition, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, kind, referral_code, referred_by, original_owner_id,
			tree_parent_id, tree_level, tree_position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Login, user.PasswordHash, user.Kind, user.ReferralCode, user.ReferredBy,
		user.OriginalOwnerID, user.TreeParentID, user.TreeLevel, user.TreePosition,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("can't find user by id", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindByIDForUpdate locks the user row for the rest of the surrounding
// transaction, serializing concurrent wallet mutations for the same user.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("can't lock user by id", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, login))
	if err != nil {
		zap.L().Error("can't find user by login", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE referral_code = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, code))
	if err != nil {
		zap.L().Error("can't find user by referral code", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindChildIDs returns the ids of a node's direct children ordered by slot position.
func (r *Repository) FindChildIDs(ctx context.Context, parentID int) ([]int, error) {
	query := `SELECT id FROM users WHERE tree_parent_id = $1 ORDER BY tree_position`
	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		zap.L().Error("can't fetch children", zap.Int("parentID", parentID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AcquireSubtreeLock takes a transaction-scoped advisory lock keyed by the
// subtree root, serializing concurrent placements in overlapping subtrees.
// Released automatically at commit or rollback.
func (r *Repository) AcquireSubtreeLock(ctx context.Context, rootID int) error {
	_, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, rootID)
	if err != nil {
		zap.L().Error("can't acquire subtree lock", zap.Int("rootID", rootID), zap.Error(err))
	}
	return err
}

func (r *Repository) CreditWalletCash(ctx context.Context, id int, amount float64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET wallet_cash = wallet_cash + $1 WHERE id = $2`, amount, id)
	if err != nil {
		zap.L().Error("can't credit wallet", zap.Int("id", id), zap.Error(err))
	}
	return err
}

func (r *Repository) CreditPoints(ctx context.Context, id int, points int) error {
	query := `
		UPDATE users
		SET points_wallet = points_wallet + $1, total_points_earned = total_points_earned + $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, points, id)
	if err != nil {
		zap.L().Error("can't credit points", zap.Int("id", id), zap.Error(err))
	}
	return err
}

func (r *Repository) DebitPoints(ctx context.Context, id int, points int) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET points_wallet = points_wallet - $1 WHERE id = $2`, points, id)
	if err != nil {
		zap.L().Error("can't debit points", zap.Int("id", id), zap.Error(err))
	}
	return err
}

func (r *Repository) IncrementVirtualReferrals(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET virtual_referrals_created = virtual_referrals_created + 1 WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't increment virtual referrals", zap.Int("id", id), zap.Error(err))
	}
	return err
}
