package commissionrepo

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

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.CommissionTransaction, error) {
	query := `
		SELECT id, order_id, purchaser_id, order_amount, direct_recipient_id, direct_amount,
			trust_fund_amount, development_fund_amount, status, created_at
		FROM commission_transactions
		WHERE order_id = $1
	`
	var tx domain.CommissionTransaction
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&tx.ID, &tx.OrderID, &tx.PurchaserID, &tx.OrderAmount,
		&tx.DirectRecipientID, &tx.DirectAmount,
		&tx.TrustFundAmount, &tx.DevelopmentFundAmount, &tx.Status, &tx.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find commission transaction", zap.String("orderID", orderID), zap.Error(err))
		return nil, err
	}

	levels, err := r.findTreeCommissions(ctx, tx.ID)
	if err != nil {
		return nil, err
	}
	tx.TreeCommissions = levels
	return &tx, nil
}

func (r *Repository) findTreeCommissions(ctx context.Context, commissionID int) ([]domain.TreeCommission, error) {
	query := `
		SELECT id, commission_id, recipient_id, level, percentage, amount
		FROM tree_commissions
		WHERE commission_id = $1
		ORDER BY level
	`
	rows, err := r.db.Query(ctx, query, commissionID)
	if err != nil {
		zap.L().Error("can't fetch tree commissions", zap.Int("commissionID", commissionID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var levels []domain.TreeCommission
	for rows.Next() {
		var tc domain.TreeCommission
		if err := rows.Scan(&tc.ID, &tc.CommissionID, &tc.RecipientID, &tc.Level, &tc.Percentage, &tc.Amount); err != nil {
			return nil, err
		}
		levels = append(levels, tc)
	}
	return levels, rows.Err()
}

// Save inserts the transaction header and its per-level rows. Must run inside
// the caller's transaction so wallet credits and the record commit together.
func (r *Repository) Save(ctx context.Context, tx *domain.CommissionTransaction) error {
	query := `
		INSERT INTO commission_transactions (order_id, purchaser_id, order_amount,
			direct_recipient_id, direct_amount, trust_fund_amount, development_fund_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		tx.OrderID, tx.PurchaserID, tx.OrderAmount,
		tx.DirectRecipientID, tx.DirectAmount, tx.TrustFundAmount, tx.DevelopmentFundAmount, tx.Status,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save commission transaction", zap.String("orderID", tx.OrderID), zap.Error(err))
		return err
	}

	for i := range tx.TreeCommissions {
		tc := &tx.TreeCommissions[i]
		tc.CommissionID = tx.ID
		err := r.db.QueryRow(ctx,
			`INSERT INTO tree_commissions (commission_id, recipient_id, level, percentage, amount)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			tc.CommissionID, tc.RecipientID, tc.Level, tc.Percentage, tc.Amount,
		).Scan(&tc.ID)
		if err != nil {
			zap.L().Error("can't save tree commission", zap.String("orderID", tx.OrderID), zap.Int("level", tc.Level), zap.Error(err))
			return err
		}
	}
	return nil
}

// ListEarningsByUser returns direct and tree payout lines credited to a user,
// newest first.
func (r *Repository) ListEarningsByUser(ctx context.Context, userID int, limit, offset int) ([]domain.CommissionEarning, error) {
	query := `
		SELECT order_id, 'direct' AS kind, 0 AS level, direct_amount AS amount, created_at
		FROM commission_transactions
		WHERE direct_recipient_id = $1
		UNION ALL
		SELECT ct.order_id, 'tree' AS kind, tc.level, tc.amount, ct.created_at
		FROM tree_commissions tc
		JOIN commission_transactions ct ON ct.id = tc.commission_id
		WHERE tc.recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't fetch earnings", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var earnings []domain.CommissionEarning
	for rows.Next() {
		var e domain.CommissionEarning
		if err := rows.Scan(&e.OrderID, &e.Kind, &e.Level, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		earnings = append(earnings, e)
	}
	return earnings, rows.Err()
}
