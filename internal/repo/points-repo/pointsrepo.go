package pointsrepo

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

// Append adds one ledger entry. The ledger is append-only: entries are never
// updated or deleted.
func (r *Repository) Append(ctx context.Context, tx *domain.PointsTransaction) (*domain.PointsTransaction, error) {
	query := `
		INSERT INTO points_transactions (user_id, type, points, cash_amount, balance_after, source_order_id, virtual_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		tx.UserID, tx.Type, tx.Points, tx.CashAmount, tx.BalanceAfter, tx.SourceOrderID, tx.VirtualUserID,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't append points transaction", zap.Int("userID", tx.UserID), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// FindEarnedByOrderID returns the EARNED entry recorded for the order, or nil
// if the order has not been awarded yet. Backed by a partial unique index so
// at most one such entry can exist.
func (r *Repository) FindEarnedByOrderID(ctx context.Context, orderID string) (*domain.PointsTransaction, error) {
	query := `
		SELECT id, user_id, type, points, cash_amount, balance_after, source_order_id, virtual_user_id, created_at
		FROM points_transactions
		WHERE source_order_id = $1 AND type = 'EARNED'
	`
	var tx domain.PointsTransaction
	err := r.db.QueryRow(ctx, query, orderID).Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Points, &tx.CashAmount,
		&tx.BalanceAfter, &tx.SourceOrderID, &tx.VirtualUserID, &tx.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find earned points transaction", zap.String("orderID", orderID), zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int, limit, offset int) ([]domain.PointsTransaction, error) {
	query := `
		SELECT id, user_id, type, points, cash_amount, balance_after, source_order_id, virtual_user_id, created_at
		FROM points_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't fetch points transactions", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.PointsTransaction
	for rows.Next() {
		var tx domain.PointsTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Points, &tx.CashAmount,
			&tx.BalanceAfter, &tx.SourceOrderID, &tx.VirtualUserID, &tx.CreatedAt)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
