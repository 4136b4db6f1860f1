package commissionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/referralmart/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

const findByOrderIDQuery = `
		SELECT id, order_id, purchaser_id, order_amount, direct_recipient_id, direct_amount,
			trust_fund_amount, development_fund_amount, status, created_at
		FROM commission_transactions
		WHERE order_id = $1
	`

const findTreeCommissionsQuery = `
		SELECT id, commission_id, recipient_id, level, percentage, amount
		FROM tree_commissions
		WHERE commission_id = $1
		ORDER BY level
	`

func intPtr(v int) *int { return &v }

func TestRepository_FindByOrderID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		orderID   string
		mockSetup func()
		expectErr bool
		result    *domain.CommissionTransaction
	}{
		{
			name:    "Existing order returns transaction with tree rows",
			orderID: "100",
			mockSetup: func() {
				header := pgxmock.NewRows([]string{"id", "order_id", "purchaser_id", "order_amount",
					"direct_recipient_id", "direct_amount", "trust_fund_amount", "development_fund_amount",
					"status", "created_at"}).
					AddRow(5, "100", 1, 1000.0, intPtr(10), 30.0, 27.5, 20.0, domain.CommissionStatusCompleted, now)
				mock.ExpectQuery(regexp.QuoteMeta(findByOrderIDQuery)).WithArgs("100").WillReturnRows(header)

				levels := pgxmock.NewRows([]string{"id", "commission_id", "recipient_id", "level", "percentage", "amount"}).
					AddRow(1, 5, 20, 1, 1.5, 15.0).
					AddRow(2, 5, 30, 2, 0.75, 7.5)
				mock.ExpectQuery(regexp.QuoteMeta(findTreeCommissionsQuery)).WithArgs(5).WillReturnRows(levels)
			},
			result: &domain.CommissionTransaction{
				ID:                    5,
				OrderID:               "100",
				PurchaserID:           1,
				OrderAmount:           1000.0,
				DirectRecipientID:     intPtr(10),
				DirectAmount:          30.0,
				TrustFundAmount:       27.5,
				DevelopmentFundAmount: 20.0,
				Status:                domain.CommissionStatusCompleted,
				CreatedAt:             now,
				TreeCommissions: []domain.TreeCommission{
					{ID: 1, CommissionID: 5, RecipientID: 20, Level: 1, Percentage: 1.5, Amount: 15.0},
					{ID: 2, CommissionID: 5, RecipientID: 30, Level: 2, Percentage: 0.75, Amount: 7.5},
				},
			},
		},
		{
			name:    "Unknown order returns nil",
			orderID: "999",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByOrderIDQuery)).WithArgs("999").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:    "Database error",
			orderID: "100",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByOrderIDQuery)).WithArgs("100").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByOrderID(context.Background(), tt.orderID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	headerQuery := regexp.QuoteMeta(`
		INSERT INTO commission_transactions (order_id, purchaser_id, order_amount,
			direct_recipient_id, direct_amount, trust_fund_amount, development_fund_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`)
	treeQuery := regexp.QuoteMeta(`INSERT INTO tree_commissions (commission_id, recipient_id, level, percentage, amount)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`)

	tests := []struct {
		name      string
		tx        *domain.CommissionTransaction
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saves header and per-level rows",
			tx: &domain.CommissionTransaction{
				OrderID:               "100",
				PurchaserID:           1,
				OrderAmount:           1000.0,
				DirectRecipientID:     intPtr(10),
				DirectAmount:          30.0,
				TrustFundAmount:       27.5,
				DevelopmentFundAmount: 20.0,
				Status:                domain.CommissionStatusCompleted,
				TreeCommissions: []domain.TreeCommission{
					{RecipientID: 20, Level: 1, Percentage: 1.5, Amount: 15.0},
					{RecipientID: 30, Level: 2, Percentage: 0.75, Amount: 7.5},
				},
			},
			mockSetup: func() {
				mock.ExpectQuery(headerQuery).
					WithArgs("100", 1, 1000.0, intPtr(10), 30.0, 27.5, 20.0, domain.CommissionStatusCompleted).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))
				mock.ExpectQuery(treeQuery).
					WithArgs(5, 20, 1, 1.5, 15.0).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectQuery(treeQuery).
					WithArgs(5, 30, 2, 0.75, 7.5).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(2))
			},
		},
		{
			name: "Header insert fails",
			tx: &domain.CommissionTransaction{
				OrderID:     "100",
				PurchaserID: 1,
				OrderAmount: 1000.0,
				Status:      domain.CommissionStatusCompleted,
			},
			mockSetup: func() {
				mock.ExpectQuery(headerQuery).
					WithArgs("100", 1, 1000.0, (*int)(nil), 0.0, 0.0, 0.0, domain.CommissionStatusCompleted).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), tt.tx)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, tt.tx.ID)
				for _, tc := range tt.tx.TreeCommissions {
					assert.Equal(t, 5, tc.CommissionID)
				}
			}
		})
	}
}

func TestRepository_ListEarningsByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
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
	`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.CommissionEarning
	}{
		{
			name: "Direct and tree lines returned together",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"order_id", "kind", "level", "amount", "created_at"}).
					AddRow("100", "direct", 0, 30.0, now).
					AddRow("200", "tree", 2, 7.5, now)
				mock.ExpectQuery(query).WithArgs(10, 50, 0).WillReturnRows(rows)
			},
			result: []domain.CommissionEarning{
				{OrderID: "100", Kind: "direct", Level: 0, Amount: 30.0, CreatedAt: now},
				{OrderID: "200", Kind: "tree", Level: 2, Amount: 7.5, CreatedAt: now},
			},
		},
		{
			name: "No earnings",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10, 50, 0).
					WillReturnRows(pgxmock.NewRows([]string{"order_id", "kind", "level", "amount", "created_at"}))
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10, 50, 0).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListEarningsByUser(context.Background(), 10, 50, 0)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
