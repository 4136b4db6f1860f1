package settingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

const getQuery = `
		SELECT version, direct_commission_percent, tree_commission_levels, tree_commission_pool_percent,
			trust_fund_percent, development_fund_percent, total_allocation_percent,
			points_per_currency_unit, branching_factor,
			virtual_trees_enabled, auto_create_enabled, points_per_virtual_tree, max_virtual_trees_per_user,
			conversion_enabled, points_per_conversion, cash_per_conversion
		FROM commission_settings
		WHERE id = 1
	`

var settingsColumns = []string{
	"version", "direct_commission_percent", "tree_commission_levels", "tree_commission_pool_percent",
	"trust_fund_percent", "development_fund_percent", "total_allocation_percent",
	"points_per_currency_unit", "branching_factor",
	"virtual_trees_enabled", "auto_create_enabled", "points_per_virtual_tree", "max_virtual_trees_per_user",
	"conversion_enabled", "points_per_conversion", "cash_per_conversion",
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)

	levelsJSON := []byte(`[{"level":1,"percentage":1.5},{"level":2,"percentage":0.75}]`)

	tests := []struct {
		name          string
		mockSetup     func()
		expectErr     bool
		expectedError error
		result        *domain.Settings
	}{
		{
			name: "Reads the settings snapshot",
			mockSetup: func() {
				rows := pgxmock.NewRows(settingsColumns).
					AddRow(3, 3.0, levelsJSON, 3.0, 2.0, 2.0, 10.0, 1.0, 2,
						true, true, 100, 5, true, 50, 25.0)
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WillReturnRows(rows)
			},
			result: &domain.Settings{
				Version:                 3,
				DirectCommissionPercent: 3.0,
				TreeCommissionLevels: []domain.LevelPercent{
					{Level: 1, Percentage: 1.5},
					{Level: 2, Percentage: 0.75},
				},
				TreeCommissionPoolPercent: 3.0,
				TrustFundPercent:          2.0,
				DevelopmentFundPercent:    2.0,
				TotalAllocationPercent:    10.0,
				PointsPerCurrencyUnit:     1.0,
				BranchingFactor:           2,
				VirtualTree: domain.VirtualTreeSettings{
					Enabled:                true,
					AutoCreateEnabled:      true,
					PointsPerVirtualTree:   100,
					MaxVirtualTreesPerUser: 5,
				},
				CashConversion: domain.CashConversionSettings{
					Enabled:             true,
					PointsPerConversion: 50,
					CashPerConversion:   25.0,
				},
			},
		},
		{
			name: "Missing row maps to the sentinel error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WillReturnError(pgx.ErrNoRows)
			},
			expectErr:     true,
			expectedError: ErrSettingsUnavailable,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Malformed levels JSON",
			mockSetup: func() {
				rows := pgxmock.NewRows(settingsColumns).
					AddRow(3, 3.0, []byte(`not json`), 3.0, 2.0, 2.0, 10.0, 1.0, 2,
						true, true, 100, 5, true, 50, 25.0)
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
