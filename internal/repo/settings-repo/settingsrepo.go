package settingsrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/referralmart/internal/domain"
	"github.com/GlebRadaev/referralmart/internal/pg"
)

var ErrSettingsUnavailable = errors.New("settings unavailable")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Get reads the current settings snapshot. Called fresh at the start of every
// operation; the snapshot is never cached across operations.
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT version, direct_commission_percent, tree_commission_levels, tree_commission_pool_percent,
			trust_fund_percent, development_fund_percent, total_allocation_percent,
			points_per_currency_unit, branching_factor,
			virtual_trees_enabled, auto_create_enabled, points_per_virtual_tree, max_virtual_trees_per_user,
			conversion_enabled, points_per_conversion, cash_per_conversion
		FROM commission_settings
		WHERE id = 1
	`
	var s domain.Settings
	var levelsJSON []byte
	err := r.db.QueryRow(ctx, query).Scan(
		&s.Version, &s.DirectCommissionPercent, &levelsJSON, &s.TreeCommissionPoolPercent,
		&s.TrustFundPercent, &s.DevelopmentFundPercent, &s.TotalAllocationPercent,
		&s.PointsPerCurrencyUnit, &s.BranchingFactor,
		&s.VirtualTree.Enabled, &s.VirtualTree.AutoCreateEnabled,
		&s.VirtualTree.PointsPerVirtualTree, &s.VirtualTree.MaxVirtualTreesPerUser,
		&s.CashConversion.Enabled, &s.CashConversion.PointsPerConversion, &s.CashConversion.CashPerConversion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrSettingsUnavailable
		}
		zap.L().Error("can't read settings", zap.Error(err))
		return nil, err
	}

	if err := json.Unmarshal(levelsJSON, &s.TreeCommissionLevels); err != nil {
		zap.L().Error("can't decode tree commission levels", zap.Error(err))
		return nil, err
	}
	return &s, nil
}
