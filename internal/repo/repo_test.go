package repo

import (
	"testing"

	commissionrepo "github.com/GlebRadaev/referralmart/internal/repo/commission-repo"
	pointsrepo "github.com/GlebRadaev/referralmart/internal/repo/points-repo"
	settingsrepo "github.com/GlebRadaev/referralmart/internal/repo/settings-repo"
	userrepo "github.com/GlebRadaev/referralmart/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.CommissionRepo)
	assert.NotNil(t, repo.PointsRepo)
	assert.NotNil(t, repo.SettingsRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &commissionrepo.Repository{}, repo.CommissionRepo)
	assert.IsType(t, &pointsrepo.Repository{}, repo.PointsRepo)
	assert.IsType(t, &settingsrepo.Repository{}, repo.SettingsRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
