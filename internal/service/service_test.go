package service

import (
	"testing"

	"github.com/GlebRadaev/referralmart/internal/pg"
	"github.com/GlebRadaev/referralmart/internal/repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)

	services := New(repos, txManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.TreeService)
	assert.NotNil(t, services.CommissionService)
	assert.NotNil(t, services.PointsService)
}
