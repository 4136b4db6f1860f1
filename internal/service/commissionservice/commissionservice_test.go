package commissionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/referralmart/internal/domain"
	"github.com/GlebRadaev/referralmart/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockCommissionRepo, *MockSettingsRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	commissionRepo := NewMockCommissionRepo(ctrl)
	settingsRepo := NewMockSettingsRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(userRepo, commissionRepo, settingsRepo, txManager)
	defer ctrl.Finish()
	return service, userRepo, commissionRepo, settingsRepo, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
}

func testSettings() *domain.Settings {
	return &domain.Settings{
		DirectCommissionPercent: 3,
		TreeCommissionLevels: []domain.LevelPercent{
			{Level: 1, Percentage: 1.5},
			{Level: 2, Percentage: 0.75},
			{Level: 3, Percentage: 0.375},
			{Level: 4, Percentage: 0.1875},
			{Level: 5, Percentage: 0.09375},
		},
		TreeCommissionPoolPercent: 3,
		TrustFundPercent:          2,
		DevelopmentFundPercent:    2,
		TotalAllocationPercent:    10,
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestDistributeInvalidAmount(t *testing.T) {
	service, _, _, _, _ := NewMock(t)

	result, err := service.Distribute(context.Background(), "100", 1, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Nil(t, result)
}

func TestDistributeIdempotent(t *testing.T) {
	service, _, commissionRepo, _, txManager := NewMock(t)
	passThroughTx(txManager)

	existing := &domain.CommissionTransaction{
		ID:          5,
		OrderID:     "100",
		PurchaserID: 1,
		OrderAmount: 1000,
		Status:      domain.CommissionStatusCompleted,
	}
	commissionRepo.EXPECT().FindByOrderID(gomock.Any(), "100").Return(existing, nil)

	result, err := service.Distribute(context.Background(), "100", 1, 1000)
	assert.NoError(t, err)
	assert.Equal(t, existing, result)
}

func TestDistributeNoRecipients(t *testing.T) {
	service, userRepo, commissionRepo, settingsRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	// Purchaser is a tree root without a referrer: everything except the
	// development fund lands in the trust fund.
	commissionRepo.EXPECT().FindByOrderID(gomock.Any(), "100").Return(nil, nil)
	settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Kind: domain.UserKindReal}, nil)
	commissionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Distribute(context.Background(), "100", 1, 1000)
	assert.NoError(t, err)
	assert.Nil(t, result.DirectRecipientID)
	assert.Equal(t, 0.0, result.DirectAmount)
	assert.Empty(t, result.TreeCommissions)
	assert.Equal(t, 20.0, result.DevelopmentFundAmount)
	assert.Equal(t, 80.0, result.TrustFundAmount)
	assert.Equal(t, domain.CommissionStatusCompleted, result.Status)
}

func TestDistributeFullChain(t *testing.T) {
	service, userRepo, commissionRepo, settingsRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	purchaser := &domain.User{
		ID:           1,
		Kind:         domain.UserKindReal,
		ReferredBy:   strPtr("USR-AAAAAA"),
		TreeParentID: intPtr(20),
	}

	commissionRepo.EXPECT().FindByOrderID(gomock.Any(), "100").Return(nil, nil)
	settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(purchaser, nil)

	userRepo.EXPECT().FindByReferralCode(gomock.Any(), "USR-AAAAAA").Return(&domain.User{ID: 10, Kind: domain.UserKindReal}, nil)
	userRepo.EXPECT().CreditWalletCash(gomock.Any(), 10, 30.0).Return(nil)

	userRepo.EXPECT().FindByID(gomock.Any(), 20).Return(&domain.User{ID: 20, Kind: domain.UserKindReal, TreeParentID: intPtr(30)}, nil)
	userRepo.EXPECT().CreditWalletCash(gomock.Any(), 20, 15.0).Return(nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 30).Return(&domain.User{ID: 30, Kind: domain.UserKindReal}, nil)
	userRepo.EXPECT().CreditWalletCash(gomock.Any(), 30, 7.5).Return(nil)

	commissionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Distribute(context.Background(), "100", 1, 1000)
	assert.NoError(t, err)
	assert.Equal(t, intPtr(10), result.DirectRecipientID)
	assert.Equal(t, 30.0, result.DirectAmount)
	assert.Equal(t, []domain.TreeCommission{
		{RecipientID: 20, Level: 1, Percentage: 1.5, Amount: 15.0},
		{RecipientID: 30, Level: 2, Percentage: 0.75, Amount: 7.5},
	}, result.TreeCommissions)
	assert.Equal(t, 20.0, result.DevelopmentFundAmount)
	assert.Equal(t, 27.5, result.TrustFundAmount)

	// The four buckets always add up to the total allocation.
	var treeTotal float64
	for _, row := range result.TreeCommissions {
		treeTotal += row.Amount
	}
	assert.InDelta(t, 100.0, result.DirectAmount+treeTotal+result.TrustFundAmount+result.DevelopmentFundAmount, 1e-9)
}

func TestDistributeVirtualAncestorPaysOwner(t *testing.T) {
	service, userRepo, commissionRepo, settingsRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	purchaser := &domain.User{ID: 1, Kind: domain.UserKindReal, TreeParentID: intPtr(20)}

	commissionRepo.EXPECT().FindByOrderID(gomock.Any(), "100").Return(nil, nil)
	settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(purchaser, nil)

	// Level 1 is held by a virtual user: the payout goes to its owner.
	userRepo.EXPECT().FindByID(gomock.Any(), 20).Return(&domain.User{
		ID:              20,
		Kind:            domain.UserKindVirtual,
		OriginalOwnerID: intPtr(40),
	}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 40).Return(&domain.User{ID: 40, Kind: domain.UserKindReal}, nil)
	userRepo.EXPECT().CreditWalletCash(gomock.Any(), 40, 15.0).Return(nil)

	commissionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Distribute(context.Background(), "100", 1, 1000)
	assert.NoError(t, err)
	assert.Equal(t, []domain.TreeCommission{
		{RecipientID: 40, Level: 1, Percentage: 1.5, Amount: 15.0},
	}, result.TreeCommissions)
}

func TestDistributeVirtualAncestorWithoutOwnerSkipsLevel(t *testing.T) {
	service, userRepo, commissionRepo, settingsRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	purchaser := &domain.User{ID: 1, Kind: domain.UserKindReal, TreeParentID: intPtr(20)}

	commissionRepo.EXPECT().FindByOrderID(gomock.Any(), "100").Return(nil, nil)
	settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(purchaser, nil)

	// Level 1 is unpayable but the walk continues at level 2 with the
	// virtual user's parent.
	userRepo.EXPECT().FindByID(gomock.Any(), 20).Return(&domain.User{
		ID:           20,
		Kind:         domain.UserKindVirtual,
		TreeParentID: intPtr(30),
	}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 30).Return(&domain.User{ID: 30, Kind: domain.UserKindReal}, nil)
	userRepo.EXPECT().CreditWalletCash(gomock.Any(), 30, 7.5).Return(nil)

	commissionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Distribute(context.Background(), "100", 1, 1000)
	assert.NoError(t, err)
	assert.Equal(t, []domain.TreeCommission{
		{RecipientID: 30, Level: 2, Percentage: 0.75, Amount: 7.5},
	}, result.TreeCommissions)
}

func TestDistributeMissingAncestorEndsWalk(t *testing.T) {
	service, userRepo, commissionRepo, settingsRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	purchaser := &domain.User{ID: 1, Kind: domain.UserKindReal, TreeParentID: intPtr(20)}

	commissionRepo.EXPECT().FindByOrderID(gomock.Any(), "100").Return(nil, nil)
	settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(purchaser, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 20).Return(nil, nil)
	commissionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Distribute(context.Background(), "100", 1, 1000)
	assert.NoError(t, err)
	assert.Empty(t, result.TreeCommissions)
	assert.Equal(t, 80.0, result.TrustFundAmount)
}

func TestDistributePoolCap(t *testing.T) {
	service, userRepo, commissionRepo, settingsRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	settings := testSettings()
	settings.TreeCommissionPoolPercent = 1.5

	purchaser := &domain.User{ID: 1, Kind: domain.UserKindReal, TreeParentID: intPtr(20)}

	commissionRepo.EXPECT().FindByOrderID(gomock.Any(), "100").Return(nil, nil)
	settingsRepo.EXPECT().Get(gomock.Any()).Return(settings, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(purchaser, nil)

	// Level 1 exhausts the pool; level 2 would exceed it and ends the walk.
	userRepo.EXPECT().FindByID(gomock.Any(), 20).Return(&domain.User{ID: 20, Kind: domain.UserKindReal, TreeParentID: intPtr(30)}, nil)
	userRepo.EXPECT().CreditWalletCash(gomock.Any(), 20, 15.0).Return(nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 30).Return(&domain.User{ID: 30, Kind: domain.UserKindReal}, nil)

	commissionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Distribute(context.Background(), "100", 1, 1000)
	assert.NoError(t, err)
	assert.Equal(t, []domain.TreeCommission{
		{RecipientID: 20, Level: 1, Percentage: 1.5, Amount: 15.0},
	}, result.TreeCommissions)
}

func TestDistributeVirtualDirectReferrerGoesToTrust(t *testing.T) {
	service, userRepo, commissionRepo, settingsRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	purchaser := &domain.User{ID: 1, Kind: domain.UserKindReal, ReferredBy: strPtr("VRT-AAAAAA")}

	commissionRepo.EXPECT().FindByOrderID(gomock.Any(), "100").Return(nil, nil)
	settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(purchaser, nil)
	userRepo.EXPECT().FindByReferralCode(gomock.Any(), "VRT-AAAAAA").Return(&domain.User{ID: 50, Kind: domain.UserKindVirtual}, nil)
	commissionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Distribute(context.Background(), "100", 1, 1000)
	assert.NoError(t, err)
	assert.Nil(t, result.DirectRecipientID)
	assert.Equal(t, 0.0, result.DirectAmount)
	assert.Equal(t, 80.0, result.TrustFundAmount)
}

func TestDistributePurchaserNotFound(t *testing.T) {
	service, userRepo, commissionRepo, settingsRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	commissionRepo.EXPECT().FindByOrderID(gomock.Any(), "100").Return(nil, nil)
	settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

	result, err := service.Distribute(context.Background(), "100", 99, 1000)
	assert.ErrorIs(t, err, ErrPurchaserNotFound)
	assert.Nil(t, result)
}

func TestDistributeRetries(t *testing.T) {
	service, _, _, _, txManager := NewMock(t)

	conflict := &pgconn.PgError{Code: "40001"}
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(conflict).Times(3)

	result, err := service.Distribute(context.Background(), "100", 1, 1000)
	assert.ErrorIs(t, err, ErrTooManyConflicts)
	assert.Nil(t, result)
}

func TestDistributeNonRetryableError(t *testing.T) {
	service, _, _, _, txManager := NewMock(t)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	result, err := service.Distribute(context.Background(), "100", 1, 1000)
	assert.Error(t, err)
	assert.Equal(t, "db down", err.Error())
	assert.Nil(t, result)
}

func TestGetEarnings(t *testing.T) {
	service, _, commissionRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.CommissionEarning
		expectedError error
	}{
		{
			name: "Retrieve earnings successfully",
			prepareMock: func() {
				commissionRepo.EXPECT().ListEarningsByUser(gomock.Any(), 1, 10, 0).Return([]domain.CommissionEarning{
					{OrderID: "100", Kind: "direct", Amount: 30.0},
					{OrderID: "200", Kind: "tree", Level: 2, Amount: 7.5},
				}, nil)
			},
			expected: []domain.CommissionEarning{
				{OrderID: "100", Kind: "direct", Amount: 30.0},
				{OrderID: "200", Kind: "tree", Level: 2, Amount: 7.5},
			},
			expectedError: nil,
		},
		{
			name: "Error retrieving earnings",
			prepareMock: func() {
				commissionRepo.EXPECT().ListEarningsByUser(gomock.Any(), 1, 10, 0).Return(nil, errors.New("db error"))
			},
			expected:      nil,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			earnings, err := service.GetEarnings(context.Background(), 1, 10, 0)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, earnings)
			}
		})
	}
}
