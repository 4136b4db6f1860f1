package points

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/referralmart/internal/domain"
	"github.com/GlebRadaev/referralmart/internal/dto"
	"github.com/GlebRadaev/referralmart/internal/service/pointsservice"
	"github.com/GlebRadaev/referralmart/pkg/auth"
	"github.com/GlebRadaev/referralmart/pkg/utils"
)

func NewMock(t *testing.T) (*PointsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, url string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.PointsBalanceResponseDTO
	}{
		{
			name: "Balance returned",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(&domain.User{
					ID:                      1,
					PointsWallet:            60,
					TotalPointsEarned:       260,
					VirtualReferralsCreated: 2,
					WalletCash:              125.5,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.PointsBalanceResponseDTO{
				PointsWallet:            60,
				TotalPointsEarned:       260,
				VirtualReferralsCreated: 2,
				WalletCash:              125.5,
			},
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(nil, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.GetBalance(rr, authedRequest("GET", "/api/user/points", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != nil {
				var resp dto.PointsBalanceResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
		})
	}
}

func TestConvertHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful conversion",
			body: `{"points":50}`,
			prepareMock: func() {
				service.EXPECT().ConvertPointsToCash(gomock.Any(), 1, 50).Return(25.0, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Non-positive amount",
			body: `{"points":0}`,
			prepareMock: func() {
				service.EXPECT().ConvertPointsToCash(gomock.Any(), 1, 0).Return(0.0, pointsservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "points amount must be positive",
		},
		{
			name: "Insufficient points",
			body: `{"points":500}`,
			prepareMock: func() {
				service.EXPECT().ConvertPointsToCash(gomock.Any(), 1, 500).Return(0.0, pointsservice.ErrInsufficientPoints)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient points",
		},
		{
			name: "Conversion disabled",
			body: `{"points":50}`,
			prepareMock: func() {
				service.EXPECT().ConvertPointsToCash(gomock.Any(), 1, 50).Return(0.0, pointsservice.ErrConversionDisabled)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "cash conversion is disabled",
		},
		{
			name: "Amount not a multiple of the increment",
			body: `{"points":70}`,
			prepareMock: func() {
				service.EXPECT().ConvertPointsToCash(gomock.Any(), 1, 70).Return(0.0, &pointsservice.InvalidIncrementError{
					PointsPerConversion: 50,
					MaxConvertible:      100,
				})
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "points must be a multiple of 50 (largest convertible amount: 100)",
		},
		{
			name: "Service error",
			body: `{"points":50}`,
			prepareMock: func() {
				service.EXPECT().ConvertPointsToCash(gomock.Any(), 1, 50).Return(0.0, assert.AnError)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Convert(rr, authedRequest("POST", "/api/user/points/convert", []byte(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()
	order := "100"

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Transactions returned",
			url:  "/api/user/points/transactions",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1, 50, 0).Return([]domain.PointsTransaction{
					{ID: 7, UserID: 1, Type: domain.PointsEarned, Points: 260, BalanceAfter: 260, SourceOrderID: &order, CreatedAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Pagination parameters forwarded",
			url:  "/api/user/points/transactions?limit=5&offset=10",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1, 5, 10).Return([]domain.PointsTransaction{
					{ID: 7, UserID: 1, Type: domain.PointsEarned, Points: 260, BalanceAfter: 260, CreatedAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No transactions",
			url:  "/api/user/points/transactions",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1, 50, 0).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Service error",
			url:  "/api/user/points/transactions",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1, 50, 0).Return(nil, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.GetTransactions(rr, authedRequest("GET", tt.url, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetCapabilityHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ProjectCapability(gomock.Any(), 1).Return(&domain.Capability{
		PointsWallet:      60,
		VirtualTrees:      0,
		ConvertiblePoints: 50,
		ConvertibleCash:   25.0,
	}, nil)

	rr := httptest.NewRecorder()
	handler.GetCapability(rr, authedRequest("GET", "/api/user/points/capability", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.CapabilityResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 60, resp.PointsWallet)
	assert.Equal(t, 0, resp.VirtualTrees)
	assert.Equal(t, 50, resp.ConvertiblePoints)
	assert.Equal(t, 25.0, resp.ConvertibleCash)
}
