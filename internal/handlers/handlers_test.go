package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/GlebRadaev/referralmart/docs"
	"github.com/GlebRadaev/referralmart/internal/handlers/auth"
	"github.com/GlebRadaev/referralmart/internal/handlers/orders"
	"github.com/GlebRadaev/referralmart/internal/service"
	"github.com/GlebRadaev/referralmart/internal/service/pointsservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       auth.NewMockService(ctrl),
		CommissionService: orders.NewMockCommissionService(ctrl),
		PointsService:     &pointsservice.Service{},
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockPointsHandler := NewMockPointsHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().OrderCompleted(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetEarnings(gomock.Any(), gomock.Any()).AnyTimes()
	mockPointsHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockPointsHandler.EXPECT().Convert(gomock.Any(), gomock.Any()).AnyTimes()
	mockPointsHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockPointsHandler.EXPECT().GetCapability(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:   mockAuthHandler,
		OrderHandler:  mockOrderHandler,
		PointsHandler: mockPointsHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/orders/complete", http.StatusOK},
		{"GET", "/api/user/commissions", http.StatusUnauthorized},
		{"GET", "/api/user/points/", http.StatusUnauthorized},
		{"POST", "/api/user/points/convert", http.StatusUnauthorized},
		{"GET", "/api/user/points/transactions", http.StatusUnauthorized},
		{"GET", "/api/user/points/capability", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
