package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/referralmart/internal/domain"
	"github.com/GlebRadaev/referralmart/internal/dto"
	"github.com/GlebRadaev/referralmart/internal/service/commissionservice"
	"github.com/GlebRadaev/referralmart/pkg/auth"
	"github.com/GlebRadaev/referralmart/pkg/utils"
	"github.com/GlebRadaev/referralmart/pkg/validate"
)

type CommissionService interface {
	Distribute(ctx context.Context, orderID string, purchaserID int, orderAmount float64) (*domain.CommissionTransaction, error)
	GetEarnings(ctx context.Context, userID int, limit, offset int) ([]domain.CommissionEarning, error)
}
type PointsService interface {
	AwardForOrder(ctx context.Context, userID int, orderID string, orderAmount float64) (int, error)
}

type OrderHandler struct {
	commissionService CommissionService
	pointsService     PointsService
}

func New(commissionService CommissionService, pointsService PointsService) *OrderHandler {
	return &OrderHandler{
		commissionService: commissionService,
		pointsService:     pointsService,
	}
}

// OrderCompleted godoc
//
//	@Summary		Process a completed order
//	@Description	Distribute commission for a paid order and award points to the purchaser. Safe to deliver the same order more than once.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OrderCompletedRequestDTO	true	"Completed order payload"
//	@Success		200		{object}	dto.OrderCompletedResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Purchaser not found"
//	@Failure		422		{object}	utils.Response	"Invalid order number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/complete [post]
func (h *OrderHandler) OrderCompleted(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderCompletedRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if ok := validate.IsLuna(req.Order); !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid order number")
		return
	}

	tx, err := h.commissionService.Distribute(r.Context(), req.Order, req.UserID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, commissionservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, commissionservice.ErrPurchaserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, commissionservice.ErrTooManyConflicts):
			utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	points, err := h.pointsService.AwardForOrder(r.Context(), req.UserID, req.Order, req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var treeTotal float64
	for _, tc := range tx.TreeCommissions {
		treeTotal += tc.Amount
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OrderCompletedResponseDTO{
		Order:            tx.OrderID,
		Status:           tx.Status,
		DirectCommission: tx.DirectAmount,
		TreeCommission:   treeTotal,
		TrustFund:        tx.TrustFundAmount,
		DevelopmentFund:  tx.DevelopmentFundAmount,
		PointsAwarded:    points,
	})
}

// GetEarnings godoc
//
//	@Summary		Get commission earnings history
//	@Description	Direct and tree commission payouts credited to the authenticated user, newest first.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"	default(50)
//	@Param			offset	query		int	false	"Page offset"	default(0)
//	@Success		200		{array}		dto.EarningResponseDTO
//	@Success		204		{object}	utils.Response	"No earnings found"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/commissions [get]
func (h *OrderHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	limit, offset := pagination(r)

	earnings, err := h.commissionService.GetEarnings(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch earnings")
		return
	}
	if len(earnings) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No earnings found")
		return
	}

	response := make([]dto.EarningResponseDTO, len(earnings))
	for i, e := range earnings {
		response[i] = dto.EarningResponseDTO{
			Order:     e.OrderID,
			Kind:      e.Kind,
			Level:     e.Level,
			Amount:    e.Amount,
			CreatedAt: e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 50
	offset = 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
