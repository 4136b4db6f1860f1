package points

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/referralmart/internal/domain"
	"github.com/GlebRadaev/referralmart/internal/dto"
	"github.com/GlebRadaev/referralmart/internal/service/pointsservice"
	"github.com/GlebRadaev/referralmart/pkg/auth"
	"github.com/GlebRadaev/referralmart/pkg/utils"
)

type Service interface {
	GetUser(ctx context.Context, userID int) (*domain.User, error)
	ConvertPointsToCash(ctx context.Context, userID int, points int) (float64, error)
	GetTransactions(ctx context.Context, userID int, limit, offset int) ([]domain.PointsTransaction, error)
	ProjectCapability(ctx context.Context, userID int) (*domain.Capability, error)
}

type PointsHandler struct {
	pointsService Service
}

func New(pointsService Service) *PointsHandler {
	return &PointsHandler{
		pointsService: pointsService,
	}
}

// GetBalance godoc
//
//	@Summary		Get points and cash balances
//	@Description	Current points wallet, lifetime points earned, virtual referrals minted and settled cash balance.
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PointsBalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/points [get]
func (h *PointsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.pointsService.GetUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PointsBalanceResponseDTO{
		PointsWallet:            user.PointsWallet,
		TotalPointsEarned:       user.TotalPointsEarned,
		VirtualReferralsCreated: user.VirtualReferralsCreated,
		WalletCash:              user.WalletCash,
	})
}

// Convert godoc
//
//	@Summary		Convert points to cash
//	@Description	Exchange banked points for wallet cash. The amount must be an exact multiple of the conversion increment.
//	@Tags			Points
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConvertRequestDTO	true	"Conversion request payload"
//	@Success		200		{object}	dto.ConvertResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient points"
//	@Failure		409		{object}	utils.Response	"Conversion disabled"
//	@Failure		422		{object}	utils.Response	"Amount not a multiple of the conversion increment"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/points/convert [post]
func (h *PointsHandler) Convert(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ConvertRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cash, err := h.pointsService.ConvertPointsToCash(r.Context(), userID, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, pointsservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, pointsservice.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, pointsservice.ErrConversionDisabled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, pointsservice.ErrInvalidIncrement):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConvertResponseDTO{
		Cash:    cash,
		Message: "conversion successful",
	})
}

// GetTransactions godoc
//
//	@Summary		Get points ledger history
//	@Description	Append-only points transactions for the authenticated user, newest first.
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"	default(50)
//	@Param			offset	query		int	false	"Page offset"	default(0)
//	@Success		200		{array}		dto.PointsTransactionResponseDTO
//	@Success		204		{object}	utils.Response	"No transactions found"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/points/transactions [get]
func (h *PointsHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	limit, offset := pagination(r)

	txs, err := h.pointsService.GetTransactions(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions found")
		return
	}

	response := make([]dto.PointsTransactionResponseDTO, len(txs))
	for i, tx := range txs {
		item := dto.PointsTransactionResponseDTO{
			Type:         string(tx.Type),
			Points:       tx.Points,
			CashAmount:   tx.CashAmount,
			BalanceAfter: tx.BalanceAfter,
			CreatedAt:    tx.CreatedAt,
		}
		if tx.SourceOrderID != nil {
			item.Order = *tx.SourceOrderID
		}
		response[i] = item
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCapability godoc
//
//	@Summary		Get points capability projection
//	@Description	How many virtual referrals and how much cash the current points wallet could yield right now. Pure projection, nothing is mutated.
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CapabilityResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/points/capability [get]
func (h *PointsHandler) GetCapability(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	capability, err := h.pointsService.ProjectCapability(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CapabilityResponseDTO{
		PointsWallet:      capability.PointsWallet,
		VirtualTrees:      capability.VirtualTrees,
		ConvertiblePoints: capability.ConvertiblePoints,
		ConvertibleCash:   capability.ConvertibleCash,
	})
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
