package balance

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/dto"
	"github.com/GlebRadaev/gigpay/pkg/auth"
	"github.com/GlebRadaev/gigpay/pkg/utils"
)

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=balance

type Service interface {
	Deposit(ctx context.Context, clientID int, amount float64) (*domain.Profile, error)
	GetTransactions(ctx context.Context, profileID int) ([]domain.LedgerEntry, error)
}

type BalanceHandler struct {
	balanceService Service
	ownerOnly      bool
}

// New builds the handler. With ownerOnly set a profile may deposit only to itself.
func New(balanceService Service, ownerOnly bool) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		ownerOnly:      ownerOnly,
	}
}

// Deposit godoc
//
//	@Summary		Deposit to a client balance
//	@Description	Add funds to the client balance. A deposit may not exceed 25% of the total price of the client's unpaid jobs.
//	@Tags			Balances
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		int						true	"Client profile ID"
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit payload"
//	@Success		200		{object}	dto.ProfileResponseDTO	"Updated profile"
//	@Failure		400		{object}	utils.Response			"Invalid profile id or amount"
//	@Failure		401		{object}	utils.Response			"Profile not authorized"
//	@Failure		403		{object}	utils.Response			"Deposit to another profile"
//	@Failure		404		{object}	utils.Response			"Profile not found"
//	@Failure		409		{object}	utils.Response			"Deposit exceeds the allowed cap"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/balances/deposit/{userId} [post]
func (h *BalanceHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	clientID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil || clientID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid profile id")
		return
	}
	if h.ownerOnly && clientID != profile.ID {
		utils.RespondWithError(w, http.StatusForbidden, "Deposits are allowed to own balance only")
		return
	}

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := req.Amount.Float64()
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be a number")
		return
	}

	updated, err := h.balanceService.Deposit(r.Context(), clientID, amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProfileResponse(*updated))
}

// GetTransactions godoc
//
//	@Summary		Get balance history
//	@Description	Settlements and deposits that moved money to or from the authenticated profile, newest first.
//	@Tags			Balances
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LedgerEntryResponseDTO	"Balance history"
//	@Failure		401	{object}	utils.Response				"Profile not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/balances/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries, err := h.balanceService.GetTransactions(r.Context(), profile.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.NewLedgerEntryResponse(e)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
