package contracts

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/dto"
	"github.com/GlebRadaev/gigpay/pkg/auth"
	"github.com/GlebRadaev/gigpay/pkg/utils"
)

//go:generate mockgen -source=contracts.go -destination=mock_contracts.go -package=contracts

type Service interface {
	GetContract(ctx context.Context, id, callerID int) (*domain.Contract, error)
	ListContracts(ctx context.Context, callerID int) ([]domain.Contract, error)
}

type ContractHandler struct {
	contractService Service
}

func New(contractService Service) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// GetContract godoc
//
//	@Summary		Get contract by id
//	@Description	Return the contract if the authenticated profile is its client or contractor.
//	@Tags			Contracts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Contract ID"
//	@Success		200	{object}	dto.ContractResponseDTO	"Contract"
//	@Failure		400	{object}	utils.Response			"Invalid contract id"
//	@Failure		401	{object}	utils.Response			"Profile not authorized"
//	@Failure		403	{object}	utils.Response			"Profile is not a party to the contract"
//	@Failure		404	{object}	utils.Response			"Contract not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/contracts/{id} [get]
func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}

	contract, err := h.contractService.GetContract(r.Context(), id, profile.ID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewContractResponse(*contract))
}

// ListContracts godoc
//
//	@Summary		List contracts
//	@Description	List non-terminated contracts of the authenticated profile.
//	@Tags			Contracts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ContractResponseDTO	"Contracts"
//	@Failure		401	{object}	utils.Response			"Profile not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/contracts [get]
func (h *ContractHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contracts, err := h.contractService.ListContracts(r.Context(), profile.ID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	response := make([]dto.ContractResponseDTO, len(contracts))
	for i, c := range contracts {
		response[i] = dto.NewContractResponse(c)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
