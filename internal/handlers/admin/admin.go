package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/dto"
	"github.com/GlebRadaev/gigpay/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type Service interface {
	BestProfession(ctx context.Context, start, end string) (string, error)
	BestClients(ctx context.Context, start, end string, limit int) ([]domain.ClientPayment, error)
}

type AdminHandler struct {
	reportService Service
}

func New(reportService Service) *AdminHandler {
	return &AdminHandler{
		reportService: reportService,
	}
}

// BestProfession godoc
//
//	@Summary		Best profession
//	@Description	The contractor profession that earned the most from jobs paid within [start, end]. Empty string when nothing was paid.
//	@Tags			Admin
//	@Produce		json
//	@Param			start	query		string			true	"Window start (RFC3339 or YYYY-MM-DD)"
//	@Param			end		query		string			true	"Window end (RFC3339 or YYYY-MM-DD)"
//	@Success		200		{string}	string			"Profession"
//	@Failure		409		{object}	utils.Response	"Invalid date range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/admin/best-profession [get]
func (h *AdminHandler) BestProfession(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	profession, err := h.reportService.BestProfession(r.Context(), q.Get("start"), q.Get("end"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profession)
}

// BestClients godoc
//
//	@Summary		Best clients
//	@Description	Clients that paid the most for jobs paid within [start, end], highest first.
//	@Tags			Admin
//	@Produce		json
//	@Param			start	query		string						true	"Window start (RFC3339 or YYYY-MM-DD)"
//	@Param			end		query		string						true	"Window end (RFC3339 or YYYY-MM-DD)"
//	@Param			limit	query		int							false	"Number of clients"	default(2)
//	@Success		200		{array}		dto.BestClientResponseDTO	"Ranked clients"
//	@Failure		409		{object}	utils.Response				"Invalid date range"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/admin/best-clients [get]
func (h *AdminHandler) BestClients(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	// a missing or non-numeric limit falls back to the default
	limit, _ := strconv.Atoi(q.Get("limit"))

	clients, err := h.reportService.BestClients(r.Context(), q.Get("start"), q.Get("end"), limit)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	response := make([]dto.BestClientResponseDTO, len(clients))
	for i, c := range clients {
		response[i] = dto.BestClientResponseDTO{ID: c.ID, FullName: c.FullName, Paid: c.Paid}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
