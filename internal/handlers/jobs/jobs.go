package jobs

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

//go:generate mockgen -source=jobs.go -destination=mock_jobs.go -package=jobs

type Service interface {
	ListUnpaidJobs(ctx context.Context, callerID int) ([]domain.Job, error)
}

type PaymentService interface {
	SettleJobPayment(ctx context.Context, jobID, callerID int) (*domain.Job, error)
}

type JobHandler struct {
	jobService     Service
	paymentService PaymentService
}

func New(jobService Service, paymentService PaymentService) *JobHandler {
	return &JobHandler{
		jobService:     jobService,
		paymentService: paymentService,
	}
}

// ListUnpaid godoc
//
//	@Summary		List unpaid jobs
//	@Description	List unpaid jobs of in-progress contracts of the authenticated profile.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.JobResponseDTO	"Unpaid jobs"
//	@Failure		401	{object}	utils.Response		"Profile not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/jobs/unpaid [get]
func (h *JobHandler) ListUnpaid(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := h.jobService.ListUnpaidJobs(r.Context(), profile.ID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	response := make([]dto.JobResponseDTO, len(jobs))
	for i, j := range jobs {
		response[i] = dto.NewJobResponse(j)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Pay godoc
//
//	@Summary		Pay for a job
//	@Description	Move the job price from the client balance to the contractor balance. Only the client of the job may pay, and only once.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int					true	"Job ID"
//	@Success		200	{object}	dto.JobResponseDTO	"Paid job"
//	@Failure		400	{object}	utils.Response		"Invalid job id"
//	@Failure		401	{object}	utils.Response		"Profile not authorized"
//	@Failure		403	{object}	utils.Response		"Profile is not the client of the job"
//	@Failure		404	{object}	utils.Response		"Job not found"
//	@Failure		409	{object}	utils.Response		"Job already paid or insufficient funds"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Failure		503	{object}	utils.Response		"Settlement timed out, retry later"
//	@Router			/jobs/{id}/pay [post]
func (h *JobHandler) Pay(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || jobID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := h.paymentService.SettleJobPayment(r.Context(), jobID, profile.ID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewJobResponse(*job))
}
