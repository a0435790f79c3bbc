package dto

import (
	"encoding/json"
	"time"

	"github.com/GlebRadaev/gigpay/internal/domain"
)

type DepositRequestDTO struct {
	Amount json.Number `json:"amount" swaggertype:"number" example:"100"`
}

type LedgerEntryResponseDTO struct {
	ID            string    `json:"id" example:"7d3c5b9e-1f0a-4c1e-9a51-0a4c3c1f2b7e"`
	Kind          string    `json:"kind" example:"settlement"`
	JobID         *int      `json:"jobId,omitempty" example:"2"`
	FromProfileID *int      `json:"fromProfileId,omitempty" example:"1"`
	ToProfileID   int       `json:"toProfileId" example:"6"`
	Amount        float64   `json:"amount" example:"201"`
	CreatedAt     time.Time `json:"createdAt" example:"2020-08-15T19:11:26Z"`
}

func NewLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponseDTO {
	return LedgerEntryResponseDTO{
		ID:            e.ID.String(),
		Kind:          string(e.Kind),
		JobID:         e.JobID,
		FromProfileID: e.FromProfileID,
		ToProfileID:   e.ToProfileID,
		Amount:        e.Amount,
		CreatedAt:     e.CreatedAt,
	}
}
