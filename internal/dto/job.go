package dto

import (
	"time"

	"github.com/GlebRadaev/gigpay/internal/domain"
)

type JobResponseDTO struct {
	ID          int        `json:"id" example:"2"`
	Description string     `json:"description" example:"work"`
	Price       float64    `json:"price" example:"201"`
	Paid        bool       `json:"paid" example:"false"`
	PaymentDate *time.Time `json:"paymentDate" example:"2020-08-15T19:11:26Z"`
	ContractID  int        `json:"contractId" example:"2"`
	CreatedAt   time.Time  `json:"createdAt" example:"2020-08-10T19:11:26Z"`
	UpdatedAt   time.Time  `json:"updatedAt" example:"2020-08-10T19:11:26Z"`
}

func NewJobResponse(j domain.Job) JobResponseDTO {
	return JobResponseDTO{
		ID:          j.ID,
		Description: j.Description,
		Price:       j.Price,
		Paid:        j.Paid,
		PaymentDate: j.PaymentDate,
		ContractID:  j.ContractID,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}
