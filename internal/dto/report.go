package dto

type BestClientResponseDTO struct {
	ID       int     `json:"id" example:"4"`
	FullName string  `json:"fullName" example:"Ash Kethcum"`
	Paid     float64 `json:"paid" example:"2020"`
}
