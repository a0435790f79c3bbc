package dto

import "github.com/GlebRadaev/gigpay/internal/domain"

type ProfileResponseDTO struct {
	ID         int     `json:"id" example:"1"`
	FirstName  string  `json:"firstName" example:"Harry"`
	LastName   string  `json:"lastName" example:"Potter"`
	Profession string  `json:"profession" example:"Wizard"`
	Balance    float64 `json:"balance" example:"1150"`
	Role       string  `json:"type" example:"client"`
}

func NewProfileResponse(p domain.Profile) ProfileResponseDTO {
	return ProfileResponseDTO{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Profession: p.Profession,
		Balance:    p.Balance,
		Role:       string(p.Role),
	}
}
