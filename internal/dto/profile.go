package dto

import (
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
)

// UpdateProfileRequest holds the fields a client may edit on their profile.
type UpdateProfileRequest struct {
	FirstName   string `json:"firstName" binding:"required,max=100"`
	LastName    string `json:"lastName" binding:"required,max=100"`
	Phone       string `json:"phone" binding:"omitempty,e164"`
	Nationality string `json:"nationality" binding:"omitempty,iso3166_1_alpha2"`
	VisaType    string `json:"visaType" binding:"max=100"`
}

// ProfileResponse defines the data returned for a client profile.
type ProfileResponse struct {
	UserID        string    `json:"userID"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	DisplayName   string    `json:"displayName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Nationality   string    `json:"nationality,omitempty"`
	VisaType      string    `json:"visaType,omitempty"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToProfileResponse converts a domain.Profile to ProfileResponse DTO
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:        p.UserID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		DisplayName:   p.DisplayName(),
		Email:         p.Email,
		Phone:         p.Phone,
		Nationality:   p.Nationality,
		VisaType:      p.VisaType,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProfileResponse converts profiles to their DTOs.
func ToListProfileResponse(profiles []domain.Profile) []ProfileResponse {
	res := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		res[i] = ToProfileResponse(&profiles[i])
	}
	return res
}

// ListQuery carries limit/offset paging for admin lists.
type ListQuery struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}
