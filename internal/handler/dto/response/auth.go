package response

import (
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

func FromAuthorizedUserRM(rm *readmodel.AuthorizedUserRM) *UserResponse {
	return &UserResponse{
		ID:        rm.ID,
		Email:     rm.Email,
		FirstName: rm.FirstName,
		LastName:  rm.LastName,
		Role:      rm.Role,
		IsActive:  rm.IsActive,
	}
}
