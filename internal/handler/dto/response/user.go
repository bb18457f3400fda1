package response

import (
	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{ID: v.ID, Name: v.Name, Email: v.Email, Role: v.Role}
}
