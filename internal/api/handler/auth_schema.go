package handler

import "github.com/pawdesk/clinic-api/internal/core/domain"

type registerRequest struct {
	Username  string `json:"username"   validate:"required,min=3"`
	Password  string `json:"password"   validate:"required,min=8"`
	Email     string `json:"email"      validate:"required,email"`
	Role      string `json:"role"       validate:"required,oneof=admin vet receptionist"`
	LastName  string `json:"last_name"  validate:"required"`
	Phone     string `json:"phone"      validate:"omitempty,min=7"`
	Specialty string `json:"specialty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type authResponse struct {
	Token string           `json:"token,omitempty"`
	User  *domain.Identity `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
