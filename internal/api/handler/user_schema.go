package handler

// updateUserRequest is the admin patch for a user account. Every field is
// optional; role keeps its enum constraint when present.
type updateUserRequest struct {
	Role      *string `json:"role"      validate:"omitempty,oneof=admin vet receptionist"`
	Active    *bool   `json:"active"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1"`
	Phone     *string `json:"phone"     validate:"omitempty,min=7"`
	Specialty *string `json:"specialty"`
}
