package handler

type createOwnerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"required,min=7"`
	Address   string `json:"address"`
}

// updateOwnerRequest is the partial-update variant: every field is optional
// but, when present, keeps its original constraint.
type updateOwnerRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name"  validate:"omitempty,min=1"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	Phone     *string `json:"phone"      validate:"omitempty,min=7"`
	Address   *string `json:"address"`
}
