package requests

// Contacts

type CreateContactRequest struct {
	Location   string  `json:"location" validate:"required"`
	Phone      string  `json:"phone" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	ExactEmail *string `json:"exactEmail" validate:"omitempty,email"`
}

type UpdateContactRequest struct {
	Location   *string `json:"location"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email" validate:"omitempty,email"`
	ExactEmail *string `json:"exactEmail" validate:"omitempty,email"`
}
