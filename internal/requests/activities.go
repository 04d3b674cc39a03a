package requests

// Management systems

type CreateManagementSystemRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Pdf         *string `json:"pdf"`
}

type UpdateManagementSystemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Pdf         *string `json:"pdf"`
}
