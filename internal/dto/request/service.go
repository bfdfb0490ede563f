package request

type ServiceRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=200"`
	Category        string  `json:"category" validate:"required,min=1,max=100"`
	Price           float64 `json:"price" validate:"min=0"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	Notes           *string `json:"notes,omitempty"`
}

type ServiceUpdateRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category        *string  `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	Notes           *string  `json:"notes,omitempty"`
}
