package request

type ClientRequest struct {
	FullName    string  `json:"full_name" validate:"required,min=1,max=200"`
	Phone       string  `json:"phone" validate:"required,min=5,max=20"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	SocialMedia *string `json:"social_media,omitempty" validate:"omitempty,max=200"`
	Notes       *string `json:"notes,omitempty"`
}

type ClientUpdateRequest struct {
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	SocialMedia *string `json:"social_media,omitempty" validate:"omitempty,max=200"`
	Notes       *string `json:"notes,omitempty"`
}
