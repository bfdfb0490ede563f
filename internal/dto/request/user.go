package request

type UserCreateRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role" validate:"omitempty,oneof=director manager employee warehouse admin"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

type UserUpdateRequest struct {
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=director manager employee warehouse admin"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
