package request

type EmployeeRequest struct {
	FirstName  string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName   string  `json:"last_name" validate:"required,min=1,max=100"`
	Position   string  `json:"position" validate:"required,min=1,max=100"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	HireDate   *string `json:"hire_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status     string  `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
	Notes      *string `json:"notes,omitempty"`
}

type EmployeeUpdateRequest struct {
	FirstName  *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName   *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Position   *string `json:"position,omitempty" validate:"omitempty,min=1,max=100"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	HireDate   *string `json:"hire_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive on_leave"`
	Notes      *string `json:"notes,omitempty"`
}
