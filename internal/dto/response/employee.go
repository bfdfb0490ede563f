package response

import (
	"time"

	"promoservice/internal/data/entity"
)

type EmployeeResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Position   string    `json:"position"`
	Department *string   `json:"department,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Email      *string   `json:"email,omitempty"`
	HireDate   *string   `json:"hire_date,omitempty"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func EmployeeToResponse(employee *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         employee.ID,
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		Position:   employee.Position,
		Department: employee.Department,
		Phone:      employee.Phone,
		Email:      employee.Email,
		HireDate:   employee.HireDate,
		Status:     employee.Status,
		Notes:      employee.Notes,
		CreatedAt:  employee.CreatedAt,
		UpdatedAt:  employee.UpdatedAt,
	}
}

func EmployeesToResponse(employees []*entity.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, EmployeeToResponse(e))
	}
	return out
}
