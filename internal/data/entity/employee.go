package entity

type Employee struct {
	Base
	FirstName  string  `db:"first_name"`
	LastName   string  `db:"last_name"`
	Position   string  `db:"position"`
	Department *string `db:"department"`
	Phone      *string `db:"phone"`
	Email      *string `db:"email"`
	HireDate   *string `db:"hire_date"`
	Status     string  `db:"status"` // active, inactive, on_leave
	Notes      *string `db:"notes"`
}
