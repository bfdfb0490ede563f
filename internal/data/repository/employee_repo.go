package repository

import (
	"context"
	"errors"
	"fmt"

	"promoservice/internal/data/entity"
	"promoservice/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EmployeeFilter struct {
	Search     string // matches names, position, department
	Position   string
	Department string
	Status     string
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	FindByID(ctx context.Context, id int64) (*entity.Employee, error)
	FindByNameAndPosition(ctx context.Context, firstName, lastName, position string) (*entity.Employee, error)
	FindAll(ctx context.Context, filter EmployeeFilter, limit, offset int) ([]*entity.Employee, error)
	Count(ctx context.Context, filter EmployeeFilter) (int64, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEmployeeRepository(db database.PgxIface, log *zap.Logger) EmployeeRepository {
	return &employeeRepository{
		db:  db,
		log: log,
	}
}

const employeeColumns = `id, first_name, last_name, position, department, phone, email, hire_date, status, notes, created_at, updated_at`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID,
		&e.FirstName,
		&e.LastName,
		&e.Position,
		&e.Department,
		&e.Phone,
		&e.Email,
		&e.HireDate,
		&e.Status,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (er *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (first_name, last_name, position, department, phone,
		                       email, hire_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := er.db.QueryRow(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Position,
		employee.Department,
		employee.Phone,
		employee.Email,
		employee.HireDate,
		employee.Status,
		employee.Notes,
		employee.CreatedAt,
		employee.UpdatedAt,
	).Scan(&employee.ID)

	if err != nil {
		er.log.Error("Failed to create employee",
			zap.Error(err),
			zap.String("first_name", employee.FirstName),
			zap.String("last_name", employee.LastName),
		)
		return fmt.Errorf("create employee: %w", err)
	}

	return nil
}

func (er *employeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	employee, err := scanEmployee(er.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find employee by ID",
			zap.Error(err),
			zap.Int64("employee_id", id),
		)
		return nil, fmt.Errorf("find employee by ID %d: %w", id, err)
	}

	return employee, nil
}

// FindByNameAndPosition backs the duplicate check on create: the same
// person in the same position counts as one employee.
func (er *employeeRepository) FindByNameAndPosition(ctx context.Context, firstName, lastName, position string) (*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + ` FROM employees
		WHERE first_name ILIKE $1 AND last_name ILIKE $2 AND position ILIKE $3
	`

	employee, err := scanEmployee(er.db.QueryRow(ctx, query, firstName, lastName, position))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find employee by name and position", zap.Error(err))
		return nil, fmt.Errorf("find employee by name and position: %w", err)
	}

	return employee, nil
}

func employeeConds(filter EmployeeFilter) *condBuilder {
	b := &condBuilder{}
	if filter.Search != "" {
		b.add("(first_name ILIKE %s OR last_name ILIKE %s OR position ILIKE %s OR department ILIKE %s)",
			"%"+filter.Search+"%")
	}
	if filter.Position != "" {
		b.add("position ILIKE %s", "%"+filter.Position+"%")
	}
	if filter.Department != "" {
		b.add("department ILIKE %s", "%"+filter.Department+"%")
	}
	if filter.Status != "" {
		b.add("status = %s", filter.Status)
	}
	return b
}

func (er *employeeRepository) FindAll(ctx context.Context, filter EmployeeFilter, limit, offset int) ([]*entity.Employee, error) {
	b := employeeConds(filter)
	query := `SELECT ` + employeeColumns + ` FROM employees` + b.where() +
		` ORDER BY id DESC LIMIT ` + b.next(limit) + ` OFFSET ` + b.next(offset)

	rows, err := er.db.Query(ctx, query, b.args...)
	if err != nil {
		er.log.Error("Failed to list employees", zap.Error(err))
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			er.log.Error("Failed to scan employee row", zap.Error(err))
			return nil, fmt.Errorf("scan employee row: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		er.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate employee rows: %w", err)
	}

	return employees, nil
}

func (er *employeeRepository) Count(ctx context.Context, filter EmployeeFilter) (int64, error) {
	b := employeeConds(filter)
	query := `SELECT COUNT(*) FROM employees` + b.where()

	var count int64
	if err := er.db.QueryRow(ctx, query, b.args...).Scan(&count); err != nil {
		er.log.Error("Failed to count employees", zap.Error(err))
		return 0, fmt.Errorf("count employees: %w", err)
	}

	return count, nil
}

func (er *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, position = $4, department = $5,
		    phone = $6, email = $7, hire_date = $8, status = $9, notes = $10,
		    updated_at = $11
		WHERE id = $1
	`

	result, err := er.db.Exec(ctx, query,
		employee.ID,
		employee.FirstName,
		employee.LastName,
		employee.Position,
		employee.Department,
		employee.Phone,
		employee.Email,
		employee.HireDate,
		employee.Status,
		employee.Notes,
		employee.UpdatedAt,
	)

	if err != nil {
		er.log.Error("Failed to update employee",
			zap.Error(err),
			zap.Int64("employee_id", employee.ID),
		)
		return fmt.Errorf("update employee %d: %w", employee.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (er *employeeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM employees WHERE id = $1`

	result, err := er.db.Exec(ctx, query, id)
	if err != nil {
		er.log.Error("Failed to delete employee",
			zap.Error(err),
			zap.Int64("employee_id", id),
		)
		return fmt.Errorf("delete employee %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
