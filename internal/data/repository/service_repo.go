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

type ServiceFilter struct {
	Search   string // matches name, category, description
	Category string
}

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id int64) (*entity.Service, error)
	FindByName(ctx context.Context, name string) (*entity.Service, error)
	FindAll(ctx context.Context, filter ServiceFilter, limit, offset int) ([]*entity.Service, error)
	Count(ctx context.Context, filter ServiceFilter) (int64, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id int64) error
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log,
	}
}

const serviceColumns = `id, name, category, price, description, duration_minutes, notes, created_at, updated_at`

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Category,
		&s.Price,
		&s.Description,
		&s.DurationMinutes,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (sr *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (name, category, price, description, duration_minutes, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := sr.db.QueryRow(ctx, query,
		service.Name,
		service.Category,
		service.Price,
		service.Description,
		service.DurationMinutes,
		service.Notes,
		service.CreatedAt,
		service.UpdatedAt,
	).Scan(&service.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		sr.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("name", service.Name),
		)
		return fmt.Errorf("create service: %w", err)
	}

	return nil
}

func (sr *serviceRepository) FindByID(ctx context.Context, id int64) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	service, err := scanService(sr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.Int64("service_id", id),
		)
		return nil, fmt.Errorf("find service by ID %d: %w", id, err)
	}

	return service, nil
}

func (sr *serviceRepository) FindByName(ctx context.Context, name string) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE name ILIKE $1`

	service, err := scanService(sr.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find service by name", zap.Error(err))
		return nil, fmt.Errorf("find service by name: %w", err)
	}

	return service, nil
}

func serviceConds(filter ServiceFilter) *condBuilder {
	b := &condBuilder{}
	if filter.Search != "" {
		b.add("(name ILIKE %s OR category ILIKE %s OR description ILIKE %s)",
			"%"+filter.Search+"%")
	}
	if filter.Category != "" {
		b.add("category ILIKE %s", "%"+filter.Category+"%")
	}
	return b
}

func (sr *serviceRepository) FindAll(ctx context.Context, filter ServiceFilter, limit, offset int) ([]*entity.Service, error) {
	b := serviceConds(filter)
	query := `SELECT ` + serviceColumns + ` FROM services` + b.where() +
		` ORDER BY id DESC LIMIT ` + b.next(limit) + ` OFFSET ` + b.next(offset)

	rows, err := sr.db.Query(ctx, query, b.args...)
	if err != nil {
		sr.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			sr.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}

	return services, nil
}

func (sr *serviceRepository) Count(ctx context.Context, filter ServiceFilter) (int64, error) {
	b := serviceConds(filter)
	query := `SELECT COUNT(*) FROM services` + b.where()

	var count int64
	if err := sr.db.QueryRow(ctx, query, b.args...).Scan(&count); err != nil {
		sr.log.Error("Failed to count services", zap.Error(err))
		return 0, fmt.Errorf("count services: %w", err)
	}

	return count, nil
}

func (sr *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	query := `
		UPDATE services
		SET name = $2, category = $3, price = $4, description = $5,
		    duration_minutes = $6, notes = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := sr.db.Exec(ctx, query,
		service.ID,
		service.Name,
		service.Category,
		service.Price,
		service.Description,
		service.DurationMinutes,
		service.Notes,
		service.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		sr.log.Error("Failed to update service",
			zap.Error(err),
			zap.Int64("service_id", service.ID),
		)
		return fmt.Errorf("update service %d: %w", service.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (sr *serviceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM services WHERE id = $1`

	result, err := sr.db.Exec(ctx, query, id)
	if err != nil {
		sr.log.Error("Failed to delete service",
			zap.Error(err),
			zap.Int64("service_id", id),
		)
		return fmt.Errorf("delete service %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
