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

type EquipmentFilter struct {
	Search string // matches name, type, model, serial number
	Type   string
	Status string
}

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *entity.Equipment) error
	FindByID(ctx context.Context, id int64) (*entity.Equipment, error)
	FindBySerialNumber(ctx context.Context, serialNumber string) (*entity.Equipment, error)
	FindAll(ctx context.Context, filter EquipmentFilter, limit, offset int) ([]*entity.Equipment, error)
	Count(ctx context.Context, filter EquipmentFilter) (int64, error)
	Update(ctx context.Context, equipment *entity.Equipment) error
	Delete(ctx context.Context, id int64) error
}

type equipmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEquipmentRepository(db database.PgxIface, log *zap.Logger) EquipmentRepository {
	return &equipmentRepository{
		db:  db,
		log: log,
	}
}

const equipmentColumns = `id, name, equipment_type, model, serial_number, purchase_date, status, location, notes, created_at, updated_at`

func scanEquipment(row pgx.Row) (*entity.Equipment, error) {
	var e entity.Equipment
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.EquipmentType,
		&e.Model,
		&e.SerialNumber,
		&e.PurchaseDate,
		&e.Status,
		&e.Location,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (er *equipmentRepository) Create(ctx context.Context, equipment *entity.Equipment) error {
	query := `
		INSERT INTO equipment (name, equipment_type, model, serial_number, purchase_date,
		                       status, location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := er.db.QueryRow(ctx, query,
		equipment.Name,
		equipment.EquipmentType,
		equipment.Model,
		equipment.SerialNumber,
		equipment.PurchaseDate,
		equipment.Status,
		equipment.Location,
		equipment.Notes,
		equipment.CreatedAt,
		equipment.UpdatedAt,
	).Scan(&equipment.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		er.log.Error("Failed to create equipment",
			zap.Error(err),
			zap.String("name", equipment.Name),
		)
		return fmt.Errorf("create equipment: %w", err)
	}

	return nil
}

func (er *equipmentRepository) FindByID(ctx context.Context, id int64) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`

	equipment, err := scanEquipment(er.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find equipment by ID",
			zap.Error(err),
			zap.Int64("equipment_id", id),
		)
		return nil, fmt.Errorf("find equipment by ID %d: %w", id, err)
	}

	return equipment, nil
}

func (er *equipmentRepository) FindBySerialNumber(ctx context.Context, serialNumber string) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE serial_number = $1`

	equipment, err := scanEquipment(er.db.QueryRow(ctx, query, serialNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find equipment by serial number", zap.Error(err))
		return nil, fmt.Errorf("find equipment by serial number: %w", err)
	}

	return equipment, nil
}

func equipmentConds(filter EquipmentFilter) *condBuilder {
	b := &condBuilder{}
	if filter.Search != "" {
		b.add("(name ILIKE %s OR equipment_type ILIKE %s OR model ILIKE %s OR serial_number ILIKE %s)",
			"%"+filter.Search+"%")
	}
	if filter.Type != "" {
		b.add("equipment_type ILIKE %s", "%"+filter.Type+"%")
	}
	if filter.Status != "" {
		b.add("status = %s", filter.Status)
	}
	return b
}

func (er *equipmentRepository) FindAll(ctx context.Context, filter EquipmentFilter, limit, offset int) ([]*entity.Equipment, error) {
	b := equipmentConds(filter)
	query := `SELECT ` + equipmentColumns + ` FROM equipment` + b.where() +
		` ORDER BY id DESC LIMIT ` + b.next(limit) + ` OFFSET ` + b.next(offset)

	rows, err := er.db.Query(ctx, query, b.args...)
	if err != nil {
		er.log.Error("Failed to list equipment", zap.Error(err))
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var items []*entity.Equipment
	for rows.Next() {
		item, err := scanEquipment(rows)
		if err != nil {
			er.log.Error("Failed to scan equipment row", zap.Error(err))
			return nil, fmt.Errorf("scan equipment row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		er.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate equipment rows: %w", err)
	}

	return items, nil
}

func (er *equipmentRepository) Count(ctx context.Context, filter EquipmentFilter) (int64, error) {
	b := equipmentConds(filter)
	query := `SELECT COUNT(*) FROM equipment` + b.where()

	var count int64
	if err := er.db.QueryRow(ctx, query, b.args...).Scan(&count); err != nil {
		er.log.Error("Failed to count equipment", zap.Error(err))
		return 0, fmt.Errorf("count equipment: %w", err)
	}

	return count, nil
}

func (er *equipmentRepository) Update(ctx context.Context, equipment *entity.Equipment) error {
	query := `
		UPDATE equipment
		SET name = $2, equipment_type = $3, model = $4, serial_number = $5,
		    purchase_date = $6, status = $7, location = $8, notes = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := er.db.Exec(ctx, query,
		equipment.ID,
		equipment.Name,
		equipment.EquipmentType,
		equipment.Model,
		equipment.SerialNumber,
		equipment.PurchaseDate,
		equipment.Status,
		equipment.Location,
		equipment.Notes,
		equipment.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		er.log.Error("Failed to update equipment",
			zap.Error(err),
			zap.Int64("equipment_id", equipment.ID),
		)
		return fmt.Errorf("update equipment %d: %w", equipment.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (er *equipmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM equipment WHERE id = $1`

	result, err := er.db.Exec(ctx, query, id)
	if err != nil {
		er.log.Error("Failed to delete equipment",
			zap.Error(err),
			zap.Int64("equipment_id", id),
		)
		return fmt.Errorf("delete equipment %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
