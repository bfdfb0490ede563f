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

type WarehouseFilter struct {
	Search      string // matches item name, article, category, supplier
	Category    string
	MinQuantity int
}

type WarehouseRepository interface {
	Create(ctx context.Context, item *entity.WarehouseItem) error
	FindByID(ctx context.Context, id int64) (*entity.WarehouseItem, error)
	FindByArticleNumber(ctx context.Context, articleNumber string) (*entity.WarehouseItem, error)
	FindAll(ctx context.Context, filter WarehouseFilter, limit, offset int) ([]*entity.WarehouseItem, error)
	Count(ctx context.Context, filter WarehouseFilter) (int64, error)
	Update(ctx context.Context, item *entity.WarehouseItem) error
	Delete(ctx context.Context, id int64) error
}

type warehouseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWarehouseRepository(db database.PgxIface, log *zap.Logger) WarehouseRepository {
	return &warehouseRepository{
		db:  db,
		log: log,
	}
}

const warehouseColumns = `id, item_name, article_number, category, quantity, unit_price, location, supplier, notes, created_at, updated_at`

func scanWarehouseItem(row pgx.Row) (*entity.WarehouseItem, error) {
	var item entity.WarehouseItem
	err := row.Scan(
		&item.ID,
		&item.ItemName,
		&item.ArticleNumber,
		&item.Category,
		&item.Quantity,
		&item.UnitPrice,
		&item.Location,
		&item.Supplier,
		&item.Notes,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (wr *warehouseRepository) Create(ctx context.Context, item *entity.WarehouseItem) error {
	query := `
		INSERT INTO warehouse (item_name, article_number, category, quantity, unit_price,
		                       location, supplier, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := wr.db.QueryRow(ctx, query,
		item.ItemName,
		item.ArticleNumber,
		item.Category,
		item.Quantity,
		item.UnitPrice,
		item.Location,
		item.Supplier,
		item.Notes,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		wr.log.Error("Failed to create warehouse item",
			zap.Error(err),
			zap.String("article_number", item.ArticleNumber),
		)
		return fmt.Errorf("create warehouse item: %w", err)
	}

	return nil
}

func (wr *warehouseRepository) FindByID(ctx context.Context, id int64) (*entity.WarehouseItem, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouse WHERE id = $1`

	item, err := scanWarehouseItem(wr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		wr.log.Error("Failed to find warehouse item by ID",
			zap.Error(err),
			zap.Int64("item_id", id),
		)
		return nil, fmt.Errorf("find warehouse item by ID %d: %w", id, err)
	}

	return item, nil
}

func (wr *warehouseRepository) FindByArticleNumber(ctx context.Context, articleNumber string) (*entity.WarehouseItem, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouse WHERE article_number = $1`

	item, err := scanWarehouseItem(wr.db.QueryRow(ctx, query, articleNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		wr.log.Error("Failed to find warehouse item by article number", zap.Error(err))
		return nil, fmt.Errorf("find warehouse item by article number: %w", err)
	}

	return item, nil
}

func warehouseConds(filter WarehouseFilter) *condBuilder {
	b := &condBuilder{}
	if filter.Search != "" {
		b.add("(item_name ILIKE %s OR article_number ILIKE %s OR category ILIKE %s OR supplier ILIKE %s)",
			"%"+filter.Search+"%")
	}
	if filter.Category != "" {
		b.add("category ILIKE %s", "%"+filter.Category+"%")
	}
	if filter.MinQuantity > 0 {
		b.add("quantity >= %s", filter.MinQuantity)
	}
	return b
}

func (wr *warehouseRepository) FindAll(ctx context.Context, filter WarehouseFilter, limit, offset int) ([]*entity.WarehouseItem, error) {
	b := warehouseConds(filter)
	query := `SELECT ` + warehouseColumns + ` FROM warehouse` + b.where() +
		` ORDER BY id DESC LIMIT ` + b.next(limit) + ` OFFSET ` + b.next(offset)

	rows, err := wr.db.Query(ctx, query, b.args...)
	if err != nil {
		wr.log.Error("Failed to list warehouse items", zap.Error(err))
		return nil, fmt.Errorf("list warehouse items: %w", err)
	}
	defer rows.Close()

	var items []*entity.WarehouseItem
	for rows.Next() {
		item, err := scanWarehouseItem(rows)
		if err != nil {
			wr.log.Error("Failed to scan warehouse row", zap.Error(err))
			return nil, fmt.Errorf("scan warehouse row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		wr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate warehouse rows: %w", err)
	}

	return items, nil
}

func (wr *warehouseRepository) Count(ctx context.Context, filter WarehouseFilter) (int64, error) {
	b := warehouseConds(filter)
	query := `SELECT COUNT(*) FROM warehouse` + b.where()

	var count int64
	if err := wr.db.QueryRow(ctx, query, b.args...).Scan(&count); err != nil {
		wr.log.Error("Failed to count warehouse items", zap.Error(err))
		return 0, fmt.Errorf("count warehouse items: %w", err)
	}

	return count, nil
}

func (wr *warehouseRepository) Update(ctx context.Context, item *entity.WarehouseItem) error {
	query := `
		UPDATE warehouse
		SET item_name = $2, article_number = $3, category = $4, quantity = $5,
		    unit_price = $6, location = $7, supplier = $8, notes = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := wr.db.Exec(ctx, query,
		item.ID,
		item.ItemName,
		item.ArticleNumber,
		item.Category,
		item.Quantity,
		item.UnitPrice,
		item.Location,
		item.Supplier,
		item.Notes,
		item.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		wr.log.Error("Failed to update warehouse item",
			zap.Error(err),
			zap.Int64("item_id", item.ID),
		)
		return fmt.Errorf("update warehouse item %d: %w", item.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (wr *warehouseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM warehouse WHERE id = $1`

	result, err := wr.db.Exec(ctx, query, id)
	if err != nil {
		wr.log.Error("Failed to delete warehouse item",
			zap.Error(err),
			zap.Int64("item_id", id),
		)
		return fmt.Errorf("delete warehouse item %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
