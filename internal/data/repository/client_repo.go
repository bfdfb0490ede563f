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

type ClientFilter struct {
	Search string // matches name, phone, address, social media
	Phone  string
}

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	FindByID(ctx context.Context, id int64) (*entity.Client, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Client, error)
	FindAll(ctx context.Context, filter ClientFilter, limit, offset int) ([]*entity.Client, error)
	Count(ctx context.Context, filter ClientFilter) (int64, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id int64) error
}

type clientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClientRepository(db database.PgxIface, log *zap.Logger) ClientRepository {
	return &clientRepository{
		db:  db,
		log: log,
	}
}

const clientColumns = `id, full_name, phone, email, address, social_media, notes, created_at, updated_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.SocialMedia,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (cr *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (full_name, phone, email, address, social_media, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := cr.db.QueryRow(ctx, query,
		client.FullName,
		client.Phone,
		client.Email,
		client.Address,
		client.SocialMedia,
		client.Notes,
		client.CreatedAt,
		client.UpdatedAt,
	).Scan(&client.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		cr.log.Error("Failed to create client",
			zap.Error(err),
			zap.String("phone", client.Phone),
		)
		return fmt.Errorf("create client: %w", err)
	}

	return nil
}

func (cr *clientRepository) FindByID(ctx context.Context, id int64) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	client, err := scanClient(cr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find client by ID",
			zap.Error(err),
			zap.Int64("client_id", id),
		)
		return nil, fmt.Errorf("find client by ID %d: %w", id, err)
	}

	return client, nil
}

func (cr *clientRepository) FindByPhone(ctx context.Context, phone string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE phone = $1`

	client, err := scanClient(cr.db.QueryRow(ctx, query, phone))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find client by phone", zap.Error(err))
		return nil, fmt.Errorf("find client by phone: %w", err)
	}

	return client, nil
}

func clientConds(filter ClientFilter) *condBuilder {
	b := &condBuilder{}
	if filter.Search != "" {
		b.add("(full_name ILIKE %s OR phone ILIKE %s OR address ILIKE %s OR social_media ILIKE %s)",
			"%"+filter.Search+"%")
	}
	if filter.Phone != "" {
		b.add("phone ILIKE %s", "%"+filter.Phone+"%")
	}
	return b
}

func (cr *clientRepository) FindAll(ctx context.Context, filter ClientFilter, limit, offset int) ([]*entity.Client, error) {
	b := clientConds(filter)
	query := `SELECT ` + clientColumns + ` FROM clients` + b.where() +
		` ORDER BY id DESC LIMIT ` + b.next(limit) + ` OFFSET ` + b.next(offset)

	rows, err := cr.db.Query(ctx, query, b.args...)
	if err != nil {
		cr.log.Error("Failed to list clients", zap.Error(err))
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			cr.log.Error("Failed to scan client row", zap.Error(err))
			return nil, fmt.Errorf("scan client row: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate client rows: %w", err)
	}

	return clients, nil
}

func (cr *clientRepository) Count(ctx context.Context, filter ClientFilter) (int64, error) {
	b := clientConds(filter)
	query := `SELECT COUNT(*) FROM clients` + b.where()

	var count int64
	if err := cr.db.QueryRow(ctx, query, b.args...).Scan(&count); err != nil {
		cr.log.Error("Failed to count clients", zap.Error(err))
		return 0, fmt.Errorf("count clients: %w", err)
	}

	return count, nil
}

func (cr *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients
		SET full_name = $2, phone = $3, email = $4, address = $5,
		    social_media = $6, notes = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := cr.db.Exec(ctx, query,
		client.ID,
		client.FullName,
		client.Phone,
		client.Email,
		client.Address,
		client.SocialMedia,
		client.Notes,
		client.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		cr.log.Error("Failed to update client",
			zap.Error(err),
			zap.Int64("client_id", client.ID),
		)
		return fmt.Errorf("update client %d: %w", client.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (cr *clientRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM clients WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete client",
			zap.Error(err),
			zap.Int64("client_id", id),
		)
		return fmt.Errorf("delete client %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
