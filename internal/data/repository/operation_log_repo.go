package repository

import (
	"context"
	"fmt"
	"time"

	"promoservice/internal/data/entity"
	"promoservice/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OperationLogFilter struct {
	OperationType string
	TableName     string
	UserID        int64
	StartDate     *time.Time
	EndDate       *time.Time
}

// OperationStats aggregates the audit trail for the stats endpoint.
type OperationStats struct {
	ByOperationType map[string]int64
	ByTable         map[string]int64
	Total           int64
}

type OperationLogRepository interface {
	Create(ctx context.Context, log *entity.OperationLog) error
	FindAll(ctx context.Context, filter OperationLogFilter, limit, offset int) ([]*entity.OperationLog, error)
	Count(ctx context.Context, filter OperationLogFilter) (int64, error)
	Stats(ctx context.Context) (*OperationStats, error)
}

type operationLogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOperationLogRepository(db database.PgxIface, log *zap.Logger) OperationLogRepository {
	return &operationLogRepository{
		db:  db,
		log: log,
	}
}

const operationLogColumns = `id, user_id, operation_type, table_name, record_id, details, timestamp`

func scanOperationLog(row pgx.Row) (*entity.OperationLog, error) {
	var l entity.OperationLog
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.OperationType,
		&l.TableName,
		&l.RecordID,
		&l.Details,
		&l.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (lr *operationLogRepository) Create(ctx context.Context, log *entity.OperationLog) error {
	query := `
		INSERT INTO operation_log (user_id, operation_type, table_name, record_id, details, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := lr.db.QueryRow(ctx, query,
		log.UserID,
		log.OperationType,
		log.TableName,
		log.RecordID,
		log.Details,
		log.Timestamp,
	).Scan(&log.ID)

	if err != nil {
		return fmt.Errorf("create operation log: %w", err)
	}

	return nil
}

func operationLogConds(filter OperationLogFilter) *condBuilder {
	b := &condBuilder{}
	if filter.OperationType != "" {
		b.add("operation_type = %s", filter.OperationType)
	}
	if filter.TableName != "" {
		b.add("table_name = %s", filter.TableName)
	}
	if filter.UserID > 0 {
		b.add("user_id = %s", filter.UserID)
	}
	if filter.StartDate != nil {
		b.add("timestamp >= %s", *filter.StartDate)
	}
	if filter.EndDate != nil {
		b.add("timestamp <= %s", *filter.EndDate)
	}
	return b
}

func (lr *operationLogRepository) FindAll(ctx context.Context, filter OperationLogFilter, limit, offset int) ([]*entity.OperationLog, error) {
	b := operationLogConds(filter)
	query := `SELECT ` + operationLogColumns + ` FROM operation_log` + b.where() +
		` ORDER BY timestamp DESC LIMIT ` + b.next(limit) + ` OFFSET ` + b.next(offset)

	rows, err := lr.db.Query(ctx, query, b.args...)
	if err != nil {
		lr.log.Error("Failed to list operation logs", zap.Error(err))
		return nil, fmt.Errorf("list operation logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.OperationLog
	for rows.Next() {
		l, err := scanOperationLog(rows)
		if err != nil {
			lr.log.Error("Failed to scan operation log row", zap.Error(err))
			return nil, fmt.Errorf("scan operation log row: %w", err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		lr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate operation log rows: %w", err)
	}

	return logs, nil
}

func (lr *operationLogRepository) Count(ctx context.Context, filter OperationLogFilter) (int64, error) {
	b := operationLogConds(filter)
	query := `SELECT COUNT(*) FROM operation_log` + b.where()

	var count int64
	if err := lr.db.QueryRow(ctx, query, b.args...).Scan(&count); err != nil {
		lr.log.Error("Failed to count operation logs", zap.Error(err))
		return 0, fmt.Errorf("count operation logs: %w", err)
	}

	return count, nil
}

func (lr *operationLogRepository) Stats(ctx context.Context) (*OperationStats, error) {
	stats := &OperationStats{
		ByOperationType: make(map[string]int64),
		ByTable:         make(map[string]int64),
	}

	if err := lr.groupCounts(ctx, `SELECT operation_type, COUNT(*) FROM operation_log GROUP BY operation_type`, stats.ByOperationType); err != nil {
		return nil, err
	}

	if err := lr.groupCounts(ctx, `SELECT table_name, COUNT(*) FROM operation_log GROUP BY table_name`, stats.ByTable); err != nil {
		return nil, err
	}

	if err := lr.db.QueryRow(ctx, `SELECT COUNT(*) FROM operation_log`).Scan(&stats.Total); err != nil {
		lr.log.Error("Failed to count operation logs", zap.Error(err))
		return nil, fmt.Errorf("count operation logs: %w", err)
	}

	return stats, nil
}

func (lr *operationLogRepository) groupCounts(ctx context.Context, query string, dest map[string]int64) error {
	rows, err := lr.db.Query(ctx, query)
	if err != nil {
		lr.log.Error("Failed to aggregate operation logs", zap.Error(err))
		return fmt.Errorf("aggregate operation logs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("scan aggregate row: %w", err)
		}
		dest[key] = count
	}

	return rows.Err()
}
