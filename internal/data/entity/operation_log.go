package entity

import "time"

// Operation types recorded in the audit trail.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

type OperationLog struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	OperationType string    `db:"operation_type"`
	TableName     string    `db:"table_name"`
	RecordID      *int64    `db:"record_id"`
	Details       *string   `db:"details"`
	Timestamp     time.Time `db:"timestamp"`
}
