package usecase

import (
	"context"
	"time"

	"promoservice/internal/data/entity"
	"promoservice/internal/data/repository"
	"promoservice/pkg/auth"

	"go.uber.org/zap"
)

// recordOperation writes an audit trail entry. Failures are logged and
// swallowed: audit must never fail the operation it describes.
func recordOperation(ctx context.Context, logs repository.OperationLogRepository, log *zap.Logger,
	actor *auth.Identity, opType, table string, recordID int64, details string) {
	if actor == nil {
		return
	}

	entry := &entity.OperationLog{
		UserID:        actor.ID,
		OperationType: opType,
		TableName:     table,
		Timestamp:     time.Now(),
	}
	if recordID > 0 {
		entry.RecordID = &recordID
	}
	if details != "" {
		entry.Details = &details
	}

	if err := logs.Create(ctx, entry); err != nil {
		log.Warn("Failed to record operation",
			zap.Error(err),
			zap.String("operation_type", opType),
			zap.String("table_name", table),
			zap.Int64("record_id", recordID),
			zap.Int64("user_id", actor.ID),
		)
	}
}
