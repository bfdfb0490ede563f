package response

import (
	"time"

	"promoservice/internal/data/entity"
)

type OperationLogResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	OperationType string    `json:"operation_type"`
	TableName     string    `json:"table_name"`
	RecordID      *int64    `json:"record_id,omitempty"`
	Details       *string   `json:"details,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type OperationStatsResponse struct {
	ByOperationType map[string]int64 `json:"by_operation_type"`
	ByTable         map[string]int64 `json:"by_table"`
	Total           int64            `json:"total"`
}

func OperationLogToResponse(log *entity.OperationLog) OperationLogResponse {
	return OperationLogResponse{
		ID:            log.ID,
		UserID:        log.UserID,
		OperationType: log.OperationType,
		TableName:     log.TableName,
		RecordID:      log.RecordID,
		Details:       log.Details,
		Timestamp:     log.Timestamp,
	}
}

func OperationLogsToResponse(logs []*entity.OperationLog) []OperationLogResponse {
	out := make([]OperationLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, OperationLogToResponse(l))
	}
	return out
}
