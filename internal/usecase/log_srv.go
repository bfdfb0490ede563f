package usecase

import (
	"context"

	"promoservice/internal/data/repository"
	"promoservice/internal/dto/response"

	"go.uber.org/zap"
)

type OperationLogService interface {
	List(ctx context.Context, filter repository.OperationLogFilter, limit, offset int) (*response.ListResponse[response.OperationLogResponse], error)
	Stats(ctx context.Context) (*response.OperationStatsResponse, error)
}

type operationLogService struct {
	logs repository.OperationLogRepository
	log  *zap.Logger
}

func NewOperationLogService(logs repository.OperationLogRepository, log *zap.Logger) OperationLogService {
	return &operationLogService{
		logs: logs,
		log:  log,
	}
}

func (s *operationLogService) List(ctx context.Context, filter repository.OperationLogFilter, limit, offset int) (*response.ListResponse[response.OperationLogResponse], error) {
	entries, err := s.logs.FindAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.logs.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return response.NewListResponse(response.OperationLogsToResponse(entries), total, limit, offset), nil
}

func (s *operationLogService) Stats(ctx context.Context) (*response.OperationStatsResponse, error) {
	stats, err := s.logs.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &response.OperationStatsResponse{
		ByOperationType: stats.ByOperationType,
		ByTable:         stats.ByTable,
		Total:           stats.Total,
	}, nil
}
