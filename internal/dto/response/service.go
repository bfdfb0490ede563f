package response

import (
	"time"

	"promoservice/internal/data/entity"
)

type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:              service.ID,
		Name:            service.Name,
		Category:        service.Category,
		Price:           service.Price,
		Description:     service.Description,
		DurationMinutes: service.DurationMinutes,
		Notes:           service.Notes,
		CreatedAt:       service.CreatedAt,
		UpdatedAt:       service.UpdatedAt,
	}
}

func ServicesToResponse(services []*entity.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceToResponse(s))
	}
	return out
}
