package response

import (
	"time"

	"promoservice/internal/data/entity"
)

type EquipmentResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	EquipmentType string    `json:"equipment_type"`
	Model         *string   `json:"model,omitempty"`
	SerialNumber  *string   `json:"serial_number,omitempty"`
	PurchaseDate  *string   `json:"purchase_date,omitempty"`
	Status        string    `json:"status"`
	Location      *string   `json:"location,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func EquipmentToResponse(equipment *entity.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:            equipment.ID,
		Name:          equipment.Name,
		EquipmentType: equipment.EquipmentType,
		Model:         equipment.Model,
		SerialNumber:  equipment.SerialNumber,
		PurchaseDate:  equipment.PurchaseDate,
		Status:        equipment.Status,
		Location:      equipment.Location,
		Notes:         equipment.Notes,
		CreatedAt:     equipment.CreatedAt,
		UpdatedAt:     equipment.UpdatedAt,
	}
}

func EquipmentListToResponse(items []*entity.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(items))
	for _, e := range items {
		out = append(out, EquipmentToResponse(e))
	}
	return out
}
