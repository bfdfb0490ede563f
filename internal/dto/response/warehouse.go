package response

import (
	"time"

	"promoservice/internal/data/entity"
)

type WarehouseItemResponse struct {
	ID            int64     `json:"id"`
	ItemName      string    `json:"item_name"`
	ArticleNumber string    `json:"article_number"`
	Category      string    `json:"category"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	Location      *string   `json:"location,omitempty"`
	Supplier      *string   `json:"supplier,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func WarehouseItemToResponse(item *entity.WarehouseItem) WarehouseItemResponse {
	return WarehouseItemResponse{
		ID:            item.ID,
		ItemName:      item.ItemName,
		ArticleNumber: item.ArticleNumber,
		Category:      item.Category,
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
		Location:      item.Location,
		Supplier:      item.Supplier,
		Notes:         item.Notes,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

func WarehouseItemsToResponse(items []*entity.WarehouseItem) []WarehouseItemResponse {
	out := make([]WarehouseItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, WarehouseItemToResponse(i))
	}
	return out
}
