package request

type WarehouseItemRequest struct {
	ItemName      string  `json:"item_name" validate:"required,min=1,max=200"`
	ArticleNumber string  `json:"article_number" validate:"required,min=1,max=100"`
	Category      string  `json:"category" validate:"required,min=1,max=100"`
	Quantity      int     `json:"quantity" validate:"min=0"`
	UnitPrice     float64 `json:"unit_price" validate:"min=0"`
	Location      *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Supplier      *string `json:"supplier,omitempty" validate:"omitempty,max=200"`
	Notes         *string `json:"notes,omitempty"`
}

type WarehouseItemUpdateRequest struct {
	ItemName      *string  `json:"item_name,omitempty" validate:"omitempty,min=1,max=200"`
	ArticleNumber *string  `json:"article_number,omitempty" validate:"omitempty,min=1,max=100"`
	Category      *string  `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Quantity      *int     `json:"quantity,omitempty" validate:"omitempty,min=0"`
	UnitPrice     *float64 `json:"unit_price,omitempty" validate:"omitempty,min=0"`
	Location      *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Supplier      *string  `json:"supplier,omitempty" validate:"omitempty,max=200"`
	Notes         *string  `json:"notes,omitempty"`
}
