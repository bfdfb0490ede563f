package request

type EquipmentRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	EquipmentType string  `json:"equipment_type" validate:"required,min=1,max=100"`
	Model         *string `json:"model,omitempty" validate:"omitempty,max=100"`
	SerialNumber  *string `json:"serial_number,omitempty" validate:"omitempty,max=100"`
	PurchaseDate  *string `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status        string  `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
	Location      *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Notes         *string `json:"notes,omitempty"`
}

type EquipmentUpdateRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	EquipmentType *string `json:"equipment_type,omitempty" validate:"omitempty,min=1,max=100"`
	Model         *string `json:"model,omitempty" validate:"omitempty,max=100"`
	SerialNumber  *string `json:"serial_number,omitempty" validate:"omitempty,max=100"`
	PurchaseDate  *string `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive maintenance"`
	Location      *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Notes         *string `json:"notes,omitempty"`
}
