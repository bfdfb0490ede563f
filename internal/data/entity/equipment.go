package entity

type Equipment struct {
	Base
	Name          string  `db:"name"`
	EquipmentType string  `db:"equipment_type"`
	Model         *string `db:"model"`
	SerialNumber  *string `db:"serial_number"`
	PurchaseDate  *string `db:"purchase_date"`
	Status        string  `db:"status"` // active, inactive, maintenance
	Location      *string `db:"location"`
	Notes         *string `db:"notes"`
}
