package entity

type Service struct {
	Base
	Name            string  `db:"name"`
	Category        string  `db:"category"`
	Price           float64 `db:"price"`
	Description     *string `db:"description"`
	DurationMinutes *int    `db:"duration_minutes"`
	Notes           *string `db:"notes"`
}
