package entity

type WarehouseItem struct {
	Base
	ItemName      string  `db:"item_name"`
	ArticleNumber string  `db:"article_number"`
	Category      string  `db:"category"`
	Quantity      int     `db:"quantity"`
	UnitPrice     float64 `db:"unit_price"`
	Location      *string `db:"location"`
	Supplier      *string `db:"supplier"`
	Notes         *string `db:"notes"`
}
