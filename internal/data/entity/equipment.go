package entity

type Equipment struct {
	Base
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Category    string  `db:"category"`
	PricePerDay float64 `db:"price_per_day"`
	Quantity    int     `db:"quantity"`
	ImageURL    *string `db:"image_url"`
	IsActive    bool    `db:"is_active"`
}
