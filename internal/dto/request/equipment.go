package request

type CreateEquipmentRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"max=2000"`
	Category    string  `json:"category" validate:"required,min=2,max=50"`
	PricePerDay float64 `json:"price_per_day" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"required,min=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive    bool    `json:"is_active"`
}

type UpdateEquipmentRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"max=2000"`
	Category    string  `json:"category" validate:"required,min=2,max=50"`
	PricePerDay float64 `json:"price_per_day" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"required,min=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive    bool    `json:"is_active"`
}
