package response

import (
	"time"

	"rental-booking/internal/data/entity"
)

type EquipmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PricePerDay float64   `json:"price_per_day"`
	Quantity    int       `json:"quantity"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func EquipmentToResponse(equipment *entity.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:          equipment.ID.String(),
		Name:        equipment.Name,
		Description: equipment.Description,
		Category:    equipment.Category,
		PricePerDay: equipment.PricePerDay,
		Quantity:    equipment.Quantity,
		ImageURL:    equipment.ImageURL,
		IsActive:    equipment.IsActive,
		CreatedAt:   equipment.CreatedAt,
	}
}
