package response

import (
	"time"

	"rental-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                    string        `json:"id"`
	Reference             string        `json:"reference"`
	CustomerName          string        `json:"customer_name"`
	CustomerEmail         string        `json:"customer_email,omitempty"`
	CustomerPhone         string        `json:"customer_phone"`
	CustomerAddress       string        `json:"customer_address"`
	StartDate             string        `json:"start_date"`
	EndDate               string        `json:"end_date"`
	Status                entity.Status `json:"status"`
	TotalAmount           float64       `json:"total_amount"`
	DeliveryFailureReason *string       `json:"delivery_failure_reason,omitempty"`
	AssignedTo            *string       `json:"assigned_to,omitempty"`
	AllowedNextStatuses   []entity.Status `json:"allowed_next_statuses"`
	Items                 []BookingItemResponse `json:"items,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

type BookingItemResponse struct {
	EquipmentID   string  `json:"equipment_id"`
	EquipmentName *string `json:"equipment_name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Subtotal      float64 `json:"subtotal"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                    booking.ID.String(),
		Reference:             booking.Reference,
		CustomerName:          booking.CustomerName,
		CustomerEmail:         booking.CustomerEmail,
		CustomerPhone:         booking.CustomerPhone,
		CustomerAddress:       booking.CustomerAddress,
		StartDate:             booking.StartDate.Format("2006-01-02"),
		EndDate:               booking.EndDate.Format("2006-01-02"),
		Status:                booking.Status,
		TotalAmount:           booking.TotalAmount,
		DeliveryFailureReason: booking.DeliveryFailureReason,
		AllowedNextStatuses:   booking.Status.NextStatuses(),
		CreatedAt:             booking.CreatedAt,
		UpdatedAt:             booking.UpdatedAt,
	}

	if booking.AssignedTo != nil {
		assignedTo := booking.AssignedTo.String()
		resp.AssignedTo = &assignedTo
	}

	for _, item := range booking.Items {
		resp.Items = append(resp.Items, BookingItemResponse{
			EquipmentID:   item.EquipmentID.String(),
			EquipmentName: item.EquipmentName,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Subtotal:      item.Subtotal,
		})
	}

	return resp
}
