package response

import (
	"rental-booking/internal/data/entity"
)

type TaskType string

const (
	TaskTypeDelivery TaskType = "delivery"
	TaskTypePickup   TaskType = "pickup"
)

// DriverTaskResponse is a derived view: every assigned booking projects
// into one delivery task and one pickup task. Tasks are never stored.
type DriverTaskResponse struct {
	BookingID       string        `json:"booking_id"`
	Reference       string        `json:"reference"`
	TaskType        TaskType      `json:"task_type"`
	TaskDate        string        `json:"task_date"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerAddress string        `json:"customer_address"`
	Status          entity.Status `json:"status"`
	TotalAmount     float64       `json:"total_amount"`
}
