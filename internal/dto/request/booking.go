package request

type CreateBookingRequest struct {
	CustomerName    string               `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail   string               `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   string               `json:"customer_phone" validate:"required,min=6,max=20"`
	CustomerAddress string               `json:"customer_address" validate:"required,min=5,max=250"`
	StartDate       string               `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string               `json:"end_date" validate:"required,datetime=2006-01-02"`
	Items           []BookingItemRequest `json:"items" validate:"required,min=1,dive"`
}

type BookingItemRequest struct {
	EquipmentID string `json:"equipment_id" validate:"required,uuid4"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	// Reason is required when status is undeliverable; free text beyond
	// the advisory list is accepted.
	Reason string `json:"reason,omitempty"`
}

type AssignDriverRequest struct {
	// DriverID nil unassigns the current driver.
	DriverID *string `json:"driver_id" validate:"omitempty,uuid4"`
}

type UpdateContactRequest struct {
	CustomerName    string `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail   string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   string `json:"customer_phone" validate:"required,min=6,max=20"`
	CustomerAddress string `json:"customer_address" validate:"required,min=5,max=250"`
}
