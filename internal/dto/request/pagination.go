package request

type PaginatedRequest struct {
	Page    int `json:"page" validate:"omitempty,min=1"`
	PerPage int `json:"per_page" validate:"omitempty,min=1,max=100"`
}

func (r *PaginatedRequest) Limit() int {
	if r.PerPage < 1 {
		return 10
	}
	return r.PerPage
}

func (r *PaginatedRequest) Offset() int {
	page := r.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * r.Limit()
}
