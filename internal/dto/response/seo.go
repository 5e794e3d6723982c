package response

import (
	"time"

	"rental-booking/internal/data/entity"
)

type PageMetaResponse struct {
	ID          string    `json:"id"`
	PagePath    string    `json:"page_path"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OGImageURL  *string   `json:"og_image_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func PageMetaToResponse(meta *entity.PageMeta) PageMetaResponse {
	return PageMetaResponse{
		ID:          meta.ID.String(),
		PagePath:    meta.PagePath,
		Title:       meta.Title,
		Description: meta.Description,
		OGImageURL:  meta.OGImageURL,
		UpdatedAt:   meta.UpdatedAt,
	}
}
