package request

type UpsertPageMetaRequest struct {
	PagePath    string  `json:"page_path" validate:"required,startswith=/,max=200"`
	Title       string  `json:"title" validate:"required,max=150"`
	Description string  `json:"description" validate:"max=300"`
	OGImageURL  *string `json:"og_image_url,omitempty" validate:"omitempty,url"`
}
