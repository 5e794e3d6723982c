package entity

// PageMeta holds per-page SEO metadata managed from the admin panel and
// served to the storefront.
type PageMeta struct {
	Base
	PagePath    string  `db:"page_path"`
	Title       string  `db:"title"`
	Description string  `db:"description"`
	OGImageURL  *string `db:"og_image_url"`
}
