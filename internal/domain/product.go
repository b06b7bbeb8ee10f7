package domain

// Product represents a catalog product as served to the storefront.
// Products are read-only for the lifetime of a session.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	ImageURL      string   `json:"image_url"`
	CategoryID    string   `json:"category_id"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	InStock       bool     `json:"in_stock"`
	Tags          []string `json:"tags,omitempty"`
}

// OnSale reports whether the product carries a marked-down price.
func (p *Product) OnSale() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// Category represents a storefront product category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
