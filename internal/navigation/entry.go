package navigation

// Page identifies which storefront page a navigation entry points at.
type Page string

// Storefront page constants.
const (
	PageHome          Page = "home"
	PageProducts      Page = "products"
	PageCategory      Page = "category"
	PageProductDetail Page = "product"
	PageSearch        Page = "search"
	PageOrders        Page = "orders"
	PageOrderDetail   Page = "order"
	PageWishlist      Page = "wishlist"
	PageProfile       Page = "profile"
	PageStatic        Page = "static"
)

// Entry is a recorded view state in the navigation history. Each variant
// carries only the context fields its page needs, so restoring an entry
// cannot leak stale state from unrelated pages: anything not on the entry
// resets to its zero value.
type Entry interface {
	// Page returns the page type this entry renders.
	Page() Page
}

// Home is the storefront landing page.
type Home struct{}

// Page implements Entry.
func (Home) Page() Page { return PageHome }

// ProductList is the full product listing page.
type ProductList struct{}

// Page implements Entry.
func (ProductList) Page() Page { return PageProducts }

// CategoryPage lists the products of one category.
type CategoryPage struct {
	CategoryID string
}

// Page implements Entry.
func (CategoryPage) Page() Page { return PageCategory }

// ProductDetail shows a single product.
type ProductDetail struct {
	ProductID string
}

// Page implements Entry.
func (ProductDetail) Page() Page { return PageProductDetail }

// SearchResults shows the results for a search query.
type SearchResults struct {
	Query string
}

// Page implements Entry.
func (SearchResults) Page() Page { return PageSearch }

// OrderList shows the visitor's order history.
type OrderList struct{}

// Page implements Entry.
func (OrderList) Page() Page { return PageOrders }

// OrderDetail shows a single past order.
type OrderDetail struct {
	OrderID string
}

// Page implements Entry.
func (OrderDetail) Page() Page { return PageOrderDetail }

// Wishlist shows the visitor's saved products.
type Wishlist struct{}

// Page implements Entry.
func (Wishlist) Page() Page { return PageWishlist }

// Profile shows the visitor's account page.
type Profile struct{}

// Page implements Entry.
func (Profile) Page() Page { return PageProfile }

// StaticPage is a fixed content page such as "about" or "contact".
type StaticPage struct {
	Slug string
}

// Page implements Entry.
func (StaticPage) Page() Page { return PageStatic }
