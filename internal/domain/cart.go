package domain

// DefaultCurrency is the currency all storefront prices are quoted in.
const DefaultCurrency = "USD"

// Cart holds the items a visitor intends to purchase. Items keep insertion
// order and there is at most one item per product ID.
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartItem is a single (product, quantity) entry in the cart. Name, price,
// and image are snapshotted from the catalog at add time.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url,omitempty"`
	Quantity  int    `json:"quantity"`
}

// TotalAmount calculates the total price of all items in the cart (in cents).
// It is always recomputed from the item slice, never stored.
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities across all items in the cart.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// ItemQuantity returns the quantity held for the given product, or 0 if the
// product is not in the cart.
func (c *Cart) ItemQuantity(productID string) int {
	if i := c.FindItemIndex(productID); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// FindItemIndex returns the index of the cart item matching the given product
// ID, or -1 if not found.
func (c *Cart) FindItemIndex(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem adds one unit of the given product to the cart. If an item for the
// product already exists its quantity is incremented by 1, otherwise a new
// item with quantity 1 is appended.
func (c *Cart) AddItem(p Product) {
	if i := c.FindItemIndex(p.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  1,
	})
}

// RemoveItem deletes the item for the given product ID. Removing a product
// that is not in the cart is a no-op, not an error. Returns whether an item
// was removed.
func (c *Cart) RemoveItem(productID string) bool {
	i := c.FindItemIndex(productID)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

// SetQuantity sets the quantity for the given product. A quantity of zero or
// less removes the item. Setting the quantity of a product that is not in the
// cart is a no-op. Returns whether the cart changed.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	if quantity <= 0 {
		return c.RemoveItem(productID)
	}
	i := c.FindItemIndex(productID)
	if i < 0 {
		return false
	}
	c.Items[i].Quantity = quantity
	return true
}

// Clear removes all items from the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a deep copy of the cart, so callers can hand out snapshots
// without exposing the live item slice.
func (c *Cart) Clone() *Cart {
	clone := &Cart{Items: make([]CartItem, len(c.Items))}
	copy(clone.Items, c.Items)
	return clone
}
