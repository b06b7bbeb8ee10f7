// Package catalog provides the storefront's product data source: an
// immutable, pre-populated in-memory catalog of products and categories.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/domain"
	apperrors "github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/errors"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/pagination"
)

// Catalog holds the product and category data for the storefront. It is
// populated once at construction and read-only afterwards; the RWMutex only
// guards against construction races in tests that share an instance.
type Catalog struct {
	mu         sync.RWMutex
	products   []domain.Product
	byID       map[string]int
	categories []domain.Category
	catByID    map[string]int
}

// New creates a catalog over the given products and categories. Order is
// preserved for listing.
func New(products []domain.Product, categories []domain.Category) *Catalog {
	c := &Catalog{
		products:   products,
		byID:       make(map[string]int, len(products)),
		categories: categories,
		catByID:    make(map[string]int, len(categories)),
	}
	for i := range products {
		c.byID[products[i].ID] = i
	}
	for i := range categories {
		c.catByID[categories[i].ID] = i
	}
	return c
}

// ProductByID looks up a product by its identifier.
func (c *Catalog) ProductByID(id string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	p := c.products[i]
	return &p, nil
}

// Products returns one page of the full product listing and the total count.
func (c *Catalog) Products(params pagination.Params) ([]domain.Product, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return paginate(c.products, params)
}

// ProductsByCategory returns one page of the products in a category and the
// total count for that category.
func (c *Catalog) ProductsByCategory(categoryID string, params pagination.Params) ([]domain.Product, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := make([]domain.Product, 0)
	for _, p := range c.products {
		if p.CategoryID == categoryID {
			matched = append(matched, p)
		}
	}
	return paginate(matched, params)
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryByID looks up a category by its identifier.
func (c *Catalog) CategoryByID(id string) (*domain.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.catByID[id]
	if !ok {
		return nil, apperrors.NotFound("category", id)
	}
	cat := c.categories[i]
	return &cat, nil
}

// Search returns the products matching the query by case-insensitive
// substring over name, description, and tags, sorted by name, plus the total
// match count. An empty query matches everything.
func (c *Catalog) Search(query string, params pagination.Params) ([]domain.Product, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))

	matched := make([]domain.Product, 0)
	for _, p := range c.products {
		if matches(p, q) {
			matched = append(matched, p)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})

	return paginate(matched, params)
}

func matches(p domain.Product, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func paginate(products []domain.Product, params pagination.Params) ([]domain.Product, int) {
	total := len(products)

	offset := params.Offset
	if offset > total {
		offset = total
	}
	end := offset + params.PerPage
	if end > total {
		end = total
	}

	page := make([]domain.Product, end-offset)
	copy(page, products[offset:end])
	return page, total
}
