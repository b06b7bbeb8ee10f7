package catalog

import (
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/domain"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/slug"
)

// Default returns the catalog seeded with the storefront demo data.
func Default() *Catalog {
	return New(seedProducts(), seedCategories())
}

func seedCategories() []domain.Category {
	return []domain.Category{
		category("cat-sneakers", "Sneakers", "Everyday and performance footwear"),
		category("cat-apparel", "Apparel", "Clothing for every season"),
		category("cat-accessories", "Accessories", "Bags, hats, and extras"),
		category("cat-electronics", "Electronics", "Audio and wearables"),
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		product("prod-001", "Canvas Low-Top Sneakers", "cat-sneakers", 4990, sale(6490),
			"Classic low-top sneakers with a vulcanized rubber sole.", 4.5, 128, true, "casual", "canvas"),
		product("prod-002", "Trail Running Shoes", "cat-sneakers", 9990, nil,
			"Lightweight trail runners with a grippy outsole.", 4.7, 86, true, "running", "outdoor"),
		product("prod-003", "Leather High-Top Sneakers", "cat-sneakers", 12990, nil,
			"Full-grain leather high-tops with padded collar.", 4.2, 40, false, "leather"),
		product("prod-004", "Organic Cotton T-Shirt", "cat-apparel", 1990, sale(2490),
			"Soft crew-neck tee in organic cotton.", 4.4, 215, true, "cotton", "basics"),
		product("prod-005", "Merino Wool Sweater", "cat-apparel", 7990, nil,
			"Midweight merino crewneck for year-round wear.", 4.8, 64, true, "wool", "winter"),
		product("prod-006", "Water-Resistant Parka", "cat-apparel", 15990, sale(18990),
			"Insulated parka with a detachable hood.", 4.6, 33, true, "winter", "outdoor"),
		product("prod-007", "Slim-Fit Chinos", "cat-apparel", 5490, nil,
			"Stretch-twill chinos with a tapered leg.", 4.1, 97, true, "basics"),
		product("prod-008", "Wool Beanie", "cat-accessories", 1590, nil,
			"Ribbed knit beanie in soft lambswool.", 4.3, 52, true, "wool", "winter"),
		product("prod-009", "Canvas Weekender Bag", "cat-accessories", 8990, sale(10990),
			"Roomy weekender with leather trim and brass hardware.", 4.5, 28, true, "travel", "canvas"),
		product("prod-010", "Polarized Sunglasses", "cat-accessories", 3990, nil,
			"Acetate frames with polarized UV400 lenses.", 4.0, 73, true, "summer"),
		product("prod-011", "Wireless Earbuds", "cat-electronics", 12990, sale(14990),
			"Noise-isolating earbuds with 24-hour battery case.", 4.4, 310, true, "audio"),
		product("prod-012", "Fitness Tracker Band", "cat-electronics", 6990, nil,
			"Heart-rate and sleep tracking with a 10-day battery.", 4.2, 189, true, "wearable", "fitness"),
		product("prod-013", "Portable Bluetooth Speaker", "cat-electronics", 5990, nil,
			"Splash-proof speaker with deep bass and 12-hour playtime.", 4.6, 142, false, "audio", "outdoor"),
		product("prod-014", "Smart Home Hub", "cat-electronics", 9990, nil,
			"Voice-controlled hub compatible with major ecosystems.", 3.9, 58, true, "smart-home"),
	}
}

func category(id, name, description string) domain.Category {
	return domain.Category{
		ID:          id,
		Name:        name,
		Slug:        slug.Generate(name),
		Description: description,
		ImageURL:    "https://img.mallmate.dev/categories/" + slug.Generate(name) + ".jpg",
	}
}

func product(id, name, categoryID string, price int64, originalPrice *int64, description string, rating float64, reviews int, inStock bool, tags ...string) domain.Product {
	return domain.Product{
		ID:            id,
		Name:          name,
		Slug:          slug.Generate(name),
		Description:   description,
		Price:         price,
		OriginalPrice: originalPrice,
		ImageURL:      "https://img.mallmate.dev/products/" + id + ".jpg",
		CategoryID:    categoryID,
		Rating:        rating,
		ReviewCount:   reviews,
		InStock:       inStock,
		Tags:          tags,
	}
}

func sale(originalPrice int64) *int64 {
	return &originalPrice
}
