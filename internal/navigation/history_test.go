package navigation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistory_StartsAtHome(t *testing.T) {
	h := NewHistory()

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Cursor())
	assert.Equal(t, Home{}, h.Current())
	assert.False(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())
}

func TestPush_AppendsAndAdvancesCursor(t *testing.T) {
	h := NewHistory()

	h.Push(ProductList{})
	h.Push(ProductDetail{ProductID: "p-42"})

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Cursor())
	assert.Equal(t, ProductDetail{ProductID: "p-42"}, h.Current())
	assert.True(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())
}

func TestBack_MovesCursorAndReturnsEntry(t *testing.T) {
	h := NewHistory()
	h.Push(ProductList{})
	h.Push(Wishlist{})

	got := h.Back()

	assert.Equal(t, ProductList{}, got)
	assert.Equal(t, 1, h.Cursor())
	assert.True(t, h.CanGoForward())
}

func TestBack_AtStart_NoOp(t *testing.T) {
	h := NewHistory()

	for range 3 {
		got := h.Back()
		assert.Equal(t, Home{}, got)
		assert.Equal(t, 0, h.Cursor())
	}
}

func TestForward_AtEnd_NoOp(t *testing.T) {
	h := NewHistory()
	h.Push(Profile{})

	for range 3 {
		got := h.Forward()
		assert.Equal(t, Profile{}, got)
		assert.Equal(t, 1, h.Cursor())
	}
}

func TestPush_DiscardsForwardEntries(t *testing.T) {
	h := NewHistory()
	h.Push(ProductList{})
	h.Push(ProductDetail{ProductID: "p-42"})

	h.Back()
	require.Equal(t, ProductList{}, h.Current())

	h.Push(CategoryPage{CategoryID: "shoes"})

	want := []Entry{Home{}, ProductList{}, CategoryPage{CategoryID: "shoes"}}
	if diff := cmp.Diff(want, h.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, h.Cursor())

	// Forward history is gone: Forward stays put until another Back.
	assert.False(t, h.CanGoForward())
	assert.Equal(t, CategoryPage{CategoryID: "shoes"}, h.Forward())
	assert.Equal(t, 2, h.Cursor())

	h.Back()
	assert.True(t, h.CanGoForward())
}

func TestCursor_StaysInBounds(t *testing.T) {
	h := NewHistory()
	h.Push(ProductList{})
	h.Push(SearchResults{Query: "boots"})
	h.Push(OrderList{})

	ops := []func(){
		func() { h.Back() }, func() { h.Back() }, func() { h.Back() },
		func() { h.Back() }, func() { h.Forward() }, func() { h.Forward() },
		func() { h.Forward() }, func() { h.Forward() }, func() { h.Forward() },
	}
	for _, op := range ops {
		op()
		assert.GreaterOrEqual(t, h.Cursor(), 0)
		assert.Less(t, h.Cursor(), h.Len())
	}
}

func TestBackForward_RoundTripRestoresEntries(t *testing.T) {
	h := NewHistory()
	detail := ProductDetail{ProductID: "p-7"}
	search := SearchResults{Query: "jacket"}
	h.Push(search)
	h.Push(detail)

	assert.Equal(t, search, h.Back())
	assert.Equal(t, detail, h.Forward())
	assert.Equal(t, detail, h.Current())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	h := NewHistory()
	h.Push(ProductList{})

	entries := h.Entries()
	entries[0] = StaticPage{Slug: "about"}

	assert.Equal(t, Home{}, h.Entries()[0])
}

// Mirrors a typical browsing session: home, product listing, a product,
// back, off to a category, then a dead forward.
func TestHistory_BrowseScenario(t *testing.T) {
	h := NewHistory()

	h.Push(ProductList{})
	assert.Equal(t, 1, h.Cursor())

	h.Push(ProductDetail{ProductID: "42"})
	assert.Equal(t, 2, h.Cursor())

	assert.Equal(t, ProductList{}, h.Back())
	assert.Equal(t, 1, h.Cursor())

	h.Push(CategoryPage{CategoryID: "shoes"})
	assert.Equal(t, 2, h.Cursor())
	assert.Equal(t, 3, h.Len())

	// The discarded product detail entry must not resurface.
	assert.Equal(t, CategoryPage{CategoryID: "shoes"}, h.Forward())
	assert.Equal(t, 2, h.Cursor())
}
