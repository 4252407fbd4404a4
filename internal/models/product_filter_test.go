package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductFilters_Defaults(t *testing.T) {
	f := ParseProductFilters(url.Values{})

	assert.Nil(t, f.CategoryID)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.InStock)
	assert.Empty(t, f.Search)
	assert.Equal(t, "created_at", f.OrderBy)
	assert.True(t, f.Descending)
}

func TestParseProductFilters_PriceBounds(t *testing.T) {
	f := ParseProductFilters(url.Values{
		"min_price": {"10"},
		"max_price": {"20.5"},
	})

	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 10.0, *f.MinPrice)
	assert.Equal(t, 20.5, *f.MaxPrice)
}

func TestParseProductFilters_UnparsablePriceIgnored(t *testing.T) {
	f := ParseProductFilters(url.Values{
		"min_price": {"abc"},
		"max_price": {"20"},
	})

	// Malformed bound is skipped, the other still applies
	assert.Nil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 20.0, *f.MaxPrice)
}

func TestParseProductFilters_InStock(t *testing.T) {
	for _, v := range []string{"true", "1", "yes", "TRUE", " Yes "} {
		f := ParseProductFilters(url.Values{"in_stock": {v}})
		require.NotNil(t, f.InStock, "value %q", v)
		assert.True(t, *f.InStock, "value %q", v)
	}

	for _, v := range []string{"false", "0", "no", "False"} {
		f := ParseProductFilters(url.Values{"in_stock": {v}})
		require.NotNil(t, f.InStock, "value %q", v)
		assert.False(t, *f.InStock, "value %q", v)
	}

	// Anything else applies no stock filter at all
	for _, v := range []string{"maybe", "2", "y"} {
		f := ParseProductFilters(url.Values{"in_stock": {v}})
		assert.Nil(t, f.InStock, "value %q", v)
	}
}

func TestParseProductFilters_Ordering(t *testing.T) {
	f := ParseProductFilters(url.Values{"ordering": {"price"}})
	assert.Equal(t, "price", f.OrderBy)
	assert.False(t, f.Descending)

	f = ParseProductFilters(url.Values{"ordering": {"-stock_quantity"}})
	assert.Equal(t, "stock_quantity", f.OrderBy)
	assert.True(t, f.Descending)
}

func TestParseProductFilters_UnknownOrderingIgnored(t *testing.T) {
	f := ParseProductFilters(url.Values{"ordering": {"owner_id"}})

	// Falls back to the default order
	assert.Equal(t, "created_at", f.OrderBy)
	assert.True(t, f.Descending)
}

func TestParseProductFilters_CategoryAndSearch(t *testing.T) {
	f := ParseProductFilters(url.Values{
		"category": {"some-uuid"},
		"search":   {"  widget "},
	})

	require.NotNil(t, f.CategoryID)
	assert.Equal(t, "some-uuid", *f.CategoryID)
	assert.Equal(t, "widget", f.Search)
}
