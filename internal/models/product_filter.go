package models

import (
	"net/url"
	"strconv"
	"strings"
)

// ProductFilters is the typed form of the /products query parameters.
// Nil pointer fields mean "no constraint". Filters compose with logical AND.
type ProductFilters struct {
	CategoryID *string
	MinPrice   *float64
	MaxPrice   *float64
	InStock    *bool
	Search     string
	OrderBy    string // one of price, created_at, stock_quantity
	Descending bool
}

// Ordering fields accepted on /products. Anything else is ignored and the
// default order (created_at descending) applies.
var orderableFields = map[string]bool{
	"price":          true,
	"created_at":     true,
	"stock_quantity": true,
}

// ParseProductFilters builds ProductFilters from raw query parameters.
// Numeric values that fail to parse and unrecognized in_stock/ordering
// values are skipped rather than rejected, so a sloppy client still gets
// the unfiltered listing instead of an error.
func ParseProductFilters(query url.Values) ProductFilters {
	f := ProductFilters{OrderBy: "created_at", Descending: true}

	if v := query.Get("category"); v != "" {
		category := v
		f.CategoryID = &category
	}

	if v := query.Get("min_price"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &min
		}
	}

	if v := query.Get("max_price"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &max
		}
	}

	if v := query.Get("in_stock"); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			inStock := true
			f.InStock = &inStock
		case "false", "0", "no":
			inStock := false
			f.InStock = &inStock
		}
	}

	f.Search = strings.TrimSpace(query.Get("search"))

	if v := query.Get("ordering"); v != "" {
		field := v
		desc := false
		if strings.HasPrefix(v, "-") {
			field = v[1:]
			desc = true
		}
		if orderableFields[field] {
			f.OrderBy = field
			f.Descending = desc
		}
	}

	return f
}
