// Package catalog turns storefront query strings into a structured
// filter/sort/page descriptor and compiles it into a store-agnostic
// predicate over products and their variants.
package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

type SortOrder string

const (
	SortDefault   SortOrder = "defaultSort"
	SortTitleAsc  SortOrder = "titleAsc"
	SortTitleDesc SortOrder = "titleDesc"
	SortLowPrice  SortOrder = "lowPrice"
	SortHighPrice SortOrder = "highPrice"
)

// Filter is one parsed filter triple. Value is an int for every field
// except category, which filters by name and stays a string.
type Filter struct {
	Field    string
	Operator string
	Value    interface{}
}

// Descriptor is the parsed representation of a product listing request.
type Descriptor struct {
	Filters []Filter
	Sort    SortOrder
	Page    int
}

const (
	filterPrefix  = "filters."
	fieldCategory = "category"
)

// ParseQuery decodes the raw query string (the part after "?") into a
// Descriptor. Filter keys follow the filters.<field>$<operator>=<value>
// convention; unrecognized keys are ignored and filter order is preserved.
// Page defaults to 1 and sort to defaultSort.
func ParseQuery(raw string) Descriptor {
	d := Descriptor{Sort: SortDefault, Page: 1}

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}

		switch {
		case key == "sort":
			d.Sort = parseSort(value)
		case key == "page":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				d.Page = n
			}
		case strings.HasPrefix(key, filterPrefix):
			if f, ok := parseFilter(key[len(filterPrefix):], value); ok {
				d.Filters = append(d.Filters, f)
			}
		}
	}

	return d
}

// parseFilter splits "<field>$<operator>" and coerces the value. Operators
// are not validated here; the compiler decides what it can use.
func parseFilter(key, value string) (Filter, bool) {
	field, operator, ok := strings.Cut(key, "$")
	if !ok || field == "" || operator == "" {
		return Filter{}, false
	}

	if field == fieldCategory {
		return Filter{Field: field, Operator: operator, Value: value}, true
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		// numeric fields with a non-numeric value match nothing; drop
		return Filter{}, false
	}
	return Filter{Field: field, Operator: operator, Value: n}, true
}

func parseSort(value string) SortOrder {
	switch SortOrder(value) {
	case SortTitleAsc, SortTitleDesc, SortLowPrice, SortHighPrice:
		return SortOrder(value)
	default:
		return SortDefault
	}
}
