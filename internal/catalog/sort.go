package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// SortOrder is a value of the inventory sort control
type SortOrder string

// The four options offered by the product sort control
const (
	SortNameAZ       SortOrder = "az"
	SortNameZA       SortOrder = "za"
	SortPriceLowHigh SortOrder = "lohi"
	SortPriceHighLow SortOrder = "hilo"
)

// DefaultSortOrder is the option selected when the inventory first loads
const DefaultSortOrder = SortNameAZ

// ErrInvalidSortOrder is returned for values outside the sort control's options
var ErrInvalidSortOrder = errors.New("invalid sort order")

// SortOrders lists the options in the order the control renders them
func SortOrders() []SortOrder {
	return []SortOrder{SortNameAZ, SortNameZA, SortPriceLowHigh, SortPriceHighLow}
}

// ParseSortOrder validates a raw control value
func ParseSortOrder(v string) (SortOrder, error) {
	for _, o := range SortOrders() {
		if string(o) == v {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, v)
}

// Label is the option text shown by the control
func (o SortOrder) Label() string {
	switch o {
	case SortNameAZ:
		return "Name (A to Z)"
	case SortNameZA:
		return "Name (Z to A)"
	case SortPriceLowHigh:
		return "Price (low to high)"
	case SortPriceHighLow:
		return "Price (high to low)"
	default:
		return string(o)
	}
}

// Sort returns a sorted copy of in. Price ties keep name order.
func Sort(in []Item, order SortOrder) []Item {
	out := make([]Item, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	switch order {
	case SortNameZA:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	case SortPriceLowHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHighLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}
