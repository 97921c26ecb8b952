package inventory

import (
	"strings"
)

// Filters narrows the inventory list. The list endpoint takes no query
// parameters, so filtering happens against the loaded rows; the same cleared
// set therefore always reproduces the full fetched list.
type Filters struct {
	Location           string
	AssetCategory      string
	Category           string
	Criticality        string
	MinimumQuantityMin *int
	MinimumQuantityMax *int
}

func (f Filters) Match(item Item, search string) bool {
	if search != "" {
		s := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(item.PartCode), s) &&
			!strings.Contains(strings.ToLower(item.PartName), s) &&
			!strings.Contains(strings.ToLower(item.Description), s) {
			return false
		}
	}

	if f.Location != "" {
		found := false
		for _, b := range item.Balances {
			if b.LocationName == f.Location {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.AssetCategory != "" && item.Category != f.AssetCategory {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Criticality != "" && item.Criticality != f.Criticality {
		return false
	}

	if f.MinimumQuantityMin != nil && item.MinimumQuantity < *f.MinimumQuantityMin {
		return false
	}
	if f.MinimumQuantityMax != nil && item.MinimumQuantity > *f.MinimumQuantityMax {
		return false
	}

	return true
}

func FilterItems(items []Item, f Filters, search string) []Item {
	var matched []Item
	for _, item := range items {
		if f.Match(item, search) {
			matched = append(matched, item)
		}
	}
	return matched
}
