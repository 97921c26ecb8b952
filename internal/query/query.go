// Package query builds canonical query strings for the list endpoints.
// Unset fields (empty strings, nil bounds) are omitted entirely, so the
// zero-value filter set encodes to the empty query and clearing filters
// reproduces the initial unfiltered fetch.
package query

import (
	"net/url"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

func SetString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func SetInt(v url.Values, key string, value *int) {
	if value != nil {
		v.Set(key, strconv.Itoa(*value))
	}
}

func SetFloat(v url.Values, key string, value *float64) {
	if value != nil {
		v.Set(key, strconv.FormatFloat(*value, 'f', -1, 64))
	}
}

// SetDate encodes a calendar date; list filtering carries no time component.
func SetDate(v url.Values, key string, value *time.Time) {
	if value != nil {
		v.Set(key, value.Format(dateLayout))
	}
}

// URL appends the encoded values to base, omitting the "?" when every field
// was unset. url.Values.Encode sorts keys, which keeps the result canonical.
func URL(base string, v url.Values) string {
	encoded := v.Encode()
	if encoded == "" {
		return base
	}
	return base + "?" + encoded
}
