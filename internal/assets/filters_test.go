package assets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/srm221B/cmms/internal/query"
)

func TestZeroFiltersEncodeToEmptyQuery(t *testing.T) {
	v := Filters{}.Values("")

	assert.Empty(t, v)
	assert.Equal(t, "http://api/assets", query.URL("http://api/assets", v))
}

func TestClearedFiltersEqualZeroFilters(t *testing.T) {
	hours := 1000.0
	f := Filters{Plant: "Unit 1", RunningHoursMin: &hours}
	f.Plant = ""
	f.RunningHoursMin = nil

	assert.Equal(t, Filters{}.Values("").Encode(), f.Values("").Encode())
}

func TestValuesEncodeOnlySetFields(t *testing.T) {
	min := 40000.0
	cod := time.Date(2011, 3, 15, 0, 0, 0, 0, time.UTC)
	f := Filters{
		Plant:           "Unit 1 Store",
		Status:          "operational",
		RunningHoursMin: &min,
		CODStart:        &cod,
	}

	v := f.Values("engine")

	assert.Equal(t, "Unit 1 Store", v.Get("plant"))
	assert.Equal(t, "operational", v.Get("status"))
	assert.Equal(t, "40000", v.Get("running_hours_min"))
	assert.Equal(t, "2011-03-15", v.Get("cod_start"))
	assert.Equal(t, "engine", v.Get("search"))
	assert.NotContains(t, v, "running_hours_max")
	assert.NotContains(t, v, "asset_category")
}

func TestValuesAreOrderIndependent(t *testing.T) {
	min, max := 70.0, 95.0
	a := Filters{AvailabilityMin: &min, AvailabilityMax: &max, Plant: "Unit 1"}
	b := Filters{Plant: "Unit 1", AvailabilityMax: &max, AvailabilityMin: &min}

	assert.Equal(t,
		query.URL("http://api/assets", a.Values("")),
		query.URL("http://api/assets", b.Values("")))
}
