package assets

import (
	"net/url"
	"time"

	"github.com/srm221B/cmms/internal/query"
)

// Filters is the asset list filter set. String fields default to "" and
// numeric/date bounds to nil, both meaning "unset"; either side of a range
// may be given independently.
type Filters struct {
	Plant         string
	AssetCategory string
	Status        string

	RunningHoursMin    *float64
	RunningHoursMax    *float64
	PowerGenerationMin *float64
	PowerGenerationMax *float64
	LoadFactorMin      *float64
	LoadFactorMax      *float64
	AvailabilityMin    *float64
	AvailabilityMax    *float64
	CODStart           *time.Time
	CODEnd             *time.Time
	BIMMin             *float64
	BIMMax             *float64
}

func (f Filters) Values(search string) url.Values {
	v := url.Values{}
	query.SetString(v, "plant", f.Plant)
	query.SetString(v, "asset_category", f.AssetCategory)
	query.SetString(v, "status", f.Status)
	query.SetFloat(v, "running_hours_min", f.RunningHoursMin)
	query.SetFloat(v, "running_hours_max", f.RunningHoursMax)
	query.SetFloat(v, "power_generation_min", f.PowerGenerationMin)
	query.SetFloat(v, "power_generation_max", f.PowerGenerationMax)
	query.SetFloat(v, "load_factor_min", f.LoadFactorMin)
	query.SetFloat(v, "load_factor_max", f.LoadFactorMax)
	query.SetFloat(v, "availability_min", f.AvailabilityMin)
	query.SetFloat(v, "availability_max", f.AvailabilityMax)
	query.SetDate(v, "cod_start", f.CODStart)
	query.SetDate(v, "cod_end", f.CODEnd)
	query.SetFloat(v, "bim_min", f.BIMMin)
	query.SetFloat(v, "bim_max", f.BIMMax)
	query.SetString(v, "search", search)
	return v
}
