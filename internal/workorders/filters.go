package workorders

import (
	"net/url"
	"time"

	"github.com/srm221B/cmms/internal/query"
)

type Filters struct {
	Plant  string
	Asset  string
	Type   string
	Status string

	ScheduledDateStart *time.Time
	ScheduledDateEnd   *time.Time
	StartDateStart     *time.Time
	StartDateEnd       *time.Time
	EndDateStart       *time.Time
	EndDateEnd         *time.Time
	EstimatedHoursMin  *float64
	EstimatedHoursMax  *float64
	ActualHoursMin     *float64
	ActualHoursMax     *float64
}

func (f Filters) Values(search string) url.Values {
	v := url.Values{}
	query.SetString(v, "plant", f.Plant)
	query.SetString(v, "asset", f.Asset)
	query.SetString(v, "type", f.Type)
	query.SetString(v, "status", f.Status)
	query.SetDate(v, "scheduled_date_start", f.ScheduledDateStart)
	query.SetDate(v, "scheduled_date_end", f.ScheduledDateEnd)
	query.SetDate(v, "start_date_start", f.StartDateStart)
	query.SetDate(v, "start_date_end", f.StartDateEnd)
	query.SetDate(v, "end_date_start", f.EndDateStart)
	query.SetDate(v, "end_date_end", f.EndDateEnd)
	query.SetFloat(v, "estimated_hours_min", f.EstimatedHoursMin)
	query.SetFloat(v, "estimated_hours_max", f.EstimatedHoursMax)
	query.SetFloat(v, "actual_hours_min", f.ActualHoursMin)
	query.SetFloat(v, "actual_hours_max", f.ActualHoursMax)
	query.SetString(v, "search", search)
	return v
}
