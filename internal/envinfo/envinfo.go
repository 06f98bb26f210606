// Package envinfo captures optional environment details for the rendered
// certificate: local/UTC time, timezone, client software and a coarse
// location. Every field is independently optional; absence is modeled
// explicitly rather than by empty-string checks.
package envinfo

import "time"

// Details holds the optional environment block. Nil fields are absent and
// are skipped by the renderer without leaving gaps.
type Details struct {
	LocalTime *string   `json:"localTime,omitempty"`
	UTCTime   *string   `json:"utcTime,omitempty"`
	TimeZone  *string   `json:"timeZone,omitempty"`
	UserAgent *string   `json:"userAgent,omitempty"`
	Location  *Location `json:"location,omitempty"`
}

// Location is a coarse position fix.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// AccuracyM is the radius of confidence in meters, 0 if unknown.
	AccuracyM float64 `json:"accuracy,omitempty"`
}

// Empty reports whether no field is present. An empty Details block is not
// rendered at all.
func (d *Details) Empty() bool {
	if d == nil {
		return true
	}
	return d.LocalTime == nil && d.UTCTime == nil && d.TimeZone == nil &&
		d.UserAgent == nil && d.Location == nil
}

// Collect fills the time-derived fields from the given instant.
func Collect(now time.Time) *Details {
	local := now.Format("2006-01-02 15:04:05 MST")
	utc := now.UTC().Format("2006-01-02 15:04:05 UTC")
	zone, _ := now.Zone()
	return &Details{
		LocalTime: &local,
		UTCTime:   &utc,
		TimeZone:  &zone,
	}
}

// String is a convenience for building optional string fields.
func String(s string) *string { return &s }
