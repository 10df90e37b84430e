package weather

import (
	"time"
	_ "time/tzdata" // the display zone must resolve on hosts without zoneinfo
)

const (
	// DefaultDisplayTimezone is the zone every day and hour label is computed in.
	DefaultDisplayTimezone = "America/Sao_Paulo"

	// InvalidLabel is returned for timestamps that cannot be formatted.
	InvalidLabel = "Invalid Date"

	invalidDayKey = "invalid"
)

// Brazilian Portuguese short weekday names, indexed by time.Weekday.
var weekdaysPtBR = [...]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."}

// Formatter turns epoch seconds into labels in one fixed zone and locale.
// The zero value formats in UTC.
type Formatter struct {
	loc *time.Location
}

// NewFormatter returns a Formatter for the given zone.
func NewFormatter(loc *time.Location) Formatter {
	return Formatter{loc: loc}
}

// NewFormatterFor loads an IANA zone name and returns a Formatter for it.
func NewFormatterFor(zone string) (Formatter, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Formatter{}, err
	}
	return NewFormatter(loc), nil
}

// DefaultFormatter formats in DefaultDisplayTimezone.
func DefaultFormatter() Formatter {
	f, err := NewFormatterFor(DefaultDisplayTimezone)
	if err != nil {
		return Formatter{loc: time.UTC}
	}
	return f
}

// Location returns the zone labels are computed in.
func (f Formatter) Location() *time.Location {
	if f.loc == nil {
		return time.UTC
	}
	return f.loc
}

func (f Formatter) local(epochSeconds int64) (time.Time, bool) {
	if epochSeconds < 0 {
		return time.Time{}, false
	}
	return time.Unix(epochSeconds, 0).In(f.Location()), true
}

// FormatDay returns the short weekday label ("seg.", "ter.", ...).
func (f Formatter) FormatDay(epochSeconds int64) string {
	t, ok := f.local(epochSeconds)
	if !ok {
		return InvalidLabel
	}
	return weekdaysPtBR[t.Weekday()]
}

// FormatHour returns the zero-padded 24-hour clock hour ("00".."23").
func (f Formatter) FormatHour(epochSeconds int64) string {
	t, ok := f.local(epochSeconds)
	if !ok {
		return InvalidLabel
	}
	return t.Format("15")
}

// DayKey returns the local calendar date ("2006-01-02"). Samples share a day
// group iff their keys are equal.
func (f Formatter) DayKey(epochSeconds int64) string {
	t, ok := f.local(epochSeconds)
	if !ok {
		return invalidDayKey
	}
	return t.Format(time.DateOnly)
}
