package faker

import "time"

// Default arguments of the time operations.
const (
	DefaultDateLayout = time.DateOnly
	DefaultTimeLayout = time.TimeOnly
	DefaultInterval   = 5 * 24 * time.Hour
)

// Operations taking a max time treat the zero time as now. Results are UTC.

// UnixTime returns Unix seconds between the epoch and max.
func (g *Generator) UnixTime(max time.Time) (int64, error) {
	return call[int64](g, "unixTime", timeArg(max))
}

// DateTime returns a time between the epoch and max.
func (g *Generator) DateTime(max time.Time) (time.Time, error) {
	return call[time.Time](g, "dateTime", timeArg(max))
}

// DateTimeAD returns a time between 0001-01-01 and max.
func (g *Generator) DateTimeAD(max time.Time) (time.Time, error) {
	return call[time.Time](g, "dateTimeAD", timeArg(max))
}

// ISO8601 returns a timestamp such as "2003-10-21T16:05:52+0000".
func (g *Generator) ISO8601(max time.Time) (string, error) {
	return call[string](g, "iso8601", timeArg(max))
}

// Date returns a date formatted with layout.
func (g *Generator) Date(layout string, max time.Time) (string, error) {
	return call[string](g, "date", layout, timeArg(max))
}

// Time returns a time of day formatted with layout.
func (g *Generator) Time(layout string, max time.Time) (string, error) {
	return call[string](g, "time", layout, timeArg(max))
}

// DateTimeBetween returns a time in [start, end].
func (g *Generator) DateTimeBetween(start, end time.Time) (time.Time, error) {
	return call[time.Time](g, "dateTimeBetween", start, end)
}

// DateTimeInInterval returns a time between base and base+interval. The
// interval may be negative.
func (g *Generator) DateTimeInInterval(base time.Time, interval time.Duration) (time.Time, error) {
	return call[time.Time](g, "dateTimeInInterval", base, interval)
}

// DateTimeThisCentury returns a time within the hundred years before max.
func (g *Generator) DateTimeThisCentury(max time.Time) (time.Time, error) {
	return call[time.Time](g, "dateTimeThisCentury", timeArg(max))
}

// DateTimeThisDecade returns a time within the ten years before max.
func (g *Generator) DateTimeThisDecade(max time.Time) (time.Time, error) {
	return call[time.Time](g, "dateTimeThisDecade", timeArg(max))
}

// DateTimeThisYear returns a time within the year before max.
func (g *Generator) DateTimeThisYear(max time.Time) (time.Time, error) {
	return call[time.Time](g, "dateTimeThisYear", timeArg(max))
}

// DateTimeThisMonth returns a time within the month before max.
func (g *Generator) DateTimeThisMonth(max time.Time) (time.Time, error) {
	return call[time.Time](g, "dateTimeThisMonth", timeArg(max))
}

// AmPm returns "am" or "pm".
func (g *Generator) AmPm(max time.Time) (string, error) {
	return call[string](g, "amPm", timeArg(max))
}

// DayOfMonth returns a zero-padded day, e.g. "04".
func (g *Generator) DayOfMonth(max time.Time) (string, error) {
	return call[string](g, "dayOfMonth", timeArg(max))
}

// DayOfWeek returns a weekday name, e.g. "Friday".
func (g *Generator) DayOfWeek(max time.Time) (string, error) {
	return call[string](g, "dayOfWeek", timeArg(max))
}

// Month returns a zero-padded month number, e.g. "06".
func (g *Generator) Month(max time.Time) (string, error) {
	return call[string](g, "month", timeArg(max))
}

// MonthName returns a month name, e.g. "January".
func (g *Generator) MonthName(max time.Time) (string, error) {
	return call[string](g, "monthName", timeArg(max))
}

// Year returns a four digit year, e.g. "1993".
func (g *Generator) Year(max time.Time) (string, error) {
	return call[string](g, "year", timeArg(max))
}

// Century returns a century in Roman numerals, e.g. "XVI".
func (g *Generator) Century() (string, error) {
	return call[string](g, "century")
}

// Timezone returns an IANA time zone name, e.g. "Europe/Paris".
func (g *Generator) Timezone() (string, error) {
	return call[string](g, "timezone")
}

func timeArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
