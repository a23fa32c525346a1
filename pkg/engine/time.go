package engine

import (
	"time"
)

var centuries = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII", "XIII", "XIV",
	"XV", "XVI", "XVII", "XVIII", "XIX", "XX", "XXI",
}

// ISO8601 is the layout of the iso8601 formatter.
const ISO8601 = "2006-01-02T15:04:05-0700"

var (
	epoch  = time.Unix(0, 0).UTC()
	yearAD = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
)

func init() {
	register("time", map[string]Formatter{
		"unixTime": func(e *Engine, a Args) (any, error) {
			t, err := e.dateTimeUntil(a, 0, epoch)
			if err != nil {
				return nil, err
			}
			return t.Unix(), nil
		},
		"dateTime": func(e *Engine, a Args) (any, error) {
			return e.dateTimeUntil(a, 0, epoch)
		},
		"dateTimeAD": func(e *Engine, a Args) (any, error) {
			return e.dateTimeUntil(a, 0, yearAD)
		},
		"iso8601": func(e *Engine, a Args) (any, error) {
			return e.formatted(a, ISO8601)
		},
		"date": func(e *Engine, a Args) (any, error) {
			return e.layoutAndMax(a, time.DateOnly)
		},
		"time": func(e *Engine, a Args) (any, error) {
			return e.layoutAndMax(a, time.TimeOnly)
		},
		"dateTimeBetween": func(e *Engine, a Args) (any, error) {
			now := e.now().UTC()
			start, err := a.Time(0, now.AddDate(-30, 0, 0), now)
			if err != nil {
				return nil, err
			}
			end, err := a.Time(1, now, now)
			if err != nil {
				return nil, err
			}
			return e.timeBetween(start, end)
		},
		"dateTimeInInterval": func(e *Engine, a Args) (any, error) {
			now := e.now().UTC()
			base, err := a.Time(0, now.AddDate(-30, 0, 0), now)
			if err != nil {
				return nil, err
			}
			interval, err := a.Duration(1, 5*24*time.Hour)
			if err != nil {
				return nil, err
			}
			start, end := base, base.Add(interval)
			if interval < 0 {
				start, end = end, start
			}
			return e.timeBetween(start, end)
		},
		"dateTimeThisCentury": func(e *Engine, a Args) (any, error) {
			return e.dateTimeWithin(a, -100, 0)
		},
		"dateTimeThisDecade": func(e *Engine, a Args) (any, error) {
			return e.dateTimeWithin(a, -10, 0)
		},
		"dateTimeThisYear": func(e *Engine, a Args) (any, error) {
			return e.dateTimeWithin(a, -1, 0)
		},
		"dateTimeThisMonth": func(e *Engine, a Args) (any, error) {
			return e.dateTimeWithin(a, 0, -1)
		},
		"amPm": func(e *Engine, a Args) (any, error) {
			return e.formatted(a, "pm")
		},
		"dayOfMonth": func(e *Engine, a Args) (any, error) {
			return e.formatted(a, "02")
		},
		"dayOfWeek": func(e *Engine, a Args) (any, error) {
			return e.formatted(a, "Monday")
		},
		"month": func(e *Engine, a Args) (any, error) {
			return e.formatted(a, "01")
		},
		"monthName": func(e *Engine, a Args) (any, error) {
			return e.formatted(a, "January")
		},
		"year": func(e *Engine, a Args) (any, error) {
			return e.formatted(a, "2006")
		},
		"century": func(e *Engine, _ Args) (any, error) {
			return centuries[e.rng.IntN(len(centuries))], nil
		},
		"timezone": func(e *Engine, _ Args) (any, error) {
			return e.faker.TimeZoneRegion(), nil
		},
	})
}

// dateTimeUntil draws a time between from and the max argument at index i.
func (e *Engine) dateTimeUntil(a Args, i int, from time.Time) (time.Time, error) {
	now := e.now()
	max, err := a.Time(i, now, now)
	if err != nil {
		return time.Time{}, err
	}
	return e.timeBetween(from, max)
}

// dateTimeWithin draws a time between max shifted back by years and months, and max.
func (e *Engine) dateTimeWithin(a Args, years, months int) (time.Time, error) {
	now := e.now()
	max, err := a.Time(0, now, now)
	if err != nil {
		return time.Time{}, err
	}
	return e.timeBetween(max.AddDate(years, months, 0), max)
}

func (e *Engine) formatted(a Args, layout string) (string, error) {
	t, err := e.dateTimeUntil(a, 0, epoch)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

func (e *Engine) layoutAndMax(a Args, def string) (string, error) {
	layout, err := a.String(0, def)
	if err != nil {
		return "", err
	}
	t, err := e.dateTimeUntil(a, 1, epoch)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// timeBetween draws a UTC time in [start, end] with second precision.
func (e *Engine) timeBetween(start, end time.Time) (time.Time, error) {
	if start.After(end) {
		return time.Time{}, invalidArg("start %s is after end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	sec := e.between64(start.Unix(), end.Unix())
	return time.Unix(sec, 0).UTC(), nil
}
