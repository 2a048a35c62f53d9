package utils

import "time"

// Day is a calendar day used as the bucket key for daily logs (steps, water,
// weight) and for chart series. Day boundaries are UTC everywhere: a write and
// the read that charts it must agree on the bucket, so the policy is fixed
// here rather than left to each caller's location.
type Day struct{ time.Time }

const dayLayout = "2006-01-02"

// DayOf normalizes a timestamp to its UTC calendar day.
func DayOf(t time.Time) Day {
	u := t.UTC()
	return Day{time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC calendar day.
func Today() Day {
	return DayOf(time.Now())
}

// ParseDay parses a YYYY-MM-DD string as a UTC calendar day.
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(dayLayout, s, time.UTC)
	if err != nil {
		return Day{}, err
	}
	return Day{t}, nil
}

// Key returns the YYYY-MM-DD form used as map key and in JSON responses.
func (d Day) Key() string {
	return d.Format(dayLayout)
}

// AddDays returns the day n calendar days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return Day{d.AddDate(0, 0, n)}
}

// Next returns the first instant of the following day, for use as the
// exclusive upper bound of a one-day range query.
func (d Day) Next() time.Time {
	return d.AddDate(0, 0, 1)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Key() + `"`), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"`+dayLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
