package entities

import "time"

// ParseInstant accepts the two date shapes the dashboard sends: full RFC3339
// timestamps and bare YYYY-MM-DD form dates.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
