package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Display layouts used by the console tables.
const (
	DateLayout     = "2006/01/02"
	ClockLayout    = "15:04"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// the backend emits offset-less local date-times as well as RFC 3339
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	DateTimeLayout,
	"2006-01-02",
}

// Timestamp is a server date-time. null and "" decode to the zero value.
type Timestamp struct {
	time.Time
}

func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Timestamp{t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}
	v, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Date renders YYYY/MM/DD, or "-" for the zero value.
func (t Timestamp) Date() string {
	return t.layout(DateLayout)
}

// Clock renders HH:mm.
func (t Timestamp) Clock() string {
	return t.layout(ClockLayout)
}

// DateTime renders YYYY-MM-DD HH:mm:ss.
func (t Timestamp) DateTime() string {
	return t.layout(DateTimeLayout)
}

func (t Timestamp) layout(l string) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(l)
}
