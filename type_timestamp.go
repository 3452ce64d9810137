package tradebook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent day-granular timestamps in ISO-8601 form.
const DateFormat = "2006-01-02"
const DatetimeFormat = time.RFC3339

// timestampReadFormats are the accepted input layouts, tried in order.
// Broker exports use either a plain trade date or a full date-time.
var timestampReadFormats = []string{
	readDateFormat,
	DatetimeFormat,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000-0700",
}

// Timestamp represents the moment a trade took place. It carries day or
// day+time granularity and is used only for ordering and reporting.
type Timestamp struct {
	t time.Time
}

// NewTimestamp returns a day-granular Timestamp (midnight UTC).
func NewTimestamp(year int, month time.Month, day int) Timestamp {
	return Timestamp{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseTimestamp parses a trade timestamp. Both a plain date and a full
// date-time are accepted.
func ParseTimestamp(str string) (Timestamp, error) {
	str = strings.TrimSpace(str)
	for _, format := range timestampReadFormats {
		if on, err := time.Parse(format, str); err == nil {
			return Timestamp{t: on}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q want format %q or %q", str, DateFormat, DatetimeFormat)
}

// MustParseTimestamp is like ParseTimestamp but panics on error.
func MustParseTimestamp(str string) Timestamp {
	ts, err := ParseTimestamp(str)
	if err != nil {
		panic(err.Error())
	}
	return ts
}

// String formats a day-granular timestamp as a date, anything finer in RFC3339.
func (ts Timestamp) String() string {
	if ts.isMidnight() {
		return ts.t.Format(DateFormat)
	}
	return ts.t.Format(DatetimeFormat)
}

func (ts Timestamp) isMidnight() bool {
	h, m, s := ts.t.Clock()
	return h == 0 && m == 0 && s == 0 && ts.t.Nanosecond() == 0
}

func (ts Timestamp) IsZero() bool            { return ts.t.IsZero() }
func (ts Timestamp) Before(x Timestamp) bool { return ts.t.Before(x.t) }
func (ts Timestamp) After(x Timestamp) bool  { return ts.t.After(x.t) }
func (ts Timestamp) Equal(x Timestamp) bool  { return ts.t.Equal(x.t) }

// Time returns the canonical time.Time representation.
func (ts Timestamp) Time() time.Time { return ts.t }

// UnmarshalJSON implements the json specific way to unmarshal a timestamp from a json string.
func (ts *Timestamp) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(str)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	str := ts.String()
	return json.Marshal(&str)
}

// check that a Timestamp pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Timestamp)(nil)
var _ json.Unmarshaler = (*Timestamp)(nil)
