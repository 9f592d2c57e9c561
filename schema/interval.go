package schema

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const day = 24 * time.Hour

func encodeInterval(d time.Duration) any {
	return fmt.Sprintf("%d microseconds", d.Microseconds())
}

func decodeInterval(v any) (time.Duration, error) {
	switch v := v.(type) {
	case nil:
		return 0, errNull
	case time.Duration:
		return v, nil
	case int64:
		return time.Duration(v) * time.Microsecond, nil
	}
	s, err := decodeString(v)
	if err != nil {
		return 0, err
	}
	return ParseInterval(s)
}

// ParseInterval parses an interval in the default "postgres" output style,
// e.g. "1 year 2 mons 3 days 04:05:06.5" or "-00:30:00". Months count as
// 30 days, as pgx does when converting to time.Duration.
func ParseInterval(s string) (time.Duration, error) {
	var iv pgtype.Interval
	if err := iv.Scan(s); err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", s, err)
	}
	us := int64(iv.Months)*30*int64(day/time.Microsecond) +
		int64(iv.Days)*int64(day/time.Microsecond) +
		iv.Microseconds
	return time.Duration(us) * time.Microsecond, nil
}
