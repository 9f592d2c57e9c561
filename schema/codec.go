package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func encodeString(v string) any { return v }

func decodeString(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", errNull
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported type %T for string", v)
	}
}

func decodeUUID(v any) (uuid.UUID, error) {
	switch v := v.(type) {
	case nil:
		return uuid.Nil, errNull
	case uuid.UUID:
		return v, nil
	case [16]byte:
		return uuid.UUID(v), nil
	case string:
		return uuid.Parse(v)
	case []byte:
		if len(v) == 16 {
			return uuid.FromBytes(v)
		}
		return uuid.ParseBytes(v)
	default:
		return uuid.Nil, fmt.Errorf("unsupported type %T for uuid", v)
	}
}

func decodeLocation(v any) (*time.Location, error) {
	if loc, ok := v.(*time.Location); ok {
		return loc, nil
	}
	s, err := decodeString(v)
	if err != nil {
		return nil, err
	}
	return time.LoadLocation(s)
}

func decodeTime(v any) (time.Time, error) {
	switch v := v.(type) {
	case nil:
		return time.Time{}, errNull
	case time.Time:
		return v, nil
	case string:
		return parseTimestamptz(v)
	case []byte:
		return parseTimestamptz(string(v))
	default:
		return time.Time{}, fmt.Errorf("unsupported type %T for timestamptz", v)
	}
}

// parseTimestamptz parses the Postgres text output of a timestamptz, such
// as "2024-01-01 12:00:00+00", and falls back to RFC 3339.
func parseTimestamptz(s string) (time.Time, error) {
	var ts pgtype.Timestamptz
	if err := ts.Scan(s); err != nil {
		if t, rerr := time.Parse(time.RFC3339Nano, s); rerr == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("invalid timestamptz %q: %w", s, err)
	}
	if ts.InfinityModifier != pgtype.Finite {
		return time.Time{}, fmt.Errorf("infinite timestamptz %q", s)
	}
	return ts.Time, nil
}

func decodeInt64(v any) (int64, error) {
	switch v := v.(type) {
	case nil:
		return 0, errNull
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	default:
		return 0, fmt.Errorf("unsupported type %T for integer", v)
	}
}

func decodeInt32(v any) (int32, error) {
	n, err := decodeInt64(v)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("value %d out of range for int4", n)
	}
	return int32(n), nil
}

func decodeBool(v any) (bool, error) {
	switch v := v.(type) {
	case nil:
		return false, errNull
	case bool:
		return v, nil
	case string:
		return parseBool(v)
	case []byte:
		return parseBool(string(v))
	default:
		return false, fmt.Errorf("unsupported type %T for bool", v)
	}
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "t", "true", "y", "yes", "on", "1":
		return true, nil
	case "f", "false", "n", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool %q", s)
}
