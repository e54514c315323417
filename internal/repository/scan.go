package repository

import (
	"fmt"
	"strings"
	"time"

	"wandshop-api/internal/model"
)

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05",
	model.DateLayout,
}

// decodeTime maps a DATETIME column that drivers may hand back as
// time.Time, string or []byte.
func decodeTime(entity, column string, v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		return parseTime(entity, column, t)
	case []byte:
		return parseTime(entity, column, string(t))
	case nil:
		return time.Time{}, &DecodeError{Entity: entity, Column: column, Err: fmt.Errorf("unexpected NULL")}
	default:
		return time.Time{}, &DecodeError{Entity: entity, Column: column, Err: fmt.Errorf("unsupported type %T", v)}
	}
}

func parseTime(entity, column, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &DecodeError{Entity: entity, Column: column, Err: fmt.Errorf("unparseable time %q", s)}
}

// decodeDate maps a calendar date column onto its "2006-01-02" form.
func decodeDate(entity, column string, v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case time.Time:
		return t.Format(model.DateLayout), nil
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	default:
		return "", &DecodeError{Entity: entity, Column: column, Err: fmt.Errorf("unsupported type %T", v)}
	}
}

// decodeEnum parses a stored enum value. Empty values are accepted only
// when optional is true.
func decodeEnum[T ~string](entity, column, raw string, optional bool, parse func(string) (T, error)) (T, error) {
	if raw == "" && optional {
		return "", nil
	}
	v, err := parse(raw)
	if err != nil {
		return "", &DecodeError{Entity: entity, Column: column, Err: err}
	}
	return v, nil
}

func likePattern(s string) string {
	return "%" + strings.TrimSpace(s) + "%"
}
