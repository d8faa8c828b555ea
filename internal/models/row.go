// Package models holds the record types the admin console edits and the
// mapping between them and the untyped rows exchanged with the table
// gateway and the change feed.
package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Row is a flat column → value map as returned by the table gateway or
// carried in a change-feed payload.
type Row map[string]any

// Clone returns a shallow copy of r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a copy of r with patch applied on top.
func (r Row) Merge(patch Row) Row {
	out := r.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

func (r Row) Has(col string) bool {
	_, ok := r[col]
	return ok
}

func (r Row) ID() string { return r.String("id") }

func (r Row) String(col string) string { return AsString(r[col]) }

func (r Row) Bool(col string) bool { return AsBool(r[col]) }

func (r Row) Int(col string) int64 { return AsInt(r[col]) }

func (r Row) Float(col string) float64 { return AsFloat(r[col]) }

func (r Row) Time(col string) time.Time { return AsTime(r[col]) }

// TimePtr is like Time but keeps SQL NULL distinguishable from a zero time.
func (r Row) TimePtr(col string) *time.Time {
	v, ok := r[col]
	if !ok || v == nil {
		return nil
	}
	t := AsTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}

// AsString decodes database/sql scan values (string, []byte, uuid bytes)
// as well as JSON-decoded feed values.
func AsString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case [16]byte:
		return uuid.UUID(x).String()
	case uuid.UUID:
		return x.String()
	case fmt.Stringer:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func AsBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int64:
		return x != 0
	case int:
		return x != 0
	case float64:
		return x != 0
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(x))
		return b
	case []byte:
		return AsBool(string(x))
	default:
		return false
	}
}

func AsInt(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float64:
		return int64(math.Round(x))
	case json.Number:
		n, _ := x.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		return n
	case []byte:
		return AsInt(string(x))
	default:
		return 0
	}
}

func AsFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case json.Number:
		f, _ := x.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f
	case []byte:
		return AsFloat(string(x))
	default:
		return 0
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999 -0700 MST",
}

func AsTime(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x.UTC()
	case *time.Time:
		if x == nil {
			return time.Time{}
		}
		return x.UTC()
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, x); err == nil {
				return t.UTC()
			}
		}
		return time.Time{}
	case []byte:
		return AsTime(string(x))
	case int64:
		return time.Unix(x, 0).UTC()
	default:
		return time.Time{}
	}
}

// NullableString maps "" to nil so optional text columns are stored as NULL.
func NullableString(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
