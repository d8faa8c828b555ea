package gateway

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrijs2005/landkeeper/internal/models"
)

type Op string

const (
	OpEq Op = "eq"
	OpIn Op = "in"
)

// Filter restricts a List to rows whose Column matches Value (OpEq) or any
// of Values (OpIn).
type Filter struct {
	Column string
	Op     Op
	Value  any
	Values []any
}

func Eq(col string, v any) Filter { return Filter{Column: col, Op: OpEq, Value: v} }

func In[T any](col string, vs []T) Filter {
	values := make([]any, len(vs))
	for i, v := range vs {
		values[i] = v
	}
	return Filter{Column: col, Op: OpIn, Values: values}
}

type Order struct {
	Column string
	Desc   bool
}

func Asc(col string) Order  { return Order{Column: col} }
func Desc(col string) Order { return Order{Column: col, Desc: true} }

// Query is the filter and ordering of a List call. The zero value lists
// every row in store order.
type Query struct {
	Filters []Filter
	Orders  []Order
}

// Matches reports whether row satisfies every filter of q. Values are
// compared after decoding the row value to the filter value's type, so SQL
// scan types and feed payload types agree.
func (q Query) Matches(row models.Row) bool {
	for _, f := range q.Filters {
		got := row[f.Column]
		switch f.Op {
		case OpIn:
			if !slices.ContainsFunc(f.Values, func(v any) bool { return equalValue(v, got) }) {
				return false
			}
		default:
			if !equalValue(f.Value, got) {
				return false
			}
		}
	}
	return true
}

// SortRows orders rows in place by q.Orders, ties keeping input order.
func (q Query) SortRows(rows []models.Row) {
	if len(q.Orders) == 0 {
		return
	}
	slices.SortStableFunc(rows, func(a, b models.Row) int {
		for _, o := range q.Orders {
			c := compareValues(a[o.Column], b[o.Column])
			if o.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

func equalValue(want, got any) bool {
	switch w := want.(type) {
	case bool:
		return models.AsBool(got) == w
	case int, int64, float64:
		return models.AsFloat(got) == models.AsFloat(w)
	default:
		return models.AsString(got) == models.AsString(w)
	}
}

func compareValues(a, b any) int {
	_, aBool := a.(bool)
	_, bBool := b.(bool)
	if aBool || bBool {
		return cmp.Compare(boolRank(models.AsBool(a)), boolRank(models.AsBool(b)))
	}
	switch a.(type) {
	case int64, int, float64:
		return cmp.Compare(models.AsFloat(a), models.AsFloat(b))
	}
	ta, tb := models.AsTime(a), models.AsTime(b)
	if !ta.IsZero() || !tb.IsZero() {
		return ta.Compare(tb)
	}
	return strings.Compare(models.AsString(a), models.AsString(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
