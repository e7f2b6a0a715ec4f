package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/comalice/dataobj"
)

// ParseMatch compiles an expression of the form "field op value" into a
// predicate over array elements.
//
// field "." selects the element itself; any other field is looked up in
// elements that are map[string]any. op is one of ==, !=, > and <. value is
// true, false, nil, a number or a bare string. Numbers compare as float64
// regardless of their stored integer or float type.
func ParseMatch(expr string) (dataobj.Predicate, error) {
	parts := strings.Fields(expr)
	if len(parts) != 3 {
		return nil, fmt.Errorf("match %q: want \"field op value\"", expr)
	}
	field, op, lit := parts[0], parts[1], parts[2]

	var cmp func(v any) bool
	switch op {
	case "==":
		cmp = func(v any) bool { return equalLiteral(v, lit) }
	case "!=":
		cmp = func(v any) bool { return !equalLiteral(v, lit) }
	case ">", "<":
		want, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("match %q: %s needs a number", expr, op)
		}
		cmp = func(v any) bool {
			f, ok := toFloat(v)
			if !ok {
				return false
			}
			if op == ">" {
				return f > want
			}
			return f < want
		}
	default:
		return nil, fmt.Errorf("match %q: unknown operator %q", expr, op)
	}

	return func(item any) bool {
		v, ok := lookupField(item, field)
		if !ok {
			return false
		}
		return cmp(v)
	}, nil
}

func lookupField(item any, field string) (any, bool) {
	if field == "." {
		return item, true
	}
	m, ok := item.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[field]
	return v, ok
}

func equalLiteral(v any, lit string) bool {
	switch lit {
	case "true":
		return v == true
	case "false":
		return v == false
	case "nil", "null":
		return v == nil
	}
	if want, err := strconv.ParseFloat(lit, 64); err == nil {
		if f, ok := toFloat(v); ok {
			return f == want
		}
	}
	if s, ok := v.(string); ok {
		return s == strings.Trim(lit, `"'`)
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}
