package value

import "reflect"

// SequenceView is implemented by custom types that can be matched by array
// and find patterns.
type SequenceView interface {
	Deconstruct() []any
}

// KeyValueView is implemented by custom types that can be matched by hash
// patterns. keys lists the keys the pattern asks for; it is nil when the
// pattern needs every key (a rest capture or **nil).
type KeyValueView interface {
	DeconstructKeys(keys []string) map[string]any
}

// Sequence returns the ordered-sequence view of v.
func Sequence(v any) ([]any, bool) {
	switch value := v.(type) {
	case []any:
		return value, true
	case []string:
		return widen(value), true
	case []int:
		return widen(value), true
	case []int64:
		return widen(value), true
	case []float64:
		return widen(value), true
	case []bool:
		return widen(value), true
	case SequenceView:
		return value.Deconstruct(), true
	}

	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func widen[T any](s []T) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

// KeyValues returns the key-value view of v. Plain Go maps and custom views
// come back with keys in sorted order; a *Map keeps its own order.
func KeyValues(v any, keys []string) (*Map, bool) {
	switch value := v.(type) {
	case *Map:
		if value == nil {
			return nil, false
		}
		return value, true
	case map[string]any:
		return FromGoMap(value), true
	case KeyValueView:
		return FromGoMap(value.DeconstructKeys(keys)), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	src := make(map[string]any, rv.Len())
	for iter := rv.MapRange(); iter.Next(); {
		src[iter.Key().String()] = iter.Value().Interface()
	}
	return FromGoMap(src), true
}
