package value

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Kind classifies a Go value the way patterns see it.
type Kind int

const (
	KindOther Kind = iota
	KindNil
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindArray
	KindHash
)

// KindOf returns the kind of v. Scalars are classified by their builtin
// types only, so a named string type is KindOther. Any slice or array is
// KindArray and any map with string keys is KindHash.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNil
	case bool:
		return KindBoolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	case []any, []string, []int, []int64, []float64, []bool:
		return KindArray
	case map[string]any, *Map:
		return KindHash
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindHash
		}
	}
	return KindOther
}

// IsNumber reports whether v is an integer or a float.
func IsNumber(v any) bool {
	k := KindOf(v)
	return k == KindInteger || k == KindFloat
}

func toInt64(v any) (int64, bool) {
	switch value := v.(type) {
	case int:
		return int64(value), true
	case int8:
		return int64(value), true
	case int16:
		return int64(value), true
	case int32:
		return int64(value), true
	case int64:
		return value, true
	case uint:
		if uint64(value) > math.MaxInt64 {
			return 0, false
		}
		return int64(value), true
	case uint8:
		return int64(value), true
	case uint16:
		return int64(value), true
	case uint32:
		return int64(value), true
	case uint64:
		if value > math.MaxInt64 {
			return 0, false
		}
		return int64(value), true
	}
	return 0, false
}

func toFloat64(v any) float64 {
	switch value := v.(type) {
	case int:
		return float64(value)
	case int8:
		return float64(value)
	case int16:
		return float64(value)
	case int32:
		return float64(value)
	case int64:
		return float64(value)
	case uint:
		return float64(value)
	case uint8:
		return float64(value)
	case uint16:
		return float64(value)
	case uint32:
		return float64(value)
	case uint64:
		return float64(value)
	case float32:
		return float64(value)
	case float64:
		return value
	}
	return math.NaN()
}

// Equal reports whether a and b are equal by value. Integers and floats
// compare numerically (1 equals 1.0), arrays element-wise and hashes key-wise
// regardless of their Go representation. Any other values are equal when
// their dynamic types are comparable and == holds, or when a implements
// Equaler and says so.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	switch {
	case ka == KindInteger && kb == KindInteger:
		x, okx := toInt64(a)
		y, oky := toInt64(b)
		if okx && oky {
			return x == y
		}
		return toFloat64(a) == toFloat64(b)
	case IsNumber(a) && IsNumber(b):
		return toFloat64(a) == toFloat64(b)
	case ka != kb:
		return false
	case ka == KindArray:
		x, _ := Sequence(a)
		y, _ := Sequence(b)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case ka == KindHash:
		x, _ := KeyValues(a, nil)
		y, _ := KeyValues(b, nil)
		if x.Len() != y.Len() {
			return false
		}
		for _, k := range x.Keys() {
			xv, _ := x.Get(k)
			yv, ok := y.Get(k)
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	// The dynamic check also looks inside interface fields.
	if !reflect.ValueOf(a).Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// Equaler is implemented by custom values with their own notion of equality.
type Equaler interface {
	Equal(other any) bool
}

func compareOrdered[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// AsFloat returns v as a float64 when it is an integer or a float.
func AsFloat(v any) (float64, bool) {
	if !IsNumber(v) {
		return 0, false
	}
	return toFloat64(v), true
}

// Compare orders two numbers or two strings. The boolean is false when the
// values are not mutually ordered.
func Compare(a, b any) (int, bool) {
	switch {
	case KindOf(a) == KindInteger && KindOf(b) == KindInteger:
		x, okx := toInt64(a)
		y, oky := toInt64(b)
		if okx && oky {
			return compareOrdered(x, y), true
		}
		return compareOrdered(toFloat64(a), toFloat64(b)), true
	case IsNumber(a) && IsNumber(b):
		x, y := toFloat64(a), toFloat64(b)
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, false
		}
		return compareOrdered(x, y), true
	}
	x, okx := a.(string)
	y, oky := b.(string)
	if okx && oky {
		return compareOrdered(x, y), true
	}
	return 0, false
}

// InRange reports whether v lies within [begin, end] (or [begin, end) when
// exclusive). A nil bound leaves that side open.
func InRange(v, begin, end any, exclusive bool) bool {
	if begin != nil {
		c, ok := Compare(begin, v)
		if !ok || c > 0 {
			return false
		}
	}
	if end != nil {
		c, ok := Compare(v, end)
		if !ok || c > 0 || exclusive && c == 0 {
			return false
		}
	}
	return begin != nil || end != nil
}
