package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Inspect renders v in the literal syntax patterns use: strings quoted,
// arrays in brackets and hashes as {:key=>value}.
func Inspect(v any) string {
	var sb strings.Builder
	inspect(&sb, v)
	return sb.String()
}

// Format renders v the way string interpolation does: strings as-is,
// everything else inspected.
func Format(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return Inspect(v)
}

func inspect(sb *strings.Builder, v any) {
	switch value := v.(type) {
	case nil:
		sb.WriteString("nil")
		return
	case string:
		sb.WriteString(strconv.Quote(value))
		return
	case bool:
		sb.WriteString(strconv.FormatBool(value))
		return
	case float32:
		sb.WriteString(formatFloat(float64(value), 32))
		return
	case float64:
		sb.WriteString(formatFloat(value, 64))
		return
	}
	switch KindOf(v) {
	case KindInteger:
		fmt.Fprint(sb, v)
	case KindArray:
		seq, _ := Sequence(v)
		sb.WriteString("[")
		for i, e := range seq {
			if i > 0 {
				sb.WriteString(", ")
			}
			inspect(sb, e)
		}
		sb.WriteString("]")
	case KindHash:
		m, _ := KeyValues(v, nil)
		sb.WriteString("{")
		for i, k := range m.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}
			e, _ := m.Get(k)
			sb.WriteString(":" + k + "=>")
			inspect(sb, e)
		}
		sb.WriteString("}")
	default:
		if s, ok := v.(fmt.Stringer); ok {
			sb.WriteString(s.String())
			return
		}
		fmt.Fprintf(sb, "%v", v)
	}
}

func formatFloat(f float64, bitsize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	format := byte('f')
	if abs := math.Abs(f); abs >= 1e16 || abs != 0 && abs < 1e-4 {
		format = 'g'
	}
	s := strconv.FormatFloat(f, format, -1, bitsize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
