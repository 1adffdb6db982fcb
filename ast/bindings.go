package ast

// Bindings maps variable names to matched values.
type Bindings map[string]any

// Clone returns a shallow copy of b. The bound values are shared.
func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Merge copies every binding of other into b, overwriting names b already
// holds.
func (b Bindings) Merge(other Bindings) {
	for k, v := range other {
		b[k] = v
	}
}

// Lookup returns the value bound to name.
func (b Bindings) Lookup(name string) (any, bool) {
	v, ok := b[name]
	return v, ok
}
