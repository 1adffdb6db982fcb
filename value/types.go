package value

// Type is a runtime type tag tested by type patterns. Match is an exact
// test: a tag never matches values of a different Go type, whatever that
// type embeds or converts to.
type Type interface {
	Name() string
	Match(v any) bool
}

type kindType struct {
	name string
	kind Kind
	test func(any) bool
}

func (t kindType) Name() string { return t.name }

func (t kindType) Match(v any) bool {
	if KindOf(v) != t.kind {
		return false
	}
	return t.test == nil || t.test(v)
}

// Builtin type tags.
var (
	String  Type = kindType{name: "String", kind: KindString}
	Integer Type = kindType{name: "Integer", kind: KindInteger}
	Float   Type = kindType{name: "Float", kind: KindFloat}
	Array   Type = kindType{name: "Array", kind: KindArray}
	Hash    Type = kindType{name: "Hash", kind: KindHash}
	Nil     Type = kindType{name: "NilClass", kind: KindNil}
	True    Type = kindType{name: "TrueClass", kind: KindBoolean, test: func(v any) bool { return v.(bool) }}
	False   Type = kindType{name: "FalseClass", kind: KindBoolean, test: func(v any) bool { return !v.(bool) }}
)

// Builtins lists the builtin type tags.
func Builtins() []Type {
	return []Type{String, Integer, Float, Array, Hash, Nil, True, False}
}

type goType[T any] struct {
	name string
}

func (t goType[T]) Name() string { return t.name }

func (t goType[T]) Match(v any) bool {
	_, ok := v.(T)
	return ok
}

// TypeOf returns a tag matching values whose dynamic type is T. T should be
// a concrete type; an interface type would match every implementation.
func TypeOf[T any](name string) Type {
	return goType[T]{name: name}
}
