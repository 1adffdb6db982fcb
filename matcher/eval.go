package matcher

import (
	"github.com/t14raptor/go-match/ast"
	"github.com/t14raptor/go-match/value"
)

// evaluator matches one pattern against one value. outer holds variables
// visible to pins and is never written; bound collects the bindings of the
// current attempt.
type evaluator struct {
	outer ast.Bindings
	bound ast.Bindings
}

func newEvaluator(outer ast.Bindings) *evaluator {
	return &evaluator{outer: outer, bound: ast.Bindings{}}
}

// fork returns an evaluator whose bindings can be dropped without touching e.
func (e *evaluator) fork() *evaluator {
	return &evaluator{outer: e.outer, bound: e.bound.Clone()}
}

func (e *evaluator) lookup(name string) (any, bool) {
	if v, ok := e.bound[name]; ok {
		return v, true
	}
	v, ok := e.outer[name]
	return v, ok
}

// visible returns the outer scope overlaid with the current bindings, the
// view a guard predicate sees.
func (e *evaluator) visible() ast.Bindings {
	b := e.outer.Clone()
	b.Merge(e.bound)
	return b
}

func (e *evaluator) eval(p ast.Pattern, v any) bool {
	switch p := p.(type) {
	case *ast.WildcardPattern:
		return true
	case *ast.LiteralPattern:
		return value.Equal(p.Value, v)
	case *ast.RangePattern:
		return value.InRange(v, p.Begin, p.End, p.Exclusive)
	case *ast.TypePattern:
		return p.Type.Match(v)
	case *ast.BindingPattern:
		if p.Pattern != nil && !e.eval(p.Pattern, v) {
			return false
		}
		e.bound[p.Name] = v
		return true
	case *ast.PinPattern:
		pinned, ok := e.lookup(p.Name)
		return ok && value.Equal(pinned, v)
	case *ast.GuardPattern:
		if !e.eval(p.Pattern, v) {
			return false
		}
		return p.Guard(e.visible()) != p.Unless
	case *ast.AlternationPattern:
		for _, alt := range p.Alternatives {
			if e.fork().eval(alt, v) {
				return true
			}
		}
		return false
	case *ast.ArrayPattern:
		return e.evalArray(p, v)
	case *ast.FindPattern:
		return e.evalFind(p, v)
	case *ast.HashPattern:
		return e.evalHash(p, v)
	}
	return false
}

func (e *evaluator) evalArray(p *ast.ArrayPattern, v any) bool {
	if p.Type != nil && !p.Type.Match(v) {
		return false
	}
	seq, ok := value.Sequence(v)
	if !ok {
		return false
	}

	splat := p.Splat()
	if splat < 0 {
		if len(seq) != len(p.Elements) {
			return false
		}
		for i, elem := range p.Elements {
			if !e.eval(elem, seq[i]) {
				return false
			}
		}
		return true
	}

	pre, post := p.Elements[:splat], p.Elements[splat+1:]
	if len(seq) < len(pre)+len(post) {
		return false
	}
	for i, elem := range pre {
		if !e.eval(elem, seq[i]) {
			return false
		}
	}
	offset := len(seq) - len(post)
	for i, elem := range post {
		if !e.eval(elem, seq[offset+i]) {
			return false
		}
	}
	e.bindSplat(p.Elements[splat].(*ast.SplatPattern), seq[len(pre):offset])
	return true
}

func (e *evaluator) evalFind(p *ast.FindPattern, v any) bool {
	if p.Type != nil && !p.Type.Match(v) {
		return false
	}
	seq, ok := value.Sequence(v)
	if !ok {
		return false
	}

	n := len(p.Elements)
	for start := 0; start+n <= len(seq); start++ {
		attempt := e.fork()
		matched := true
		for i, elem := range p.Elements {
			if !attempt.eval(elem, seq[start+i]) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		e.bound = attempt.bound
		e.bindSplat(p.Pre, seq[:start])
		e.bindSplat(p.Post, seq[start+n:])
		return true
	}
	return false
}

func (e *evaluator) bindSplat(s *ast.SplatPattern, elems []any) {
	if s == nil || s.Name == "" {
		return
	}
	e.bound[s.Name] = append([]any{}, elems...)
}

func (e *evaluator) evalHash(p *ast.HashPattern, v any) bool {
	if p.Type != nil && !p.Type.Match(v) {
		return false
	}

	pairs := p.Pairs()
	rest := p.Rest()
	listed := make([]string, len(pairs))
	for i, pair := range pairs {
		listed[i] = pair.Key
	}
	requested := listed
	if rest != nil && (rest.Closed || rest.Name != "") || p.ExactEmpty() {
		requested = nil
	}
	m, ok := value.KeyValues(v, requested)
	if !ok {
		return false
	}
	if p.ExactEmpty() {
		return m.Len() == 0
	}

	for _, pair := range pairs {
		got, ok := m.Get(pair.Key)
		if !ok {
			return false
		}
		if pair.Value == nil {
			e.bound[pair.Key] = got
			continue
		}
		if !e.eval(pair.Value, got) {
			return false
		}
	}

	switch {
	case rest == nil:
	case rest.Closed:
		return m.Without(listed...).Len() == 0
	case rest.Name != "":
		e.bound[rest.Name] = m.Without(listed...)
	}
	return true
}
