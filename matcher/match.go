// Package matcher evaluates structural patterns against Go values, in the
// manner of a case/in expression: arms are tried in order and the first one
// whose pattern matches, and whose guard holds, runs.
package matcher

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/t14raptor/go-match/ast"
	"github.com/t14raptor/go-match/generator"
)

// NoMatch is the arm index reported when no arm matched.
const NoMatch = -1

type (
	// Bindings maps variable names to matched values.
	Bindings = ast.Bindings

	// Guard is an arm condition evaluated against the arm's bindings.
	Guard func(b Bindings) bool

	// Action runs when its arm is selected.
	Action func(b Bindings)
)

// Arm is one `in` clause: a pattern, an optional guard and an action.
type Arm struct {
	Pattern ast.Pattern
	Guard   Guard
	Unless  bool
	Action  Action

	otherwise bool
}

// In returns an arm without a guard.
func In(p ast.Pattern, action Action) Arm {
	return Arm{Pattern: p, Action: action}
}

// InIf returns an arm selected only when guard holds.
func InIf(p ast.Pattern, guard Guard, action Action) Arm {
	return Arm{Pattern: p, Guard: guard, Action: action}
}

// InUnless returns an arm selected only when guard does not hold.
func InUnless(p ast.Pattern, guard Guard, action Action) Arm {
	return Arm{Pattern: p, Guard: guard, Unless: true, Action: action}
}

// Else returns the fallback arm. It must be the last arm.
func Else(action Action) Arm {
	return Arm{Action: action, otherwise: true}
}

// Matcher holds the variable scope a sequence of matches reads pins from
// and writes bindings to. A Matcher is not safe for concurrent use; the
// package-level Match is.
type Matcher struct {
	scope Bindings
	log   *zap.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger sets the logger arm selection is traced to at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(m *Matcher) {
		m.log = log
	}
}

// WithScope seeds the scope with variables, visible to pins.
func WithScope(b Bindings) Option {
	return func(m *Matcher) {
		m.scope.Merge(b)
	}
}

// New returns a Matcher with an empty scope.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		scope: Bindings{},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match evaluates arms against v with a fresh scope.
func Match(v any, arms ...Arm) (int, Bindings, error) {
	return New().Match(v, arms...)
}

// Match tries arms in order against v. The first arm whose pattern matches
// and whose guard holds has its action invoked with the bindings it made;
// those bindings are then merged into the scope and returned with the arm
// index. When nothing matches the else arm runs and NoMatch is returned, or
// a *NoMatchError if there is no else arm. Invalid patterns are reported as
// *MalformedPatternError before any arm is evaluated.
func (m *Matcher) Match(v any, arms ...Arm) (int, Bindings, error) {
	if err := validateArms(arms); err != nil {
		return NoMatch, nil, err
	}

	for i, arm := range arms {
		if arm.otherwise {
			m.trace("else arm selected", i, nil)
			if arm.Action != nil {
				arm.Action(m.scope.Clone())
			}
			return NoMatch, Bindings{}, nil
		}

		e := newEvaluator(m.scope)
		if !e.eval(arm.Pattern, v) {
			continue
		}
		if arm.Guard != nil && arm.Guard(e.visible()) == arm.Unless {
			continue
		}

		m.trace("arm matched", i, arm.Pattern)
		m.scope.Merge(e.bound)
		if arm.Action != nil {
			arm.Action(e.visible())
		}
		return i, e.bound, nil
	}

	m.trace("no arm matched", NoMatch, nil)
	return NoMatch, nil, &NoMatchError{Value: v}
}

// In reports whether v matches p, the boolean `v in p`. Bindings made by a
// successful match are merged into the scope.
func (m *Matcher) In(v any, p ast.Pattern) (bool, error) {
	if err := Validate(p); err != nil {
		return false, err
	}
	e := newEvaluator(m.scope)
	if !e.eval(p, v) {
		return false, nil
	}
	m.scope.Merge(e.bound)
	return true, nil
}

// Assign destructures v with p, the irrefutable `v => p`. Every binding
// overwrites any variable of the same name already in scope, including one
// the caller meant to compare against; use a pin for that.
func (m *Matcher) Assign(v any, p ast.Pattern) error {
	ok, err := m.In(v, p)
	if err != nil {
		return err
	}
	if !ok {
		return &NoMatchError{Value: v, Pattern: generator.Generate(p)}
	}
	return nil
}

// Lookup returns the value of a variable in scope.
func (m *Matcher) Lookup(name string) (any, bool) {
	return m.scope.Lookup(name)
}

// Scope returns a copy of the variables in scope.
func (m *Matcher) Scope() Bindings {
	return m.scope.Clone()
}

func (m *Matcher) trace(msg string, arm int, p ast.Pattern) {
	ce := m.log.Check(zapcore.DebugLevel, msg)
	if ce == nil {
		return
	}
	fields := []zap.Field{zap.Int("arm", arm)}
	if p != nil {
		fields = append(fields, zap.String("pattern", generator.Generate(p)))
	}
	ce.Write(fields...)
}

func validateArms(arms []Arm) error {
	if len(arms) == 0 {
		return &MalformedPatternError{Reason: "no arms"}
	}
	var errs error
	for i, arm := range arms {
		if arm.otherwise {
			if i != len(arms)-1 {
				errs = errors.Join(errs, &MalformedPatternError{Reason: fmt.Sprintf("else arm at position %d is not last", i)})
			}
			continue
		}
		errs = errors.Join(errs, Validate(arm.Pattern))
	}
	return errs
}
