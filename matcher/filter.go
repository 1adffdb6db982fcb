package matcher

import (
	"github.com/samber/lo"

	"github.com/t14raptor/go-match/ast"
)

// Filter returns the values that match p, each tested in its own scope.
func Filter[T any](values []T, p ast.Pattern) ([]T, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	return lo.Filter(values, func(v T, _ int) bool {
		return newEvaluator(nil).eval(p, v)
	}), nil
}
