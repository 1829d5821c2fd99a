// Package where compiles predicate expressions over a single decoded
// value, bound to the name x.
//
//	x > 0 && x < 10
//	abs(x) >= 1e3 || isNaN(x)
package where

import (
	"errors"
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/floatrun/scan"
)

var ErrExpr = errors.New("bad predicate expression")

// Env is the evaluation environment of a predicate.
type Env struct {
	X float64 `expr:"x"`
}

// Program is a compiled predicate expression. It is safe for concurrent
// use.
type Program struct {
	src string
	prg *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("isNaN", func(params ...any) (any, error) {
			return math.IsNaN(params[0].(float64)), nil
		}, new(func(float64) bool)),
		expr.Function("isInf", func(params ...any) (any, error) {
			return math.IsInf(params[0].(float64), 0), nil
		}, new(func(float64) bool)),
	}
}

// Compile compiles src. The expression must evaluate to a bool.
func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrExpr, src, err)
	}
	return &Program{src: src, prg: prg}, nil
}

// String returns the source of p.
func (p *Program) String() string {
	return p.src
}

// Eval evaluates p with x bound to v.
func (p *Program) Eval(v float64) (bool, error) {
	res, err := expr.Run(p.prg, Env{X: v})
	if err != nil {
		return false, err
	}
	ok, isBool := res.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %q evaluated to %T", ErrExpr, p.src, res)
	}
	return ok, nil
}

// Predicate adapts p to values of type V. A value for which evaluation
// fails is not accepted.
func Predicate[V scan.Number](p *Program) scan.Predicate[V] {
	return func(v V) bool {
		ok, err := p.Eval(float64(v))
		return err == nil && ok
	}
}

// Range combines inclusive bounds with an optional program. Either bound
// and p may be nil.
func Range[V scan.Number](min, max *V, p *Program) scan.Predicate[V] {
	bounds := scan.Between(min, max)
	if p == nil {
		return bounds
	}
	return scan.And(bounds, Predicate[V](p))
}
