package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mucheck/mucalc"
)

// Sentinel errors for checker invocation.
var (
	// ErrNilLTS is returned if a nil LTS pointer is passed.
	ErrNilLTS = errors.New("check: lts is nil")

	// ErrNilFormula is returned if a nil formula is passed.
	ErrNilFormula = errors.New("check: formula is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("check: invalid option supplied")
)

// Algorithm selects the evaluation strategy.
type Algorithm int

const (
	// EmersonLei keeps per-binder approximants alive across re-entries and
	// reseeds only on opposite-polarity nesting. The default.
	EmersonLei Algorithm = iota

	// Naive restarts every fixed point from its trivial seed on each entry.
	Naive
)

func (a Algorithm) String() string {
	switch a {
	case EmersonLei:
		return "emerson-lei"
	case Naive:
		return "naive"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Option configures evaluation via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Check or
// Eval is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing evaluation.
type Options struct {
	// Ctx allows cancellation and deadlines; it is polled once per
	// fixed-point round.
	Ctx context.Context

	// Algorithm is the evaluation strategy.
	Algorithm Algorithm

	// OnIteration is called at the start of every fixed-point round with
	// the binder's variable and the 1-based round number within the
	// current entry.
	OnIteration func(v mucalc.VarName, round int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, the Emerson–Lei
// strategy, and a no-op iteration hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Algorithm:   EmersonLei,
		OnIteration: func(mucalc.VarName, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlgorithm selects the evaluation strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a != EmersonLei && a != Naive {
			o.err = fmt.Errorf("%w: unknown algorithm %d", ErrOptionViolation, int(a))
			return
		}
		o.Algorithm = a
	}
}

// WithOnIteration registers a callback observing every fixed-point round.
func WithOnIteration(fn func(v mucalc.VarName, round int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}
