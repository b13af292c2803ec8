// Package heuristic provides tunable options and error definitions
// for the H1 and H2 hop Italian labelers.
package heuristic

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/hopdom/labeling"
)

// Sentinel errors for heuristic execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("heuristic: graph is nil")

	// ErrIndexNil is returned if a nil distance-2 index is passed.
	ErrIndexNil = errors.New("heuristic: distance-2 index is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("heuristic: invalid option supplied")
)

// DefaultSeed seeds the random source when neither WithRand nor WithSeed is given.
const DefaultSeed int64 = 1

// Reason tells why a heuristic assigned a weight.
type Reason int

// Assignment reasons, in the order they can occur.
const (
	// ReasonInit is the initial assignment from the candidate set.
	ReasonInit Reason = iota
	// ReasonSupport raises two distance-2 neighbors of a 0-vertex to 1 (H1).
	ReasonSupport
	// ReasonFallback raises the only available distance-2 neighbors to 1 (H1).
	ReasonFallback
	// ReasonSurplus demotes a 1-vertex already seeing two 1s at distance 2 (H1).
	ReasonSurplus
	// ReasonPairwise demotes one distance-2 neighbor of a 2-vertex (H2).
	ReasonPairwise
)

func (r Reason) String() string {
	switch r {
	case ReasonInit:
		return "init"
	case ReasonSupport:
		return "support"
	case ReasonFallback:
		return "fallback"
	case ReasonSurplus:
		return "surplus"
	case ReasonPairwise:
		return "pairwise"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Option configures a heuristic run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// heuristic is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one heuristic run.
type Options struct {
	// Ctx allows cancellation; checked once per vertex per pass.
	Ctx context.Context

	// Rand is the random source for candidate sampling. It is not
	// synchronized: give each concurrent run its own.
	Rand *rand.Rand

	// Logger receives per-assignment Debug traces.
	Logger *zap.Logger

	// OnAssign is called after every weight assignment.
	OnAssign func(vertex string, w labeling.Weight, reason Reason)

	// Initial is the candidate set for the initialization step.
	// nil means the heuristic's own singleton ({1} for H1, {2} for H2).
	Initial []labeling.Weight

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a rand.Rand seeded with DefaultSeed
//   - a no-op logger and hook
//   - the heuristic's default initial candidates.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Rand:     rand.New(rand.NewSource(DefaultSeed)),
		Logger:   zap.NewNop(),
		OnAssign: func(string, labeling.Weight, Reason) {},
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

// WithRand uses r as the random source. r must not be shared with a
// concurrently running heuristic.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes assignment traces to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAssign registers a callback invoked after every assignment.
func WithOnAssign(fn func(vertex string, w labeling.Weight, reason Reason)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}

// WithInitialCandidates replaces the initialization candidate set. Each
// vertex draws uniformly from ws; a single candidate is assigned without
// drawing from the random source.
//
//	len(ws) == 0            → ErrOptionViolation
//	any w outside {0,1,2}   → ErrOptionViolation
func WithInitialCandidates(ws ...labeling.Weight) Option {
	return func(o *Options) {
		if len(ws) == 0 {
			o.err = fmt.Errorf("%w: empty initial candidate set", ErrOptionViolation)
			return
		}
		for _, w := range ws {
			if w < labeling.Zero || w > labeling.Two {
				o.err = fmt.Errorf("%w: initial candidate %d outside {0,1,2}", ErrOptionViolation, w)
				return
			}
		}
		o.Initial = append([]labeling.Weight(nil), ws...)
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
