package selector

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/hopdom/heuristic"
	"github.com/katalvlaran/hopdom/labeling"
)

// Sentinel errors for selector runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("selector: graph is nil")

	// ErrIndexNil is returned if a nil distance-2 index is passed.
	ErrIndexNil = errors.New("selector: distance-2 index is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("selector: invalid option supplied")
)

// Heuristic labels.
const (
	NameH1 = "H1"
	NameH2 = "H2"
)

// DefaultWorkers is one worker per heuristic.
const DefaultWorkers = 2

// Choice is the outcome of comparing two labelings.
type Choice struct {
	Name     string
	Function *labeling.Function
	Weight   int
}

// Result holds both labelings, their weights and the chosen one.
type Result struct {
	H1       *labeling.Function
	H2       *labeling.Function
	H1Weight int
	H2Weight int

	Best         string
	BestFunction *labeling.Function
	BestWeight   int

	// Violations per heuristic name. Informational; the choice ignores it.
	Violations map[string][]labeling.Violation

	// Seed is the effective seed; H1 used Seed and H2 used Seed+1.
	Seed int64
}

// Option configures Run.
type Option func(*options)

type options struct {
	seed    int64
	workers int
	logger  *zap.Logger
	extra   []heuristic.Option
	err     error
}

func defaultOptions() options {
	return options{
		seed:    heuristic.DefaultSeed,
		workers: DefaultWorkers,
		logger:  zap.NewNop(),
	}
}

// WithSeed sets the base seed. 0 means seed from the clock.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithWorkers bounds the number of heuristics running at once.
// 1 runs them one after the other; n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// WithLogger sets the logger for the run and both heuristics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHeuristicOptions forwards opts to both H1 and H2. The selector's own
// context, logger and per-heuristic random source are applied after them.
func WithHeuristicOptions(opts ...heuristic.Option) Option {
	return func(o *options) {
		o.extra = append(o.extra, opts...)
	}
}
