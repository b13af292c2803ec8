package selector

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hopdom/core"
	"github.com/katalvlaran/hopdom/heuristic"
	"github.com/katalvlaran/hopdom/hop"
	"github.com/katalvlaran/hopdom/labeling"
)

type labelFunc func(*core.Graph, *hop.Index, ...heuristic.Option) (*labeling.Function, error)

// Run executes H1 and H2 concurrently over the shared, read-only g and idx
// and returns both labelings together with the lighter one.
//
// Each heuristic writes only its own labeling and draws from its own random
// source. Run waits for both; if either fails the whole run fails and no
// partial result is returned. Cancelling ctx stops both heuristics.
func Run(ctx context.Context, g *core.Graph, idx *hop.Index, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if idx == nil {
		return nil, ErrIndexNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}

	log := o.logger.With(zap.Int64("seed", o.seed))
	log.Info("starting heuristics",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("workers", o.workers),
	)

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.workers)

	var f1, f2 *labeling.Function
	spawn := func(name string, run labelFunc, seed int64, out **labeling.Function) {
		grp.Go(func() error {
			hopts := append(append([]heuristic.Option(nil), o.extra...),
				heuristic.WithContext(gctx),
				heuristic.WithLogger(log),
				heuristic.WithRand(rand.New(rand.NewSource(seed))),
			)
			f, err := run(g, idx, hopts...)
			if err != nil {
				return fmt.Errorf("selector: %s: %w", name, err)
			}
			*out = f

			return nil
		})
	}
	spawn(NameH1, heuristic.H1, o.seed, &f1)
	spawn(NameH2, heuristic.H2, o.seed+1, &f2)

	if err := grp.Wait(); err != nil {
		log.Error("heuristics failed", zap.Error(err))
		return nil, err
	}

	v1, err := labeling.Violations(f1, g)
	if err != nil {
		return nil, fmt.Errorf("selector: %w", err)
	}
	v2, err := labeling.Violations(f2, g)
	if err != nil {
		return nil, fmt.Errorf("selector: %w", err)
	}

	best := Choose(f1, f2)
	res := &Result{
		H1:           f1,
		H2:           f2,
		H1Weight:     labeling.TotalWeight(f1),
		H2Weight:     labeling.TotalWeight(f2),
		Best:         best.Name,
		BestFunction: best.Function,
		BestWeight:   best.Weight,
		Violations: map[string][]labeling.Violation{
			NameH1: v1,
			NameH2: v2,
		},
		Seed: o.seed,
	}
	log.Info("heuristics finished",
		zap.Int("h1_weight", res.H1Weight),
		zap.Int("h2_weight", res.H2Weight),
		zap.String("best", res.Best),
	)

	return res, nil
}

// Choose returns the labeling with the strictly smaller total weight; ties
// go to h1. Neither input is modified.
func Choose(h1, h2 *labeling.Function) Choice {
	w1, w2 := labeling.TotalWeight(h1), labeling.TotalWeight(h2)
	if w1 <= w2 {
		return Choice{Name: NameH1, Function: h1, Weight: w1}
	}

	return Choice{Name: NameH2, Function: h2, Weight: w2}
}
