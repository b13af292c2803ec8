package heuristic_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/hopdom/core"
	"github.com/katalvlaran/hopdom/heuristic"
	"github.com/katalvlaran/hopdom/hop"
	"github.com/katalvlaran/hopdom/labeling"
)

// fixture bundles a graph with its distance-2 index.
type fixture struct {
	g   *core.Graph
	idx *hop.Index
}

func newFixture(t *testing.T, vertices []string, pairs ...[2]string) fixture {
	t.Helper()
	g := core.NewGraph(core.WithVertices(vertices...))
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]))
	}
	idx, err := hop.Build(g)
	require.NoError(t, err)

	return fixture{g: g, idx: idx}
}

// star returns center "c" with leaves l1..lk.
func star(t *testing.T, k int) fixture {
	t.Helper()
	vs := []string{"c"}
	var pairs [][2]string
	for i := 1; i <= k; i++ {
		leaf := fmt.Sprintf("l%d", i)
		vs = append(vs, leaf)
		pairs = append(pairs, [2]string{"c", leaf})
	}

	return newFixture(t, vs, pairs...)
}

func weights(f *labeling.Function) map[string]int { return f.Map() }

func TestH1_NilInputs(t *testing.T) {
	fx := star(t, 3)
	_, err := heuristic.H1(nil, fx.idx)
	assert.ErrorIs(t, err, heuristic.ErrGraphNil)
	_, err = heuristic.H1(fx.g, nil)
	assert.ErrorIs(t, err, heuristic.ErrIndexNil)
	_, err = heuristic.H2(nil, fx.idx)
	assert.ErrorIs(t, err, heuristic.ErrGraphNil)
	_, err = heuristic.H2(fx.g, nil)
	assert.ErrorIs(t, err, heuristic.ErrIndexNil)
}

func TestOptions_Violations(t *testing.T) {
	fx := star(t, 3)
	cases := map[string]heuristic.Option{
		"nil rand":        heuristic.WithRand(nil),
		"empty initial":   heuristic.WithInitialCandidates(),
		"initial above 2": heuristic.WithInitialCandidates(labeling.Weight(3)),
		"initial unset":   heuristic.WithInitialCandidates(labeling.Unset),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := heuristic.H1(fx.g, fx.idx, opt)
			assert.ErrorIs(t, err, heuristic.ErrOptionViolation)
			_, err = heuristic.H2(fx.g, fx.idx, opt)
			assert.ErrorIs(t, err, heuristic.ErrOptionViolation)
		})
	}
}

func TestDegreeOrder_StableDescending(t *testing.T) {
	fx := newFixture(t, []string{"1", "2", "3", "4", "5"},
		[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "4"}, [2]string{"4", "5"})

	assert.Equal(t, []string{"2", "3", "4", "1", "5"}, heuristic.DegreeOrder(fx.g))
}

func TestH1_IsolatedVertex(t *testing.T) {
	fx := newFixture(t, []string{"1"})

	f, err := heuristic.H1(fx.g, fx.idx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 1}, weights(f))
	assert.Equal(t, 1, labeling.TotalWeight(f))
}

func TestH2_IsolatedVertex(t *testing.T) {
	fx := newFixture(t, []string{"1"})

	f, err := heuristic.H2(fx.g, fx.idx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 2}, weights(f))
	assert.Equal(t, 2, labeling.TotalWeight(f))
}

func TestH1_StarDemotesLeavesWhileSiblingsRemain(t *testing.T) {
	fx := star(t, 4)

	f, err := heuristic.H1(fx.g, fx.idx)
	require.NoError(t, err)

	// Order: c (deg 4), then l1..l4. l1 and l2 each still see two 1-valued
	// siblings; l3 and l4 see only one by the time their turn comes.
	assert.Equal(t, map[string]int{"c": 1, "l1": 0, "l2": 0, "l3": 1, "l4": 1}, weights(f))
	assert.Equal(t, 3, labeling.TotalWeight(f))
	v, err := labeling.Violations(f, fx.g)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestH1_StarOfThree(t *testing.T) {
	fx := star(t, 3)

	f, err := heuristic.H1(fx.g, fx.idx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"c": 1, "l1": 0, "l2": 1, "l3": 1}, weights(f))
}

func TestH1_FourCycleKeepsAllOnes(t *testing.T) {
	fx := newFixture(t, []string{"1", "2", "3", "4"},
		[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "4"}, [2]string{"4", "1"})

	f, err := heuristic.H1(fx.g, fx.idx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 1, "2": 1, "3": 1, "4": 1}, weights(f))
}

func TestH2_FourCycle(t *testing.T) {
	fx := newFixture(t, []string{"1", "2", "3", "4"},
		[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "4"}, [2]string{"4", "1"})

	// Every strict distance-2 set is a singleton: 1 demotes 3, 2 demotes 4.
	f, err := heuristic.H2(fx.g, fx.idx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 2, "2": 2, "3": 0, "4": 0}, weights(f))
	assert.Equal(t, 4, labeling.TotalWeight(f))
}

func TestH1H2_Path(t *testing.T) {
	fx := newFixture(t, []string{"1", "2", "3", "4", "5"},
		[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "4"}, [2]string{"4", "5"})

	f1, err := heuristic.H1(fx.g, fx.idx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 1, "2": 1, "3": 0, "4": 1, "5": 1}, weights(f1))

	f2, err := heuristic.H2(fx.g, fx.idx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 2, "2": 2, "3": 0, "4": 0, "5": 2}, weights(f2))
}

func TestH2_StarValuesAndCenter(t *testing.T) {
	fx := star(t, 5)

	f, err := heuristic.H2(fx.g, fx.idx, heuristic.WithSeed(3))
	require.NoError(t, err)

	assert.Equal(t, labeling.Two, f.Get("c"))
	assert.GreaterOrEqual(t, f.Count(labeling.Zero), 1)
	assert.Equal(t, f.Len(), f.Count(labeling.Zero)+f.Count(labeling.Two))
}

func TestHeuristics_UnmentionedVerticesHaveNoNeighbors(t *testing.T) {
	fx := newFixture(t, []string{"1", "2", "3"}, [2]string{"1", "2"})

	f1, err := heuristic.H1(fx.g, fx.idx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 1, "2": 1, "3": 1}, weights(f1))

	f2, err := heuristic.H2(fx.g, fx.idx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 2, "2": 2, "3": 2}, weights(f2))
}

func TestH1_ZeroEnforcementFallback(t *testing.T) {
	// Path 1-2-3 with every vertex starting at 0. Order is 2,1,3.
	// 2 has no strict distance-2 neighbor; 1 has only 3, which is raised.
	fx := newFixture(t, []string{"1", "2", "3"}, [2]string{"1", "2"}, [2]string{"2", "3"})

	var reasons []heuristic.Reason
	f, err := heuristic.H1(fx.g, fx.idx,
		heuristic.WithInitialCandidates(labeling.Zero),
		heuristic.WithOnAssign(func(_ string, _ labeling.Weight, r heuristic.Reason) {
			reasons = append(reasons, r)
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 1}, weights(f))
	assert.Equal(t, []heuristic.Reason{
		heuristic.ReasonInit, heuristic.ReasonInit, heuristic.ReasonInit,
		heuristic.ReasonFallback,
	}, reasons)
}

func TestH1_ZeroEnforcementSupport(t *testing.T) {
	fx := star(t, 4)

	supported := map[string]bool{}
	f, err := heuristic.H1(fx.g, fx.idx,
		heuristic.WithSeed(11),
		heuristic.WithInitialCandidates(labeling.Zero),
		heuristic.WithOnAssign(func(v string, w labeling.Weight, r heuristic.Reason) {
			if r == heuristic.ReasonSupport {
				assert.Equal(t, labeling.One, w)
				supported[v] = true
			}
		}),
	)
	require.NoError(t, err)

	// l1 is the first 0-leaf with candidates: two distinct siblings are raised.
	require.Len(t, supported, 2)
	assert.False(t, supported["l1"])
	// The center has no strict distance-2 neighbors and keeps its 0.
	assert.Equal(t, labeling.Zero, f.Get("c"))
	assert.True(t, f.Complete())
}

func TestH1_RandomInitialization(t *testing.T) {
	fx := star(t, 6)

	f, err := heuristic.H1(fx.g, fx.idx,
		heuristic.WithSeed(5),
		heuristic.WithInitialCandidates(labeling.Zero, labeling.One),
	)
	require.NoError(t, err)
	assert.True(t, f.Complete())
	assert.Equal(t, f.Len(), f.Count(labeling.Zero)+f.Count(labeling.One))
}

func TestHeuristics_CompleteAndNonNegative(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	for trial := 0; trial < 20; trial++ {
		n := 1 + rnd.Intn(25)
		vs := make([]string, n)
		for i := range vs {
			vs[i] = fmt.Sprint(i + 1)
		}
		var pairs [][2]string
		for k := 0; k < 2*n; k++ {
			u, v := rnd.Intn(n), rnd.Intn(n)
			if u != v {
				pairs = append(pairs, [2]string{vs[u], vs[v]})
			}
		}
		fx := newFixture(t, vs, pairs...)

		f1, err := heuristic.H1(fx.g, fx.idx, heuristic.WithSeed(int64(trial)))
		require.NoError(t, err)
		f2, err := heuristic.H2(fx.g, fx.idx, heuristic.WithSeed(int64(trial)))
		require.NoError(t, err)

		for _, f := range []*labeling.Function{f1, f2} {
			assert.True(t, f.Complete())
			assert.Equal(t, vs, f.Vertices())
			assert.GreaterOrEqual(t, labeling.TotalWeight(f), 0)
		}
		assert.Zero(t, f1.Count(labeling.Two))
		assert.Zero(t, f2.Count(labeling.One))
	}
}

func TestHeuristics_DeterministicWithSeed(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	g := core.NewGraph()
	for k := 0; k < 80; k++ {
		u, v := fmt.Sprint(rnd.Intn(30)), fmt.Sprint(rnd.Intn(30))
		if u != v {
			require.NoError(t, g.AddEdge(u, v))
		}
	}
	idx, err := hop.Build(g)
	require.NoError(t, err)

	for _, run := range []func(...heuristic.Option) (*labeling.Function, error){
		func(o ...heuristic.Option) (*labeling.Function, error) { return heuristic.H1(g, idx, o...) },
		func(o ...heuristic.Option) (*labeling.Function, error) { return heuristic.H2(g, idx, o...) },
	} {
		a, err := run(heuristic.WithSeed(42))
		require.NoError(t, err)
		b, err := run(heuristic.WithRand(rand.New(rand.NewSource(42))))
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	}
}

func TestHeuristics_Cancellation(t *testing.T) {
	fx := star(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := heuristic.H1(fx.g, fx.idx, heuristic.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = heuristic.H2(fx.g, fx.idx, heuristic.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHeuristics_DebugTrace(t *testing.T) {
	fx := star(t, 3)
	obs, logs := observer.New(zapcore.DebugLevel)

	_, err := heuristic.H1(fx.g, fx.idx, heuristic.WithLogger(zap.New(obs)))
	require.NoError(t, err)

	// 4 initial assignments, 1 surplus demotion, 1 summary line.
	assigned := logs.FilterMessage("vertex assigned")
	assert.Equal(t, 5, assigned.Len())
	assert.Equal(t, 1, logs.FilterMessage("heuristic finished").Len())
	assert.Equal(t, 1, assigned.FilterField(zap.Stringer("reason", heuristic.ReasonSurplus)).Len())
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "pairwise", heuristic.ReasonPairwise.String())
	assert.Equal(t, "Reason(42)", heuristic.Reason(42).String())
}
