package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hopdom/builder"
	"github.com/katalvlaran/hopdom/input"
)

// ErrUnknownTopology is returned for a --topology value with no constructor.
var ErrUnknownTopology = errors.New("generate: unknown topology")

var topologies = []string{"cycle", "path", "star", "complete", "random"}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		topology string
		n        int
		p        float64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a fixture graph in the edge-list format solve reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctor, err := constructor(topology, n, p)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(a.cfg.Seed)}, ctor)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			a.log.Debug("graph generated",
				zap.String("topology", topology),
				zap.Int("vertices", g.VertexCount()),
				zap.Int("edges", g.EdgeCount()),
			)
			prob, err := input.FromGraph(g)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			return input.Write(cmd.OutOrStdout(), prob)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&topology, "topology", "t", "cycle", strings.Join(topologies, ", "))
	f.IntVarP(&n, "vertices", "n", 5, "number of vertices")
	f.Float64VarP(&p, "probability", "p", 0.2, "edge probability for random")

	return cmd
}

func constructor(topology string, n int, p float64) (builder.Constructor, error) {
	switch strings.ToLower(topology) {
	case "cycle":
		return builder.Cycle(n), nil
	case "path":
		return builder.Path(n), nil
	case "star":
		return builder.Star(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "random":
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTopology, topology, strings.Join(topologies, ", "))
	}
}
