package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hopdom/config"
	"github.com/katalvlaran/hopdom/hop"
	"github.com/katalvlaran/hopdom/input"
	"github.com/katalvlaran/hopdom/report"
	"github.com/katalvlaran/hopdom/selector"
)

func newSolveCmd(a *app) *cobra.Command {
	d := config.Default()
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Run H1 and H2 on an edge list and report the lighter labeling",
		Long: `Reads V, then E, then E lines "u v" with labels 1..V, from the file given
as argument or --input, or from stdin when neither is set or the path is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Input
			if len(args) == 1 {
				path = args[0]
			}

			return a.solve(cmd, path)
		},
	}

	f := cmd.Flags()
	f.String(config.KeyInput, "", "edge-list file (default stdin)")
	f.Int(config.KeyWorkers, d.Workers, "max heuristics running at once")
	f.String(config.KeyFormat, d.Format, "output format: text, json or yaml")
	mustBind(a.v, config.KeyInput, f.Lookup(config.KeyInput))
	mustBind(a.v, config.KeyWorkers, f.Lookup(config.KeyWorkers))
	mustBind(a.v, config.KeyFormat, f.Lookup(config.KeyFormat))

	return cmd
}

func (a *app) solve(cmd *cobra.Command, path string) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		defer fh.Close()
		r = fh
	}

	p, err := input.Read(r)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	g, err := p.Graph()
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	idx, err := hop.Build(g)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	a.log.Debug("distance-2 index built", zap.Int("vertices", idx.Size()))

	res, err := selector.Run(cmd.Context(), g, idx,
		selector.WithSeed(a.cfg.Seed),
		selector.WithWorkers(a.cfg.Workers),
		selector.WithLogger(a.log),
	)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	for name, vs := range res.Violations {
		if len(vs) > 0 {
			a.log.Warn("labeling leaves 0-vertices under-supported",
				zap.String("heuristic", name), zap.Int("count", len(vs)))
		}
	}

	return report.Write(cmd.OutOrStdout(), a.cfg.Format, res)
}
