package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdom/core"
)

// validateMin returns ErrTooFewVertices with method context when got < min.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// addVertices registers idFn(0..n-1) in ascending order and returns the IDs.
func addVertices(g *core.Graph, method string, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%q): %w: %w", method, ids[i], err, ErrConstructFailed)
		}
	}

	return ids, nil
}

// addEdge inserts u-v with method context.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}
