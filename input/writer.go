package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/hopdom/core"
)

// FromGraph turns g into a Problem. g's vertices must be exactly "1".."V"
// in that order, as produced by builder's default ID scheme.
func FromGraph(g *core.Graph) (*Problem, error) {
	vs := g.Vertices()
	for i, v := range vs {
		if v != strconv.Itoa(i+1) {
			return nil, fmt.Errorf("%w: vertex #%d is %q", ErrUnknownLabel, i, v)
		}
	}

	return &Problem{VertexCount: len(vs), Vertices: vs, Edges: g.Edges()}, nil
}

// Write emits p in the format Read accepts.
func Write(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", p.VertexCount, len(p.Edges))
	for _, e := range p.Edges {
		fmt.Fprintf(bw, "%s %s\n", e.From, e.To)
	}

	return bw.Flush()
}
