// File: reader.go
// Role: Parse the vertex-count / edge-count / edge-list text format into
// a validated Problem.
//
// Format (whitespace separated, one record per line, blank lines and lines
// starting with '#' ignored):
//
//	V
//	E
//	u1 v1
//	...
//	uE vE
//
// Labels must be the decimal strings "1".."V". Lines after the E-th edge
// are ignored.
//
// Determinism: Problem.Edges keeps input order, which fixes neighbor order
// in the resulting graph.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hopdom/core"
)

// Sentinel errors for malformed input.
var (
	// ErrBadCount is returned for a missing, non-integer or out-of-range V or E.
	ErrBadCount = errors.New("input: bad count")

	// ErrBadEdgeLine is returned when an edge line does not hold exactly two tokens.
	ErrBadEdgeLine = errors.New("input: edge line must have exactly two labels")

	// ErrShortInput is returned when fewer than E edge lines follow the header.
	ErrShortInput = errors.New("input: fewer edges than declared")

	// ErrUnknownLabel is returned for an endpoint outside "1".."V".
	ErrUnknownLabel = errors.New("input: label outside 1..V")
)

const (
	// MaxVertices bounds the declared vertex count.
	MaxVertices = 1 << 20

	edgePrealloc = 1 << 16
)

// Problem is a validated graph description ready for the heuristics.
type Problem struct {
	VertexCount int
	Vertices    []string    // "1".."V"
	Edges       []core.Edge // input order
}

// Graph builds the core graph. Every vertex in Vertices is registered, so
// vertices no edge mentions are still labeled.
func (p *Problem) Graph() (*core.Graph, error) {
	return core.FromEdges(p.Vertices, p.Edges)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Problem, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	defer fh.Close()

	return Read(fh)
}

// Read parses r. It fails on the first malformed record; no partial Problem
// is returned.
func Read(r io.Reader) (*Problem, error) {
	sc := &lineScanner{s: bufio.NewScanner(r)}

	v, err := sc.count("vertex count", 1)
	if err != nil {
		return nil, err
	}
	if v > MaxVertices {
		return nil, fmt.Errorf("%w: vertex count %d > %d", ErrBadCount, v, MaxVertices)
	}
	e, err := sc.count("edge count", 0)
	if err != nil {
		return nil, err
	}

	// E is only trusted as far as the edge lines actually present.
	p := &Problem{
		VertexCount: v,
		Vertices:    make([]string, v),
		Edges:       make([]core.Edge, 0, min(e, edgePrealloc)),
	}
	for i := range p.Vertices {
		p.Vertices[i] = strconv.Itoa(i + 1)
	}

	for i := 0; i < e; i++ {
		fields, line, ok := sc.next()
		if !ok {
			if sc.err() != nil {
				return nil, fmt.Errorf("input: %w", sc.err())
			}
			return nil, fmt.Errorf("%w: got %d of %d", ErrShortInput, i, e)
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadEdgeLine, line, strings.Join(fields, " "))
		}
		for _, label := range fields {
			if !validLabel(label, v) {
				return nil, fmt.Errorf("%w: line %d: %q (V=%d)", ErrUnknownLabel, line, label, v)
			}
		}
		p.Edges = append(p.Edges, core.Edge{From: fields[0], To: fields[1]})
	}

	return p, nil
}

// validLabel reports whether s is the canonical decimal form of 1..v.
// "01" or "+1" are rejected so labels match vertex IDs byte for byte.
func validLabel(s string, v int) bool {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > v {
		return false
	}

	return strconv.Itoa(n) == s
}

// lineScanner yields non-empty, non-comment lines split into fields.
type lineScanner struct {
	s    *bufio.Scanner
	line int
}

func (ls *lineScanner) next() ([]string, int, bool) {
	for ls.s.Scan() {
		ls.line++
		text := strings.TrimSpace(ls.s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return strings.Fields(text), ls.line, true
	}

	return nil, ls.line, false
}

func (ls *lineScanner) err() error { return ls.s.Err() }

// count reads a line holding a single integer ≥ min.
func (ls *lineScanner) count(what string, min int) (int, error) {
	fields, line, ok := ls.next()
	if !ok {
		if ls.err() != nil {
			return 0, fmt.Errorf("input: %w", ls.err())
		}
		return 0, fmt.Errorf("%w: missing %s", ErrBadCount, what)
	}
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: line %d: %s must be a single integer", ErrBadCount, line, what)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not an integer", ErrBadCount, line, what, fields[0])
	}
	if n < min {
		return 0, fmt.Errorf("%w: line %d: %s %d < %d", ErrBadCount, line, what, n, min)
	}

	return n, nil
}
