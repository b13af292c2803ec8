// Package input reads graph problems in the plain edge-list format and
// validates them against the label space "1".."V" before any graph is built.
//
//	p, err := input.ReadFile("graph.txt")
//	if errors.Is(err, input.ErrUnknownLabel) { ... }
//	g, err := p.Graph()
package input
