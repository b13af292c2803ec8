package report

import (
	"github.com/katalvlaran/hopdom/labeling"
	"github.com/katalvlaran/hopdom/selector"
)

// Entry is one vertex and its weight.
type Entry struct {
	Vertex string `json:"vertex" yaml:"vertex"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Labeling is one heuristic's output in vertex order.
type Labeling struct {
	Name        string   `json:"name" yaml:"name"`
	TotalWeight int      `json:"total_weight" yaml:"total_weight"`
	Values      []Entry  `json:"labeling" yaml:"labeling"`
	Violations  []string `json:"violations" yaml:"violations"`
}

// Document is the structured form of a selector.Result.
type Document struct {
	Seed       int64      `json:"seed" yaml:"seed"`
	Best       string     `json:"best" yaml:"best"`
	BestWeight int        `json:"best_weight" yaml:"best_weight"`
	Heuristics []Labeling `json:"heuristics" yaml:"heuristics"`
}

// NewDocument flattens res. Labelings keep their domain order.
func NewDocument(res *selector.Result) Document {
	return Document{
		Seed:       res.Seed,
		Best:       res.Best,
		BestWeight: res.BestWeight,
		Heuristics: []Labeling{
			newLabeling(selector.NameH1, res.H1, res.H1Weight, res.Violations[selector.NameH1]),
			newLabeling(selector.NameH2, res.H2, res.H2Weight, res.Violations[selector.NameH2]),
		},
	}
}

func newLabeling(name string, f *labeling.Function, total int, vs []labeling.Violation) Labeling {
	l := Labeling{
		Name:        name,
		TotalWeight: total,
		Values:      entries(f),
		Violations:  make([]string, 0, len(vs)),
	}
	for _, v := range vs {
		l.Violations = append(l.Violations, v.Vertex)
	}

	return l
}

func entries(f *labeling.Function) []Entry {
	vs := f.Vertices()
	out := make([]Entry, len(vs))
	for i, v := range vs {
		out[i] = Entry{Vertex: v, Weight: int(f.Get(v))}
	}

	return out
}
