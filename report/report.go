package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hopdom/labeling"
	"github.com/katalvlaran/hopdom/selector"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by Write for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Formats lists the names Write accepts.
func Formats() []string { return []string{FormatText, FormatJSON, FormatYAML} }

// Write renders res in the named format.
func Write(w io.Writer, format string, res *selector.Result) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return Text(w, res)
	case FormatJSON:
		return JSON(w, res)
	case FormatYAML, "yml":
		return YAML(w, res)
	default:
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// Text prints both labelings, their totals and the chosen one:
//
//	The hop Italian domination function for H1 is:
//	f(1) = 1, f(2) = 0, ...
//	Total weight of H1: 4
func Text(w io.Writer, res *selector.Result) error {
	var b strings.Builder
	for _, h := range []struct {
		name  string
		f     *labeling.Function
		total int
	}{
		{selector.NameH1, res.H1, res.H1Weight},
		{selector.NameH2, res.H2, res.H2Weight},
	} {
		fmt.Fprintf(&b, "The hop Italian domination function for %s is:\n", h.name)
		fmt.Fprintf(&b, "%s\n", line(h.f))
		fmt.Fprintf(&b, "Total weight of %s: %d\n\n", h.name, h.total)
	}
	fmt.Fprintf(&b, "Best heuristic: %s\n", res.Best)
	fmt.Fprintf(&b, "Best hop Italian domination function is:\n")
	fmt.Fprintf(&b, "%s\n", line(res.BestFunction))
	fmt.Fprintf(&b, "Total weight: %d\n", res.BestWeight)

	_, err := io.WriteString(w, b.String())
	return err
}

func line(f *labeling.Function) string {
	parts := make([]string, 0, f.Len())
	for _, e := range entries(f) {
		parts = append(parts, fmt.Sprintf("f(%s) = %d", e.Vertex, e.Weight))
	}

	return strings.Join(parts, ", ")
}

// JSON writes NewDocument(res) as indented JSON.
func JSON(w io.Writer, res *selector.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(NewDocument(res))
}

// YAML writes NewDocument(res) as YAML.
func YAML(w io.Writer, res *selector.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(res)); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}

	return enc.Close()
}
