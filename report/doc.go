// Package report renders a selector.Result for people (text, in the shape
// of the classic "f(v) = w" listing) or for tools (JSON, YAML).
package report
