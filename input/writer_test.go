package input_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopdom/builder"
	"github.com/katalvlaran/hopdom/core"
	"github.com/katalvlaran/hopdom/input"
)

func TestWrite_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomSparse(8, 0.4))
	require.NoError(t, err)

	p, err := input.FromGraph(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, input.Write(&buf, p))

	back, err := input.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, p.VertexCount, back.VertexCount)
	assert.Equal(t, p.Edges, back.Edges)
}

func TestWrite_Format(t *testing.T) {
	g, err := builder.Build(builder.Path(3))
	require.NoError(t, err)
	p, err := input.FromGraph(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, input.Write(&buf, p))
	assert.Equal(t, "3\n2\n1 2\n2 3\n", buf.String())
}

func TestFromGraph_RejectsForeignLabels(t *testing.T) {
	g := core.NewGraph(core.WithVertices("a", "b"))
	_, err := input.FromGraph(g)
	assert.ErrorIs(t, err, input.ErrUnknownLabel)
}
