package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuslearn/internal/model"
)

func edgePairs(m *model.MindMapModel) [][2]string {
	labels := map[string]string{}
	for _, n := range m.Nodes {
		labels[n.ID] = n.Label
	}
	pairs := make([][2]string, 0, len(m.Edges))
	for _, e := range m.Edges {
		pairs = append(pairs, [2]string{labels[e.SourceID], labels[e.TargetID]})
	}
	return pairs
}

func TestOutlineDepthParentInvariant(t *testing.T) {
	m := parseOutlineText("A\n  B\n    C\n  D\n E")
	require.Len(t, m.Nodes, 5)

	assert.Equal(t, 0, m.Nodes[0].Depth) // A
	assert.Equal(t, 1, m.Nodes[1].Depth) // B
	assert.Equal(t, 2, m.Nodes[2].Depth) // C
	assert.Equal(t, 1, m.Nodes[3].Depth) // D
	assert.Equal(t, 0, m.Nodes[4].Depth) // E, 1 space rounds down

	assert.Equal(t, [][2]string{
		{"A", "B"},
		{"B", "C"},
		{"A", "D"}, // D is a sibling of B, so its parent is A
	}, edgePairs(m))
}

func TestOutlineBulletMarkersStripped(t *testing.T) {
	m := parseOutlineText("- Root\n  * Child\n  • Other")
	require.Len(t, m.Nodes, 3)
	assert.Equal(t, "Root", m.Nodes[0].Label)
	assert.Equal(t, "Child", m.Nodes[1].Label)
	assert.Equal(t, "Other", m.Nodes[2].Label)
	assert.Len(t, m.Edges, 2)
}

func TestOutlineSkipsEmptyLabels(t *testing.T) {
	m := parseOutlineText("A\n- \n\n  B")
	require.Len(t, m.Nodes, 2)
	assert.Equal(t, "A", m.Nodes[0].Label)
	assert.Equal(t, "B", m.Nodes[1].Label)
}

func TestOutlineDepthJumpHasNoParent(t *testing.T) {
	// Depth jumps 0 -> 2: no node exists at depth 1, so no edge.
	m := parseOutlineText("A\n    X")
	require.Len(t, m.Nodes, 2)
	assert.Empty(t, m.Edges)
}

func TestOutlineEmptyInputYieldsDefault(t *testing.T) {
	m := parseOutlineText("  \n \n")
	require.Len(t, m.Nodes, 1)
	assert.Equal(t, 0, m.Nodes[0].Depth)
	assert.NotEmpty(t, m.Nodes[0].Label)
	assert.Empty(t, m.Edges)
}

func TestLayoutGridPlacement(t *testing.T) {
	m := parseOutlineText("A\n  B\n    C")
	nodes := Layout(m)
	require.Len(t, nodes, 3)

	assert.Equal(t, float64(0), nodes[0].X)
	assert.Equal(t, float64(0), nodes[0].Y)
	assert.True(t, nodes[0].Root)

	assert.Equal(t, float64(layoutColumnWidth), nodes[1].X)
	assert.Equal(t, float64(layoutRowHeight), nodes[1].Y)
	assert.False(t, nodes[1].Root)

	assert.Equal(t, float64(2*layoutColumnWidth), nodes[2].X)
	assert.Equal(t, float64(2*layoutRowHeight), nodes[2].Y)
}

func TestLayoutDoesNotMutateModel(t *testing.T) {
	m := parseOutlineText("A\n  B")
	before := *m
	_ = Layout(m)
	assert.Equal(t, before.Nodes, m.Nodes)
	assert.Equal(t, before.Edges, m.Edges)
}
