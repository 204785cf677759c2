package normalize

import "nexuslearn/internal/model"

// Grid spacing for positioned outline nodes, in render units.
const (
	layoutColumnWidth = 250
	layoutRowHeight   = 90
)

// PositionedNode is an outline node with render coordinates attached.
// Positioning is a presentation concern: the canonical model is never
// mutated.
type PositionedNode struct {
	model.OutlineNode
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Root bool    `json:"root"` // depth-0 nodes render on a distinguished tier
}

// PositionedMindMap pairs positioned nodes with the original edges,
// ready for a canvas renderer.
type PositionedMindMap struct {
	Nodes []PositionedNode    `json:"nodes"`
	Edges []model.OutlineEdge `json:"edges"`
}

// LayoutMap positions a full mind map for rendering
func LayoutMap(m *model.MindMapModel) *PositionedMindMap {
	return &PositionedMindMap{
		Nodes: Layout(m),
		Edges: m.Edges,
	}
}

// Layout places mind map nodes on a deterministic grid: columns by
// depth, rows by parse order. It is not a graph layout algorithm and
// makes no attempt to minimize edge crossings.
func Layout(m *model.MindMapModel) []PositionedNode {
	positioned := make([]PositionedNode, 0, len(m.Nodes))
	for i, node := range m.Nodes {
		positioned = append(positioned, PositionedNode{
			OutlineNode: node,
			X:           float64(node.Depth * layoutColumnWidth),
			Y:           float64(i * layoutRowHeight),
			Root:        node.Depth == 0,
		})
	}
	return positioned
}
