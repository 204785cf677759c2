package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"nexuslearn/internal/model"
)

var bulletMarkerRE = regexp.MustCompile(`^[-*•]\s*`)

// parseOutlineText turns indented outline text into a mind map model.
// Depth is floor(indent/2) with 2-space indents; a stack of the most
// recent node id per depth resolves each node's parent, so siblings at
// the same depth never get an edge between them.
func parseOutlineText(text string) *model.MindMapModel {
	m := &model.MindMapModel{
		Nodes: []model.OutlineNode{},
		Edges: []model.OutlineEdge{},
	}

	// stack[d] holds the id of the most recent node at depth d
	stack := []string{}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := 0
		for _, r := range line {
			if r == ' ' || r == '\t' {
				indent++
			} else {
				break
			}
		}
		depth := indent / 2

		label := strings.TrimSpace(line)
		label = bulletMarkerRE.ReplaceAllString(label, "")
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}

		id := fmt.Sprintf("node-%d", len(m.Nodes))
		m.Nodes = append(m.Nodes, model.OutlineNode{ID: id, Label: label, Depth: depth})

		if len(stack) > depth {
			stack = stack[:depth]
		}
		for len(stack) < depth {
			stack = append(stack, "")
		}
		if depth > 0 && stack[depth-1] != "" {
			parent := stack[depth-1]
			m.Edges = append(m.Edges, model.OutlineEdge{
				ID:       "edge-" + parent + "-" + id,
				SourceID: parent,
				TargetID: id,
			})
		}
		stack = append(stack, id)
	}

	if len(m.Nodes) == 0 {
		return model.DefaultMindMap()
	}
	return m
}
