package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/rivercross/pkg/domain"
)

// GraphOverlay contains node IDs to highlight on the graph.
type GraphOverlay struct {
	PathNodes []int
	GoalNodes []int
}

// SolutionOverlay highlights every node on a root-to-solution path.
func SolutionOverlay(res *domain.Result) *GraphOverlay {
	overlay := &GraphOverlay{}
	for _, path := range res.Paths() {
		for _, n := range path[:len(path)-1] {
			overlay.PathNodes = append(overlay.PathNodes, n.ID)
		}
		overlay.GoalNodes = append(overlay.GoalNodes, path[len(path)-1].ID)
	}
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart of the search tree.
// It applies semantic styling:
// - Root: ((Circle))
// - Solution: (((Double circle)))
// - Default: [Rectangle]
// Edges carry the move label. Overlay styles are applied if provided.
func GenerateMermaid(res *domain.Result, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, n := range res.Nodes() {
		id := mermaidID(n.ID)

		opener, closer := "[", "]"
		switch {
		case n.IsRoot():
			opener, closer = "((", "))"
		case n.IsSolution():
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, n.State, closer))

		for _, c := range n.Children {
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", id, c.Label, mermaidID(c.ID)))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on both light and dark themes
		sb.WriteString("    classDef path fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef goal fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[int]bool)
		for _, id := range overlay.PathNodes {
			if !seen[id] {
				seen[id] = true
				sb.WriteString(fmt.Sprintf("    class %s path;\n", mermaidID(id)))
			}
		}
		for _, id := range overlay.GoalNodes {
			sb.WriteString(fmt.Sprintf("    class %s goal;\n", mermaidID(id)))
		}
	}

	return sb.String()
}

func mermaidID(id int) string {
	return fmt.Sprintf("n%d", id)
}
