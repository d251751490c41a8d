package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/rivercross/pkg/domain"
)

// SolutionsMarkdown describes the search outcome as a markdown document:
// a statistics table and one numbered list of crossings per solution.
func SolutionsMarkdown(res *domain.Result) string {
	var sb strings.Builder
	stats := res.Stats

	sb.WriteString("# River crossing solutions\n\n")
	fmt.Fprintf(&sb, "Explored **%d** states over **%d** levels and found **%d** solution(s).\n\n",
		stats.Nodes(), stats.MaxDepth, stats.Solutions)

	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Nodes processed | %d |\n", stats.Processed)
	fmt.Fprintf(&sb, "| Children attached | %d |\n", stats.Accepted)
	for _, reason := range domain.RejectReasons {
		fmt.Fprintf(&sb, "| Rejected (%s) | %d |\n", reason, stats.Rejected[reason])
	}
	sb.WriteString("\n")

	for i, s := range res.Solutions {
		path := s.Path()
		fmt.Fprintf(&sb, "## Solution %d (%d moves)\n\n", i+1, len(path)-1)
		fmt.Fprintf(&sb, "Start: `%s`\n\n", path[0].State)
		for j, step := range path[1:] {
			fmt.Fprintf(&sb, "%d. %s (%s) → `%s`\n", j+1, capitalize(step.Move.Describe()), step.State.Active, step.State)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
