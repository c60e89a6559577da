package summary

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"treepick/internal/domain"
	"treepick/internal/ui/services/selection"
)

// Format derives the closed-state summary line. Selected leaf labels are
// joined in tree order; when the joined text does not fit the width budget a
// count summary is shown instead. Width is measured in terminal cells via
// go-runewidth, a cheap stand-in for real text measurement.
func Format(tree []domain.Option, set selection.Set, widthBudget int, placeholder string) string {
	if len(set) == 0 {
		return placeholder
	}

	var labels []string
	for _, opt := range domain.Flatten(tree) {
		if set.Contains(opt.Value) {
			labels = append(labels, opt.Label)
		}
	}

	joined := strings.Join(labels, ", ")
	if runewidth.StringWidth(joined) <= widthBudget {
		return joined
	}

	// Count summary counts every node, parents and children both, against
	// the full selection set including synthetic parent entries.
	return fmt.Sprintf("%d of %d selected", len(set), domain.CountNodes(tree))
}
