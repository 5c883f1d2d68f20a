package tui

import (
	"fmt"
	"strings"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/search"
)

// renderHeader returns the title line
func (m *Model) renderHeader() string {
	return titleColor.Render(title) + "  " + subtitleColor.Render(subtitle)
}

// renderFooter returns the status line: exit hint, result count, and a
// nudge to narrow the query once there are too many results to list.
func (m *Model) renderFooter() string {
	footer := "Press " + keyColor.Render("Ctrl-C") + " to exit."
	if m.loading || m.total == 0 {
		return footer
	}
	footer += " " + countColor.Render(utils.FormatWithCommas(m.total)) + " results."
	if m.total > m.showLimit {
		footer += " " + hintColor.Render("Type one more letter...")
	}
	return footer
}

// renderMatches renders one word per line with the first occurrence of query
// highlighted. A word that does not contain the query is struck through.
func renderMatches(matches []search.Match, query string) string {
	var sb strings.Builder
	for i, m := range matches {
		if i > 0 {
			sb.WriteByte('\n')
		}
		before, match, after, ok := utils.SplitMatch(m.Word, query)
		if !ok {
			sb.WriteString(missingColor.Render(m.Word))
			continue
		}
		fmt.Fprintf(&sb, "%s%s%s", before, matchColor.Render(match), after)
	}
	return sb.String()
}
