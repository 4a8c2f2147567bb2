package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tikey/worlds/pkg/catalog"
)

var (
	purple = lipgloss.Color("99")

	headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func tableStyleFunc(row, col int) lipgloss.Style {
	switch {
	case row == table.HeaderRow:
		return headerStyle
	default:
		return cellStyle
	}
}

func printEntries(entries []catalog.Entry) {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(tableStyleFunc).
		Headers("#", "Title", "Updated", "Tags")

	for i, entry := range entries {
		t.Row(
			fmt.Sprintf("%d", i+1),
			truncateString(entry.Title, 48),
			entry.Updated,
			truncateString(strings.Join(entry.Tags, ", "), 32),
		)
	}

	fmt.Println(t)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
