package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tikey/worlds/pkg/app/styles"
	"github.com/tikey/worlds/pkg/catalog"
)

// EntryList renders the visible subset of the catalog with a cursor and
// multi-select marks. Marks reset whenever the subset is replaced.
type EntryList struct {
	Items  []catalog.Entry
	Cursor int
	Marks  map[int]bool
	Width  int
	Height int
}

func NewEntryList() *EntryList {
	return &EntryList{
		Marks:  make(map[int]bool),
		Width:  80,
		Height: 20,
	}
}

func (l *EntryList) SetItems(items []catalog.Entry) {
	l.Items = items
	l.Marks = make(map[int]bool)
	if l.Cursor >= len(items) {
		l.Cursor = len(items) - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

func (l *EntryList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.Cursor++
	if l.Cursor >= len(l.Items) {
		l.Cursor = 0
	}
}

func (l *EntryList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.Cursor--
	if l.Cursor < 0 {
		l.Cursor = len(l.Items) - 1
	}
}

func (l *EntryList) ToggleMark() {
	if len(l.Items) == 0 {
		return
	}
	if l.Marks[l.Cursor] {
		delete(l.Marks, l.Cursor)
	} else {
		l.Marks[l.Cursor] = true
	}
}

// Current returns the entry under the cursor, or nil for an empty list.
func (l *EntryList) Current() *catalog.Entry {
	if len(l.Items) == 0 || l.Cursor >= len(l.Items) {
		return nil
	}
	return &l.Items[l.Cursor]
}

// Marked returns the marked entries in list order. When nothing is marked it
// falls back to the entry under the cursor.
func (l *EntryList) Marked() []catalog.Entry {
	var out []catalog.Entry
	for i, entry := range l.Items {
		if l.Marks[i] {
			out = append(out, entry)
		}
	}
	if len(out) == 0 {
		if current := l.Current(); current != nil {
			out = append(out, *current)
		}
	}
	return out
}

func (l *EntryList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No worlds match")
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	// Window the list around the cursor, three terminal lines per row.
	visible := l.Height / 3
	if visible < 1 {
		visible = 5
	}
	start := l.Cursor - visible/2
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(l.Items) {
		end = len(l.Items)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		entry := l.Items[i]

		mark := "○"
		if l.Marks[i] {
			mark = "●"
		}

		line := fmt.Sprintf("%s %s", mark, entry.Title)
		if entry.Updated != "" {
			line += styles.MutedStyle.Render(fmt.Sprintf("  ·  %s", entry.Updated))
		}
		if len(entry.Tags) > 0 {
			line += styles.MutedStyle.Render(fmt.Sprintf("  ·  %s", strings.Join(entry.Tags, ", ")))
		}

		if i == l.Cursor {
			line = styles.SelectedStyle.Render(line)
		} else if l.Marks[i] {
			line = styles.StatusCompleted.Render(line)
		} else {
			line = styles.TextStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(l.Items) > visible {
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("showing %d-%d of %d", start+1, end, len(l.Items)),
		))
		b.WriteString("\n")
	}

	return b.String()
}
