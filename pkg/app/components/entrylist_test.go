package components

import (
	"strings"
	"testing"

	"github.com/tikey/worlds/pkg/catalog"
)

func listEntries() []catalog.Entry {
	return []catalog.Entry{
		{Title: "Alpha", Updated: "2024-01-01", Tags: []string{"x"}},
		{Title: "Beta"},
		{Title: "Gamma"},
	}
}

func TestSetItemsResetsMarks(t *testing.T) {
	list := NewEntryList()
	list.SetItems(listEntries())
	list.ToggleMark()

	if len(list.Marks) != 1 {
		t.Fatalf("Expected 1 mark, got %d", len(list.Marks))
	}

	list.SetItems(listEntries()[:1])

	if len(list.Marks) != 0 {
		t.Error("Expected marks to reset on new items")
	}
}

func TestSetItemsClampsCursor(t *testing.T) {
	list := NewEntryList()
	list.SetItems(listEntries())
	list.Cursor = 2

	list.SetItems(listEntries()[:1])

	if list.Cursor != 0 {
		t.Errorf("Expected cursor clamped to 0, got %d", list.Cursor)
	}
}

func TestNextPrevWrap(t *testing.T) {
	list := NewEntryList()
	list.SetItems(listEntries())

	list.Prev()
	if list.Cursor != 2 {
		t.Errorf("Expected Prev to wrap to last item, got %d", list.Cursor)
	}

	list.Next()
	if list.Cursor != 0 {
		t.Errorf("Expected Next to wrap to first item, got %d", list.Cursor)
	}
}

func TestCurrentEmptyList(t *testing.T) {
	list := NewEntryList()

	if list.Current() != nil {
		t.Error("Expected nil current entry for empty list")
	}

	list.Next()
	list.Prev()
	list.ToggleMark()
}

func TestMarkedInOrder(t *testing.T) {
	list := NewEntryList()
	list.SetItems(listEntries())

	list.Cursor = 2
	list.ToggleMark()
	list.Cursor = 0
	list.ToggleMark()

	marked := list.Marked()
	if len(marked) != 2 {
		t.Fatalf("Expected 2 marked entries, got %d", len(marked))
	}
	if marked[0].Title != "Alpha" || marked[1].Title != "Gamma" {
		t.Errorf("Expected list order, got %s, %s", marked[0].Title, marked[1].Title)
	}
}

func TestMarkedFallsBackToCursor(t *testing.T) {
	list := NewEntryList()
	list.SetItems(listEntries())
	list.Cursor = 1

	marked := list.Marked()
	if len(marked) != 1 || marked[0].Title != "Beta" {
		t.Errorf("Expected cursor entry as fallback, got %+v", marked)
	}
}

func TestToggleMarkTwice(t *testing.T) {
	list := NewEntryList()
	list.SetItems(listEntries())

	list.ToggleMark()
	list.ToggleMark()

	if len(list.Marks) != 0 {
		t.Error("Expected toggling twice to unmark")
	}
}

func TestViewShowsEntries(t *testing.T) {
	list := NewEntryList()
	list.SetItems(listEntries())
	list.Height = 30

	view := list.View()
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		if !strings.Contains(view, title) {
			t.Errorf("Expected %s in view", title)
		}
	}
	if !strings.Contains(view, "2024-01-01") {
		t.Error("Expected updated stamp in view")
	}
}

func TestViewEmptyList(t *testing.T) {
	list := NewEntryList()

	if !strings.Contains(list.View(), "No worlds match") {
		t.Error("Expected empty-list message")
	}
}
