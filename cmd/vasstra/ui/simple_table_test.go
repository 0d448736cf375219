package ui

import (
	"strings"
	"testing"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Products", []string{"Name", "Price"})
	table.AddRow("Linen Shirt", "1499.00")

	styles := DefaultStyles()
	view := table.View(styles)

	if !strings.Contains(view, "Products") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "Linen Shirt") {
		t.Error("View missing cell content")
	}
}

func TestSimpleTableAlignRight(t *testing.T) {
	table := NewSimpleTable("", []string{"Name", "Price"}).AlignRight(1)
	table.AddRow("Linen Shirt Oversized", "99")

	view := table.View(DefaultStyles())

	for _, line := range strings.Split(view, "\n") {
		if !strings.Contains(line, "99") {
			continue
		}
		// Right padding is one cell, so a right-aligned value sits one
		// space off the edge with the slack on its left.
		if !strings.HasSuffix(line, " 99 ") {
			t.Errorf("Expected price flush right, got %q", line)
		}
		return
	}
	t.Fatal("Price row not rendered")
}

func TestSimpleTableEmpty(t *testing.T) {
	table := NewSimpleTable("Empty", []string{"Col"})
	if view := table.View(DefaultStyles()); view != "" {
		t.Errorf("Expected empty view for empty table, got %q", view)
	}
}
