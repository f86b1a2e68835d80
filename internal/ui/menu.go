package ui

import (
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

// Item is one menu entry.
type Item struct {
	Label string
}

// Menu is a concrete nav.ListView over a slice of items. The coordinators
// mutate the highlight and selection marks from their own goroutines while
// the bubbletea loop renders, so the marks live behind a mutex.
type Menu struct {
	mu          sync.Mutex
	items       []Item
	highlighted int
	selected    int
	styles      *Styles
	maxWidth    int
}

// NewMenu creates a menu with nothing highlighted or selected.
func NewMenu(items []Item, styles *Styles, maxWidth int) *Menu {
	return &Menu{
		items:       items,
		highlighted: -1,
		selected:    -1,
		styles:      styles,
		maxWidth:    maxWidth,
	}
}

// Highlight marks position i as the highlighted entry.
func (m *Menu) Highlight(i int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highlighted = i
}

// Unhighlight removes the highlight mark from position i.
func (m *Menu) Unhighlight(i int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.highlighted == i {
		m.highlighted = -1
	}
}

// Select marks position i as the selected entry.
func (m *Menu) Select(i int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = i
}

// Unselect removes the selection mark from position i.
func (m *Menu) Unselect(i int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected == i {
		m.selected = -1
	}
}

// Count returns the current number of entries.
func (m *Menu) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Items returns the backing slice. Callers must not mutate it.
func (m *Menu) Items() []Item {
	return m.items
}

// Highlighted returns the highlighted position, or -1.
func (m *Menu) Highlighted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highlighted
}

// Selected returns the selected position, or -1.
func (m *Menu) Selected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selected
}

// Render draws the menu, one line per entry.
func (m *Menu) Render() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var b strings.Builder
	for i, item := range m.items {
		label := runewidth.Truncate(item.Label, m.maxWidth, "…")

		cursor := "  "
		style := m.styles.Item
		if i == m.highlighted {
			cursor = "› "
			style = m.styles.Highlight
		}
		mark := " "
		if i == m.selected {
			mark = "✓"
			if i != m.highlighted {
				style = m.styles.Selected
			}
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(mark + " " + label))
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
