// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

// Default number of rows shown before "show more"
const (
	DefaultOptionShow = 12
	DefaultTextShow   = 200
)

// Pager bounds a list to InitialShow rows until expanded.
// A negative InitialShow never truncates.
type Pager struct {
	InitialShow int
	Expanded    bool
}

// Visible returns how many of total rows are shown.
func (p Pager) Visible(total int) int {
	if p.Expanded || p.InitialShow < 0 || total <= p.InitialShow {
		return total
	}
	return p.InitialShow
}

// HasMore reports whether the list is long enough to need the toggle,
// in either state.
func (p Pager) HasMore(total int) bool {
	return p.InitialShow >= 0 && total > p.InitialShow
}

// Hidden returns the number of rows behind the toggle when collapsed.
func (p Pager) Hidden(total int) int {
	if !p.HasMore(total) {
		return 0
	}
	return total - p.InitialShow
}

// Toggle flips between expanded and collapsed.
func (p *Pager) Toggle() {
	p.Expanded = !p.Expanded
}

// Page returns the visible prefix of items. The slice shares storage with items.
func Page[T any](items []T, p Pager) []T {
	return items[:p.Visible(len(items))]
}
