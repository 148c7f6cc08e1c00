// Package selection provides a cyclic list with an optional highlight.
package selection

import "fmt"

// List is a navigable, fixed set of options. The zero highlight state is
// "none"; callers resolve the highlighted index through Selected.
type List[T fmt.Stringer] struct {
	options     []T
	highlighted int
	hasSelected bool
}

// New returns a list over options with the first option highlighted.
func New[T fmt.Stringer](options ...T) *List[T] {
	l := &List[T]{options: options}
	l.SelectFirst()
	return l
}

// Len returns the number of options.
func (l *List[T]) Len() int {
	return len(l.options)
}

// Labels returns the display label of every option in order.
func (l *List[T]) Labels() []string {
	labels := make([]string, len(l.options))
	for i, opt := range l.options {
		labels[i] = opt.String()
	}
	return labels
}

// SelectNone clears the highlight.
func (l *List[T]) SelectNone() {
	l.highlighted = 0
	l.hasSelected = false
}

// SelectFirst highlights index 0.
func (l *List[T]) SelectFirst() {
	l.selectIndex(0)
}

// SelectLast highlights the last index.
func (l *List[T]) SelectLast() {
	l.selectIndex(len(l.options) - 1)
}

// SelectNext moves the highlight down, wrapping from the last index to 0.
// With no highlight it lands on index 0.
func (l *List[T]) SelectNext() {
	if !l.hasSelected {
		l.SelectFirst()
		return
	}
	l.selectIndex((l.highlighted + 1) % len(l.options))
}

// SelectPrevious moves the highlight up, wrapping from 0 to the last index.
// With no highlight it lands on the last index.
func (l *List[T]) SelectPrevious() {
	if !l.hasSelected {
		l.SelectLast()
		return
	}
	n := len(l.options)
	l.selectIndex((l.highlighted - 1 + n) % n)
}

// Selected returns the highlighted index, or false when nothing is highlighted.
func (l *List[T]) Selected() (int, bool) {
	return l.highlighted, l.hasSelected
}

// SelectedOption resolves the highlight to its option.
func (l *List[T]) SelectedOption() (T, bool) {
	var zero T
	if !l.hasSelected {
		return zero, false
	}
	return l.options[l.highlighted], true
}

func (l *List[T]) selectIndex(i int) {
	if i < 0 || i >= len(l.options) {
		l.SelectNone()
		return
	}
	l.highlighted = i
	l.hasSelected = true
}

// View is the read-only projection handed to the renderer.
type View struct {
	Labels      []string
	Highlighted int
	HasSelected bool
}

// View returns the labels and current highlight.
func (l *List[T]) View() View {
	return View{Labels: l.Labels(), Highlighted: l.highlighted, HasSelected: l.hasSelected}
}
