package carousel

// VisibleWindow returns exactly PageSize items starting at Index. A short
// tail is padded from the head of the sequence, so the last page may repeat
// items of the first. The returned slice is a fresh copy.
func (e *Engine[T]) VisibleWindow() []T {
	p := e.pageSize
	out := make([]T, 0, p)
	end := min(e.index+p, len(e.items))
	out = append(out, e.items[e.index:end]...)
	if missing := p - len(out); missing > 0 {
		out = append(out, e.items[:missing]...)
	}
	return out
}

// Current returns the first visible item
func (e *Engine[T]) Current() T {
	return e.items[e.index]
}

// Items returns a copy of the full sequence
func (e *Engine[T]) Items() []T {
	out := make([]T, len(e.items))
	copy(out, e.items)
	return out
}
