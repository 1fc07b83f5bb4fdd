package carousel

// Normalize maps any integer onto [0, n). Negative inputs wrap from the end,
// so stepping back from 0 lands on n-1. n must be positive.
func Normalize(i, n int) int {
	return ((i % n) + n) % n
}

// MaxIndex returns the last page-aligned start offset, max(0, Len-PageSize)
func (e *Engine[T]) MaxIndex() int {
	return max(0, len(e.items)-e.pageSize)
}

// PageCount returns the number of indicator dots, ceil(Len/PageSize)
func (e *Engine[T]) PageCount() int {
	return (len(e.items) + e.pageSize - 1) / e.pageSize
}

// ActivePage returns the indicator dot covering the current index
func (e *Engine[T]) ActivePage() int {
	return e.index / e.pageSize
}

// IsFirstPage reports whether the window starts at the head of the sequence
func (e *Engine[T]) IsFirstPage() bool {
	return e.index == 0
}

// IsLastPage reports whether a forward step would wrap to the start
func (e *Engine[T]) IsLastPage() bool {
	return e.index >= e.MaxIndex()
}

// step returns the index reached from i after steps moves
func (e *Engine[T]) step(i, steps int) int {
	n := len(e.items)
	if e.variant == Single {
		return Normalize(i+steps%n, n)
	}
	// Any start joins the page cycle within one lap, after which the
	// remaining steps reduce modulo its length.
	cycle := e.pageCycle()
	move, dir := e.pageForward, 1
	if steps < 0 {
		move, dir = e.pageBack, -1
	}
	for k := 0; k < cycle && steps != 0; k++ {
		i = move(i)
		steps -= dir
	}
	for steps %= cycle; steps != 0; steps -= dir {
		i = move(i)
	}
	return i
}

// pageCycle returns the size of the reachable set {0, P, 2P, ...} plus MaxIndex
func (e *Engine[T]) pageCycle() int {
	limit := e.MaxIndex()
	if limit == 0 {
		return 1
	}
	return (limit+e.pageSize-1)/e.pageSize + 1
}

// pageForward moves one page ahead, clamping to MaxIndex and wrapping past it
func (e *Engine[T]) pageForward(i int) int {
	limit := e.MaxIndex()
	if i >= limit {
		return 0
	}
	return min(i+e.pageSize, limit)
}

// pageBack moves to the previous page start, wrapping from 0 to MaxIndex
func (e *Engine[T]) pageBack(i int) int {
	if i <= 0 {
		return e.MaxIndex()
	}
	p := e.pageSize
	prev := ((i+p-1)/p - 1) * p
	return max(0, prev)
}
