package snake

import "iter"

// cellRing is an array-backed double-ended queue of cells.
// Index 0 is the front (head), index n-1 the back (tail).
type cellRing struct {
	buf  []Cell
	head int
	n    int
}

func newCellRing(capacity int) *cellRing {
	return &cellRing{buf: make([]Cell, capacity)}
}

func (r *cellRing) len() int {
	return r.n
}

func (r *cellRing) at(i int) Cell {
	return r.buf[(r.head+i)%len(r.buf)]
}

func (r *cellRing) pushFront(c Cell) {
	r.reserve()
	r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.head] = c
	r.n++
}

func (r *cellRing) pushBack(c Cell) {
	r.reserve()
	r.buf[(r.head+r.n)%len(r.buf)] = c
	r.n++
}

func (r *cellRing) popBack() (Cell, bool) {
	if r.n == 0 {
		return Cell{}, false
	}
	c := r.at(r.n - 1)
	r.n--
	return c, true
}

// reserve makes room for one more element, unrolling the ring into a
// fresh buffer twice the size when full.
func (r *cellRing) reserve() {
	if r.n < len(r.buf) {
		return
	}
	grown := make([]Cell, max(8, 2*len(r.buf)))
	for i := range r.n {
		grown[i] = r.at(i)
	}
	r.buf = grown
	r.head = 0
}

// Body is a read-only, live view over a snake's cells, head first.
// It reflects later steps and growth of the snake it came from.
type Body struct {
	r *cellRing
}

// Len returns the number of cells.
func (b Body) Len() int {
	if b.r == nil {
		return 0
	}
	return b.r.len()
}

// At returns the i-th cell counting from the head.
// It panics if i is out of range, like a slice index.
func (b Body) At(i int) Cell {
	if i < 0 || i >= b.Len() {
		panic("snake: body index out of range")
	}
	return b.r.at(i)
}

// Front returns the head cell.
func (b Body) Front() Cell {
	return b.At(0)
}

// Back returns the tail cell.
func (b Body) Back() Cell {
	return b.At(b.Len() - 1)
}

// All iterates the cells front to back with their index.
func (b Body) All() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for i := range b.Len() {
			if !yield(i, b.r.at(i)) {
				return
			}
		}
	}
}

// Cells returns a copy of the cells, head first.
func (b Body) Cells() []Cell {
	out := make([]Cell, 0, b.Len())
	for _, c := range b.All() {
		out = append(out, c)
	}
	return out
}

// Contains reports whether any cell, tail included, equals c.
func (b Body) Contains(c Cell) bool {
	for _, seg := range b.All() {
		if seg == c {
			return true
		}
	}
	return false
}
