package carousel

// Direction is a one-step swipe.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// Cursor tracks the active page in a wrap-around list of fixed size.
type Cursor struct {
	index int
	size  int
}

// NewCursor returns a cursor at index 0. size must be at least 1.
func NewCursor(size int) *Cursor {
	if size < 1 {
		size = 1
	}
	return &Cursor{size: size}
}

func (c *Cursor) Index() int { return c.index }
func (c *Cursor) Size() int  { return c.size }

// SetIndex wraps i into [0, size). Negative values wrap backward.
func (c *Cursor) SetIndex(i int) int {
	c.index = wrap(i, c.size)
	return c.index
}

// Advance moves exactly one step in d with wrap-around.
func (c *Cursor) Advance(d Direction) int {
	step := 1
	if d == Prev {
		step = -1
	}
	return c.SetIndex(c.index + step)
}

// Neighbors returns the previous, current and next indices. With a single
// page all three are equal.
func (c *Cursor) Neighbors() (prev, current, next int) {
	return wrap(c.index-1, c.size), c.index, wrap(c.index+1, c.size)
}

func wrap(i, size int) int {
	return ((i % size) + size) % size
}
