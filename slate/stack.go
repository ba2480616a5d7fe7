package slate

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Stack is an indexed collection of slates with a current index. Slates are
// created on demand when navigating to an index for the first time and
// live until the stack is discarded. Indices may be negative.
type Stack struct {
	slates  *treemap.Map // int -> *Grid
	current int
	limit   int // cell limit for new slates
}

// NewStack creates a stack of slates. Slate 0 is created immediately.
// limit is the cell limit of each slate, 0 for unlimited.
func NewStack(limit int) *Stack {
	st := &Stack{
		slates: treemap.NewWithIntComparator(),
		limit:  limit,
	}
	st.slates.Put(0, NewGrid(limit))
	return st
}

// Index returns the index of the current slate.
func (st *Stack) Index() int {
	return st.current
}

// Len returns the number of slates created so far.
func (st *Stack) Len() int {
	return st.slates.Size()
}

// Indices returns the indices of all slates in ascending order.
func (st *Stack) Indices() []int {
	keys := st.slates.Keys()
	inx := make([]int, len(keys))
	for i, k := range keys {
		inx[i] = k.(int)
	}
	return inx
}

// At returns the slate at index i, if it has been created.
func (st *Stack) At(i int) (*Grid, bool) {
	g, found := st.slates.Get(i)
	if !found {
		return nil, false
	}
	return g.(*Grid), true
}

// Current returns the active slate. If it does not exist yet, it is created
// and padded to cover the cursor position (x, y).
func (st *Stack) Current(x, y int) (*Grid, error) {
	if g, ok := st.At(st.current); ok {
		return g, nil
	}
	g := NewGrid(st.limit)
	if err := g.EnsureCovers(x, y); err != nil {
		return nil, err
	}
	tracer().P("slate", st.current).Debugf("created slate")
	st.slates.Put(st.current, g)
	return g, nil
}

// Advance moves to the next slate ("down" the stack).
func (st *Stack) Advance(x, y int) (*Grid, error) {
	st.current++
	return st.Current(x, y)
}

// Retreat moves to the previous slate ("up" the stack).
func (st *Stack) Retreat(x, y int) (*Grid, error) {
	st.current--
	return st.Current(x, y)
}
