package internal

// Root is the index of the sentinel slot.
// Root.next is the first element and Root.prev is the last one; an empty list points Root at itself.
const Root = 0

type slot[T any] struct {
	prev, next int
	gen        uint32
	live       bool

	value T
}

// List implements a generic doubly linked list whose elements live in a single slice and refer to
// each other by index. An element is named by its index together with the generation of the slot,
// so that an index kept after Remove never resolves to whatever reuses the slot later.
type List[T any] struct {
	slots []slot[T]
	free  []int
	len   int
}

// NewList creates a new linked list.
func NewList[T any]() *List[T] {
	l := &List[T]{}
	l.Init()
	return l
}

// Init initializes the list with no elements.
// Slots in use are released first so that their generations keep advancing.
func (l *List[T]) Init() {
	if len(l.slots) == 0 {
		l.slots = append(l.slots, slot[T]{live: true})
	} else {
		for i := l.slots[Root].next; i != Root; {
			next := l.slots[i].next
			l.release(i)
			i = next
		}
	}
	l.slots[Root].prev = Root
	l.slots[Root].next = Root
	l.len = 0
}

// Initialized reports whether Init has been called.
func (l *List[T]) Initialized() bool {
	return len(l.slots) > 0
}

// Len is the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Valid reports whether index i with generation gen still names an element of this list.
func (l *List[T]) Valid(i int, gen uint32) bool {
	if i <= Root || i >= len(l.slots) {
		return false
	}
	s := &l.slots[i]
	return s.live && s.gen == gen
}

// Gen returns the current generation of slot i.
func (l *List[T]) Gen(i int) uint32 {
	return l.slots[i].gen
}

// Front returns the first element, or Root if the list is empty.
func (l *List[T]) Front() int {
	return l.slots[Root].next
}

// Back returns the last element, or Root if the list is empty.
func (l *List[T]) Back() int {
	return l.slots[Root].prev
}

// Next returns the element after i, or Root if i is the last one.
func (l *List[T]) Next(i int) int {
	return l.slots[i].next
}

// Prev returns the element before i, or Root if i is the first one.
func (l *List[T]) Prev(i int) int {
	return l.slots[i].prev
}

// Value returns the value stored at i.
func (l *List[T]) Value(i int) T {
	return l.slots[i].value
}

// SetValue replaces the value stored at i.
func (l *List[T]) SetValue(i int, value T) {
	l.slots[i].value = value
}

// InsertAfter adds a new value right after at and returns its index.
// Passing Root as at pushes to the front.
func (l *List[T]) InsertAfter(value T, at int) int {
	i := l.alloc(value)
	s := &l.slots[i]
	s.prev = at
	s.next = l.slots[at].next
	l.slots[s.prev].next = i
	l.slots[s.next].prev = i
	l.len++
	return i
}

// InsertBefore adds a new value right before at and returns its index.
// Passing Root as at pushes to the back.
func (l *List[T]) InsertBefore(value T, at int) int {
	return l.InsertAfter(value, l.slots[at].prev)
}

// PushFront adds a new value to the front of the list.
func (l *List[T]) PushFront(value T) int {
	return l.InsertAfter(value, Root)
}

// PushBack adds a new value to the back of the list.
func (l *List[T]) PushBack(value T) int {
	return l.InsertBefore(value, Root)
}

// Remove removes the given element from the list.
func (l *List[T]) Remove(i int) T {
	s := &l.slots[i]
	l.slots[s.prev].next = s.next
	l.slots[s.next].prev = s.prev
	value := s.value
	l.release(i)
	l.len--
	return value
}

func (l *List[T]) alloc(value T) int {
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		s := &l.slots[i]
		s.live = true
		s.value = value
		return i
	}
	l.slots = append(l.slots, slot[T]{live: true, value: value})
	return len(l.slots) - 1
}

func (l *List[T]) release(i int) {
	var zero T
	s := &l.slots[i]
	s.prev = Root
	s.next = Root
	s.value = zero // avoid memory leaks
	s.live = false
	s.gen++
	l.free = append(l.free, i)
}
