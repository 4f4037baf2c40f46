package list

// Clone returns a deep copy of l.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.Concat(l)
	return c
}

// CopyFrom replaces the contents of l with a copy of other's. Copying a list
// onto itself leaves it unchanged.
func (l *List[T]) CopyFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	l.Concat(other)
}

// Take moves the chain of l into a new list and leaves l empty.
func (l *List[T]) Take() *List[T] {
	m := &List[T]{head: l.head, tail: l.tail}
	l.head, l.tail = nil, nil
	return m
}

// MoveFrom clears l, then moves other's chain into l and leaves other empty.
//
// l.MoveFrom(l) therefore empties l.
func (l *List[T]) MoveFrom(other *List[T]) {
	l.Clear()
	l.head, l.tail = other.head, other.tail
	other.head, other.tail = nil, nil
}

// Concat appends copies of other's values to l. other may be l, in which
// case the original contents are appended once.
func (l *List[T]) Concat(other *List[T]) {
	last := other.tail
	for n := other.head; n != nil; n = n.next {
		l.PushBack(n.value)
		if n == last {
			break
		}
	}
}
