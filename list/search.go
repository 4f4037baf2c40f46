package list

func Contains[T comparable](l *List[T], v T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return true
		}
	}
	return false
}

// Delete removes every copy of v from l and returns how many were removed.
func Delete[T comparable](l *List[T], v T) int {
	removed := 0
	for l.head != nil && l.head.value == v {
		l.EraseFront()
		removed++
	}
	if l.head == nil {
		return removed
	}
	prev := l.Begin()
	for prev.n.next != nil {
		if prev.n.next.value == v {
			l.EraseAfter(prev)
			removed++
			continue
		}
		prev.Next()
	}
	return removed
}
