package list

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Fprint writes the values of l to w, each followed by a space, and then a
// newline. An empty list is written as "empty list".
func (l *List[T]) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, l.String()+"\n")
	return err
}

// Print writes l to standard output as Fprint does.
func (l *List[T]) Print() {
	_ = l.Fprint(os.Stdout)
}

func (l *List[T]) String() string {
	if l.head == nil {
		return "empty list"
	}
	var b strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprint(&b, n.value)
		b.WriteByte(' ')
	}
	return b.String()
}
