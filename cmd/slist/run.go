package main

import (
	"fmt"
	"io"
	"strconv"

	"slist/internal/log"
	"slist/list"
)

func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func build(mode string, values []int) *list.List[int] {
	l := list.New[int]()
	switch mode {
	case modeSorted:
		for _, v := range values {
			list.InsertSorted(l, v)
		}
	default:
		for _, v := range values {
			l.PushBack(v)
		}
		list.Sort(l)
	}
	return l
}

func run(mode string, args []string, w io.Writer, logger log.Logger) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	logger = logger.WithField("mode", mode)
	logger.Debugf("read %d values", len(values))

	l := build(mode, values)
	if !list.IsSorted(l) {
		return fmt.Errorf("list is not sorted: %s", l)
	}
	logger.WithField("size", l.Size()).Info("list built")

	if err := l.Fprint(w); err != nil {
		return fmt.Errorf("print list: %w", err)
	}
	return nil
}
