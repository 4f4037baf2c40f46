package list

import "errors"

var ErrInvalidArgument = errors.New("list: negative size")
var ErrEmptyContainer = errors.New("list: list is empty")
var ErrOutOfRange = errors.New("list: iterator out of range")
