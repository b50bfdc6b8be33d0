package dynstr

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAllocation      = errors.New("content ceiling exceeded")
	ErrNotFound        = errors.New("no match found")
	ErrStateConflict   = errors.New("content already present")
)
