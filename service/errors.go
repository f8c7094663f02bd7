package service

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrZeroTotalCost = errors.New("total cost is zero")
	ErrUnknownLayout = errors.New("unknown layout")
)
