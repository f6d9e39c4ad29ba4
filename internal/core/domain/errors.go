package domain

import "errors"

var (
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrExpired           = errors.New("cannot sell expired product")
	ErrUnknownKind       = errors.New("unknown product kind")
)
