package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrInvalidArgument is returned when a size, step, count or group
	// number is outside what the operation accepts.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrTypeMismatch is returned when a value does not have the type an
	// operation requires, e.g. by Ensure or ReduceSpread.
	ErrTypeMismatch = errors.New("collections: type mismatch")

	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrNoMatchingItems is returned by FirstOrFail, LastOrFail and Sole when
	// no item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrMultipleItemsFound is returned by Sole when more than one item
	// satisfies the predicate.
	ErrMultipleItemsFound = errors.New("collections: multiple items found")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// counts differ.
	ErrMismatchedLengths = errors.New("collections: keys and values must have the same length")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
