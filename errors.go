package numrange

import "errors"

// Sentinel errors for notation parsing and option validation.
var (
	// ErrMalformedRange indicates an item with too many range separators or
	// a step that contradicts the range direction.
	ErrMalformedRange = errors.New("malformed range")
	// ErrInvalidSign indicates a leading minus sign for an unsigned numeric type.
	ErrInvalidSign = errors.New("invalid sign for unsigned type")
	// ErrZeroStep indicates an explicit step of zero.
	ErrZeroStep = errors.New("step is zero")
	// ErrDescendingUnsigned indicates a descending range for an unsigned numeric type.
	ErrDescendingUnsigned = errors.New("descending range for unsigned type")
	// ErrNumberFormat indicates a part that is not a valid number after
	// group-separator stripping, or one out of range for the numeric type.
	ErrNumberFormat = errors.New("invalid number")
	// ErrEmptyItem indicates an empty item in a non-empty notation string.
	ErrEmptyItem = errors.New("empty list item")
	// ErrAmbiguousSeparators indicates two configured separators that coincide.
	ErrAmbiguousSeparators = errors.New("ambiguous separators")
)
