package imghdr

import "errors"

var (
	// ErrInvalidSource is returned when the provided data source cannot be read.
	ErrInvalidSource = errors.New("imghdr: invalid source")

	// ErrTooLarge is returned when the input exceeds MaxInputSize.
	ErrTooLarge = errors.New("imghdr: input too large")
)
