package fft

import "errors"

// Sentinel errors returned by transform operations.
var (
	// ErrInvalidSize is returned when a radix-2 transform is invoked on a
	// buffer whose length is not a power of two. The selector never routes
	// such buffers to a radix-2 path, so seeing this error indicates an
	// internal dispatch defect.
	ErrInvalidSize = errors.New("fft: length is not a power of two")

	// ErrNotPowerOfFour is returned when a radix-4 transform is invoked on
	// a buffer whose length is not a power of four.
	ErrNotPowerOfFour = errors.New("fft: length is not a power of four")

	// ErrBufferTooSmall is returned when a caller-supplied output slice is
	// shorter than the transform requires. Nothing is written to the
	// outputs in that case.
	ErrBufferTooSmall = errors.New("fft: output buffer too small")

	// ErrNilSlice is returned when a nil slice is passed to a transform.
	ErrNilSlice = errors.New("fft: nil slice")
)
