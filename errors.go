package stdfcore

import "errors"

var (
	// ErrNotFAR is returned by Open when a stream's first record is not a
	// FAR, since the byte order for every subsequent record is derived
	// from it.
	ErrNotFAR = errors.New("stdfcore: first record is not FAR")

	// ErrUnsupportedCPUType is returned when FAR.CPU_TYPE names a byte
	// order this decoder has no mapping for and Options.StrictCPUType is
	// set; otherwise the decoder falls back to big-endian.
	ErrUnsupportedCPUType = errors.New("stdfcore: unsupported CPU_TYPE")

	// ErrClosed is returned by Pipeline.Run when called after Close.
	ErrClosed = errors.New("stdfcore: pipeline closed")

	// ErrHandlerStopped wraps an error returned by a caller's
	// RecordHandler, distinguishing a consumer-initiated stop from a
	// stream-level decode failure.
	ErrHandlerStopped = errors.New("stdfcore: record handler returned an error")
)
