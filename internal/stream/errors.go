package stream

import "errors"

// ErrEOF is returned by ReadFull when the stream ends cleanly at a record
// boundary (zero bytes read before EOF).
var ErrEOF = errors.New("stream: end of file")

// ErrTruncated is returned by ReadFull when a read comes up short mid-field,
// i.e. the file ends in the middle of a record header or body rather than
// between records.
var ErrTruncated = errors.New("stream: truncated read")

// ErrBadCompression is returned by Open/Reopen when the sniffed backend
// cannot parse its own container (a corrupt gzip header, an empty zip
// archive, and so on).
var ErrBadCompression = errors.New("stream: bad compression container")
