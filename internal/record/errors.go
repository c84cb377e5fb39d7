package record

import "errors"

// ErrUnknownRecord is returned by Dispatch for a (typ,sub) pair this codec
// does not recognize. Callers typically log and skip rather than treat it
// as fatal, since unrecognized records are common in files written by
// tester software with vendor extensions.
var ErrUnknownRecord = errors.New("record: unknown record type")
