package record

import "github.com/stdf-go/stdfcore/internal/wire"

// HeaderLen is the fixed size of every STDF record header: a 2-byte length,
// then two 1-byte type fields.
const HeaderLen = 4

// Header is the 4-byte record header preceding every record body: REC_LEN
// (byte count of the body that follows, exclusive of the header itself),
// REC_TYP, and REC_SUB.
type Header struct {
	RecLen uint16
	Typ    uint8
	Sub    uint8
}

// Tag returns the fully-qualified dispatch key for this header.
func (h Header) Tag() RecordTag { return tag(h.Typ, h.Sub) }

// ParseHeader decodes a 4-byte header buffer. REC_TYP and REC_SUB sit at
// fixed offsets 2 and 3 and are single bytes, so they decode independently
// of byte order; REC_LEN is decoded with order, which callers pass as the
// stream's established order for every record but the first.
//
// The first record in a stream is always FAR, whose body is a fixed 2
// bytes regardless of byte order — so the pipeline never needs REC_LEN's
// value to read FAR's body, and the chicken-and-egg problem of needing an
// order to read the length that will tell you the order never arises.
func ParseHeader(buf [HeaderLen]byte, order wire.Order) Header {
	c := wire.NewCursor(buf[:2], order)
	return Header{
		RecLen: c.U2(),
		Typ:    buf[2],
		Sub:    buf[3],
	}
}
