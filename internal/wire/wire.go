// Package wire implements the STDF v4 primitive field decoder.
//
// STDF fields are read from a record payload at an advancing cursor. Every
// read is infallible: a field whose bytes are not fully present in the
// remaining payload yields the zero value for its kind and leaves the cursor
// untouched, so that a caller can keep decoding the rest of a truncated
// record instead of aborting it. This mirrors STDF's own convention that a
// writer may omit a record's optional trailing fields entirely.
//
// Reference: original STDF v4 field primitives in
// deps/cystdf/stdf4_src/stdf4_types.h and stdf4_func.c (dtc* family).
package wire

import (
	"encoding/binary"
	"math"
)

// Order selects the byte order in effect for a stream, derived once from the
// FAR record's CPU_TYPE and held for the remainder of the stream.
//
// The zero value Order (as constructed when bootstrapping a stream before
// CPU_TYPE has been read) is valid and behaves as big-endian, matching
// OrderFromCPUType's own fallback for an unrecognized CPU_TYPE.
type Order struct {
	bo binary.ByteOrder
	// CPUType is the raw FAR.CPU_TYPE value this Order was derived from,
	// kept only for diagnostics.
	CPUType uint8
}

// byteOrder returns the effective binary.ByteOrder, defaulting a zero-value
// Order to big-endian so a Cursor never dereferences a nil ByteOrder.
func (o Order) byteOrder() binary.ByteOrder {
	if o.bo == nil {
		return binary.BigEndian
	}
	return o.bo
}

// CPU_TYPE values from the FAR record (stdf4_types.h does not enumerate
// these; they come from the STDF v4 spec text referenced in spec.md §3).
const (
	CPUSun uint8 = 1 // Sun/big-endian
	CPUDEC uint8 = 2 // DEC PDP — historically little-endian-words, treated
	// as big-endian here per spec.md §9(c): a known quirk of the
	// reference implementation that this port preserves deliberately.
	CPUx86 uint8 = 3 // x86/little-endian
)

// OrderFromCPUType derives the wire byte order from a FAR.CPU_TYPE value.
// Unrecognized CPU types default to big-endian, matching the reference
// decoder's fallback.
func OrderFromCPUType(cpuType uint8) Order {
	if cpuType == CPUx86 {
		return Order{bo: binary.LittleEndian, CPUType: cpuType}
	}
	return Order{bo: binary.BigEndian, CPUType: cpuType}
}

// Cursor reads STDF primitive fields from a record payload buffer.
//
// FAR's own two fields (CPU_TYPE, STDF_VER) are single bytes and therefore
// endian-independent; callers decode FAR with a zero-value Cursor (whose
// Order is irrelevant) to bootstrap the stream's byte order before
// constructing the Cursor used for every subsequent record.
type Cursor struct {
	buf   []byte
	pos   int
	order Order
}

// NewCursor returns a Cursor over buf using the given byte order.
func NewCursor(buf []byte, order Order) *Cursor {
	return &Cursor{buf: buf, pos: 0, order: order}
}

// Pos returns the current cursor offset into the payload.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

func (c *Cursor) have(n int) bool { return c.Remaining() >= n }

// U1 reads an unsigned 1-byte integer.
func (c *Cursor) U1() uint8 {
	if !c.have(1) {
		return 0
	}
	v := c.buf[c.pos]
	c.pos++
	return v
}

// I1 reads a signed 1-byte integer.
func (c *Cursor) I1() int8 { return int8(c.U1()) }

// C1 reads a single opaque character.
func (c *Cursor) C1() byte { return c.U1() }

// B1 reads a single opaque byte.
func (c *Cursor) B1() byte { return c.U1() }

// U2 reads an unsigned 2-byte integer in the stream's byte order.
func (c *Cursor) U2() uint16 {
	if !c.have(2) {
		return 0
	}
	v := c.order.byteOrder().Uint16(c.buf[c.pos:])
	c.pos += 2
	return v
}

// I2 reads a signed 2-byte integer.
func (c *Cursor) I2() int16 { return int16(c.U2()) }

// U4 reads an unsigned 4-byte integer in the stream's byte order.
func (c *Cursor) U4() uint32 {
	if !c.have(4) {
		return 0
	}
	v := c.order.byteOrder().Uint32(c.buf[c.pos:])
	c.pos += 4
	return v
}

// I4 reads a signed 4-byte integer.
func (c *Cursor) I4() int32 { return int32(c.U4()) }

// U8 reads an unsigned 8-byte integer in the stream's byte order.
func (c *Cursor) U8() uint64 {
	if !c.have(8) {
		return 0
	}
	v := c.order.byteOrder().Uint64(c.buf[c.pos:])
	c.pos += 8
	return v
}

// R4 reads an IEEE-754 single-precision float.
func (c *Cursor) R4() float32 {
	if !c.have(4) {
		return 0
	}
	bits := c.order.byteOrder().Uint32(c.buf[c.pos:])
	c.pos += 4
	return math.Float32frombits(bits)
}

// R8 reads an IEEE-754 double-precision float.
func (c *Cursor) R8() float64 {
	if !c.have(8) {
		return 0
	}
	bits := c.order.byteOrder().Uint64(c.buf[c.pos:])
	c.pos += 8
	return math.Float64frombits(bits)
}

// Cn reads a length-prefixed string: one count byte n, then n bytes.
// A count byte that is present but whose n bytes are not fully available is
// treated as an entirely missing field: the cursor is left at the count
// byte, not partway through it, so a subsequent read of the same position
// behaves identically ("no partial reads", spec.md §4.2).
func (c *Cursor) Cn() string {
	if !c.have(1) {
		return ""
	}
	n := int(c.buf[c.pos])
	if n == 0 {
		c.pos++
		return ""
	}
	if !c.have(1 + n) {
		return ""
	}
	s := string(c.buf[c.pos+1 : c.pos+1+n])
	c.pos += 1 + n
	return s
}

// Bn reads a length-prefixed byte blob, n <= 255.
func (c *Cursor) Bn() []byte {
	if !c.have(1) {
		return nil
	}
	n := int(c.buf[c.pos])
	if n == 0 {
		c.pos++
		return nil
	}
	if !c.have(1 + n) {
		return nil
	}
	out := make([]byte, n)
	copy(out, c.buf[c.pos+1:c.pos+1+n])
	c.pos += 1 + n
	return out
}

// Dn reads a length-prefixed bit array: a 2-byte bit count b, then
// ceil(b/8) bytes. It returns the raw byte payload and the bit count.
func (c *Cursor) Dn() (data []byte, bitCount int) {
	if !c.have(2) {
		return nil, 0
	}
	b := int(c.order.byteOrder().Uint16(c.buf[c.pos:]))
	nbytes := (b + 7) / 8
	if !c.have(2 + nbytes) {
		return nil, 0
	}
	out := make([]byte, nbytes)
	copy(out, c.buf[c.pos+2:c.pos+2+nbytes])
	c.pos += 2 + nbytes
	return out, b
}

// KxU1 reads k repetitions of U1.
func (c *Cursor) KxU1(k int) []uint8 {
	if k <= 0 || !c.have(k) {
		return nil
	}
	out := make([]uint8, k)
	for i := range out {
		out[i] = c.buf[c.pos+i]
	}
	c.pos += k
	return out
}

// KxU2 reads k repetitions of U2.
func (c *Cursor) KxU2(k int) []uint16 {
	if k <= 0 || !c.have(k*2) {
		return nil
	}
	out := make([]uint16, k)
	for i := range out {
		out[i] = c.order.byteOrder().Uint16(c.buf[c.pos+i*2:])
	}
	c.pos += k * 2
	return out
}

// KxR4 reads k repetitions of R4.
func (c *Cursor) KxR4(k int) []float32 {
	if k <= 0 || !c.have(k*4) {
		return nil
	}
	out := make([]float32, k)
	for i := range out {
		bits := c.order.byteOrder().Uint32(c.buf[c.pos+i*4:])
		out[i] = math.Float32frombits(bits)
	}
	c.pos += k * 4
	return out
}

// KxN1 reads k nibbles, two per byte, low nibble first. If k is odd the
// high nibble of the final byte is discarded.
func (c *Cursor) KxN1(k int) []uint8 {
	if k <= 0 {
		return nil
	}
	nbytes := (k + 1) / 2
	if !c.have(nbytes) {
		return nil
	}
	out := make([]uint8, k)
	for i := 0; i < k; i++ {
		b := c.buf[c.pos+i/2]
		if i%2 == 0 {
			out[i] = b & 0x0F
		} else {
			out[i] = (b >> 4) & 0x0F
		}
	}
	c.pos += nbytes
	return out
}

// KxCn reads k length-prefixed strings. Per spec.md §4.2, if a nested Cn
// read comes up short mid-array the slot is left empty and the cursor stays
// at that string's count byte, so every subsequent slot re-reads the same
// short count and is empty too — the array is still fully allocated at
// length k.
func (c *Cursor) KxCn(k int) []string {
	if k <= 0 {
		return nil
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = c.Cn()
	}
	return out
}

// GenericType is the one-byte type tag preceding a Vn element (GDR
// GEN_DATA / FLD_CNT entries). Values per spec.md §6.
type GenericType uint8

const (
	GenPad GenericType = 0
	GenU1  GenericType = 1
	GenU2  GenericType = 2
	GenU4  GenericType = 3
	GenI1  GenericType = 4
	GenI2  GenericType = 5
	GenI4  GenericType = 6
	GenR4  GenericType = 7
	GenR8  GenericType = 8
	GenCn  GenericType = 10
	GenBn  GenericType = 11
	GenDn  GenericType = 12
	GenN1  GenericType = 13
)

// GenericValue is one heterogeneous Vn element: a dynamic type tag, the
// number of payload bytes actually consumed (excluding the tag byte), and
// the decoded value. A GenCn element is the one exception: the reference
// decoder (stdf4_func.c:450) always reports ByteCount 0 for it, since a
// Cn's own length prefix already carries its size.
type GenericValue struct {
	Type      GenericType
	ByteCount int
	Data      any
}

// Vn reads one heterogeneous Vn element: a 1-byte type tag followed by the
// value encoded per that type. An unrecognized tag yields a
// GenericValue{Type: tag, ByteCount: 0, Data: nil}. A recognized tag with
// too few bytes left for its value yields ByteCount 0 and the zero value
// of that tag's Go type (0 for the numeric tags, "" for GenCn, nil for
// GenBn/GenDn/GenN1), without advancing past the tag-implied field.
func (c *Cursor) Vn() GenericValue {
	if !c.have(1) {
		return GenericValue{}
	}
	start := c.pos
	tag := GenericType(c.buf[c.pos])
	c.pos++

	switch tag {
	case GenPad:
		return GenericValue{Type: tag, ByteCount: 0, Data: nil}
	case GenU1:
		v := c.U1()
		return GenericValue{Type: tag, ByteCount: c.pos - start - 1, Data: v}
	case GenU2:
		v := c.U2()
		return GenericValue{Type: tag, ByteCount: c.pos - start - 1, Data: v}
	case GenU4:
		v := c.U4()
		return GenericValue{Type: tag, ByteCount: c.pos - start - 1, Data: v}
	case GenI1:
		v := c.I1()
		return GenericValue{Type: tag, ByteCount: c.pos - start - 1, Data: v}
	case GenI2:
		v := c.I2()
		return GenericValue{Type: tag, ByteCount: c.pos - start - 1, Data: v}
	case GenI4:
		v := c.I4()
		return GenericValue{Type: tag, ByteCount: c.pos - start - 1, Data: v}
	case GenR4:
		v := c.R4()
		return GenericValue{Type: tag, ByteCount: c.pos - start - 1, Data: v}
	case GenR8:
		v := c.R8()
		return GenericValue{Type: tag, ByteCount: c.pos - start - 1, Data: v}
	case GenCn:
		v := c.Cn()
		return GenericValue{Type: tag, ByteCount: 0, Data: v}
	case GenBn:
		v := c.Bn()
		return GenericValue{Type: tag, ByteCount: len(v), Data: v}
	case GenDn:
		data, _ := c.Dn()
		return GenericValue{Type: tag, ByteCount: len(data), Data: data}
	case GenN1:
		// The reference (stdf4_func.c:433-436) reads a full byte here, not
		// a packed nibble — a GDR's N1 element is never paired with a
		// neighboring nibble the way a record's own Nx fields sometimes
		// are.
		if !c.have(1) {
			return GenericValue{Type: tag, ByteCount: 0, Data: nil}
		}
		v := c.B1()
		return GenericValue{Type: tag, ByteCount: 1, Data: v}
	default:
		return GenericValue{Type: tag, ByteCount: 0, Data: nil}
	}
}
