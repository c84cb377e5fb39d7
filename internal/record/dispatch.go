package record

import (
	"fmt"

	"github.com/stdf-go/stdfcore/internal/wire"
)

// Decoded wraps a decoded record body together with the header that
// introduced it, so a consumer can branch on Tag without a type switch over
// 25 concrete types unless it wants the payload too.
type Decoded struct {
	Header Header
	Body   any
}

// Dispatch decodes a record body according to h.Tag(), using c to read the
// body (c must be positioned at the start of the body, sized to exactly
// h.RecLen bytes). Unknown (typ,sub) pairs are returned with a nil Body and
// ErrUnknownRecord, letting a caller choose to skip the record rather than
// abort the stream.
func Dispatch(h Header, c *wire.Cursor) (Decoded, error) {
	switch h.Tag() {
	case TagFAR:
		return Decoded{h, DecodeFAR(c)}, nil
	case TagATR:
		return Decoded{h, DecodeATR(c)}, nil
	case TagMIR:
		return Decoded{h, DecodeMIR(c)}, nil
	case TagMRR:
		return Decoded{h, DecodeMRR(c)}, nil
	case TagPCR:
		return Decoded{h, DecodePCR(c)}, nil
	case TagHBR:
		return Decoded{h, DecodeHBR(c)}, nil
	case TagSBR:
		return Decoded{h, DecodeSBR(c)}, nil
	case TagPMR:
		return Decoded{h, DecodePMR(c)}, nil
	case TagPGR:
		return Decoded{h, DecodePGR(c)}, nil
	case TagPLR:
		return Decoded{h, DecodePLR(c)}, nil
	case TagRDR:
		return Decoded{h, DecodeRDR(c)}, nil
	case TagSDR:
		return Decoded{h, DecodeSDR(c)}, nil
	case TagWIR:
		return Decoded{h, DecodeWIR(c)}, nil
	case TagWRR:
		return Decoded{h, DecodeWRR(c)}, nil
	case TagWCR:
		return Decoded{h, DecodeWCR(c)}, nil
	case TagPIR:
		return Decoded{h, DecodePIR(c)}, nil
	case TagPRR:
		return Decoded{h, DecodePRR(c)}, nil
	case TagTSR:
		return Decoded{h, DecodeTSR(c)}, nil
	case TagPTR:
		return Decoded{h, DecodePTR(c)}, nil
	case TagMPR:
		return Decoded{h, DecodeMPR(c)}, nil
	case TagFTR:
		return Decoded{h, DecodeFTR(c)}, nil
	case TagBPS:
		return Decoded{h, DecodeBPS(c)}, nil
	case TagEPS:
		return Decoded{h, DecodeEPS(c)}, nil
	case TagGDR:
		return Decoded{h, DecodeGDR(c)}, nil
	case TagDTR:
		return Decoded{h, DecodeDTR(c)}, nil
	default:
		return Decoded{Header: h}, fmt.Errorf("%w: typ=%d sub=%d", ErrUnknownRecord, h.Typ, h.Sub)
	}
}
