package stdfcore

import "github.com/stdf-go/stdfcore/internal/logging"

// Logger is an alias for the logging.Logger interface, letting callers pass
// their own implementation without importing the internal package.
type Logger = logging.Logger

// Omit controls which record payloads a Pipeline decodes in full versus
// skips, for a caller that only needs structural records (FAR/MIR/MRR/
// PIR/PRR) and wants to avoid paying for GDR/DTR generic-field decoding on
// a large file.
type Omit int

const (
	// OmitNone decodes every record body in full. Default.
	OmitNone Omit = iota
	// OmitGenericData skips GDR and DTR payload decoding; their Decoded
	// entries carry a nil Body.
	OmitGenericData
)

// Options configures a Pipeline.
type Options struct {
	// QueueCapacity is the bounded SPSC queue's depth, rounded up to a
	// power of two. Default: 64.
	QueueCapacity int

	// SlotSize is the byte size of each queue slot, rounded up to an
	// 8-byte boundary. A record whose header plus body (4 + REC_LEN
	// bytes) exceeds SlotSize bypasses the queue's arena: it is read into
	// a buffer from mempool.GlobalPool and handed to Run out of band.
	// Default: 4096.
	SlotSize int

	// Logger receives diagnostic output. If nil, a WARN-level logger
	// writing to stderr is used.
	Logger Logger

	// Omit controls which record bodies are decoded in full.
	Omit Omit

	// StrictCPUType causes Open to return ErrUnsupportedCPUType for a
	// FAR.CPU_TYPE this decoder does not recognize, instead of silently
	// falling back to big-endian.
	StrictCPUType bool
}

// DefaultOptions returns the default Options.
func DefaultOptions() Options {
	return Options{
		QueueCapacity: 64,
		SlotSize:      4096,
		Omit:          OmitNone,
	}
}

func (o Options) withDefaults() Options {
	if o.QueueCapacity <= 0 {
		o.QueueCapacity = 64
	}
	if o.SlotSize <= 0 {
		o.SlotSize = 4096
	}
	o.Logger = logging.OrDefault(o.Logger)
	return o
}
