package stdfcore

import (
	"context"
	"errors"
	"fmt"

	"github.com/stdf-go/stdfcore/internal/idmap"
	"github.com/stdf-go/stdfcore/internal/logging"
	"github.com/stdf-go/stdfcore/internal/mempool"
	"github.com/stdf-go/stdfcore/internal/queue"
	"github.com/stdf-go/stdfcore/internal/record"
	"github.com/stdf-go/stdfcore/internal/stream"
	"github.com/stdf-go/stdfcore/internal/testid"
	"github.com/stdf-go/stdfcore/internal/wire"
)

// RecordHandler is called once per decoded record, in stream order,
// including the leading FAR. Returning a non-nil error stops Run.
type RecordHandler func(record.Decoded) error

// sentinelTyp/sentinelSub mark an internal end-of-stream record the
// producer writes to unblock the consumer once the underlying stream is
// exhausted or has failed; 0xFF/0xFF is not assigned to any STDF v4
// record type.
const (
	sentinelTyp uint8 = 0xFF
	sentinelSub uint8 = 0xFF
)

var sentinelHeader = [record.HeaderLen]byte{0, 0, sentinelTyp, sentinelSub}

// oversizedTyp/oversizedSub mark a record whose header+body didn't fit the
// queue's slot size. Its actual payload travels out of band through
// Pipeline.oversized, borrowed from mempool.GlobalPool instead of the
// queue's fixed arena; 0xFE/0xFE is likewise unassigned in STDF v4.
const (
	oversizedTyp uint8 = 0xFE
	oversizedSub uint8 = 0xFE
)

var oversizedHeader = [record.HeaderLen]byte{0, 0, oversizedTyp, oversizedSub}

// oversizedItem carries a record decoded out of band, along with the
// pooled buffer backing it so Run can return it to mempool.GlobalPool.
type oversizedItem struct {
	decoded record.Decoded
	err     error
	buf     []byte
}

// Pipeline decodes a single STDF stream: a producer goroutine reads and
// frames records off the underlying stream.Reader into a bounded queue,
// while Run's caller goroutine dispatches and hands each one to a
// RecordHandler.
type Pipeline struct {
	opts      Options
	r         *stream.Reader
	order     wire.Order
	far       record.Decoded
	q         *queue.Queue
	oversized chan oversizedItem

	// tests assigns a stable id to each distinct (TEST_NUM, TEST_TXT) pair
	// seen in PTR/MPR/FTR records, built up as Run decodes the stream.
	tests *testid.Map
	// pins resolves a PMR's PMR_INDX to its CHAN_TYP, populated as Run
	// decodes PMR records; MPR/FTR records carry only pin indexes, so a
	// caller correlating test results to physical pins looks
	// the index up here once every PMR has been seen.
	pins *idmap.Map

	closed bool
}

// Open opens path and reads its leading FAR record to establish the
// stream's byte order. The returned Pipeline has not yet read past FAR;
// call Run to decode the rest of the stream.
func Open(path string, opts Options) (*Pipeline, error) {
	opts = opts.withDefaults()

	r, err := stream.Open(path)
	if err != nil {
		return nil, err
	}

	var hdrBuf [record.HeaderLen]byte
	if err := r.ReadFull(hdrBuf[:]); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("stdfcore: reading FAR header: %w", err)
	}
	header := record.ParseHeader(hdrBuf, wire.Order{})
	if header.Typ != record.TypInfo || header.Sub != record.SubFAR {
		_ = r.Close()
		return nil, ErrNotFAR
	}

	var farBuf [2]byte
	if err := r.ReadFull(farBuf[:]); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("stdfcore: reading FAR body: %w", err)
	}
	far := record.DecodeFAR(wire.NewCursor(farBuf[:], wire.Order{}))

	if opts.StrictCPUType && far.CPUType != wire.CPUSun && far.CPUType != wire.CPUDEC && far.CPUType != wire.CPUx86 {
		_ = r.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCPUType, far.CPUType)
	}

	opts.Logger.Infof(logging.NSPipeline+"opened %s: CPU_TYPE=%d STDF_VER=%d", path, far.CPUType, far.StdfVer)

	return &Pipeline{
		opts:      opts,
		r:         r,
		order:     wire.OrderFromCPUType(far.CPUType),
		far:       record.Decoded{Header: header, Body: far},
		q:         queue.New(opts.SlotSize, opts.QueueCapacity),
		oversized: make(chan oversizedItem, 1),
		tests:     testid.New(),
		pins:      idmap.New(),
	}, nil
}

// TestID returns the id previously assigned to (testNum, testTxt), the
// values a PTR/MPR/FTR record carries in TestNum/TestTxt, and whether that
// pair has been seen yet. Populated incrementally as Run decodes the
// stream, so a lookup for a test only succeeds once Run has handed that
// test's first record to the caller's handler.
func (p *Pipeline) TestID(testNum uint32, testTxt string) (int, bool) {
	return p.tests.Lookup(testNum, testTxt)
}

// TestCount returns the number of distinct (TEST_NUM, TEST_TXT) pairs Run
// has observed so far.
func (p *Pipeline) TestCount() int { return p.tests.Len() }

// PinChannelType returns the CHAN_TYP a PMR record assigned to pmrIndx, and
// whether that PMR has been seen yet.
func (p *Pipeline) PinChannelType(pmrIndx uint16) (uint16, bool) {
	v, ok := p.pins.Get(uint32(pmrIndx))
	return uint16(v), ok
}

// Close releases the underlying stream. It does not stop an in-flight Run;
// callers should cancel Run's context first.
func (p *Pipeline) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.r.Close()
}

// Run decodes the stream from FAR through end of file (or the first
// decode error), calling handle once per record in order. It returns nil
// when the stream is exhausted, ctx.Err() if ctx is cancelled, or a
// wrapped error from handle or the underlying stream otherwise.
func (p *Pipeline) Run(ctx context.Context, handle RecordHandler) error {
	if p.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := handle(p.far); err != nil {
		return fmt.Errorf("%w: %w", ErrHandlerStopped, err)
	}

	errCh := make(chan error, 1)
	go p.produce(ctx, errCh)

	for {
		slot, buf, err := p.q.Read(ctx)
		if err != nil {
			return err
		}

		header := record.ParseHeader([record.HeaderLen]byte(buf[:record.HeaderLen]), p.order)

		if header.Typ == sentinelTyp && header.Sub == sentinelSub {
			p.q.Free(slot)
			break
		}

		if header.Typ == oversizedTyp && header.Sub == oversizedSub {
			p.q.Free(slot)
			item := <-p.oversized
			mempool.GlobalPool.Put(item.buf)
			if item.err != nil {
				return item.err
			}
			p.index(item.decoded)
			if err := handle(item.decoded); err != nil {
				return fmt.Errorf("%w: %w", ErrHandlerStopped, err)
			}
			continue
		}

		total := record.HeaderLen + int(header.RecLen)
		decoded, err := p.decode(header, buf[record.HeaderLen:total])
		p.q.Free(slot)
		if err != nil {
			return err
		}

		p.opts.Logger.Debugf(logging.NSPipeline+"dispatched typ=%d sub=%d", header.Typ, header.Sub)
		p.index(decoded)
		if err := handle(decoded); err != nil {
			return fmt.Errorf("%w: %w", ErrHandlerStopped, err)
		}
	}

	return <-errCh
}

// decode dispatches a record body, honoring Options.Omit.
func (p *Pipeline) decode(header record.Header, body []byte) (record.Decoded, error) {
	if p.opts.Omit == OmitGenericData && (header.Tag() == record.TagGDR || header.Tag() == record.TagDTR) {
		return record.Decoded{Header: header}, nil
	}
	cur := wire.NewCursor(body, p.order)
	decoded, err := record.Dispatch(header, cur)
	if err != nil {
		if errors.Is(err, record.ErrUnknownRecord) {
			p.opts.Logger.Warnf(logging.NSDecode+"%v", err)
			return decoded, nil
		}
		return decoded, err
	}
	return decoded, nil
}

// index feeds a decoded record into the test-identity and pin-index maps,
// if it's one of the record types that populates them.
func (p *Pipeline) index(decoded record.Decoded) {
	switch body := decoded.Body.(type) {
	case record.PTR:
		p.tests.GetOrInsert(body.TestNum, body.TestTxt)
	case record.MPR:
		p.tests.GetOrInsert(body.TestNum, body.TestTxt)
	case record.FTR:
		p.tests.GetOrInsert(body.TestNum, body.TestTxt)
	case record.PMR:
		p.pins.Put(uint32(body.PmrIndx), uint32(body.ChanTyp))
	}
}

// produce reads and frames records off the stream into the queue until
// EOF or failure, then writes a sentinel record so Run's loop unblocks.
func (p *Pipeline) produce(ctx context.Context, errCh chan<- error) {
	errCh <- p.readLoop(ctx)

	if slot, buf, err := p.q.AllocBlocking(ctx); err == nil {
		copy(buf[:record.HeaderLen], sentinelHeader[:])
		p.q.Write(slot)
	}
}

func (p *Pipeline) readLoop(ctx context.Context) error {
	for {
		var hdrBuf [record.HeaderLen]byte
		if err := p.r.ReadFull(hdrBuf[:]); err != nil {
			if errors.Is(err, stream.ErrEOF) {
				return nil
			}
			return fmt.Errorf("stdfcore: %w", err)
		}

		header := record.ParseHeader(hdrBuf, p.order)
		total := record.HeaderLen + int(header.RecLen)

		if total > p.opts.SlotSize {
			if err := p.produceOversized(ctx, hdrBuf, header, total); err != nil {
				return err
			}
			continue
		}

		slot, buf, err := p.q.AllocBlocking(ctx)
		if err != nil {
			return err
		}
		copy(buf[:record.HeaderLen], hdrBuf[:])
		if header.RecLen > 0 {
			if err := p.r.ReadFull(buf[record.HeaderLen:total]); err != nil {
				p.q.Free(slot)
				return fmt.Errorf("stdfcore: %w", err)
			}
		}
		p.q.Write(slot)
	}
}

// produceOversized handles a record whose header+body doesn't fit a queue
// slot: it borrows a buffer from mempool.GlobalPool, reads and decodes the
// record into it, hands the result to Run out of band through
// p.oversized, and writes an indirection marker into the queue so Run's
// loop knows to receive from that channel next.
func (p *Pipeline) produceOversized(ctx context.Context, hdrBuf [record.HeaderLen]byte, header record.Header, total int) error {
	buf := mempool.GlobalPool.Get(total)
	buf = buf[:total]
	copy(buf[:record.HeaderLen], hdrBuf[:])
	if header.RecLen > 0 {
		if err := p.r.ReadFull(buf[record.HeaderLen:total]); err != nil {
			mempool.GlobalPool.Put(buf)
			return fmt.Errorf("stdfcore: %w", err)
		}
	}

	decoded, err := p.decode(header, buf[record.HeaderLen:total])
	item := oversizedItem{decoded: decoded, err: err, buf: buf}

	select {
	case p.oversized <- item:
	case <-ctx.Done():
		mempool.GlobalPool.Put(buf)
		return ctx.Err()
	}

	slot, qbuf, err := p.q.AllocBlocking(ctx)
	if err != nil {
		return err
	}
	copy(qbuf[:record.HeaderLen], oversizedHeader[:])
	p.q.Write(slot)
	return nil
}
