// Package queue implements the bounded SPSC message queue, grounded on
// deps/cystdf/tsqueue_src/message_queue.{h,c}: a fixed-depth arena of
// equal-size slots, handed out through a freelist ring and returned through
// a queue ring, each ring driven by atomic fetch-add counters rather than a
// lock. The only blocking primitive is a semaphore, and only a blocked
// waiter ever touches it — the common case is lock-free.
//
// The reference implementation spins with usleep(10) on a not-yet-published
// slot; Go's scheduler makes a short time.Sleep the equivalent move, since
// unlike the C version this queue has no OS semaphore tied to the spin
// itself, only to the blocked-waiter path.
package queue

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

const wordSize = 8

// padSize rounds size up to an 8-byte boundary, mirroring message_queue.c's
// pad_size (sizeof(union padding) on a 64-bit target).
func padSize(size int) int {
	if r := size % wordSize; r != 0 {
		return size + (wordSize - r)
	}
	return size
}

// roundToPow2 mirrors message_queue.c's round_to_pow2.
func roundToPow2(x uint32) uint32 {
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x++
	return x
}

const spinWait = 10 * time.Microsecond

// empty marks a freelist/queueData ring slot as not yet published, the
// role a NULL pointer plays in the reference implementation.
const empty = -1

// Queue is a bounded, fixed-depth, single-producer/single-consumer message
// queue. Slots are handed out by Alloc and returned by Free; once a caller
// has filled a slot's bytes, Write hands it to the consumer side, which
// retrieves it with TryRead or Read.
type Queue struct {
	slotSize int
	capacity uint32 // power of two
	mask     uint32
	arena    []byte

	freelist   []atomic.Int32
	allocPos   atomic.Uint32
	freePos    atomic.Uint32
	freeBlocks atomic.Int32
	allocWait  atomic.Int32
	allocSem   *semaphore.Weighted

	queueData []atomic.Int32
	entries   atomic.Int32
	readPos   atomic.Uint32
	writePos  atomic.Uint32
	queueWait atomic.Int32
	queueSem  *semaphore.Weighted
}

// New returns a Queue with depth slots (rounded up to a power of two) of
// slotSize bytes each (rounded up to an 8-byte boundary).
func New(slotSize, depth int) *Queue {
	capacity := roundToPow2(uint32(depth))
	size := padSize(slotSize)
	q := &Queue{
		slotSize: size,
		capacity: capacity,
		mask:     capacity - 1,
		arena:    make([]byte, size*int(capacity)),
		freelist: make([]atomic.Int32, capacity),
		queueData: make([]atomic.Int32, capacity),
		allocSem: semaphore.NewWeighted(1),
		queueSem: semaphore.NewWeighted(1),
	}
	for i := range q.freelist {
		q.freelist[i].Store(int32(i))
	}
	for i := range q.queueData {
		q.queueData[i].Store(empty)
	}
	q.freeBlocks.Store(int32(capacity))
	// Hold each semaphore's single permit from the start, so it counts from
	// zero like a POSIX semaphore initialized to 0: a waiter's Acquire
	// blocks until the peer's Release.
	q.allocSem.TryAcquire(1)
	q.queueSem.TryAcquire(1)
	return q
}

// Cap returns the queue's depth (the rounded-up-to-power-of-2 capacity).
func (q *Queue) Cap() int { return int(q.capacity) }

// slot returns the byte range backing arena slot index i.
func (q *Queue) slot(i int32) []byte {
	off := int(i) * q.slotSize
	return q.arena[off : off+q.slotSize]
}

// Alloc reserves a free slot without blocking. ok is false if the queue
// has no free slots right now.
func (q *Queue) Alloc() (slot int, buf []byte, ok bool) {
	if q.freeBlocks.Add(-1) >= 0 {
		pos := (q.allocPos.Add(1) - 1) & q.mask
		for {
			v := q.freelist[pos].Load()
			if v != empty {
				q.freelist[pos].Store(empty)
				return int(v), q.slot(v), true
			}
			time.Sleep(spinWait)
		}
	}
	q.freeBlocks.Add(1)
	return 0, nil, false
}

// AllocBlocking reserves a free slot, blocking until one is available or
// ctx is done.
func (q *Queue) AllocBlocking(ctx context.Context) (slot int, buf []byte, err error) {
	if s, b, ok := q.Alloc(); ok {
		return s, b, nil
	}
	for {
		q.allocWait.Add(1)
		if s, b, ok := q.Alloc(); ok {
			q.allocWait.Add(-1)
			return s, b, nil
		}
		if err := q.allocSem.Acquire(ctx, 1); err != nil {
			return 0, nil, err
		}
		if s, b, ok := q.Alloc(); ok {
			return s, b, nil
		}
	}
}

// Free returns slot to the freelist, waking a blocked allocator if one is
// waiting.
func (q *Queue) Free(slot int) {
	pos := (q.freePos.Add(1) - 1) & q.mask
	for q.freelist[pos].Load() != empty {
		time.Sleep(spinWait)
	}
	q.freelist[pos].Store(int32(slot))
	q.freeBlocks.Add(1)
	if q.allocWait.Load() > 0 {
		q.allocWait.Add(-1)
		q.allocSem.Release(1)
	}
}

// Write enqueues slot for the consumer, waking a blocked reader if one is
// waiting.
func (q *Queue) Write(slot int) {
	pos := (q.writePos.Add(1) - 1) & q.mask
	for q.queueData[pos].Load() != empty {
		time.Sleep(spinWait)
	}
	q.queueData[pos].Store(int32(slot))
	q.entries.Add(1)
	if q.queueWait.Load() > 0 {
		q.queueWait.Add(-1)
		q.queueSem.Release(1)
	}
}

// TryRead dequeues a slot without blocking. ok is false if the queue is
// currently empty.
func (q *Queue) TryRead() (slot int, buf []byte, ok bool) {
	if q.entries.Add(-1) >= 0 {
		pos := (q.readPos.Add(1) - 1) & q.mask
		for {
			v := q.queueData[pos].Load()
			if v != empty {
				q.queueData[pos].Store(empty)
				return int(v), q.slot(v), true
			}
			time.Sleep(spinWait)
		}
	}
	q.entries.Add(1)
	return 0, nil, false
}

// Read dequeues a slot, blocking until one is available or ctx is done.
func (q *Queue) Read(ctx context.Context) (slot int, buf []byte, err error) {
	if s, b, ok := q.TryRead(); ok {
		return s, b, nil
	}
	for {
		q.queueWait.Add(1)
		if s, b, ok := q.TryRead(); ok {
			q.queueWait.Add(-1)
			return s, b, nil
		}
		if err := q.queueSem.Acquire(ctx, 1); err != nil {
			return 0, nil, err
		}
		if s, b, ok := q.TryRead(); ok {
			return s, b, nil
		}
	}
}
