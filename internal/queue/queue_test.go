package queue

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestAllocFreeRoundTrip(t *testing.T) {
	q := New(16, 4)
	slot, buf, ok := q.Alloc()
	if !ok {
		t.Fatal("want slot available")
	}
	copy(buf, "hello")
	q.Free(slot)
	if q.freeBlocks.Load() != int32(q.Cap()) {
		t.Fatalf("want all slots free again, got %d", q.freeBlocks.Load())
	}
}

func TestAllocExhaustion(t *testing.T) {
	q := New(8, 2) // rounds to capacity 2
	_, _, ok1 := q.Alloc()
	_, _, ok2 := q.Alloc()
	_, _, ok3 := q.Alloc()
	if !ok1 || !ok2 {
		t.Fatal("want first two allocs to succeed")
	}
	if ok3 {
		t.Fatal("want third alloc to fail, queue exhausted")
	}
}

func TestCapacityRoundsToPow2(t *testing.T) {
	q := New(8, 5)
	if q.Cap() != 8 {
		t.Fatalf("want capacity 8, got %d", q.Cap())
	}
}

func TestWriteTryReadRoundTrip(t *testing.T) {
	q := New(16, 4)
	slot, buf, _ := q.Alloc()
	copy(buf, "payload")
	q.Write(slot)

	gotSlot, gotBuf, ok := q.TryRead()
	if !ok {
		t.Fatal("want entry available")
	}
	if gotSlot != slot || string(gotBuf[:7]) != "payload" {
		t.Fatalf("mismatch: slot=%d buf=%q", gotSlot, gotBuf[:7])
	}
}

func TestTryReadOnEmptyQueue(t *testing.T) {
	q := New(16, 4)
	if _, _, ok := q.TryRead(); ok {
		t.Fatal("want empty queue to report ok=false")
	}
}

func TestReadBlocksUntilWrite(t *testing.T) {
	q := New(16, 2)
	done := make(chan struct{})
	var gotSlot int
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s, _, err := q.Read(ctx)
		if err != nil {
			t.Error(err)
		}
		gotSlot = s
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	slot, _, _ := q.Alloc()
	q.Write(slot)

	select {
	case <-done:
		if gotSlot != slot {
			t.Fatalf("want slot %d, got %d", slot, gotSlot)
		}
	case <-time.After(time.Second):
		t.Fatal("Read never returned after Write")
	}
}

func TestReadRespectsContextCancellation(t *testing.T) {
	q := New(16, 2)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if _, _, err := q.Read(ctx); err == nil {
		t.Fatal("want context deadline error on an empty, never-written queue")
	}
}

func TestAllocBlockingWaitsForFree(t *testing.T) {
	q := New(16, 1)
	slot, _, _ := q.Alloc()

	done := make(chan struct{})
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if _, _, err := q.AllocBlocking(ctx); err != nil {
			t.Error(err)
		}
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	q.Free(slot)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("AllocBlocking never returned after Free")
	}
}

// TestProducerConsumerStress exercises the full alloc -> write -> read ->
// free cycle across two goroutines for a sustained run, the scenario
// message_queue.c's own test program drives: a small fixed depth fed many
// more messages than it can hold at once.
func TestProducerConsumerStress(t *testing.T) {
	const depth = 16
	const count = 10000
	q := New(8, depth)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		ctx := context.Background()
		for i := 0; i < count; i++ {
			slot, buf, err := q.AllocBlocking(ctx)
			if err != nil {
				t.Error(err)
				return
			}
			buf[0] = byte(i)
			buf[1] = byte(i >> 8)
			q.Write(slot)
		}
	}()

	sum := 0
	go func() {
		defer wg.Done()
		ctx := context.Background()
		for i := 0; i < count; i++ {
			slot, buf, err := q.Read(ctx)
			if err != nil {
				t.Error(err)
				return
			}
			got := int(buf[0]) | int(buf[1])<<8
			sum += got
			q.Free(slot)
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("producer/consumer pair stalled")
	}

	want := count * (count - 1) / 2
	if sum != want {
		t.Fatalf("want checksum %d, got %d", want, sum)
	}
}
