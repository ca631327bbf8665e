// Package pool provides a fixed-capacity slab with O(1) acquire and release.
//
// Slots are partitioned between two singly linked chains threaded through the
// same index space: free (reusable) and busy (in use). The slab is allocated
// once and never grows.
package pool

import "fmt"

// None marks the end of a chain, or "no predecessor" when releasing the busy head.
const None = -1

// Pool is a fixed-size slab of T with intrusive free/busy index chains.
type Pool[T any] struct {
	slots []T
	next  []int32

	free int32
	busy int32

	busyLen int
}

// New creates a pool with all capacity slots on the free chain, in index order.
func New[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool[T]{
		slots: make([]T, capacity),
		next:  make([]int32, capacity),
		free:  None,
		busy:  None,
	}
	for i := range p.next {
		p.next[i] = int32(i + 1)
	}
	if capacity > 0 {
		p.next[capacity-1] = None
		p.free = 0
	}
	return p
}

// Acquire moves the head of the free chain to the front of the busy chain.
// It returns false when the pool is exhausted; that is a normal outcome.
// The slot payload is not reset.
func (p *Pool[T]) Acquire() (int, bool) {
	idx := p.free
	if idx == None {
		return None, false
	}
	p.free = p.next[idx]
	p.next[idx] = p.busy
	p.busy = idx
	p.busyLen++
	return int(idx), true
}

// Release unlinks idx from the busy chain and prepends it to the free chain.
// prev must be the slot linking to idx in the busy chain, or None when idx is
// the busy head. It returns the slot that followed idx, so a forward scan can
// continue from there without moving its trailing predecessor.
func (p *Pool[T]) Release(idx, prev int) int {
	i := int32(idx)
	if prev == None {
		if p.busy != i {
			panic(fmt.Sprintf("pool: release of slot %d which is not the busy head", idx))
		}
		p.busy = p.next[i]
	} else {
		if p.next[prev] != i {
			panic(fmt.Sprintf("pool: slot %d does not follow %d in the busy chain", idx, prev))
		}
		p.next[prev] = p.next[i]
	}
	succ := p.next[i]
	p.next[i] = p.free
	p.free = i
	p.busyLen--
	return int(succ)
}

// Get returns a pointer to the payload of slot idx.
func (p *Pool[T]) Get(idx int) *T {
	return &p.slots[idx]
}

// Busy returns the head of the busy chain, or None.
func (p *Pool[T]) Busy() int {
	return int(p.busy)
}

// Next returns the chain successor of idx, or None.
func (p *Pool[T]) Next(idx int) int {
	return int(p.next[idx])
}

// IsBusy reports whether any slot is in use.
func (p *Pool[T]) IsBusy() bool {
	return p.busy != None
}

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// BusyLen returns the number of slots in use.
func (p *Pool[T]) BusyLen() int {
	return p.busyLen
}

// FreeLen returns the number of reusable slots.
func (p *Pool[T]) FreeLen() int {
	return len(p.slots) - p.busyLen
}

// Validate walks both chains and checks that every slot is on exactly one of
// them and that the counters agree. A non-nil result means a splice defect.
func (p *Pool[T]) Validate() error {
	seen := make([]uint8, len(p.slots))
	walk := func(head int32, mark uint8, name string) (int, error) {
		n := 0
		for i := head; i != None; i = p.next[i] {
			if i < 0 || int(i) >= len(p.slots) {
				return n, fmt.Errorf("%s chain: index %d out of range", name, i)
			}
			if seen[i] != 0 {
				return n, fmt.Errorf("%s chain: slot %d already linked", name, i)
			}
			seen[i] = mark
			n++
		}
		return n, nil
	}

	nBusy, err := walk(p.busy, 1, "busy")
	if err != nil {
		return err
	}
	nFree, err := walk(p.free, 2, "free")
	if err != nil {
		return err
	}
	if nBusy != p.busyLen {
		return fmt.Errorf("busy chain has %d slots, counter says %d", nBusy, p.busyLen)
	}
	if nBusy+nFree != len(p.slots) {
		return fmt.Errorf("chains hold %d slots, capacity is %d", nBusy+nFree, len(p.slots))
	}
	return nil
}
