package session

import "github.com/lexitrain/backend/internal/domain/drill"

// deque is a ring-buffer queue of drill items. Requeueing a retried item
// is a popFront followed by a pushBack, no middle-of-slice surgery.
type deque struct {
	buf  []*drill.Item
	head int
	size int
}

func newDeque(items []*drill.Item) *deque {
	buf := make([]*drill.Item, len(items))
	copy(buf, items)
	return &deque{buf: buf, size: len(items)}
}

func (d *deque) len() int { return d.size }

func (d *deque) front() *drill.Item {
	if d.size == 0 {
		return nil
	}
	return d.buf[d.head]
}

func (d *deque) popFront() *drill.Item {
	if d.size == 0 {
		return nil
	}
	it := d.buf[d.head]
	d.buf[d.head] = nil
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return it
}

func (d *deque) pushBack(it *drill.Item) {
	if d.size == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.size)%len(d.buf)] = it
	d.size++
}

func (d *deque) grow() {
	buf := make([]*drill.Item, 2*len(d.buf)+1)
	for i := 0; i < d.size; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}
