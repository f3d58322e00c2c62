package core

// DefaultDestroyDelay is the pause between queued destroy effects, in seconds.
const DefaultDestroyDelay = 0.1

type pendingDestroy struct {
	obj    Object
	reason DestroyReason
}

// DestroyQueue plays queued destroy effects one at a time with a fixed delay.
// Every pushed object receives exactly one Destroy call: its queued reason
// when popped by Tick, or DestroyDispose when flushed.
type DestroyQueue struct {
	items  []pendingDestroy
	head   int
	delay  float64
	timer  float64
	active bool
}

// NewDestroyQueue creates an idle queue with the given delay in seconds.
func NewDestroyQueue(delay float64) *DestroyQueue {
	if delay < 0 {
		delay = 0
	}
	return &DestroyQueue{delay: delay}
}

// Push appends an object. It does not start the timer.
func (q *DestroyQueue) Push(obj Object, reason DestroyReason) {
	if obj == nil {
		return
	}
	q.items = append(q.items, pendingDestroy{obj: obj, reason: reason})
}

// Restart arms the timer for the first pending item.
func (q *DestroyQueue) Restart() {
	if q.Len() == 0 {
		q.active = false
		return
	}
	q.timer = q.delay
	q.active = true
}

// Tick advances the timer by dt and destroys one item per elapsed delay.
// Returns how many items were destroyed.
func (q *DestroyQueue) Tick(dt float64) int {
	if !q.active {
		return 0
	}
	q.timer -= dt
	n := 0
	for q.active && q.timer <= 0 {
		it := q.pop()
		it.obj.Destroy(it.reason)
		n++
		if q.Len() == 0 {
			q.active = false
			q.compact()
			break
		}
		q.timer += q.delay
		if q.delay <= 0 {
			q.timer = 0
		}
	}
	return n
}

// Flush destroys every pending item with DestroyDispose and stops the timer.
func (q *DestroyQueue) Flush() int {
	n := 0
	for q.Len() > 0 {
		it := q.pop()
		it.obj.Destroy(DestroyDispose)
		n++
	}
	q.active = false
	q.compact()
	return n
}

// Len returns the number of pending items.
func (q *DestroyQueue) Len() int {
	return len(q.items) - q.head
}

// Active reports whether the timer is running.
func (q *DestroyQueue) Active() bool {
	return q.active
}

func (q *DestroyQueue) pop() pendingDestroy {
	it := q.items[q.head]
	q.items[q.head] = pendingDestroy{}
	q.head++
	return it
}

func (q *DestroyQueue) compact() {
	q.items = q.items[:0]
	q.head = 0
}
