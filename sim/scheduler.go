package sim

// Timer is an event on the simulated timeline
type Timer struct {
	WakeTime uint64 // Virtual time in µs
	Handler  func(*Timer) uint8
	Next     *Timer
}

// Handler results
const (
	SF_DONE       = 0
	SF_RESCHEDULE = 1
)

// timerList keeps timers sorted by WakeTime
type timerList struct {
	head *Timer
}

// insert adds a timer in sorted order. Timers with equal WakeTime fire in
// insertion order.
func (l *timerList) insert(t *Timer) {
	if l.head == nil || t.WakeTime < l.head.WakeTime {
		t.Next = l.head
		l.head = t
		return
	}

	current := l.head
	for current.Next != nil && current.Next.WakeTime <= t.WakeTime {
		current = current.Next
	}

	t.Next = current.Next
	current.Next = t
}

// remove unlinks t if it is scheduled
func (l *timerList) remove(t *Timer) {
	if l.head == t {
		l.head = t.Next
		t.Next = nil
		return
	}
	for current := l.head; current != nil; current = current.Next {
		if current.Next == t {
			current.Next = t.Next
			t.Next = nil
			return
		}
	}
}

// dispatch runs every timer due at or before now. A handler returning
// SF_RESCHEDULE must have moved its WakeTime forward.
func (l *timerList) dispatch(now uint64) {
	for l.head != nil && l.head.WakeTime <= now {
		timer := l.head
		l.head = timer.Next
		timer.Next = nil

		if timer.Handler(timer) == SF_RESCHEDULE {
			l.insert(timer)
		}
	}
}
