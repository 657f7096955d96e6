package input

type inputLock struct {
	start    float64
	duration float32
}

func (l inputLock) expired(now float64) bool {
	return l.duration > 0 && now-l.start >= float64(l.duration)
}

// AddInputLock disables input until the lock expires. A duration of zero or less keeps the lock
// alive until KillLock is called. Every held action is released; the drops are dispatched on the
// next UpdateInputs.
func (d *Dispatcher) AddInputLock(id string, duration float32) {
	d.locks.Set(id, inputLock{start: d.now(), duration: duration})
	for key := range d.held {
		d.held[key] = d.held[key][:0]
	}
}

// KillLock removes the lock with the given id, returning false if no such lock existed.
func (d *Dispatcher) KillLock(id string) bool {
	return d.locks.Delete(id)
}

// IsDisabled returns true while at least one unexpired input lock exists.
func (d *Dispatcher) IsDisabled() bool {
	now := d.now()
	for el := d.locks.Front(); el != nil; el = el.Next() {
		if !el.Value.expired(now) {
			return true
		}
	}
	return false
}

// Locks returns the ids of the input locks currently registered, in the order they were added.
func (d *Dispatcher) Locks() []string {
	return d.locks.Keys()
}

func (d *Dispatcher) expireLocks() {
	now := d.now()
	for el := d.locks.Front(); el != nil; {
		next := el.Next()
		if el.Value.expired(now) {
			d.locks.Delete(el.Key)
		}
		el = next
	}
}

func (d *Dispatcher) now() float64 {
	if d.clock == nil {
		return 0
	}
	return d.clock.Now()
}
