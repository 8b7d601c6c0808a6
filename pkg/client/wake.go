package client

// Waker interrupts the application's poll loop.
type Waker interface {
	Wake()
}

// WakerFunc adapts a function to Waker.
type WakerFunc func()

// Wake calls f.
func (f WakerFunc) Wake() { f() }

// WakeSignal is a coalescing wake channel. Wakes that arrive while one is
// already pending are merged.
type WakeSignal struct {
	ch chan struct{}
}

// NewWakeSignal creates a WakeSignal.
func NewWakeSignal() *WakeSignal {
	return &WakeSignal{ch: make(chan struct{}, 1)}
}

// Wake signals the channel without blocking.
func (w *WakeSignal) Wake() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// C returns the channel to wait on.
func (w *WakeSignal) C() <-chan struct{} {
	return w.ch
}

var (
	_ Waker = (*WakeSignal)(nil)
	_ Waker = WakerFunc(nil)
)
