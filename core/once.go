package core

import "sync/atomic"

// OnceFlag gates a single emission for the lifetime of the process. The
// zero value has not fired.
type OnceFlag struct {
	fired atomic.Bool
}

// TryFire flips the flag from unset to set and reports whether this call
// did it. Exactly one caller ever sees true, whichever goroutine it runs
// on.
func (f *OnceFlag) TryFire() bool {
	// Go atomics are sequentially consistent; losers do a plain failed CAS.
	return f.fired.CompareAndSwap(false, true)
}

// Fired reports whether TryFire has already succeeded.
func (f *OnceFlag) Fired() bool {
	return f.fired.Load()
}
