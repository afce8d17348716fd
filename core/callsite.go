package core

import (
	"runtime"
	"sync"
)

// CallSite returns a token identifying the source location skip frames
// above its caller: CallSite(0) identifies the line that called
// CallSite, CallSite(1) the line that called that function, and so on.
// Distinct call expressions yield distinct tokens; repeated executions of
// the same call expression, for example in a loop, yield the same token.
// It returns 0 if the stack is not deep enough.
func CallSite(skip int) uintptr {
	var pcs [1]uintptr
	// +2 skips runtime.Callers and CallSite itself.
	if runtime.Callers(skip+2, pcs[:]) < 1 {
		return 0
	}
	return pcs[0]
}

// SiteTable maps call-site tokens to their OnceFlag. Flags are created on
// first use and live as long as the table.
//
// The zero value is ready to use.
type SiteTable struct {
	mu    sync.RWMutex
	flags map[uintptr]*OnceFlag
}

// Flag returns the flag owned by site, creating it if needed.
func (t *SiteTable) Flag(site uintptr) *OnceFlag {
	t.mu.RLock()
	f, ok := t.flags[site]
	t.mu.RUnlock()
	if ok {
		return f
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.flags[site]; ok {
		return f
	}
	if t.flags == nil {
		t.flags = make(map[uintptr]*OnceFlag)
	}
	f = new(OnceFlag)
	t.flags[site] = f
	return f
}

// TryFire fires the flag owned by site. See OnceFlag.TryFire.
func (t *SiteTable) TryFire(site uintptr) bool {
	return t.Flag(site).TryFire()
}

// Len returns the number of call sites seen so far.
func (t *SiteTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.flags)
}
