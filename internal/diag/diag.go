// Package diag is the toolkit's diagnostics side channel. Operations
// that recover from malformed or non-representable input report the
// suppressed error here; the return contract of the operation never
// depends on whether a handler is installed.
package diag

import "sync"

// Handler receives a suppressed error together with the name of the
// operation that recovered from it.
type Handler func(op string, err error)

var (
	mu      sync.RWMutex
	handler Handler
)

// SetHandler installs h as the process-wide diagnostics handler.
// Passing nil restores the default (discard).
func SetHandler(h Handler) {
	mu.Lock()
	handler = h
	mu.Unlock()
}

// Report forwards err to the installed handler, if any.
func Report(op string, err error) {
	if err == nil {
		return
	}
	mu.RLock()
	h := handler
	mu.RUnlock()
	if h != nil {
		h(op, err)
	}
}
