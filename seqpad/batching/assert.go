package batching

import (
	"context"
	"sync"

	"github.com/ZanzyTHEbar/assert-lib"
)

var (
	assertMu      sync.RWMutex
	assertHandler *assert.AssertHandler
)

// SetAssertHandler installs a handler that is notified of shape invariant
// violations before the error is returned. A nil handler disables it.
func SetAssertHandler(h *assert.AssertHandler) {
	assertMu.Lock()
	defer assertMu.Unlock()
	assertHandler = h
}

func assertShape(ok bool, msg string, data ...any) {
	assertMu.RLock()
	h := assertHandler
	assertMu.RUnlock()
	if h == nil || ok {
		return
	}
	h.Assert(context.Background(), ok, msg, data...)
}
