package benchmark

import (
	"sync/atomic"

	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/handler"
)

// noopHandler touches every message so the formatting work cannot be
// optimised away, and otherwise does nothing.
type noopHandler struct {
	bytes atomic.Uint64
}

func newNoopHandler() *noopHandler {
	return &noopHandler{}
}

func (h *noopHandler) HandleTrace(_ core.Level, msg string) {
	h.bytes.Add(uint64(len(msg)))
}

var _ handler.Handler = (*noopHandler)(nil)
