package serialhandler

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"

	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/formatter"
	"github.com/philipp01105/ntrace/handler"
)

// Frame is the unit written to the channel
type Frame struct {
	Level   core.Level `cbor:"1,keyasint"`
	Seq     uint64     `cbor:"2,keyasint"`
	Message string     `cbor:"3,keyasint"`
}

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// SerialHandler writes one Frame per trace message
type SerialHandler struct {
	mu         sync.Mutex // serializes encoding and sequence numbers
	enc        *cbor.Encoder
	seq        uint64
	undecorate bool
	stats      *handler.Stats
}

// Option configures a SerialHandler
type Option func(*SerialHandler)

// WithUndecorate strips colour escapes, labels and line terminators
// before framing; the frame's level field carries the severity.
func WithUndecorate() Option {
	return func(h *SerialHandler) { h.undecorate = true }
}

// NewSerialHandler creates a handler writing frames to w
func NewSerialHandler(w io.Writer, opts ...Option) *SerialHandler {
	h := &SerialHandler{
		enc:   encMode.NewEncoder(w),
		stats: handler.NewStats(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleTrace implements handler.Handler. A frame that cannot be written
// is counted as discarded; its sequence number is still consumed.
func (h *SerialHandler) HandleTrace(level core.Level, msg string) {
	if h.undecorate {
		msg = formatter.Undecorate(level, msg)
	}
	// CBOR text strings must be UTF-8; raw writes are not checked upstream.
	if !utf8.ValidString(msg) {
		msg = strings.ToValidUTF8(msg, string(utf8.RuneError))
	}

	h.mu.Lock()
	h.seq++
	err := h.enc.Encode(Frame{Level: level, Seq: h.seq, Message: msg})
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementDiscarded()
		return
	}
	h.stats.IncrementDispatched(level)
}

// Stats returns a snapshot of the current statistics
func (h *SerialHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Reader decodes frames written by a SerialHandler
type Reader struct {
	dec *cbor.Decoder
}

// NewReader creates a Reader consuming r
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: cbor.NewDecoder(r)}
}

// ReadFrame returns the next frame. It returns io.EOF when the stream ends
// cleanly between frames.
func (r *Reader) ReadFrame() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("serialhandler: decode frame: %w", err)
	}
	return f, nil
}
