// Package serialhandler frames trace messages for a byte-oriented channel
// such as a UART, a USB CDC endpoint or a pipe to a host-side monitor.
//
// Each message becomes one CBOR-encoded Frame carrying the level, a
// per-handler sequence number and the message text. CBOR items are
// self-delimiting, so frames can be written back to back and a Reader on
// the other end can split the stream without extra length prefixes. A
// gap in sequence numbers tells the host that frames were lost.
//
// Encoding uses the deterministic core profile, so identical messages
// always produce identical bytes.
package serialhandler
