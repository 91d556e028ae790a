package telemetry

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Reader is a little-endian cursor over one datagram. Every read advances
// the offset by exactly the width of the field; the first out-of-bounds read
// records a TruncatedError and all subsequent reads return zero values.
// Callers check Err once per decoded record.
type Reader struct {
	buf []byte
	off int
	err error
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset is the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining is the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Err returns the first read failure, or nil.
func (r *Reader) Err() error { return r.err }

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.buf) {
		r.err = &TruncatedError{Offset: r.off, Want: n, Have: len(r.buf) - r.off}
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) U8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) I8() int8 { return int8(r.U8()) }

func (r *Reader) U16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) I16() int16 { return int16(r.U16()) }

func (r *Reader) U32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) I32() int32 { return int32(r.U32()) }

func (r *Reader) U64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *Reader) I64() int64 { return int64(r.U64()) }

func (r *Reader) F32() float32 { return math.Float32frombits(r.U32()) }

func (r *Reader) F64() float64 { return math.Float64frombits(r.U64()) }

// Bytes copies the next n bytes.
func (r *Reader) Bytes(n int) []byte {
	b := r.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// FixedString consumes exactly n bytes and returns the text up to the first
// NUL. The wire encoding is UTF-8 with NUL padding.
func (r *Reader) FixedString(n int) string {
	b := r.take(n)
	if b == nil {
		return ""
	}
	if i := bytes.IndexByte(b, 0x00); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// Skip consumes n bytes of protocol-defined padding.
func (r *Reader) Skip(n int) {
	r.take(n)
}

// Append helpers mirror the Reader for building datagrams in tests and the
// mock feed.

func AppendU8(b []byte, v uint8) []byte { return append(b, v) }

func AppendI8(b []byte, v int8) []byte { return append(b, byte(v)) }

func AppendU16(b []byte, v uint16) []byte { return binary.LittleEndian.AppendUint16(b, v) }

func AppendI16(b []byte, v int16) []byte { return AppendU16(b, uint16(v)) }

func AppendU32(b []byte, v uint32) []byte { return binary.LittleEndian.AppendUint32(b, v) }

func AppendU64(b []byte, v uint64) []byte { return binary.LittleEndian.AppendUint64(b, v) }

func AppendF32(b []byte, v float32) []byte { return AppendU32(b, math.Float32bits(v)) }

func AppendF64(b []byte, v float64) []byte { return AppendU64(b, math.Float64bits(v)) }

// AppendFixedString appends s truncated or NUL-padded to exactly n bytes.
func AppendFixedString(b []byte, s string, n int) []byte {
	raw := []byte(s)
	if len(raw) > n {
		raw = raw[:n]
	}
	b = append(b, raw...)
	for i := len(raw); i < n; i++ {
		b = append(b, 0x00)
	}
	return b
}
