package telemetry_test

import (
	"errors"
	"testing"

	"f1feed/pkg/telemetry"
)

func TestReaderScalars(t *testing.T) {
	var buf []byte
	buf = telemetry.AppendU8(buf, 0xAB)
	buf = telemetry.AppendI8(buf, -5)
	buf = telemetry.AppendU16(buf, 0xBEEF)
	buf = telemetry.AppendI16(buf, -12345)
	buf = telemetry.AppendU32(buf, 0xDEADBEEF)
	buf = telemetry.AppendU64(buf, 0x0102030405060708)
	buf = telemetry.AppendF32(buf, 78.456)
	buf = telemetry.AppendF64(buf, -2.25)

	r := telemetry.NewReader(buf)
	if got := r.U8(); got != 0xAB {
		t.Fatalf("U8: got %#x", got)
	}
	if got := r.I8(); got != -5 {
		t.Fatalf("I8: got %d", got)
	}
	if got := r.U16(); got != 0xBEEF {
		t.Fatalf("U16: got %#x", got)
	}
	if got := r.I16(); got != -12345 {
		t.Fatalf("I16: got %d", got)
	}
	if got := r.U32(); got != 0xDEADBEEF {
		t.Fatalf("U32: got %#x", got)
	}
	if got := r.U64(); got != 0x0102030405060708 {
		t.Fatalf("U64: got %#x", got)
	}
	if got := r.F32(); got != 78.456 {
		t.Fatalf("F32: got %v", got)
	}
	if got := r.F64(); got != -2.25 {
		t.Fatalf("F64: got %v", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("remaining: got %d, want 0", r.Remaining())
	}
}

func TestReaderTruncationIsSticky(t *testing.T) {
	r := telemetry.NewReader([]byte{0x01, 0x02})
	if got := r.U16(); got != 0x0201 {
		t.Fatalf("U16: got %#x", got)
	}

	_ = r.U32()
	err := r.Err()
	var trunc *telemetry.TruncatedError
	if !errors.As(err, &trunc) {
		t.Fatalf("expected TruncatedError, got %v", err)
	}
	if trunc.Offset != 2 || trunc.Want != 4 || trunc.Have != 0 {
		t.Fatalf("unexpected error detail: %+v", trunc)
	}

	// Later reads return zero and do not replace the recorded error.
	if got := r.U64(); got != 0 {
		t.Fatalf("read after error: got %#x, want 0", got)
	}
	if r.Err() != err {
		t.Fatalf("error was replaced: %v", r.Err())
	}
}

func TestReaderFixedString(t *testing.T) {
	buf := telemetry.AppendFixedString(nil, "HAMILTON", 12)
	buf = telemetry.AppendFixedString(buf, "FTLP", 4)

	r := telemetry.NewReader(buf)
	if got := r.FixedString(12); got != "HAMILTON" {
		t.Fatalf("padded string: got %q", got)
	}
	if got := r.FixedString(4); got != "FTLP" {
		t.Fatalf("exact string: got %q", got)
	}
	if r.Offset() != 16 {
		t.Fatalf("offset: got %d, want 16", r.Offset())
	}
}

func TestReaderSkip(t *testing.T) {
	r := telemetry.NewReader(make([]byte, 10))
	r.Skip(7)
	if r.Offset() != 7 || r.Remaining() != 3 {
		t.Fatalf("offset/remaining: got %d/%d", r.Offset(), r.Remaining())
	}
	r.Skip(4)
	if r.Err() == nil {
		t.Fatalf("expected error skipping past end")
	}
}
