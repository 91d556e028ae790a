package telemetry_test

import (
	"errors"
	"testing"

	"f1feed/pkg/telemetry"
)

func appendTestHeader(b []byte, id telemetry.PacketID) []byte {
	b = telemetry.AppendU16(b, 2020)
	b = telemetry.AppendU8(b, 1)
	b = telemetry.AppendU8(b, 18)
	b = telemetry.AppendU8(b, 1)
	b = telemetry.AppendU8(b, uint8(id))
	b = telemetry.AppendU64(b, 0xCAFED00D)
	b = telemetry.AppendF32(b, 123.5)
	b = telemetry.AppendU32(b, 4242)
	b = telemetry.AppendU8(b, 19)
	b = telemetry.AppendU8(b, 255)
	return b
}

// zeroPacket builds a datagram of exactly size bytes: a valid header for the
// given kind followed by an all-zero body.
func zeroPacket(id telemetry.PacketID, size int) []byte {
	b := appendTestHeader(nil, id)
	return append(b, make([]byte, size-len(b))...)
}

func TestDecodeHeader(t *testing.T) {
	buf := appendTestHeader(nil, telemetry.PacketIDLapData)

	h, n, err := telemetry.DecodeHeader(buf)
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	if n != telemetry.HeaderSize {
		t.Fatalf("consumed: got %d, want %d", n, telemetry.HeaderSize)
	}
	if h.PacketFormat != 2020 {
		t.Fatalf("packetFormat: got %d", h.PacketFormat)
	}
	if h.GameMajorVersion != 1 || h.GameMinorVersion != 18 {
		t.Fatalf("game version: got %d.%d", h.GameMajorVersion, h.GameMinorVersion)
	}
	if h.PacketVersion != 1 {
		t.Fatalf("packetVersion: got %d", h.PacketVersion)
	}
	if h.PacketID != telemetry.PacketIDLapData {
		t.Fatalf("packetId: got %d", h.PacketID)
	}
	if h.SessionUID != 0xCAFED00D {
		t.Fatalf("sessionUID: got %#x", h.SessionUID)
	}
	if h.SessionTime != 123.5 {
		t.Fatalf("sessionTime: got %v", h.SessionTime)
	}
	if h.FrameIdentifier != 4242 {
		t.Fatalf("frameIdentifier: got %d", h.FrameIdentifier)
	}
	if h.PlayerCarIndex != 19 || h.SecondaryPlayerCarIndex != 255 {
		t.Fatalf("car indices: got %d/%d", h.PlayerCarIndex, h.SecondaryPlayerCarIndex)
	}
}

func TestDecodeHeaderShortBuffer(t *testing.T) {
	buf := appendTestHeader(nil, telemetry.PacketIDMotion)
	for _, n := range []int{0, 1, telemetry.HeaderSize - 1} {
		_, _, err := telemetry.DecodeHeader(buf[:n])
		var trunc *telemetry.TruncatedError
		if !errors.As(err, &trunc) {
			t.Fatalf("len %d: expected TruncatedError, got %v", n, err)
		}
	}
}

func TestDecodeHeaderUnsupportedFormat(t *testing.T) {
	buf := appendTestHeader(nil, telemetry.PacketIDMotion)
	buf[0] = 0xE3 // packetFormat 2019
	buf[1] = 0x07

	_, _, err := telemetry.DecodeHeader(buf)
	var hdrErr *telemetry.HeaderError
	if !errors.As(err, &hdrErr) {
		t.Fatalf("expected HeaderError, got %v", err)
	}
	if hdrErr.Format != 2019 {
		t.Fatalf("format: got %d, want 2019", hdrErr.Format)
	}
}

func TestPacketIDString(t *testing.T) {
	cases := map[telemetry.PacketID]string{
		telemetry.PacketIDMotion:              "Motion",
		telemetry.PacketIDCarTelemetry:        "Car Telemetry",
		telemetry.PacketIDFinalClassification: "Final Classification",
		telemetry.PacketID(42):                "Unknown",
	}
	for id, want := range cases {
		if got := id.String(); got != want {
			t.Fatalf("PacketID(%d).String(): got %q, want %q", id, got, want)
		}
	}
}
