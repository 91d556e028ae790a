package telemetry_test

import (
	"testing"

	"f1feed/pkg/telemetry"
)

func appendEventPacket(code string, details func([]byte) []byte) []byte {
	b := appendTestHeader(nil, telemetry.PacketIDEvent)
	b = telemetry.AppendFixedString(b, code, 4)
	start := len(b)
	if details != nil {
		b = details(b)
	}
	for len(b)-start < 7 {
		b = telemetry.AppendU8(b, 0)
	}
	return b
}

func TestFastestLapEvent(t *testing.T) {
	buf := appendEventPacket("FTLP", func(b []byte) []byte {
		b = telemetry.AppendU8(b, 3)
		b = telemetry.AppendF32(b, 78.456)
		return b
	})
	if len(buf) != telemetry.EventPacketSize {
		t.Fatalf("packet size: got %d, want %d", len(buf), telemetry.EventPacketSize)
	}

	pkt, err := telemetry.DecodePacket(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ev, ok := pkt.(*telemetry.PacketEventData)
	if !ok {
		t.Fatalf("unexpected packet type: %T", pkt)
	}
	if ev.EventStringCode != telemetry.EventFastestLap {
		t.Fatalf("code: got %q", ev.EventStringCode)
	}
	details, ok := ev.EventDetails.(telemetry.FastestLapData)
	if !ok {
		t.Fatalf("unexpected details type: %T", ev.EventDetails)
	}
	if details.VehicleIdx != 3 {
		t.Fatalf("vehicleIdx: got %d, want 3", details.VehicleIdx)
	}
	if details.LapTime != 78.456 {
		t.Fatalf("lapTime: got %v, want 78.456", details.LapTime)
	}
}

func TestSessionStartedEventHasNoDetails(t *testing.T) {
	pkt, err := telemetry.DecodePacket(appendEventPacket("SSTA", nil))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ev := pkt.(*telemetry.PacketEventData)
	if ev.EventStringCode != telemetry.EventSessionStarted {
		t.Fatalf("code: got %q", ev.EventStringCode)
	}
	if ev.EventDetails != nil {
		t.Fatalf("expected nil details, got %T", ev.EventDetails)
	}

	doc := telemetry.ToTree(ev)
	if _, ok := doc.Get("eventDetails"); ok {
		t.Fatalf("eventDetails should be absent for SSTA")
	}
}

func TestPenaltyEvent(t *testing.T) {
	pkt, err := telemetry.DecodePacket(appendEventPacket("PENA", func(b []byte) []byte {
		for _, v := range []uint8{5, 7, 11, 255, 10, 3, 0} {
			b = telemetry.AppendU8(b, v)
		}
		return b
	}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	details := pkt.(*telemetry.PacketEventData).EventDetails.(telemetry.PenaltyData)
	want := telemetry.PenaltyData{
		PenaltyType:      5,
		InfringementType: 7,
		VehicleIdx:       11,
		OtherVehicleIdx:  255,
		Time:             10,
		LapNum:           3,
		PlacesGained:     0,
	}
	if details != want {
		t.Fatalf("details: got %+v, want %+v", details, want)
	}
}

func TestSpeedTrapEvent(t *testing.T) {
	pkt, err := telemetry.DecodePacket(appendEventPacket("SPTP", func(b []byte) []byte {
		b = telemetry.AppendU8(b, 14)
		b = telemetry.AppendF32(b, 318.25)
		return b
	}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	details := pkt.(*telemetry.PacketEventData).EventDetails.(telemetry.SpeedTrapData)
	if details.VehicleIdx != 14 || details.Speed != 318.25 {
		t.Fatalf("details: got %+v", details)
	}
}

func TestUnknownEventCodePassesThrough(t *testing.T) {
	pkt, err := telemetry.DecodePacket(appendEventPacket("XYZW", nil))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ev := pkt.(*telemetry.PacketEventData)
	if ev.EventStringCode != "XYZW" {
		t.Fatalf("code: got %q", ev.EventStringCode)
	}
	if ev.EventDetails != nil {
		t.Fatalf("expected nil details for unknown code")
	}
}

func TestEventDescription(t *testing.T) {
	if got := telemetry.EventDescription("CHQF"); got != "Chequered flag" {
		t.Fatalf("CHQF: got %q", got)
	}
	if got := telemetry.EventDescription("????"); got != "Unknown event" {
		t.Fatalf("unknown: got %q", got)
	}
}
