package telemetry_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"f1feed/pkg/telemetry"
)

func TestObjectPreservesInsertionOrder(t *testing.T) {
	obj := telemetry.NewObject()
	obj.Set("zulu", 1)
	obj.Set("alpha", 2)
	obj.Set("mike", 3)
	obj.Set("alpha", 4) // overwrite keeps the original position

	wantKeys := []string{"zulu", "alpha", "mike"}
	if got := obj.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("keys: got %v, want %v", got, wantKeys)
	}

	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"zulu":1,"alpha":4,"mike":3}`
	if string(data) != want {
		t.Fatalf("json: got %s, want %s", data, want)
	}
}

func TestToTreeHeaderFieldOrder(t *testing.T) {
	pkt, err := telemetry.DecodePacket(zeroPacket(telemetry.PacketIDLapData, telemetry.LapDataPacketSize))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	doc := telemetry.ToTree(pkt)

	hdr, ok := doc.Get("header")
	if !ok {
		t.Fatalf("missing header node")
	}
	want := []string{
		"packetFormat", "gameMajorVersion", "gameMinorVersion", "packetVersion",
		"packetId", "sessionUID", "sessionTime", "frameIdentifier",
		"playerCarIndex", "secondaryPlayerCarIndex",
	}
	got := hdr.(*telemetry.Object).Keys()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("header keys: got %v, want %v", got, want)
	}
}

func TestToTreeScalarArraysAreJSONArrays(t *testing.T) {
	pkt, err := telemetry.DecodePacket(zeroPacket(telemetry.PacketIDCarStatus, telemetry.CarStatusPacketSize))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, err := json.Marshal(telemetry.ToTree(pkt))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// tyresWear is a fixed uint8 array; it must render as numbers, never as
	// a base64 string.
	if !strings.Contains(string(data), `"tyresWear":[0,0,0,0]`) {
		t.Fatalf("tyresWear not rendered as array: %s", snippet(string(data), "tyresWear"))
	}
}

func TestToTreeKeepsNativeWidths(t *testing.T) {
	b := appendTestHeader(nil, telemetry.PacketIDEvent)
	b = telemetry.AppendFixedString(b, "FTLP", 4)
	b = telemetry.AppendU8(b, 3)
	b = telemetry.AppendF32(b, 78.456)
	b = telemetry.AppendU16(b, 0)

	pkt, err := telemetry.DecodePacket(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	doc := telemetry.ToTree(pkt)
	details, ok := doc.Get("eventDetails")
	if !ok {
		t.Fatalf("missing eventDetails")
	}
	lapTime, ok := details.(*telemetry.Object).Get("lapTime")
	if !ok {
		t.Fatalf("missing lapTime")
	}
	// The value stays a float32: marshalling must print the shortest
	// representation that round-trips at 32-bit precision.
	if _, ok := lapTime.(float32); !ok {
		t.Fatalf("lapTime: got %T, want float32", lapTime)
	}
	data, err := json.Marshal(details)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "78.456") {
		t.Fatalf("lapTime did not round-trip: %s", data)
	}
}

func snippet(s, around string) string {
	i := strings.Index(s, around)
	if i < 0 {
		return "(absent)"
	}
	end := i + 60
	if end > len(s) {
		end = len(s)
	}
	return s[i:end]
}
