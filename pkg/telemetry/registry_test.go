package telemetry_test

import (
	"errors"
	"testing"

	"f1feed/pkg/telemetry"
)

func TestDecodePacketAllKinds(t *testing.T) {
	cases := []struct {
		id   telemetry.PacketID
		size int
	}{
		{telemetry.PacketIDMotion, telemetry.MotionPacketSize},
		{telemetry.PacketIDSession, telemetry.SessionPacketSize},
		{telemetry.PacketIDLapData, telemetry.LapDataPacketSize},
		{telemetry.PacketIDEvent, telemetry.EventPacketSize},
		{telemetry.PacketIDParticipants, telemetry.ParticipantsPacketSize},
		{telemetry.PacketIDCarSetups, telemetry.CarSetupsPacketSize},
		{telemetry.PacketIDCarTelemetry, telemetry.CarTelemetryPacketSize},
		{telemetry.PacketIDCarStatus, telemetry.CarStatusPacketSize},
		{telemetry.PacketIDFinalClassification, telemetry.FinalClassificationPacketSize},
		{telemetry.PacketIDLobbyInfo, telemetry.LobbyInfoPacketSize},
	}
	for _, tc := range cases {
		t.Run(tc.id.String(), func(t *testing.T) {
			pkt, err := telemetry.DecodePacket(zeroPacket(tc.id, tc.size))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := pkt.PacketHeader().PacketID; got != tc.id {
				t.Fatalf("packetId: got %d, want %d", got, tc.id)
			}

			// One byte short of the declared layout must fail.
			_, err = telemetry.DecodePacket(zeroPacket(tc.id, tc.size-1))
			var trunc *telemetry.TruncatedError
			if !errors.As(err, &trunc) {
				t.Fatalf("short buffer: expected TruncatedError, got %v", err)
			}
		})
	}
}

func TestDecodePacketTrailingBytesTolerated(t *testing.T) {
	buf := zeroPacket(telemetry.PacketIDLapData, telemetry.LapDataPacketSize)
	buf = append(buf, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)

	pkt, err := telemetry.DecodePacket(buf)
	if err != nil {
		t.Fatalf("decode with trailing bytes: %v", err)
	}
	if pkt.PacketHeader().PacketID != telemetry.PacketIDLapData {
		t.Fatalf("packetId: got %d", pkt.PacketHeader().PacketID)
	}
}

func TestDecodePacketUnknownID(t *testing.T) {
	buf := zeroPacket(telemetry.PacketID(10), 64)

	_, err := telemetry.DecodePacket(buf)
	var unsup *telemetry.UnsupportedPacketError
	if !errors.As(err, &unsup) {
		t.Fatalf("expected UnsupportedPacketError, got %v", err)
	}
	if unsup.Format != 2020 || unsup.PacketVersion != 1 || unsup.ID != 10 {
		t.Fatalf("unexpected triple: %+v", unsup)
	}
}

func TestDecodePacketUnknownVersion(t *testing.T) {
	buf := zeroPacket(telemetry.PacketIDMotion, telemetry.MotionPacketSize)
	buf[4] = 2 // packetVersion

	_, err := telemetry.DecodePacket(buf)
	var unsup *telemetry.UnsupportedPacketError
	if !errors.As(err, &unsup) {
		t.Fatalf("expected UnsupportedPacketError, got %v", err)
	}
	if unsup.PacketVersion != 2 {
		t.Fatalf("packetVersion: got %d, want 2", unsup.PacketVersion)
	}
}

func TestDecodePacketUnknownFormat(t *testing.T) {
	buf := zeroPacket(telemetry.PacketIDMotion, telemetry.MotionPacketSize)
	buf[0] = 0xE5 // packetFormat 2021
	buf[1] = 0x07

	_, err := telemetry.DecodePacket(buf)
	var hdrErr *telemetry.HeaderError
	if !errors.As(err, &hdrErr) {
		t.Fatalf("expected HeaderError, got %v", err)
	}
}
