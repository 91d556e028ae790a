package main

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"f1feed/pkg/engine"
	"f1feed/pkg/telemetry"
)

const (
	mockTopSpeedKPH   = 320.0
	mockSpeedFreqHz   = 0.05
	mockMaxRPM        = 12500.0
	mockIdleRPM       = 3500.0
	mockFastestLapS   = 78.456
	mockFastestCar    = 3
	mockEventEverySec = 10
)

// runMockPublisher feeds the hub with synthetic datagrams routed through
// the real decoder, so every downstream sink sees honest traffic.
func runMockPublisher(ctx context.Context, hub *engine.Hub, log zerolog.Logger, hz int) {
	if hz <= 0 {
		hz = 20
	}
	interval := time.Second / time.Duration(hz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	sessionUID := uint64(time.Now().UnixNano())
	var frame uint32
	nextEvent := time.Duration(mockEventEverySec) * time.Second

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			elapsed := time.Since(start)
			t := elapsed.Seconds()
			dg := mockCarTelemetryDatagram(sessionUID, float32(t), frame)
			publishDatagram(hub, log, dg, time.Now())
			if elapsed >= nextEvent {
				ev := mockFastestLapDatagram(sessionUID, float32(t), frame)
				publishDatagram(hub, log, ev, time.Now())
				nextEvent += time.Duration(mockEventEverySec) * time.Second
			}
			frame++
		}
	}
}

func mockHeader(packetID telemetry.PacketID, sessionUID uint64, sessionTime float32, frame uint32) []byte {
	b := make([]byte, 0, telemetry.HeaderSize)
	b = telemetry.AppendU16(b, 2020)
	b = telemetry.AppendU8(b, 1)
	b = telemetry.AppendU8(b, 18)
	b = telemetry.AppendU8(b, 1)
	b = telemetry.AppendU8(b, uint8(packetID))
	b = telemetry.AppendU64(b, sessionUID)
	b = telemetry.AppendF32(b, sessionTime)
	b = telemetry.AppendU32(b, frame)
	b = telemetry.AppendU8(b, 0)
	b = telemetry.AppendU8(b, 255)
	return b
}

func mockCarTelemetryDatagram(sessionUID uint64, t float32, frame uint32) []byte {
	b := mockHeader(telemetry.PacketIDCarTelemetry, sessionUID, t, frame)

	phase := 2.0 * math.Pi * mockSpeedFreqHz * float64(t)
	throttle := 0.5 + 0.5*math.Sin(phase)
	speed := mockTopSpeedKPH * throttle
	rpm := mockIdleRPM + (mockMaxRPM-mockIdleRPM)*throttle

	for car := 0; car < telemetry.NumCars; car++ {
		skew := 1.0 - float64(car)*0.01
		b = telemetry.AppendU16(b, uint16(speed*skew))
		b = telemetry.AppendF32(b, float32(throttle))
		b = telemetry.AppendF32(b, float32(0.1*math.Sin(phase*3)))
		b = telemetry.AppendF32(b, float32(1.0-throttle))
		b = telemetry.AppendU8(b, 0)
		b = telemetry.AppendI8(b, int8(1+int(throttle*7)))
		b = telemetry.AppendU16(b, uint16(rpm*skew))
		b = telemetry.AppendU8(b, 0)
		b = telemetry.AppendU8(b, uint8(throttle*100))
		for w := 0; w < telemetry.NumWheels; w++ {
			b = telemetry.AppendU16(b, 420)
		}
		for w := 0; w < telemetry.NumWheels; w++ {
			b = telemetry.AppendU8(b, 95)
		}
		for w := 0; w < telemetry.NumWheels; w++ {
			b = telemetry.AppendU8(b, 102)
		}
		b = telemetry.AppendU16(b, 108)
		for w := 0; w < telemetry.NumWheels; w++ {
			b = telemetry.AppendF32(b, 22.5)
		}
		for w := 0; w < telemetry.NumWheels; w++ {
			b = telemetry.AppendU8(b, 0)
		}
	}
	b = telemetry.AppendU32(b, 0)
	b = telemetry.AppendU8(b, 255)
	b = telemetry.AppendU8(b, 255)
	b = telemetry.AppendI8(b, int8(1+int(throttle*7)))
	return b
}

func mockFastestLapDatagram(sessionUID uint64, t float32, frame uint32) []byte {
	b := mockHeader(telemetry.PacketIDEvent, sessionUID, t, frame)
	b = telemetry.AppendFixedString(b, "FTLP", 4)
	b = telemetry.AppendU8(b, mockFastestCar)
	b = telemetry.AppendF32(b, mockFastestLapS)
	b = telemetry.AppendU16(b, 0)
	return b
}
