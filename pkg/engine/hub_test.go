package engine_test

import (
	"context"
	"testing"
	"time"

	"f1feed/pkg/engine"
	"f1feed/pkg/telemetry"
)

func TestHubDoesNotBlockOnSlowConsumer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := engine.NewHub(engine.WithBroadcastBuffer(1), engine.WithClientBuffer(1))
	go hub.Run(ctx)

	fast := hub.SubscribeWithBuffer(128)
	slow := hub.SubscribeWithBuffer(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			hub.Publish(engine.FeedEvent{Frame: uint32(i), Kind: telemetry.PacketIDCarTelemetry})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatalf("publish blocked on slow consumer")
	}

	received := 0
	timeout := time.After(1 * time.Second)
	for received < 50 {
		select {
		case <-fast:
			received++
		case <-timeout:
			t.Fatalf("fast consumer timeout after %d events", received)
		}
	}

	count := 0
	for {
		select {
		case <-slow:
			count++
		default:
			if count > 1 {
				t.Fatalf("slow consumer received %d events, expected at most 1", count)
			}
			return
		}
	}
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := engine.NewHub()
	go hub.Run(ctx)

	sub := hub.Subscribe()
	hub.Publish(engine.FeedEvent{Frame: 1})

	select {
	case ev := <-sub:
		if ev.Frame != 1 {
			t.Fatalf("frame: got %d", ev.Frame)
		}
	case <-time.After(1 * time.Second):
		t.Fatalf("event not delivered")
	}

	hub.Unsubscribe(sub)
	// The channel is closed on unsubscribe; a receive must not hang.
	select {
	case _, ok := <-sub:
		if ok {
			// A publish raced the unsubscribe; the close still follows.
			if _, ok := <-sub; ok {
				t.Fatalf("channel not closed after unsubscribe")
			}
		}
	case <-time.After(1 * time.Second):
		t.Fatalf("channel not closed after unsubscribe")
	}
}
