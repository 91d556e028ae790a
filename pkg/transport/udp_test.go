package transport_test

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"f1feed/pkg/transport"
)

func freeUDPAddr(t *testing.T) string {
	t.Helper()
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("probe free port: %v", err)
	}
	addr := conn.LocalAddr().String()
	_ = conn.Close()
	return addr
}

func TestListenerDeliversDatagrams(t *testing.T) {
	addr := freeUDPAddr(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan []byte, 8)
	_, err := transport.StartListener(ctx, addr, out,
		transport.WithMaxDatagramSize(2048),
		transport.WithReadTimeout(50*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("start listener: %v", err)
	}

	conn, err := net.Dial("udp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	want := []byte{0xE4, 0x07, 1, 18, 1, 6, 7, 8}
	deadline := time.After(2 * time.Second)
	for {
		if _, err := conn.Write(want); err != nil {
			t.Fatalf("write: %v", err)
		}
		select {
		case got := <-out:
			if !bytes.Equal(got, want) {
				t.Fatalf("datagram: got %x, want %x", got, want)
			}
			return
		case <-time.After(100 * time.Millisecond):
			// Retry: the first datagram can race the socket coming up.
		case <-deadline:
			t.Fatalf("datagram never delivered")
		}
	}
}

func TestListenerBadAddress(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan []byte, 1)
	if _, err := transport.StartListener(ctx, "not-an-address:xyz", out); err == nil {
		t.Fatalf("expected error for bad address")
	}
}
