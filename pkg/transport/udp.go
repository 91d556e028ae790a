package transport

import (
	"context"
	"fmt"
	"net"
	"time"
)

// Listener receives telemetry datagrams on a UDP socket and pushes each one,
// copied, to the out channel. One datagram is one packet; no framing beyond
// the datagram boundary.
type Listener struct {
	addr         string
	out          chan<- []byte
	maxDatagram  int
	readTimeout  time.Duration
	errorHandler func(error)
}

type Option func(*Listener)

// WithMaxDatagramSize sets the receive buffer size; datagrams larger than
// this are truncated by the kernel and will fail to decode downstream.
func WithMaxDatagramSize(n int) Option {
	return func(l *Listener) {
		if n > 0 {
			l.maxDatagram = n
		}
	}
}

func WithReadTimeout(d time.Duration) Option {
	return func(l *Listener) {
		if d > 0 {
			l.readTimeout = d
		}
	}
}

func WithErrorHandler(fn func(error)) Option {
	return func(l *Listener) {
		if fn != nil {
			l.errorHandler = fn
		}
	}
}

// StartListener binds the UDP socket and starts the receive loop. The loop
// stops when ctx is cancelled.
func StartListener(ctx context.Context, addr string, out chan<- []byte, opts ...Option) (*Listener, error) {
	l := &Listener{
		addr:        addr,
		out:         out,
		maxDatagram: 2048,
		readTimeout: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(l)
	}

	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: resolve %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("transport: listen %s: %w", addr, err)
	}

	go l.run(ctx, conn)
	return l, nil
}

func (l *Listener) run(ctx context.Context, conn *net.UDPConn) {
	defer conn.Close()

	buf := make([]byte, l.maxDatagram)
	for {
		if ctx.Err() != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(l.readTimeout))
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			l.handleError(err)
			continue
		}
		if n == 0 {
			continue
		}

		datagram := make([]byte, n)
		copy(datagram, buf[:n])
		select {
		case l.out <- datagram:
		case <-ctx.Done():
			return
		}
	}
}

func (l *Listener) handleError(err error) {
	if l.errorHandler != nil {
		l.errorHandler(err)
	}
}
