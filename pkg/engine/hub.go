package engine

import (
	"context"
	"time"

	"f1feed/pkg/telemetry"
)

// FeedEvent is one decoded packet flowing through the pipeline.
type FeedEvent struct {
	ReceivedAt time.Time
	Kind       telemetry.PacketID
	SessionUID uint64
	Frame      uint32
	Packet     telemetry.Packet
	Doc        *telemetry.Object
}

// Hub fans decoded packets out to any number of subscribers. Slow
// subscribers drop events rather than stalling the pipeline.
type Hub struct {
	broadcast  chan FeedEvent
	register   chan chan FeedEvent
	unregister chan chan FeedEvent
	clients    map[chan FeedEvent]struct{}
	clientBuf  int
}

type Option func(*Hub)

func WithBroadcastBuffer(size int) Option {
	return func(h *Hub) {
		if size > 0 {
			h.broadcast = make(chan FeedEvent, size)
		}
	}
}

func WithClientBuffer(size int) Option {
	return func(h *Hub) {
		if size > 0 {
			h.clientBuf = size
		}
	}
}

func NewHub(opts ...Option) *Hub {
	h := &Hub{
		broadcast:  make(chan FeedEvent, 256),
		register:   make(chan chan FeedEvent),
		unregister: make(chan chan FeedEvent),
		clients:    make(map[chan FeedEvent]struct{}),
		clientBuf:  100,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for ch := range h.clients {
				close(ch)
			}
			return
		case ch := <-h.register:
			h.clients[ch] = struct{}{}
		case ch := <-h.unregister:
			if _, ok := h.clients[ch]; ok {
				delete(h.clients, ch)
				close(ch)
			}
		case ev := <-h.broadcast:
			for ch := range h.clients {
				select {
				case ch <- ev:
				default:
				}
			}
		}
	}
}

func (h *Hub) Subscribe() chan FeedEvent {
	return h.SubscribeWithBuffer(h.clientBuf)
}

func (h *Hub) SubscribeWithBuffer(size int) chan FeedEvent {
	if size <= 0 {
		size = h.clientBuf
	}
	ch := make(chan FeedEvent, size)
	h.register <- ch
	return ch
}

func (h *Hub) Unsubscribe(ch chan FeedEvent) {
	h.unregister <- ch
}

func (h *Hub) Publish(ev FeedEvent) {
	h.broadcast <- ev
}
