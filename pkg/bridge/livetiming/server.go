package livetiming

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"f1feed/pkg/engine"
	"f1feed/pkg/telemetry"
)

// Server exposes the decoded feed over WebSocket for live-timing clients.
// Each packet kind is one advertised channel; clients subscribe per channel
// and receive the serialized document trees as JSON frames.
type Server struct {
	cfg     Config
	hub     *engine.Hub
	clients map[*client]struct{}
	mu      sync.RWMutex
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	subs map[uint32]uint64
	mu   sync.RWMutex
	once sync.Once
}

// allKinds fixes the advertised channel set and its order.
var allKinds = []telemetry.PacketID{
	telemetry.PacketIDMotion,
	telemetry.PacketIDSession,
	telemetry.PacketIDLapData,
	telemetry.PacketIDEvent,
	telemetry.PacketIDParticipants,
	telemetry.PacketIDCarSetups,
	telemetry.PacketIDCarTelemetry,
	telemetry.PacketIDCarStatus,
	telemetry.PacketIDFinalClassification,
	telemetry.PacketIDLobbyInfo,
}

func NewServer(cfg Config, hub *engine.Hub) *Server {
	defaults := DefaultConfig()
	if cfg.WSAddr == "" {
		cfg.WSAddr = defaults.WSAddr
	}
	if cfg.Name == "" {
		cfg.Name = defaults.Name
	}
	if cfg.TopicPrefix == "" {
		cfg.TopicPrefix = defaults.TopicPrefix
	}
	if cfg.SendBuf <= 0 {
		cfg.SendBuf = defaults.SendBuf
	}
	return &Server{
		cfg:     cfg,
		hub:     hub,
		clients: make(map[*client]struct{}),
	}
}

func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleWS)

	httpServer := &http.Server{
		Addr:    s.cfg.WSAddr,
		Handler: mux,
	}

	sub := s.hub.Subscribe()
	go s.broadcastLoop(ctx, sub)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = httpServer.Shutdown(shutdownCtx)
		cancel()
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(*http.Request) bool {
			return true
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	c := newClient(conn, s.cfg.SendBuf)
	s.addClient(c)

	if err := conn.WriteJSON(s.serverInfo()); err != nil {
		c.close()
		s.removeClient(c)
		return
	}
	if err := conn.WriteJSON(s.advertise()); err != nil {
		c.close()
		s.removeClient(c)
		return
	}

	go c.writeLoop()
	c.readLoop(s.supportedChannels())

	c.close()
	s.removeClient(c)
}

func channelID(kind telemetry.PacketID) uint64 {
	return uint64(kind) + 1
}

func (s *Server) topic(kind telemetry.PacketID) string {
	slug := strings.ReplaceAll(strings.ToLower(kind.String()), " ", "_")
	return s.cfg.TopicPrefix + "/" + slug
}

func (s *Server) supportedChannels() map[uint64]struct{} {
	channels := make(map[uint64]struct{}, len(allKinds))
	for _, kind := range allKinds {
		channels[channelID(kind)] = struct{}{}
	}
	return channels
}

func (s *Server) serverInfo() ServerInfoMsg {
	return ServerInfoMsg{
		Op:           OpServerInfo,
		Name:         s.cfg.Name,
		Capabilities: []string{},
		SessionID:    fmt.Sprintf("%d", time.Now().UTC().UnixNano()),
	}
}

func (s *Server) advertise() AdvertiseMsg {
	channels := make([]Channel, 0, len(allKinds))
	for _, kind := range allKinds {
		channels = append(channels, Channel{
			ID:         channelID(kind),
			Topic:      s.topic(kind),
			Encoding:   "json",
			SchemaName: "f1feed.Packet",
		})
	}
	return AdvertiseMsg{Op: OpAdvertise, Channels: channels}
}

func (s *Server) broadcastLoop(ctx context.Context, sub <-chan engine.FeedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			s.broadcastEvent(ev)
		}
	}
}

func (s *Server) broadcastEvent(ev engine.FeedEvent) {
	ts := ev.ReceivedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	payload, err := json.Marshal(ev.Doc)
	if err != nil {
		return
	}

	chID := channelID(ev.Kind)
	logTime := uint64(ts.UnixNano())
	for _, c := range s.snapshotClients() {
		for _, subID := range c.subIDsForChannel(chID) {
			c.trySend(EncodeMessageData(subID, logTime, payload))
		}
	}
}

func (s *Server) addClient(c *client) {
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
}

func (s *Server) snapshotClients() []*client {
	s.mu.RLock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.RUnlock()
	return clients
}

func newClient(conn *websocket.Conn, sendBuf int) *client {
	if sendBuf <= 0 {
		sendBuf = DefaultConfig().SendBuf
	}
	return &client{
		conn: conn,
		send: make(chan []byte, sendBuf),
		subs: make(map[uint32]uint64),
	}
}

func (c *client) readLoop(supportedChannels map[uint64]struct{}) {
	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var header struct {
			Op string `json:"op"`
		}
		if err := json.Unmarshal(data, &header); err != nil {
			continue
		}

		switch header.Op {
		case OpSubscribe:
			var msg SubscribeMsg
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}
			for _, sub := range msg.Subscriptions {
				if _, ok := supportedChannels[sub.ChannelID]; ok {
					c.addSub(sub.ID, sub.ChannelID)
				}
			}
		case OpUnsubscribe:
			var msg UnsubscribeMsg
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}
			for _, id := range msg.SubscriptionIDs {
				c.removeSub(id)
			}
		}
	}
}

func (c *client) writeLoop() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			c.close()
			return
		}
	}
}

func (c *client) trySend(msg []byte) {
	defer func() {
		_ = recover()
	}()
	select {
	case c.send <- msg:
	default:
	}
}

func (c *client) addSub(id uint32, channelID uint64) {
	c.mu.Lock()
	c.subs[id] = channelID
	c.mu.Unlock()
}

func (c *client) removeSub(id uint32) {
	c.mu.Lock()
	delete(c.subs, id)
	c.mu.Unlock()
}

func (c *client) subIDsForChannel(channelID uint64) []uint32 {
	c.mu.RLock()
	ids := make([]uint32, 0, len(c.subs))
	for id, ch := range c.subs {
		if ch == channelID {
			ids = append(ids, id)
		}
	}
	c.mu.RUnlock()
	return ids
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
		_ = c.conn.Close()
	})
}
