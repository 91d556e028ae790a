package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"f1feed/pkg/engine"
)

// Analytics batches decoded packets and posts them as JSON arrays to an
// event-ingest endpoint. Batches flush when full or when the flush interval
// elapses; a failed post drops the batch and the feed moves on.
type Analytics struct {
	endpoint      string
	apiKeyHeader  string
	apiKey        string
	maxBatch      int
	flushInterval time.Duration
	client        *http.Client
	log           zerolog.Logger
}

type Option func(*Analytics)

func WithMaxBatch(n int) Option {
	return func(a *Analytics) {
		if n > 0 {
			a.maxBatch = n
		}
	}
}

func WithFlushInterval(d time.Duration) Option {
	return func(a *Analytics) {
		if d > 0 {
			a.flushInterval = d
		}
	}
}

func WithAPIKey(header string, key string) Option {
	return func(a *Analytics) {
		a.apiKeyHeader = header
		a.apiKey = key
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(a *Analytics) {
		if c != nil {
			a.client = c
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(a *Analytics) {
		a.log = log
	}
}

func NewAnalytics(endpoint string, opts ...Option) *Analytics {
	a := &Analytics{
		endpoint:      endpoint,
		maxBatch:      100,
		flushInterval: 2 * time.Second,
		client:        &http.Client{Timeout: 10 * time.Second},
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type analyticsDoc struct {
	EventType  string `json:"eventType"`
	TS         string `json:"ts"`
	SessionUID uint64 `json:"sessionUID"`
	Frame      uint32 `json:"frameIdentifier"`
	Data       any    `json:"data"`
}

// Consume drains the subscription channel, batching documents until ctx is
// cancelled; a final flush runs on shutdown.
func (a *Analytics) Consume(ctx context.Context, in <-chan engine.FeedEvent) {
	batch := make([]analyticsDoc, 0, a.maxBatch)
	ticker := time.NewTicker(a.flushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		a.post(batch)
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case <-ticker.C:
			flush()
		case ev, ok := <-in:
			if !ok {
				flush()
				return
			}
			batch = append(batch, analyticsDoc{
				EventType:  eventTypeName(ev),
				TS:         ev.ReceivedAt.UTC().Format(time.RFC3339Nano),
				SessionUID: ev.SessionUID,
				Frame:      ev.Frame,
				Data:       ev.Doc,
			})
			if len(batch) >= a.maxBatch {
				flush()
			}
		}
	}
}

func eventTypeName(ev engine.FeedEvent) string {
	return "F1Telemetry" + compactName(ev.Kind.String())
}

func compactName(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		if name[i] != ' ' {
			out = append(out, name[i])
		}
	}
	return string(out)
}

func (a *Analytics) post(batch []analyticsDoc) {
	body, err := json.Marshal(batch)
	if err != nil {
		a.log.Error().Err(err).Msg("marshal analytics batch")
		return
	}

	req, err := http.NewRequest(http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		a.log.Error().Err(err).Msg("build analytics request")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if a.apiKey != "" {
		req.Header.Set(a.apiKeyHeader, a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.log.Warn().Err(err).Int("docs", len(batch)).Msg("analytics post failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		a.log.Warn().
			Int("status", resp.StatusCode).
			Int("docs", len(batch)).
			Msg("analytics post rejected")
		return
	}
	a.log.Debug().Int("docs", len(batch)).Msg("analytics batch sent")
}
