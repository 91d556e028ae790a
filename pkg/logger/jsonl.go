package logger

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"f1feed/pkg/engine"
)

// JSONLWriter renders one JSON document per decoded packet, newline
// delimited, suitable for file tailing or shipping to a log platform.
type JSONLWriter struct {
	enc *json.Encoder
}

type jsonRecord struct {
	TS         string `json:"ts"`
	Packet     string `json:"packet"`
	SessionUID uint64 `json:"sessionUID"`
	Frame      uint32 `json:"frameIdentifier"`
	Data       any    `json:"data"`
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLWriter{enc: enc}
}

// Consume drains the subscription channel until ctx is cancelled or the
// channel closes.
func (j *JSONLWriter) Consume(ctx context.Context, in <-chan engine.FeedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-in:
			if !ok {
				return
			}
			_ = j.enc.Encode(jsonRecord{
				TS:         ev.ReceivedAt.UTC().Format(time.RFC3339Nano),
				Packet:     ev.Kind.String(),
				SessionUID: ev.SessionUID,
				Frame:      ev.Frame,
				Data:       ev.Doc,
			})
		}
	}
}
