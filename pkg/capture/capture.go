// Package capture records raw telemetry datagrams to a compressed stream and
// plays them back. Datagrams are length-prefixed inside a zstd stream so an
// entire session fits in a few megabytes.
package capture

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

var magic = []byte{'F', '1', 'C', 'A', 'P', 0x01}

// MaxDatagramSize bounds a single recorded datagram; anything larger is a
// corrupt capture, not a telemetry packet.
const MaxDatagramSize = 64 * 1024

var ErrBadMagic = errors.New("capture: not a capture stream")

// Writer appends length-prefixed datagrams to a zstd-compressed stream.
type Writer struct {
	zw *zstd.Encoder
}

func NewWriter(w io.Writer) (*Writer, error) {
	if _, err := w.Write(magic); err != nil {
		return nil, fmt.Errorf("capture: write header: %w", err)
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("capture: init compressor: %w", err)
	}
	return &Writer{zw: zw}, nil
}

func (w *Writer) WriteDatagram(b []byte) error {
	if len(b) > MaxDatagramSize {
		return fmt.Errorf("capture: datagram of %d bytes exceeds limit", len(b))
	}
	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(b)))
	if _, err := w.zw.Write(prefix[:]); err != nil {
		return err
	}
	_, err := w.zw.Write(b)
	return err
}

// Close flushes the compressor. It does not close the underlying writer.
func (w *Writer) Close() error {
	return w.zw.Close()
}

// Reader replays datagrams from a capture stream in recorded order.
type Reader struct {
	zr *zstd.Decoder
}

func NewReader(r io.Reader) (*Reader, error) {
	head := make([]byte, len(magic))
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, fmt.Errorf("capture: read header: %w", err)
	}
	for i := range magic {
		if head[i] != magic[i] {
			return nil, ErrBadMagic
		}
	}
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("capture: init decompressor: %w", err)
	}
	return &Reader{zr: zr}, nil
}

// Next returns the next datagram, or io.EOF at the end of the stream.
func (r *Reader) Next() ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r.zr, prefix[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, err
	}
	n := binary.LittleEndian.Uint32(prefix[:])
	if n > MaxDatagramSize {
		return nil, fmt.Errorf("capture: datagram length %d exceeds limit", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.zr, b); err != nil {
		return nil, fmt.Errorf("capture: short datagram: %w", err)
	}
	return b, nil
}

func (r *Reader) Close() {
	r.zr.Close()
}
