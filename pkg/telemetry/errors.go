package telemetry

import "fmt"

// TruncatedError reports a read past the end of the datagram. The packet is
// discarded; nothing before the failing field is returned.
type TruncatedError struct {
	Offset int
	Want   int
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("telemetry: truncated packet: need %d bytes at offset %d, %d available", e.Want, e.Offset, e.Have)
}

// HeaderError reports a structurally invalid packet header, such as a
// packetFormat outside the supported set.
type HeaderError struct {
	Format uint16
	Reason string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("telemetry: malformed header: %s (packetFormat=%d)", e.Reason, e.Format)
}

// UnsupportedPacketError reports a header whose (format, version, id) triple
// has no registered decoder. It indicates a protocol gap rather than a
// corrupt datagram, so callers may want to surface it distinctly.
type UnsupportedPacketError struct {
	Format        uint16
	PacketVersion uint8
	ID            uint8
}

func (e *UnsupportedPacketError) Error() string {
	return fmt.Sprintf("telemetry: no decoder for packetFormat=%d packetVersion=%d packetId=%d",
		e.Format, e.PacketVersion, e.ID)
}
