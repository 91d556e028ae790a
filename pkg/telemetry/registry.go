package telemetry

// Protocol-fixed array lengths and sizes for the 2020 format.
const (
	NumCars             = 22
	NumWheels           = 4
	NumMarshalZones     = 21
	NumWeatherForecasts = 20
	NumTyreStints       = 8
	ParticipantNameLen  = 48
)

// Expected total wire sizes per packet kind, header included. New revisions
// may append trailing bytes, which the dispatcher tolerates; these are the
// minimums a well-formed 2020 packet carries.
const (
	MotionPacketSize              = 1464
	SessionPacketSize             = 251
	LapDataPacketSize             = 1190
	EventPacketSize               = 35
	ParticipantsPacketSize        = 1213
	CarSetupsPacketSize           = 1102
	CarTelemetryPacketSize        = 1307
	CarStatusPacketSize           = 1344
	FinalClassificationPacketSize = 839
	LobbyInfoPacketSize           = 1169
)

// Packet is one fully decoded telemetry packet: the common header plus the
// body record selected by the header's (format, version, id) triple.
type Packet interface {
	Record
	PacketHeader() Header
}

type registryKey struct {
	packetFormat  uint16
	packetVersion uint8
	packetID      PacketID
}

type bodyDecoder func(h Header, r *Reader) (Packet, error)

// decoders is the only place new protocol revisions are registered. Built
// once, never mutated after init, safe for concurrent lookups.
var decoders = map[registryKey]bodyDecoder{
	{2020, 1, PacketIDMotion}:              decodeMotionV1,
	{2020, 1, PacketIDSession}:             decodeSessionV1,
	{2020, 1, PacketIDLapData}:             decodeLapDataV1,
	{2020, 1, PacketIDEvent}:               decodeEventV1,
	{2020, 1, PacketIDParticipants}:        decodeParticipantsV1,
	{2020, 1, PacketIDCarSetups}:           decodeCarSetupsV1,
	{2020, 1, PacketIDCarTelemetry}:        decodeCarTelemetryV1,
	{2020, 1, PacketIDCarStatus}:           decodeCarStatusV1,
	{2020, 1, PacketIDFinalClassification}: decodeFinalClassificationV1,
	{2020, 1, PacketIDLobbyInfo}:           decodeLobbyInfoV1,
}

// DecodePacket decodes one raw datagram into a typed packet. It is pure and
// reentrant: decoding performs no I/O, takes no locks, and shares no mutable
// state between calls. Trailing bytes beyond the known body layout are
// tolerated; short buffers fail with a TruncatedError, unknown formats with
// a HeaderError, and unregistered (format, version, id) triples with an
// UnsupportedPacketError. Field values are not validated.
func DecodePacket(buf []byte) (Packet, error) {
	h, n, err := DecodeHeader(buf)
	if err != nil {
		return nil, err
	}

	dec, ok := decoders[registryKey{h.PacketFormat, h.PacketVersion, h.PacketID}]
	if !ok {
		return nil, &UnsupportedPacketError{
			Format:        h.PacketFormat,
			PacketVersion: h.PacketVersion,
			ID:            uint8(h.PacketID),
		}
	}

	r := NewReader(buf)
	r.Skip(n)
	return dec(h, r)
}
