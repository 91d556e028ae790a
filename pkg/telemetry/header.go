package telemetry

// PacketID identifies the packet kind carried in the header.
type PacketID uint8

const (
	PacketIDMotion              PacketID = 0
	PacketIDSession             PacketID = 1
	PacketIDLapData             PacketID = 2
	PacketIDEvent               PacketID = 3
	PacketIDParticipants        PacketID = 4
	PacketIDCarSetups           PacketID = 5
	PacketIDCarTelemetry        PacketID = 6
	PacketIDCarStatus           PacketID = 7
	PacketIDFinalClassification PacketID = 8
	PacketIDLobbyInfo           PacketID = 9
)

var packetIDNames = map[PacketID]string{
	PacketIDMotion:              "Motion",
	PacketIDSession:             "Session",
	PacketIDLapData:             "Lap Data",
	PacketIDEvent:               "Event",
	PacketIDParticipants:        "Participants",
	PacketIDCarSetups:           "Car Setups",
	PacketIDCarTelemetry:        "Car Telemetry",
	PacketIDCarStatus:           "Car Status",
	PacketIDFinalClassification: "Final Classification",
	PacketIDLobbyInfo:           "Lobby Info",
}

func (id PacketID) String() string {
	if name, ok := packetIDNames[id]; ok {
		return name
	}
	return "Unknown"
}

// HeaderSize is the wire size of the common packet header in the 2020 format.
const HeaderSize = 24

// supportedFormats enumerates the packetFormat values this package decodes.
// Unknown formats are rejected, never guessed at.
var supportedFormats = map[uint16]struct{}{
	2020: {},
}

// Header is the fixed-layout record at offset 0 of every telemetry packet.
type Header struct {
	PacketFormat            uint16
	GameMajorVersion        uint8
	GameMinorVersion        uint8
	PacketVersion           uint8
	PacketID                PacketID
	SessionUID              uint64
	SessionTime             float32
	FrameIdentifier         uint32
	PlayerCarIndex          uint8
	SecondaryPlayerCarIndex uint8
}

func (h Header) fields() []Field {
	return []Field{
		{"packetFormat", h.PacketFormat},
		{"gameMajorVersion", h.GameMajorVersion},
		{"gameMinorVersion", h.GameMinorVersion},
		{"packetVersion", h.PacketVersion},
		{"packetId", uint8(h.PacketID)},
		{"sessionUID", h.SessionUID},
		{"sessionTime", h.SessionTime},
		{"frameIdentifier", h.FrameIdentifier},
		{"playerCarIndex", h.PlayerCarIndex},
		{"secondaryPlayerCarIndex", h.SecondaryPlayerCarIndex},
	}
}

// DecodeHeader decodes the common header from the start of buf. It fails
// with a TruncatedError when buf is shorter than HeaderSize and with a
// HeaderError when the packetFormat is not a supported protocol revision.
func DecodeHeader(buf []byte) (Header, int, error) {
	r := NewReader(buf)
	h := decodeHeader(r)
	if err := r.Err(); err != nil {
		return Header{}, 0, err
	}
	if _, ok := supportedFormats[h.PacketFormat]; !ok {
		return Header{}, 0, &HeaderError{Format: h.PacketFormat, Reason: "unsupported packet format"}
	}
	return h, r.Offset(), nil
}

func decodeHeader(r *Reader) Header {
	var h Header
	h.PacketFormat = r.U16()
	h.GameMajorVersion = r.U8()
	h.GameMinorVersion = r.U8()
	h.PacketVersion = r.U8()
	h.PacketID = PacketID(r.U8())
	h.SessionUID = r.U64()
	h.SessionTime = r.F32()
	h.FrameIdentifier = r.U32()
	h.PlayerCarIndex = r.U8()
	h.SecondaryPlayerCarIndex = r.U8()
	return h
}
