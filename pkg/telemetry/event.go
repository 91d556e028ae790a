package telemetry

// Event string codes carried in the eventStringCode field.
const (
	EventSessionStarted = "SSTA"
	EventSessionEnded   = "SEND"
	EventFastestLap     = "FTLP"
	EventRetirement     = "RTMT"
	EventDRSEnabled     = "DRSE"
	EventDRSDisabled    = "DRSD"
	EventTeamMateInPits = "TMPT"
	EventChequeredFlag  = "CHQF"
	EventRaceWinner     = "RCWN"
	EventPenaltyIssued  = "PENA"
	EventSpeedTrap      = "SPTP"
)

var eventDescriptions = map[string]string{
	EventSessionStarted: "Session Started",
	EventSessionEnded:   "Session Ended",
	EventFastestLap:     "Fastest Lap",
	EventRetirement:     "Retirement",
	EventDRSEnabled:     "DRS enabled",
	EventDRSDisabled:    "DRS disabled",
	EventTeamMateInPits: "Team mate in pits",
	EventChequeredFlag:  "Chequered flag",
	EventRaceWinner:     "Race Winner",
	EventPenaltyIssued:  "Penalty issued",
	EventSpeedTrap:      "Speed trap triggered",
}

// EventDescription names an event code for operator-facing output.
func EventDescription(code string) string {
	if d, ok := eventDescriptions[code]; ok {
		return d
	}
	return "Unknown event"
}

// eventDetailsSize is the wire size of the event details union. Codes whose
// detail record is smaller are followed by protocol padding up to this size,
// which the decoder consumes explicitly.
const eventDetailsSize = 7

// FastestLapData details an FTLP event.
type FastestLapData struct {
	VehicleIdx uint8
	LapTime    float32
}

func (d FastestLapData) fields() []Field {
	return []Field{
		{"vehicleIdx", d.VehicleIdx},
		{"lapTime", d.LapTime},
	}
}

// RetirementData details an RTMT event.
type RetirementData struct {
	VehicleIdx uint8
}

func (d RetirementData) fields() []Field {
	return []Field{{"vehicleIdx", d.VehicleIdx}}
}

// TeamMateInPitsData details a TMPT event.
type TeamMateInPitsData struct {
	VehicleIdx uint8
}

func (d TeamMateInPitsData) fields() []Field {
	return []Field{{"vehicleIdx", d.VehicleIdx}}
}

// RaceWinnerData details an RCWN event.
type RaceWinnerData struct {
	VehicleIdx uint8
}

func (d RaceWinnerData) fields() []Field {
	return []Field{{"vehicleIdx", d.VehicleIdx}}
}

// PenaltyData details a PENA event.
type PenaltyData struct {
	PenaltyType      uint8
	InfringementType uint8
	VehicleIdx       uint8
	OtherVehicleIdx  uint8
	Time             uint8
	LapNum           uint8
	PlacesGained     uint8
}

func (d PenaltyData) fields() []Field {
	return []Field{
		{"penaltyType", d.PenaltyType},
		{"infringementType", d.InfringementType},
		{"vehicleIdx", d.VehicleIdx},
		{"otherVehicleIdx", d.OtherVehicleIdx},
		{"time", d.Time},
		{"lapNum", d.LapNum},
		{"placesGained", d.PlacesGained},
	}
}

// SpeedTrapData details an SPTP event.
type SpeedTrapData struct {
	VehicleIdx uint8
	Speed      float32
}

func (d SpeedTrapData) fields() []Field {
	return []Field{
		{"vehicleIdx", d.VehicleIdx},
		{"speed", d.Speed},
	}
}

// PacketEventData reports a notable session event. EventDetails is nil for
// codes that carry no detail record; unrecognised codes are passed through
// structurally with nil details (value validation is not the decoder's job).
type PacketEventData struct {
	Header          Header
	EventStringCode string
	EventDetails    Record
}

func (p *PacketEventData) PacketHeader() Header { return p.Header }

func decodeEventV1(h Header, r *Reader) (Packet, error) {
	p := &PacketEventData{Header: h}
	p.EventStringCode = r.FixedString(4)

	start := r.Offset()
	switch p.EventStringCode {
	case EventFastestLap:
		p.EventDetails = FastestLapData{
			VehicleIdx: r.U8(),
			LapTime:    r.F32(),
		}
	case EventRetirement:
		p.EventDetails = RetirementData{VehicleIdx: r.U8()}
	case EventTeamMateInPits:
		p.EventDetails = TeamMateInPitsData{VehicleIdx: r.U8()}
	case EventRaceWinner:
		p.EventDetails = RaceWinnerData{VehicleIdx: r.U8()}
	case EventPenaltyIssued:
		p.EventDetails = PenaltyData{
			PenaltyType:      r.U8(),
			InfringementType: r.U8(),
			VehicleIdx:       r.U8(),
			OtherVehicleIdx:  r.U8(),
			Time:             r.U8(),
			LapNum:           r.U8(),
			PlacesGained:     r.U8(),
		}
	case EventSpeedTrap:
		p.EventDetails = SpeedTrapData{
			VehicleIdx: r.U8(),
			Speed:      r.F32(),
		}
	}
	r.Skip(eventDetailsSize - (r.Offset() - start))

	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PacketEventData) fields() []Field {
	fs := []Field{
		{"header", p.Header},
		{"eventStringCode", p.EventStringCode},
	}
	if p.EventDetails != nil {
		fs = append(fs, Field{"eventDetails", p.EventDetails})
	}
	return fs
}
