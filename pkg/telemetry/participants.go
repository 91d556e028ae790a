package telemetry

// ParticipantData is one slot of the 22-element participants array. Name is
// UTF-8, NUL terminated on the wire, truncated with U+2026 by the game when
// too long.
type ParticipantData struct {
	AIControlled  uint8
	DriverID      uint8
	TeamID        uint8
	RaceNumber    uint8
	Nationality   uint8
	Name          string
	YourTelemetry uint8
}

func decodeParticipantData(r *Reader) ParticipantData {
	var d ParticipantData
	d.AIControlled = r.U8()
	d.DriverID = r.U8()
	d.TeamID = r.U8()
	d.RaceNumber = r.U8()
	d.Nationality = r.U8()
	d.Name = r.FixedString(ParticipantNameLen)
	d.YourTelemetry = r.U8()
	return d
}

func (d ParticipantData) fields() []Field {
	return []Field{
		{"aiControlled", d.AIControlled},
		{"driverId", d.DriverID},
		{"teamId", d.TeamID},
		{"raceNumber", d.RaceNumber},
		{"nationality", d.Nationality},
		{"name", d.Name},
		{"yourTelemetry", d.YourTelemetry},
	}
}

// PacketParticipantsData lists the drivers in the session. numActiveCars
// counts the populated prefix of the fixed-length participants array.
type PacketParticipantsData struct {
	Header        Header
	NumActiveCars uint8
	Participants  [NumCars]ParticipantData
}

func (p *PacketParticipantsData) PacketHeader() Header { return p.Header }

func decodeParticipantsV1(h Header, r *Reader) (Packet, error) {
	p := &PacketParticipantsData{Header: h}
	p.NumActiveCars = r.U8()
	for i := range p.Participants {
		p.Participants[i] = decodeParticipantData(r)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PacketParticipantsData) fields() []Field {
	return []Field{
		{"header", p.Header},
		{"numActiveCars", p.NumActiveCars},
		{"participants", recordSeq(p.Participants[:])},
	}
}
