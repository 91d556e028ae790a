package telemetry

// LobbyInfoData is one slot of the 22-element lobbyPlayers array.
type LobbyInfoData struct {
	AIControlled uint8
	TeamID       uint8
	Nationality  uint8
	Name         string
	ReadyStatus  uint8
}

func decodeLobbyInfoData(r *Reader) LobbyInfoData {
	var d LobbyInfoData
	d.AIControlled = r.U8()
	d.TeamID = r.U8()
	d.Nationality = r.U8()
	d.Name = r.FixedString(ParticipantNameLen)
	d.ReadyStatus = r.U8()
	return d
}

func (d LobbyInfoData) fields() []Field {
	return []Field{
		{"aiControlled", d.AIControlled},
		{"teamId", d.TeamID},
		{"nationality", d.Nationality},
		{"name", d.Name},
		{"readyStatus", d.ReadyStatus},
	}
}

// PacketLobbyInfoData lists the players in a multiplayer lobby. numPlayers
// counts the populated prefix of the fixed-length lobbyPlayers array.
type PacketLobbyInfoData struct {
	Header       Header
	NumPlayers   uint8
	LobbyPlayers [NumCars]LobbyInfoData
}

func (p *PacketLobbyInfoData) PacketHeader() Header { return p.Header }

func decodeLobbyInfoV1(h Header, r *Reader) (Packet, error) {
	p := &PacketLobbyInfoData{Header: h}
	p.NumPlayers = r.U8()
	for i := range p.LobbyPlayers {
		p.LobbyPlayers[i] = decodeLobbyInfoData(r)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PacketLobbyInfoData) fields() []Field {
	return []Field{
		{"header", p.Header},
		{"numPlayers", p.NumPlayers},
		{"lobbyPlayers", recordSeq(p.LobbyPlayers[:])},
	}
}
