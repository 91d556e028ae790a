package telemetry

// FinalClassificationData is one slot of the 22-element classificationData
// array. totalRaceTime is the only double-width float in the protocol.
type FinalClassificationData struct {
	Position         uint8
	NumLaps          uint8
	GridPosition     uint8
	Points           uint8
	NumPitStops      uint8
	ResultStatus     uint8
	BestLapTime      float32
	TotalRaceTime    float64
	PenaltiesTime    uint8
	NumPenalties     uint8
	NumTyreStints    uint8
	TyreStintsActual [NumTyreStints]uint8
	TyreStintsVisual [NumTyreStints]uint8
}

func decodeFinalClassificationData(r *Reader) FinalClassificationData {
	var d FinalClassificationData
	d.Position = r.U8()
	d.NumLaps = r.U8()
	d.GridPosition = r.U8()
	d.Points = r.U8()
	d.NumPitStops = r.U8()
	d.ResultStatus = r.U8()
	d.BestLapTime = r.F32()
	d.TotalRaceTime = r.F64()
	d.PenaltiesTime = r.U8()
	d.NumPenalties = r.U8()
	d.NumTyreStints = r.U8()
	for i := range d.TyreStintsActual {
		d.TyreStintsActual[i] = r.U8()
	}
	for i := range d.TyreStintsVisual {
		d.TyreStintsVisual[i] = r.U8()
	}
	return d
}

func (d FinalClassificationData) fields() []Field {
	return []Field{
		{"position", d.Position},
		{"numLaps", d.NumLaps},
		{"gridPosition", d.GridPosition},
		{"points", d.Points},
		{"numPitStops", d.NumPitStops},
		{"resultStatus", d.ResultStatus},
		{"bestLapTime", d.BestLapTime},
		{"totalRaceTime", d.TotalRaceTime},
		{"penaltiesTime", d.PenaltiesTime},
		{"numPenalties", d.NumPenalties},
		{"numTyreStints", d.NumTyreStints},
		{"tyreStintsActual", d.TyreStintsActual[:]},
		{"tyreStintsVisual", d.TyreStintsVisual[:]},
	}
}

// PacketFinalClassificationData matches the post-race results screen; sent
// once at the end of the race.
type PacketFinalClassificationData struct {
	Header             Header
	NumCars            uint8
	ClassificationData [NumCars]FinalClassificationData
}

func (p *PacketFinalClassificationData) PacketHeader() Header { return p.Header }

func decodeFinalClassificationV1(h Header, r *Reader) (Packet, error) {
	p := &PacketFinalClassificationData{Header: h}
	p.NumCars = r.U8()
	for i := range p.ClassificationData {
		p.ClassificationData[i] = decodeFinalClassificationData(r)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PacketFinalClassificationData) fields() []Field {
	return []Field{
		{"header", p.Header},
		{"numCars", p.NumCars},
		{"classificationData", recordSeq(p.ClassificationData[:])},
	}
}
