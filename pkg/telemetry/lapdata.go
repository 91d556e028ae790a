package telemetry

// LapData is one slot of the 22-element lapData array.
type LapData struct {
	LastLapTime                float32
	CurrentLapTime             float32
	Sector1TimeInMS            uint16
	Sector2TimeInMS            uint16
	BestLapTime                float32
	BestLapNum                 uint8
	BestLapSector1TimeInMS     uint16
	BestLapSector2TimeInMS     uint16
	BestLapSector3TimeInMS     uint16
	BestOverallSector1TimeInMS uint16
	BestOverallSector1LapNum   uint8
	BestOverallSector2TimeInMS uint16
	BestOverallSector2LapNum   uint8
	BestOverallSector3TimeInMS uint16
	BestOverallSector3LapNum   uint8
	LapDistance                float32
	TotalDistance              float32
	SafetyCarDelta             float32
	CarPosition                uint8
	CurrentLapNum              uint8
	PitStatus                  uint8
	Sector                     uint8
	CurrentLapInvalid          uint8
	Penalties                  uint8
	GridPosition               uint8
	DriverStatus               uint8
	ResultStatus               uint8
}

func decodeLapData(r *Reader) LapData {
	var d LapData
	d.LastLapTime = r.F32()
	d.CurrentLapTime = r.F32()
	d.Sector1TimeInMS = r.U16()
	d.Sector2TimeInMS = r.U16()
	d.BestLapTime = r.F32()
	d.BestLapNum = r.U8()
	d.BestLapSector1TimeInMS = r.U16()
	d.BestLapSector2TimeInMS = r.U16()
	d.BestLapSector3TimeInMS = r.U16()
	d.BestOverallSector1TimeInMS = r.U16()
	d.BestOverallSector1LapNum = r.U8()
	d.BestOverallSector2TimeInMS = r.U16()
	d.BestOverallSector2LapNum = r.U8()
	d.BestOverallSector3TimeInMS = r.U16()
	d.BestOverallSector3LapNum = r.U8()
	d.LapDistance = r.F32()
	d.TotalDistance = r.F32()
	d.SafetyCarDelta = r.F32()
	d.CarPosition = r.U8()
	d.CurrentLapNum = r.U8()
	d.PitStatus = r.U8()
	d.Sector = r.U8()
	d.CurrentLapInvalid = r.U8()
	d.Penalties = r.U8()
	d.GridPosition = r.U8()
	d.DriverStatus = r.U8()
	d.ResultStatus = r.U8()
	return d
}

func (d LapData) fields() []Field {
	return []Field{
		{"lastLapTime", d.LastLapTime},
		{"currentLapTime", d.CurrentLapTime},
		{"sector1TimeInMS", d.Sector1TimeInMS},
		{"sector2TimeInMS", d.Sector2TimeInMS},
		{"bestLapTime", d.BestLapTime},
		{"bestLapNum", d.BestLapNum},
		{"bestLapSector1TimeInMS", d.BestLapSector1TimeInMS},
		{"bestLapSector2TimeInMS", d.BestLapSector2TimeInMS},
		{"bestLapSector3TimeInMS", d.BestLapSector3TimeInMS},
		{"bestOverallSector1TimeInMS", d.BestOverallSector1TimeInMS},
		{"bestOverallSector1LapNum", d.BestOverallSector1LapNum},
		{"bestOverallSector2TimeInMS", d.BestOverallSector2TimeInMS},
		{"bestOverallSector2LapNum", d.BestOverallSector2LapNum},
		{"bestOverallSector3TimeInMS", d.BestOverallSector3TimeInMS},
		{"bestOverallSector3LapNum", d.BestOverallSector3LapNum},
		{"lapDistance", d.LapDistance},
		{"totalDistance", d.TotalDistance},
		{"safetyCarDelta", d.SafetyCarDelta},
		{"carPosition", d.CarPosition},
		{"currentLapNum", d.CurrentLapNum},
		{"pitStatus", d.PitStatus},
		{"sector", d.Sector},
		{"currentLapInvalid", d.CurrentLapInvalid},
		{"penalties", d.Penalties},
		{"gridPosition", d.GridPosition},
		{"driverStatus", d.DriverStatus},
		{"resultStatus", d.ResultStatus},
	}
}

// PacketLapData gives lap times and track position for every car in the
// session.
type PacketLapData struct {
	Header  Header
	LapData [NumCars]LapData
}

func (p *PacketLapData) PacketHeader() Header { return p.Header }

func decodeLapDataV1(h Header, r *Reader) (Packet, error) {
	p := &PacketLapData{Header: h}
	for i := range p.LapData {
		p.LapData[i] = decodeLapData(r)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PacketLapData) fields() []Field {
	return []Field{
		{"header", p.Header},
		{"lapData", recordSeq(p.LapData[:])},
	}
}
