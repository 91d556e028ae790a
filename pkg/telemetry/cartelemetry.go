package telemetry

// CarTelemetryData is one slot of the 22-element carTelemetryData array.
// Per-wheel arrays are ordered RL, RR, FL, FR.
type CarTelemetryData struct {
	Speed                   uint16
	Throttle                float32
	Steer                   float32
	Brake                   float32
	Clutch                  uint8
	Gear                    int8
	EngineRPM               uint16
	DRS                     uint8
	RevLightsPercent        uint8
	BrakesTemperature       [NumWheels]uint16
	TyresSurfaceTemperature [NumWheels]uint8
	TyresInnerTemperature   [NumWheels]uint8
	EngineTemperature       uint16
	TyresPressure           [NumWheels]float32
	SurfaceType             [NumWheels]uint8
}

func decodeCarTelemetryData(r *Reader) CarTelemetryData {
	var d CarTelemetryData
	d.Speed = r.U16()
	d.Throttle = r.F32()
	d.Steer = r.F32()
	d.Brake = r.F32()
	d.Clutch = r.U8()
	d.Gear = r.I8()
	d.EngineRPM = r.U16()
	d.DRS = r.U8()
	d.RevLightsPercent = r.U8()
	for i := range d.BrakesTemperature {
		d.BrakesTemperature[i] = r.U16()
	}
	for i := range d.TyresSurfaceTemperature {
		d.TyresSurfaceTemperature[i] = r.U8()
	}
	for i := range d.TyresInnerTemperature {
		d.TyresInnerTemperature[i] = r.U8()
	}
	d.EngineTemperature = r.U16()
	for i := range d.TyresPressure {
		d.TyresPressure[i] = r.F32()
	}
	for i := range d.SurfaceType {
		d.SurfaceType[i] = r.U8()
	}
	return d
}

func (d CarTelemetryData) fields() []Field {
	return []Field{
		{"speed", d.Speed},
		{"throttle", d.Throttle},
		{"steer", d.Steer},
		{"brake", d.Brake},
		{"clutch", d.Clutch},
		{"gear", d.Gear},
		{"engineRPM", d.EngineRPM},
		{"drs", d.DRS},
		{"revLightsPercent", d.RevLightsPercent},
		{"brakesTemperature", d.BrakesTemperature[:]},
		{"tyresSurfaceTemperature", d.TyresSurfaceTemperature[:]},
		{"tyresInnerTemperature", d.TyresInnerTemperature[:]},
		{"engineTemperature", d.EngineTemperature},
		{"tyresPressure", d.TyresPressure[:]},
		{"surfaceType", d.SurfaceType[:]},
	}
}

// PacketCarTelemetryData carries the live readouts of every car: speed,
// pedal inputs, temperatures, DRS.
type PacketCarTelemetryData struct {
	Header                       Header
	CarTelemetryData             [NumCars]CarTelemetryData
	ButtonStatus                 uint32
	MFDPanelIndex                uint8
	MFDPanelIndexSecondaryPlayer uint8
	SuggestedGear                int8
}

func (p *PacketCarTelemetryData) PacketHeader() Header { return p.Header }

func decodeCarTelemetryV1(h Header, r *Reader) (Packet, error) {
	p := &PacketCarTelemetryData{Header: h}
	for i := range p.CarTelemetryData {
		p.CarTelemetryData[i] = decodeCarTelemetryData(r)
	}
	p.ButtonStatus = r.U32()
	p.MFDPanelIndex = r.U8()
	p.MFDPanelIndexSecondaryPlayer = r.U8()
	p.SuggestedGear = r.I8()
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PacketCarTelemetryData) fields() []Field {
	return []Field{
		{"header", p.Header},
		{"carTelemetryData", recordSeq(p.CarTelemetryData[:])},
		{"buttonStatus", p.ButtonStatus},
		{"mfdPanelIndex", p.MFDPanelIndex},
		{"mfdPanelIndexSecondaryPlayer", p.MFDPanelIndexSecondaryPlayer},
		{"suggestedGear", p.SuggestedGear},
	}
}
