package telemetry

// MarshalZone is one slot of the 21-element marshalZones array.
type MarshalZone struct {
	ZoneStart float32
	ZoneFlag  int8
}

func decodeMarshalZone(r *Reader) MarshalZone {
	return MarshalZone{
		ZoneStart: r.F32(),
		ZoneFlag:  r.I8(),
	}
}

func (z MarshalZone) fields() []Field {
	return []Field{
		{"zoneStart", z.ZoneStart},
		{"zoneFlag", z.ZoneFlag},
	}
}

// WeatherForecastSample is one slot of the 20-element forecast array.
type WeatherForecastSample struct {
	SessionType      uint8
	TimeOffset       uint8
	Weather          uint8
	TrackTemperature int8
	AirTemperature   int8
}

func decodeWeatherForecastSample(r *Reader) WeatherForecastSample {
	var s WeatherForecastSample
	s.SessionType = r.U8()
	s.TimeOffset = r.U8()
	s.Weather = r.U8()
	s.TrackTemperature = r.I8()
	s.AirTemperature = r.I8()
	return s
}

func (s WeatherForecastSample) fields() []Field {
	return []Field{
		{"sessionType", s.SessionType},
		{"timeOffset", s.TimeOffset},
		{"weather", s.Weather},
		{"trackTemperature", s.TrackTemperature},
		{"airTemperature", s.AirTemperature},
	}
}

// PacketSessionData describes the session in progress: track, weather, time
// left. numMarshalZones and numWeatherForecastSamples count the populated
// prefix of their fixed-length arrays; the arrays themselves are always
// carried in full on the wire.
type PacketSessionData struct {
	Header                    Header
	Weather                   uint8
	TrackTemperature          int8
	AirTemperature            int8
	TotalLaps                 uint8
	TrackLength               uint16
	SessionType               uint8
	TrackID                   int8
	Formula                   uint8
	SessionTimeLeft           uint16
	SessionDuration           uint16
	PitSpeedLimit             uint8
	GamePaused                uint8
	IsSpectating              uint8
	SpectatorCarIndex         uint8
	SLIProNativeSupport       uint8
	NumMarshalZones           uint8
	MarshalZones              [NumMarshalZones]MarshalZone
	SafetyCarStatus           uint8
	NetworkGame               uint8
	NumWeatherForecastSamples uint8
	WeatherForecastSamples    [NumWeatherForecasts]WeatherForecastSample
}

func (p *PacketSessionData) PacketHeader() Header { return p.Header }

func decodeSessionV1(h Header, r *Reader) (Packet, error) {
	p := &PacketSessionData{Header: h}
	p.Weather = r.U8()
	p.TrackTemperature = r.I8()
	p.AirTemperature = r.I8()
	p.TotalLaps = r.U8()
	p.TrackLength = r.U16()
	p.SessionType = r.U8()
	p.TrackID = r.I8()
	p.Formula = r.U8()
	p.SessionTimeLeft = r.U16()
	p.SessionDuration = r.U16()
	p.PitSpeedLimit = r.U8()
	p.GamePaused = r.U8()
	p.IsSpectating = r.U8()
	p.SpectatorCarIndex = r.U8()
	p.SLIProNativeSupport = r.U8()
	p.NumMarshalZones = r.U8()
	for i := range p.MarshalZones {
		p.MarshalZones[i] = decodeMarshalZone(r)
	}
	p.SafetyCarStatus = r.U8()
	p.NetworkGame = r.U8()
	p.NumWeatherForecastSamples = r.U8()
	for i := range p.WeatherForecastSamples {
		p.WeatherForecastSamples[i] = decodeWeatherForecastSample(r)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PacketSessionData) fields() []Field {
	return []Field{
		{"header", p.Header},
		{"weather", p.Weather},
		{"trackTemperature", p.TrackTemperature},
		{"airTemperature", p.AirTemperature},
		{"totalLaps", p.TotalLaps},
		{"trackLength", p.TrackLength},
		{"sessionType", p.SessionType},
		{"trackId", p.TrackID},
		{"formula", p.Formula},
		{"sessionTimeLeft", p.SessionTimeLeft},
		{"sessionDuration", p.SessionDuration},
		{"pitSpeedLimit", p.PitSpeedLimit},
		{"gamePaused", p.GamePaused},
		{"isSpectating", p.IsSpectating},
		{"spectatorCarIndex", p.SpectatorCarIndex},
		{"sliProNativeSupport", p.SLIProNativeSupport},
		{"numMarshalZones", p.NumMarshalZones},
		{"marshalZones", recordSeq(p.MarshalZones[:])},
		{"safetyCarStatus", p.SafetyCarStatus},
		{"networkGame", p.NetworkGame},
		{"numWeatherForecastSamples", p.NumWeatherForecastSamples},
		{"weatherForecastSamples", recordSeq(p.WeatherForecastSamples[:])},
	}
}
