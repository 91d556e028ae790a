package telemetry

// CarMotionData is one slot of the 22-element carMotionData array.
// Normalised direction components are packed as signed 16-bit values;
// divide by 32767.0 to recover the float.
type CarMotionData struct {
	WorldPositionX     float32
	WorldPositionY     float32
	WorldPositionZ     float32
	WorldVelocityX     float32
	WorldVelocityY     float32
	WorldVelocityZ     float32
	WorldForwardDirX   int16
	WorldForwardDirY   int16
	WorldForwardDirZ   int16
	WorldRightDirX     int16
	WorldRightDirY     int16
	WorldRightDirZ     int16
	GForceLateral      float32
	GForceLongitudinal float32
	GForceVertical     float32
	Yaw                float32
	Pitch              float32
	Roll               float32
}

func decodeCarMotionData(r *Reader) CarMotionData {
	var d CarMotionData
	d.WorldPositionX = r.F32()
	d.WorldPositionY = r.F32()
	d.WorldPositionZ = r.F32()
	d.WorldVelocityX = r.F32()
	d.WorldVelocityY = r.F32()
	d.WorldVelocityZ = r.F32()
	d.WorldForwardDirX = r.I16()
	d.WorldForwardDirY = r.I16()
	d.WorldForwardDirZ = r.I16()
	d.WorldRightDirX = r.I16()
	d.WorldRightDirY = r.I16()
	d.WorldRightDirZ = r.I16()
	d.GForceLateral = r.F32()
	d.GForceLongitudinal = r.F32()
	d.GForceVertical = r.F32()
	d.Yaw = r.F32()
	d.Pitch = r.F32()
	d.Roll = r.F32()
	return d
}

func (d CarMotionData) fields() []Field {
	return []Field{
		{"worldPositionX", d.WorldPositionX},
		{"worldPositionY", d.WorldPositionY},
		{"worldPositionZ", d.WorldPositionZ},
		{"worldVelocityX", d.WorldVelocityX},
		{"worldVelocityY", d.WorldVelocityY},
		{"worldVelocityZ", d.WorldVelocityZ},
		{"worldForwardDirX", d.WorldForwardDirX},
		{"worldForwardDirY", d.WorldForwardDirY},
		{"worldForwardDirZ", d.WorldForwardDirZ},
		{"worldRightDirX", d.WorldRightDirX},
		{"worldRightDirY", d.WorldRightDirY},
		{"worldRightDirZ", d.WorldRightDirZ},
		{"gForceLateral", d.GForceLateral},
		{"gForceLongitudinal", d.GForceLongitudinal},
		{"gForceVertical", d.GForceVertical},
		{"yaw", d.Yaw},
		{"pitch", d.Pitch},
		{"roll", d.Roll},
	}
}

// PacketMotionData carries physics data for every car on track plus extra
// player-car-only data driving motion platforms. Wheel arrays are ordered
// RL, RR, FL, FR.
type PacketMotionData struct {
	Header                 Header
	CarMotionData          [NumCars]CarMotionData
	SuspensionPosition     [NumWheels]float32
	SuspensionVelocity     [NumWheels]float32
	SuspensionAcceleration [NumWheels]float32
	WheelSpeed             [NumWheels]float32
	WheelSlip              [NumWheels]float32
	LocalVelocityX         float32
	LocalVelocityY         float32
	LocalVelocityZ         float32
	AngularVelocityX       float32
	AngularVelocityY       float32
	AngularVelocityZ       float32
	AngularAccelerationX   float32
	AngularAccelerationY   float32
	AngularAccelerationZ   float32
	FrontWheelsAngle       float32
}

func (p *PacketMotionData) PacketHeader() Header { return p.Header }

func decodeMotionV1(h Header, r *Reader) (Packet, error) {
	p := &PacketMotionData{Header: h}
	for i := range p.CarMotionData {
		p.CarMotionData[i] = decodeCarMotionData(r)
	}
	for i := range p.SuspensionPosition {
		p.SuspensionPosition[i] = r.F32()
	}
	for i := range p.SuspensionVelocity {
		p.SuspensionVelocity[i] = r.F32()
	}
	for i := range p.SuspensionAcceleration {
		p.SuspensionAcceleration[i] = r.F32()
	}
	for i := range p.WheelSpeed {
		p.WheelSpeed[i] = r.F32()
	}
	for i := range p.WheelSlip {
		p.WheelSlip[i] = r.F32()
	}
	p.LocalVelocityX = r.F32()
	p.LocalVelocityY = r.F32()
	p.LocalVelocityZ = r.F32()
	p.AngularVelocityX = r.F32()
	p.AngularVelocityY = r.F32()
	p.AngularVelocityZ = r.F32()
	p.AngularAccelerationX = r.F32()
	p.AngularAccelerationY = r.F32()
	p.AngularAccelerationZ = r.F32()
	p.FrontWheelsAngle = r.F32()
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PacketMotionData) fields() []Field {
	return []Field{
		{"header", p.Header},
		{"carMotionData", recordSeq(p.CarMotionData[:])},
		{"suspensionPosition", p.SuspensionPosition[:]},
		{"suspensionVelocity", p.SuspensionVelocity[:]},
		{"suspensionAcceleration", p.SuspensionAcceleration[:]},
		{"wheelSpeed", p.WheelSpeed[:]},
		{"wheelSlip", p.WheelSlip[:]},
		{"localVelocityX", p.LocalVelocityX},
		{"localVelocityY", p.LocalVelocityY},
		{"localVelocityZ", p.LocalVelocityZ},
		{"angularVelocityX", p.AngularVelocityX},
		{"angularVelocityY", p.AngularVelocityY},
		{"angularVelocityZ", p.AngularVelocityZ},
		{"angularAccelerationX", p.AngularAccelerationX},
		{"angularAccelerationY", p.AngularAccelerationY},
		{"angularAccelerationZ", p.AngularAccelerationZ},
		{"frontWheelsAngle", p.FrontWheelsAngle},
	}
}
