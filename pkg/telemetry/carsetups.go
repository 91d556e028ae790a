package telemetry

// CarSetupData is one slot of the 22-element carSetups array. In multiplayer
// sessions other human cars appear blank.
type CarSetupData struct {
	FrontWing              uint8
	RearWing               uint8
	OnThrottle             uint8
	OffThrottle            uint8
	FrontCamber            float32
	RearCamber             float32
	FrontToe               float32
	RearToe                float32
	FrontSuspension        uint8
	RearSuspension         uint8
	FrontAntiRollBar       uint8
	RearAntiRollBar        uint8
	FrontSuspensionHeight  uint8
	RearSuspensionHeight   uint8
	BrakePressure          uint8
	BrakeBias              uint8
	RearLeftTyrePressure   float32
	RearRightTyrePressure  float32
	FrontLeftTyrePressure  float32
	FrontRightTyrePressure float32
	Ballast                uint8
	FuelLoad               float32
}

func decodeCarSetupData(r *Reader) CarSetupData {
	var d CarSetupData
	d.FrontWing = r.U8()
	d.RearWing = r.U8()
	d.OnThrottle = r.U8()
	d.OffThrottle = r.U8()
	d.FrontCamber = r.F32()
	d.RearCamber = r.F32()
	d.FrontToe = r.F32()
	d.RearToe = r.F32()
	d.FrontSuspension = r.U8()
	d.RearSuspension = r.U8()
	d.FrontAntiRollBar = r.U8()
	d.RearAntiRollBar = r.U8()
	d.FrontSuspensionHeight = r.U8()
	d.RearSuspensionHeight = r.U8()
	d.BrakePressure = r.U8()
	d.BrakeBias = r.U8()
	d.RearLeftTyrePressure = r.F32()
	d.RearRightTyrePressure = r.F32()
	d.FrontLeftTyrePressure = r.F32()
	d.FrontRightTyrePressure = r.F32()
	d.Ballast = r.U8()
	d.FuelLoad = r.F32()
	return d
}

func (d CarSetupData) fields() []Field {
	return []Field{
		{"frontWing", d.FrontWing},
		{"rearWing", d.RearWing},
		{"onThrottle", d.OnThrottle},
		{"offThrottle", d.OffThrottle},
		{"frontCamber", d.FrontCamber},
		{"rearCamber", d.RearCamber},
		{"frontToe", d.FrontToe},
		{"rearToe", d.RearToe},
		{"frontSuspension", d.FrontSuspension},
		{"rearSuspension", d.RearSuspension},
		{"frontAntiRollBar", d.FrontAntiRollBar},
		{"rearAntiRollBar", d.RearAntiRollBar},
		{"frontSuspensionHeight", d.FrontSuspensionHeight},
		{"rearSuspensionHeight", d.RearSuspensionHeight},
		{"brakePressure", d.BrakePressure},
		{"brakeBias", d.BrakeBias},
		{"rearLeftTyrePressure", d.RearLeftTyrePressure},
		{"rearRightTyrePressure", d.RearRightTyrePressure},
		{"frontLeftTyrePressure", d.FrontLeftTyrePressure},
		{"frontRightTyrePressure", d.FrontRightTyrePressure},
		{"ballast", d.Ballast},
		{"fuelLoad", d.FuelLoad},
	}
}

// PacketCarSetupData details the setup of every car in the session.
type PacketCarSetupData struct {
	Header    Header
	CarSetups [NumCars]CarSetupData
}

func (p *PacketCarSetupData) PacketHeader() Header { return p.Header }

func decodeCarSetupsV1(h Header, r *Reader) (Packet, error) {
	p := &PacketCarSetupData{Header: h}
	for i := range p.CarSetups {
		p.CarSetups[i] = decodeCarSetupData(r)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PacketCarSetupData) fields() []Field {
	return []Field{
		{"header", p.Header},
		{"carSetups", recordSeq(p.CarSetups[:])},
	}
}
