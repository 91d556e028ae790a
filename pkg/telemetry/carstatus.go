package telemetry

// CarStatusData is one slot of the 22-element carStatusData array. Fuel,
// damage and ERS fields read as zero for cars whose player has telemetry set
// to restricted.
type CarStatusData struct {
	TractionControl         uint8
	AntiLockBrakes          uint8
	FuelMix                 uint8
	FrontBrakeBias          uint8
	PitLimiterStatus        uint8
	FuelInTank              float32
	FuelCapacity            float32
	FuelRemainingLaps       float32
	MaxRPM                  uint16
	IdleRPM                 uint16
	MaxGears                uint8
	DRSAllowed              uint8
	DRSActivationDistance   uint16
	TyresWear               [NumWheels]uint8
	ActualTyreCompound      uint8
	VisualTyreCompound      uint8
	TyresAgeLaps            uint8
	TyresDamage             [NumWheels]uint8
	FrontLeftWingDamage     uint8
	FrontRightWingDamage    uint8
	RearWingDamage          uint8
	DRSFault                uint8
	EngineDamage            uint8
	GearBoxDamage           uint8
	VehicleFIAFlags         int8
	ERSStoreEnergy          float32
	ERSDeployMode           uint8
	ERSHarvestedThisLapMGUK float32
	ERSHarvestedThisLapMGUH float32
	ERSDeployedThisLap      float32
}

func decodeCarStatusData(r *Reader) CarStatusData {
	var d CarStatusData
	d.TractionControl = r.U8()
	d.AntiLockBrakes = r.U8()
	d.FuelMix = r.U8()
	d.FrontBrakeBias = r.U8()
	d.PitLimiterStatus = r.U8()
	d.FuelInTank = r.F32()
	d.FuelCapacity = r.F32()
	d.FuelRemainingLaps = r.F32()
	d.MaxRPM = r.U16()
	d.IdleRPM = r.U16()
	d.MaxGears = r.U8()
	d.DRSAllowed = r.U8()
	d.DRSActivationDistance = r.U16()
	for i := range d.TyresWear {
		d.TyresWear[i] = r.U8()
	}
	d.ActualTyreCompound = r.U8()
	d.VisualTyreCompound = r.U8()
	d.TyresAgeLaps = r.U8()
	for i := range d.TyresDamage {
		d.TyresDamage[i] = r.U8()
	}
	d.FrontLeftWingDamage = r.U8()
	d.FrontRightWingDamage = r.U8()
	d.RearWingDamage = r.U8()
	d.DRSFault = r.U8()
	d.EngineDamage = r.U8()
	d.GearBoxDamage = r.U8()
	d.VehicleFIAFlags = r.I8()
	d.ERSStoreEnergy = r.F32()
	d.ERSDeployMode = r.U8()
	d.ERSHarvestedThisLapMGUK = r.F32()
	d.ERSHarvestedThisLapMGUH = r.F32()
	d.ERSDeployedThisLap = r.F32()
	return d
}

func (d CarStatusData) fields() []Field {
	return []Field{
		{"tractionControl", d.TractionControl},
		{"antiLockBrakes", d.AntiLockBrakes},
		{"fuelMix", d.FuelMix},
		{"frontBrakeBias", d.FrontBrakeBias},
		{"pitLimiterStatus", d.PitLimiterStatus},
		{"fuelInTank", d.FuelInTank},
		{"fuelCapacity", d.FuelCapacity},
		{"fuelRemainingLaps", d.FuelRemainingLaps},
		{"maxRPM", d.MaxRPM},
		{"idleRPM", d.IdleRPM},
		{"maxGears", d.MaxGears},
		{"drsAllowed", d.DRSAllowed},
		{"drsActivationDistance", d.DRSActivationDistance},
		{"tyresWear", d.TyresWear[:]},
		{"actualTyreCompound", d.ActualTyreCompound},
		{"visualTyreCompound", d.VisualTyreCompound},
		{"tyresAgeLaps", d.TyresAgeLaps},
		{"tyresDamage", d.TyresDamage[:]},
		{"frontLeftWingDamage", d.FrontLeftWingDamage},
		{"frontRightWingDamage", d.FrontRightWingDamage},
		{"rearWingDamage", d.RearWingDamage},
		{"drsFault", d.DRSFault},
		{"engineDamage", d.EngineDamage},
		{"gearBoxDamage", d.GearBoxDamage},
		{"vehicleFiaFlags", d.VehicleFIAFlags},
		{"ersStoreEnergy", d.ERSStoreEnergy},
		{"ersDeployMode", d.ERSDeployMode},
		{"ersHarvestedThisLapMGUK", d.ERSHarvestedThisLapMGUK},
		{"ersHarvestedThisLapMGUH", d.ERSHarvestedThisLapMGUH},
		{"ersDeployedThisLap", d.ERSDeployedThisLap},
	}
}

// PacketCarStatusData details damage, fuel and ERS state for every car.
type PacketCarStatusData struct {
	Header        Header
	CarStatusData [NumCars]CarStatusData
}

func (p *PacketCarStatusData) PacketHeader() Header { return p.Header }

func decodeCarStatusV1(h Header, r *Reader) (Packet, error) {
	p := &PacketCarStatusData{Header: h}
	for i := range p.CarStatusData {
		p.CarStatusData[i] = decodeCarStatusData(r)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PacketCarStatusData) fields() []Field {
	return []Field{
		{"header", p.Header},
		{"carStatusData", recordSeq(p.CarStatusData[:])},
	}
}
