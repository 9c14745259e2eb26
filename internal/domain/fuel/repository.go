package fuel

import "context"

type StationRepository interface {
	ListStations(ctx context.Context) ([]Station, error)
}

type EquipmentRepository interface {
	ListTanks(ctx context.Context) ([]Tank, error)
	ListPumpUnits(ctx context.Context) ([]PumpUnit, error)
}
