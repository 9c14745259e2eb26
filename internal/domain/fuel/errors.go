package fuel

import "errors"

var (
	ErrStationNotFound = errors.New("spbu not found")
	ErrUnknownFuelType = errors.New("unknown fuel type")
)
