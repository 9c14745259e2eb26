package dashboard

import "errors"

var (
	ErrInvalidGranularity = errors.New("period must be one of: harian, bulanan, tahunan")
	ErrStationIDRequired  = errors.New("station id is required")
)
