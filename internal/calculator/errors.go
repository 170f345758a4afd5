package calculator

import "errors"

// sentinel errors for the analytics engine. callers match with errors.Is;
// the api layer maps ErrInvalidPortfolio to a client error and
// ErrPriceResolution to an upstream failure.
var (
	ErrInvalidPortfolio = errors.New("invalid portfolio")
	ErrPriceResolution  = errors.New("price resolution failed")
	ErrDegenerateSeries = errors.New("degenerate price series")
	ErrMisalignedSeries = errors.New("misaligned return series")
	ErrInsufficientData = errors.New("insufficient data")
)
