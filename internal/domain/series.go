package domain

// PriceSeries is an ordered daily price path. Index 0 is the oldest day;
// the last element is the asset's real current price.
type PriceSeries []float64

// ReturnSeries holds daily simple returns derived from a PriceSeries. It
// is one element shorter than the price series it came from and is never
// mutated after creation.
type ReturnSeries []float64
