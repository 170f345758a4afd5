package calculator

import (
	"coindash/internal/domain"
	"fmt"
)

// NormalizeBenchmarks rebases the portfolio and the two benchmark return
// series to a common index starting at 100, zipped with a caller-supplied
// date axis. dates must have one more entry than the return series since
// day 0 carries no return.
func NormalizeBenchmarks(portfolio, btc, eth domain.ReturnSeries, dates []string) ([]domain.CumulativePoint, error) {
	if len(btc) != len(portfolio) || len(eth) != len(portfolio) {
		return nil, fmt.Errorf("benchmark series lengths %d/%d do not match portfolio length %d: %w", len(btc), len(eth), len(portfolio), ErrMisalignedSeries)
	}
	if len(dates) != len(portfolio)+1 {
		return nil, fmt.Errorf("date axis has %d entries for %d returns: %w", len(dates), len(portfolio), ErrMisalignedSeries)
	}

	points := make([]domain.CumulativePoint, len(dates))
	points[0] = domain.CumulativePoint{
		Date:      dates[0],
		Portfolio: 100.0,
		Btc:       100.0,
		Eth:       100.0,
	}

	for t := 1; t < len(dates); t++ {
		prev := points[t-1]
		points[t] = domain.CumulativePoint{
			Date:      dates[t],
			Portfolio: prev.Portfolio * (1 + portfolio[t-1]),
			Btc:       prev.Btc * (1 + btc[t-1]),
			Eth:       prev.Eth * (1 + eth[t-1]),
		}
	}

	return points, nil
}
