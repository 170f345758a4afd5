package calculator

import (
	"coindash/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBenchmarks(t *testing.T) {
	t.Run("all series start at 100 and compound independently", func(t *testing.T) {
		points, err := NormalizeBenchmarks(
			domain.ReturnSeries{0.10, -0.10},
			domain.ReturnSeries{0.01, 0.01},
			domain.ReturnSeries{-0.02, 0.00},
			[]string{"2025-01-01", "2025-01-02", "2025-01-03"},
		)
		require.NoError(t, err)

		expected := []domain.CumulativePoint{
			{Date: "2025-01-01", Portfolio: 100, Btc: 100, Eth: 100},
			{Date: "2025-01-02", Portfolio: 110, Btc: 101, Eth: 98},
			{Date: "2025-01-03", Portfolio: 99, Btc: 102.01, Eth: 98},
		}
		diff := cmp.Diff(expected, points, cmpopts.EquateApprox(0, 1e-9))
		require.Empty(t, diff)
	})

	t.Run("benchmark length mismatch fails", func(t *testing.T) {
		_, err := NormalizeBenchmarks(
			domain.ReturnSeries{0.1, 0.1},
			domain.ReturnSeries{0.1},
			domain.ReturnSeries{0.1, 0.1},
			[]string{"a", "b", "c"},
		)
		require.ErrorIs(t, err, ErrMisalignedSeries)
	})

	t.Run("date axis length mismatch fails", func(t *testing.T) {
		_, err := NormalizeBenchmarks(
			domain.ReturnSeries{0.1, 0.1},
			domain.ReturnSeries{0.1, 0.1},
			domain.ReturnSeries{0.1, 0.1},
			[]string{"a", "b"},
		)
		require.ErrorIs(t, err, ErrMisalignedSeries)
	})
}
