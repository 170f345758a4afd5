package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	t.Run("last price is the anchor, exactly", func(t *testing.T) {
		s := NewRandomWalkSynthesizer()

		prices, err := s.Synthesize("bitcoin", 65432.10, 30)
		require.NoError(t, err)

		require.Len(t, prices, 31)
		require.Equal(t, 65432.10, prices[30])
	})

	t.Run("all prices positive", func(t *testing.T) {
		s := NewRandomWalkSynthesizer()

		prices, err := s.Synthesize("ethereum", 3500, 365)
		require.NoError(t, err)

		for i, p := range prices {
			require.Greater(t, p, 0.0, "price at day %d", i)
		}
	})

	t.Run("same inputs yield the same series", func(t *testing.T) {
		s := NewRandomWalkSynthesizerWithNonce(42)

		first, err := s.Synthesize("bitcoin", 100, 30)
		require.NoError(t, err)
		second, err := s.Synthesize("bitcoin", 100, 30)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("different assets yield different paths", func(t *testing.T) {
		s := NewRandomWalkSynthesizerWithNonce(42)

		btc, err := s.Synthesize("bitcoin", 100, 30)
		require.NoError(t, err)
		eth, err := s.Synthesize("ethereum", 100, 30)
		require.NoError(t, err)

		require.NotEqual(t, btc, eth)
	})

	t.Run("zero-day window is rejected", func(t *testing.T) {
		s := NewRandomWalkSynthesizer()

		_, err := s.Synthesize("bitcoin", 100, 0)
		require.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("non-positive anchor price is rejected", func(t *testing.T) {
		s := NewRandomWalkSynthesizer()

		_, err := s.Synthesize("bitcoin", 0, 30)
		require.ErrorIs(t, err, ErrDegenerateSeries)

		_, err = s.Synthesize("bitcoin", -5, 30)
		require.ErrorIs(t, err, ErrDegenerateSeries)
	})
}
