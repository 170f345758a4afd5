package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDateAxis(t *testing.T) {
	dates := DateAxis(3, NewDate(2026, 3, 2))
	require.Equal(t, []string{
		"2026-02-27",
		"2026-02-28",
		"2026-03-01",
		"2026-03-02",
	}, dates)

	require.Equal(t, []string{"2026-03-02"}, DateAxis(0, NewDate(2026, 3, 2)))
}
