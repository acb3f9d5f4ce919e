package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	stations := []Station{
		{ID: 1, Name: "Capital FM", URL: "http://a", Category: "Music"},
		{ID: 2, Name: "LBC", URL: "http://b", Category: "Talk"},
	}

	c, err := NewCatalog(stations)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	require.Equal(t, stations, c.Stations())

	got, ok := c.Get(2)
	require.True(t, ok)
	require.Equal(t, "LBC", got.Name)

	_, ok = c.Get(99)
	require.False(t, ok)

	out := c.Stations()
	out[0].Name = "mutated"
	first, _ := c.Get(1)
	require.Equal(t, "Capital FM", first.Name, "Stations must return a copy")
}

func TestNewCatalog_Invalid(t *testing.T) {
	_, err := NewCatalog([]Station{{ID: 1, Name: "A", URL: "http://a"}, {ID: 1, Name: "B", URL: "http://b"}})
	require.ErrorIs(t, err, ErrDuplicateStationID)

	_, err = NewCatalog([]Station{{ID: 1, Name: "A"}})
	require.ErrorIs(t, err, ErrEmptyStationURL)
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-20, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{150, 100},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, ClampVolume(tc.in))
	}
}

func TestPlayerState_CloneAndEqual(t *testing.T) {
	st := Station{ID: 1, Name: "A", URL: "http://a"}
	s := PlayerState{Status: StatusPlaying, CurrentStation: &st, Volume: 80}

	c := s.Clone()
	require.True(t, s.Equal(c))
	require.NotSame(t, s.CurrentStation, c.CurrentStation)

	c.CurrentStation.Name = "B"
	require.False(t, s.Equal(c))
	require.False(t, s.Equal(PlayerState{Status: StatusPlaying, Volume: 80}))
	require.True(t, PlayerState{Status: StatusIdle}.Equal(PlayerState{Status: StatusIdle}))
}

func TestStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusIdle, false},
		{StatusLoading, true},
		{StatusPlaying, true},
		{StatusPaused, false},
		{StatusError, false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.expected, tc.status.IsActive(), tc.status.String())
	}
}
