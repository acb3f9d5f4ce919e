package search

import (
	"strings"
	"testing"

	"github.com/gabrielcapilla/radiogo/internal/domain"

	"github.com/stretchr/testify/require"
)

var testCatalog = []domain.Station{
	{ID: 1, Name: "Capital FM", URL: "http://capital", Category: "Music"},
	{ID: 2, Name: "LBC", URL: "http://lbc", Category: "Talk"},
	{ID: 3, Name: "talkSPORT", URL: "http://talksport", Category: "Sports"},
	{ID: 4, Name: "Jazz FM", URL: "http://jazz", Category: "Music"},
	{ID: 5, Name: "Times Radio", URL: "http://times", Category: "Talk"},
}

func ids(stations []domain.Station) []int {
	out := make([]int, len(stations))
	for i, s := range stations {
		out[i] = s.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	testCases := []struct {
		query    string
		expected []int
	}{
		{"", []int{1, 2, 3, 4, 5}},
		{"talk", []int{2, 3, 5}},
		{"TALK", []int{2, 3, 5}},
		{"fm", []int{1, 4}},
		{"music", []int{1, 4}},
		{"radio", []int{5}},
		{"nothing", []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			require.Equal(t, tc.expected, ids(Filter(testCatalog, tc.query)))
		})
	}
}

func TestFilter_Correctness(t *testing.T) {
	for _, q := range []string{"a", "Fm", "o", "sport", "x", "Tal"} {
		result := Filter(testCatalog, q)
		in := make(map[int]bool)
		for _, s := range result {
			in[s.ID] = true
		}
		lq := strings.ToLower(q)
		for _, s := range testCatalog {
			match := strings.Contains(strings.ToLower(s.Name), lq) || strings.Contains(strings.ToLower(s.Category), lq)
			require.Equal(t, match, in[s.ID], "query %q station %q", q, s.Name)
		}
	}
}

func TestFilter_DoesNotAliasCatalog(t *testing.T) {
	out := Filter(testCatalog, "")
	out[0].Name = "changed"
	require.Equal(t, "Capital FM", testCatalog[0].Name)
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory(testCatalog)

	require.Len(t, groups, 3)
	require.Equal(t, "Music", groups[0].Category)
	require.Equal(t, []int{1, 4}, ids(groups[0].Stations))
	require.Equal(t, "Sports", groups[1].Category)
	require.Equal(t, []int{3}, ids(groups[1].Stations))
	require.Equal(t, "Talk", groups[2].Category)
	require.Equal(t, []int{2, 5}, ids(groups[2].Stations))
}

func TestState(t *testing.T) {
	s := NewState(testCatalog)
	require.Equal(t, "", s.Query())
	require.Equal(t, []int{1, 2, 3, 4, 5}, ids(s.Visible()))

	groups, ok := s.Groups()
	require.True(t, ok)
	require.Len(t, groups, 3)

	require.True(t, s.SetQuery("talk"))
	require.False(t, s.SetQuery("talk"))
	require.Equal(t, []int{2, 3, 5}, ids(s.Visible()))

	_, ok = s.Groups()
	require.False(t, ok, "grouping is only offered without a query")

	require.True(t, s.SetQuery(""))
	require.Equal(t, []int{1, 2, 3, 4, 5}, ids(s.Visible()))
}
