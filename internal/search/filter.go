// Package search derives the visible part of the station catalog from a
// query string. Everything here is pure: no function keeps hidden state.
package search

import (
	"sort"
	"strings"

	"github.com/gabrielcapilla/radiogo/internal/domain"
)

// Filter returns, in catalog order, the stations whose name or category
// contains query case-insensitively. An empty query returns the whole catalog.
func Filter(stations []domain.Station, query string) []domain.Station {
	if query == "" {
		out := make([]domain.Station, len(stations))
		copy(out, stations)
		return out
	}

	q := strings.ToLower(query)
	out := make([]domain.Station, 0, len(stations))
	for _, s := range stations {
		if matches(s, q) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s domain.Station, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(s.Category), lowerQuery)
}

type Group struct {
	Category string           `json:"category"`
	Stations []domain.Station `json:"stations"`
}

// GroupByCategory groups stations by category. Categories are sorted
// lexically; stations keep their input order inside a group.
func GroupByCategory(stations []domain.Station) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, s := range stations {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, Group{Category: s.Category})
		}
		groups[i].Stations = append(groups[i].Stations, s)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Category < groups[b].Category
	})
	return groups
}
