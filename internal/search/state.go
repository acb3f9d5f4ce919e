package search

import "github.com/gabrielcapilla/radiogo/internal/domain"

// State holds the current query. The visible stations are recomputed on
// every query change and never edited directly.
type State struct {
	catalog []domain.Station
	query   string
	visible []domain.Station
}

func NewState(catalog []domain.Station) *State {
	s := &State{catalog: catalog}
	s.visible = Filter(catalog, "")
	return s
}

func (s *State) Query() string { return s.query }

// SetQuery updates the query and reports whether it changed.
func (s *State) SetQuery(q string) bool {
	if q == s.query {
		return false
	}
	s.query = q
	s.visible = Filter(s.catalog, q)
	return true
}

func (s *State) Visible() []domain.Station {
	out := make([]domain.Station, len(s.visible))
	copy(out, s.visible)
	return out
}

// Groups returns the category view. It is only available without a query.
func (s *State) Groups() ([]Group, bool) {
	if s.query != "" {
		return nil, false
	}
	return GroupByCategory(s.visible), true
}
