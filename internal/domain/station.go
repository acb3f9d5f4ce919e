package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrDuplicateStationID = errors.New("duplicate station id")
	ErrEmptyStationURL    = errors.New("station url is empty")
)

type Station struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	URL      string `json:"url" yaml:"url"`
	Logo     string `json:"logo,omitempty" yaml:"logo"`
	Category string `json:"category" yaml:"category"`
}

// Catalog is an ordered, read-only list of stations with unique ids.
type Catalog struct {
	stations []Station
	byID     map[int]int
}

func NewCatalog(stations []Station) (*Catalog, error) {
	c := &Catalog{
		stations: make([]Station, len(stations)),
		byID:     make(map[int]int, len(stations)),
	}
	for i, s := range stations {
		if s.URL == "" {
			return nil, fmt.Errorf("station %d (%s): %w", s.ID, s.Name, ErrEmptyStationURL)
		}
		if _, exists := c.byID[s.ID]; exists {
			return nil, fmt.Errorf("station %d: %w", s.ID, ErrDuplicateStationID)
		}
		c.byID[s.ID] = i
		c.stations[i] = s
	}
	return c, nil
}

// Stations returns a copy of the catalog in its original order.
func (c *Catalog) Stations() []Station {
	out := make([]Station, len(c.stations))
	copy(out, c.stations)
	return out
}

func (c *Catalog) Get(id int) (Station, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Station{}, false
	}
	return c.stations[i], true
}

func (c *Catalog) Len() int { return len(c.stations) }

type HistoryEntry struct {
	Station  Station
	PlayedAt time.Time
}
