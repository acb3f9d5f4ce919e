package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/playback"
	"github.com/gabrielcapilla/radiogo/internal/search"

	"github.com/gin-gonic/gin"
)

// Player is the serialized playback loop as seen by the API.
type Player interface {
	Dispatch(ctx context.Context, intent playback.Intent) (domain.PlayerState, error)
	Snapshot() domain.PlayerState
}

// API handles HTTP control endpoints.
type API struct {
	player  Player
	catalog *domain.Catalog
}

// NewAPI creates a new API handler.
func NewAPI(player Player, catalog *domain.Catalog) *API {
	return &API{
		player:  player,
		catalog: catalog,
	}
}

// VolumeRequest is the request body for the volume endpoint.
type VolumeRequest struct {
	Level *int `json:"level" binding:"required"`
}

// StationsResponse is the response for the stations endpoint.
type StationsResponse struct {
	Query    string           `json:"query"`
	Count    int              `json:"count"`
	Stations []domain.Station `json:"stations"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Stations lists the catalog filtered by the optional q parameter.
func (a *API) Stations(c *gin.Context) {
	q := c.Query("q")
	stations := search.Filter(a.catalog.Stations(), q)
	c.JSON(http.StatusOK, StationsResponse{Query: q, Count: len(stations), Stations: stations})
}

// Groups lists the whole catalog grouped by category.
func (a *API) Groups(c *gin.Context) {
	c.JSON(http.StatusOK, search.GroupByCategory(a.catalog.Stations()))
}

// State returns the current player snapshot.
func (a *API) State(c *gin.Context) {
	c.JSON(http.StatusOK, a.player.Snapshot())
}

// Play selects a station and starts loading it.
func (a *API) Play(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid station id"})
		return
	}
	a.dispatch(c, playback.SelectStation{ID: id})
}

// Toggle pauses or resumes playback.
func (a *API) Toggle(c *gin.Context) {
	a.dispatch(c, playback.TogglePlayback{})
}

// Volume sets the playback volume; out of range levels are clamped.
func (a *API) Volume(c *gin.Context) {
	var req VolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	a.dispatch(c, playback.SetVolume{Level: *req.Level})
}

func (a *API) dispatch(c *gin.Context, intent playback.Intent) {
	state, err := a.player.Dispatch(c.Request.Context(), intent)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, state)
	case errors.Is(err, playback.ErrUnknownStation):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, playback.ErrLoopStopped):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
