// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/openday/internal/cache"
	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/models"
)

// DefaultCellSizeKm is the spatial grid resolution.
const DefaultCellSizeKm = 0.25

// Snapshot is the on-disk catalogue layout.
type Snapshot struct {
	Locations []models.Location     `json:"locations" yaml:"locations"`
	Programs  []models.StudyProgram `json:"programs" yaml:"programs"`
	Events    []models.Event        `json:"events" yaml:"events"`
}

// NearbyLocation is a building with its distance from a query point.
type NearbyLocation struct {
	Location       models.Location `json:"location"`
	DistanceMeters float64         `json:"distance_meters"`
}

// Catalog is an immutable, indexed catalogue. It implements
// models.EventLookup and models.LocationLookup and is safe for concurrent
// reads.
type Catalog struct {
	events    []models.Event
	eventIdx  map[int64]int
	locations []models.Location
	locIdx    map[int64]int
	programs  []models.StudyProgram
	progIdx   map[int64]int
	grid      *cache.SpatialHashGrid[int64]
}

// New validates snap and builds the indexes. cellSizeKm <= 0 uses
// DefaultCellSizeKm.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(snap Snapshot, cellSizeKm float64, logger zerolog.Logger) (*Catalog, error) {
	if cellSizeKm <= 0 {
		cellSizeKm = DefaultCellSizeKm
	}
	log := logger.With().Str("component", "catalog").Logger()

	c := &Catalog{
		locIdx:   make(map[int64]int, len(snap.Locations)),
		progIdx:  make(map[int64]int, len(snap.Programs)),
		eventIdx: make(map[int64]int, len(snap.Events)),
		grid:     cache.NewSpatialHashGrid[int64](cellSizeKm, geo.HaversineMeters),
	}

	var errs []error

	for _, loc := range snap.Locations {
		if _, dup := c.locIdx[loc.ID]; dup {
			errs = append(errs, fmt.Errorf("location %d: duplicate id", loc.ID))
			continue
		}
		if strings.TrimSpace(loc.Name) == "" {
			errs = append(errs, fmt.Errorf("location %d: name is required", loc.ID))
		}
		if !loc.Coordinate().Valid() {
			errs = append(errs, fmt.Errorf("location %d: coordinates %s out of range", loc.ID, loc.Coordinate()))
			continue
		}
		loc.EventCount = nil
		c.locIdx[loc.ID] = len(c.locations)
		c.locations = append(c.locations, loc)
	}

	for _, p := range snap.Programs {
		if _, dup := c.progIdx[p.ID]; dup {
			errs = append(errs, fmt.Errorf("program %d: duplicate id", p.ID))
			continue
		}
		c.progIdx[p.ID] = len(c.programs)
		c.programs = append(c.programs, p)
	}

	eventCounts := make(map[int64]int)
	for _, e := range snap.Events {
		if _, dup := c.eventIdx[e.ID]; dup {
			errs = append(errs, fmt.Errorf("event %d: duplicate id", e.ID))
			continue
		}
		if e.Category == "" {
			e.Category = models.CategoryOther
		}
		cat, err := models.ParseCategory(string(e.Category))
		if err != nil {
			errs = append(errs, fmt.Errorf("event %d: %w", e.ID, err))
			continue
		}
		e.Category = cat
		if (e.Start == nil) != (e.End == nil) {
			log.Warn().Int64("event_id", e.ID).Msg("Event has only one of start/end; treating as untimed")
			e.Start, e.End = nil, nil
		}
		if e.Start != nil && e.End.Before(*e.Start) {
			errs = append(errs, fmt.Errorf("event %d: end_time before start_time", e.ID))
			continue
		}
		if e.LocationID != nil {
			if _, ok := c.locIdx[*e.LocationID]; ok {
				eventCounts[*e.LocationID]++
			} else {
				log.Warn().Int64("event_id", e.ID).Int64("location_id", *e.LocationID).Msg("Event references unknown location")
			}
		}
		c.eventIdx[e.ID] = len(c.events)
		c.events = append(c.events, e)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}

	for i := range c.locations {
		n := eventCounts[c.locations[i].ID]
		c.locations[i].EventCount = &n
		loc := c.locations[i]
		c.grid.Insert(strconv.FormatInt(loc.ID, 10), loc.Latitude, loc.Longitude, loc.ID)
	}

	log.Info().
		Int("events", len(c.events)).
		Int("locations", len(c.locations)).
		Int("programs", len(c.programs)).
		Int("indexed_buildings", c.grid.Size()).
		Int("grid_cells", c.grid.NumCells()).
		Msg("Catalog loaded")

	return c, nil
}

// Event implements models.EventLookup.
func (c *Catalog) Event(id int64) (models.Event, bool) {
	i, ok := c.eventIdx[id]
	if !ok {
		return models.Event{}, false
	}
	return c.events[i], true
}

// Events returns all events in catalogue order.
func (c *Catalog) Events() []models.Event {
	return append([]models.Event(nil), c.events...)
}

// EventsByIDs resolves ids in order, reporting unknown IDs separately.
func (c *Catalog) EventsByIDs(ids []int64) (found []models.Event, missing []int64) {
	found = make([]models.Event, 0, len(ids))
	for _, id := range ids {
		if e, ok := c.Event(id); ok {
			found = append(found, e)
		} else {
			missing = append(missing, id)
		}
	}
	return found, missing
}

// EventsInCatalogOrder resolves ids to events in catalogue order. Repeated
// and unknown IDs are dropped.
func (c *Catalog) EventsInCatalogOrder(ids []int64) []models.Event {
	idx := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		i, ok := c.eventIdx[id]
		if !ok {
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		idx = append(idx, i)
	}
	sort.Ints(idx)

	out := make([]models.Event, len(idx))
	for n, i := range idx {
		out[n] = c.events[i]
	}
	return out
}

// Location implements models.LocationLookup.
func (c *Catalog) Location(id int64) (models.Location, bool) {
	i, ok := c.locIdx[id]
	if !ok {
		return models.Location{}, false
	}
	return c.locations[i], true
}

// Locations returns all buildings in catalogue order.
func (c *Catalog) Locations() []models.Location {
	return append([]models.Location(nil), c.locations...)
}

// LocationByName matches a building's name or short name, ignoring case
// and surrounding space.
func (c *Catalog) LocationByName(name string) (models.Location, bool) {
	needle := strings.TrimSpace(name)
	if needle == "" {
		return models.Location{}, false
	}
	for _, loc := range c.locations {
		if strings.EqualFold(loc.Name, needle) || (loc.ShortName != "" && strings.EqualFold(loc.ShortName, needle)) {
			return loc, true
		}
	}
	return models.Location{}, false
}

// Program returns a study program by ID.
func (c *Catalog) Program(id int64) (models.StudyProgram, bool) {
	i, ok := c.progIdx[id]
	if !ok {
		return models.StudyProgram{}, false
	}
	return c.programs[i], true
}

// Programs returns all study programs sorted by name.
func (c *Catalog) Programs() []models.StudyProgram {
	out := append([]models.StudyProgram(nil), c.programs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ProgramNames maps program IDs to names.
func (c *Catalog) ProgramNames() map[int64]string {
	out := make(map[int64]string, len(c.programs))
	for _, p := range c.programs {
		out[p.ID] = p.Name
	}
	return out
}

// Nearby returns buildings within radiusMeters of coord, nearest first.
func (c *Catalog) Nearby(coord geo.Coordinate, radiusMeters float64) []NearbyLocation {
	if radiusMeters <= 0 {
		return []NearbyLocation{}
	}
	hits := c.grid.QueryNearby(coord.Latitude, coord.Longitude, radiusMeters)
	out := make([]NearbyLocation, 0, len(hits))
	for _, h := range hits {
		if loc, ok := c.Location(h.Data); ok {
			out = append(out, NearbyLocation{Location: loc, DistanceMeters: h.Distance})
		}
	}
	return out
}
