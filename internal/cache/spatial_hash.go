// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package cache

import (
	"math"
	"sort"
	"sync"
)

// kmPerDegree approximates one degree of latitude.
const kmPerDegree = 111.0

// DistanceFunc returns the distance in meters between two lat/lon points.
type DistanceFunc func(lat1, lon1, lat2, lon2 float64) float64

// SpatialHashGrid divides geographic space into cells for fast proximity
// queries. Only cells near the query point are scanned, so a lookup is O(k)
// in the number of nearby entries rather than O(n).
type SpatialHashGrid[T any] struct {
	mu       sync.RWMutex
	cells    map[CellKey][]*SpatialEntry[T]
	entries  map[string]*SpatialEntry[T]
	cellSize float64 // degrees
	distance DistanceFunc
}

// CellKey represents a grid cell coordinate.
type CellKey struct {
	X, Y int
}

// SpatialEntry is an entry in the grid.
type SpatialEntry[T any] struct {
	ID       string
	Lat      float64
	Lon      float64
	Data     T
	Distance float64 // meters from the last query point; set on query results only
	cellKey  CellKey
}

// NewSpatialHashGrid creates a grid with approximately cellSizeKm cells.
// Distances are measured with distance, which must return meters.
func NewSpatialHashGrid[T any](cellSizeKm float64, distance DistanceFunc) *SpatialHashGrid[T] {
	if cellSizeKm <= 0 {
		cellSizeKm = 0.25
	}

	return &SpatialHashGrid[T]{
		cells:    make(map[CellKey][]*SpatialEntry[T]),
		entries:  make(map[string]*SpatialEntry[T]),
		cellSize: cellSizeKm / kmPerDegree,
		distance: distance,
	}
}

func (g *SpatialHashGrid[T]) cellKey(lat, lon float64) CellKey {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return CellKey{
		X: int(math.Floor(lon / g.cellSize)),
		Y: int(math.Floor(lat / g.cellSize)),
	}
}

// Insert adds or replaces an entry.
func (g *SpatialHashGrid[T]) Insert(id string, lat, lon float64, data T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.entries[id]; ok {
		g.removeFromCell(existing)
	}

	key := g.cellKey(lat, lon)
	entry := &SpatialEntry[T]{ID: id, Lat: lat, Lon: lon, Data: data, cellKey: key}
	g.cells[key] = append(g.cells[key], entry)
	g.entries[id] = entry
}

// QueryNearby returns copies of all entries within radiusMeters of the
// point, nearest first.
func (g *SpatialHashGrid[T]) QueryNearby(lat, lon, radiusMeters float64) []SpatialEntry[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	radiusKm := radiusMeters / 1000
	// Longitude degrees shrink with latitude; widen the scan accordingly.
	lonScale := math.Cos(lat * math.Pi / 180)
	if lonScale < 0.01 {
		lonScale = 0.01
	}
	cellsY := int(math.Ceil(radiusKm/kmPerDegree/g.cellSize)) + 1
	cellsX := int(math.Ceil(radiusKm/kmPerDegree/lonScale/g.cellSize)) + 1
	center := g.cellKey(lat, lon)

	var results []SpatialEntry[T]
	for dx := -cellsX; dx <= cellsX; dx++ {
		for dy := -cellsY; dy <= cellsY; dy++ {
			for _, entry := range g.cells[CellKey{X: center.X + dx, Y: center.Y + dy}] {
				d := g.distance(lat, lon, entry.Lat, entry.Lon)
				if d <= radiusMeters {
					found := *entry
					found.Distance = d
					results = append(results, found)
				}
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].ID < results[j].ID
	})
	return results
}

// Size returns the total number of entries.
func (g *SpatialHashGrid[T]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entries)
}

// NumCells returns the number of non-empty cells.
func (g *SpatialHashGrid[T]) NumCells() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.cells)
}

// removeFromCell must be called with the write lock held.
func (g *SpatialHashGrid[T]) removeFromCell(entry *SpatialEntry[T]) {
	cell := g.cells[entry.cellKey]
	for i, e := range cell {
		if e == entry {
			cell[i] = cell[len(cell)-1]
			cell = cell[:len(cell)-1]
			break
		}
	}
	if len(cell) == 0 {
		delete(g.cells, entry.cellKey)
		return
	}
	g.cells[entry.cellKey] = cell
}
