// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package cache

import (
	"fmt"
	"math"
	"sync"
	"testing"
)

// testDistance is an equirectangular approximation; accurate enough at campus scale.
func testDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const r = 6371000.0
	x := (lon2 - lon1) * math.Pi / 180 * math.Cos((lat1+lat2)/2*math.Pi/180)
	y := (lat2 - lat1) * math.Pi / 180
	return math.Sqrt(x*x+y*y) * r
}

func TestSpatialHashGrid_BasicOperations(t *testing.T) {
	grid := NewSpatialHashGrid[string](0.25, testDistance)

	grid.Insert("library", 52.2053, 0.1218, "Library")
	grid.Insert("physics", 52.2090, 0.0920, "Physics")

	if grid.Size() != 2 {
		t.Errorf("Size() = %d, want 2", grid.Size())
	}
	if grid.NumCells() < 1 {
		t.Errorf("NumCells() = %d", grid.NumCells())
	}
}

func TestSpatialHashGrid_Update(t *testing.T) {
	grid := NewSpatialHashGrid[int](0.25, testDistance)

	grid.Insert("a", 52.0, 0.0, 1)
	grid.Insert("a", 53.0, 1.0, 2)

	if grid.Size() != 1 {
		t.Errorf("Size() = %d, want 1 after update", grid.Size())
	}
	if got := grid.QueryNearby(52.0, 0.0, 500); len(got) != 0 {
		t.Errorf("old position still returned: %+v", got)
	}
	got := grid.QueryNearby(53.0, 1.0, 500)
	if len(got) != 1 || got[0].Data != 2 {
		t.Errorf("QueryNearby at new position = %+v", got)
	}
}

func TestSpatialHashGrid_SizeAndCells(t *testing.T) {
	grid := NewSpatialHashGrid[int](0.25, testDistance)
	grid.Insert("a", 52.0001, 0.0001, 1)
	grid.Insert("b", 52.0005, 0.0001, 2)
	grid.Insert("c", 53.0001, 0.0001, 3)
	// Replacing keeps one entry per ID and drops the emptied cell.
	grid.Insert("c", 52.0003, 0.0001, 4)

	if grid.Size() != 3 {
		t.Errorf("Size() = %d, want 3", grid.Size())
	}
	if grid.NumCells() != 1 {
		t.Errorf("NumCells() = %d, want 1", grid.NumCells())
	}
}

func TestSpatialHashGrid_QueryNearby(t *testing.T) {
	grid := NewSpatialHashGrid[int](0.25, testDistance)

	// Roughly 0.001 deg lat = 111 m
	grid.Insert("near", 52.2001, 0.1200, 1)
	grid.Insert("mid", 52.2030, 0.1200, 2)
	grid.Insert("far", 52.2300, 0.1200, 3)

	got := grid.QueryNearby(52.2000, 0.1200, 500)
	if len(got) != 2 {
		t.Fatalf("QueryNearby returned %d entries, want 2", len(got))
	}
	if got[0].ID != "near" || got[1].ID != "mid" {
		t.Errorf("results not sorted by distance: %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].Distance <= 0 || got[0].Distance > got[1].Distance {
		t.Errorf("unexpected distances: %f, %f", got[0].Distance, got[1].Distance)
	}
}

func TestSpatialHashGrid_QuerySpansCells(t *testing.T) {
	// Small cells force the query to walk neighbouring cells.
	grid := NewSpatialHashGrid[int](0.05, testDistance)
	grid.Insert("east", 52.2000, 0.1250, 1)

	got := grid.QueryNearby(52.2000, 0.1200, 1000)
	if len(got) != 1 {
		t.Errorf("QueryNearby across cells returned %d entries, want 1", len(got))
	}
}

func TestSpatialHashGrid_Concurrent(t *testing.T) {
	grid := NewSpatialHashGrid[int](0.25, testDistance)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				grid.Insert(fmt.Sprintf("%d-%d", n, j), 52.2+float64(j)*0.0001, 0.12, j)
				grid.QueryNearby(52.2, 0.12, 200)
			}
		}(i)
	}
	wg.Wait()

	if grid.Size() != 500 {
		t.Errorf("Size() = %d, want 500", grid.Size())
	}
}
