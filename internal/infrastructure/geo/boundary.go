package geo

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

const metersPerMile = 1609.344

// atlantaCoords is a rough boundary of the Atlanta city limits as
// (lng, lat) vertices, walked counter-clockwise.
var atlantaCoords = []orb.Point{
	{-84.551, 33.790},
	{-84.540, 33.708},
	{-84.452, 33.648},
	{-84.395, 33.620},
	{-84.330, 33.640},
	{-84.289, 33.700},
	{-84.289, 33.795},
	{-84.340, 33.850},
	{-84.378, 33.887},
	{-84.430, 33.890},
	{-84.468, 33.881},
	{-84.551, 33.790},
}

// Boundary tests point membership against a fixed city polygon.
type Boundary struct {
	polygon orb.Polygon
}

// NewBoundary builds a boundary from (lng, lat) vertices. A polygon with
// fewer than three distinct vertices is a configuration defect.
func NewBoundary(coords []orb.Point) (*Boundary, error) {
	if len(coords) < 4 {
		return nil, fmt.Errorf("boundary polygon needs at least 3 vertices, got %d", len(coords)-1)
	}

	ring := orb.Ring(coords)
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}

	return &Boundary{polygon: orb.Polygon{ring}}, nil
}

// AtlantaBoundary returns the boundary for the configured Atlanta polygon.
func AtlantaBoundary() *Boundary {
	b, err := NewBoundary(atlantaCoords)
	if err != nil {
		// The built-in polygon is a compile-time constant; reaching this
		// means the configuration itself is broken.
		panic(err)
	}
	return b
}

func (b *Boundary) Contains(lat, lng float64) bool {
	return planar.PolygonContains(b.polygon, orb.Point{lng, lat})
}

// DistanceMiles returns the geodesic distance between two coordinates in
// miles. Miles are the application-wide distance unit.
func DistanceMiles(lat1, lng1, lat2, lng2 float64) float64 {
	meters := geo.DistanceHaversine(orb.Point{lng1, lat1}, orb.Point{lng2, lat2})
	return meters / metersPerMile
}

// MilesToMeters converts a radius in miles to meters for the places
// provider, which only accepts meters.
func MilesToMeters(miles float64) uint {
	if miles < 0 {
		return 0
	}
	return uint(miles * metersPerMile)
}
