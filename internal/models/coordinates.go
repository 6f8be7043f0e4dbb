package models

import "github.com/paulmach/orb"

// Coordinates represents a geographical point defined by its longitude and latitude (WGS84 degrees).
type Coordinates struct {
	Longitude float64 `json:"lon"` // Longitude of the geographical point.
	Latitude  float64 `json:"lat"` // Latitude of the geographical point.
}

// Point returns the coordinates as an orb.Point, which is ordered [lon, lat].
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// FromPoint converts an orb.Point back into Coordinates.
func FromPoint(p orb.Point) Coordinates {
	return Coordinates{Longitude: p.Lon(), Latitude: p.Lat()}
}
