package models

import "github.com/paulmach/osm"

// FeatureKind discriminates the geometry carried by a RawFeature.
type FeatureKind int

const (
	// FeatureKindPoint is a feature anchored by its own lat/lon (OSM nodes).
	FeatureKindPoint FeatureKind = iota
	// FeatureKindArea is a way or relation anchored by a backend-computed centroid.
	FeatureKindArea
)

// String implements fmt.Stringer.
func (k FeatureKind) String() string {
	switch k {
	case FeatureKindPoint:
		return "point"
	case FeatureKindArea:
		return "area"
	default:
		return "unknown"
	}
}

// RawFeature is a spatial backend match before normalization.
// Point is set for FeatureKindPoint, Centroid for FeatureKindArea; either may be nil
// when the backend omitted the coordinates.
type RawFeature struct {
	Kind     FeatureKind
	Type     osm.Type // node, way or relation
	ID       int64
	HasID    bool
	Point    *Coordinates
	Centroid *Coordinates
	Name     string
}
