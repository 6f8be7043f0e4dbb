// Package mapview builds the read-only rendering model of a lookup session: a GeoJSON map
// layer and the textual shop list.
package mapview

import (
	"math"

	"github.com/UnknownOlympus/pitstop/internal/models"
	"github.com/UnknownOlympus/pitstop/internal/overpass"
	"github.com/UnknownOlympus/pitstop/internal/viewport"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// CenterLabel is the popup text of the searched location marker.
const CenterLabel = "Your location"

// Feature roles, stored in the "role" property.
const (
	RoleCenter    = "center"
	RoleHighlight = "highlight"
	RoleShop      = "shop"
)

// Default map size used for the collection bbox when the caller does not supply one.
const (
	DefaultWidthPx  = 1024
	DefaultHeightPx = 768
)

// Shop is one row of the textual list, in backend order.
type Shop struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Coordinates    models.Coordinates `json:"coordinates"`
	DistanceMeters float64            `json:"distance_m"`
}

// Build renders the map layer for the given viewport and result. A nil result produces
// an empty layer framed on the viewport.
func Build(state models.ViewportState, result *models.LookupResult, widthPx, heightPx int) *geojson.FeatureCollection {
	if widthPx <= 0 || heightPx <= 0 {
		widthPx, heightPx = DefaultWidthPx, DefaultHeightPx
	}

	fc := geojson.NewFeatureCollection()
	fc.BBox = geojson.NewBBox(viewport.Bounds(state, widthPx, heightPx))
	fc.ExtraMembers = geojson.Properties{
		"viewport": state,
		"tile":     viewport.Tile(state),
	}

	if result == nil {
		return fc
	}

	center := geojson.NewFeature(result.Center.Point())
	center.Properties["role"] = RoleCenter
	center.Properties["name"] = CenterLabel
	fc.Append(center)

	highlight := geojson.NewFeature(result.Center.Point())
	highlight.Properties["role"] = RoleHighlight
	highlight.Properties["radius_m"] = overpass.DefaultRadiusMeters
	fc.Append(highlight)

	for i, poi := range result.PointsOfInterest {
		f := geojson.NewFeature(poi.Coordinates.Point())
		f.ID = poi.ID
		f.Properties["role"] = RoleShop
		f.Properties["id"] = poi.ID
		f.Properties["name"] = poi.DisplayName
		f.Properties["index"] = i
		fc.Append(f)
	}

	return fc
}

// Shops returns the textual list with the distance of every shop from the searched center.
func Shops(result *models.LookupResult) []Shop {
	if result == nil {
		return []Shop{}
	}

	shops := make([]Shop, len(result.PointsOfInterest))
	for i, poi := range result.PointsOfInterest {
		shops[i] = Shop{
			ID:             poi.ID,
			Name:           poi.DisplayName,
			Coordinates:    poi.Coordinates,
			DistanceMeters: math.Round(geo.Distance(result.Center.Point(), poi.Coordinates.Point())),
		}
	}

	return shops
}
