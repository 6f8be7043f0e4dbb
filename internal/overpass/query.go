package overpass

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/pitstop/internal/models"
	"github.com/paulmach/osm"
)

// DefaultRadiusMeters is the search radius around the resolved postal code.
const DefaultRadiusMeters = 5000

// Category is an OSM tag filter, e.g. shop=car_repair.
type Category struct {
	Key   string
	Value string
}

// CategoryCarRepair selects vehicle repair shops.
var CategoryCarRepair = Category{Key: "shop", Value: "car_repair"}

func (c Category) String() string {
	return c.Key + "=" + c.Value
}

// selectedTypes are the element kinds matched by a query. Ways and relations
// only carry a usable anchor through the server-side "out center" output.
var selectedTypes = []osm.Type{osm.TypeNode, osm.TypeWay, osm.TypeRelation}

// BuildQuery renders the Overpass QL for all elements tagged with category within
// radiusMeters of center, asking the server to compute centroids for ways and relations.
func BuildQuery(center models.Coordinates, radiusMeters int, category Category) string {
	lat := strconv.FormatFloat(center.Latitude, 'f', -1, 64)
	lon := strconv.FormatFloat(center.Longitude, 'f', -1, 64)

	var b strings.Builder
	b.WriteString("[out:json];\n(\n")
	for _, t := range selectedTypes {
		fmt.Fprintf(&b, "  %s[%q=%q](around:%d,%s,%s);\n", t, category.Key, category.Value, radiusMeters, lat, lon)
	}
	b.WriteString(");\nout center;\n")

	return b.String()
}
