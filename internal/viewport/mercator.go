package viewport

import (
	"math"

	"github.com/UnknownOlympus/pitstop/internal/models"
)

const (
	tileSize = 256.0
	// maxLat is the latitude limit of the square Web-Mercator world.
	maxLat = 85.05112878
)

// project converts a coordinate into world pixel space at the given scale (tileSize * 2^zoom).
func project(c models.Coordinates, scale float64) (x, y float64) {
	lat := math.Max(-maxLat, math.Min(maxLat, c.Latitude))
	sinLat := math.Sin(lat * math.Pi / 180)

	x = (c.Longitude + 180) / 360 * scale
	y = (0.5 - math.Log((1+sinLat)/(1-sinLat))/(4*math.Pi)) * scale

	return x, y
}

// unproject is the inverse of project.
func unproject(x, y, scale float64) (lon, lat float64) {
	lon = x/scale*360 - 180

	mercatorY := math.Pi * (1 - 2*y/scale)
	lat = math.Atan(math.Sinh(mercatorY)) * 180 / math.Pi

	return lon, math.Max(-maxLat, math.Min(maxLat, lat))
}
