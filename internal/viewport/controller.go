// Package viewport owns the visible map region of the lookup session.
package viewport

import (
	"math"
	"sync"

	"github.com/UnknownOlympus/pitstop/internal/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// DefaultZoom is the zoom level used for the lifetime of a session.
const DefaultZoom = 13

// DefaultCenter is shown before the first successful lookup.
var DefaultCenter = models.Coordinates{Latitude: 51.505, Longitude: -0.09}

// Reader is the read-only view handed to the rendering layer.
type Reader interface {
	CurrentState() models.ViewportState
}

// Controller holds the viewport state. Recenter is its only mutator.
type Controller struct {
	mu    sync.RWMutex
	state models.ViewportState
}

// NewController creates a controller centered on DefaultCenter at DefaultZoom.
func NewController() *Controller {
	return NewControllerAt(DefaultCenter, DefaultZoom)
}

// NewControllerAt creates a controller with an explicit initial center and fixed zoom.
func NewControllerAt(center models.Coordinates, zoom int) *Controller {
	return &Controller{state: models.ViewportState{Center: center, Zoom: zoom}}
}

// Recenter moves the viewport to the given coordinate. Zoom is left unchanged.
func (c *Controller) Recenter(center models.Coordinates) {
	c.mu.Lock()
	c.state.Center = center
	c.mu.Unlock()
}

// CurrentState returns a copy of the viewport state.
func (c *Controller) CurrentState() models.ViewportState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// Tile returns the map tile containing the viewport center.
func Tile(state models.ViewportState) maptile.Tile {
	return maptile.At(state.Center.Point(), maptile.Zoom(state.Zoom))
}

// Bounds returns the geographic region visible in a widthPx x heightPx map
// rendered with 256px Web-Mercator tiles around the viewport center.
func Bounds(state models.ViewportState, widthPx, heightPx int) orb.Bound {
	scale := tileSize * math.Exp2(float64(state.Zoom))

	cx, cy := project(state.Center, scale)
	halfW, halfH := float64(widthPx)/2, float64(heightPx)/2

	west, north := unproject(cx-halfW, cy-halfH, scale)
	east, south := unproject(cx+halfW, cy+halfH, scale)

	return orb.Bound{Min: orb.Point{west, south}, Max: orb.Point{east, north}}
}
