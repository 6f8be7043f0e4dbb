// Package api exposes the lookup session and the vehicle registry over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/UnknownOlympus/pitstop/internal/mapview"
	"github.com/UnknownOlympus/pitstop/internal/models"
	"github.com/UnknownOlympus/pitstop/internal/service"
	"github.com/UnknownOlympus/pitstop/internal/vehicle"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Lookups is the lookup session as seen by the HTTP layer.
type Lookups interface {
	Submit(ctx context.Context, query string) (service.Outcome, error)
	Snapshot() service.Snapshot
}

// Handler serves the lookup and vehicle endpoints.
type Handler struct {
	lookups  Lookups
	vehicles *vehicle.Registry
	validate *validator.Validate
}

func NewHandler(lookups Lookups, vehicles *vehicle.Registry) *Handler {
	return &Handler{lookups: lookups, vehicles: vehicles, validate: validator.New()}
}

type lookupRequest struct {
	PostalCode string `json:"postal_code"`
}

type lookupResponse struct {
	Result   models.LookupResult  `json:"result"`
	Viewport models.ViewportState `json:"viewport"`
	Shops    []mapview.Shop       `json:"shops"`
}

type sessionResponse struct {
	service.Snapshot
	Shops []mapview.Shop `json:"shops"`
}

type mapQuery struct {
	Width  int `form:"width"  validate:"omitempty,min=1,max=8192"`
	Height int `form:"height" validate:"omitempty,min=1,max=8192"`
}

type vehicleRequest struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Trim  string `json:"trim"`
	VIN   string `json:"vin"`
}

type vehiclesResponse struct {
	Vehicles   []models.Vehicle `json:"vehicles"`
	SelectedID *uuid.UUID       `json:"selected_id"`
}

// SubmitLookup runs a postal code search.
// POST /api/v1/lookups
func (h *Handler) SubmitLookup(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	// A dispatched search runs to completion even if the client goes away.
	outcome, err := h.lookups.Submit(context.WithoutCancel(c.Request.Context()), req.PostalCode)
	if handleError(c, err) {
		return
	}

	c.JSON(http.StatusOK, lookupResponse{
		Result:   outcome.Result,
		Viewport: outcome.Viewport,
		Shops:    mapview.Shops(&outcome.Result),
	})
}

// CurrentLookup returns the session state.
// GET /api/v1/lookups/current
func (h *Handler) CurrentLookup(c *gin.Context) {
	snap := h.lookups.Snapshot()
	c.JSON(http.StatusOK, sessionResponse{Snapshot: snap, Shops: mapview.Shops(snap.Result)})
}

// MapLayer returns the map layer of the session as GeoJSON.
// GET /api/v1/map.geojson
func (h *Handler) MapLayer(c *gin.Context) {
	var q mapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(q); err != nil {
		respondError(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	snap := h.lookups.Snapshot()
	data, err := mapview.Build(snap.Viewport, snap.Result, q.Width, q.Height).MarshalJSON()
	if handleError(c, err) {
		return
	}

	c.Data(http.StatusOK, "application/geo+json", data)
}

// ListVehicles returns all vehicles and the selected one.
// GET /api/v1/vehicles
func (h *Handler) ListVehicles(c *gin.Context) {
	resp := vehiclesResponse{Vehicles: h.vehicles.List()}
	if sel, ok := h.vehicles.Selected(); ok {
		resp.SelectedID = &sel.ID
	}

	c.JSON(http.StatusOK, resp)
}

// CreateVehicle registers a vehicle.
// POST /api/v1/vehicles
func (h *Handler) CreateVehicle(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	created, err := h.vehicles.Add(models.Vehicle{
		Make:  req.Make,
		Model: req.Model,
		Year:  req.Year,
		Trim:  req.Trim,
		VIN:   req.VIN,
	})
	if handleError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, created)
}

// DeleteVehicle removes a vehicle.
// DELETE /api/v1/vehicles/:id
func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}

	if handleError(c, h.vehicles.Delete(id)) {
		return
	}

	c.Status(http.StatusNoContent)
}

// SelectVehicle marks a vehicle as selected.
// PUT /api/v1/vehicles/:id/select
func (h *Handler) SelectVehicle(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}

	if handleError(c, h.vehicles.Select(id)) {
		return
	}

	sel, _ := h.vehicles.Selected()
	c.JSON(http.StatusOK, sel)
}

func vehicleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.Nil, false
	}

	return id, true
}
