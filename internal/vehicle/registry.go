// Package vehicle keeps the user's vehicles and which one is currently selected.
package vehicle

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/UnknownOlympus/pitstop/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no vehicle has the given id.
	ErrNotFound = errors.New("vehicle not found")
	// ErrInvalid is returned when a vehicle fails field validation.
	ErrInvalid = errors.New("invalid vehicle")
)

// Registry is an in-memory, ordered list of vehicles. The zero value is not usable; call NewRegistry.
type Registry struct {
	validate *validator.Validate

	mu       sync.RWMutex
	vehicles []models.Vehicle
	selected uuid.UUID
}

func NewRegistry() *Registry {
	return &Registry{validate: validator.New()}
}

// Add validates the vehicle, assigns it a fresh id and appends it. The first vehicle added
// to an empty selection becomes selected.
func (r *Registry) Add(v models.Vehicle) (models.Vehicle, error) {
	v.Make = strings.TrimSpace(v.Make)
	v.Model = strings.TrimSpace(v.Model)
	v.Year = strings.TrimSpace(v.Year)
	v.Trim = strings.TrimSpace(v.Trim)
	v.VIN = strings.ToUpper(strings.TrimSpace(v.VIN))

	if err := r.validate.Struct(v); err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	v.ID = uuid.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.vehicles = append(r.vehicles, v)
	if r.selected == uuid.Nil {
		r.selected = v.ID
	}

	return v, nil
}

// Delete removes a vehicle. Deleting the selected vehicle selects the first remaining one,
// or nothing when the list becomes empty.
func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	r.vehicles = slices.Delete(r.vehicles, idx, idx+1)
	if r.selected == id {
		r.selected = uuid.Nil
		if len(r.vehicles) > 0 {
			r.selected = r.vehicles[0].ID
		}
	}

	return nil
}

// Select marks an existing vehicle as selected.
func (r *Registry) Select(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(id) < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	r.selected = id

	return nil
}

// List returns the vehicles in insertion order.
func (r *Registry) List() []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.vehicles)
}

// Selected returns the selected vehicle, if any.
func (r *Registry) Selected() (models.Vehicle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx := r.indexOf(r.selected); idx >= 0 {
		return r.vehicles[idx], true
	}

	return models.Vehicle{}, false
}

func (r *Registry) indexOf(id uuid.UUID) int {
	if id == uuid.Nil {
		return -1
	}
	return slices.IndexFunc(r.vehicles, func(v models.Vehicle) bool { return v.ID == id })
}
