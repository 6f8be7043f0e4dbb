package vehicle_test

import (
	"testing"

	"github.com/UnknownOlympus/pitstop/internal/models"
	"github.com/UnknownOlympus/pitstop/internal/vehicle"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func civic() models.Vehicle {
	return models.Vehicle{Make: "Honda", Model: "Civic", Year: "2019", Trim: "EX"}
}

func TestRegistry_AddSelectsFirst(t *testing.T) {
	reg := vehicle.NewRegistry()

	_, ok := reg.Selected()
	assert.False(t, ok)

	first, err := reg.Add(civic())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)

	second, err := reg.Add(models.Vehicle{Make: "Ford", Model: "F-150", Year: "2021", VIN: " 1ftfw1e50mfa00001 "})
	require.NoError(t, err)
	assert.Equal(t, "1FTFW1E50MFA00001", second.VIN)

	sel, ok := reg.Selected()
	require.True(t, ok)
	assert.Equal(t, first, sel)

	assert.Equal(t, []models.Vehicle{first, second}, reg.List())
}

func TestRegistry_AddValidation(t *testing.T) {
	tests := []struct {
		name    string
		vehicle models.Vehicle
	}{
		{name: "missing make", vehicle: models.Vehicle{Model: "Civic", Year: "2019"}},
		{name: "missing model", vehicle: models.Vehicle{Make: "Honda", Year: "2019"}},
		{name: "blank year", vehicle: models.Vehicle{Make: "Honda", Model: "Civic", Year: "  "}},
		{name: "short year", vehicle: models.Vehicle{Make: "Honda", Model: "Civic", Year: "19"}},
		{name: "vin too long", vehicle: models.Vehicle{
			Make: "Honda", Model: "Civic", Year: "2019", VIN: "1HGCM82633A0043521234",
		}},
		{name: "vin with symbols", vehicle: models.Vehicle{
			Make: "Honda", Model: "Civic", Year: "2019", VIN: "1HGCM-82633",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := vehicle.NewRegistry()

			_, err := reg.Add(tt.vehicle)

			require.ErrorIs(t, err, vehicle.ErrInvalid)
			assert.Empty(t, reg.List())
		})
	}
}

func TestRegistry_DeleteSelectedReselectsFirst(t *testing.T) {
	reg := vehicle.NewRegistry()
	a, _ := reg.Add(civic())
	b, _ := reg.Add(civic())
	c, _ := reg.Add(civic())

	require.NoError(t, reg.Select(b.ID))
	require.NoError(t, reg.Delete(b.ID))

	sel, ok := reg.Selected()
	require.True(t, ok)
	assert.Equal(t, a.ID, sel.ID)

	require.NoError(t, reg.Delete(c.ID))
	sel, _ = reg.Selected()
	assert.Equal(t, a.ID, sel.ID, "deleting an unselected vehicle keeps the selection")

	require.NoError(t, reg.Delete(a.ID))
	_, ok = reg.Selected()
	assert.False(t, ok)
	assert.Empty(t, reg.List())

	d, _ := reg.Add(civic())
	sel, ok = reg.Selected()
	require.True(t, ok)
	assert.Equal(t, d.ID, sel.ID)
}

func TestRegistry_UnknownID(t *testing.T) {
	reg := vehicle.NewRegistry()
	_, _ = reg.Add(civic())

	require.ErrorIs(t, reg.Delete(uuid.New()), vehicle.ErrNotFound)
	require.ErrorIs(t, reg.Select(uuid.New()), vehicle.ErrNotFound)
	require.ErrorIs(t, reg.Select(uuid.Nil), vehicle.ErrNotFound)
	assert.Len(t, reg.List(), 1)
}

func TestRegistry_ListIsACopy(t *testing.T) {
	reg := vehicle.NewRegistry()
	_, _ = reg.Add(civic())

	list := reg.List()
	list[0].Make = "Mutated"

	assert.Equal(t, "Honda", reg.List()[0].Make)
}
