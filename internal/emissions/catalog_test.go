package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakes(t *testing.T) {
	list := Makes()
	require.Len(t, list, 5)

	names := make([]string, 0, len(list))
	for _, m := range list {
		assert.Equal(t, "vehicle_make", m.Type)
		names = append(names, m.Attributes.Name)
	}
	assert.Equal(t, []string{"Toyota", "Honda", "Ford", "BMW", "Tesla"}, names)
	assert.Equal(t, 12, list[0].Attributes.NumberOfModels)

	list[0].Attributes.Name = "changed"
	assert.Equal(t, "Toyota", Makes()[0].Attributes.Name)
}

func TestModels(t *testing.T) {
	list, err := Models("make-honda")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, Model{
		ID:         "honda-crv-2022",
		Type:       "vehicle_model",
		Attributes: ModelAttributes{Name: "CR-V", Year: 2022, VehicleMake: "Honda"},
	}, list[2])

	for _, m := range Makes() {
		models, err := Models(m.ID)
		require.NoError(t, err, m.ID)
		assert.NotEmpty(t, models, m.ID)
		for _, model := range models {
			assert.Equal(t, m.Attributes.Name, model.Attributes.VehicleMake)
		}
	}
}

func TestModels_UnknownMake(t *testing.T) {
	list, err := Models("make-lada")
	assert.ErrorIs(t, err, ErrUnknownMake)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
