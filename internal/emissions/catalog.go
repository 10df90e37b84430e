// Package emissions serves the vehicle catalog and CO2 estimates for the
// trip calculator.
package emissions

import (
	"errors"
	"slices"
)

// ErrUnknownMake is returned for a make id that is not in the catalog.
var ErrUnknownMake = errors.New("unknown vehicle make")

// MakeAttributes describes a vehicle make.
type MakeAttributes struct {
	Name           string `json:"name"`
	NumberOfModels int    `json:"number_of_models"`
}

// Make is a catalog entry in resource form.
type Make struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Attributes MakeAttributes `json:"attributes"`
}

// ModelAttributes describes a vehicle model.
type ModelAttributes struct {
	Name        string `json:"name"`
	Year        int    `json:"year"`
	VehicleMake string `json:"vehicle_make"`
}

// Model is a catalog entry in resource form.
type Model struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes ModelAttributes `json:"attributes"`
}

func newMake(id, name string, models int) Make {
	return Make{ID: id, Type: "vehicle_make", Attributes: MakeAttributes{Name: name, NumberOfModels: models}}
}

func newModel(id, name string, year int, makeName string) Model {
	return Model{ID: id, Type: "vehicle_model", Attributes: ModelAttributes{Name: name, Year: year, VehicleMake: makeName}}
}

// number_of_models is the size of the full upstream catalog, not of the
// subset listed below.
var makes = []Make{
	newMake("make-toyota", "Toyota", 12),
	newMake("make-honda", "Honda", 10),
	newMake("make-ford", "Ford", 15),
	newMake("make-bmw", "BMW", 8),
	newMake("make-tesla", "Tesla", 6),
}

var models = map[string][]Model{
	"make-toyota": {
		newModel("toyota-corolla-2020", "Corolla", 2020, "Toyota"),
		newModel("toyota-camry-2021", "Camry", 2021, "Toyota"),
		newModel("toyota-rav4-2022", "RAV4", 2022, "Toyota"),
		newModel("toyota-prius-2021", "Prius", 2021, "Toyota"),
	},
	"make-honda": {
		newModel("honda-civic-2020", "Civic", 2020, "Honda"),
		newModel("honda-accord-2021", "Accord", 2021, "Honda"),
		newModel("honda-crv-2022", "CR-V", 2022, "Honda"),
	},
	"make-ford": {
		newModel("ford-f150-2022", "F-150", 2022, "Ford"),
		newModel("ford-mustang-2021", "Mustang", 2021, "Ford"),
		newModel("ford-escape-2020", "Escape", 2020, "Ford"),
		newModel("ford-bronco-2023", "Bronco", 2023, "Ford"),
	},
	"make-bmw": {
		newModel("bmw-3series-2021", "3 Series", 2021, "BMW"),
		newModel("bmw-x5-2022", "X5", 2022, "BMW"),
		newModel("bmw-i4-2023", "i4", 2023, "BMW"),
		newModel("bmw-x3-2020", "X3", 2020, "BMW"),
	},
	"make-tesla": {
		newModel("tesla-model3-2022", "Model 3", 2022, "Tesla"),
		newModel("tesla-models-2021", "Model S", 2021, "Tesla"),
		newModel("tesla-modelx-2020", "Model X", 2020, "Tesla"),
		newModel("tesla-modely-2023", "Model Y", 2023, "Tesla"),
	},
}

// Makes lists every make in catalog order.
func Makes() []Make {
	return slices.Clone(makes)
}

// Models lists the models of a make. An unknown make yields an empty list
// together with ErrUnknownMake.
func Models(makeID string) ([]Model, error) {
	list, ok := models[makeID]
	if !ok {
		return []Model{}, ErrUnknownMake
	}
	return slices.Clone(list), nil
}
