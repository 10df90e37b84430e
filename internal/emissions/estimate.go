package emissions

import (
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-emissions-dashboard/internal/common"
)

const (
	// DefaultFactor applies to models without a known factor, in kg CO2/km.
	DefaultFactor = 0.150

	// KmPerMile converts miles to kilometres.
	KmPerMile = 1.60934

	UnitKm = "km"
	UnitMi = "mi"
)

// factors are kg CO2 per km. Electric models include grid generation.
var factors = map[string]float64{
	"toyota-corolla-2020": 0.120,
	"toyota-camry-2021":   0.135,
	"honda-civic-2020":    0.118,
	"honda-accord-2021":   0.140,
	"toyota-rav4-2022":    0.150,
	"honda-crv-2022":      0.145,
	"toyota-prius-2021":   0.085,
	"tesla-model3-2022":   0.055,
	"tesla-models-2021":   0.065,
}

// Factor returns the emission factor for a model id.
func Factor(modelID string) float64 {
	if f, ok := factors[modelID]; ok {
		return f
	}
	return DefaultFactor
}

// Request asks for the emissions of one trip.
type Request struct {
	VehicleModelID string  `json:"vehicleModelId" validate:"required"`
	Distance       float64 `json:"distance" validate:"gt=0"`
	DistanceUnit   string  `json:"distanceUnit" validate:"omitempty,oneof=km mi"`
}

// EstimateAttributes carries the computed figures.
type EstimateAttributes struct {
	DistanceValue  float64   `json:"distance_value"`
	VehicleModelID string    `json:"vehicle_model_id"`
	DistanceUnit   string    `json:"distance_unit"`
	EstimatedAt    time.Time `json:"estimated_at"`
	CarbonKg       float64   `json:"carbon_kg"`
	CarbonG        int       `json:"carbon_g"`
	CarbonMt       float64   `json:"carbon_mt"`
}

// Estimate is a computed trip estimate in resource form.
type Estimate struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	Attributes EstimateAttributes `json:"attributes"`
}

// Estimator computes trip estimates.
type Estimator struct {
	now   func() time.Time
	newID func() string
}

// NewEstimator creates an Estimator using the wall clock and random ids.
func NewEstimator() *Estimator {
	return &Estimator{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Estimate computes the CO2 emitted for the trip. An empty unit means km.
func (e *Estimator) Estimate(req Request) Estimate {
	unit := req.DistanceUnit
	if unit == "" {
		unit = UnitKm
	}

	km := req.Distance
	if unit == UnitMi {
		km = req.Distance * KmPerMile
	}
	kg := Factor(req.VehicleModelID) * km

	return Estimate{
		ID:   "estimate-" + e.newID(),
		Type: "estimate",
		Attributes: EstimateAttributes{
			DistanceValue:  req.Distance,
			VehicleModelID: req.VehicleModelID,
			DistanceUnit:   unit,
			EstimatedAt:    e.now().UTC(),
			CarbonKg:       common.RoundTo(kg, 2),
			CarbonG:        common.Round(kg * 1000),
			CarbonMt:       common.RoundTo(kg*0.001, 2),
		},
	}
}

// Level grades an emission amount.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// Badge is the label shown next to an estimate.
type Badge struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// BadgeFor grades kg of CO2: below 5 is low, below 15 moderate, else high.
func BadgeFor(kg float64) Badge {
	switch {
	case kg < 5:
		return Badge{Level: LevelLow, Text: "🟢 Baixa Emissão"}
	case kg < 15:
		return Badge{Level: LevelModerate, Text: "🟡 Emissão Moderada"}
	default:
		return Badge{Level: LevelHigh, Text: "🔴 Alta Emissão"}
	}
}
