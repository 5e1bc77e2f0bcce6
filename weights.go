package main

// WeightMode selects how the moral weight fields are interpreted
type WeightMode string

const (
	WeightModeManual WeightMode = "manual" // Use the individual weight fields directly
	WeightModeSimple WeightMode = "simple" // Scale fixed reference weights by Multiplier
)

// InterventionKind distinguishes the three under-5 weight contexts. The same
// under-5 death can carry a different value depending on which program
// averted it, per the source methodology.
type InterventionKind int

const (
	KindMalaria InterventionKind = iota
	KindVitaminA
	KindVaccine
)

// MoralWeights governs how deaths at different ages are valued, plus the
// discount rate used by the multi-year present-value charities.
type MoralWeights struct {
	Under5Malaria  float64    `yaml:"under5_malaria" json:"under5_malaria"`
	Under5VitaminA float64    `yaml:"under5_vitamin_a" json:"under5_vitamin_a"`
	Under5Vaccine  float64    `yaml:"under5_vaccine" json:"under5_vaccine"`
	Age5to14       float64    `yaml:"age_5_14" json:"age_5_14"`
	Age15to49      float64    `yaml:"age_15_49" json:"age_15_49"`
	Age50to74      float64    `yaml:"age_50_74" json:"age_50_74"`
	DiscountRate   float64    `yaml:"discount_rate" json:"discount_rate"`
	Mode           WeightMode `yaml:"mode" json:"mode"`
	Multiplier     float64    `yaml:"multiplier" json:"multiplier"`
}

// Fixed population shares used to collapse the 5+ age buckets into one
// weight: 30% ages 5-14, 50% ages 15-49, 20% ages 50+. These are policy
// constants of the model, not user-configurable.
const (
	share5to14  = 0.30
	share15to49 = 0.50
	share50Plus = 0.20
)

// Reference weights for simple mode (scaled by the multiplier)
const (
	referenceUnder5Weight   = 116.25262
	referenceAge5PlusWeight = 73.1914
)

// DefaultMoralWeights returns the standard weights from the source
// cost-effectiveness analyses.
func DefaultMoralWeights() MoralWeights {
	return MoralWeights{
		Under5Malaria:  116.25262,
		Under5VitaminA: 118.73259,
		Under5Vaccine:  116.25262,
		Age5to14:       84.9,
		Age15to49:      73.51,
		Age50to74:      54.832,
		DiscountRate:   0.04,
		Mode:           WeightModeManual,
		Multiplier:     1.0,
	}
}

// Under5Weight resolves the under-5 weight for an intervention context.
// In simple mode the reference weight is scaled by the multiplier regardless
// of context.
func Under5Weight(w MoralWeights, kind InterventionKind) float64 {
	if w.Mode == WeightModeSimple {
		return referenceUnder5Weight * w.Multiplier
	}
	switch kind {
	case KindVitaminA:
		return w.Under5VitaminA
	case KindVaccine:
		return w.Under5Vaccine
	default:
		return w.Under5Malaria
	}
}

// Age5PlusWeight collapses the three 5+ age buckets into a single weight
// using the fixed population shares.
func Age5PlusWeight(w MoralWeights) float64 {
	if w.Mode == WeightModeSimple {
		return referenceAge5PlusWeight * w.Multiplier
	}
	return share5to14*w.Age5to14 + share15to49*w.Age15to49 + share50Plus*w.Age50to74
}

// WeightPreset is a named, immutable moral-weight configuration
type WeightPreset struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Weights     MoralWeights `json:"weights"`
}

// WeightPresets is the read-only preset registry, constructed once at startup
var WeightPresets = []WeightPreset{
	{
		ID:          "default",
		Name:        "Default",
		Description: "Standard weights from the source cost-effectiveness analyses",
		Weights:     DefaultMoralWeights(),
	},
	{
		ID:          "equal_lives",
		Name:        "Equal Lives",
		Description: "Every death carries the same value regardless of age",
		Weights: MoralWeights{
			Under5Malaria:  100,
			Under5VitaminA: 100,
			Under5Vaccine:  100,
			Age5to14:       100,
			Age15to49:      100,
			Age50to74:      100,
			DiscountRate:   0.04,
			Mode:           WeightModeManual,
			Multiplier:     1.0,
		},
	},
	{
		ID:          "higher_child_value",
		Name:        "Higher Child Value",
		Description: "Doubles the under-5 weights relative to the defaults",
		Weights: MoralWeights{
			Under5Malaria:  232.50524,
			Under5VitaminA: 237.46518,
			Under5Vaccine:  232.50524,
			Age5to14:       84.9,
			Age15to49:      73.51,
			Age50to74:      54.832,
			DiscountRate:   0.04,
			Mode:           WeightModeManual,
			Multiplier:     1.0,
		},
	},
	{
		ID:          "lower_discount",
		Name:        "Lower Discount Rate",
		Description: "Default weights with a 2% discount rate for future benefits",
		Weights: MoralWeights{
			Under5Malaria:  116.25262,
			Under5VitaminA: 118.73259,
			Under5Vaccine:  116.25262,
			Age5to14:       84.9,
			Age15to49:      73.51,
			Age50to74:      54.832,
			DiscountRate:   0.02,
			Mode:           WeightModeManual,
			Multiplier:     1.0,
		},
	},
}

// GetWeightPresetByID returns a preset by its ID, or nil if not found
func GetWeightPresetByID(id string) *WeightPreset {
	for i := range WeightPresets {
		if WeightPresets[i].ID == id {
			return &WeightPresets[i]
		}
	}
	return nil
}
