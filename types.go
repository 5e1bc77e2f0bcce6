package main

import (
	"encoding/json"
	"math"
)

// BenchmarkValuePerDollar is the value generated per dollar by an
// unconditional cash transfer (units of value per dollar). Every charity's
// cost-effectiveness is expressed as a multiple of this. The constant is
// shared by all six models and is not charity-specific.
const BenchmarkValuePerDollar = 0.00333

// CharityType identifies one of the six supported intervention models
type CharityType int

const (
	CharityNets         CharityType = iota // Malaria net (ITN) distribution
	CharitySMC                             // Seasonal malaria chemoprevention
	CharityVitaminA                        // Vitamin A supplementation
	CharityVaccination                     // Incentivized childhood vaccination
	CharityCashTransfer                    // Unconditional cash transfers
	CharityDeworming                       // Mass school-based deworming
)

// AllCharityTypes lists every charity type in display order
var AllCharityTypes = []CharityType{
	CharityNets,
	CharitySMC,
	CharityVitaminA,
	CharityVaccination,
	CharityCashTransfer,
	CharityDeworming,
}

func (c CharityType) String() string {
	switch c {
	case CharityNets:
		return "Net Distribution"
	case CharitySMC:
		return "Seasonal Chemoprevention"
	case CharityVitaminA:
		return "Vitamin A Supplementation"
	case CharityVaccination:
		return "Incentivized Vaccination"
	case CharityCashTransfer:
		return "Cash Transfer"
	case CharityDeworming:
		return "Deworming"
	default:
		return "Unknown"
	}
}

// ID returns the stable machine identifier used in config files and the API
func (c CharityType) ID() string {
	switch c {
	case CharityNets:
		return "nets"
	case CharitySMC:
		return "smc"
	case CharityVitaminA:
		return "vitamin_a"
	case CharityVaccination:
		return "vaccination"
	case CharityCashTransfer:
		return "cash_transfer"
	case CharityDeworming:
		return "deworming"
	default:
		return "unknown"
	}
}

// ParseCharityType returns the charity type for a machine identifier
func ParseCharityType(id string) (CharityType, bool) {
	for _, c := range AllCharityTypes {
		if c.ID() == id {
			return c, true
		}
	}
	return 0, false
}

// CharityInputs is the tagged union over the six per-charity input records.
// Each variant is a flat struct of named numeric fields; grant size is always
// present and denominates all per-unit computations. A new charity type must
// implement this interface, which forces every consuming type switch to be
// extended.
type CharityInputs interface {
	Charity() CharityType
	Grant() float64
}

func (in NetsInputs) Charity() CharityType         { return CharityNets }
func (in SMCInputs) Charity() CharityType          { return CharitySMC }
func (in VitaminAInputs) Charity() CharityType     { return CharityVitaminA }
func (in VaccinationInputs) Charity() CharityType  { return CharityVaccination }
func (in CashTransferInputs) Charity() CharityType { return CharityCashTransfer }
func (in DewormingInputs) Charity() CharityType    { return CharityDeworming }

func (in NetsInputs) Grant() float64         { return in.GrantSize }
func (in SMCInputs) Grant() float64          { return in.GrantSize }
func (in VitaminAInputs) Grant() float64     { return in.GrantSize }
func (in VaccinationInputs) Grant() float64  { return in.GrantSize }
func (in CashTransferInputs) Grant() float64 { return in.GrantSize }
func (in DewormingInputs) Grant() float64    { return in.GrantSize }

// UnifiedResults is the common projection of every charity's richer result
// record. Charities that do not model mortality report DeathsAvertedUnder5 = 0
// and CostPerDeathAverted = +Inf; callers must treat the infinity as "not
// applicable" rather than an error.
type UnifiedResults struct {
	PeopleReached       float64 `json:"people_reached"`
	DeathsAvertedUnder5 float64 `json:"deaths_averted_under5"`
	CostPerDeathAverted float64 `json:"cost_per_death_averted"`
	InitialXBenchmark   float64 `json:"initial_x_benchmark"`
	FinalXBenchmark     float64 `json:"final_x_benchmark"`
	BenchmarkValue      float64 `json:"benchmark_value"`
}

// MarshalJSON renders the +Inf cost-per-death sentinel as null; encoding/json
// rejects non-finite numbers outright, and null is what the API's "not
// applicable" reads as on the consumer side.
func (u UnifiedResults) MarshalJSON() ([]byte, error) {
	type plain UnifiedResults
	out := struct {
		plain
		CostPerDeathAverted *float64 `json:"cost_per_death_averted"`
	}{plain: plain(u)}
	if !math.IsInf(u.CostPerDeathAverted, 0) && !math.IsNaN(u.CostPerDeathAverted) {
		out.CostPerDeathAverted = &u.CostPerDeathAverted
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the sentinel: a null or absent cost per death means
// no mortality pathway and decodes back to +Inf.
func (u *UnifiedResults) UnmarshalJSON(data []byte) error {
	type plain UnifiedResults
	aux := struct {
		*plain
		CostPerDeathAverted *float64 `json:"cost_per_death_averted"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.CostPerDeathAverted == nil {
		u.CostPerDeathAverted = math.Inf(1)
	} else {
		u.CostPerDeathAverted = *aux.CostPerDeathAverted
	}
	return nil
}
