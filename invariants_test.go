package main

import (
	"math"
	"testing"
)

// ============================================================================
// Mathematical Invariants Test Suite
//
// Property checks that must hold for every charity, location, and weight
// configuration, independent of the specific parameter values. A failure here
// means a model violates the comparison semantics, not that a number drifted.
// ============================================================================

// almostEqual compares floats with a relative tolerance (absolute near zero)
func almostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest < 1 {
		return diff < tol
	}
	return diff/largest < tol
}

// ====== Moral weight sensitivity ======

func TestInvariant_WeightDoublingRaisesMortalityCharities(t *testing.T) {
	base := DefaultMoralWeights()
	doubled := GetWeightPresetByID("higher_child_value").Weights

	for _, charity := range []CharityType{CharityNets, CharitySMC, CharityVitaminA, CharityVaccination} {
		for _, loc := range LocationsFor(charity) {
			inputs, _ := InputsForLocation(charity, loc.ID, DefaultGrantSize)

			before := CalculateCharity(ApplyMoralWeights(inputs, base)).FinalXBenchmark
			after := CalculateCharity(ApplyMoralWeights(inputs, doubled)).FinalXBenchmark

			// The under-5 term doubles exactly; the nets older-mortality
			// uplift is diluted because the 5+ weights stay fixed, so the
			// guaranteed floor is below a clean 2x.
			if after < before*1.5 {
				t.Errorf("%s/%s: doubling the under-5 weights moved the multiple only from %f to %f",
					charity.ID(), loc.ID, before, after)
			}
		}
	}
}

func TestInvariant_DewormingImmuneToDeathWeights(t *testing.T) {
	inputs := DefaultInputs(CharityDeworming)

	base := CalculateCharity(ApplyMoralWeights(inputs, DefaultMoralWeights()))
	doubled := CalculateCharity(ApplyMoralWeights(inputs, GetWeightPresetByID("higher_child_value").Weights))
	equal := CalculateCharity(ApplyMoralWeights(inputs, GetWeightPresetByID("equal_lives").Weights))

	if base != doubled || base != equal {
		t.Errorf("deworming results changed under death-weight presets (same discount rate everywhere)")
	}
}

func TestInvariant_LowerDiscountHelpsPresentValueCharities(t *testing.T) {
	base := DefaultMoralWeights()
	lower := GetWeightPresetByID("lower_discount").Weights

	for _, charity := range []CharityType{CharityCashTransfer, CharityDeworming} {
		inputs := DefaultInputs(charity)
		before := CalculateCharity(ApplyMoralWeights(inputs, base)).FinalXBenchmark
		after := CalculateCharity(ApplyMoralWeights(inputs, lower)).FinalXBenchmark
		if after <= before {
			t.Errorf("%s: 2%% discount rate should beat 4%% (%f vs %f)", charity.ID(), after, before)
		}
	}
}

// ====== Cross-charity consistency ======

func TestInvariant_AllFiniteAcrossPresets(t *testing.T) {
	for _, preset := range WeightPresets {
		for _, charity := range AllCharityTypes {
			for _, loc := range LocationsFor(charity) {
				inputs, _ := InputsForLocation(charity, loc.ID, DefaultGrantSize)
				u := CalculateCharity(ApplyMoralWeights(inputs, preset.Weights))

				if u.FinalXBenchmark <= 0 || math.IsInf(u.FinalXBenchmark, 0) || math.IsNaN(u.FinalXBenchmark) {
					t.Errorf("%s/%s/%s: final multiple %f", preset.ID, charity.ID(), loc.ID, u.FinalXBenchmark)
				}
				if u.InitialXBenchmark <= 0 || math.IsNaN(u.InitialXBenchmark) {
					t.Errorf("%s/%s/%s: initial multiple %f", preset.ID, charity.ID(), loc.ID, u.InitialXBenchmark)
				}
			}
		}
	}
}

func TestInvariant_CashTransferNearBenchmark(t *testing.T) {
	// Cash transfers define the benchmark, so their own multiple should sit in
	// the neighborhood of 1x, not at 10x or 0.01x. The spread across locations
	// comes from baseline consumption differences.
	for _, loc := range LocationsFor(CharityCashTransfer) {
		inputs, _ := InputsForLocation(CharityCashTransfer, loc.ID, DefaultGrantSize)
		x := CalculateCharity(inputs).FinalXBenchmark
		if x < 0.3 || x > 1.5 {
			t.Errorf("%s: cash transfer multiple %f implausibly far from the benchmark", loc.ID, x)
		}
	}
}

func TestInvariant_MortalityCharitiesBeatCash(t *testing.T) {
	// With the default weights, every mortality charity's best location clears
	// the cash benchmark by a wide margin; this ordering is the entire point
	// of the comparison.
	cashBest := 0.0
	for _, loc := range LocationsFor(CharityCashTransfer) {
		inputs, _ := InputsForLocation(CharityCashTransfer, loc.ID, DefaultGrantSize)
		if x := CalculateCharity(inputs).FinalXBenchmark; x > cashBest {
			cashBest = x
		}
	}

	for _, charity := range []CharityType{CharityNets, CharitySMC, CharityVitaminA, CharityVaccination} {
		best := 0.0
		for _, loc := range LocationsFor(charity) {
			inputs, _ := InputsForLocation(charity, loc.ID, DefaultGrantSize)
			if x := CalculateCharity(inputs).FinalXBenchmark; x > best {
				best = x
			}
		}
		if best <= cashBest {
			t.Errorf("%s: best multiple %f does not clear the cash best %f", charity.ID(), best, cashBest)
		}
	}
}

// ====== Adjustment chain behavior ======

func TestInvariant_FungingOnlyReducesValue(t *testing.T) {
	in := DefaultInputs(CharityNets).(NetsInputs)
	deeper := in
	deeper.AdjustmentFunging = in.AdjustmentFunging - 0.2

	r1 := CalculateNets(in)
	r2 := CalculateNets(deeper)

	if r2.FinalXBenchmark >= r1.FinalXBenchmark {
		t.Errorf("deeper funging should lower the multiple (%f vs %f)", r2.FinalXBenchmark, r1.FinalXBenchmark)
	}
	if !almostEqual(r1.DeathsAvertedUnder5, r2.DeathsAvertedUnder5, 1e-12) {
		t.Errorf("funging must not touch the physical deaths-averted estimate")
	}
}

func TestInvariant_FinalCostConsistentWithMultiples(t *testing.T) {
	// For the mortality charities the all-in cost per life and the raw cost
	// per death are tied together through the initial/final multiple ratio.
	in := DefaultInputs(CharitySMC).(SMCInputs)
	r := CalculateSMC(in)

	implied := r.CostPerDeathAverted * (r.InitialXBenchmark / r.FinalXBenchmark)
	if !almostEqual(r.FinalCostPerLifeSaved, implied, 1e-12) {
		t.Errorf("final cost per life %f, implied %f", r.FinalCostPerLifeSaved, implied)
	}
}

func TestInvariant_BenchmarkConstantShared(t *testing.T) {
	for _, charity := range AllCharityTypes {
		u := CalculateCharity(DefaultInputs(charity))
		if u.BenchmarkValue != BenchmarkValuePerDollar {
			t.Errorf("%s: benchmark constant leaked as %f", charity.ID(), u.BenchmarkValue)
		}
	}
}
