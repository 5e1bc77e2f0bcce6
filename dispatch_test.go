package main

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestCalculateCharityMatchesModelResults(t *testing.T) {
	// The unified projection must be a plain field mapping over each model's
	// own results, with no recomputation drift.
	for _, charity := range AllCharityTypes {
		in := DefaultInputs(charity)
		u := CalculateCharity(in)

		var wantInitial, wantFinal float64
		switch m := in.(type) {
		case NetsInputs:
			r := CalculateNets(m)
			wantInitial, wantFinal = r.InitialXBenchmark, r.FinalXBenchmark
		case SMCInputs:
			r := CalculateSMC(m)
			wantInitial, wantFinal = r.InitialXBenchmark, r.FinalXBenchmark
		case VitaminAInputs:
			r := CalculateVitaminA(m)
			wantInitial, wantFinal = r.InitialXBenchmark, r.FinalXBenchmark
		case VaccinationInputs:
			r := CalculateVaccination(m)
			wantInitial, wantFinal = r.InitialXBenchmark, r.FinalXBenchmark
		case CashTransferInputs:
			r := CalculateCashTransfer(m)
			wantInitial, wantFinal = r.XBenchmark, r.XBenchmark
		case DewormingInputs:
			r := CalculateDeworming(m)
			wantInitial, wantFinal = r.InitialXBenchmark, r.FinalXBenchmark
		}

		if u.InitialXBenchmark != wantInitial || u.FinalXBenchmark != wantFinal {
			t.Errorf("%s: unified multiples (%f, %f) do not match model (%f, %f)",
				charity.ID(), u.InitialXBenchmark, u.FinalXBenchmark, wantInitial, wantFinal)
		}
		if u.BenchmarkValue != BenchmarkValuePerDollar {
			t.Errorf("%s: benchmark value %f, want %f", charity.ID(), u.BenchmarkValue, BenchmarkValuePerDollar)
		}
	}
}

func TestCalculateCharityDewormingSentinels(t *testing.T) {
	u := CalculateCharity(DefaultInputs(CharityDeworming))

	if u.DeathsAvertedUnder5 != 0 {
		t.Errorf("deworming should report zero deaths averted, got %f", u.DeathsAvertedUnder5)
	}
	if !math.IsInf(u.CostPerDeathAverted, 1) {
		t.Errorf("deworming should report +Inf cost per death, got %f", u.CostPerDeathAverted)
	}
	if u.FinalXBenchmark <= 0 {
		t.Errorf("deworming multiple should still be positive, got %f", u.FinalXBenchmark)
	}
}

func TestUnifiedResultsJSONInfSentinel(t *testing.T) {
	// encoding/json refuses non-finite numbers, so the +Inf cost-per-death
	// sentinel has to serialize as null and come back as +Inf.
	u := CalculateCharity(DefaultInputs(CharityDeworming))

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"cost_per_death_averted":null`) {
		t.Errorf("+Inf cost per death should serialize as null, got %s", data)
	}

	var back UnifiedResults
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !math.IsInf(back.CostPerDeathAverted, 1) {
		t.Errorf("null cost per death should decode to +Inf, got %f", back.CostPerDeathAverted)
	}
	if back != u {
		t.Errorf("roundtrip changed the results: %+v vs %+v", back, u)
	}
}

func TestUnifiedResultsJSONFiniteRoundtrip(t *testing.T) {
	u := CalculateCharity(DefaultInputs(CharityNets))

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back UnifiedResults
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != u {
		t.Errorf("roundtrip changed the results: %+v vs %+v", back, u)
	}
}

func TestCalculateCharityCashFillsBothMultiples(t *testing.T) {
	u := CalculateCharity(DefaultInputs(CharityCashTransfer))
	if u.InitialXBenchmark != u.FinalXBenchmark {
		t.Errorf("cash transfer has no adjustment chain; initial %f should equal final %f",
			u.InitialXBenchmark, u.FinalXBenchmark)
	}
}

func TestApplyMoralWeightsDoesNotMutate(t *testing.T) {
	original := DefaultInputs(CharityNets).(NetsInputs)
	before := original

	doubled := DefaultMoralWeights()
	doubled.Under5Malaria *= 2
	_ = ApplyMoralWeights(original, doubled)

	if original != before {
		t.Errorf("ApplyMoralWeights mutated the caller's inputs: %+v vs %+v", original, before)
	}
}

func TestApplyMoralWeightsFieldRouting(t *testing.T) {
	w := DefaultMoralWeights()
	w.Under5Malaria = 200
	w.Under5VitaminA = 210
	w.Under5Vaccine = 220
	w.DiscountRate = 0.07

	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"nets gets malaria and 5+ weights", func(t *testing.T) {
			out := ApplyMoralWeights(DefaultInputs(CharityNets), w).(NetsInputs)
			if out.MoralWeightUnder5 != 200 {
				t.Errorf("under-5 weight = %f, want 200", out.MoralWeightUnder5)
			}
			if !almostEqual(out.MoralWeight5Plus, Age5PlusWeight(w), 1e-12) {
				t.Errorf("5+ weight = %f, want %f", out.MoralWeight5Plus, Age5PlusWeight(w))
			}
		}},
		{"smc gets malaria weight", func(t *testing.T) {
			out := ApplyMoralWeights(DefaultInputs(CharitySMC), w).(SMCInputs)
			if out.MoralWeightUnder5 != 200 {
				t.Errorf("under-5 weight = %f, want 200", out.MoralWeightUnder5)
			}
		}},
		{"vitamin A gets its own weight", func(t *testing.T) {
			out := ApplyMoralWeights(DefaultInputs(CharityVitaminA), w).(VitaminAInputs)
			if out.MoralWeightUnder5 != 210 {
				t.Errorf("under-5 weight = %f, want 210", out.MoralWeightUnder5)
			}
		}},
		{"vaccination gets the vaccine weight", func(t *testing.T) {
			out := ApplyMoralWeights(DefaultInputs(CharityVaccination), w).(VaccinationInputs)
			if out.MoralWeightUnder5 != 220 {
				t.Errorf("under-5 weight = %f, want 220", out.MoralWeightUnder5)
			}
		}},
		{"cash gets weight and discount rate", func(t *testing.T) {
			out := ApplyMoralWeights(DefaultInputs(CharityCashTransfer), w).(CashTransferInputs)
			if out.MoralWeightUnder5 != 200 {
				t.Errorf("under-5 weight = %f, want 200", out.MoralWeightUnder5)
			}
			if out.DiscountRate != 0.07 {
				t.Errorf("discount rate = %f, want 0.07", out.DiscountRate)
			}
		}},
		{"deworming gets only the discount rate", func(t *testing.T) {
			in := DefaultInputs(CharityDeworming).(DewormingInputs)
			out := ApplyMoralWeights(in, w).(DewormingInputs)
			if out.DiscountRate != 0.07 {
				t.Errorf("discount rate = %f, want 0.07", out.DiscountRate)
			}
			// Everything except the discount rate stays as it was
			out.DiscountRate = in.DiscountRate
			if out != in {
				t.Errorf("deworming fields beyond the discount rate changed: %+v vs %+v", out, in)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.check)
	}
}

func TestCharityInputsInterface(t *testing.T) {
	for _, charity := range AllCharityTypes {
		in := DefaultInputs(charity)
		if in == nil {
			t.Fatalf("%s: no default inputs", charity.ID())
		}
		if in.Charity() != charity {
			t.Errorf("%s: Charity() = %v", charity.ID(), in.Charity())
		}
		if in.Grant() != DefaultGrantSize {
			t.Errorf("%s: Grant() = %f, want %f", charity.ID(), in.Grant(), float64(DefaultGrantSize))
		}
	}
}

func TestParseCharityTypeRoundtrip(t *testing.T) {
	for _, charity := range AllCharityTypes {
		got, ok := ParseCharityType(charity.ID())
		if !ok || got != charity {
			t.Errorf("ParseCharityType(%q) = %v, %v", charity.ID(), got, ok)
		}
	}
	if _, ok := ParseCharityType("homeopathy"); ok {
		t.Errorf("unknown charity id should not parse")
	}
}
