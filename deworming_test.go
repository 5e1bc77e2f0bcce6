package main

import "testing"

func indiaDewormingInputs() DewormingInputs {
	inputs, _ := InputsForLocation(CharityDeworming, "india", DefaultGrantSize)
	return inputs.(DewormingInputs)
}

func TestCalculateDewormingIndiaGolden(t *testing.T) {
	r := CalculateDeworming(indiaDewormingInputs())

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"ChildrenTreated", r.ChildrenTreated, 2222222.222222222},
		{"ChildrenBenefiting", r.ChildrenBenefiting, 488888.8888888888},
		{"AnnualIncomeGain", r.AnnualIncomeGain, 2.3567544},
		{"PresentValueGain", r.PresentValueGain, 35.44766352937996},
		{"LogIncomeUtility", r.LogIncomeUtility, 0.0332023308444928},
		{"TotalValue", r.TotalValue, 16232.250635085366},
		{"InitialXBenchmark", r.InitialXBenchmark, 4.874549740265875},
		{"FinalXBenchmark", r.FinalXBenchmark, 4.584514030720055},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want, 1e-9) {
			t.Errorf("%s = %.10f, want %.10f", c.name, c.got, c.want)
		}
	}
}

func TestCalculateDewormingKenyaGolden(t *testing.T) {
	inputs, ok := InputsForLocation(CharityDeworming, "kenya", DefaultGrantSize)
	if !ok {
		t.Fatal("kenya location missing")
	}
	r := CalculateDeworming(inputs.(DewormingInputs))

	if !almostEqual(r.InitialXBenchmark, 7.910633615382841, 1e-9) {
		t.Errorf("InitialXBenchmark = %.10f, want 7.9106", r.InitialXBenchmark)
	}
	if !almostEqual(r.FinalXBenchmark, 7.283320369682981, 1e-9) {
		t.Errorf("FinalXBenchmark = %.10f, want 7.2833", r.FinalXBenchmark)
	}
}

func TestDewormingHigherDiscountLowersValue(t *testing.T) {
	// Benefits start years in the future, so the discount rate bites twice:
	// once in the delay, once across the benefit stream.
	base := indiaDewormingInputs()
	steeper := base
	steeper.DiscountRate = 0.08

	r1 := CalculateDeworming(base)
	r2 := CalculateDeworming(steeper)

	if r2.PresentValueGain >= r1.PresentValueGain {
		t.Errorf("a higher discount rate should shrink the present value")
	}
	if r2.FinalXBenchmark >= r1.FinalXBenchmark {
		t.Errorf("a higher discount rate should shrink the multiple")
	}
}

func TestDewormingDecayShortensBenefits(t *testing.T) {
	base := indiaDewormingInputs()
	decaying := base
	decaying.BenefitDecayRate = 0.10

	if CalculateDeworming(decaying).PresentValueGain >= CalculateDeworming(base).PresentValueGain {
		t.Errorf("benefit decay should shrink the present value")
	}
}

func TestDewormingZeroPrevalence(t *testing.T) {
	in := indiaDewormingInputs()
	in.InfectionPrevalence = 0

	r := CalculateDeworming(in)
	if r.ChildrenBenefiting != 0 {
		t.Errorf("expected zero children benefiting, got %f", r.ChildrenBenefiting)
	}
	if r.FinalXBenchmark != 0 {
		t.Errorf("expected zero multiple, got %f", r.FinalXBenchmark)
	}
}
