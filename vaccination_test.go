package main

import "testing"

func bauchiVaccinationInputs() VaccinationInputs {
	inputs, _ := InputsForLocation(CharityVaccination, "bauchi", DefaultGrantSize)
	return inputs.(VaccinationInputs)
}

func TestCalculateVaccinationBauchiGolden(t *testing.T) {
	r := CalculateVaccination(bauchiVaccinationInputs())

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"ChildrenReached", r.ChildrenReached, 54914.88193300384},
		{"AdditionalChildrenVaccinated", r.AdditionalChildrenVaccinated, 31850.63152114223},
		{"DeathsAvertedUnder5", r.DeathsAvertedUnder5, 480.30752333882486},
		{"CostPerDeathAverted", r.CostPerDeathAverted, 2081.99945120278},
		{"InitialXBenchmark", r.InitialXBenchmark, 16.767870268423284},
		{"FinalXBenchmark", r.FinalXBenchmark, 32.92270473219316},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want, 1e-9) {
			t.Errorf("%s = %.10f, want %.10f", c.name, c.got, c.want)
		}
	}
}

func TestVaccinationConsumptionAdjustmentCounts(t *testing.T) {
	// The consumption benefit is part of the adjustment chain; zeroing it must
	// lower the final multiple but leave the initial multiple alone.
	in := bauchiVaccinationInputs()
	noConsumption := in
	noConsumption.AdjustmentConsumption = 0

	r1 := CalculateVaccination(in)
	r2 := CalculateVaccination(noConsumption)

	if !almostEqual(r1.InitialXBenchmark, r2.InitialXBenchmark, 1e-12) {
		t.Errorf("initial multiple should not depend on the consumption adjustment")
	}
	if r2.FinalXBenchmark >= r1.FinalXBenchmark {
		t.Errorf("removing the consumption benefit should lower the final multiple")
	}
	if !almostEqual(r2.FinalXBenchmark, r1.FinalXBenchmark/(1+in.AdjustmentConsumption), 1e-12) {
		t.Errorf("consumption term should factor out of the chain exactly")
	}
}

func TestVaccinationEfficacyScalesDeaths(t *testing.T) {
	in := bauchiVaccinationInputs()
	stronger := in
	stronger.VaccineEffect = in.VaccineEffect * 1.25

	r1 := CalculateVaccination(in)
	r2 := CalculateVaccination(stronger)

	if !almostEqual(r2.DeathsAvertedUnder5, r1.DeathsAvertedUnder5*1.25, 1e-12) {
		t.Errorf("deaths averted should scale linearly with vaccine efficacy")
	}
}
