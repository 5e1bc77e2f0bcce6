package main

import (
	"math"
	"math/rand"
	"sort"
)

// truncatedNormalMaxAttempts caps rejection sampling before hard-clamping.
// The exact count is not load-bearing; any reasonable cap preserves the
// contract (bounded output, approximately centered distribution).
const truncatedNormalMaxAttempts = 100

// logNormalSpreadZ spans the 10th-to-90th percentile interval used to derive
// the underlying normal's standard deviation from the low/high bounds.
const logNormalSpreadZ = 2 * 1.645

// boxMuller draws one standard normal variate from the injected source
func boxMuller(rng *rand.Rand) float64 {
	// 1 - Float64() keeps u1 in (0, 1]; Log(0) would produce -Inf
	u1 := 1 - rng.Float64()
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// SampleLogNormal draws from a log-normal distribution centered on central
// with approximately the given 10th/90th percentile bounds. The result is
// always strictly positive, which is why this sampler is used for costs and
// rates that cannot go negative.
func SampleLogNormal(rng *rand.Rand, central, low, high float64) float64 {
	mean := math.Log(central)
	sd := math.Log(high/low) / logNormalSpreadZ
	return math.Exp(mean + sd*boxMuller(rng))
}

// SampleTruncatedNormal draws from a normal distribution restricted to
// [min, max] by rejection sampling, hard-clamping if no acceptable draw is
// found within the attempt budget. Used for adjustment factors and effect
// sizes that can sit anywhere in a bounded range, including negative values.
func SampleTruncatedNormal(rng *rand.Rand, mean, sd, min, max float64) float64 {
	v := mean
	for i := 0; i < truncatedNormalMaxAttempts; i++ {
		v = mean + sd*boxMuller(rng)
		if v >= min && v <= max {
			return v
		}
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MonteCarloResults holds the descriptive statistics of one simulation run.
// NumSimulations counts trials attempted; non-finite trial outcomes are
// dropped, so SamplesRetained may be smaller and is the divisor for every
// derived statistic.
type MonteCarloResults struct {
	NumSimulations  int     `json:"num_simulations"`
	SamplesRetained int     `json:"samples_retained"`
	Mean            float64 `json:"mean"`
	Median          float64 `json:"median"`
	StdDev          float64 `json:"std_dev"`
	P5              float64 `json:"p5"`
	P10             float64 `json:"p10"`
	P25             float64 `json:"p25"`
	P75             float64 `json:"p75"`
	P90             float64 `json:"p90"`
	P95             float64 `json:"p95"`
}

// Percentile returns the p-quantile (p in [0,1]) of a sorted sample using
// linear interpolation between order statistics. An empty sample returns 0.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	idx := p * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	frac := idx - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}

// RunMonteCarloSimulation draws trials independent parameter sets, evaluates
// each, drops non-finite outcomes (degenerate sampled inputs, e.g. a cost
// near zero, should not abort a run), and summarizes the retained samples.
func RunMonteCarloSimulation(trials int, sampleInputs func() CharityInputs, evaluate func(CharityInputs) float64) MonteCarloResults {
	samples := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		outcome := evaluate(sampleInputs())
		if math.IsNaN(outcome) || math.IsInf(outcome, 0) {
			continue
		}
		samples = append(samples, outcome)
	}
	sort.Float64s(samples)

	n := float64(len(samples))
	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	mean := sum / n // NaN for an empty sample set, by contract

	variance := 0.0
	for _, s := range samples {
		variance += (s - mean) * (s - mean)
	}
	stdDev := math.Sqrt(variance / n)

	return MonteCarloResults{
		NumSimulations:  trials,
		SamplesRetained: len(samples),
		Mean:            mean,
		Median:          Percentile(samples, 0.5),
		StdDev:          stdDev,
		P5:              Percentile(samples, 0.05),
		P10:             Percentile(samples, 0.10),
		P25:             Percentile(samples, 0.25),
		P75:             Percentile(samples, 0.75),
		P90:             Percentile(samples, 0.90),
		P95:             Percentile(samples, 0.95),
	}
}

// Per-charity input samplers. Each wraps a base record, replacing a fixed
// subset of fields with randomized values: cost and mortality parameters via
// the log-normal sampler, effect sizes and adjustments via the truncated
// normal with bounds specific to that field's plausible range. The bounds are
// deliberately different across charities and are not interchangeable.
// Fields not sampled carry through unperturbed.

// SampleNetsInputs perturbs the net distribution inputs
func SampleNetsInputs(rng *rand.Rand, base NetsInputs) NetsInputs {
	in := base
	in.CostPerUnder5Reached = SampleLogNormal(rng, base.CostPerUnder5Reached, base.CostPerUnder5Reached*0.75, base.CostPerUnder5Reached*1.25)
	in.MalariaMortalityRate = SampleLogNormal(rng, base.MalariaMortalityRate, base.MalariaMortalityRate*0.70, base.MalariaMortalityRate*1.30)
	in.YearsEffectiveCoverage = SampleTruncatedNormal(rng, base.YearsEffectiveCoverage, 0.15, 1.0, 3.0)
	in.ITNEffectOnDeaths = SampleTruncatedNormal(rng, base.ITNEffectOnDeaths, 0.05, 0.2, 0.7)
	in.AdjustmentOlderMortalities = SampleTruncatedNormal(rng, base.AdjustmentOlderMortalities, 0.05, 0, 1)
	in.AdjustmentDevelopmental = SampleTruncatedNormal(rng, base.AdjustmentDevelopmental, 0.10, 0, 1.5)
	in.AdjustmentFunging = SampleTruncatedNormal(rng, base.AdjustmentFunging, 0.05, -0.5, 0)
	return in
}

// SampleSMCInputs perturbs the seasonal chemoprevention inputs
func SampleSMCInputs(rng *rand.Rand, base SMCInputs) SMCInputs {
	in := base
	in.CostPerChildReached = SampleLogNormal(rng, base.CostPerChildReached, base.CostPerChildReached*0.75, base.CostPerChildReached*1.25)
	in.MalariaMortalityRate = SampleLogNormal(rng, base.MalariaMortalityRate, base.MalariaMortalityRate*0.70, base.MalariaMortalityRate*1.30)
	in.ProportionMortalityDuringSeason = SampleTruncatedNormal(rng, base.ProportionMortalityDuringSeason, 0.05, 0.4, 0.9)
	in.SMCEffect = SampleTruncatedNormal(rng, base.SMCEffect, 0.05, 0.5, 0.9)
	in.AdjustmentOlderMortalities = SampleTruncatedNormal(rng, base.AdjustmentOlderMortalities, 0.02, 0, 0.5)
	in.AdjustmentDevelopmental = SampleTruncatedNormal(rng, base.AdjustmentDevelopmental, 0.05, 0, 1)
	in.AdjustmentFunging = SampleTruncatedNormal(rng, base.AdjustmentFunging, 0.04, -0.4, 0)
	return in
}

// SampleVitaminAInputs perturbs the supplementation inputs
func SampleVitaminAInputs(rng *rand.Rand, base VitaminAInputs) VitaminAInputs {
	in := base
	in.CostPerPersonUnder5 = SampleLogNormal(rng, base.CostPerPersonUnder5, base.CostPerPersonUnder5*0.80, base.CostPerPersonUnder5*1.20)
	in.MortalityRateUnder5 = SampleLogNormal(rng, base.MortalityRateUnder5, base.MortalityRateUnder5*0.70, base.MortalityRateUnder5*1.30)
	in.VASEffect = SampleTruncatedNormal(rng, base.VASEffect, 0.03, 0.05, 0.3)
	in.ProportionReachedCounterfactual = SampleTruncatedNormal(rng, base.ProportionReachedCounterfactual, 0.06, 0, 0.8)
	in.AdjustmentFunging = SampleTruncatedNormal(rng, base.AdjustmentFunging, 0.04, -0.4, 0)
	return in
}

// SampleVaccinationInputs perturbs the incentivized vaccination inputs
func SampleVaccinationInputs(rng *rand.Rand, base VaccinationInputs) VaccinationInputs {
	in := base
	in.CostPerChildReached = SampleLogNormal(rng, base.CostPerChildReached, base.CostPerChildReached*0.80, base.CostPerChildReached*1.20)
	in.ProbabilityDeathUnvaccinated = SampleLogNormal(rng, base.ProbabilityDeathUnvaccinated, base.ProbabilityDeathUnvaccinated*0.70, base.ProbabilityDeathUnvaccinated*1.30)
	in.VaccineEffect = SampleTruncatedNormal(rng, base.VaccineEffect, 0.06, 0.3, 0.8)
	in.ProportionReachedCounterfactual = SampleTruncatedNormal(rng, base.ProportionReachedCounterfactual, 0.06, 0.1, 0.8)
	in.AdjustmentFunging = SampleTruncatedNormal(rng, base.AdjustmentFunging, 0.04, -0.4, 0)
	return in
}

// SampleCashTransferInputs perturbs the cash transfer inputs
func SampleCashTransferInputs(rng *rand.Rand, base CashTransferInputs) CashTransferInputs {
	in := base
	in.BaselineConsumption = SampleLogNormal(rng, base.BaselineConsumption, base.BaselineConsumption*0.80, base.BaselineConsumption*1.20)
	in.Under5MortalityRate = SampleLogNormal(rng, base.Under5MortalityRate, base.Under5MortalityRate*0.75, base.Under5MortalityRate*1.25)
	in.SpilloverMultiplier = SampleTruncatedNormal(rng, base.SpilloverMultiplier, 0.30, 1.0, 4.0)
	in.SpilloverDiscount = SampleTruncatedNormal(rng, base.SpilloverDiscount, 0.10, 0, 0.9)
	in.MortalityEffect = SampleTruncatedNormal(rng, base.MortalityEffect, 0.05, 0, 0.6)
	return in
}

// SampleDewormingInputs perturbs the deworming inputs
func SampleDewormingInputs(rng *rand.Rand, base DewormingInputs) DewormingInputs {
	in := base
	in.CostPerChildTreated = SampleLogNormal(rng, base.CostPerChildTreated, base.CostPerChildTreated*0.75, base.CostPerChildTreated*1.25)
	in.InfectionPrevalence = SampleTruncatedNormal(rng, base.InfectionPrevalence, 0.06, 0.05, 0.9)
	in.IncomeEffect = SampleTruncatedNormal(rng, base.IncomeEffect, 0.03, 0, 0.3)
	in.WormBurdenAdjustment = SampleTruncatedNormal(rng, base.WormBurdenAdjustment, 0.05, 0.02, 0.8)
	in.EvidenceAdjustment = SampleTruncatedNormal(rng, base.EvidenceAdjustment, 0.03, 0.02, 0.5)
	return in
}

// SampleCharityInputs perturbs any charity's inputs with its sampler
func SampleCharityInputs(rng *rand.Rand, inputs CharityInputs) CharityInputs {
	switch in := inputs.(type) {
	case NetsInputs:
		return SampleNetsInputs(rng, in)
	case SMCInputs:
		return SampleSMCInputs(rng, in)
	case VitaminAInputs:
		return SampleVitaminAInputs(rng, in)
	case VaccinationInputs:
		return SampleVaccinationInputs(rng, in)
	case CashTransferInputs:
		return SampleCashTransferInputs(rng, in)
	case DewormingInputs:
		return SampleDewormingInputs(rng, in)
	default:
		return inputs
	}
}

// RunCharityMonteCarlo runs the uncertainty simulation for one charity: each
// trial samples a perturbed input set, runs it through the dispatch layer,
// and records the final cost-effectiveness multiple. The random source is
// injected so runs are reproducible.
func RunCharityMonteCarlo(rng *rand.Rand, inputs CharityInputs, trials int) MonteCarloResults {
	return RunMonteCarloSimulation(trials,
		func() CharityInputs { return SampleCharityInputs(rng, inputs) },
		func(in CharityInputs) float64 { return CalculateCharity(in).FinalXBenchmark },
	)
}
