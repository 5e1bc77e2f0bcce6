package main

// NetsInputs holds the parameters for the malaria net distribution model.
// Adjustment factors are signed percentages applied as (1 + factor); negative
// values (funging, grantee discounts) subtract value and are not clamped here.
type NetsInputs struct {
	GrantSize                  float64 `json:"grant_size"`
	CostPerUnder5Reached       float64 `json:"cost_per_under5_reached"`
	YearsEffectiveCoverage     float64 `json:"years_effective_coverage"`
	MalariaMortalityRate       float64 `json:"malaria_mortality_rate"`
	ITNEffectOnDeaths          float64 `json:"itn_effect_on_deaths"`
	MoralWeightUnder5          float64 `json:"moral_weight_under5"`
	MoralWeight5Plus           float64 `json:"moral_weight_5plus"`
	AdjustmentOlderMortalities float64 `json:"adjustment_older_mortalities"`
	AdjustmentDevelopmental    float64 `json:"adjustment_developmental"`
	AdjustmentProgramBenefits  float64 `json:"adjustment_program_benefits"`
	AdjustmentGrantee          float64 `json:"adjustment_grantee"`
	AdjustmentLeverage         float64 `json:"adjustment_leverage"`
	AdjustmentFunging          float64 `json:"adjustment_funging"`
}

// NetsResults carries every intermediate surfaced in the step-by-step
// breakdown, not just the final multiple. The two staged multiples
// (after older mortalities, after developmental) are shown separately in the
// UI and must remain individually inspectable.
type NetsResults struct {
	PeopleUnder5Reached    float64 `json:"people_under5_reached"`
	DeathsAvertedUnder5    float64 `json:"deaths_averted_under5"`
	CostPerDeathAverted    float64 `json:"cost_per_death_averted"`
	InitialXBenchmark      float64 `json:"initial_x_benchmark"`
	XAfterOlderMortalities float64 `json:"x_after_older_mortalities"`
	XAfterDevelopmental    float64 `json:"x_after_developmental"`
	FinalXBenchmark        float64 `json:"final_x_benchmark"`
	FinalCostPerLifeSaved  float64 `json:"final_cost_per_life_saved"`
}

// CalculateNets computes the net distribution cost-effectiveness pipeline:
// reach, under-5 deaths averted over the nets' effective lifetime, value at
// the under-5 moral weight, then staged adjustments. The older-mortality step
// values averted 5+ deaths at the 5+ weight relative to the under-5 weight.
func CalculateNets(in NetsInputs) NetsResults {
	peopleReached := in.GrantSize / in.CostPerUnder5Reached
	deathsAverted := peopleReached * in.YearsEffectiveCoverage * in.MalariaMortalityRate * in.ITNEffectOnDeaths
	costPerDeath := in.GrantSize / deathsAverted

	valueGenerated := deathsAverted * in.MoralWeightUnder5
	initialX := valueGenerated / (in.GrantSize * BenchmarkValuePerDollar)

	olderMortalityFactor := in.AdjustmentOlderMortalities * (in.MoralWeight5Plus / in.MoralWeightUnder5)
	xAfterOlder := initialX * (1 + olderMortalityFactor)
	xAfterDevelopmental := xAfterOlder * (1 + in.AdjustmentDevelopmental)

	finalX := xAfterDevelopmental *
		(1 + in.AdjustmentProgramBenefits) *
		(1 + in.AdjustmentGrantee) *
		(1 + in.AdjustmentLeverage) *
		(1 + in.AdjustmentFunging)

	// More effectiveness after adjustments means a lower all-in cost per life
	finalCostPerLife := costPerDeath * (initialX / finalX)

	return NetsResults{
		PeopleUnder5Reached:    peopleReached,
		DeathsAvertedUnder5:    deathsAverted,
		CostPerDeathAverted:    costPerDeath,
		InitialXBenchmark:      initialX,
		XAfterOlderMortalities: xAfterOlder,
		XAfterDevelopmental:    xAfterDevelopmental,
		FinalXBenchmark:        finalX,
		FinalCostPerLifeSaved:  finalCostPerLife,
	}
}
