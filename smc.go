package main

// SMCInputs holds the parameters for the seasonal malaria chemoprevention
// model. Unlike nets, the deaths-averted step includes the proportion of
// annual malaria mortality that occurs during the treatment season.
type SMCInputs struct {
	GrantSize                       float64 `json:"grant_size"`
	CostPerChildReached             float64 `json:"cost_per_child_reached"`
	MalariaMortalityRate            float64 `json:"malaria_mortality_rate"`
	ProportionMortalityDuringSeason float64 `json:"proportion_mortality_during_season"`
	SMCEffect                       float64 `json:"smc_effect"`
	MoralWeightUnder5               float64 `json:"moral_weight_under5"`
	AdjustmentOlderMortalities      float64 `json:"adjustment_older_mortalities"`
	AdjustmentDevelopmental         float64 `json:"adjustment_developmental"`
	AdjustmentProgramBenefits       float64 `json:"adjustment_program_benefits"`
	AdjustmentGrantee               float64 `json:"adjustment_grantee"`
	AdjustmentLeverage              float64 `json:"adjustment_leverage"`
	AdjustmentFunging               float64 `json:"adjustment_funging"`
}

// SMCResults carries the chemoprevention model's intermediates
type SMCResults struct {
	ChildrenReached       float64 `json:"children_reached"`
	DeathsAvertedUnder5   float64 `json:"deaths_averted_under5"`
	CostPerDeathAverted   float64 `json:"cost_per_death_averted"`
	InitialXBenchmark     float64 `json:"initial_x_benchmark"`
	FinalXBenchmark       float64 `json:"final_x_benchmark"`
	FinalCostPerLifeSaved float64 `json:"final_cost_per_life_saved"`
}

// CalculateSMC computes the seasonal chemoprevention pipeline
func CalculateSMC(in SMCInputs) SMCResults {
	childrenReached := in.GrantSize / in.CostPerChildReached
	deathsAverted := childrenReached * in.MalariaMortalityRate * in.ProportionMortalityDuringSeason * in.SMCEffect
	costPerDeath := in.GrantSize / deathsAverted

	valueGenerated := deathsAverted * in.MoralWeightUnder5
	initialX := valueGenerated / (in.GrantSize * BenchmarkValuePerDollar)

	finalX := initialX *
		(1 + in.AdjustmentOlderMortalities) *
		(1 + in.AdjustmentDevelopmental) *
		(1 + in.AdjustmentProgramBenefits) *
		(1 + in.AdjustmentGrantee) *
		(1 + in.AdjustmentLeverage) *
		(1 + in.AdjustmentFunging)

	finalCostPerLife := costPerDeath * (initialX / finalX)

	return SMCResults{
		ChildrenReached:       childrenReached,
		DeathsAvertedUnder5:   deathsAverted,
		CostPerDeathAverted:   costPerDeath,
		InitialXBenchmark:     initialX,
		FinalXBenchmark:       finalX,
		FinalCostPerLifeSaved: finalCostPerLife,
	}
}
