package main

// VitaminAInputs holds the parameters for the vitamin A supplementation
// model. Reach is reduced by the counterfactual proportion: the share of
// children who would have received supplementation without this funding.
type VitaminAInputs struct {
	GrantSize                       float64 `json:"grant_size"`
	CostPerPersonUnder5             float64 `json:"cost_per_person_under5"`
	ProportionReachedCounterfactual float64 `json:"proportion_reached_counterfactual"`
	MortalityRateUnder5             float64 `json:"mortality_rate_under5"`
	VASEffect                       float64 `json:"vas_effect"`
	MoralWeightUnder5               float64 `json:"moral_weight_under5"`
	AdjustmentDevelopmental         float64 `json:"adjustment_developmental"`
	AdjustmentProgramBenefits       float64 `json:"adjustment_program_benefits"`
	AdjustmentGrantee               float64 `json:"adjustment_grantee"`
	AdjustmentLeverage              float64 `json:"adjustment_leverage"`
	AdjustmentFunging               float64 `json:"adjustment_funging"`
}

// VitaminAResults surfaces total reach and incremental reach as two separate
// numbers; the UI shows both lines of the breakdown.
type VitaminAResults struct {
	PeopleUnder5Reached        float64 `json:"people_under5_reached"`
	IncrementalChildrenCovered float64 `json:"incremental_children_covered"`
	DeathsAvertedUnder5        float64 `json:"deaths_averted_under5"`
	CostPerDeathAverted        float64 `json:"cost_per_death_averted"`
	InitialXBenchmark          float64 `json:"initial_x_benchmark"`
	FinalXBenchmark            float64 `json:"final_x_benchmark"`
	FinalCostPerLifeSaved      float64 `json:"final_cost_per_life_saved"`
}

// CalculateVitaminA computes the supplementation pipeline
func CalculateVitaminA(in VitaminAInputs) VitaminAResults {
	peopleReached := in.GrantSize / in.CostPerPersonUnder5
	incremental := peopleReached * (1 - in.ProportionReachedCounterfactual)
	deathsAverted := incremental * in.MortalityRateUnder5 * in.VASEffect
	costPerDeath := in.GrantSize / deathsAverted

	valueGenerated := deathsAverted * in.MoralWeightUnder5
	initialX := valueGenerated / (in.GrantSize * BenchmarkValuePerDollar)

	finalX := initialX *
		(1 + in.AdjustmentDevelopmental) *
		(1 + in.AdjustmentProgramBenefits) *
		(1 + in.AdjustmentGrantee) *
		(1 + in.AdjustmentLeverage) *
		(1 + in.AdjustmentFunging)

	finalCostPerLife := costPerDeath * (initialX / finalX)

	return VitaminAResults{
		PeopleUnder5Reached:        peopleReached,
		IncrementalChildrenCovered: incremental,
		DeathsAvertedUnder5:        deathsAverted,
		CostPerDeathAverted:        costPerDeath,
		InitialXBenchmark:          initialX,
		FinalXBenchmark:            finalX,
		FinalCostPerLifeSaved:      finalCostPerLife,
	}
}
