package main

// VaccinationInputs holds the parameters for the incentivized vaccination
// model. The effect step uses the probability of death if unvaccinated times
// vaccine efficacy, and the adjustment chain includes a consumption-benefit
// term the other mortality charities do not have.
type VaccinationInputs struct {
	GrantSize                       float64 `json:"grant_size"`
	CostPerChildReached             float64 `json:"cost_per_child_reached"`
	ProportionReachedCounterfactual float64 `json:"proportion_reached_counterfactual"`
	ProbabilityDeathUnvaccinated    float64 `json:"probability_death_unvaccinated"`
	VaccineEffect                   float64 `json:"vaccine_effect"`
	MoralWeightUnder5               float64 `json:"moral_weight_under5"`
	AdjustmentOlderMortalities      float64 `json:"adjustment_older_mortalities"`
	AdjustmentDevelopmental         float64 `json:"adjustment_developmental"`
	AdjustmentConsumption           float64 `json:"adjustment_consumption"`
	AdjustmentProgramBenefits       float64 `json:"adjustment_program_benefits"`
	AdjustmentGrantee               float64 `json:"adjustment_grantee"`
	AdjustmentLeverage              float64 `json:"adjustment_leverage"`
	AdjustmentFunging               float64 `json:"adjustment_funging"`
}

// VaccinationResults carries the vaccination model's intermediates
type VaccinationResults struct {
	ChildrenReached              float64 `json:"children_reached"`
	AdditionalChildrenVaccinated float64 `json:"additional_children_vaccinated"`
	DeathsAvertedUnder5          float64 `json:"deaths_averted_under5"`
	CostPerDeathAverted          float64 `json:"cost_per_death_averted"`
	InitialXBenchmark            float64 `json:"initial_x_benchmark"`
	FinalXBenchmark              float64 `json:"final_x_benchmark"`
	FinalCostPerLifeSaved        float64 `json:"final_cost_per_life_saved"`
}

// CalculateVaccination computes the incentivized vaccination pipeline
func CalculateVaccination(in VaccinationInputs) VaccinationResults {
	childrenReached := in.GrantSize / in.CostPerChildReached
	additional := childrenReached * (1 - in.ProportionReachedCounterfactual)
	deathsAverted := additional * in.ProbabilityDeathUnvaccinated * in.VaccineEffect
	costPerDeath := in.GrantSize / deathsAverted

	valueGenerated := deathsAverted * in.MoralWeightUnder5
	initialX := valueGenerated / (in.GrantSize * BenchmarkValuePerDollar)

	finalX := initialX *
		(1 + in.AdjustmentOlderMortalities) *
		(1 + in.AdjustmentDevelopmental) *
		(1 + in.AdjustmentConsumption) *
		(1 + in.AdjustmentProgramBenefits) *
		(1 + in.AdjustmentGrantee) *
		(1 + in.AdjustmentLeverage) *
		(1 + in.AdjustmentFunging)

	finalCostPerLife := costPerDeath * (initialX / finalX)

	return VaccinationResults{
		ChildrenReached:              childrenReached,
		AdditionalChildrenVaccinated: additional,
		DeathsAvertedUnder5:          deathsAverted,
		CostPerDeathAverted:          costPerDeath,
		InitialXBenchmark:            initialX,
		FinalXBenchmark:              finalX,
		FinalCostPerLifeSaved:        finalCostPerLife,
	}
}
