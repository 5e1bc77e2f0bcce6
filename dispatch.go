package main

import "math"

// CalculateCharity runs the matching formula model and projects its richer
// result record onto the unified shape. Total over the six variants; never
// returns an error. The projection is an explicit field mapping per charity
// and performs no hidden transformation.
func CalculateCharity(inputs CharityInputs) UnifiedResults {
	switch in := inputs.(type) {
	case NetsInputs:
		r := CalculateNets(in)
		return UnifiedResults{
			PeopleReached:       r.PeopleUnder5Reached,
			DeathsAvertedUnder5: r.DeathsAvertedUnder5,
			CostPerDeathAverted: r.CostPerDeathAverted,
			InitialXBenchmark:   r.InitialXBenchmark,
			FinalXBenchmark:     r.FinalXBenchmark,
			BenchmarkValue:      BenchmarkValuePerDollar,
		}
	case SMCInputs:
		r := CalculateSMC(in)
		return UnifiedResults{
			PeopleReached:       r.ChildrenReached,
			DeathsAvertedUnder5: r.DeathsAvertedUnder5,
			CostPerDeathAverted: r.CostPerDeathAverted,
			InitialXBenchmark:   r.InitialXBenchmark,
			FinalXBenchmark:     r.FinalXBenchmark,
			BenchmarkValue:      BenchmarkValuePerDollar,
		}
	case VitaminAInputs:
		r := CalculateVitaminA(in)
		return UnifiedResults{
			PeopleReached:       r.PeopleUnder5Reached,
			DeathsAvertedUnder5: r.DeathsAvertedUnder5,
			CostPerDeathAverted: r.CostPerDeathAverted,
			InitialXBenchmark:   r.InitialXBenchmark,
			FinalXBenchmark:     r.FinalXBenchmark,
			BenchmarkValue:      BenchmarkValuePerDollar,
		}
	case VaccinationInputs:
		r := CalculateVaccination(in)
		return UnifiedResults{
			PeopleReached:       r.ChildrenReached,
			DeathsAvertedUnder5: r.DeathsAvertedUnder5,
			CostPerDeathAverted: r.CostPerDeathAverted,
			InitialXBenchmark:   r.InitialXBenchmark,
			FinalXBenchmark:     r.FinalXBenchmark,
			BenchmarkValue:      BenchmarkValuePerDollar,
		}
	case CashTransferInputs:
		r := CalculateCashTransfer(in)
		// The single computed multiple fills both unified multiple fields;
		// deaths averted is an ancillary figure, not the critical path.
		return UnifiedResults{
			PeopleReached:       r.PeopleReached,
			DeathsAvertedUnder5: r.DeathsAvertedUnder5,
			CostPerDeathAverted: r.CostPerDeathAverted,
			InitialXBenchmark:   r.XBenchmark,
			FinalXBenchmark:     r.XBenchmark,
			BenchmarkValue:      BenchmarkValuePerDollar,
		}
	case DewormingInputs:
		r := CalculateDeworming(in)
		// No mortality component: deaths averted is 0 and cost per death is
		// +Inf regardless of model internals.
		return UnifiedResults{
			PeopleReached:       r.ChildrenTreated,
			DeathsAvertedUnder5: 0,
			CostPerDeathAverted: math.Inf(1),
			InitialXBenchmark:   r.InitialXBenchmark,
			FinalXBenchmark:     r.FinalXBenchmark,
			BenchmarkValue:      BenchmarkValuePerDollar,
		}
	default:
		return UnifiedResults{}
	}
}

// ApplyMoralWeights returns a new inputs value with the charity's moral
// weight fields overwritten from the unified weights structure, leaving every
// other field untouched. Inputs are passed and returned by value, so the
// caller's record is never mutated. The discount rate is carried into the two
// charities with multi-year present-value sums (cash transfer and deworming);
// deworming has no death-weight fields and receives nothing else.
func ApplyMoralWeights(inputs CharityInputs, w MoralWeights) CharityInputs {
	switch in := inputs.(type) {
	case NetsInputs:
		in.MoralWeightUnder5 = Under5Weight(w, KindMalaria)
		in.MoralWeight5Plus = Age5PlusWeight(w)
		return in
	case SMCInputs:
		in.MoralWeightUnder5 = Under5Weight(w, KindMalaria)
		return in
	case VitaminAInputs:
		in.MoralWeightUnder5 = Under5Weight(w, KindVitaminA)
		return in
	case VaccinationInputs:
		in.MoralWeightUnder5 = Under5Weight(w, KindVaccine)
		return in
	case CashTransferInputs:
		in.MoralWeightUnder5 = Under5Weight(w, KindMalaria)
		in.DiscountRate = w.DiscountRate
		return in
	case DewormingInputs:
		in.DiscountRate = w.DiscountRate
		return in
	default:
		return inputs
	}
}

// DefaultInputs returns the default location's parameter set for a charity at
// the default grant size.
func DefaultInputs(charity CharityType) CharityInputs {
	inputs, _ := InputsForLocation(charity, DefaultLocationID(charity), DefaultGrantSize)
	return inputs
}
