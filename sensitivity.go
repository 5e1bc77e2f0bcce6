package main

// SweepParam identifies which moral-weight parameter a sensitivity sweep
// varies while holding everything else fixed.
type SweepParam int

const (
	SweepUnder5Weight SweepParam = iota // moves all three intervention-specific under-5 weights together
	SweepAge5to14Weight
	SweepAge15to49Weight
	SweepAge50to74Weight
	SweepDiscountRate
)

// AllSweepParams lists the sweepable parameters in display order
var AllSweepParams = []SweepParam{
	SweepUnder5Weight,
	SweepAge5to14Weight,
	SweepAge15to49Weight,
	SweepAge50to74Weight,
	SweepDiscountRate,
}

func (p SweepParam) String() string {
	switch p {
	case SweepUnder5Weight:
		return "Under-5 Moral Weight"
	case SweepAge5to14Weight:
		return "Age 5-14 Moral Weight"
	case SweepAge15to49Weight:
		return "Age 15-49 Moral Weight"
	case SweepAge50to74Weight:
		return "Age 50-74 Moral Weight"
	case SweepDiscountRate:
		return "Discount Rate"
	default:
		return "Unknown"
	}
}

// ID returns the stable identifier used in config, flags, and the JSON API
func (p SweepParam) ID() string {
	switch p {
	case SweepUnder5Weight:
		return "under5_weight"
	case SweepAge5to14Weight:
		return "age_5_14_weight"
	case SweepAge15to49Weight:
		return "age_15_49_weight"
	case SweepAge50to74Weight:
		return "age_50_74_weight"
	case SweepDiscountRate:
		return "discount_rate"
	default:
		return "unknown"
	}
}

// ParseSweepParam maps an identifier back to its parameter
func ParseSweepParam(id string) (SweepParam, bool) {
	for _, p := range AllSweepParams {
		if p.ID() == id {
			return p, true
		}
	}
	return 0, false
}

// Range returns the fixed [min, max] interval a parameter is swept over.
// The intervals are absolute, not relative to the base weights, so two sweeps
// with different base configurations cover the same ground.
func (p SweepParam) Range() (min, max float64) {
	switch p {
	case SweepUnder5Weight:
		return 20, 250
	case SweepAge5to14Weight:
		return 20, 200
	case SweepAge15to49Weight:
		return 20, 180
	case SweepAge50to74Weight:
		return 10, 150
	case SweepDiscountRate:
		return 0.0, 0.10
	default:
		return 0, 1
	}
}

// SweepPoint holds the swept parameter value and, for each charity, the best
// final cost-effectiveness multiple across that charity's locations at this
// value.
type SweepPoint struct {
	Value     float64                 `json:"value"`
	Multiples map[CharityType]float64 `json:"-"`
	ByID      map[string]float64      `json:"multiples"`
}

// applySweepValue returns a copy of the weights with the swept parameter set.
// Sweeping the under-5 weight moves all three intervention-specific weights
// in lockstep so the series stay comparable.
func applySweepValue(w MoralWeights, param SweepParam, value float64) MoralWeights {
	switch param {
	case SweepUnder5Weight:
		w.Under5Malaria = value
		w.Under5VitaminA = value
		w.Under5Vaccine = value
	case SweepAge5to14Weight:
		w.Age5to14 = value
	case SweepAge15to49Weight:
		w.Age15to49 = value
	case SweepAge50to74Weight:
		w.Age50to74 = value
	case SweepDiscountRate:
		w.DiscountRate = value
	}
	return w
}

// bestMultipleAcrossLocations evaluates one charity at every location under
// the given weights and returns the highest final multiple. Reporting the
// best site rather than an average matches how the underlying analyses rank
// funding opportunities.
func bestMultipleAcrossLocations(charity CharityType, w MoralWeights, grantSize float64) float64 {
	best := 0.0
	first := true
	for _, loc := range LocationsFor(charity) {
		inputs, ok := InputsForLocation(charity, loc.ID, grantSize)
		if !ok {
			continue
		}
		result := CalculateCharity(ApplyMoralWeights(inputs, w))
		if first || result.FinalXBenchmark > best {
			best = result.FinalXBenchmark
			first = false
		}
	}
	return best
}

// RunSensitivitySweep evaluates every charity at pointCount evenly spaced
// values of one parameter across its fixed range. Each point carries the best
// multiple per charity, keyed both by type and by string ID for serialization.
// pointCount below 2 is coerced to 2 so both endpoints always appear.
func RunSensitivitySweep(base MoralWeights, param SweepParam, grantSize float64, pointCount int) []SweepPoint {
	if pointCount < 2 {
		pointCount = 2
	}
	min, max := param.Range()
	step := (max - min) / float64(pointCount-1)

	points := make([]SweepPoint, 0, pointCount)
	for i := 0; i < pointCount; i++ {
		value := min + step*float64(i)
		w := applySweepValue(base, param, value)
		point := SweepPoint{
			Value:     value,
			Multiples: make(map[CharityType]float64, len(AllCharityTypes)),
			ByID:      make(map[string]float64, len(AllCharityTypes)),
		}
		for _, charity := range AllCharityTypes {
			m := bestMultipleAcrossLocations(charity, w, grantSize)
			point.Multiples[charity] = m
			point.ByID[charity.ID()] = m
		}
		points = append(points, point)
	}
	return points
}
