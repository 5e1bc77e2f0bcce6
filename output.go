package main

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney formats a float as a currency string
func FormatMoney(amount float64) string {
	if amount >= 1000000 {
		return fmt.Sprintf("$%.2fM", amount/1000000)
	}
	if amount >= 1000 {
		return fmt.Sprintf("$%.0fk", amount/1000)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatMultiple formats a cost-effectiveness multiple like "7.4x"
func FormatMultiple(m float64) string {
	return fmt.Sprintf("%.1fx", m)
}

// FormatCostPerDeath renders a cost-per-death figure; +Inf means the charity
// has no mortality pathway and is shown as a dash rather than a number.
func FormatCostPerDeath(c float64) string {
	if math.IsInf(c, 1) {
		return "—"
	}
	return FormatMoney(c)
}

// FormatCount formats a people/deaths count with thousands grouping
func FormatCount(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	}
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", n/1000)
	}
	return fmt.Sprintf("%.1f", n)
}

// PrintHeader prints the run header with the configuration summary
func PrintHeader(config *Config) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║              CHARITY COST-EFFECTIVENESS FORECAST                             ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("──────────────")
	fmt.Printf("  Grant Size: %s\n", FormatMoney(config.GetGrantSize()))

	w := config.GetMoralWeights()
	fmt.Printf("  Moral Weights: under-5 %.1f (malaria) / %.1f (vitamin A) / %.1f (vaccine)\n",
		Under5Weight(w, KindMalaria), Under5Weight(w, KindVitaminA), Under5Weight(w, KindVaccine))
	fmt.Printf("  Age 5+ Weight: %.1f | Discount Rate: %.1f%%\n",
		Age5PlusWeight(w), w.DiscountRate*100)
	fmt.Printf("  Benchmark: %.5f units of value per dollar (unconditional cash)\n",
		BenchmarkValuePerDollar)
	fmt.Println()
}

// comparisonRow pairs a charity and location with its unified results
type comparisonRow struct {
	Charity  CharityType
	Location string
	Results  UnifiedResults
}

// PrintAllComparison prints the cross-charity comparison table and highlights
// the best final multiple and the lowest finite cost per death.
func PrintAllComparison(rows []comparisonRow) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                         CHARITY COMPARISON                                   ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()

	fmt.Printf("%-28s %-14s │ %10s %10s %12s │ %9s %9s\n",
		"Charity", "Location", "Reached", "Deaths", "Cost/Death", "Initial", "Final")
	fmt.Println(strings.Repeat("─", 103))

	bestFinalIdx := -1
	bestCostIdx := -1
	for i, row := range rows {
		if bestFinalIdx < 0 || row.Results.FinalXBenchmark > rows[bestFinalIdx].Results.FinalXBenchmark {
			bestFinalIdx = i
		}
		// Infinite cost per death (no mortality pathway) never wins
		if !math.IsInf(row.Results.CostPerDeathAverted, 1) {
			if bestCostIdx < 0 || row.Results.CostPerDeathAverted < rows[bestCostIdx].Results.CostPerDeathAverted {
				bestCostIdx = i
			}
		}
	}

	for i, row := range rows {
		marker := " "
		if i == bestFinalIdx {
			marker = "★"
		}
		fmt.Printf("%-28s %-14s │ %10s %10s %12s │ %8s %8s %s\n",
			row.Charity.String(),
			row.Location,
			FormatCount(row.Results.PeopleReached),
			FormatCount(row.Results.DeathsAvertedUnder5),
			FormatCostPerDeath(row.Results.CostPerDeathAverted),
			FormatMultiple(row.Results.InitialXBenchmark),
			FormatMultiple(row.Results.FinalXBenchmark),
			marker)
	}
	fmt.Println(strings.Repeat("─", 103))

	fmt.Println()
	if bestFinalIdx >= 0 {
		best := rows[bestFinalIdx]
		fmt.Printf("  Best value: %s (%s) at %s the benchmark\n",
			best.Charity.String(), best.Location, FormatMultiple(best.Results.FinalXBenchmark))
	}
	if bestCostIdx >= 0 {
		cheapest := rows[bestCostIdx]
		fmt.Printf("  Lowest cost per death averted: %s (%s) at %s\n",
			cheapest.Charity.String(), cheapest.Location,
			FormatCostPerDeath(cheapest.Results.CostPerDeathAverted))
	}
	fmt.Println()
}

// PrintCharityBreakdown prints the staged intermediates for one charity by
// running the underlying model directly, so every adjustment step is visible.
func PrintCharityBreakdown(inputs CharityInputs) {
	fmt.Println()
	fmt.Printf("╔══════════════════════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║ %-76s ║\n", inputs.Charity().String())
	fmt.Printf("╚══════════════════════════════════════════════════════════════════════════════╝\n")
	fmt.Println()
	fmt.Printf("  Grant Size: %s\n", FormatMoney(inputs.Grant()))
	fmt.Println()

	switch in := inputs.(type) {
	case NetsInputs:
		r := CalculateNets(in)
		fmt.Printf("  Children under 5 reached:    %s\n", FormatCount(r.PeopleUnder5Reached))
		fmt.Printf("  Deaths averted (under 5):    %s\n", FormatCount(r.DeathsAvertedUnder5))
		fmt.Printf("  Cost per death averted:      %s\n", FormatMoney(r.CostPerDeathAverted))
		fmt.Println()
		fmt.Printf("  Initial multiple:            %s\n", FormatMultiple(r.InitialXBenchmark))
		fmt.Printf("  + older-age mortalities:     %s\n", FormatMultiple(r.XAfterOlderMortalities))
		fmt.Printf("  + developmental benefits:    %s\n", FormatMultiple(r.XAfterDevelopmental))
		fmt.Printf("  Final multiple:              %s\n", FormatMultiple(r.FinalXBenchmark))
		fmt.Printf("  Final cost per life saved:   %s\n", FormatMoney(r.FinalCostPerLifeSaved))
	case SMCInputs:
		r := CalculateSMC(in)
		fmt.Printf("  Children reached:            %s\n", FormatCount(r.ChildrenReached))
		fmt.Printf("  Deaths averted (under 5):    %s\n", FormatCount(r.DeathsAvertedUnder5))
		fmt.Printf("  Cost per death averted:      %s\n", FormatMoney(r.CostPerDeathAverted))
		fmt.Println()
		fmt.Printf("  Initial multiple:            %s\n", FormatMultiple(r.InitialXBenchmark))
		fmt.Printf("  Final multiple:              %s\n", FormatMultiple(r.FinalXBenchmark))
		fmt.Printf("  Final cost per life saved:   %s\n", FormatMoney(r.FinalCostPerLifeSaved))
	case VitaminAInputs:
		r := CalculateVitaminA(in)
		fmt.Printf("  Children under 5 reached:    %s\n", FormatCount(r.PeopleUnder5Reached))
		fmt.Printf("  Incremental coverage:        %s\n", FormatCount(r.IncrementalChildrenCovered))
		fmt.Printf("  Deaths averted (under 5):    %s\n", FormatCount(r.DeathsAvertedUnder5))
		fmt.Printf("  Cost per death averted:      %s\n", FormatMoney(r.CostPerDeathAverted))
		fmt.Println()
		fmt.Printf("  Initial multiple:            %s\n", FormatMultiple(r.InitialXBenchmark))
		fmt.Printf("  Final multiple:              %s\n", FormatMultiple(r.FinalXBenchmark))
	case VaccinationInputs:
		r := CalculateVaccination(in)
		fmt.Printf("  Children reached:            %s\n", FormatCount(r.ChildrenReached))
		fmt.Printf("  Additional vaccinations:     %s\n", FormatCount(r.AdditionalChildrenVaccinated))
		fmt.Printf("  Deaths averted (under 5):    %s\n", FormatCount(r.DeathsAvertedUnder5))
		fmt.Printf("  Cost per death averted:      %s\n", FormatMoney(r.CostPerDeathAverted))
		fmt.Println()
		fmt.Printf("  Initial multiple:            %s\n", FormatMultiple(r.InitialXBenchmark))
		fmt.Printf("  Final multiple:              %s\n", FormatMultiple(r.FinalXBenchmark))
	case CashTransferInputs:
		r := CalculateCashTransfer(in)
		fmt.Printf("  Households reached:          %s\n", FormatCount(r.HouseholdsReached))
		fmt.Printf("  People reached:              %s\n", FormatCount(r.PeopleReached))
		fmt.Printf("  Deaths averted (under 5):    %s\n", FormatCount(r.DeathsAvertedUnder5))
		fmt.Println()
		fmt.Printf("  Direct consumption value:    %.1f\n", r.DirectConsumptionValue)
		fmt.Printf("  Spillover value:             %.1f\n", r.SpilloverValue)
		fmt.Printf("  Mortality value:             %.1f\n", r.MortalityValue)
		fmt.Printf("  Multiple of benchmark:       %s\n", FormatMultiple(r.XBenchmark))
	case DewormingInputs:
		r := CalculateDeworming(in)
		fmt.Printf("  Children treated:            %s\n", FormatCount(r.ChildrenTreated))
		fmt.Printf("  Children benefiting:         %s\n", FormatCount(r.ChildrenBenefiting))
		fmt.Println()
		fmt.Printf("  Annual income gain:          %s\n", FormatMoney(r.AnnualIncomeGain))
		fmt.Printf("  Present value of gains:      %s\n", FormatMoney(r.PresentValueGain))
		fmt.Printf("  Initial multiple:            %s\n", FormatMultiple(r.InitialXBenchmark))
		fmt.Printf("  Final multiple:              %s\n", FormatMultiple(r.FinalXBenchmark))
		fmt.Println()
		fmt.Println("  (No mortality pathway: value comes from long-run income gains.)")
	}
	fmt.Println()
}

// PrintMonteCarloSummary prints one charity's uncertainty simulation results
func PrintMonteCarloSummary(charity CharityType, location string, r MonteCarloResults) {
	fmt.Println()
	fmt.Printf("  %s (%s) — %d trials, %d retained\n",
		charity.String(), location, r.NumSimulations, r.SamplesRetained)
	fmt.Println("  " + strings.Repeat("─", 70))
	fmt.Printf("    Mean: %s   Median: %s   StdDev: %.2f\n",
		FormatMultiple(r.Mean), FormatMultiple(r.Median), r.StdDev)
	fmt.Printf("    P5: %s   P25: %s   P75: %s   P95: %s\n",
		FormatMultiple(r.P5), FormatMultiple(r.P25), FormatMultiple(r.P75), FormatMultiple(r.P95))
	fmt.Printf("    80%% interval: %s to %s\n", FormatMultiple(r.P10), FormatMultiple(r.P90))
}

// PrintSweepTable prints one parameter sweep as a console table, one column
// per charity.
func PrintSweepTable(param SweepParam, points []SweepPoint) {
	fmt.Println()
	fmt.Printf("  Sweep: %s\n", param.String())
	fmt.Println("  " + strings.Repeat("─", 88))

	fmt.Printf("  %10s │", "Value")
	for _, charity := range AllCharityTypes {
		fmt.Printf(" %11s", shortCharityLabel(charity))
	}
	fmt.Println()

	for _, point := range points {
		if param == SweepDiscountRate {
			fmt.Printf("  %9.1f%% │", point.Value*100)
		} else {
			fmt.Printf("  %10.1f │", point.Value)
		}
		for _, charity := range AllCharityTypes {
			fmt.Printf(" %11s", FormatMultiple(point.Multiples[charity]))
		}
		fmt.Println()
	}
	fmt.Println("  " + strings.Repeat("─", 88))
}

func shortCharityLabel(c CharityType) string {
	switch c {
	case CharityNets:
		return "Nets"
	case CharitySMC:
		return "SMC"
	case CharityVitaminA:
		return "Vitamin A"
	case CharityVaccination:
		return "Vaccines"
	case CharityCashTransfer:
		return "Cash"
	case CharityDeworming:
		return "Deworming"
	default:
		return c.String()
	}
}

// PrintLocationsList prints every charity's available locations with IDs
func PrintLocationsList() {
	fmt.Println()
	fmt.Println("Available locations (use the ID with -location):")
	fmt.Println()
	for _, charity := range AllCharityTypes {
		fmt.Printf("  %s:\n", charity.String())
		for _, loc := range LocationsFor(charity) {
			marker := " "
			if loc.ID == DefaultLocationID(charity) {
				marker = "*"
			}
			fmt.Printf("   %s %-16s %s\n", marker, loc.ID, loc.Name)
		}
		fmt.Println()
	}
	fmt.Println("  (* = default location)")
}
