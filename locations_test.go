package main

import (
	"math"
	"testing"
)

func TestEveryLocationProducesUsableResults(t *testing.T) {
	for _, charity := range AllCharityTypes {
		locations := LocationsFor(charity)
		if len(locations) == 0 {
			t.Errorf("%s: no locations registered", charity.ID())
			continue
		}
		for _, loc := range locations {
			inputs, ok := InputsForLocation(charity, loc.ID, DefaultGrantSize)
			if !ok {
				t.Errorf("%s/%s: listed location not resolvable", charity.ID(), loc.ID)
				continue
			}
			u := CalculateCharity(inputs)

			if u.FinalXBenchmark <= 0 || math.IsInf(u.FinalXBenchmark, 0) || math.IsNaN(u.FinalXBenchmark) {
				t.Errorf("%s/%s: final multiple %f not positive finite", charity.ID(), loc.ID, u.FinalXBenchmark)
			}
			if u.PeopleReached <= 0 {
				t.Errorf("%s/%s: people reached %f not positive", charity.ID(), loc.ID, u.PeopleReached)
			}
			switch charity {
			case CharityDeworming:
				if !math.IsInf(u.CostPerDeathAverted, 1) {
					t.Errorf("%s/%s: expected +Inf cost per death", charity.ID(), loc.ID)
				}
			default:
				if u.DeathsAvertedUnder5 <= 0 {
					t.Errorf("%s/%s: deaths averted %f not positive", charity.ID(), loc.ID, u.DeathsAvertedUnder5)
				}
			}
		}
	}
}

func TestLocationCounts(t *testing.T) {
	tests := []struct {
		charity CharityType
		count   int
	}{
		{CharityNets, 8},
		{CharitySMC, 5},
		{CharityVitaminA, 6},
		{CharityVaccination, 6},
		{CharityCashTransfer, 5},
		{CharityDeworming, 4},
	}
	for _, tt := range tests {
		if got := len(LocationsFor(tt.charity)); got != tt.count {
			t.Errorf("%s: %d locations, want %d", tt.charity.ID(), got, tt.count)
		}
	}
}

func TestDefaultLocationIsFirstInTable(t *testing.T) {
	tests := []struct {
		charity CharityType
		want    string
	}{
		{CharityNets, "chad"},
		{CharitySMC, "burkina_faso"},
		{CharityVitaminA, "burkina_faso"},
		{CharityVaccination, "bauchi"},
		{CharityCashTransfer, "kenya"},
		{CharityDeworming, "india"},
	}
	for _, tt := range tests {
		if got := DefaultLocationID(tt.charity); got != tt.want {
			t.Errorf("%s: default location %q, want %q", tt.charity.ID(), got, tt.want)
		}
		if first := LocationsFor(tt.charity)[0].ID; first != tt.want {
			t.Errorf("%s: first listed location %q, want %q", tt.charity.ID(), first, tt.want)
		}
	}
}

func TestInputsForLocationUnknown(t *testing.T) {
	if _, ok := InputsForLocation(CharityNets, "atlantis", DefaultGrantSize); ok {
		t.Errorf("unknown location should not resolve")
	}
	if _, ok := InputsForLocation(CharitySMC, "nigeria_gf", DefaultGrantSize); ok {
		t.Errorf("a location registered for another charity should not resolve")
	}
}

func TestInputsForLocationSetsGrant(t *testing.T) {
	inputs, ok := InputsForLocation(CharityNets, "chad", 250000)
	if !ok {
		t.Fatal("chad location missing")
	}
	if inputs.Grant() != 250000 {
		t.Errorf("grant = %f, want 250000", inputs.Grant())
	}
}

func TestInputsForLocationReturnsFreshCopy(t *testing.T) {
	first, _ := InputsForLocation(CharityNets, "chad", DefaultGrantSize)
	mutated := first.(NetsInputs)
	mutated.MalariaMortalityRate = 99

	second, _ := InputsForLocation(CharityNets, "chad", DefaultGrantSize)
	if second.(NetsInputs).MalariaMortalityRate == 99 {
		t.Errorf("mutating a returned inputs value leaked into the registry")
	}
}
