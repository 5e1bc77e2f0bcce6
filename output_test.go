package main

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"millions", 2500000, "$2.50M"},
		{"exactly a million", 1000000, "$1.00M"},
		{"thousands", 45000, "$45k"},
		{"small amount", 12.5, "$12.50"},
		{"zero", 0, "$0.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.amount); got != tt.want {
			t.Errorf("%s: FormatMoney(%f) = %q, want %q", tt.name, tt.amount, got, tt.want)
		}
	}
}

func TestFormatMultiple(t *testing.T) {
	if got := FormatMultiple(15.115159880428319); got != "15.1x" {
		t.Errorf("FormatMultiple = %q, want 15.1x", got)
	}
	if got := FormatMultiple(0.64); got != "0.6x" {
		t.Errorf("FormatMultiple = %q, want 0.6x", got)
	}
}

func TestFormatCostPerDeath(t *testing.T) {
	if got := FormatCostPerDeath(math.Inf(1)); got != "—" {
		t.Errorf("infinite cost should render as a dash, got %q", got)
	}
	if got := FormatCostPerDeath(3821.105794790006); got != "$4k" {
		t.Errorf("FormatCostPerDeath = %q, want $4k", got)
	}
	if got := FormatCostPerDeathPDF(math.Inf(1)); got != "n/a" {
		t.Errorf("PDF variant should render n/a, got %q", got)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    float64
		want string
	}{
		{2222222.222, "2.22M"},
		{86956.52, "87.0k"},
		{261.7, "261.7"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.want {
			t.Errorf("FormatCount(%f) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
