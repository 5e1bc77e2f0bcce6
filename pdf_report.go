package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFReport generates the grant comparison report
type PDFReport struct {
	pdf    *fpdf.Fpdf
	config *Config
	rows   []comparisonRow
}

// GeneratePDFReport writes the comparison PDF into the configured report
// directory and returns its path.
func GeneratePDFReport(config *Config, rows []comparisonRow, timestamp string) (string, error) {
	report := &PDFReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		config: config,
		rows:   rows,
	}

	report.pdf.SetMargins(marginLeft, marginTop, marginRight)
	report.pdf.SetAutoPageBreak(true, marginBottom)

	report.addTitlePage(timestamp)
	report.addComparisonTable()
	report.addCharityPages()

	if err := os.MkdirAll(config.GetReportDir(), 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	path := filepath.Join(config.GetReportDir(), fmt.Sprintf("charity_forecast_%s.pdf", timestamp))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := report.pdf.Output(f); err != nil {
		return "", err
	}
	return path, nil
}

func (r *PDFReport) addTitlePage(timestamp string) {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 28)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(50)
	r.pdf.CellFormat(contentWidth, 15, "Charity Cost-Effectiveness", "", 1, "C", false, 0, "")
	r.pdf.CellFormat(contentWidth, 15, "Forecast", "", 1, "C", false, 0, "")

	r.pdf.Ln(10)
	r.pdf.SetFont("Arial", "", 14)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(contentWidth, 8,
		fmt.Sprintf("Grant: %s", FormatMoney(r.config.GetGrantSize())), "", 1, "C", false, 0, "")
	r.pdf.CellFormat(contentWidth, 8,
		"Value as a multiple of unconditional cash transfers", "", 1, "C", false, 0, "")

	r.pdf.Ln(10)
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated %s", timestamp), "", 1, "C", false, 0, "")

	// Moral weight summary
	w := r.config.GetMoralWeights()
	r.pdf.Ln(20)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 7, "Moral Weights", "", 1, "L", false, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(40, 40, 40)
	r.pdf.CellFormat(contentWidth, 6,
		fmt.Sprintf("Under-5 death averted: %.1f (malaria), %.1f (vitamin A), %.1f (vaccine-preventable)",
			Under5Weight(w, KindMalaria), Under5Weight(w, KindVitaminA), Under5Weight(w, KindVaccine)),
		"", 1, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth, 6,
		fmt.Sprintf("Age 5+ death averted: %.1f (population-weighted) | Discount rate: %.1f%%",
			Age5PlusWeight(w), w.DiscountRate*100),
		"", 1, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth, 6,
		fmt.Sprintf("Benchmark: %.5f units of value per dollar given as cash", BenchmarkValuePerDollar),
		"", 1, "L", false, 0, "")
}

func (r *PDFReport) addComparisonTable() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, "Charity Comparison", "", 1, "L", false, 0, "")
	r.pdf.Ln(4)

	// Header row
	colWidths := []float64{52, 26, 24, 24, 28, 13, 13}
	headers := []string{"Charity", "Location", "Reached", "Deaths", "Cost/Death", "Init.", "Final"}

	r.pdf.SetFont("Arial", "B", 9)
	r.pdf.SetFillColor(230, 236, 245)
	r.pdf.SetTextColor(40, 40, 40)
	for i, h := range headers {
		align := "R"
		if i == 0 || i == 1 {
			align = "L"
		}
		r.pdf.CellFormat(colWidths[i], 8, h, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)

	bestIdx := -1
	for i, row := range r.rows {
		if bestIdx < 0 || row.Results.FinalXBenchmark > r.rows[bestIdx].Results.FinalXBenchmark {
			bestIdx = i
		}
	}

	r.pdf.SetFont("Arial", "", 9)
	for i, row := range r.rows {
		fill := false
		if i == bestIdx && len(r.rows) > 1 {
			r.pdf.SetFillColor(223, 240, 224)
			fill = true
		}
		u := row.Results
		cells := []string{
			row.Charity.String(),
			row.Location,
			FormatCount(u.PeopleReached),
			FormatCount(u.DeathsAvertedUnder5),
			FormatCostPerDeathPDF(u.CostPerDeathAverted),
			FormatMultiple(u.InitialXBenchmark),
			FormatMultiple(u.FinalXBenchmark),
		}
		for j, c := range cells {
			align := "R"
			if j == 0 || j == 1 {
				align = "L"
			}
			r.pdf.CellFormat(colWidths[j], 7, c, "1", 0, align, fill, 0, "")
		}
		r.pdf.Ln(-1)
	}

	if bestIdx >= 0 && len(r.rows) > 1 {
		best := r.rows[bestIdx]
		r.pdf.Ln(6)
		r.pdf.SetFont("Arial", "I", 10)
		r.pdf.SetTextColor(22, 101, 52)
		r.pdf.CellFormat(contentWidth, 6,
			fmt.Sprintf("Best value: %s (%s) at %s the benchmark",
				best.Charity.String(), best.Location, FormatMultiple(best.Results.FinalXBenchmark)),
			"", 1, "L", false, 0, "")
	}
}

// addCharityPages writes one short page per charity with the headline figures
func (r *PDFReport) addCharityPages() {
	for _, row := range r.rows {
		r.pdf.AddPage()

		r.pdf.SetFont("Arial", "B", 16)
		r.pdf.SetTextColor(0, 51, 102)
		r.pdf.CellFormat(contentWidth, 10, row.Charity.String(), "", 1, "L", false, 0, "")
		r.pdf.SetFont("Arial", "", 10)
		r.pdf.SetTextColor(100, 100, 100)
		r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Location: %s", row.Location), "", 1, "L", false, 0, "")
		r.pdf.Ln(6)

		u := row.Results
		r.addFigureLine("People reached", FormatCount(u.PeopleReached))
		if math.IsInf(u.CostPerDeathAverted, 1) {
			r.addFigureLine("Deaths averted (under 5)", "n/a (no mortality pathway)")
		} else {
			r.addFigureLine("Deaths averted (under 5)", FormatCount(u.DeathsAvertedUnder5))
			r.addFigureLine("Cost per death averted", FormatMoney(u.CostPerDeathAverted))
		}
		r.addFigureLine("Initial multiple of benchmark", FormatMultiple(u.InitialXBenchmark))
		r.addFigureLine("Final multiple of benchmark", FormatMultiple(u.FinalXBenchmark))
	}
}

func (r *PDFReport) addFigureLine(label, value string) {
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(40, 40, 40)
	r.pdf.CellFormat(90, 8, label, "", 0, "L", false, 0, "")
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.CellFormat(contentWidth-90, 8, value, "", 1, "R", false, 0, "")
}

// FormatCostPerDeathPDF renders a cost-per-death figure for PDF cells, where
// the console's em-dash glyph is not available in the standard fonts.
func FormatCostPerDeathPDF(c float64) string {
	if math.IsInf(c, 1) {
		return "n/a"
	}
	return FormatMoney(c)
}
