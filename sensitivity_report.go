package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// charitySeriesColors gives each charity a stable color in charts and legends
var charitySeriesColors = map[CharityType]string{
	CharityNets:         "#2563eb", // Blue
	CharitySMC:          "#16a34a", // Green
	CharityVitaminA:     "#ea580c", // Orange
	CharityVaccination:  "#9333ea", // Purple
	CharityCashTransfer: "#64748b", // Gray
	CharityDeworming:    "#ca8a04", // Amber
}

// GenerateSensitivityReport writes the HTML sweep report into the configured
// report directory and returns the path to index.html.
func GenerateSensitivityReport(config *Config, params []SweepParam, sweeps map[SweepParam][]SweepPoint) (string, error) {
	timestamp := time.Now().Format("2006-01-02_1504")
	outputDir := filepath.Join(config.GetReportDir(), fmt.Sprintf("sensitivity_%s", timestamp))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(outputDir, "index.html")
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintf(f, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Moral Weight Sensitivity Analysis</title>
    <style>
        * { box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: #f1f5f9;
            color: #1e293b;
            margin: 0;
            padding: 2rem;
            line-height: 1.6;
        }
        h1 { font-size: 1.4rem; }
        .subtitle { color: #64748b; font-size: 0.875rem; margin-bottom: 2rem; }
        .card {
            background: white;
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }
        .card h2 { font-size: 1rem; margin-top: 0; }
        table { border-collapse: collapse; font-size: 0.8rem; width: 100%%; }
        th, td { text-align: right; padding: 0.35rem 0.6rem; border-bottom: 1px solid #e2e8f0; }
        th:first-child, td:first-child { text-align: left; }
        th { color: #64748b; text-transform: uppercase; font-size: 0.7rem; letter-spacing: 0.3px; }
        .legend { font-size: 0.8rem; margin-bottom: 0.5rem; }
        .legend span { margin-right: 1rem; }
        .swatch {
            display: inline-block;
            width: 10px;
            height: 10px;
            border-radius: 2px;
            margin-right: 0.3rem;
        }
        svg { display: block; margin-bottom: 1rem; }
    </style>
</head>
<body>
    <h1>Moral Weight Sensitivity Analysis</h1>
    <p class="subtitle">Grant: %s &middot; Best multiple of the cash benchmark across each charity's locations &middot; Generated %s</p>
`, FormatMoney(config.GetGrantSize()), timestamp)

	for _, param := range params {
		writeSweepSection(f, param, sweeps[param])
	}

	fmt.Fprint(f, `</body>
</html>
`)

	return filename, nil
}

// writeSweepSection writes one parameter's chart and table
func writeSweepSection(f *os.File, param SweepParam, points []SweepPoint) {
	fmt.Fprintf(f, "    <div class=\"card\">\n        <h2>%s</h2>\n", param.String())

	// Legend
	fmt.Fprint(f, "        <div class=\"legend\">")
	for _, charity := range AllCharityTypes {
		fmt.Fprintf(f, "<span><span class=\"swatch\" style=\"background:%s\"></span>%s</span>",
			charitySeriesColors[charity], shortCharityLabel(charity))
	}
	fmt.Fprint(f, "</div>\n")

	writeSweepChart(f, param, points)
	writeSweepTable(f, param, points)

	fmt.Fprint(f, "    </div>\n")
}

// writeSweepChart renders the series as an inline SVG line chart
func writeSweepChart(f *os.File, param SweepParam, points []SweepPoint) {
	const (
		width   = 760.0
		height  = 260.0
		padLeft = 50.0
		padBot  = 30.0
		padTop  = 10.0
	)

	if len(points) == 0 {
		return
	}

	// Y scale spans zero to the maximum multiple in any series
	maxY := 0.0
	for _, p := range points {
		for _, m := range p.Multiples {
			if m > maxY {
				maxY = m
			}
		}
	}
	if maxY <= 0 {
		maxY = 1
	}

	minX := points[0].Value
	maxX := points[len(points)-1].Value
	spanX := maxX - minX
	if spanX == 0 {
		spanX = 1
	}

	plotW := width - padLeft - 10
	plotH := height - padBot - padTop

	fmt.Fprintf(f, "        <svg width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.0f %.0f\">\n",
		width, height, width, height)

	// Axes and gridlines with y labels
	for i := 0; i <= 4; i++ {
		frac := float64(i) / 4
		y := padTop + plotH*(1-frac)
		fmt.Fprintf(f, "            <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#e2e8f0\"/>\n",
			padLeft, y, width-10, y)
		fmt.Fprintf(f, "            <text x=\"%.1f\" y=\"%.1f\" font-size=\"10\" fill=\"#64748b\" text-anchor=\"end\">%.1fx</text>\n",
			padLeft-6, y+3, maxY*frac)
	}

	// X labels at the endpoints and midpoint
	for _, frac := range []float64{0, 0.5, 1} {
		x := padLeft + plotW*frac
		value := minX + spanX*frac
		label := fmt.Sprintf("%.0f", value)
		if param == SweepDiscountRate {
			label = fmt.Sprintf("%.0f%%", value*100)
		}
		fmt.Fprintf(f, "            <text x=\"%.1f\" y=\"%.1f\" font-size=\"10\" fill=\"#64748b\" text-anchor=\"middle\">%s</text>\n",
			x, height-8, label)
	}

	// One polyline per charity
	for _, charity := range AllCharityTypes {
		fmt.Fprintf(f, "            <polyline fill=\"none\" stroke=\"%s\" stroke-width=\"2\" points=\"",
			charitySeriesColors[charity])
		for _, p := range points {
			x := padLeft + plotW*(p.Value-minX)/spanX
			y := padTop + plotH*(1-p.Multiples[charity]/maxY)
			fmt.Fprintf(f, "%.1f,%.1f ", x, y)
		}
		fmt.Fprint(f, "\"/>\n")
	}

	fmt.Fprint(f, "        </svg>\n")
}

// writeSweepTable renders the raw sweep values
func writeSweepTable(f *os.File, param SweepParam, points []SweepPoint) {
	fmt.Fprint(f, "        <table>\n            <tr><th>Value</th>")
	for _, charity := range AllCharityTypes {
		fmt.Fprintf(f, "<th>%s</th>", shortCharityLabel(charity))
	}
	fmt.Fprint(f, "</tr>\n")

	for _, p := range points {
		label := fmt.Sprintf("%.1f", p.Value)
		if param == SweepDiscountRate {
			label = fmt.Sprintf("%.1f%%", p.Value*100)
		}
		fmt.Fprintf(f, "            <tr><td>%s</td>", label)
		for _, charity := range AllCharityTypes {
			fmt.Fprintf(f, "<td>%.1fx</td>", p.Multiples[charity])
		}
		fmt.Fprint(f, "</tr>\n")
	}
	fmt.Fprint(f, "        </table>\n")
}
