// gmm-spectrum prints the Abrahamson & Silva (1997) response spectrum for
// one magnitude/distance/site tuple: median spectral acceleration with
// one-sigma bands over a log-spaced period grid.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/quakemetrics/hazcalc/pkg/gmm"
)

func main() {
	var (
		m         = flag.Float64("m", 6.5, "Moment magnitude")
		r         = flag.Float64("r", 10.0, "Rupture distance in km")
		soil      = flag.Bool("soil", false, "Deep-soil site (default rock)")
		fault     = flag.String("fault", "strike-slip", "Fault style: strike-slip, reverse-oblique or reverse")
		hw        = flag.Bool("hanging-wall", false, "Site on the hanging wall")
		points    = flag.Int("points", 40, "Number of period samples")
		csvOutput = flag.String("csv", "", "Optional CSV output file path")
	)
	flag.Parse()

	style, err := parseFaultStyle(*fault)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *points < 2 {
		fmt.Fprintln(os.Stderr, "Error: -points must be at least 2")
		os.Exit(1)
	}

	fmt.Printf("AS97 Response Spectrum\n")
	fmt.Printf("======================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Magnitude: %.2f\n", *m)
	fmt.Printf("  Distance: %.1f km\n", *r)
	site := "rock"
	if *soil {
		site = "deep soil"
	}
	fmt.Printf("  Site: %s, %s, hanging wall: %v\n\n", site, *fault, *hw)

	fmt.Printf("%10s | %12s | %12s | %12s | %8s\n", "T (s)", "Median (g)", "-1 sigma", "+1 sigma", "sigma_ln")
	fmt.Printf("-----------+--------------+--------------+--------------+----------\n")

	type row struct {
		period, median, lo, hi, sigma float64
	}
	rows := make([]row, 0, *points)

	llo, lhi := math.Log(gmm.MinPeriod), math.Log(gmm.MaxPeriod)
	for i := 0; i < *points; i++ {
		period := math.Exp(llo + (lhi-llo)*float64(i)/float64(*points-1))
		pred := gmm.Evaluate(period, *m, *r, *soil, style, *hw)
		rows = append(rows, row{
			period: pred.Period,
			median: pred.Median(),
			lo:     math.Exp(pred.MeanLnSA - pred.StdLnSA),
			hi:     math.Exp(pred.MeanLnSA + pred.StdLnSA),
			sigma:  pred.StdLnSA,
		})
	}

	for _, rw := range rows {
		fmt.Printf("%10.4f | %12.5g | %12.5g | %12.5g | %8.3f\n",
			rw.period, rw.median, rw.lo, rw.hi, rw.sigma)
	}

	if *csvOutput != "" {
		file, err := os.Create(*csvOutput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()

		writer := csv.NewWriter(file)
		defer writer.Flush()

		writer.Write([]string{"Period_s", "Median_g", "MinusSigma_g", "PlusSigma_g", "SigmaLn"})
		for _, rw := range rows {
			writer.Write([]string{
				strconv.FormatFloat(rw.period, 'g', -1, 64),
				strconv.FormatFloat(rw.median, 'g', -1, 64),
				strconv.FormatFloat(rw.lo, 'g', -1, 64),
				strconv.FormatFloat(rw.hi, 'g', -1, 64),
				strconv.FormatFloat(rw.sigma, 'g', -1, 64),
			})
		}
		fmt.Printf("\nSpectrum exported to: %s\n", *csvOutput)
	}
}

func parseFaultStyle(name string) (gmm.FaultStyle, error) {
	switch name {
	case "strike-slip", "normal":
		return gmm.StrikeSlip, nil
	case "reverse-oblique":
		return gmm.ReverseOblique, nil
	case "reverse":
		return gmm.Reverse, nil
	}
	return 0, fmt.Errorf("unknown fault style %q", name)
}
