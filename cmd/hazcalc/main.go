package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"syscall"

	"github.com/quakemetrics/hazcalc/internal/log"
	"github.com/quakemetrics/hazcalc/internal/server"
	"github.com/quakemetrics/hazcalc/pkg/config"
	"github.com/quakemetrics/hazcalc/pkg/hazard"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	cfgFile := flag.String("config", "scenario.yaml", "Path to the YAML hazard scenario")
	csvOutput := flag.String("csv", "", "Optional CSV output file for the hazard curve")
	serveAddr := flag.String("serve", "", "Run the REST API on this address (e.g. :8080) instead of a one-shot computation")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("hazcalc %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *serveAddr != "" {
		if err := serve(*serveAddr); err != nil {
			log.Errorf("Server error: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*cfgFile, *csvOutput); err != nil {
		log.Errorf("Hazard computation failed: %v", err)
		os.Exit(1)
	}
}

func serve(addr string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var wg sync.WaitGroup
	ctrl := server.NewController(ctx, &wg, addr, log.GetSugaredLogger())
	err := ctrl.Start()
	wg.Wait()
	return err
}

func run(cfgFile, csvOutput string) error {
	filename, _ := filepath.Abs(cfgFile)
	scenario, err := config.Load(filename)
	if err != nil {
		return fmt.Errorf("error reading scenario file. Did you pass the -config flag? Run with -h for help: %w", err)
	}

	dist, err := scenario.Distribution()
	if err != nil {
		return err
	}
	site, err := scenario.SiteConfig()
	if err != nil {
		return err
	}

	warnExtrapolation(site)
	if dist.MMax() > 8.5 {
		log.Warnf("maximum magnitude %g is beyond the GMM's calibration range (~8.5); results are extrapolated", dist.MMax())
	}

	eng, err := hazard.New(dist, site, scenario.DeltaM)
	if err != nil {
		return err
	}
	if eng.PeriodClamped {
		log.Warnf("period %g s outside the GMM's tabulated range [0.01, 5.0], clamped", site.Period)
	}

	points, err := eng.Curve(scenario.Levels())
	if err != nil {
		return err
	}

	displayCurve(scenario, eng, points)

	if scenario.Disaggregation != nil {
		if err := displayDisaggregation(scenario, eng); err != nil {
			return err
		}
	}

	if csvOutput != "" {
		if err := exportCSV(csvOutput, points); err != nil {
			return fmt.Errorf("error writing CSV: %w", err)
		}
		fmt.Printf("\nHazard curve exported to: %s\n", csvOutput)
	}

	return nil
}

// warnExtrapolation flags magnitude/distance outside the GMM's approximate
// calibration domain. The model evaluates anyway; the warning is the
// documented extrapolation policy.
func warnExtrapolation(site hazard.SiteConfig) {
	if site.Distance > 300 {
		log.Warnf("distance %g km is beyond the GMM's calibration range (~300 km); results are extrapolated", site.Distance)
	}
}

func displayCurve(scenario *config.Scenario, eng *hazard.Engine, points []hazard.CurvePoint) {
	fmt.Printf("Seismic Hazard Curve\n")
	fmt.Printf("====================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Source Model: %s\n", scenario.Source.Model)
	fmt.Printf("  Annual Rate (m >= %.2f): %.4g /yr\n", scenario.Source.MMin, scenario.Source.Rate)
	fmt.Printf("  Distance: %.1f km\n", scenario.Site.DistanceKM)
	if scenario.Site.Period <= 0 {
		fmt.Printf("  Intensity Measure: PGA\n")
	} else {
		fmt.Printf("  Intensity Measure: SA(%.2fs)\n", scenario.Site.Period)
	}
	fmt.Printf("  Magnitude Bins: %d (delta_m = %.2f)\n", len(eng.Bins()), scenario.DeltaM)
	fmt.Printf("  Sum of Bin Rates: %.6g /yr\n\n", eng.TotalRate())

	fmt.Printf("%12s | %14s\n", "IM (g)", "Rate (1/yr)")
	fmt.Printf("-------------+----------------\n")
	for _, p := range points {
		fmt.Printf("%12.5g | %14.6e\n", p.IM, p.Rate)
	}
}

func displayDisaggregation(scenario *config.Scenario, eng *hazard.Engine) error {
	epsBins, err := scenario.EpsilonBins()
	if err != nil {
		return err
	}
	mtx, err := eng.Disaggregate(scenario.Disaggregation.IM, epsBins)
	if err != nil {
		return err
	}
	magMarginal, err := mtx.MagnitudeMarginal()
	if err != nil {
		return err
	}

	fmt.Printf("\nDisaggregation at IM = %.4g g (total rate %.6e /yr)\n", mtx.IM, mtx.Total())
	fmt.Printf("=======================================================\n\n")
	fmt.Printf("%10s", "Mag \\ Eps")
	for _, eb := range mtx.EpsBins {
		fmt.Printf(" | %14s", epsilonLabel(eb))
	}
	fmt.Printf(" | %8s\n", "% Hazard")

	for i, row := range mtx.Rates {
		fmt.Printf("%10.2f", mtx.MagBins[i].Center)
		for _, r := range row {
			fmt.Printf(" | %14.4e", r)
		}
		fmt.Printf(" | %7.2f%%\n", 100*magMarginal[i])
	}
	return nil
}

func epsilonLabel(eb hazard.EpsilonBin) string {
	lo, hi := "-inf", "+inf"
	if !math.IsInf(eb.Lo, 0) {
		lo = strconv.FormatFloat(eb.Lo, 'g', -1, 64)
	}
	if !math.IsInf(eb.Hi, 0) {
		hi = strconv.FormatFloat(eb.Hi, 'g', -1, 64)
	}
	return "(" + lo + ", " + hi + ")"
}

func exportCSV(filename string, points []hazard.CurvePoint) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"IM_g", "AnnualExceedanceRate"}); err != nil {
		return err
	}
	for _, p := range points {
		record := []string{
			strconv.FormatFloat(p.IM, 'g', -1, 64),
			strconv.FormatFloat(p.Rate, 'e', 8, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}
