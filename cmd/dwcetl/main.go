// Command dwcetl converts a checklist spreadsheet of alien macroinvertebrate
// records into the four-table Darwin Core archive format. It loads the
// pipeline configuration, optionally initializes a metrics backend, and
// executes one batch run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"dwcetl/internal/config"
	"dwcetl/internal/metrics"
	"dwcetl/internal/metrics/prompush"

	// register all sinks with the storage factory.
	_ "dwcetl/internal/storage/all"
)

func main() {
	var (
		cfgPath           string
		checklistPath     string
		referencesPath    string
		outDir            string
		metricsBackendFlg string
		pushGatewayURLFlg string
		validate          bool
	)

	flag.StringVar(&cfgPath, "config", "", "pipeline config JSON path (empty = built-in defaults)")
	flag.StringVar(&checklistPath, "checklist", "", "checklist CSV path (overrides config)")
	flag.StringVar(&referencesPath, "references", "", "reference table TSV path (overrides config)")
	flag.StringVar(&outDir, "outdir", "", "output directory for CSV storage (overrides config)")
	flag.StringVar(&metricsBackendFlg, "metrics-backend", "none", "metrics backend to use (pushgateway, none)")
	flag.StringVar(&pushGatewayURLFlg, "pushgateway-url", "http://localhost:9091", "Pushgateway base URL")
	flag.BoolVar(&validate, "validate", false, "validate the configuration and exit")
	verbose := flag.Bool("v", false, "enable verbose logs")
	flag.Parse()

	if !*verbose {
		log.SetFlags(0)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if checklistPath != "" {
		cfg.Source.Checklist = checklistPath
	}
	if referencesPath != "" {
		cfg.Source.References = referencesPath
	}
	if outDir != "" {
		cfg.Storage.OutDir = outDir
	}

	issues := config.ValidatePipeline(cfg)
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s\n", iss.Error())
	}
	if config.HasErrors(issues) {
		os.Exit(2)
	}
	if validate {
		fmt.Println("config ok")
		return
	}

	switch metricsBackendFlg {
	case "pushgateway":
		b, err := prompush.NewBackend(cfg.Job, pushGatewayURLFlg)
		if err != nil {
			log.Fatalf("metrics: %v", err)
		}
		metrics.SetBackend(b)
	case "none", "":
		// no-op backend stays installed
	default:
		log.Fatalf("metrics: unknown backend %q", metricsBackendFlg)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("run failed: %v", err)
	}
	if err := metrics.Flush(); err != nil {
		log.Printf("metrics flush: %v", err)
	}
}
