package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stayscan/stayscan/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath     string
		outputPath    string
		pdfPath       string
		configPath    string
		firstRoomType string
		noTable       bool
		verbose       bool
	)

	flag.StringVar(&inputPath, "input", app.InputDefault, "Path to the saved listing page")
	flag.StringVar(&outputPath, "output", app.OutputDefault, "Path to write the CSV dataset (empty disables)")
	flag.StringVar(&pdfPath, "pdf", "", "Optional path to write a PDF report of the table")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.StringVar(&firstRoomType, "room.first", "", "Room type assumed for leading rows that carry no label")
	flag.BoolVar(&noTable, "no-table", false, "Do not print the table to stdout")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:     inputPath,
		OutputCSV:     outputPath,
		OutputPDF:     pdfPath,
		FirstRoomType: firstRoomType,
		NoTable:       noTable,
		Verbose:       verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 when the row selector matched nothing (the
		// dataset was still written, empty), 1 for fatal load/config errors.
		if errors.Is(err, app.ErrNoRows) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	return app.New(cfg).Run(context.Background())
}
