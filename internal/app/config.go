package app

import (
	"errors"
	"strings"

	"github.com/stayscan/stayscan/internal/extract"
)

// Config is the fully resolved run configuration. Flags fill it first, a
// config file may overlay unset values, then ValidateConfig gates the run.
type Config struct {
	// InputPath is the saved listing page to extract from.
	InputPath string
	// OutputCSV is the dataset destination. Empty disables the CSV artifact.
	OutputCSV string
	// OutputPDF, when set, additionally renders the table as a PDF report.
	OutputPDF string
	// FirstRoomType seeds the room-type carry-forward for documents whose
	// leading rows have no label.
	FirstRoomType string
	// Selectors overrides parts of the markup contract; empty fields keep
	// their defaults.
	Selectors extract.Selectors
	// NoTable suppresses the stdout table.
	NoTable bool
	Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	return nil
}

// resolveSelectors merges explicit selector overrides onto the defaults so a
// config file only needs to re-state the conventions that changed.
func resolveSelectors(override extract.Selectors) extract.Selectors {
	sel := extract.DefaultSelectors()
	if override.Row != "" {
		sel.Row = override.Row
	}
	if override.RoomType != "" {
		sel.RoomType = override.RoomType
	}
	if override.Description != "" {
		sel.Description = override.Description
	}
	if override.Price != "" {
		sel.Price = override.Price
	}
	if override.Cancellation != "" {
		sel.Cancellation = override.Cancellation
	}
	if override.Occupancy != "" {
		sel.Occupancy = override.Occupancy
	}
	if override.UnitSelect != "" {
		sel.UnitSelect = override.UnitSelect
	}
	if override.UnitOption != "" {
		sel.UnitOption = override.UnitOption
	}
	if override.BreakfastIcon != "" {
		sel.BreakfastIcon = override.BreakfastIcon
	}
	if override.BreakfastFill != "" {
		sel.BreakfastFill = override.BreakfastFill
	}
	if override.DetailPanel != "" {
		sel.DetailPanel = override.DetailPanel
	}
	if override.MealsHeading != "" {
		sel.MealsHeading = override.MealsHeading
	}
	if override.MealsLabel != "" {
		sel.MealsLabel = override.MealsLabel
	}
	if override.MealsText != "" {
		sel.MealsText = override.MealsText
	}
	return sel
}
