// Package summary aggregates one extraction pass into the end-of-run report
// printed after the dataset is written.
package summary

import (
	"fmt"
	"io"
	"strconv"

	"github.com/stayscan/stayscan/internal/extract"
)

// Report holds the aggregate figures for one record sequence.
type Report struct {
	Records       int
	RoomTypes     int
	TotalUnits    int
	WithBreakfast int
	// Per-unit price figures cover only records whose price parsed; Priced
	// says how many that was.
	Priced       int
	MinUnitPrice float64
	MaxUnitPrice float64
	AvgUnitPrice float64
}

// Build folds the record sequence into a Report. Sentinel-valued fields are
// skipped, never counted as zeros.
func Build(records []extract.Record) Report {
	rep := Report{Records: len(records)}
	types := map[string]struct{}{}
	var sum float64
	for _, r := range records {
		if r.RoomType != extract.Sentinel {
			types[r.RoomType] = struct{}{}
		}
		rep.TotalUnits += r.AvailableUnits
		if r.BreakfastIncluded == extract.BreakfastYes {
			rep.WithBreakfast++
		}
		price, err := strconv.ParseFloat(r.PricePerUnit, 64)
		if err != nil {
			continue
		}
		if rep.Priced == 0 || price < rep.MinUnitPrice {
			rep.MinUnitPrice = price
		}
		if rep.Priced == 0 || price > rep.MaxUnitPrice {
			rep.MaxUnitPrice = price
		}
		sum += price
		rep.Priced++
	}
	rep.RoomTypes = len(types)
	if rep.Priced > 0 {
		rep.AvgUnitPrice = sum / float64(rep.Priced)
	}
	return rep
}

// Print writes the report in a fixed, human-readable layout.
func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "\nFound %d room offers across %d room types\n", r.Records, r.RoomTypes)
	fmt.Fprintf(w, "Available units: %d, breakfast included on %d offers\n", r.TotalUnits, r.WithBreakfast)
	if r.Priced > 0 {
		fmt.Fprintf(w, "Per-unit price: min %.2f, max %.2f, avg %.2f (%d priced offers)\n",
			r.MinUnitPrice, r.MaxUnitPrice, r.AvgUnitPrice, r.Priced)
	}
}
