// Package tabulate renders extracted records as a delimited dataset and as a
// readable stdout table. Column order comes from the extract package and is
// identical in every output form.
package tabulate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/stayscan/stayscan/internal/extract"
)

// maxColWidth bounds stdout cells so long descriptions do not wreck the
// table layout.
const maxColWidth = 50

// WriteCSV writes the header row and one line per record to w.
func WriteCSV(w io.Writer, records []extract.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(extract.FieldNames); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Values()); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the dataset to path, creating or truncating the file.
// A header-only file is still written when records is empty so consumers
// always see a complete, well-formed dataset.
func WriteCSVFile(path string, records []extract.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// RenderTable writes an aligned text table of the records to w.
func RenderTable(w io.Writer, records []extract.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(extract.FieldNames, "\t"))
	for _, r := range records {
		cells := r.Values()
		for i, c := range cells {
			cells[i] = Clip(c, maxColWidth)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// Clip shortens s to at most max runes, marking the cut with an ellipsis.
func Clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
