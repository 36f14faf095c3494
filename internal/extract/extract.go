package extract

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Extractor turns a parsed listing document into room-availability records.
// The zero value uses DefaultSelectors and the plain sentinel as the
// room-type seed. An Extractor holds no per-pass state, so one instance is
// safe to reuse across documents and goroutines.
type Extractor struct {
	// Selectors overrides the markup contract. Leave zero for the defaults.
	Selectors Selectors
	// InitialRoomType seeds the room-type carry-forward. It is only visible
	// in the output when the first rows of the document carry no label of
	// their own. Empty means the sentinel.
	InitialRoomType string
}

// Extract produces one Record per row segment, in document order. Missing or
// malformed sub-elements degrade the affected field to its sentinel; the
// pass itself never fails. Rows are grouped by room type in the source, with
// only the first row of a group labeled, so the room type folds forward
// across the sequence.
func (e *Extractor) Extract(tree Tree) []Record {
	sel := e.selectors()
	current := strings.TrimSpace(e.InitialRoomType)
	if current == "" {
		current = Sentinel
	}
	warned := false

	rows := tree.Select(sel.Row)
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if label := textOf(row, sel.RoomType); label != "" {
			current = label
		} else if current == Sentinel && !warned {
			warned = true
			log.Warn().Int("row", i).Msg("row group has no room type label before this row; keeping fallback")
		}
		records = append(records, extractRow(row, sel, current))
	}
	return records
}

// extractRow assembles one record. Each field is computed independently: a
// failure in one never skips the others.
func extractRow(row Node, sel Selectors, roomType string) Record {
	rec := Record{RoomType: roomType}

	rec.Description = textOr(row, sel.Description)
	rec.Price = textOr(row, sel.Price)
	rec.CancellationPolicy = textOr(row, sel.Cancellation)
	rec.MaxOccupancy = afterLastColon(textOr(row, sel.Occupancy))

	rec.AvailableUnits, rec.PricePerUnit = unitAvailability(row, sel)

	rec.MealsIncluded = mealsDetail(row, sel)
	rec.BreakfastIncluded = reconcileBreakfast(breakfastFromIcon(row, sel), rec.MealsIncluded)

	return rec
}

// unitAvailability counts the selectable quantity options and pulls the
// per-unit price out of the last one. The zero-quantity option is always
// present when the selector exists, so the unit count is optionCount-1. A
// row without a selector has nothing left to book.
func unitAvailability(row Node, sel Selectors) (int, string) {
	box, ok := row.SelectFirst(sel.UnitSelect)
	if !ok {
		return 0, Sentinel
	}
	opts := box.Select(sel.UnitOption)
	units := len(opts) - 1
	if units < 1 {
		return 0, Sentinel
	}
	price, ok := priceAfterMarker(opts[len(opts)-1].Text())
	if !ok {
		return units, Sentinel
	}
	return units, price
}

// priceAfterMarker extracts the numeric amount from option text such as
// "2 ($6,584)": the substring after the last currency marker up to the next
// closing parenthesis, with thousands separators removed.
func priceAfterMarker(text string) (string, bool) {
	i := strings.LastIndex(text, "$")
	if i < 0 {
		return "", false
	}
	amount := text[i+1:]
	if j := strings.IndexByte(amount, ')'); j >= 0 {
		amount = amount[:j]
	}
	return strings.ReplaceAll(strings.TrimSpace(amount), ",", ""), true
}

// breakfastFromIcon reads the inline indicator: the meal icon with the
// defined green fill means breakfast is included. A missing icon or any
// other fill reads as not included from this signal alone.
func breakfastFromIcon(row Node, sel Selectors) string {
	icon, ok := row.SelectFirst(sel.BreakfastIcon)
	if !ok {
		return BreakfastNo
	}
	fill, _ := icon.Attr("fill")
	if strings.EqualFold(strings.TrimSpace(fill), sel.BreakfastFill) {
		return BreakfastYes
	}
	return BreakfastNo
}

// mealsDetail locates the detail panel that follows the row and returns the
// text of its meals subsection. The three placeholder outcomes distinguish
// no panel at all, a panel without a meals section, and a meals section
// without a description block.
func mealsDetail(row Node, sel Selectors) string {
	panel, ok := row.Following(sel.DetailPanel)
	if !ok {
		return MealsNotSpecified
	}
	heading, ok := headingWithText(panel, sel.MealsHeading, sel.MealsLabel)
	if !ok {
		return MealsNotIncluded
	}
	desc, ok := heading.Following(sel.MealsText)
	if !ok {
		return MealsNotSpecified
	}
	return desc.Text()
}

// reconcileBreakfast merges the inline icon signal with the detail-panel
// meal text. The panel can only upgrade "No" to "Yes" when it mentions
// breakfast; it never downgrades an inline "Yes".
func reconcileBreakfast(inline, mealsText string) string {
	if inline == BreakfastYes {
		return BreakfastYes
	}
	if strings.Contains(strings.ToLower(mealsText), "breakfast") {
		return BreakfastYes
	}
	return BreakfastNo
}

// afterLastColon keeps the trimmed portion after the last ":". Text without
// a colon passes through whole, which is the wanted fallback for occupancy
// strings that omit the prefix.
func afterLastColon(s string) string {
	if i := strings.LastIndex(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

// headingWithText scans candidate headings under root for one whose text is
// exactly label.
func headingWithText(root Node, selector, label string) (Node, bool) {
	for _, h := range root.Select(selector) {
		if h.Text() == label {
			return h, true
		}
	}
	return nil, false
}

// textOf returns the text of the first match, or "" when absent.
func textOf(row Node, selector string) string {
	n, ok := row.SelectFirst(selector)
	if !ok {
		return ""
	}
	return n.Text()
}

// textOr is textOf with the sentinel for absent elements.
func textOr(row Node, selector string) string {
	n, ok := row.SelectFirst(selector)
	if !ok {
		return Sentinel
	}
	return n.Text()
}

func (e *Extractor) selectors() Selectors {
	if e.Selectors == (Selectors{}) {
		return DefaultSelectors()
	}
	return e.Selectors
}
