package extract_test

import (
	"reflect"
	"testing"

	"github.com/stayscan/stayscan/internal/extract"
	"github.com/stayscan/stayscan/internal/htmldoc"
)

// listingFixture covers the row shapes seen in saved listing pages: a fully
// populated labeled row, an unlabeled continuation row, a second group with
// a panel-only breakfast signal, and a row with almost everything missing.
const listingFixture = `<!doctype html>
<html>
  <head><title>Hotel Aurora availability</title></head>
  <body>
    <div class="hprt-table">
      <div class="js-rt-block-row e2e-hprt-table-row">
        <a class="hprt-roomtype-icon-link">Deluxe Suite</a>
        <a class="hprt-roomtype-link">Deluxe Suite with sea view and balcony</a>
        <div class="hprt-occupancy-occupancy-info">Max. occupancy: 2 adults</div>
        <div class="prco-valign-middle-helper">$1,200</div>
        <div class="hprt-conditions-ntf">Free cancellation before 18:00</div>
        <svg class="bk-icon -streamline-food_coffee" fill="#008009"></svg>
        <select class="hprt-nos-select">
          <option>0</option>
          <option>1 ($1,200)</option>
        </select>
      </div>
      <template id="policyModal_101">
        <h3>Meals</h3>
        <div class="bui-list__description">Continental breakfast included in the rate</div>
        <h3>Cancellation</h3>
        <div class="bui-list__description">Flexible until check-in</div>
      </template>

      <div class="js-rt-block-row e2e-hprt-table-row">
        <a class="hprt-roomtype-link">Deluxe Suite, non-refundable</a>
        <div class="hprt-occupancy-occupancy-info">4 adults</div>
        <div class="prco-valign-middle-helper">$990</div>
        <div class="hprt-conditions-ntf">Non-refundable</div>
        <svg class="bk-icon -streamline-food_coffee" fill="#cccccc"></svg>
      </div>
      <template id="policyModal_102">
        <h3>Smoking</h3>
        <div class="bui-list__description">No smoking</div>
      </template>

      <div class="js-rt-block-row e2e-hprt-table-row">
        <a class="hprt-roomtype-icon-link">Standard Double</a>
        <a class="hprt-roomtype-link">Standard Double Room</a>
        <div class="hprt-occupancy-occupancy-info">Max. occupancy: 3 adults</div>
        <div class="prco-valign-middle-helper">$100</div>
        <div class="hprt-conditions-ntf">Free cancellation</div>
        <select class="hprt-nos-select">
          <option>0</option>
          <option>1 ($100)</option>
          <option>2 ($6,584)</option>
        </select>
      </div>
      <template id="policyModal_103">
        <h3>Meals</h3>
        <div class="bui-list__description">Breakfast included for 2</div>
      </template>

      <div class="js-rt-block-row e2e-hprt-table-row">
        <select class="hprt-nos-select">
          <option>0</option>
        </select>
      </div>
    </div>
  </body>
</html>`

func extractFixture(t *testing.T, markup string) []extract.Record {
	t.Helper()
	doc, err := htmldoc.Parse([]byte(markup))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	var e extract.Extractor
	return e.Extract(doc)
}

func TestExtract_OneRecordPerRow(t *testing.T) {
	records := extractFixture(t, listingFixture)
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
}

func TestExtract_RoomTypeCarryForward(t *testing.T) {
	records := extractFixture(t, listingFixture)
	want := []string{"Deluxe Suite", "Deluxe Suite", "Standard Double", "Standard Double"}
	for i, w := range want {
		if records[i].RoomType != w {
			t.Fatalf("record %d: expected room type %q, got %q", i, w, records[i].RoomType)
		}
	}
}

func TestExtract_ScalarFieldsAndFallbacks(t *testing.T) {
	records := extractFixture(t, listingFixture)

	first := records[0]
	if first.Description != "Deluxe Suite with sea view and balcony" {
		t.Fatalf("unexpected description: %q", first.Description)
	}
	if first.Price != "$1,200" {
		t.Fatalf("unexpected price: %q", first.Price)
	}
	if first.CancellationPolicy != "Free cancellation before 18:00" {
		t.Fatalf("unexpected cancellation policy: %q", first.CancellationPolicy)
	}

	bare := records[3]
	if bare.Description != extract.Sentinel || bare.Price != extract.Sentinel ||
		bare.CancellationPolicy != extract.Sentinel || bare.MaxOccupancy != extract.Sentinel {
		t.Fatalf("expected sentinels on bare row, got %+v", bare)
	}
}

func TestExtract_Occupancy(t *testing.T) {
	records := extractFixture(t, listingFixture)
	if records[0].MaxOccupancy != "2 adults" {
		t.Fatalf("expected occupancy after colon, got %q", records[0].MaxOccupancy)
	}
	// No colon in the source text: the whole trimmed text passes through.
	if records[1].MaxOccupancy != "4 adults" {
		t.Fatalf("expected colon-free occupancy to pass through, got %q", records[1].MaxOccupancy)
	}
}

func TestExtract_UnitsAndPerUnitPrice(t *testing.T) {
	records := extractFixture(t, listingFixture)

	if records[2].AvailableUnits != 2 {
		t.Fatalf("expected 2 available units, got %d", records[2].AvailableUnits)
	}
	if records[2].PricePerUnit != "6584" {
		t.Fatalf("expected per-unit price 6584, got %q", records[2].PricePerUnit)
	}
	// No quantity selector at all.
	if records[1].AvailableUnits != 0 || records[1].PricePerUnit != extract.Sentinel {
		t.Fatalf("expected 0 units and sentinel price without selector, got %d/%q",
			records[1].AvailableUnits, records[1].PricePerUnit)
	}
	// Selector with only the zero option.
	if records[3].AvailableUnits != 0 || records[3].PricePerUnit != extract.Sentinel {
		t.Fatalf("expected 0 units for zero-only selector, got %d/%q",
			records[3].AvailableUnits, records[3].PricePerUnit)
	}
}

func TestExtract_BreakfastAndMeals(t *testing.T) {
	records := extractFixture(t, listingFixture)

	if records[0].BreakfastIncluded != extract.BreakfastYes {
		t.Fatalf("expected inline icon to mark breakfast, got %q", records[0].BreakfastIncluded)
	}
	if records[0].MealsIncluded != "Continental breakfast included in the rate" {
		t.Fatalf("unexpected meals text: %q", records[0].MealsIncluded)
	}
	// Gray icon, panel without a Meals section.
	if records[1].BreakfastIncluded != extract.BreakfastNo {
		t.Fatalf("expected no breakfast on row 1, got %q", records[1].BreakfastIncluded)
	}
	if records[1].MealsIncluded != extract.MealsNotIncluded {
		t.Fatalf("expected %q, got %q", extract.MealsNotIncluded, records[1].MealsIncluded)
	}
	// No icon, but the panel mentions breakfast: upgraded to Yes.
	if records[2].BreakfastIncluded != extract.BreakfastYes {
		t.Fatalf("expected panel upgrade to Yes, got %q", records[2].BreakfastIncluded)
	}
	if records[2].MealsIncluded != "Breakfast included for 2" {
		t.Fatalf("unexpected meals text: %q", records[2].MealsIncluded)
	}
	// No panel follows the last row at all.
	if records[3].MealsIncluded != extract.MealsNotSpecified {
		t.Fatalf("expected %q, got %q", extract.MealsNotSpecified, records[3].MealsIncluded)
	}
}

func TestExtract_IconNeverDowngradedByPanel(t *testing.T) {
	const markup = `<html><body>
      <div class="js-rt-block-row e2e-hprt-table-row">
        <a class="hprt-roomtype-icon-link">Suite</a>
        <svg class="bk-icon -streamline-food_coffee" fill="#008009"></svg>
      </div>
      <template id="policyModal_7">
        <h3>Meals</h3>
        <div class="bui-list__description">Dinner only</div>
      </template>
    </body></html>`

	records := extractFixture(t, markup)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].BreakfastIncluded != extract.BreakfastYes {
		t.Fatalf("panel content must not downgrade inline Yes, got %q", records[0].BreakfastIncluded)
	}
	if records[0].MealsIncluded != "Dinner only" {
		t.Fatalf("unexpected meals text: %q", records[0].MealsIncluded)
	}
}

func TestExtract_MealsHeadingWithoutDescription(t *testing.T) {
	const markup = `<html><body>
      <div class="js-rt-block-row e2e-hprt-table-row">
        <a class="hprt-roomtype-icon-link">Suite</a>
      </div>
      <template id="policyModal_9">
        <h3>Meals</h3>
      </template>
    </body></html>`

	records := extractFixture(t, markup)
	if records[0].MealsIncluded != extract.MealsNotSpecified {
		t.Fatalf("expected %q when no description follows the heading, got %q",
			extract.MealsNotSpecified, records[0].MealsIncluded)
	}
}

func TestExtract_FirstRowWithoutLabel(t *testing.T) {
	const markup = `<html><body>
      <div class="js-rt-block-row e2e-hprt-table-row">
        <a class="hprt-roomtype-link">Unlabeled opener</a>
      </div>
      <div class="js-rt-block-row e2e-hprt-table-row">
        <a class="hprt-roomtype-icon-link">Twin Room</a>
      </div>
    </body></html>`

	doc, err := htmldoc.Parse([]byte(markup))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	var plain extract.Extractor
	records := plain.Extract(doc)
	if records[0].RoomType != extract.Sentinel {
		t.Fatalf("expected sentinel room type for unlabeled first row, got %q", records[0].RoomType)
	}
	if records[1].RoomType != "Twin Room" {
		t.Fatalf("expected label to take over on row 1, got %q", records[1].RoomType)
	}

	seeded := extract.Extractor{InitialRoomType: "Standard Room"}
	records = seeded.Extract(doc)
	if records[0].RoomType != "Standard Room" {
		t.Fatalf("expected configured seed, got %q", records[0].RoomType)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	records := extractFixture(t, `<html><body><p>sold out</p></body></html>`)
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestExtract_Idempotent(t *testing.T) {
	doc, err := htmldoc.Parse([]byte(listingFixture))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	var e extract.Extractor
	first := e.Extract(doc)
	second := e.Extract(doc)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
