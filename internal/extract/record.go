package extract

import "strconv"

// Sentinel is substituted for any string field whose source element is
// missing or unreadable.
const Sentinel = "N/A"

// Breakfast flag values.
const (
	BreakfastYes = "Yes"
	BreakfastNo  = "No"
)

// Meal-detail placeholders, distinct from the general sentinel so the output
// records why the detail was absent.
const (
	MealsNotSpecified = "Not specified"
	MealsNotIncluded  = "No meals included"
)

// Record is one extracted room-availability row. All fields are raw display
// strings except AvailableUnits; a field that could not be extracted carries
// its sentinel rather than being omitted, so every record has the same shape.
type Record struct {
	RoomType           string
	Description        string
	Price              string
	CancellationPolicy string
	MaxOccupancy       string
	AvailableUnits     int
	PricePerUnit       string
	BreakfastIncluded  string
	MealsIncluded      string
}

// FieldNames is the fixed column order for tabular output. Downstream
// renderers must not reorder it.
var FieldNames = []string{
	"room_type",
	"description",
	"price",
	"cancellation_policy",
	"max_occupancy",
	"available_units",
	"price_per_unit",
	"breakfast_included",
	"meals_included",
}

// Values returns the record's fields as display strings in FieldNames order.
func (r Record) Values() []string {
	return []string{
		r.RoomType,
		r.Description,
		r.Price,
		r.CancellationPolicy,
		r.MaxOccupancy,
		strconv.Itoa(r.AvailableUnits),
		r.PricePerUnit,
		r.BreakfastIncluded,
		r.MealsIncluded,
	}
}
