package extract

// Tree is the extractor's read-only view of a parsed listing document.
// It is deliberately narrow so the extraction logic can run over any tree
// representation without depending on one HTML library's API shape.
type Tree interface {
	// Select returns all elements matching the selector, in document order.
	Select(selector string) []Node
}

// Node is one element within the tree. Implementations should be cheap
// value handles; the extractor never retains them past a pass.
type Node interface {
	// Select returns matching descendants in document order.
	Select(selector string) []Node
	// SelectFirst returns the first matching descendant in document order.
	SelectFirst(selector string) (Node, bool)
	// Following returns the first element after this one in document order
	// that matches the selector. The search is not limited to siblings or
	// to this node's subtree.
	Following(selector string) (Node, bool)
	// Text returns the normalized visible text of this node's subtree:
	// whitespace collapsed, leading and trailing space trimmed.
	Text() string
	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
}

// Selectors is the markup contract for the source listing page. The class
// and identifier conventions below are owned by the source site and change
// without notice; treat this as a versioned wire format. An unmatched
// selector degrades the affected field to its sentinel, never the pass.
type Selectors struct {
	// Row matches one bookable rate option.
	Row string `yaml:"row" json:"row"`
	// RoomType matches the room-type label, present only on the first row
	// of each room group.
	RoomType      string `yaml:"roomType" json:"roomType"`
	Description   string `yaml:"description" json:"description"`
	Price         string `yaml:"price" json:"price"`
	Cancellation  string `yaml:"cancellation" json:"cancellation"`
	Occupancy     string `yaml:"occupancy" json:"occupancy"`
	UnitSelect    string `yaml:"unitSelect" json:"unitSelect"`
	UnitOption    string `yaml:"unitOption" json:"unitOption"`
	BreakfastIcon string `yaml:"breakfastIcon" json:"breakfastIcon"`
	// BreakfastFill is the icon fill color that signals breakfast included.
	BreakfastFill string `yaml:"breakfastFill" json:"breakfastFill"`
	// DetailPanel matches the policy panel that follows a row; association
	// is by identifier prefix, not containment.
	DetailPanel  string `yaml:"detailPanel" json:"detailPanel"`
	MealsHeading string `yaml:"mealsHeading" json:"mealsHeading"`
	// MealsLabel is the exact heading text of the meals subsection.
	MealsLabel string `yaml:"mealsLabel" json:"mealsLabel"`
	MealsText  string `yaml:"mealsText" json:"mealsText"`
}

// DefaultSelectors returns the contract for the currently known listing
// markup.
func DefaultSelectors() Selectors {
	return Selectors{
		Row:           ".js-rt-block-row.e2e-hprt-table-row",
		RoomType:      ".hprt-roomtype-icon-link",
		Description:   ".hprt-roomtype-link",
		Price:         ".prco-valign-middle-helper",
		Cancellation:  ".hprt-conditions-ntf",
		Occupancy:     ".hprt-occupancy-occupancy-info",
		UnitSelect:    "select.hprt-nos-select",
		UnitOption:    "option",
		BreakfastIcon: ".bk-icon.-streamline-food_coffee",
		BreakfastFill: "#008009",
		DetailPanel:   "template[id^='policyModal_']",
		MealsHeading:  "h3",
		MealsLabel:    "Meals",
		MealsText:     "div.bui-list__description",
	}
}
