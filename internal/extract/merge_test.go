package extract

import "testing"

func TestReconcileBreakfast(t *testing.T) {
	cases := []struct {
		name   string
		inline string
		meals  string
		want   string
	}{
		{"inline yes stands alone", BreakfastYes, MealsNotSpecified, BreakfastYes},
		{"inline yes never downgraded", BreakfastYes, "Dinner only", BreakfastYes},
		{"panel upgrades no", BreakfastNo, "Breakfast included for 2", BreakfastYes},
		{"panel match is case-insensitive", BreakfastNo, "FULL BREAKFAST BUFFET", BreakfastYes},
		{"unrelated meals stay no", BreakfastNo, "Half board with dinner", BreakfastNo},
		{"no panel placeholder stays no", BreakfastNo, MealsNotSpecified, BreakfastNo},
		{"no meals placeholder stays no", BreakfastNo, MealsNotIncluded, BreakfastNo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := reconcileBreakfast(tc.inline, tc.meals); got != tc.want {
				t.Fatalf("reconcileBreakfast(%q, %q) = %q, want %q", tc.inline, tc.meals, got, tc.want)
			}
		})
	}
}

func TestAfterLastColon(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Max. occupancy: 2 adults", "2 adults"},
		{"2 adults", "2 adults"},
		{"a: b: c", "c"},
		{"  spaced :  out  ", "out"},
		{Sentinel, Sentinel},
		{"", ""},
	}
	for _, tc := range cases {
		if got := afterLastColon(tc.in); got != tc.want {
			t.Fatalf("afterLastColon(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPriceAfterMarker(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2 ($6,584)", "6584", true},
		{"1 ($100)", "100", true},
		{"($1,000", "1000", true},
		{"$50) extra $70)", "70", true},
		{"3", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := priceAfterMarker(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("priceAfterMarker(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
