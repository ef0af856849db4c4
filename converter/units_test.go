package converter

import (
	"errors"
	"testing"
)

func TestUnits(t *testing.T) {
	names := Units()
	if len(names) != 11 {
		t.Fatalf("len(Units()) = %d, want 11", len(names))
	}
	if names[0] != "mm" || names[len(names)-1] != "miles" {
		t.Errorf("Units() = %v, want mm first and miles last", names)
	}
	for i := 1; i < len(names); i++ {
		prev, _ := Ratio(names[i-1])
		cur, _ := Ratio(names[i])
		if prev >= cur {
			t.Errorf("%s (%v) listed before %s (%v)", names[i-1], prev, names[i], cur)
		}
	}

	// callers must not be able to alter the table
	names[0] = "parsec"
	if _, ok := Ratio("parsec"); ok {
		t.Error("Units() exposes the unit table")
	}
}

func TestRatio(t *testing.T) {
	want := map[string]float64{
		"mm": 0.001, "cm": 0.01, "inchs": 0.0254, "dm": 0.1,
		"feets": 0.3048, "yards": 0.9144, "m": 1, "dam": 10,
		"hm": 100, "km": 1000, "miles": 1609.34,
	}
	for unit, ratio := range want {
		got, ok := Ratio(unit)
		if !ok || got != ratio {
			t.Errorf("Ratio(%q) = %v, %v; want %v, true", unit, got, ok, ratio)
		}
	}
	if _, ok := Ratio("KM"); ok {
		t.Error("Ratio(\"KM\") found, lookups are case sensitive")
	}
}

func TestConvert(t *testing.T) {
	got, err := Convert(5, "km", "m")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != 5000 {
		t.Errorf("Convert(5, km, m) = %v, want 5000", got)
	}

	if _, err := Convert(5, "km", "leagues"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Convert with unknown unit: err = %v", err)
	}
}
