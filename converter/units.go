package converter

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownUnit is returned (wrapped in an UnknownUnitError) when a unit
// name is not part of the table.
var ErrUnknownUnit = errors.New("unité inconnue")

// UnknownUnitError carries the unit name that failed the lookup
type UnknownUnitError struct {
	Unit string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("%s: '%s'", ErrUnknownUnit.Error(), e.Unit)
}

func (e *UnknownUnitError) Unwrap() error {
	return ErrUnknownUnit
}

// units maps each known length unit to its size in meters.
// Never mutated after init.
var units = map[string]float64{
	"mm":    0.001,
	"cm":    0.01,
	"inchs": 0.0254,
	"dm":    0.1,
	"feets": 0.3048,
	"yards": 0.9144,
	"m":     1,
	"dam":   10,
	"hm":    100,
	"km":    1000,
	"miles": 1609.34,
}

// Ratio returns the size of unit in meters
func Ratio(unit string) (float64, bool) {
	r, ok := units[unit]
	return r, ok
}

// Units returns the known unit names, smallest first
func Units() []string {
	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return units[names[i]] < units[names[j]]
	})
	return names
}

// Convert converts value from one unit to another in a single call.
// Unlike the chained form it reports unknown units.
func Convert(value float64, from, to string) (float64, error) {
	c := NewStrict(value).From(from).To(to)
	if err := c.Err(); err != nil {
		return 0, err
	}
	return c.Calc(), nil
}
