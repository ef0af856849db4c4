// Package converter converts a length between the units of a fixed ratio
// table and renders the result as a formatted number.
//
// Example:
//
//	c := converter.New(1)
//	c.From("inchs").To("cm").Show()                      // "2.54"
//	c.From("m").To("mm").Show(converter.Decimals(0),
//		converter.Separator(","), converter.ThousandsSeparator(".")) // "1.000"
package converter

// Converter holds a value and the selected source and destination units.
// A Converter is not safe for concurrent use.
type Converter struct {
	value  float64
	from   *float64
	to     *float64
	strict bool
	err    error
}

// New returns a permissive converter: unknown unit names are ignored and an
// incomplete selection converts to zero.
func New(value float64) *Converter {
	return &Converter{value: value}
}

// NewStrict returns a converter that records the first unknown unit name,
// see Err.
func NewStrict(value float64) *Converter {
	return &Converter{value: value, strict: true}
}

// From sets the unit the value is expressed in
func (c *Converter) From(unit string) *Converter {
	c.from = c.lookup(unit, c.from)
	return c
}

// To sets the unit the value is converted to
func (c *Converter) To(unit string) *Converter {
	c.to = c.lookup(unit, c.to)
	return c
}

// lookup returns the ratio for unit when known, or current untouched.
func (c *Converter) lookup(unit string, current *float64) *float64 {
	r, ok := Ratio(unit)
	if !ok {
		if c.strict && c.err == nil {
			c.err = &UnknownUnitError{Unit: unit}
		}
		return current
	}
	return &r
}

// Value returns the original quantity
func (c *Converter) Value() float64 {
	return c.value
}

// Ready reports whether both units are selected
func (c *Converter) Ready() bool {
	return c.from != nil && c.to != nil && *c.from != 0 && *c.to != 0
}

// Err returns the first unknown unit seen by a strict converter
func (c *Converter) Err() error {
	return c.err
}

// Calc returns the converted value, or 0 when a unit is missing.
func (c *Converter) Calc() float64 {
	if !c.Ready() {
		return 0.0
	}
	// same unit: skip the multiplication so the value comes back untouched
	if *c.from == *c.to {
		return c.value
	}
	return c.value * *c.from * (1 / *c.to)
}

// Show converts and formats the result. Without options it uses two
// decimals, "." as decimal separator and "," between thousands.
func (c *Converter) Show(opts ...Option) string {
	f := defaultFormat()
	for _, opt := range opts {
		opt(&f)
	}
	return Format(c.Calc(), f.decimals, f.separator, f.thousands)
}
