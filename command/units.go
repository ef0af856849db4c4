package command

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lengthconverter/converter"
)

// ShowKnownUnits lists the unit names with their size in meters
func (core Core) ShowKnownUnits(w io.Writer, args []string) {
	fmt.Fprintln(w, "Unités connues:")
	for _, unit := range converter.Units() {
		ratio, _ := converter.Ratio(unit)
		fmt.Fprintf(w, ">> '%s' = %s m\n", unit, strconv.FormatFloat(ratio, 'f', -1, 64))
	}
}

// ConvertUnits handles '<valeur> <unité d'origine> <unité voulue>'
func (core Core) ConvertUnits(w io.Writer, args []string) {
	if len(args) != 3 {
		core.ShowKnownUnits(w, nil)
		return
	}

	value, err := parseValue(args[0])
	if err != nil {
		fmt.Fprintln(w, "Désolé, je ne comprends pas")
		core.logger().Debug("invalid value", "value", args[0], "err", err)
		return
	}
	from, to := args[1], args[2]

	c := core.Config.NewConverter(value).From(from).To(to)
	if err := c.Err(); err != nil {
		var uerr *converter.UnknownUnitError
		if errors.As(err, &uerr) {
			core.logger().Info("unknown unit", "unit", uerr.Unit)
		}
		if core.Metrics != nil {
			core.Metrics.IncUnknownUnits()
		}
		fmt.Fprintf(w, "Désolé, %s\n", err)
		core.ShowKnownUnits(w, nil)
		return
	}
	if c.Ready() {
		if core.Metrics != nil {
			core.Metrics.IncConversions()
		}
	} else {
		core.logger().Warn("incomplete conversion", "from", from, "to", to)
		if core.Metrics != nil {
			core.Metrics.IncUnknownUnits()
		}
	}

	fmt.Fprintf(w, "%s %s = %s %s\n", args[0], from, c.Show(core.Config.ShowOptions()...), to)
}

// parseValue accepts "1.5" or "1,5". A comma is only ever a decimal mark:
// thousands separators are rejected rather than guessed.
func parseValue(raw string) (float64, error) {
	if strings.Count(raw, ",") > 1 || (strings.Contains(raw, ",") && strings.Contains(raw, ".")) {
		return 0, fmt.Errorf("séparateur des milliers non supporté: %s", raw)
	}
	return strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
}
