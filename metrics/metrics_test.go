package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteTo(t *testing.T) {
	m := New()
	m.IncCommandsExecuted()
	m.IncCommandsExecuted()
	m.IncConversions()
	m.IncUnknownUnits()

	var out bytes.Buffer
	n, err := m.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(out.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, out.Len())
	}

	got := out.String()
	for _, want := range []string{
		"# TYPE lengthconverter_uptime_seconds gauge\n",
		"lengthconverter_commands_executed_total 2\n",
		"lengthconverter_conversions_total 1\n",
		"lengthconverter_unknown_units_total 1\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output is missing %q:\n%s", want, got)
		}
	}
}
