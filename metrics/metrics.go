package metrics

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"
)

// Metrics holds the converter's runtime counters
type Metrics struct {
	StartTime        time.Time
	CommandsExecuted atomic.Uint64
	Conversions      atomic.Uint64
	UnknownUnits     atomic.Uint64
}

// New returns zeroed metrics started now
func New() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncCommandsExecuted increments the commands executed counter
func (m *Metrics) IncCommandsExecuted() {
	m.CommandsExecuted.Add(1)
}

// IncConversions increments the successful conversions counter
func (m *Metrics) IncConversions() {
	m.Conversions.Add(1)
}

// IncUnknownUnits increments the rejected unit names counter
func (m *Metrics) IncUnknownUnits() {
	m.UnknownUnits.Add(1)
}

// WriteTo writes the counters in the Prometheus text format
func (m *Metrics) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	writeMetric(cw, "lengthconverter_uptime_seconds", "Uptime in seconds", "gauge",
		fmt.Sprintf("%.2f", time.Since(m.StartTime).Seconds()))
	writeMetric(cw, "lengthconverter_commands_executed_total", "Total commands executed", "counter",
		fmt.Sprintf("%d", m.CommandsExecuted.Load()))
	writeMetric(cw, "lengthconverter_conversions_total", "Total conversions performed", "counter",
		fmt.Sprintf("%d", m.Conversions.Load()))
	writeMetric(cw, "lengthconverter_unknown_units_total", "Total unknown unit names received", "counter",
		fmt.Sprintf("%d", m.UnknownUnits.Load()))

	return cw.n, cw.err
}

func writeMetric(w io.Writer, name, help, kind, value string) {
	fmt.Fprintf(w, "# HELP %s %s\n", name, help)
	fmt.Fprintf(w, "# TYPE %s %s\n", name, kind)
	fmt.Fprintf(w, "%s %s\n", name, value)
}

// countingWriter keeps the first write error and the byte count.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
