package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/robert-malhotra/go-segy/segy"
)

func renderFileHeader(h *segy.FileHeader) string {
	t := table.NewWriter()
	t.SetTitle("Binary file header")
	t.AppendHeader(table.Row{"Byte", "Field", "Value", "Description"})
	for _, f := range h.Fields() {
		v, _ := h.Value(f.Name)
		desc, _ := h.Describe(f.Name)
		t.AppendRow(table.Row{f.Offset + 1, f.Name, v.String(), desc})
	}
	return t.Render()
}

func renderGeometry(h *segy.FileHeader) string {
	t := table.NewWriter()
	t.SetTitle("Geometry")
	t.AppendRows([]table.Row{
		{"Source", h.Source},
		{"Revision", h.Revision.String()},
		{"Format", fmt.Sprintf("%d (%s)", h.Format.Code, h.Format.Description)},
		{"Bytes per sample", h.Format.BytesPerSample},
		{"Samples per trace", h.SamplesPerTrace()},
		{"Sample interval", h.SampleInterval()},
		{"Trace record bytes", h.TraceByteSize},
		{"Traces", h.TraceCount},
		{"Trailing bytes", h.TrailingBytes},
	})
	return t.Render()
}

func renderTextual(h *segy.FileHeader) string {
	text := h.Textual()
	var b strings.Builder
	// 40 card images of 80 columns.
	for i := 0; i+80 <= len(text); i += 80 {
		b.WriteString(strings.TrimRight(text[i:i+80], " \x00"))
		b.WriteByte('\n')
	}
	return b.String()
}

// renderTraceHeaders renders one row per trace; first is the trace number
// of row 0.
func renderTraceHeaders(hs *segy.TraceHeaders, first int) string {
	t := table.NewWriter()
	header := table.Row{"Trace"}
	for _, name := range hs.Names() {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for i := 0; i < hs.Len(); i++ {
		row := table.Row{first + i}
		for _, name := range hs.Names() {
			v, _ := hs.Value(name, i)
			row = append(row, v.String())
		}
		t.AppendRow(row)
	}
	return t.Render()
}

// renderTraceRow renders every field of a single-trace header set.
func renderTraceRow(hs *segy.TraceHeaders) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Byte", "Field", "Value", "Description"})
	for _, f := range hs.Schema().Fields() {
		v, _ := hs.Value(f.Name, 0)
		desc, _ := hs.Describe(f.Name, 0)
		t.AppendRow(table.Row{f.Offset + 1, f.Name, v.String(), desc})
	}
	return t.Render()
}

func renderSamples(samples interface{}) string {
	return fmt.Sprintf("samples: %v", samples)
}

func renderStats(g *segy.Grid) string {
	s := g.Stats()
	t := table.NewWriter()
	t.SetTitle("Amplitudes")
	t.AppendHeader(table.Row{"Traces", "Samples", "Min", "Max", "Mean", "StdDev", "RMS"})
	t.AppendRow(table.Row{g.Traces(), g.Samples(), s.Min, s.Max, s.Mean, s.StdDev, s.RMS})
	return t.Render()
}
