package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	if err := app.Run(append([]string{"segyinfo"}, args...)); err != nil {
		t.Fatalf("segyinfo %v: %v", args, err)
	}
	return out.String()
}

func TestSynthAndInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synth.sgy")

	out := run(t, "synth", "--traces", "4", "--samples", "8", "--format", "int16", "--dt", "2000", path)
	if !strings.Contains(out, "4 traces, 8 samples, format 3") {
		t.Errorf("unexpected synth output:\n%s", out)
	}

	out = run(t, "header", "--text", path)
	for _, want := range []string{"C 1 SYNTHETIC 4 TRACES OF 8 SAMPLES", "DataSampleFormat", "2-byte, two's complement integer", "2000"} {
		if !strings.Contains(out, want) {
			t.Errorf("header output missing %q:\n%s", want, out)
		}
	}

	out = run(t, "traces", "--fields", "TraceNumber,dt", path)
	if !strings.Contains(out, "TRACE NUMBER") && !strings.Contains(out, "TRACENUMBER") {
		t.Errorf("traces output missing field column:\n%s", out)
	}
	if strings.Count(out, "2000") != 4 {
		t.Errorf("expected dt on 4 rows:\n%s", out)
	}

	out = run(t, "trace", "--index", "2", path)
	if !strings.Contains(out, "samples: [") {
		t.Errorf("trace output missing samples:\n%s", out)
	}

	out = run(t, "stats", path)
	if !strings.Contains(out, "RMS") {
		t.Errorf("stats output missing RMS:\n%s", out)
	}
}

func TestSynthFloat64ReportsPrecisionLoss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f64.sgy")
	out := run(t, "synth", "--traces", "2", "--samples", "4", "--format", "float64", path)
	if !strings.Contains(out, "stored as float32") {
		t.Errorf("expected precision loss note:\n%s", out)
	}
}

func TestSynthUnknownFormat(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	path := filepath.Join(t.TempDir(), "bad.sgy")
	if err := app.Run([]string{"segyinfo", "synth", "--format", "complex", path}); err == nil {
		t.Error("expected error for unknown sample type")
	}
}

func TestMissingArgument(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	if err := app.Run([]string{"segyinfo", "header"}); err == nil {
		t.Error("expected error without FILE")
	}
}
