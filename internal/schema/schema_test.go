package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robert-malhotra/go-segy/internal/dtype"
	"github.com/robert-malhotra/go-segy/internal/errs"
)

func TestTablesCoverTheirBlocks(t *testing.T) {
	for _, s := range []*Schema{FileHeader, TraceHeader} {
		t.Run(s.Name(), func(t *testing.T) {
			if gaps := s.Gaps(); len(gaps) != 0 {
				t.Errorf("uncovered bytes: %v", gaps)
			}

			// Declaration order is offset order with no overlap.
			pos := s.Base()
			for _, f := range s.Fields() {
				if f.Offset != pos {
					t.Fatalf("field %s at %d, expected %d", f.Name, f.Offset, pos)
				}
				pos = f.End()
			}
			if pos != s.Base()+s.Size() {
				t.Errorf("fields end at %d, block ends at %d", pos, s.Base()+s.Size())
			}
		})
	}
}

func TestFileHeaderFields(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		kind   dtype.Kind
		width  int
		def    int64
	}{
		{FieldDt, 3216, dtype.Uint16, 1, 1000},
		{FieldNs, 3220, dtype.Uint16, 1, 0},
		{FieldFormat, 3224, dtype.Int16, 1, 5},
		{FieldRevision, 3500, dtype.Uint16, 1, 100},
		{"Unassigned1", 3260, dtype.Int16, 120, 0},
		{"Unassigned2", 3506, dtype.Int16, 47, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := FileHeader.Lookup(tt.name)
			if !ok {
				t.Fatalf("field %s not found", tt.name)
			}
			if f.Offset != tt.offset || f.Kind != tt.kind || f.Width() != tt.width || f.Default != tt.def {
				t.Errorf("got offset=%d kind=%v width=%d default=%d",
					f.Offset, f.Kind, f.Width(), f.Default)
			}
		})
	}
}

func TestTraceHeaderFields(t *testing.T) {
	if TraceHeader.Len() != 91 {
		t.Errorf("expected 91 trace header fields, got %d", TraceHeader.Len())
	}

	f, ok := TraceHeader.Lookup(FieldDt)
	if !ok || f.Offset != 116 || f.Kind != dtype.Uint16 {
		t.Errorf("unexpected dt field: %+v", f)
	}
	f, ok = TraceHeader.Lookup("GainType")
	if !ok || f.Offset != 118 {
		t.Errorf("unexpected GainType field: %+v", f)
	}
	f, ok = TraceHeader.Lookup("ShotPoint")
	if !ok || f.Offset != 196 {
		t.Errorf("unexpected ShotPoint field: %+v", f)
	}
}

func TestResolveRevision(t *testing.T) {
	for _, raw := range []int64{0, 1, 100, 256} {
		rev, err := ResolveRevision(raw)
		if err != nil {
			t.Errorf("raw %d: unexpected error %v", raw, err)
			continue
		}
		if rev != Rev1 {
			t.Errorf("raw %d: expected rev1, got %v", raw, rev)
		}
	}

	for _, raw := range []int64{2, 99, 101, 200, 257, 65535, -1} {
		if _, err := ResolveRevision(raw); !errors.Is(err, errs.ErrUnknownRevision) {
			t.Errorf("raw %d: expected ErrUnknownRevision, got %v", raw, err)
		}
	}
}

func TestLookupSampleFormat(t *testing.T) {
	tests := []struct {
		rev  Revision
		code int
		bps  int
		kind dtype.Kind
	}{
		{Rev1, 1, 4, dtype.IBMFloat},
		{Rev1, 2, 4, dtype.Int32},
		{Rev1, 3, 2, dtype.Int16},
		{Rev1, 5, 4, dtype.Float32},
		{Rev1, 8, 1, dtype.Uint8},
		{Rev0, 1, 4, dtype.IBMFloat},
		{Rev0, 8, 1, dtype.Uint8},
	}

	for _, tt := range tests {
		f, err := LookupSampleFormat(tt.rev, tt.code)
		if err != nil {
			t.Errorf("%v code %d: %v", tt.rev, tt.code, err)
			continue
		}
		if f.BytesPerSample != tt.bps || f.Kind != tt.kind {
			t.Errorf("%v code %d: got bps=%d kind=%v", tt.rev, tt.code, f.BytesPerSample, f.Kind)
		}
		if f.Description == "" {
			t.Errorf("%v code %d: missing description", tt.rev, tt.code)
		}
	}

	for _, c := range []struct {
		rev  Revision
		code int
	}{{Rev1, 4}, {Rev1, 6}, {Rev0, 5}, {Rev1, 0}} {
		if _, err := LookupSampleFormat(c.rev, c.code); !errors.Is(err, errs.ErrUnsupportedDataType) {
			t.Errorf("%v code %d: expected ErrUnsupportedDataType, got %v", c.rev, c.code, err)
		}
	}
}

func TestFormatForKind(t *testing.T) {
	tests := []struct {
		kind dtype.Kind
		code int
	}{
		{dtype.Int32, 2},
		{dtype.Int16, 3},
		{dtype.Float32, 5},
		{dtype.Int8, 8},
		{dtype.Uint8, 8},
	}
	for _, tt := range tests {
		f, err := FormatForKind(Rev1, tt.kind)
		if err != nil {
			t.Errorf("%v: %v", tt.kind, err)
			continue
		}
		if f.Code != tt.code {
			t.Errorf("%v: expected code %d, got %d", tt.kind, tt.code, f.Code)
		}
	}

	for _, k := range []dtype.Kind{dtype.Float64, dtype.Uint16, dtype.Uint32} {
		if _, err := FormatForKind(Rev1, k); !errors.Is(err, errs.ErrUnsupportedDataType) {
			t.Errorf("%v: expected ErrUnsupportedDataType, got %v", k, err)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		schema *Schema
		field  string
		rev    Revision
		code   int64
		want   string
		ok     bool
	}{
		{FileHeader, FieldFormat, Rev1, 4, "4-byte, fixed-point with gain (obsolete)", true},
		{FileHeader, FieldFormat, Rev0, 1, "IBM Float", true},
		{TraceHeader, "TraceIdentificationCode", Rev1, -1, "Other", true},
		{TraceHeader, "TraceIdentificationCode", Rev0, 9, "", false},
		{TraceHeader, "TimeBaseCode", Rev1, 4, "UTC", true},
		{TraceHeader, "TransductionUnit", Rev1, 2, "Volts (V)", true},
		{TraceHeader, "SourceType", Rev0, 1, "", false},
		{TraceHeader, "cdp", Rev1, 1, "", false},
		{TraceHeader, "NoSuchField", Rev1, 1, "", false},
	}

	for _, tt := range tests {
		got, ok := tt.schema.Describe(tt.field, tt.rev, tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s %v %d: got (%q, %v), expected (%q, %v)", tt.field, tt.rev, tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSubset(t *testing.T) {
	sub, err := TraceHeader.Subset(FieldDt, "cdp", FieldTraceSequenceLine)
	if err != nil {
		t.Fatalf("Subset failed: %v", err)
	}
	want := []string{FieldTraceSequenceLine, "cdp", FieldDt}
	if diff := cmp.Diff(want, sub.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	_, err = TraceHeader.Subset("cdp", "bogus")
	if !errors.Is(err, errs.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		err    error
	}{
		{"duplicate", []Field{{Name: "a", Kind: dtype.Int16}, {Name: "a", Offset: 2, Kind: dtype.Int16}}, errs.ErrInvalidArgument},
		{"out of block", []Field{{Name: "a", Offset: 238, Kind: dtype.Int32}}, errs.ErrInvalidArgument},
		{"no name", []Field{{Kind: dtype.Int16}}, errs.ErrInvalidArgument},
		{"invalid kind", []Field{{Name: "a"}}, errs.ErrUnsupportedDataType},
		{"vector", []Field{{Name: "a", Kind: dtype.Int16, Count: 2}}, errs.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTraceHeader(tt.fields...); !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}

	s, err := NewTraceHeader(Field{Name: "inline", Offset: 188, Kind: dtype.Int32})
	if err != nil {
		t.Fatalf("NewTraceHeader failed: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 field, got %d", s.Len())
	}
}
