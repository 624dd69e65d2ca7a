package traceheader

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	binpkg "github.com/robert-malhotra/go-segy/internal/binary"
	"github.com/robert-malhotra/go-segy/internal/dtype"
	"github.com/robert-malhotra/go-segy/internal/errs"
	"github.com/robert-malhotra/go-segy/internal/fileheader"
	"github.com/robert-malhotra/go-segy/internal/schema"
)

const (
	testNs     = 4
	testTraces = 3
	testTBS    = 240 + testNs*4
)

// buildFile returns a float32 file of testTraces traces whose dt header is
// traceDt and whose cdp is 10*(trace+1).
func buildFile(t *testing.T, traceDt uint16) (*fileheader.Header, []byte) {
	t.Helper()
	buf := make([]byte, fileheader.Size+testTraces*testTBS)
	binary.BigEndian.PutUint16(buf[3216:], 2000)
	binary.BigEndian.PutUint16(buf[3220:], testNs)
	binary.BigEndian.PutUint16(buf[3224:], 5)
	binary.BigEndian.PutUint16(buf[3500:], 100)
	for i := 0; i < testTraces; i++ {
		rec := buf[fileheader.Size+i*testTBS:]
		binary.BigEndian.PutUint32(rec[0:], uint32(i+1))
		binary.BigEndian.PutUint32(rec[20:], uint32(10*(i+1)))
		binary.BigEndian.PutUint16(rec[116:], traceDt)
		binary.BigEndian.PutUint16(rec[28:], 0xFFFF)
	}

	h, err := fileheader.Read(buf, binpkg.NewCodec(binpkg.DefaultConfig(), nil), nil)
	if err != nil {
		t.Fatalf("fileheader.Read failed: %v", err)
	}
	return h, buf
}

func ints(vals []dtype.Value) []int64 {
	out := make([]int64, len(vals))
	for i, v := range vals {
		out[i] = v.Int64()
	}
	return out
}

func TestReadField(t *testing.T) {
	h, buf := buildFile(t, 500)
	codec := binpkg.NewCodec(binpkg.DefaultConfig(), nil)
	cdp, _ := schema.TraceHeader.Lookup("cdp")

	all, err := ReadField(h, buf, codec, cdp, 0, nil)
	if err != nil {
		t.Fatalf("ReadField failed: %v", err)
	}
	if diff := cmp.Diff([]int64{10, 20, 30}, ints(all)); diff != "" {
		t.Errorf("cdp mismatch (-want +got):\n%s", diff)
	}

	one, err := ReadField(h, buf, codec, cdp, 2, nil)
	if err != nil {
		t.Fatalf("ReadField failed: %v", err)
	}
	if diff := cmp.Diff([]int64{20}, ints(one)); diff != "" {
		t.Errorf("cdp mismatch (-want +got):\n%s", diff)
	}

	id, _ := schema.TraceHeader.Lookup("TraceIdentificationCode")
	codes, err := ReadField(h, buf, codec, id, 1, nil)
	if err != nil {
		t.Fatalf("ReadField failed: %v", err)
	}
	if codes[0].Int64() != -1 {
		t.Errorf("expected signed code -1, got %d", codes[0].Int64())
	}
}

func TestReadFieldIndexErrors(t *testing.T) {
	h, buf := buildFile(t, 500)
	codec := binpkg.NewCodec(binpkg.DefaultConfig(), nil)
	cdp, _ := schema.TraceHeader.Lookup("cdp")

	if _, err := ReadField(h, buf, codec, cdp, -1, nil); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := ReadField(h, buf, codec, cdp, testTraces+1, nil); !errors.Is(err, errs.ErrTruncatedPayload) {
		t.Errorf("expected ErrTruncatedPayload, got %v", err)
	}
}

func TestDtFallback(t *testing.T) {
	codec := binpkg.NewCodec(binpkg.DefaultConfig(), nil)
	dt, _ := schema.TraceHeader.Lookup(schema.FieldDt)

	t.Run("zero uses file header", func(t *testing.T) {
		h, buf := buildFile(t, 0)
		vals, err := ReadField(h, buf, codec, dt, 0, nil)
		if err != nil {
			t.Fatalf("ReadField failed: %v", err)
		}
		if diff := cmp.Diff([]int64{2000, 2000, 2000}, ints(vals)); diff != "" {
			t.Errorf("dt mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nonzero kept", func(t *testing.T) {
		h, buf := buildFile(t, 500)
		vals, err := ReadField(h, buf, codec, dt, 0, nil)
		if err != nil {
			t.Fatalf("ReadField failed: %v", err)
		}
		if diff := cmp.Diff([]int64{500, 500, 500}, ints(vals)); diff != "" {
			t.Errorf("dt mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestReadAll(t *testing.T) {
	h, buf := buildFile(t, 500)
	codec := binpkg.NewCodec(binpkg.DefaultConfig(), nil)
	core, logs := observer.New(zapcore.DebugLevel)

	hs, err := ReadAll(h, buf, codec, nil, 0, zap.New(core))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if hs.Len() != testTraces {
		t.Errorf("expected %d traces, got %d", testTraces, hs.Len())
	}
	if len(hs.Names()) != schema.TraceHeader.Len() {
		t.Errorf("expected %d columns, got %d", schema.TraceHeader.Len(), len(hs.Names()))
	}
	if got := logs.FilterMessage("reading trace header").Len(); got != schema.TraceHeader.Len() {
		t.Errorf("expected %d debug entries, got %d", schema.TraceHeader.Len(), got)
	}
	if hs.Int("cdp", 2) != 30 {
		t.Errorf("expected cdp 30, got %d", hs.Int("cdp", 2))
	}
	if got, ok := hs.Describe("TraceIdentificationCode", 0); !ok || got != "Other" {
		t.Errorf("unexpected description %q", got)
	}

	sub, err := schema.TraceHeader.Subset("cdp")
	if err != nil {
		t.Fatalf("Subset failed: %v", err)
	}
	hs, err = ReadAll(h, buf, codec, sub, 3, nil)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if hs.Len() != 1 || hs.Int("cdp", 0) != 30 {
		t.Errorf("unexpected single trace headers: %v", hs.Row(0))
	}
	if hs.Column(schema.FieldDt) != nil {
		t.Errorf("expected no dt column in subset read")
	}
}

func TestSynthesize(t *testing.T) {
	hs, err := Synthesize(nil, 3, 50, 4000, nil, nil)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	tests := []struct {
		field string
		want  []int64
	}{
		{schema.FieldTraceSequenceLine, []int64{1, 2, 3}},
		{schema.FieldTraceSequenceFile, []int64{1, 2, 3}},
		{schema.FieldTraceNumber, []int64{1, 2, 3}},
		{schema.FieldFieldRecord, []int64{1000, 1000, 1000}},
		{schema.FieldNs, []int64{50, 50, 50}},
		{schema.FieldDt, []int64{4000, 4000, 4000}},
		{"cdp", []int64{0, 0, 0}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ints(hs.Column(tt.field))); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.field, diff)
		}
	}
}

func TestSynthesizeOverrides(t *testing.T) {
	hs, err := Synthesize(nil, 3, 10, 1000, map[string]interface{}{
		"cdp":         []int{7, 8, 9},
		"SourceX":     []float64{1.9, -2.5, 3},
		"offset":      "25",
		"FieldRecord": int64(5),
	}, nil)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if diff := cmp.Diff([]int64{7, 8, 9}, ints(hs.Column("cdp"))); diff != "" {
		t.Errorf("cdp mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{1, -2, 3}, ints(hs.Column("SourceX"))); diff != "" {
		t.Errorf("SourceX mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{25, 25, 25}, ints(hs.Column("offset"))); diff != "" {
		t.Errorf("offset mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{5, 5, 5}, ints(hs.Column(schema.FieldFieldRecord))); diff != "" {
		t.Errorf("FieldRecord mismatch (-want +got):\n%s", diff)
	}

	_, err = Synthesize(nil, 3, 10, 1000, map[string]interface{}{"bogus": 1}, nil)
	if !errors.Is(err, errs.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
	_, err = Synthesize(nil, 3, 10, 1000, map[string]interface{}{"cdp": []int{1, 2}}, nil)
	if !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	_, err = Synthesize(nil, 3, 10, 1000, map[string]interface{}{"cdp": "abc"}, nil)
	if !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestEncodeTraceRoundTrip(t *testing.T) {
	codec := binpkg.NewCodec(binpkg.DefaultConfig(), nil)
	hs, err := Synthesize(nil, 2, testNs, 0, map[string]interface{}{"cdp": []int{11, 22}}, nil)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	fh := fileheader.Default()
	if err := fh.Set(schema.FieldNs, testNs); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := fh.Set(schema.FieldDt, 3000); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	head, err := fh.Encode(codec)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	buf := append([]byte(nil), head...)
	for i := 0; i < hs.Len(); i++ {
		block, err := hs.EncodeTrace(codec, i)
		if err != nil {
			t.Fatalf("EncodeTrace failed: %v", err)
		}
		if len(block) != schema.TraceHeaderSize {
			t.Fatalf("expected %d bytes, got %d", schema.TraceHeaderSize, len(block))
		}
		buf = append(buf, block...)
		buf = append(buf, make([]byte, testNs*4)...)
	}

	h, err := fileheader.Read(buf, codec, nil)
	if err != nil {
		t.Fatalf("fileheader.Read failed: %v", err)
	}
	got, err := ReadAll(h, buf, codec, nil, 0, nil)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	for _, name := range schema.TraceHeader.Names() {
		want := ints(hs.Column(name))
		if name == schema.FieldDt {
			// Zero dt falls back to the file header on read.
			want = []int64{3000, 3000}
		}
		if diff := cmp.Diff(want, ints(got.Column(name))); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}

	if _, err := hs.EncodeTrace(codec, 2); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
