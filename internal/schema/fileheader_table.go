package schema

import "github.com/robert-malhotra/go-segy/internal/dtype"

// Block sizes and offsets of the fixed file layout.
const (
	TextualHeaderSize = 3200
	BinaryHeaderSize  = 400
	FileHeaderSize    = TextualHeaderSize + BinaryHeaderSize
	TraceHeaderSize   = 240
)

// Names of the fields the codec itself depends on.
const (
	FieldDt       = "dt"
	FieldNs       = "ns"
	FieldFormat   = "DataSampleFormat"
	FieldRevision = "SegyFormatRevisionNumber"
)

// FileHeader is the layout of the 400-byte binary file header. Offsets are
// absolute file positions.
var FileHeader = MustNew("binary file header", TextualHeaderSize, BinaryHeaderSize,
	Field{Name: "Job", Offset: 3200, Kind: dtype.Int32},
	Field{Name: "Line", Offset: 3204, Kind: dtype.Int32},
	Field{Name: "Reel", Offset: 3208, Kind: dtype.Int32},
	Field{Name: "DataTracePerEnsemble", Offset: 3212, Kind: dtype.Int16},
	Field{Name: "AuxiliaryTracePerEnsemble", Offset: 3214, Kind: dtype.Int16},
	Field{Name: FieldDt, Offset: 3216, Kind: dtype.Uint16, Default: 1000},
	Field{Name: "dtOrig", Offset: 3218, Kind: dtype.Uint16},
	Field{Name: FieldNs, Offset: 3220, Kind: dtype.Uint16},
	Field{Name: "nsOrig", Offset: 3222, Kind: dtype.Uint16},
	Field{Name: FieldFormat, Offset: 3224, Kind: dtype.Int16, Default: 5, Descriptions: formatDescriptions},
	Field{Name: "EnsembleFold", Offset: 3226, Kind: dtype.Int16},
	Field{Name: "TraceSorting", Offset: 3228, Kind: dtype.Int16},
	Field{Name: "VerticalSumCode", Offset: 3230, Kind: dtype.Int16},
	Field{Name: "SweepFrequencyStart", Offset: 3232, Kind: dtype.Int16},
	Field{Name: "SweepFrequencyEnd", Offset: 3234, Kind: dtype.Int16},
	Field{Name: "SweepLength", Offset: 3236, Kind: dtype.Int16},
	Field{Name: "SweepType", Offset: 3238, Kind: dtype.Int16},
	Field{Name: "SweepChannel", Offset: 3240, Kind: dtype.Int16},
	Field{Name: "SweepTaperLengthStart", Offset: 3242, Kind: dtype.Int16},
	Field{Name: "SweepTaperLengthEnd", Offset: 3244, Kind: dtype.Int16},
	Field{Name: "TaperType", Offset: 3246, Kind: dtype.Int16},
	Field{Name: "CorrelatedDataTraces", Offset: 3248, Kind: dtype.Int16},
	Field{Name: "BinaryGain", Offset: 3250, Kind: dtype.Int16},
	Field{Name: "AmplitudeRecoveryMethod", Offset: 3252, Kind: dtype.Int16},
	Field{Name: "MeasurementSystem", Offset: 3254, Kind: dtype.Int16},
	Field{Name: "ImpulseSignalPolarity", Offset: 3256, Kind: dtype.Int16},
	Field{Name: "VibratoryPolarityCode", Offset: 3258, Kind: dtype.Int16},
	Field{Name: "Unassigned1", Offset: 3260, Kind: dtype.Int16, Count: 120},
	Field{Name: FieldRevision, Offset: 3500, Kind: dtype.Uint16, Default: 100},
	Field{Name: "FixedLengthTraceFlag", Offset: 3502, Kind: dtype.Uint16},
	Field{Name: "NumberOfExtTextualHeaders", Offset: 3504, Kind: dtype.Uint16},
	Field{Name: "Unassigned2", Offset: 3506, Kind: dtype.Int16, Count: 47},
)
