package schema

import "github.com/robert-malhotra/go-segy/internal/dtype"

// Trace header field names written by default synthesis.
const (
	FieldTraceSequenceLine = "TraceSequenceLine"
	FieldTraceSequenceFile = "TraceSequenceFile"
	FieldFieldRecord       = "FieldRecord"
	FieldTraceNumber       = "TraceNumber"
)

// TraceHeader is the layout of the 240-byte trace header. Offsets are
// relative to the start of the trace record.
var TraceHeader = MustNew("trace header", 0, TraceHeaderSize,
	Field{Name: FieldTraceSequenceLine, Offset: 0, Kind: dtype.Int32},
	Field{Name: FieldTraceSequenceFile, Offset: 4, Kind: dtype.Int32},
	Field{Name: FieldFieldRecord, Offset: 8, Kind: dtype.Int32},
	Field{Name: FieldTraceNumber, Offset: 12, Kind: dtype.Int32},
	Field{Name: "EnergySourcePoint", Offset: 16, Kind: dtype.Int32},
	Field{Name: "cdp", Offset: 20, Kind: dtype.Int32},
	Field{Name: "cdpTrace", Offset: 24, Kind: dtype.Int32},
	Field{Name: "TraceIdentificationCode", Offset: 28, Kind: dtype.Int16, Descriptions: traceIdentificationCodes},
	Field{Name: "NSummedTraces", Offset: 30, Kind: dtype.Int16},
	Field{Name: "NStackedTraces", Offset: 32, Kind: dtype.Int16},
	Field{Name: "DataUse", Offset: 34, Kind: dtype.Int16, Descriptions: dataUses},
	Field{Name: "offset", Offset: 36, Kind: dtype.Int32},
	Field{Name: "ReceiverGroupElevation", Offset: 40, Kind: dtype.Int32},
	Field{Name: "SourceSurfaceElevation", Offset: 44, Kind: dtype.Int32},
	Field{Name: "SourceDepth", Offset: 48, Kind: dtype.Int32},
	Field{Name: "ReceiverDatumElevation", Offset: 52, Kind: dtype.Int32},
	Field{Name: "SourceDatumElevation", Offset: 56, Kind: dtype.Int32},
	Field{Name: "SourceWaterDepth", Offset: 60, Kind: dtype.Int32},
	Field{Name: "GroupWaterDepth", Offset: 64, Kind: dtype.Int32},
	Field{Name: "ElevationScalar", Offset: 68, Kind: dtype.Int16},
	Field{Name: "SourceGroupScalar", Offset: 70, Kind: dtype.Int16},
	Field{Name: "SourceX", Offset: 72, Kind: dtype.Int32},
	Field{Name: "SourceY", Offset: 76, Kind: dtype.Int32},
	Field{Name: "GroupX", Offset: 80, Kind: dtype.Int32},
	Field{Name: "GroupY", Offset: 84, Kind: dtype.Int32},
	Field{Name: "CoordinateUnits", Offset: 88, Kind: dtype.Int16, Descriptions: coordinateUnits},
	Field{Name: "WeatheringVelocity", Offset: 90, Kind: dtype.Int16},
	Field{Name: "SubWeatheringVelocity", Offset: 92, Kind: dtype.Int16},
	Field{Name: "SourceUpholeTime", Offset: 94, Kind: dtype.Int16},
	Field{Name: "GroupUpholeTime", Offset: 96, Kind: dtype.Int16},
	Field{Name: "SourceStaticCorrection", Offset: 98, Kind: dtype.Int16},
	Field{Name: "GroupStaticCorrection", Offset: 100, Kind: dtype.Int16},
	Field{Name: "TotalStaticApplied", Offset: 102, Kind: dtype.Int16},
	Field{Name: "LagTimeA", Offset: 104, Kind: dtype.Int16},
	Field{Name: "LagTimeB", Offset: 106, Kind: dtype.Int16},
	Field{Name: "DelayRecordingTime", Offset: 108, Kind: dtype.Int16},
	Field{Name: "MuteTimeStart", Offset: 110, Kind: dtype.Int16},
	Field{Name: "MuteTimeEnd", Offset: 112, Kind: dtype.Int16},
	Field{Name: FieldNs, Offset: 114, Kind: dtype.Uint16},
	Field{Name: FieldDt, Offset: 116, Kind: dtype.Uint16},
	Field{Name: "GainType", Offset: 118, Kind: dtype.Int16, Descriptions: gainTypes},
	Field{Name: "InstrumentGainConstant", Offset: 120, Kind: dtype.Int16},
	Field{Name: "InstrumentInitialGain", Offset: 122, Kind: dtype.Int16},
	Field{Name: "Correlated", Offset: 124, Kind: dtype.Int16, Descriptions: correlated},
	Field{Name: "SweepFrequencyStart", Offset: 126, Kind: dtype.Int16},
	Field{Name: "SweepFrequencyEnd", Offset: 128, Kind: dtype.Int16},
	Field{Name: "SweepLength", Offset: 130, Kind: dtype.Int16},
	Field{Name: "SweepType", Offset: 132, Kind: dtype.Int16, Descriptions: sweepTypes},
	Field{Name: "SweepTraceTaperLengthStart", Offset: 134, Kind: dtype.Int16},
	Field{Name: "SweepTraceTaperLengthEnd", Offset: 136, Kind: dtype.Int16},
	Field{Name: "TaperType", Offset: 138, Kind: dtype.Int16, Descriptions: taperTypes},
	Field{Name: "AliasFilterFrequency", Offset: 140, Kind: dtype.Int16},
	Field{Name: "AliasFilterSlope", Offset: 142, Kind: dtype.Int16},
	Field{Name: "NotchFilterFrequency", Offset: 144, Kind: dtype.Int16},
	Field{Name: "NotchFilterSlope", Offset: 146, Kind: dtype.Int16},
	Field{Name: "LowCutFrequency", Offset: 148, Kind: dtype.Int16},
	Field{Name: "HighCutFrequency", Offset: 150, Kind: dtype.Int16},
	Field{Name: "LowCutSlope", Offset: 152, Kind: dtype.Int16},
	Field{Name: "HighCutSlope", Offset: 154, Kind: dtype.Int16},
	Field{Name: "YearDataRecorded", Offset: 156, Kind: dtype.Int16},
	Field{Name: "DayOfYear", Offset: 158, Kind: dtype.Int16},
	Field{Name: "HourOfDay", Offset: 160, Kind: dtype.Int16},
	Field{Name: "MinuteOfHour", Offset: 162, Kind: dtype.Int16},
	Field{Name: "SecondOfMinute", Offset: 164, Kind: dtype.Int16},
	Field{Name: "TimeBaseCode", Offset: 166, Kind: dtype.Int16, Descriptions: timeBaseCodes},
	Field{Name: "TraceWeightingFactor", Offset: 168, Kind: dtype.Int16},
	Field{Name: "GeophoneGroupNumberRoll1", Offset: 170, Kind: dtype.Int16},
	Field{Name: "GeophoneGroupNumberFirstTraceOrigField", Offset: 172, Kind: dtype.Int16},
	Field{Name: "GeophoneGroupNumberLastTraceOrigField", Offset: 174, Kind: dtype.Int16},
	Field{Name: "GapSize", Offset: 176, Kind: dtype.Int16},
	Field{Name: "OverTravel", Offset: 178, Kind: dtype.Int16, Descriptions: overTravel},
	Field{Name: "cdpX", Offset: 180, Kind: dtype.Int32},
	Field{Name: "cdpY", Offset: 184, Kind: dtype.Int32},
	Field{Name: "Inline3D", Offset: 188, Kind: dtype.Int32},
	Field{Name: "Crossline3D", Offset: 192, Kind: dtype.Int32},
	Field{Name: "ShotPoint", Offset: 196, Kind: dtype.Int32},
	Field{Name: "ShotPointScalar", Offset: 200, Kind: dtype.Int16},
	Field{Name: "TraceValueMeasurementUnit", Offset: 202, Kind: dtype.Int16, Descriptions: measurementUnits},
	Field{Name: "TransductionConstantMantissa", Offset: 204, Kind: dtype.Int32},
	Field{Name: "TransductionConstantPower", Offset: 208, Kind: dtype.Int16},
	Field{Name: "TransductionUnit", Offset: 210, Kind: dtype.Int16, Descriptions: measurementUnits},
	Field{Name: "TraceIdentifier", Offset: 212, Kind: dtype.Int16},
	Field{Name: "ScalarTraceHeader", Offset: 214, Kind: dtype.Int16},
	Field{Name: "SourceType", Offset: 216, Kind: dtype.Int16, Descriptions: sourceTypes},
	Field{Name: "SourceEnergyDirectionMantissa", Offset: 218, Kind: dtype.Int32},
	Field{Name: "SourceEnergyDirectionExponent", Offset: 222, Kind: dtype.Int16},
	Field{Name: "SourceMeasurementMantissa", Offset: 224, Kind: dtype.Int32},
	Field{Name: "SourceMeasurementExponent", Offset: 228, Kind: dtype.Int16},
	Field{Name: "SourceMeasurementUnit", Offset: 230, Kind: dtype.Int16, Descriptions: sourceMeasurementUnits},
	Field{Name: "UnassignedInt1", Offset: 232, Kind: dtype.Int32},
	Field{Name: "UnassignedInt2", Offset: 236, Kind: dtype.Int32},
)
