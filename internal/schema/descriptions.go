package schema

// Description tables for enumerated trace header fields. A field shares
// one table between revisions when the standard did not change it.

func sameForBoth(table map[int64]string) map[Revision]map[int64]string {
	return map[Revision]map[int64]string{Rev0: table, Rev1: table}
}

var traceIdentificationCodes = map[Revision]map[int64]string{
	Rev0: {
		1: "Seismic data",
		2: "Dead",
		3: "Dummy",
		4: "Time Break",
		5: "Uphole",
		6: "Sweep",
		7: "Timing",
		8: "Water Break",
	},
	Rev1: {
		-1: "Other",
		0:  "Unknown",
		1:  "Seismic data",
		2:  "Dead",
		3:  "Dummy",
		4:  "Time break",
		5:  "Uphole",
		6:  "Sweep",
		7:  "Timing",
		8:  "Waterbreak",
		9:  "Near-field gun signature",
		10: "Far-field gun signature",
		11: "Seismic pressure sensor",
		12: "Multicomponent seismic sensor - Vertical component",
		13: "Multicomponent seismic sensor - Cross-line component",
		14: "Multicomponent seismic sensor - In-line component",
		15: "Rotated multicomponent seismic sensor - Vertical component",
		16: "Rotated multicomponent seismic sensor - Transverse component",
		17: "Rotated multicomponent seismic sensor - Radial component",
		18: "Vibrator reaction mass",
		19: "Vibrator baseplate",
		20: "Vibrator estimated ground force",
		21: "Vibrator reference",
		22: "Time-velocity pairs",
	},
}

var dataUses = sameForBoth(map[int64]string{
	1: "Production",
	2: "Test",
})

var coordinateUnits = map[Revision]map[int64]string{
	Rev0: {
		1: "Length (meters or feet)",
		2: "Seconds of arc",
	},
	Rev1: {
		1: "Length (meters or feet)",
		2: "Seconds of arc",
		3: "Decimal degrees",
		4: "Degrees, minutes, seconds (DMS)",
	},
}

var gainTypes = sameForBoth(map[int64]string{
	1: "Fixed",
	2: "Binary",
	3: "Floating point",
})

var correlated = sameForBoth(map[int64]string{
	1: "No",
	2: "Yes",
})

var sweepTypes = sameForBoth(map[int64]string{
	1: "linear",
	2: "parabolic",
	3: "exponential",
	4: "other",
})

var taperTypes = sameForBoth(map[int64]string{
	1: "linear",
	2: "cos2c",
	3: "other",
})

var timeBaseCodes = map[Revision]map[int64]string{
	Rev0: {
		1: "Local",
		2: "GMT",
		3: "Other",
	},
	Rev1: {
		1: "Local",
		2: "GMT",
		3: "Other",
		4: "UTC",
	},
}

var overTravel = sameForBoth(map[int64]string{
	1: "down (or behind)",
	2: "up (or ahead)",
	3: "other",
})

// Rev 1 only.
var measurementUnits = map[Revision]map[int64]string{
	Rev1: {
		-1: "Other",
		0:  "Unknown",
		1:  "Pascal (Pa)",
		2:  "Volts (V)",
		3:  "Millivolts (mV)",
		4:  "Amperes (A)",
		5:  "Meters (m)",
		6:  "Meters per second (m/s)",
		7:  "Meters per second squared (m/s2)",
		8:  "Newton (N)",
		9:  "Watt (W)",
	},
}

var sourceTypes = map[Revision]map[int64]string{
	Rev1: {
		-1: "Other",
		0:  "Unknown",
		1:  "Vibratory - Vertical orientation",
		2:  "Vibratory - Cross-line orientation",
		3:  "Vibratory - In-line orientation",
		4:  "Impulsive - Vertical orientation",
		5:  "Impulsive - Cross-line orientation",
		6:  "Impulsive - In-line orientation",
		7:  "Distributed Impulsive - Vertical orientation",
		8:  "Distributed Impulsive - Cross-line orientation",
		9:  "Distributed Impulsive - In-line orientation",
	},
}

var sourceMeasurementUnits = map[Revision]map[int64]string{
	Rev1: {
		-1: "Other",
		0:  "Unknown",
		1:  "Joule (J)",
		2:  "Kilowatt (kW)",
		3:  "Pascal (Pa)",
		4:  "Bar (Bar) or Bar-meter (Bar-m)",
		5:  "Newton (N)",
		6:  "Kilograms (kg)",
	},
}
