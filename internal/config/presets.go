package config

var Presets = map[string]*Config{
	// A single 4d well centered at the origin, started one unit away.
	"single": {
		Potential:  PotentialConfig{Kind: "gauss", Mean: []float64{0, 0, 0, 0}, Cov: []float64{1, 1, 1, 1}},
		Fire:       FireConfig{DtStart: 0.1, DtMax: 1, MaxStep: 1, Tol: 1e-4, MaxIter: 1000},
		Pressure:   PressureConfig{Volume: 1, NDim: 4},
		InitCoords: []float64{1, 1, 1, 1},
	},
	// Two independent 2d wells sharing the optimization vector.
	"twin": {
		Potential:  PotentialConfig{Kind: "sumgauss", BlockDim: 2, Mean: []float64{0, 0, 0, 0}, Cov: []float64{1, 1, 1, 1}},
		Fire:       FireConfig{DtStart: 0.1, DtMax: 1, MaxStep: 1, Tol: 1e-4, MaxIter: 1000},
		Pressure:   PressureConfig{Volume: 1, NDim: 2},
		InitCoords: []float64{1, 1, 1, 1},
	},
	// One wide well and one narrow well, distant centers.
	"lopsided": {
		Potential:  PotentialConfig{Kind: "sumgauss", BlockDim: 2, Mean: []float64{0, 0, 10, 10}, Cov: []float64{2, 2, 1, 1}},
		Fire:       FireConfig{DtStart: 0.1, DtMax: 1, MaxStep: 1, Tol: 1e-4, MaxIter: 2000},
		Pressure:   PressureConfig{Volume: 1, NDim: 2},
		InitCoords: []float64{9, 9, 9, 9},
	},
	// Harmonic reference case with a known analytic pressure.
	"spring": {
		Potential:  PotentialConfig{Kind: "harmonic", K: 2.0, Origin: []float64{0, 0}},
		Fire:       FireConfig{DtStart: 0.05, DtMax: 0.5, MaxStep: 0.5, Tol: 1e-6, MaxIter: 2000},
		Pressure:   PressureConfig{Volume: 1, NDim: 2},
		InitCoords: []float64{1.5, -0.5},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
