package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDtStart = 0.1
	DefaultDtMax   = 1.0
	DefaultMaxStep = 1.0
	DefaultTol     = 1e-4
	DefaultMaxIter = 1000
	DefaultVolume  = 1.0
)

type Config struct {
	Potential  PotentialConfig `yaml:"potential"`
	Fire       FireConfig      `yaml:"fire"`
	Pressure   PressureConfig  `yaml:"pressure"`
	InitCoords []float64       `yaml:"init_coords"`
}

type PotentialConfig struct {
	// Kind selects the surface: gauss, sumgauss or harmonic.
	Kind     string    `yaml:"kind"`
	BlockDim int       `yaml:"block_dim"`
	Mean     []float64 `yaml:"mean"`
	Cov      []float64 `yaml:"cov"`
	K        float64   `yaml:"k"`
	Origin   []float64 `yaml:"origin"`
}

type FireConfig struct {
	DtStart    float64 `yaml:"dt_start"`
	DtMax      float64 `yaml:"dt_max"`
	MaxStep    float64 `yaml:"max_step"`
	Tol        float64 `yaml:"tol"`
	AlphaStart float64 `yaml:"alpha_start"`
	MaxIter    int     `yaml:"max_iter"`
}

type PressureConfig struct {
	Volume float64 `yaml:"volume"`
	NDim   int     `yaml:"ndim"`
}

func DefaultConfig() *Config {
	return &Config{
		Potential: PotentialConfig{
			Kind:     "sumgauss",
			BlockDim: 2,
			Mean:     []float64{0, 0, 0, 0},
			Cov:      []float64{1, 1, 1, 1},
		},
		Fire: FireConfig{
			DtStart: DefaultDtStart,
			DtMax:   DefaultDtMax,
			MaxStep: DefaultMaxStep,
			Tol:     DefaultTol,
			MaxIter: DefaultMaxIter,
		},
		Pressure: PressureConfig{
			Volume: DefaultVolume,
			NDim:   2,
		},
		InitCoords: []float64{1, 1, 1, 1},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// NDOF reports the configuration length implied by the potential section.
func (c *Config) NDOF() int {
	switch c.Potential.Kind {
	case "harmonic":
		return len(c.Potential.Origin)
	default:
		return len(c.Potential.Mean)
	}
}
