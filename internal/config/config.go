package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/reaktor/internal/control"
	"github.com/san-kum/reaktor/internal/reactor"
	"github.com/san-kum/reaktor/internal/solver"
)

// Config is one simulation scenario: the full coefficients bundle, the
// initial plant conditions, the drum control rule and the time grid.
type Config struct {
	Coefficients CoefficientsConfig `yaml:"coefficients"`
	Initial      InitialConfig      `yaml:"initial"`
	Control      ControlConfig      `yaml:"control"`
	TStart       float64            `yaml:"t_start"`
	TMax         float64            `yaml:"t_max"`
	NumIters     int                `yaml:"num_iters"`
}

type CoefficientsConfig struct {
	BetaVector         []float64 `yaml:"beta_vector"`
	PrecursorConstants []float64 `yaml:"precursor_constants"`
	TotalBeta          float64   `yaml:"total_beta"`
	Period             float64   `yaml:"period"`
	HeatCoeff          float64   `yaml:"heat_coeff"`
	MassMod            float64   `yaml:"mass_mod"`
	HeatCapMod         float64   `yaml:"heat_cap_mod"`
	MassFlow           float64   `yaml:"mass_flow"`
	MassFuel           float64   `yaml:"mass_fuel"`
	HeatCapFuel        float64   `yaml:"heat_cap_fuel"`
	TempIn             float64   `yaml:"temp_in"`
}

type InitialConfig struct {
	Power              float64   `yaml:"power"`
	PrecursorDensities []float64 `yaml:"precursor_densities"`
	TempMod            float64   `yaml:"temp_mod"`
	TempFuel           float64   `yaml:"temp_fuel"`
	DrumAngle          float64   `yaml:"drum_angle"`
}

type ControlConfig struct {
	Rule     string            `yaml:"rule"` // none, constant, schedule, pid
	Speed    float64           `yaml:"speed"`
	Segments []control.Segment `yaml:"segments"`
	Kp       float64           `yaml:"kp"`
	Ki       float64           `yaml:"ki"`
	Kd       float64           `yaml:"kd"`
	Target   float64           `yaml:"target"`
	MaxSpeed float64           `yaml:"max_speed"`
}

// Default is a helium-cooled test-stand scenario held just off its
// feedback equilibrium, drums static.
func Default() *Config {
	return &Config{
		Coefficients: CoefficientsConfig{
			BetaVector:         []float64{0.0002475, 0.0016425, 0.00147, 0.0029625, 0.0008625, 0.000315},
			PrecursorConstants: []float64{0.0124, 0.0305, 0.1110, 0.3011, 1.1400, 3.0100},
			TotalBeta:          0.0075,
			Period:             6.0e-05,
			HeatCoeff:          4.0e5,
			MassMod:            220,
			HeatCapMod:         5190,
			MassFlow:           22,
			MassFuel:           525,
			HeatCapFuel:        300,
			TempIn:             550,
		},
		Initial: InitialConfig{
			Power:              2.5e7,
			PrecursorDensities: []float64{8.32e9, 2.24e10, 5.52e9, 4.10e9, 3.15e8, 4.36e7},
			TempMod:            630,
			TempFuel:           780,
			DrumAngle:          77.5,
		},
		Control: ControlConfig{
			Rule: "none",
		},
		TStart:   0,
		TMax:     10,
		NumIters: 1000,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
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

// BuildRule constructs the configured control rule.
func (c *Config) BuildRule() (control.Rule, error) {
	switch c.Control.Rule {
	case "", "none":
		return control.None{}, nil
	case "constant":
		return control.NewConstant(c.Control.Speed), nil
	case "schedule":
		return control.NewSchedule(c.Control.Segments...), nil
	case "pid":
		return control.NewPowerPID(c.Control.Kp, c.Control.Ki, c.Control.Kd,
			c.Control.Target, c.Control.MaxSpeed), nil
	}
	return nil, fmt.Errorf("config: unknown control rule %q", c.Control.Rule)
}

// BuildProblem assembles the solver problem from the scenario.
func (c *Config) BuildProblem() (solver.Problem, error) {
	var p solver.Problem

	betas, err := sixVector("beta_vector", c.Coefficients.BetaVector)
	if err != nil {
		return p, err
	}
	lambdas, err := sixVector("precursor_constants", c.Coefficients.PrecursorConstants)
	if err != nil {
		return p, err
	}
	densities, err := sixVector("precursor_densities", c.Initial.PrecursorDensities)
	if err != nil {
		return p, err
	}

	rule, err := c.BuildRule()
	if err != nil {
		return p, err
	}

	cc := c.Coefficients
	p = solver.Problem{
		Coefficients: reactor.Coefficients{
			BetaVector:         betas,
			PrecursorConstants: lambdas,
			TotalBeta:          cc.TotalBeta,
			Period:             cc.Period,
			HeatCoeff:          cc.HeatCoeff,
			MassMod:            cc.MassMod,
			HeatCapMod:         cc.HeatCapMod,
			MassFlow:           cc.MassFlow,
			MassFuel:           cc.MassFuel,
			HeatCapFuel:        cc.HeatCapFuel,
			TempIn:             cc.TempIn,
		},
		PowerInitial:            c.Initial.Power,
		PrecursorDensityInitial: densities,
		TempModInitial:          c.Initial.TempMod,
		TempFuelInitial:         c.Initial.TempFuel,
		DrumAngleInitial:        c.Initial.DrumAngle,
		Rule:                    rule,
		TStart:                  c.TStart,
		TMax:                    c.TMax,
		NumIters:                c.NumIters,
	}
	return p, nil
}

func sixVector(name string, v []float64) ([reactor.PrecursorGroups]float64, error) {
	var out [reactor.PrecursorGroups]float64
	if len(v) != reactor.PrecursorGroups {
		return out, fmt.Errorf("config: %s needs %d entries, got %d", name, reactor.PrecursorGroups, len(v))
	}
	copy(out[:], v)
	return out, nil
}
