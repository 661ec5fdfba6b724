package config

import "github.com/san-kum/reaktor/internal/control"

// Presets are ready-made scenarios for the CLI.
var Presets = map[string]func() *Config{
	// Steady plant, drums parked.
	"steady": Default,

	// Slow outward drum sweep, then hold.
	"drum-sweep": func() *Config {
		cfg := Default()
		cfg.Control = ControlConfig{
			Rule: "schedule",
			Segments: []control.Segment{
				{Until: 4, Speed: 1.5},
				{Until: 6, Speed: 0},
				{Until: 8, Speed: -1.5},
			},
		}
		cfg.TMax = 12
		return cfg
	},

	// PID power ramp to 120% of nominal.
	"power-ramp": func() *Config {
		cfg := Default()
		cfg.Control = ControlConfig{
			Rule:     "pid",
			Kp:       40,
			Ki:       2,
			Kd:       0,
			Target:   3.0e7,
			MaxSpeed: 5,
		}
		cfg.TMax = 30
		cfg.NumIters = 3000
		return cfg
	},
}

// Preset returns a fresh copy of the named scenario, or nil.
func Preset(name string) *Config {
	f, ok := Presets[name]
	if !ok {
		return nil
	}
	return f()
}

// PresetNames lists available presets.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
