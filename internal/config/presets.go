package config

var Presets = map[string]*Config{
	"suspension": {
		Rows: 100, Cols: 64, RuleSet: "isotropic", Duration: 30.0, Interval: 0.5,
		BedFraction: 0.1, SeedStart: 0.5,
	},
	"settling": {
		Rows: 100, Cols: 64, RuleSet: "biased", Duration: 60.0, Interval: 0.5,
		BedFraction: 0.1, SeedStart: 0.5,
	},
	"dense": {
		Rows: 100, Cols: 64, RuleSet: "isotropic", Duration: 30.0, Interval: 0.5,
		BedFraction: 0.3, SeedStart: 0.7,
	},
	"quick": {
		Rows: 40, Cols: 32, RuleSet: "isotropic", Duration: 10.0, Interval: 0.25,
		BedFraction: 0.1, SeedStart: 0.5,
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
