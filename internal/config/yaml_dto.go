package config

// YAMLConfig mirrors the configuration file. Pointer fields distinguish
// "absent" from zero values so that defaults survive partial files.
type YAMLConfig struct {
	Home           *string `yaml:"home"`
	ExactDominance *bool   `yaml:"exact_dominance"`
	Bound          *string `yaml:"bound"`
	TimeLimit      *string `yaml:"time_limit"`
	Workers        *int    `yaml:"workers"`
	DotDir         *string `yaml:"dot_dir"`
	CachePath      *string `yaml:"cache_path"`
	LogFile        *string `yaml:"log_file"`
	Debug          *bool   `yaml:"debug"`
}
