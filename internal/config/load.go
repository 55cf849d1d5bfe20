package config

import "fmt"

// Load reads the batch config at path, resolves its "extends" chain,
// applies defaults, and validates the result against the CUE schema.
// It returns every validation error found, not just the first.
func Load(path string) (BatchConfig, []ValidationError, error) {
	cfg, err := resolveExtends(path)
	if err != nil {
		return BatchConfig{}, nil, err
	}

	cfg = applyDefaults(cfg)

	if errs := validate(cfg); len(errs) > 0 {
		return cfg, errs, nil
	}

	return cfg, nil, nil
}

func applyDefaults(cfg BatchConfig) BatchConfig {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Indent == nil {
		two := 2
		cfg.Indent = &two
	}
	return cfg
}

// MustLoad is Load but returns a single error, for callers that only
// need to report failure, not inspect every violation individually.
// When validation fails, only the first violation is reported.
func MustLoad(path string) (BatchConfig, error) {
	cfg, errs, err := Load(path)
	if err != nil {
		return BatchConfig{}, err
	}
	if len(errs) > 0 {
		return BatchConfig{}, fmt.Errorf("config: %s is invalid: %v", path, errs[0])
	}
	return cfg, nil
}
