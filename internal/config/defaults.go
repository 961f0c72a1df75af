package config

// GetDefaults returns the default configuration values applied before any
// config file or environment variable is loaded.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"default_schema": "",
		"concurrency":    4,
		"no_color":       false,
		"json":           false,
	}
}
