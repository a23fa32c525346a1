package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied; a nil Seed or Count means unset.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Locale != "" {
		target.Locale = source.Locale
		target.Sources["locale"] = sourceType
	}
	if source.Seed != nil {
		seed := *source.Seed
		target.Seed = &seed
		target.Sources["seed"] = sourceType
	}
	if source.Count != nil {
		count := *source.Count
		target.Count = &count
		target.Sources["count"] = sourceType
	}
	if source.Format != "" {
		target.Format = source.Format
		target.Sources["format"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
}
