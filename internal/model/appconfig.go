package model

// AppConfig holds default request settings persisted by
// config.LoadAppConfig/SaveAppConfig. The CLI commands do not read it.
type AppConfig struct {
	DefaultCutWidth             float64 `json:"default_cut_width"`
	DefaultTrimming             float64 `json:"default_trimming"`
	DefaultMinReusableRemnant   float64 `json:"default_min_reusable_remnant_size"`
	OptimizeForReusableRemnants bool    `json:"optimize_for_reusable_remnants"`
	MinInitialUsage             bool    `json:"min_initial_usage"`
}

// DefaultAppConfig returns the configuration used when no config file
// exists yet.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultCutWidth:           3,
		DefaultTrimming:           10,
		DefaultMinReusableRemnant: 0,
	}
}
