package config

type CleanupConfig struct {
	Enabled        bool `json:"enabled" yaml:"enabled"`
	IntervalHours  int  `json:"interval_hours" yaml:"interval_hours"`
	ThresholdHours int  `json:"threshold_hours" yaml:"threshold_hours"`
}

// Interval in hours between scheduled sweeps; 0 disables the built-in schedule.
func (c *CleanupConfig) IntervalOrDefault() int {
	if c == nil || c.IntervalHours <= 0 {
		return 1
	}
	return c.IntervalHours
}

func (c *CleanupConfig) ThresholdOrDefault() int {
	if c == nil || c.ThresholdHours <= 0 {
		return 24
	}
	return c.ThresholdHours
}
