package domain

// DefaultHolidaysFile is the resource read when no path is configured.
const DefaultHolidaysFile = "./res/holidays.yml"

// Config represents the dayoff configuration loaded from dayoff.yaml and flags.
type Config struct {
	HolidaysFile string
	Encoding     string
	Timezone     string
	MetricsFile  string
	LogFile      string
}

// DefaultConfig reproduces the behavior of a bare invocation: the fixed
// resource path, UTF-8 content and the local time zone.
func DefaultConfig() Config {
	return Config{
		HolidaysFile: DefaultHolidaysFile,
		Encoding:     "utf-8",
		Timezone:     "Local",
	}
}
