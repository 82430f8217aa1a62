package cli

import (
	"strings"
	"time"

	"github.com/golang-sql/civil"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/dayoff/internal/domain"
	"github.com/aalvaropc/dayoff/internal/infra/clock"
	"github.com/aalvaropc/dayoff/internal/infra/config"
	"github.com/aalvaropc/dayoff/internal/ports"
)

type options struct {
	configPath  string
	file        string
	encoding    string
	logFile     string
	debug       bool
	date        string
	timezone    string
	metricsFile string
}

func (o *options) bindPersistent(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "Config file (default: ./"+config.DefaultFile+" if present)")
	pf.StringVarP(&o.file, "file", "f", domain.DefaultHolidaysFile, "Holiday list file")
	pf.StringVar(&o.encoding, "encoding", "utf-8", "Holiday list encoding: utf-8|shift_jis|euc-jp")
	pf.StringVar(&o.logFile, "log-file", "", "Append JSON logs to this file (default: no logging)")
	pf.BoolVar(&o.debug, "debug", false, "Log at debug level")
}

// resolveConfig applies, in order: defaults, the config file, explicit flags.
func resolveConfig(cmd *cobra.Command, o options) (domain.Config, error) {
	var (
		cfg domain.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadOptional(config.DefaultFile)
	}
	if err != nil {
		return cfg, err
	}

	if changed(cmd, "file") {
		cfg.HolidaysFile = o.file
	}
	if changed(cmd, "encoding") {
		cfg.Encoding = o.encoding
	}
	if changed(cmd, "log-file") {
		cfg.LogFile = o.logFile
	}
	if changed(cmd, "tz") {
		cfg.Timezone = o.timezone
	}
	if changed(cmd, "metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}
	return cfg, nil
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// resolveClock pins the clock to --date when given, else reads now in cfg.Timezone.
func resolveClock(cfg domain.Config, date string, now func() time.Time) (ports.Clock, error) {
	if d := strings.TrimSpace(date); d != "" {
		parsed, err := civil.ParseDate(d)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "cli.date",
				Kind: domain.KindInvalidConfig,
				Err:  err,
			}
		}
		return clock.Fixed(parsed), nil
	}

	loc, err := clock.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	return clock.NewSystem(clock.WithNow(now), clock.WithLocation(loc)), nil
}
