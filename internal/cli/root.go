package cli

import (
	"context"
	"io"
	"os"
	"time"
	_ "time/tzdata" // --tz must resolve zones on hosts without zoneinfo

	"github.com/spf13/cobra"

	"github.com/aalvaropc/dayoff/internal/infra/holidayfile"
	"github.com/aalvaropc/dayoff/internal/infra/logger"
	"github.com/aalvaropc/dayoff/internal/infra/textfile"
	"github.com/aalvaropc/dayoff/internal/usecase"
)

// Deps are the process-level inputs the commands read.
type Deps struct {
	Now    func() time.Time
	Stdout io.Writer
}

func Execute() {
	deps := Deps{Now: time.Now, Stdout: os.Stdout}
	os.Exit(Run(context.Background(), deps, os.Args[1:]))
}

// Run executes the command line and returns the process exit status.
func Run(ctx context.Context, deps Deps, args []string) int {
	cmd := newRootCmd(deps)
	cmd.SetArgs(args)
	return ExitCode(cmd.ExecuteContext(ctx))
}

func newRootCmd(deps Deps) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "dayoff",
		Short: "Exit 1 if today is a weekend or Japanese holiday, 0 if it is a working day",
		Long: `dayoff checks one date (today by default) against a holiday_jp style list
("YYYY-MM-DD: name" per line) and reports only through its exit status:

  0    working day
  1    non-working day (Saturday, Sunday or listed holiday)
  255  holiday data could not be loaded`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{Path: cfg.LogFile, Debug: opts.debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			clk, err := resolveClock(cfg, opts.date, deps.Now)
			if err != nil {
				logger.L().Error("check.clock", "err", err)
				return err
			}

			ucOpts := []usecase.CheckOption{
				usecase.WithLogger(logger.L()),
				usecase.WithNow(deps.Now),
			}
			if cfg.MetricsFile != "" {
				ucOpts = append(ucOpts, usecase.WithRecorder(textfile.NewRecorder(cfg.MetricsFile)))
			}

			loader := holidayfile.NewLoader(holidayfile.WithEncoding(cfg.Encoding))
			uc := usecase.NewCheckDay(loader, clk, ucOpts...)

			v, err := uc.Execute(cmd.Context(), cfg.HolidaysFile)
			if err != nil {
				return err
			}
			if v.NonWorking() {
				return &NonWorkingDay{Verdict: v}
			}
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	opts.bindPersistent(cmd)
	cmd.Flags().StringVar(&opts.date, "date", "", "Date to check as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&opts.timezone, "tz", "", `Time zone that defines "today", e.g. Asia/Tokyo (default: Local)`)
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write a Prometheus textfile with the result")

	cmd.AddCommand(initCmd(deps))
	cmd.AddCommand(listCmd(deps, &opts))
	cmd.AddCommand(versionCmd(deps))
	return cmd
}
