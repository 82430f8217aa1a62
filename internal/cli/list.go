package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/dayoff/internal/domain"
	"github.com/aalvaropc/dayoff/internal/infra/holidayfile"
	"github.com/aalvaropc/dayoff/internal/usecase"
)

func listCmd(deps Deps, opts *options) *cobra.Command {
	var year int
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "Print the holidays in the holiday list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runList(cmd, deps, *opts, year, format)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			}
			return err
		},
	}

	c.Flags().IntVarP(&year, "year", "y", 0, "Only this year (default: all years)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func runList(cmd *cobra.Command, deps Deps, opts options, year int, format string) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	loader := holidayfile.NewLoader(holidayfile.WithEncoding(cfg.Encoding))
	hs, err := usecase.NewListHolidays(loader).Execute(cmd.Context(), cfg.HolidaysFile, year)
	if err != nil {
		return err
	}
	return printHolidays(deps.Stdout, hs, format)
}

type holidayJSON struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Name    string `json:"name"`
}

func printHolidays(w io.Writer, hs []domain.Holiday, format string) error {
	switch format {
	case "json":
		out := make([]holidayJSON, 0, len(hs))
		for _, h := range hs {
			out = append(out, holidayJSON{
				Date:    h.Date.String(),
				Weekday: domain.Weekday(h.Date).String(),
				Name:    h.Name,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "pretty", "":
		if len(hs) == 0 {
			fmt.Fprintln(w, "(no holidays found)")
			return nil
		}
		for _, h := range hs {
			fmt.Fprintf(w, "%s  %s  %s\n", h.Date, domain.Weekday(h.Date).String()[:3], h.Name)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
