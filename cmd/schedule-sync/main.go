// schedule-sync converts a remote ICS feed into the flat JSON schedule the
// site renders. It runs once per invocation: one fetch, one parse pass,
// one write.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	_ "time/tzdata"

	"github.com/spf13/pflag"

	"github.com/keelsystems/thomsfoolery/internal/app"
	"github.com/keelsystems/thomsfoolery/internal/config"
)

func main() {
	flags := pflag.NewFlagSet("schedule-sync", pflag.ContinueOnError)
	flags.String("ics-url", "", "ICS feed URL (or set SCHEDULE_ICS_URL)")
	flags.String("out", config.DefaultOutPath, "output JSON path")
	flags.Int("days", config.DefaultWindowDays, "retention window in days")
	flags.Int("limit", config.DefaultMaxItems, "maximum number of items")
	flags.Int("timeout", config.DefaultTimeoutSeconds, "fetch timeout in seconds")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, config.ErrMissingURL) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+5*time.Second)
	defer cancel()

	if err := app.Run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
