// Package app wires the fetch, parse, and write stages of one sync run.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/keelsystems/thomsfoolery/internal/config"
	"github.com/keelsystems/thomsfoolery/internal/feed"
	"github.com/keelsystems/thomsfoolery/internal/ics"
	"github.com/keelsystems/thomsfoolery/internal/output"
	"github.com/keelsystems/thomsfoolery/internal/schedule"
)

// Run performs one sync: fetch the feed, assemble the schedule, write the
// document, and print a summary line to stdout. The document is built
// fully in memory before anything touches the output path, so a failed
// run leaves no partial file and keeps a prior run's file intact.
func Run(ctx context.Context, cfg config.Runtime, stdout io.Writer) error {
	client := feed.NewClient(cfg.Timeout)
	raw, err := client.Fetch(ctx, cfg.ICSURL)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	items := schedule.BuildItems(ics.Unfold(raw), now, cfg.Window)
	schedule.SortItems(items)
	items = schedule.Truncate(items, cfg.MaxItems)

	if err := output.Write(cfg.OutPath, schedule.Document{Items: items}); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(stdout, "Wrote %d items to %s\n", len(items), cfg.OutPath); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
