package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LounisBou/claudeline/internal/api"
	"github.com/LounisBou/claudeline/internal/cache"
	"github.com/LounisBou/claudeline/internal/clock"
	"github.com/LounisBou/claudeline/internal/config"
	"github.com/LounisBou/claudeline/internal/credentials"
	"github.com/LounisBou/claudeline/internal/forecast"
	"github.com/LounisBou/claudeline/internal/segment"
)

var (
	usageJSON  bool
	usagePlain bool
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show current quota usage",
	Long: `Show the five-hour quota gauge on its own, for interactive use.
Reads through the same cache as the status line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUsage()
	},
}

func init() {
	usageCmd.Flags().BoolVar(&usageJSON, "json", false, "output JSON")
	usageCmd.Flags().BoolVar(&usagePlain, "plain", false, "plain text (no color)")
	rootCmd.AddCommand(usageCmd)
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runUsage() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		cfg = config.Defaults()
	}

	creds := credentials.Load()
	if creds == nil {
		return fmt.Errorf("no credentials found — put CLAUDE_SESSION_KEY and CLAUDE_ORG_ID in a .env next to the binary or under $CLAUDE_CONFIG_DIR")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout())
	defer cancel()

	client := &api.Client{BaseURL: cfg.APIBaseURL}
	res := cache.GetUsage(ctx, cacheStore(), func(ctx context.Context) (*api.Snapshot, error) {
		return client.Fetch(ctx, *creds)
	}, cfg.CacheTTL())

	if res.State == cache.Unknown {
		return fmt.Errorf("usage unavailable: fetch failed and nothing cached")
	}

	switch {
	case usageJSON:
		printUsageJSON(res)
	case usagePlain || !isTTY():
		printUsagePlain(res)
	default:
		printUsageColor(res)
	}
	return nil
}

func printUsageColor(res cache.Result) {
	snap := res.Snapshot
	style := segment.BucketStyle(snap.Utilization)
	bar := style.Render(segment.ProgressBar(snap.Utilization, 2*segment.DefaultBarWidth))

	line := fmt.Sprintf("usage  5h %s %3d%%", bar, snap.Utilization)
	if res.State == cache.Stale {
		line += " (stale)"
	}
	if !snap.ResetsAt.IsZero() {
		line += "  resets " + clock.UntilShort(time.Until(snap.ResetsAt))
		proj := forecast.Project(float64(snap.Utilization), snap.ResetsAt, forecast.FiveHourWindow)
		line += "  " + proj.Indicator()
	}
	fmt.Println(line)
}

func printUsagePlain(res cache.Result) {
	snap := res.Snapshot
	line := fmt.Sprintf("5h: %d%%", snap.Utilization)
	if res.State == cache.Stale {
		line += " (stale)"
	}
	if !snap.ResetsAt.IsZero() {
		line += fmt.Sprintf(" (resets %s)", clock.UntilShort(time.Until(snap.ResetsAt)))
	}
	fmt.Println(line)
}

func printUsageJSON(res cache.Result) {
	out := struct {
		Utilization int        `json:"utilization"`
		ResetsAt    *time.Time `json:"resets_at,omitempty"`
		ObservedAt  time.Time  `json:"observed_at"`
		Stale       bool       `json:"stale"`
	}{
		Utilization: res.Snapshot.Utilization,
		ObservedAt:  res.Snapshot.ObservedAt,
		Stale:       res.State == cache.Stale,
	}
	if !res.Snapshot.ResetsAt.IsZero() {
		t := res.Snapshot.ResetsAt
		out.ResetsAt = &t
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}
