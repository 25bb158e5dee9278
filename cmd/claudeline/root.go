package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/LounisBou/claudeline/internal/cache"
	"github.com/LounisBou/claudeline/internal/config"
	"github.com/LounisBou/claudeline/internal/credentials"
	"github.com/LounisBou/claudeline/internal/logging"
	"github.com/LounisBou/claudeline/internal/statusline"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "claudeline",
	Short: "Composite status line for the Claude Code terminal host",
	Long: `claudeline renders a single color-escaped status line from the JSON
context the host writes to stdin: working directory, git state, and a
cached quota-utilization gauge.

It is invoked once per render tick, degrades gracefully on every failure,
and always exits 0 so it can never break the host's render loop.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		renderStatusLine()
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("claudeline {{.Version}}\n")
}

// renderStatusLine is the host-facing render path. Every failure inside
// it degrades to an omitted or placeholder segment; it never errors and
// never writes to stderr.
func renderStatusLine() {
	// The host reads stdout through a pipe but still renders escape
	// sequences, so color output must not depend on TTY detection here.
	lipgloss.SetColorProfile(termenv.TrueColor)

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		cfg = config.Defaults()
	}

	logger, closer := logging.Setup(cfg.LogLevel)
	defer closer.Close()

	in := statusline.ReadInput(os.Stdin)
	runner := statusline.New(cfg, credentials.Load(), cacheStore(), logger)

	fmt.Println(runner.Render(context.Background(), in.CurrentDir))
}

func cacheStore() cache.Store {
	path, err := cache.DefaultPath()
	if err != nil {
		path = filepath.Join(os.TempDir(), "claudeline-usage.txt")
	}
	return &cache.FileStore{Path: path}
}
