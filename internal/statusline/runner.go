package statusline

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/LounisBou/claudeline/internal/api"
	"github.com/LounisBou/claudeline/internal/cache"
	"github.com/LounisBou/claudeline/internal/clock"
	"github.com/LounisBou/claudeline/internal/config"
	"github.com/LounisBou/claudeline/internal/credentials"
	"github.com/LounisBou/claudeline/internal/gitstatus"
	"github.com/LounisBou/claudeline/internal/segment"
)

// Runner renders one status line per invocation. All collaborators are
// injected so tests can substitute fakes for the network, the cache file,
// and the git subprocess.
type Runner struct {
	Config config.Config
	Creds  *credentials.Credentials
	Store  cache.Store
	Git    gitstatus.Provider
	Fetch  cache.FetchFunc // nil when credentials are missing
	Log    *slog.Logger
}

// New wires a Runner from real collaborators.
func New(cfg config.Config, creds *credentials.Credentials, store cache.Store, logger *slog.Logger) *Runner {
	r := &Runner{
		Config: cfg,
		Creds:  creds,
		Store:  store,
		Git:    gitstatus.CLI{},
		Log:    logger,
	}
	if creds != nil {
		client := &api.Client{BaseURL: cfg.APIBaseURL}
		c := *creds
		r.Fetch = func(ctx context.Context) (*api.Snapshot, error) {
			return client.Fetch(ctx, c)
		}
	}
	return r
}

// Render computes the status line for dir. The git inspection and the
// usage lookup are independent, so they run concurrently; each is bounded
// by its own deadline and fails open into an omitted or placeholder
// segment. Render itself never fails.
func (r *Runner) Render(ctx context.Context, dir string) string {
	var (
		gitState *gitstatus.State
		usage    cache.Result
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		inspectCtx, cancel := context.WithTimeout(gctx, r.Config.GitTimeout())
		defer cancel()
		gitState = r.Git.Inspect(inspectCtx, dir)
		return nil
	})
	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(gctx, r.Config.FetchTimeout())
		defer cancel()
		usage = cache.GetUsage(fetchCtx, r.Store, r.Fetch, r.Config.CacheTTL())
		return nil
	})
	// Both goroutines recover internally; Wait only joins them.
	_ = g.Wait()

	if r.Log != nil {
		r.Log.Debug("render tick",
			"dir", dir,
			"git", gitState != nil,
			"usage_state", int(usage.State))
	}

	seg := r.Config.Segments

	gitText := ""
	if gitState != nil {
		gitText = segment.Git(*gitState, segment.GitOptions{
			Branch:      seg.Branch,
			StatusFlags: seg.StatusFlags,
			RemoteSync:  seg.RemoteSync,
			Stash:       seg.Stash,
		})
	}

	usageText := segment.Usage(usage, segment.UsageOptions{
		ShowBar:   seg.ProgressBar,
		BarWidth:  r.Config.BarWidth,
		ShowReset: seg.ResetTime,
		Clock:     clock.Formatter{TwelveHour: r.Config.TwelveHourClock},
	})

	return Compose([]Segment{
		{Enabled: seg.Directory, Text: segment.Dir(dir, segment.DirMaxWidth)},
		{Enabled: seg.Branch || seg.StatusFlags || seg.RemoteSync || seg.Stash, Text: gitText},
		{Enabled: seg.Usage, Text: usageText},
	})
}
