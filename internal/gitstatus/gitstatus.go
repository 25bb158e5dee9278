// Package gitstatus inspects the working tree the status line is rendered
// for. Inspection is fail-open: any timeout, parse error, or not-a-repo
// condition yields a nil State and the git segment is simply omitted.
package gitstatus

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// State is a point-in-time summary of the working tree. It is recomputed
// on every invocation and never cached.
type State struct {
	Branch      string
	Staged      bool
	Unstaged    bool
	Untracked   bool
	Ahead       int
	Behind      int
	HasUpstream bool
	StashCount  int
}

// Provider abstracts how git state is obtained so tests can inject fixed
// values without a repository.
type Provider interface {
	Inspect(ctx context.Context, dir string) *State
}

// CLI is the real Provider. It shells out to git and parses the
// machine-readable porcelain v2 output.
type CLI struct{}

func (CLI) Inspect(ctx context.Context, dir string) *State {
	out, err := exec.CommandContext(ctx, "git", "-C", dir,
		"status", "--porcelain=v2", "--branch").Output()
	if err != nil {
		return nil
	}
	state, err := Parse(string(out))
	if err != nil {
		return nil
	}
	state.StashCount = stashCount(ctx, dir)
	return state
}

// stashCount is a separate bounded query; refs/stash missing means zero.
func stashCount(ctx context.Context, dir string) int {
	out, err := exec.CommandContext(ctx, "git", "-C", dir,
		"rev-list", "--walk-reflogs", "--count", "refs/stash").Output()
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0
	}
	return n
}

// Parse reads "git status --porcelain=v2 --branch" output.
//
// Header lines:
//
//	# branch.head <name>
//	# branch.upstream <remote>/<name>
//	# branch.ab +<ahead> -<behind>
//
// Entry lines: "1 XY ..." (changed), "2 XY ..." (renamed/copied),
// "u XY ..." (unmerged), "? <path>" (untracked). The first status
// character reports the index, the second the working tree.
func Parse(out string) (*State, error) {
	state := &State{}
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "# branch.head "):
			state.Branch = strings.TrimPrefix(line, "# branch.head ")
		case strings.HasPrefix(line, "# branch.upstream "):
			state.HasUpstream = true
		case strings.HasPrefix(line, "# branch.ab "):
			ahead, behind, err := parseAheadBehind(strings.TrimPrefix(line, "# branch.ab "))
			if err != nil {
				return nil, err
			}
			state.Ahead, state.Behind = ahead, behind
			state.HasUpstream = true
		case strings.HasPrefix(line, "1 ") || strings.HasPrefix(line, "2 "):
			xy := statusCode(line)
			if len(xy) != 2 {
				return nil, fmt.Errorf("malformed entry line %q", line)
			}
			if xy[0] != '.' {
				state.Staged = true
			}
			if xy[1] != '.' {
				state.Unstaged = true
			}
		case strings.HasPrefix(line, "u "):
			// Unmerged paths are work still to do in the working tree.
			state.Unstaged = true
		case strings.HasPrefix(line, "? "):
			state.Untracked = true
		}
	}
	return state, nil
}

func statusCode(line string) string {
	fields := strings.SplitN(line, " ", 3)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// parseAheadBehind reads the "+<ahead> -<behind>" tail of a branch.ab line.
func parseAheadBehind(s string) (int, int, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 || !strings.HasPrefix(fields[0], "+") || !strings.HasPrefix(fields[1], "-") {
		return 0, 0, fmt.Errorf("malformed branch.ab %q", s)
	}
	ahead, err := strconv.Atoi(fields[0][1:])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed ahead count %q", fields[0])
	}
	behind, err := strconv.Atoi(fields[1][1:])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed behind count %q", fields[1])
	}
	return ahead, behind, nil
}
