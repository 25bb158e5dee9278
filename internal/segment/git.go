package segment

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LounisBou/claudeline/internal/gitstatus"
)

// Git status glyphs, in their fixed render order.
const (
	GlyphStaged     = "+"
	GlyphUnstaged   = "!"
	GlyphUntracked  = "?"
	GlyphInSync     = "≡"
	GlyphNoUpstream = "⊘"
)

var (
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	flagsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
)

// GitOptions selects which parts of the git segment render.
type GitOptions struct {
	Branch      bool
	StatusFlags bool
	RemoteSync  bool
	Stash       bool
}

// AllGitParts enables every part of the git segment.
func AllGitParts() GitOptions {
	return GitOptions{Branch: true, StatusFlags: true, RemoteSync: true, Stash: true}
}

// GitGlyphs maps working-tree state to its glyph string: staged marker,
// unstaged marker, untracked marker, a space, the remote-sync marker,
// then the stash count in braces when nonzero. Pure; no styling.
func GitGlyphs(state gitstatus.State) string {
	return gitGlyphs(state, AllGitParts())
}

func gitGlyphs(state gitstatus.State, opts GitOptions) string {
	var flags strings.Builder
	if opts.StatusFlags {
		if state.Staged {
			flags.WriteString(GlyphStaged)
		}
		if state.Unstaged {
			flags.WriteString(GlyphUnstaged)
		}
		if state.Untracked {
			flags.WriteString(GlyphUntracked)
		}
	}

	var parts []string
	if flags.Len() > 0 {
		parts = append(parts, flags.String())
	}
	if opts.RemoteSync {
		parts = append(parts, remoteMarker(state))
	}
	if opts.Stash && state.StashCount > 0 {
		parts = append(parts, fmt.Sprintf("{%d}", state.StashCount))
	}
	return strings.Join(parts, " ")
}

// remoteMarker picks exactly one sync marker: ahead, behind, diverged,
// in sync, or no upstream.
func remoteMarker(state gitstatus.State) string {
	switch {
	case !state.HasUpstream:
		return GlyphNoUpstream
	case state.Ahead > 0 && state.Behind > 0:
		return fmt.Sprintf("↑%d↓%d", state.Ahead, state.Behind)
	case state.Ahead > 0:
		return fmt.Sprintf("↑%d", state.Ahead)
	case state.Behind > 0:
		return fmt.Sprintf("↓%d", state.Behind)
	default:
		return GlyphInSync
	}
}

// Git renders the full git segment: styled branch name followed by the
// selected glyph parts. Returns "" when nothing is enabled.
func Git(state gitstatus.State, opts GitOptions) string {
	var parts []string
	if opts.Branch && state.Branch != "" {
		parts = append(parts, branchStyle.Render(state.Branch))
	}
	if glyphs := gitGlyphs(state, opts); glyphs != "" {
		parts = append(parts, flagsStyle.Render(glyphs))
	}
	return strings.Join(parts, " ")
}
