package segment

import (
	"strings"
	"testing"

	"github.com/LounisBou/claudeline/internal/gitstatus"
)

func TestGitGlyphs_fixedOrder(t *testing.T) {
	state := gitstatus.State{
		Staged:      true,
		Unstaged:    true,
		Untracked:   true,
		Ahead:       2,
		HasUpstream: true,
		StashCount:  1,
	}
	got := GitGlyphs(state)
	want := "+!? ↑2 {1}"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestGitGlyphs_remoteMarkers(t *testing.T) {
	cases := []struct {
		name  string
		state gitstatus.State
		want  string
	}{
		{"no upstream", gitstatus.State{}, GlyphNoUpstream},
		{"in sync", gitstatus.State{HasUpstream: true}, GlyphInSync},
		{"ahead", gitstatus.State{HasUpstream: true, Ahead: 3}, "↑3"},
		{"behind", gitstatus.State{HasUpstream: true, Behind: 2}, "↓2"},
		{"diverged", gitstatus.State{HasUpstream: true, Ahead: 1, Behind: 4}, "↑1↓4"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := GitGlyphs(c.state); got != c.want {
				t.Errorf("got %q want %q", got, c.want)
			}
		})
	}
}

func TestGitGlyphs_stashOnlyWhenNonzero(t *testing.T) {
	withStash := GitGlyphs(gitstatus.State{HasUpstream: true, StashCount: 3})
	if withStash != "≡ {3}" {
		t.Errorf("got %q", withStash)
	}
	without := GitGlyphs(gitstatus.State{HasUpstream: true})
	if strings.Contains(without, "{") {
		t.Errorf("zero stash must not render braces: %q", without)
	}
}

// Scenario: branch main, staged and unstaged changes, 3 commits ahead.
// The rendered segment must carry branch, staged marker, unstaged marker,
// and the ahead count, in that order.
func TestGit_aheadScenario(t *testing.T) {
	state := gitstatus.State{
		Branch:      "main",
		Staged:      true,
		Unstaged:    true,
		Ahead:       3,
		HasUpstream: true,
	}
	got := Git(state, AllGitParts())

	for _, part := range []string{"main", GlyphStaged, GlyphUnstaged, "↑3"} {
		if !strings.Contains(got, part) {
			t.Errorf("segment %q missing %q", got, part)
		}
	}
	order := []string{"main", GlyphStaged, GlyphUnstaged, "↑3"}
	last := -1
	for _, part := range order {
		idx := strings.Index(got, part)
		if idx <= last {
			t.Fatalf("segment %q: %q out of order", got, part)
		}
		last = idx
	}
	if strings.Contains(got, GlyphUntracked) {
		t.Errorf("segment %q has spurious untracked marker", got)
	}
}

func TestGit_partsToggledOff(t *testing.T) {
	state := gitstatus.State{
		Branch:      "main",
		Staged:      true,
		Ahead:       1,
		HasUpstream: true,
		StashCount:  2,
	}

	branchOnly := Git(state, GitOptions{Branch: true})
	if !strings.Contains(branchOnly, "main") || strings.Contains(branchOnly, GlyphStaged) {
		t.Errorf("branch-only segment: %q", branchOnly)
	}

	glyphsOnly := Git(state, GitOptions{StatusFlags: true, RemoteSync: true, Stash: true})
	if strings.Contains(glyphsOnly, "main") {
		t.Errorf("glyphs-only segment leaked branch: %q", glyphsOnly)
	}

	if got := Git(state, GitOptions{}); got != "" {
		t.Errorf("all parts off: got %q want empty", got)
	}
}
