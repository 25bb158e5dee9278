package gitstatus

import (
	"context"
	"testing"
	"time"
)

func TestParse_branchHeaders(t *testing.T) {
	out := `# branch.oid 1234567890abcdef
# branch.head main
# branch.upstream origin/main
# branch.ab +3 -1
`
	state, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if state.Branch != "main" {
		t.Errorf("branch: got %q", state.Branch)
	}
	if !state.HasUpstream {
		t.Error("expected upstream")
	}
	if state.Ahead != 3 || state.Behind != 1 {
		t.Errorf("ahead/behind: got %d/%d want 3/1", state.Ahead, state.Behind)
	}
	if state.Staged || state.Unstaged || state.Untracked {
		t.Errorf("clean tree reported dirty: %+v", state)
	}
}

func TestParse_entryLines(t *testing.T) {
	cases := []struct {
		name      string
		out       string
		staged    bool
		unstaged  bool
		untracked bool
	}{
		{"staged only", "1 M. N... 100644 100644 100644 abc def file.go\n", true, false, false},
		{"unstaged only", "1 .M N... 100644 100644 100644 abc def file.go\n", false, true, false},
		{"both", "1 MM N... 100644 100644 100644 abc def file.go\n", true, true, false},
		{"staged delete", "1 D. N... 100644 000000 000000 abc 000 gone.go\n", true, false, false},
		{"rename", "2 R. N... 100644 100644 100644 abc def R100 new.go\told.go\n", true, false, false},
		{"untracked", "? scratch.txt\n", false, false, true},
		{"unmerged", "u UU N... 100644 100644 100644 100644 abc def ghi conflict.go\n", false, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			state, err := Parse("# branch.head main\n" + c.out)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if state.Staged != c.staged || state.Unstaged != c.unstaged || state.Untracked != c.untracked {
				t.Errorf("got staged=%v unstaged=%v untracked=%v, want %v/%v/%v",
					state.Staged, state.Unstaged, state.Untracked, c.staged, c.unstaged, c.untracked)
			}
		})
	}
}

func TestParse_noUpstream(t *testing.T) {
	state, err := Parse("# branch.head feature/local-only\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if state.HasUpstream {
		t.Error("expected no upstream")
	}
	if state.Branch != "feature/local-only" {
		t.Errorf("branch: got %q", state.Branch)
	}
}

func TestParse_detachedHead(t *testing.T) {
	state, err := Parse("# branch.head (detached)\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if state.Branch != "(detached)" {
		t.Errorf("branch: got %q", state.Branch)
	}
}

func TestParse_malformed(t *testing.T) {
	cases := []string{
		"# branch.ab +x -1\n",
		"# branch.ab +1\n",
		"# branch.ab 1 -2\n",
	}
	for _, out := range cases {
		if _, err := Parse(out); err == nil {
			t.Errorf("Parse(%q): expected error", out)
		}
	}
}

func TestCLI_notARepo(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if state := (CLI{}).Inspect(ctx, t.TempDir()); state != nil {
		t.Fatalf("expected nil outside a repository, got %+v", state)
	}
}

func TestCLI_expiredContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if state := (CLI{}).Inspect(ctx, t.TempDir()); state != nil {
		t.Fatalf("expected nil on expired context, got %+v", state)
	}
}
