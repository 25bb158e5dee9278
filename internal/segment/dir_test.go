package segment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestShortenDir_homeContraction(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := shortenDir(home, DirMaxWidth); got != "~" {
		t.Errorf("home itself: got %q", got)
	}
	got := shortenDir(filepath.Join(home, "src", "thing"), DirMaxWidth)
	if got != filepath.Join("~", "src", "thing") {
		t.Errorf("under home: got %q", got)
	}
}

func TestShortenDir_noContractionOutsideHome(t *testing.T) {
	if got := shortenDir("/tmp/elsewhere", DirMaxWidth); got != "/tmp/elsewhere" {
		t.Errorf("got %q", got)
	}
}

func TestShortenDir_truncatesLeft(t *testing.T) {
	long := "/very/deep/" + strings.Repeat("nested/", 10) + "leaf"
	got := shortenDir(long, 20)
	if w := runewidth.StringWidth(got); w > 20 {
		t.Errorf("width %d exceeds budget: %q", w, got)
	}
	if !strings.HasPrefix(got, "…") {
		t.Errorf("expected leading ellipsis: %q", got)
	}
	if !strings.HasSuffix(got, "leaf") {
		t.Errorf("tail must survive truncation: %q", got)
	}
}

func TestShortenDir_empty(t *testing.T) {
	if got := shortenDir("", DirMaxWidth); got != "" {
		t.Errorf("got %q", got)
	}
	if got := Dir("", DirMaxWidth); got != "" {
		t.Errorf("Dir of empty path: got %q", got)
	}
}
