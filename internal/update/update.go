// Package update checks GitHub releases for a newer build. It never runs
// on the render path; only the explicit update/version commands reach it.
package update

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const (
	repo        = "LounisBou/claudeline"
	apiURL      = "https://api.github.com/repos/" + repo + "/releases/latest"
	httpTimeout = 15 * time.Second
)

type Release struct {
	Version string
	URL     string
}

type ghRelease struct {
	TagName string `json:"tag_name"`
}

// Check queries GitHub for the latest release and returns it if newer
// than currentVersion. Returns nil if already up to date.
func Check(currentVersion string) (*Release, error) {
	client := &http.Client{Timeout: httpTimeout}
	resp, err := client.Get(apiURL)
	if err != nil {
		return nil, fmt.Errorf("check update: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("check update: GitHub API returned %d", resp.StatusCode)
	}

	var rel ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("check update: %w", err)
	}

	if rel.TagName == "" || rel.TagName == currentVersion {
		return nil, nil
	}

	// Dev builds are never offered updates.
	if currentVersion == "dev" {
		return nil, nil
	}

	url := fmt.Sprintf(
		"https://github.com/%s/releases/download/%s/claudeline-%s-%s",
		repo, rel.TagName, runtime.GOOS, runtime.GOARCH,
	)

	return &Release{Version: rel.TagName, URL: url}, nil
}

// Apply downloads the binary from url, verifies it, and replaces the
// currently running executable.
func Apply(url string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return fmt.Errorf("resolve symlinks: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "claudeline-update-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tmpBin := filepath.Join(tmpDir, "claudeline")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: HTTP %d", resp.StatusCode)
	}

	f, err := os.Create(tmpBin)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("write binary: %w", err)
	}
	f.Close()

	if err := os.Chmod(tmpBin, 0755); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}

	// macOS quarantine
	if runtime.GOOS == "darwin" {
		exec.Command("xattr", "-d", "com.apple.quarantine", tmpBin).Run()
	}

	// Verify: print the version as a smoke test
	if err := exec.Command(tmpBin, "--version").Run(); err != nil {
		return fmt.Errorf("verify binary: %w", err)
	}

	// Replace: rename new over old.
	// On some systems os.Rename fails across filesystems; fall back to copy.
	if err := os.Rename(tmpBin, exe); err != nil {
		if err := copyFile(tmpBin, exe); err != nil {
			return fmt.Errorf("replace binary: %w", err)
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Chmod(0755)
}

// StripV removes a leading "v" prefix for display: "v1.2.3" -> "1.2.3".
func StripV(version string) string {
	return strings.TrimPrefix(version, "v")
}
