// Package credentials locates the session credentials used to query the
// usage endpoint. Lookup is best-effort: a missing file or missing key is
// not an error, it just means the usage segment renders as a placeholder.
package credentials

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const (
	keySession = "CLAUDE_SESSION_KEY"
	keyOrg     = "CLAUDE_ORG_ID"

	// configDirEnv points at the host's configuration directory, the same
	// one the terminal host reads its own settings from.
	configDirEnv = "CLAUDE_CONFIG_DIR"

	envFileName = ".env"
)

type Credentials struct {
	SessionKey     string
	OrganizationID string
}

// Load searches the candidate .env files in order and returns the first
// one that carries both keys. Returns nil when no candidate does.
func Load() *Credentials {
	return LoadFrom(candidatePaths()...)
}

// LoadFrom is Load with an explicit search path, used by tests.
func LoadFrom(paths ...string) *Credentials {
	for _, p := range paths {
		vars, err := parseEnvFile(p)
		if err != nil {
			continue
		}
		session := vars[keySession]
		org := vars[keyOrg]
		if session != "" && org != "" {
			return &Credentials{SessionKey: session, OrganizationID: org}
		}
	}
	return nil
}

// candidatePaths returns, in priority order, the .env next to the running
// executable and the .env under the host config directory.
func candidatePaths() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		paths = append(paths, filepath.Join(filepath.Dir(exe), envFileName))
	}
	if dir := os.Getenv(configDirEnv); dir != "" {
		paths = append(paths, filepath.Join(dir, envFileName))
	}
	return paths
}

// parseEnvFile reads simple KEY=VALUE lines. Blank lines and #-comments are
// skipped; keys and values are trimmed. Lines without '=' are ignored.
func parseEnvFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vars := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}
		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}
